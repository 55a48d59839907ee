package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/SscSPs/debit_card_app/cmd/docs"
	portssvc "github.com/SscSPs/debit_card_app/internal/core/ports/services"
	"github.com/SscSPs/debit_card_app/internal/dto"
	"github.com/SscSPs/debit_card_app/internal/middleware"
	"github.com/SscSPs/debit_card_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators installs the custom DTO validations on gin's binding engine.
// It is safe to call more than once.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		validatorsErr = dto.RegisterValidators(v)
	})
	return validatorsErr
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	var v1Middleware []gin.HandlerFunc
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		v1Middleware = append(v1Middleware, middleware.RateLimit(limiterInstance))
	}
	if cfg.JWTSecret != "" {
		v1Middleware = append(v1Middleware, middleware.AuthMiddleware(cfg.JWTSecret))
	}

	v1 := r.Group("/api/v1", v1Middleware...)
	RegisterDebitCardRoutes(v1, services.DebitCard)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
