package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/debit_card_app/internal/adapters/cache"
	natsbus "github.com/SscSPs/debit_card_app/internal/adapters/messaging/nats"
	"github.com/SscSPs/debit_card_app/internal/adapters/messaging/rabbitmq"
	portsevents "github.com/SscSPs/debit_card_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
	"github.com/SscSPs/debit_card_app/internal/core/services"
	"github.com/SscSPs/debit_card_app/internal/handlers"
	"github.com/SscSPs/debit_card_app/internal/middleware"
	"github.com/SscSPs/debit_card_app/internal/platform/config"
	"github.com/SscSPs/debit_card_app/internal/repositories/database/memory"
	"github.com/SscSPs/debit_card_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/debit_card_app/migrations"
	"github.com/SscSPs/debit_card_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Debit Card Backend API
// @version 1.0
// @description Debit card accounts: limits, charges, pay-offs and blocking.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	publisher, err := setupEventPublisher(cfg, logger)
	if err != nil {
		return err
	}
	if publisher != nil {
		defer func() {
			if cerr := publisher.Close(); cerr != nil {
				logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
			}
		}()
	}

	serviceContainer := services.NewServiceContainer(repos, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("repository", cfg.Repository), slog.String("event_bus", cfg.EventBus))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupRepositories picks the storage backend and wraps it with the Redis summary cache when configured.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	var (
		repos   portsrepo.RepositoryProvider
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Repository {
	case config.RepositoryPostgres:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(logger, cfg.DatabaseURL, migrations.FS); err != nil {
				return repos, closeAll, err
			}
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repos, closeAll, err
		}
		closers = append(closers, func() { database.ClosePgxPool(dbPool) })
		logger.Info("Database connection pool established.")
		repos = pgsql.NewRepositoryProvider(dbPool)
	default:
		logger.Warn("Using in-memory repository, data is lost on restart")
		repos = memory.NewRepositoryProvider()
	}

	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			closeAll()
			return repos, func() {}, err
		}
		closers = append(closers, func() {
			if cerr := rdb.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		})
		summaryCache := cache.NewRedisSummaryCache(rdb, cfg.SummaryCacheTTL)
		repos.DebitCardRepo = cache.NewCachedDebitCardRepository(repos.DebitCardRepo, summaryCache)
		logger.Info("Summary cache enabled", slog.String("redis_addr", cfg.RedisAddr), slog.Duration("ttl", cfg.SummaryCacheTTL))
	}

	return repos, closeAll, nil
}

// setupEventPublisher connects to the configured bus. It returns nil when EVENT_BUS=none.
func setupEventPublisher(cfg *config.Config, logger *slog.Logger) (portsevents.EventPublisher, error) {
	switch cfg.EventBus {
	case config.EventBusNATS:
		nc, err := natsbus.Connect(cfg.NATSURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to NATS", slog.String("subject_prefix", cfg.NATSSubjectPrefix))
		return natsbus.NewPublisher(nc, cfg.NATSSubjectPrefix), nil
	case config.EventBusRabbitMQ:
		publisher, err := rabbitmq.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to RabbitMQ", slog.String("exchange", cfg.AMQPExchange))
		return publisher, nil
	default:
		return nil, nil
	}
}
