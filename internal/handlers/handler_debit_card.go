package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/debit_card_app/internal/apperrors"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	portssvc "github.com/SscSPs/debit_card_app/internal/core/ports/services"
	"github.com/SscSPs/debit_card_app/internal/dto"
	"github.com/SscSPs/debit_card_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// debitCardHandler handles HTTP requests related to debit cards.
type debitCardHandler struct {
	debitCardService portssvc.DebitCardSvcFacade
}

// newDebitCardHandler creates a new debitCardHandler.
func newDebitCardHandler(svc portssvc.DebitCardSvcFacade) *debitCardHandler {
	return &debitCardHandler{
		debitCardService: svc,
	}
}

// RegisterDebitCardRoutes registers routes related to debit cards.
func RegisterDebitCardRoutes(rg *gin.RouterGroup, svc portssvc.DebitCardSvcFacade) {
	h := newDebitCardHandler(svc)

	cards := rg.Group("/debit-cards")
	{
		cards.POST("", h.createCard)
		cards.GET("/:cardUUID", h.getSummary)
		cards.PUT("/:cardUUID/limit", h.assignLimit)
		cards.PUT("/:cardUUID/charge", h.charge)
		cards.PUT("/:cardUUID/pay-off", h.payOff)
		cards.PUT("/:cardUUID/block", h.block)
		cards.PUT("/:cardUUID/unblock", h.unblock)
	}
}

// createCard godoc
// @Summary Create a new debit card
// @Description Creates a card with a zero balance, no limit and not blocked
// @Tags debit-cards
// @Produce  json
// @Success 201 {object} dto.CreateDebitCardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to create debit card"
// @Security BearerAuth
// @Router /debit-cards [post]
func (h *debitCardHandler) createCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardUUID, err := h.debitCardService.CreateNewCard(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	createdBy := "anonymous"
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		createdBy = userID
	}
	logger.Info("Debit card created", slog.String("card_uuid", cardUUID.String()), slog.String("created_by", createdBy))
	c.JSON(http.StatusCreated, dto.CreateDebitCardResponse{CardUUID: cardUUID})
}

// getSummary godoc
// @Summary Get a debit card
// @Description Returns the balance, limit and blocked flag of a card
// @Tags debit-cards
// @Produce  json
// @Param   cardUUID path string true "Card UUID"
// @Success 200 {object} dto.DebitCardSummaryResponse
// @Failure 400 {object} map[string]string "Invalid card UUID"
// @Failure 404 {object} map[string]string "Debit card not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debit card"
// @Security BearerAuth
// @Router /debit-cards/{cardUUID} [get]
func (h *debitCardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardUUID, ok := parseCardUUID(c)
	if !ok {
		return
	}

	summary, err := h.debitCardService.GetSummary(c.Request.Context(), cardUUID)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDebitCardSummaryResponse(summary))
}

// assignLimit godoc
// @Summary Assign a limit
// @Description Sets the lowest balance the card may reach. A limit can be assigned only once.
// @Tags debit-cards
// @Accept  json
// @Produce  json
// @Param   cardUUID path string true "Card UUID"
// @Param   limit body dto.AssignLimitRequest true "Limit"
// @Success 200 {object} domain.AssignLimitCommand
// @Failure 400 {object} dto.DebitCardErrorResponse "Invalid input or LimitAlreadyAssigned"
// @Failure 404 {object} dto.DebitCardErrorResponse "CardNotFoundError"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to assign limit"
// @Security BearerAuth
// @Router /debit-cards/{cardUUID}/limit [put]
func (h *debitCardHandler) assignLimit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardUUID, ok := parseCardUUID(c)
	if !ok {
		return
	}

	var req dto.AssignLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignLimit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.debitCardService.AssignLimitToCard(c.Request.Context(), req.ToAssignLimitCommand(cardUUID))
	writeOperationResult(c, logger, result, err)
}

// charge godoc
// @Summary Charge a debit card
// @Description Takes amount from the card. Rejected when the card is blocked or the balance would drop below the limit.
// @Tags debit-cards
// @Accept  json
// @Produce  json
// @Param   cardUUID path string true "Card UUID"
// @Param   transaction body dto.TransactionRequest true "Transaction"
// @Success 200 {object} domain.ChargeCardCommand
// @Failure 400 {object} dto.DebitCardErrorResponse "Invalid input or CannotChargeError"
// @Failure 404 {object} dto.DebitCardErrorResponse "CardNotFoundError"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to charge debit card"
// @Security BearerAuth
// @Router /debit-cards/{cardUUID}/charge [put]
func (h *debitCardHandler) charge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardUUID, ok := parseCardUUID(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Charge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.debitCardService.ChargeCard(c.Request.Context(), req.ToChargeCommand(cardUUID))
	writeOperationResult(c, logger, result, err)
}

// payOff godoc
// @Summary Pay off a debit card
// @Description Returns amount to the card. Allowed on blocked cards.
// @Tags debit-cards
// @Accept  json
// @Produce  json
// @Param   cardUUID path string true "Card UUID"
// @Param   transaction body dto.TransactionRequest true "Transaction"
// @Success 200 {object} domain.PayOffCardCommand
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} dto.DebitCardErrorResponse "CardNotFoundError"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to pay off debit card"
// @Security BearerAuth
// @Router /debit-cards/{cardUUID}/pay-off [put]
func (h *debitCardHandler) payOff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardUUID, ok := parseCardUUID(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayOff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.debitCardService.PayOffCard(c.Request.Context(), req.ToPayOffCommand(cardUUID))
	writeOperationResult(c, logger, result, err)
}

// block godoc
// @Summary Block a debit card
// @Tags debit-cards
// @Produce  json
// @Param   cardUUID path string true "Card UUID"
// @Success 200 {object} domain.BlockCardCommand
// @Failure 400 {object} dto.DebitCardErrorResponse "CannotBlockCardError"
// @Failure 404 {object} dto.DebitCardErrorResponse "CardNotFoundError"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to block debit card"
// @Security BearerAuth
// @Router /debit-cards/{cardUUID}/block [put]
func (h *debitCardHandler) block(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardUUID, ok := parseCardUUID(c)
	if !ok {
		return
	}

	result, err := h.debitCardService.BlockCard(c.Request.Context(), domain.BlockCardCommand{CardUUID: cardUUID})
	writeOperationResult(c, logger, result, err)
}

// unblock godoc
// @Summary Unblock a debit card
// @Description Unblocking a card that is not blocked succeeds and changes nothing.
// @Tags debit-cards
// @Produce  json
// @Param   cardUUID path string true "Card UUID"
// @Success 200 {object} domain.UnblockCardCommand
// @Failure 404 {object} dto.DebitCardErrorResponse "CardNotFoundError"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to unblock debit card"
// @Security BearerAuth
// @Router /debit-cards/{cardUUID}/unblock [put]
func (h *debitCardHandler) unblock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cardUUID, ok := parseCardUUID(c)
	if !ok {
		return
	}

	result, err := h.debitCardService.UnblockCard(c.Request.Context(), domain.UnblockCardCommand{CardUUID: cardUUID})
	writeOperationResult(c, logger, result, err)
}

func parseCardUUID(c *gin.Context) (uuid.UUID, bool) {
	cardUUID, err := uuid.Parse(c.Param("cardUUID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card UUID"})
		return uuid.Nil, false
	}
	return cardUUID, true
}

// writeOperationResult renders a command outcome: 200 with the command on success,
// the card error and the command on rejection, or the mapped status for a Go error.
func writeOperationResult[C domain.CardCommand](c *gin.Context, logger *slog.Logger, result domain.OperationResult[C], err error) {
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	rendered := domain.FoldResult(result,
		func(cmd C, cardErr domain.DebitCardError) renderedResult {
			logger.Info("Debit card command rejected", slog.String("reason", cardErr.Name()))
			if _, notFound := cardErr.(domain.CardNotFoundError); notFound {
				return renderedResult{http.StatusNotFound, dto.DebitCardErrorResponse{Type: cardErr.Name(), Command: cmd}}
			}
			return renderedResult{http.StatusBadRequest, dto.DebitCardErrorResponse{Type: cardErr.Name(), Command: cmd}}
		},
		func(cmd C) renderedResult {
			return renderedResult{http.StatusOK, cmd}
		},
	)
	c.JSON(rendered.status, rendered.body)
}

type renderedResult struct {
	status int
	body   any
}

func writeServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Debit card not found"})
	case errors.Is(err, apperrors.ErrStaleWrite):
		logger.Warn("Concurrent modification of debit card", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Debit card was modified concurrently, please retry"})
	default:
		logger.Error("Debit card operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
