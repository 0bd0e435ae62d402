// Package http provides HTTP handlers for the token lifecycle operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/authtokens/internal/authtoken/http/dto"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	"github.com/allisson/authtokens/internal/httputil"
	customValidation "github.com/allisson/authtokens/internal/validation"
)

// TokenHandler handles HTTP requests for token lifecycle operations.
// Coordinates generate, validate, invalidate and cleanup with TokenUseCase.
type TokenHandler struct {
	tokenUseCase usecase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase usecase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// GenerateHandler issues a new token bound to a parameter.
// POST /v1/tokens
// Returns 201 Created with the raw token. The raw value is never retrievable again.
func (h *TokenHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToDomain()
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	token, err := h.tokenUseCase.Generate(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGeneratedTokenToResponse(token))
}

// ValidateHandler consumes one use of a token.
// POST /v1/tokens/validate
// Rejected tokens still return 200 OK with valid=false and the failure reason.
func (h *TokenHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.tokenUseCase.Validate(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationResultToResponse(result))
}

// InvalidateHandler retires a token.
// POST /v1/tokens/invalidate
// Missing or already retired tokens return 200 OK with the matching outcome.
func (h *TokenHandler) InvalidateHandler(c *gin.Context) {
	var req dto.InvalidateTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	outcome, err := h.tokenUseCase.Invalidate(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.InvalidateTokenResponse{Outcome: outcome.String()})
}

// CleanupExpiredHandler deletes every expired token record.
// DELETE /v1/tokens/expired?dry_run=true
// With dry_run the records are counted and left in place.
func (h *TokenHandler) CleanupExpiredHandler(c *gin.Context) {
	dryRun := false
	if raw := c.Query("dry_run"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			httputil.HandleBadRequestGin(c, fmt.Errorf("invalid dry_run parameter: %q", raw), h.logger)
			return
		}
		dryRun = parsed
	}

	count, err := h.tokenUseCase.CleanupExpired(c.Request.Context(), dryRun)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CleanupExpiredResponse{Count: count, DryRun: dryRun})
}

// PolicyHandler returns the token policy.
// GET /v1/tokens/policy
func (h *TokenHandler) PolicyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapPolicyToResponse(h.tokenUseCase.Policy()))
}
