package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/http/dto"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
)

// RunInvalidateToken retires a token so later validations fail with INVALIDATED.
func RunInvalidateToken(
	ctx context.Context,
	tokenUseCase usecase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	token, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := &dto.InvalidateTokenRequest{Token: token}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid invalidation options: %w", err)
	}

	outcome, err := tokenUseCase.Invalidate(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("failed to invalidate token: %w", err)
	}

	logger.Info("token invalidation completed", slog.String("outcome", outcome.String()))

	if format == "json" {
		return writeJSON(writer, dto.InvalidateTokenResponse{Outcome: outcome.String()})
	}

	switch outcome {
	case domain.InvalidationInvalidated:
		_, _ = fmt.Fprintln(writer, "Token invalidated successfully")
	case domain.InvalidationNotFound:
		_, _ = fmt.Fprintln(writer, "Token not found")
	default:
		_, _ = fmt.Fprintln(writer, "Token is no longer active")
	}
	return nil
}
