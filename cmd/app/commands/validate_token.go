package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/authtokens/internal/authtoken/http/dto"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
)

// RunValidateToken consumes one use of a token and prints the outcome. A rejected
// token is reported in the output, not as an error.
func RunValidateToken(
	ctx context.Context,
	tokenUseCase usecase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	parameter, token, tokenType, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := &dto.ValidateTokenRequest{
		Parameter: parameter,
		Token:     token,
		TokenType: optionalString(tokenType),
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid validation options: %w", err)
	}

	result, err := tokenUseCase.Validate(ctx, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to validate token: %w", err)
	}

	logger.Info("token validation completed",
		slog.Bool("valid", result.Valid),
		slog.String("failure_reason", result.FailureReason.String()),
	)

	if format == "json" {
		return writeJSON(writer, dto.MapValidationResultToResponse(result))
	}

	if result.Valid {
		_, _ = fmt.Fprintf(writer, "Token is valid (remaining uses: %s)\n", formatRemaining(result.RemainingUses))
	} else {
		_, _ = fmt.Fprintf(writer, "Token rejected: %s\n", result.FailureReason)
	}
	return nil
}
