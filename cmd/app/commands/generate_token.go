package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/allisson/authtokens/internal/authtoken/http/dto"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
)

// GenerateTokenOptions mirrors the generate-token flags. Zero values fall back to the policy.
type GenerateTokenOptions struct {
	Parameter       string
	TokenType       string
	ValiditySeconds int
	UsageLimit      int
	Unlimited       bool
	HashingMode     string
	Metadata        string
}

func (o GenerateTokenOptions) toRequest() *dto.GenerateTokenRequest {
	req := &dto.GenerateTokenRequest{
		Parameter:      o.Parameter,
		TokenType:      optionalString(o.TokenType),
		UnlimitedUsage: o.Unlimited,
		HashingMode:    optionalString(o.HashingMode),
		Metadata:       optionalString(o.Metadata),
	}
	if o.ValiditySeconds != 0 {
		validity := o.ValiditySeconds
		req.ValiditySeconds = &validity
	}
	if o.UsageLimit != 0 {
		limit := o.UsageLimit
		req.UsageLimit = &limit
	}
	return req
}

// RunGenerateToken issues a token and prints it. The raw value is shown once and cannot
// be recovered later.
//
// Requirements: Database must be migrated and accessible.
func RunGenerateToken(
	ctx context.Context,
	tokenUseCase usecase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	opts GenerateTokenOptions,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := opts.toRequest()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid token options: %w", err)
	}

	input, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("invalid token options: %w", err)
	}

	logger.Info("generating token", slog.String("parameter", opts.Parameter))

	generated, err := tokenUseCase.Generate(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("token generated",
		slog.Time("expiry_time", generated.ExpiryTime),
		slog.String("hashing_mode", generated.HashingMode.String()),
	)

	if format == "json" {
		return writeJSON(writer, dto.MapGeneratedTokenToResponse(generated))
	}

	tokenType := "-"
	if generated.TokenType != nil {
		tokenType = *generated.TokenType
	}

	_, _ = fmt.Fprintln(writer, "Token generated successfully")
	_, _ = fmt.Fprintf(writer, "Token:          %s\n", generated.Token)
	_, _ = fmt.Fprintf(writer, "Expires at:     %s\n", generated.ExpiryTime.Format(time.RFC3339))
	_, _ = fmt.Fprintf(writer, "Usage limit:    %s\n", formatRemaining(generated.UsageLimit))
	_, _ = fmt.Fprintf(writer, "Remaining uses: %s\n", formatRemaining(generated.RemainingUses))
	_, _ = fmt.Fprintf(writer, "Token type:     %s\n", tokenType)
	_, _ = fmt.Fprintf(writer, "Hashing mode:   %s\n", generated.HashingMode)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintln(writer, "WARNING: Save this token now. It will not be shown again.")

	return nil
}
