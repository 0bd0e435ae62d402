package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/authtokens/internal/authtoken/http/dto"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
)

// RunCleanExpiredTokens deletes every token past its expiry, whatever its status.
// Supports dry-run mode to preview deletion count and both text/JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredTokens(
	ctx context.Context,
	tokenUseCase usecase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	dryRun bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("cleaning expired tokens", slog.Bool("dry_run", dryRun))

	count, err := tokenUseCase.CleanupExpired(ctx, dryRun)
	if err != nil {
		return fmt.Errorf("failed to cleanup expired tokens: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, dto.CleanupExpiredResponse{Count: count, DryRun: dryRun}); err != nil {
			return err
		}
	} else {
		outputCleanExpiredText(writer, count, dryRun)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// outputCleanExpiredText outputs the result in human-readable text format.
func outputCleanExpiredText(writer io.Writer, count int64, dryRun bool) {
	if dryRun {
		_, _ = fmt.Fprintf(writer, "Dry-run mode: Would delete %d expired token(s)\n", count)
	} else {
		_, _ = fmt.Fprintf(writer, "Successfully deleted %d expired token(s)\n", count)
	}
}
