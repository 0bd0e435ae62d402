// Package commands implements the authtokens CLI commands. Each Run function takes its
// collaborators and output writer explicitly so it can be tested without a database.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/authtokens/internal/app"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	"github.com/allisson/authtokens/internal/config"
)

// LoadConfig reads the environment and rejects unusable infrastructure settings.
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// WithTokenUseCase builds the token stack from the environment, runs fn against it and
// releases every resource the stack opened.
func WithTokenUseCase(fn func(tokenUseCase usecase.TokenUseCase, logger *slog.Logger) error) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	tokenUseCase, err := container.TokenUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize token use case: %w", err)
	}

	return fn(tokenUseCase, logger)
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(jsonBytes))
	return err
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func formatRemaining(remaining *int) string {
	if remaining == nil {
		return "unlimited"
	}
	return fmt.Sprintf("%d", *remaining)
}
