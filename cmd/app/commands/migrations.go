package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/authtokens/internal/database"
)

// RunMigrations prepares the token store for the configured driver. PostgreSQL and MySQL
// apply the versioned migrations under migrations/, SQLite creates its schema in place
// and the memory store needs nothing.
func RunMigrations(ctx context.Context, logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations",
		slog.String("driver", dbDriver),
	)

	var migrationsPath, migrateURL string
	switch dbDriver {
	case database.DriverPostgres:
		migrationsPath = "file://migrations/postgresql"
		migrateURL = dbConnectionString
	case database.DriverMySQL:
		migrationsPath = "file://migrations/mysql"
		migrateURL = dbConnectionString
		if !strings.HasPrefix(migrateURL, "mysql://") {
			migrateURL = "mysql://" + migrateURL
		}
	case database.DriverSQLite:
		return runSQLiteSchema(ctx, logger, dbConnectionString)
	case database.DriverMemory:
		logger.Info("memory store has no schema, nothing to migrate")
		return nil
	default:
		return fmt.Errorf("unsupported database driver: %s", dbDriver)
	}

	m, err := migrate.New(migrationsPath, migrateURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

func runSQLiteSchema(ctx context.Context, logger *slog.Logger, dbConnectionString string) error {
	db, err := database.Connect(database.Config{
		Driver:           database.DriverSQLite,
		ConnectionString: dbConnectionString,
		ConnMaxLifetime:  time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close sqlite database", slog.Any("error", err))
		}
	}()

	if err := database.EnsureSQLiteSchema(ctx, db); err != nil {
		return err
	}

	logger.Info("sqlite schema is up to date")
	return nil
}
