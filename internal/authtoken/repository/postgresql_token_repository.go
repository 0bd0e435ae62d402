package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/database"
)

const postgresUniqueViolation = "23505"

const postgresSelectColumns = `SELECT id, stored_value, parameter_value, token_type, status, expiry_time, usage_limit,
       usage_count, hashing_mode, metadata, created_at, updated_at, used_at
FROM auth_tokens`

const postgresConsumeQuery = `UPDATE auth_tokens
SET usage_count = usage_count + 1,
    used_at = $3,
    updated_at = $3,
    status = ` + nextStatusCase + `
WHERE stored_value = $1
  AND parameter_value = $2
  AND status IN ` + consumableStatuses + `
  AND expiry_time > $3
  AND (usage_limit IS NULL OR usage_count < usage_limit)`

// PostgreSQLTokenRepository implements token persistence for PostgreSQL databases.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL token repository instance.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

// Create inserts a new token record.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO auth_tokens
			  (id, stored_value, parameter_value, token_type, status, expiry_time, usage_limit, usage_count,
			   hashing_mode, metadata, created_at, updated_at, used_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.StoredValue,
		token.Parameter,
		token.TokenType,
		token.Status,
		token.ExpiryTime,
		token.UsageLimit,
		token.UsageCount,
		token.HashingMode,
		token.Metadata,
		token.CreatedAt,
		token.UpdatedAt,
		token.UsedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == postgresUniqueViolation {
			return domain.ErrTokenAlreadyExists
		}
		return storeError(err, "failed to create token")
	}
	return nil
}

// GetByStoredValue retrieves a token record by its stored value.
func (p *PostgreSQLTokenRepository) GetByStoredValue(ctx context.Context, storedValue string) (*domain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	row := querier.QueryRowContext(ctx, postgresSelectColumns+` WHERE stored_value = $1`, storedValue)
	return p.scan(row, "failed to get token by stored value")
}

// GetByStoredValueAndParameter retrieves a token record bound to the given parameter.
func (p *PostgreSQLTokenRepository) GetByStoredValueAndParameter(
	ctx context.Context,
	storedValue, parameter string,
) (*domain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	row := querier.QueryRowContext(
		ctx,
		postgresSelectColumns+` WHERE stored_value = $1 AND parameter_value = $2`,
		storedValue,
		parameter,
	)
	return p.scan(row, "failed to get token by stored value and parameter")
}

// Consume atomically consumes one use of a matching record.
func (p *PostgreSQLTokenRepository) Consume(
	ctx context.Context,
	storedValue, parameter string,
	tokenType *string,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := postgresConsumeQuery
	args := []any{storedValue, parameter, now}
	if tokenType != nil {
		query += ` AND token_type = $4`
		args = append(args, *tokenType)
	}

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storeError(err, "failed to consume token")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storeError(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}

// Invalidate marks a consumable record as invalidated.
func (p *PostgreSQLTokenRepository) Invalidate(ctx context.Context, storedValue string, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE auth_tokens SET status = 'INVALIDATED', updated_at = $2
			  WHERE stored_value = $1 AND status IN ` + consumableStatuses

	result, err := querier.ExecContext(ctx, query, storedValue, now)
	if err != nil {
		return 0, storeError(err, "failed to invalidate token")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storeError(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}

// DeleteExpired deletes records that expired before the given time, regardless of status.
func (p *PostgreSQLTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}

	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM auth_tokens WHERE expiry_time < $1`, before)
	if err != nil {
		return 0, storeError(err, "failed to delete expired tokens")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storeError(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}

// CountExpired counts records that expired before the given time.
func (p *PostgreSQLTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}

	querier := database.GetTx(ctx, p.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM auth_tokens WHERE expiry_time < $1`, before).
		Scan(&count)
	if err != nil {
		return 0, storeError(err, "failed to count expired tokens")
	}
	return count, nil
}

func (p *PostgreSQLTokenRepository) scan(row *sql.Row, message string) (*domain.Token, error) {
	var token domain.Token

	err := row.Scan(
		&token.ID,
		&token.StoredValue,
		&token.Parameter,
		&token.TokenType,
		&token.Status,
		&token.ExpiryTime,
		&token.UsageLimit,
		&token.UsageCount,
		&token.HashingMode,
		&token.Metadata,
		&token.CreatedAt,
		&token.UpdatedAt,
		&token.UsedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, storeError(err, message)
	}

	return &token, nil
}
