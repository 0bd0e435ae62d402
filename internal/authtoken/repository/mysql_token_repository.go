package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/database"
	apperrors "github.com/allisson/authtokens/internal/errors"
)

const mysqlDuplicateEntry = 1062

const mysqlSelectColumns = `SELECT id, stored_value, parameter_value, token_type, status, expiry_time, usage_limit,
       usage_count, hashing_mode, metadata, created_at, updated_at, used_at
FROM auth_tokens`

// MySQL applies SET assignments left to right, so status must be derived before
// usage_count is incremented.
const mysqlConsumeQuery = `UPDATE auth_tokens
SET status = ` + nextStatusCase + `,
    usage_count = usage_count + 1,
    used_at = ?,
    updated_at = ?
WHERE stored_value = ?
  AND parameter_value = ?
  AND status IN ` + consumableStatuses + `
  AND expiry_time > ?
  AND (usage_limit IS NULL OR usage_count < usage_limit)`

// MySQLTokenRepository implements token persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLTokenRepository struct {
	db *sql.DB
}

// NewMySQLTokenRepository creates a new MySQL token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}

// Create inserts a new token record. A stored value collision returns domain.ErrTokenAlreadyExists.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO auth_tokens
			  (id, stored_value, parameter_value, token_type, status, expiry_time, usage_limit, usage_count,
			   hashing_mode, metadata, created_at, updated_at, used_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.ErrTokenAlreadyExists
		}
		return storeError(err, "failed to create token")
	}
	return nil
}

// GetByStoredValue retrieves a token record by its stored value.
func (m *MySQLTokenRepository) GetByStoredValue(ctx context.Context, storedValue string) (*domain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	row := querier.QueryRowContext(ctx, mysqlSelectColumns+` WHERE stored_value = ?`, storedValue)
	return m.scan(row, "failed to get token by stored value")
}

// GetByStoredValueAndParameter retrieves a token record bound to the given parameter.
func (m *MySQLTokenRepository) GetByStoredValueAndParameter(
	ctx context.Context,
	storedValue, parameter string,
) (*domain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	row := querier.QueryRowContext(
		ctx,
		mysqlSelectColumns+` WHERE stored_value = ? AND parameter_value = ?`,
		storedValue,
		parameter,
	)
	return m.scan(row, "failed to get token by stored value and parameter")
}

// Consume atomically consumes one use of a matching record.
func (m *MySQLTokenRepository) Consume(
	ctx context.Context,
	storedValue, parameter string,
	tokenType *string,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := mysqlConsumeQuery
	args := []any{now, now, storedValue, parameter, now}
	if tokenType != nil {
		query += ` AND token_type = ?`
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
func (m *MySQLTokenRepository) Invalidate(ctx context.Context, storedValue string, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE auth_tokens SET status = 'INVALIDATED', updated_at = ?
			  WHERE stored_value = ? AND status IN ` + consumableStatuses

	result, err := querier.ExecContext(ctx, query, now, storedValue)
	if err != nil {
		return 0, storeError(err, "failed to invalidate token")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storeError(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}

// DeleteExpired deletes records that expired before the given time.
func (m *MySQLTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}

	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM auth_tokens WHERE expiry_time < ?`, before)
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
func (m *MySQLTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}

	querier := database.GetTx(ctx, m.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM auth_tokens WHERE expiry_time < ?`, before).
		Scan(&count)
	if err != nil {
		return 0, storeError(err, "failed to count expired tokens")
	}
	return count, nil
}

func (m *MySQLTokenRepository) scan(row *sql.Row, message string) (*domain.Token, error) {
	var token domain.Token
	var idBytes []byte

	err := row.Scan(
		&idBytes,
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

	if err := token.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal token id")
	}

	return &token, nil
}
