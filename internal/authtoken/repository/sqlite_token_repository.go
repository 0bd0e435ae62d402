package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/database"
	apperrors "github.com/allisson/authtokens/internal/errors"
)

const sqliteSelectColumns = `SELECT id, stored_value, parameter_value, token_type, status, expiry_time, usage_limit,
       usage_count, hashing_mode, metadata, created_at, updated_at, used_at
FROM auth_tokens`

// SQLite evaluates every SET expression against the pre-update row.
const sqliteConsumeQuery = `UPDATE auth_tokens
SET usage_count = usage_count + 1,
    used_at = ?1,
    updated_at = ?1,
    status = ` + nextStatusCase + `
WHERE stored_value = ?2
  AND parameter_value = ?3
  AND status IN ` + consumableStatuses + `
  AND expiry_time > ?1
  AND (usage_limit IS NULL OR usage_count < usage_limit)`

// SQLiteTokenRepository implements token persistence for SQLite through modernc.org/sqlite.
// Timestamps are stored as INTEGER unix nanoseconds and ids as TEXT.
type SQLiteTokenRepository struct {
	db *sql.DB
}

// NewSQLiteTokenRepository creates a new SQLite token repository.
func NewSQLiteTokenRepository(db *sql.DB) *SQLiteTokenRepository {
	return &SQLiteTokenRepository{db: db}
}

// Create inserts a new token record.
func (s *SQLiteTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO auth_tokens
			  (id, stored_value, parameter_value, token_type, status, expiry_time, usage_limit, usage_count,
			   hashing_mode, metadata, created_at, updated_at, used_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var usedAt *int64
	if token.UsedAt != nil {
		nanos := token.UsedAt.UnixNano()
		usedAt = &nanos
	}

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID.String(),
		token.StoredValue,
		token.Parameter,
		token.TokenType,
		string(token.Status),
		token.ExpiryTime.UnixNano(),
		token.UsageLimit,
		token.UsageCount,
		string(token.HashingMode),
		token.Metadata,
		token.CreatedAt.UnixNano(),
		token.UpdatedAt.UnixNano(),
		usedAt,
	)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return domain.ErrTokenAlreadyExists
		}
		return storeError(err, "failed to create token")
	}
	return nil
}

// GetByStoredValue retrieves a token record by its stored value.
func (s *SQLiteTokenRepository) GetByStoredValue(ctx context.Context, storedValue string) (*domain.Token, error) {
	querier := database.GetTx(ctx, s.db)

	row := querier.QueryRowContext(ctx, sqliteSelectColumns+` WHERE stored_value = ?`, storedValue)
	return s.scan(row, "failed to get token by stored value")
}

// GetByStoredValueAndParameter retrieves a token record bound to the given parameter.
func (s *SQLiteTokenRepository) GetByStoredValueAndParameter(
	ctx context.Context,
	storedValue, parameter string,
) (*domain.Token, error) {
	querier := database.GetTx(ctx, s.db)

	row := querier.QueryRowContext(
		ctx,
		sqliteSelectColumns+` WHERE stored_value = ? AND parameter_value = ?`,
		storedValue,
		parameter,
	)
	return s.scan(row, "failed to get token by stored value and parameter")
}

// Consume atomically consumes one use of a matching record.
func (s *SQLiteTokenRepository) Consume(
	ctx context.Context,
	storedValue, parameter string,
	tokenType *string,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, s.db)

	query := sqliteConsumeQuery
	args := []any{now.UnixNano(), storedValue, parameter}
	if tokenType != nil {
		query += ` AND token_type = ?4`
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
func (s *SQLiteTokenRepository) Invalidate(ctx context.Context, storedValue string, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, s.db)

	query := `UPDATE auth_tokens SET status = 'INVALIDATED', updated_at = ?
			  WHERE stored_value = ? AND status IN ` + consumableStatuses

	result, err := querier.ExecContext(ctx, query, now.UnixNano(), storedValue)
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
func (s *SQLiteTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}

	querier := database.GetTx(ctx, s.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM auth_tokens WHERE expiry_time < ?`, before.UnixNano())
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
func (s *SQLiteTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}

	querier := database.GetTx(ctx, s.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM auth_tokens WHERE expiry_time < ?`, before.UnixNano()).
		Scan(&count)
	if err != nil {
		return 0, storeError(err, "failed to count expired tokens")
	}
	return count, nil
}

func (s *SQLiteTokenRepository) scan(row *sql.Row, message string) (*domain.Token, error) {
	var (
		token                          domain.Token
		id, status, hashingMode        string
		expiryTime, createdAt, updated int64
		usedAt                         sql.NullInt64
	)

	err := row.Scan(
		&id,
		&token.StoredValue,
		&token.Parameter,
		&token.TokenType,
		&status,
		&expiryTime,
		&token.UsageLimit,
		&token.UsageCount,
		&hashingMode,
		&token.Metadata,
		&createdAt,
		&updated,
		&usedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, storeError(err, message)
	}

	token.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse token id")
	}
	token.Status = domain.Status(status)
	token.HashingMode = domain.HashingMode(hashingMode)
	token.ExpiryTime = time.Unix(0, expiryTime).UTC()
	token.CreatedAt = time.Unix(0, createdAt).UTC()
	token.UpdatedAt = time.Unix(0, updated).UTC()
	if usedAt.Valid {
		t := time.Unix(0, usedAt.Int64).UTC()
		token.UsedAt = &t
	}

	return &token, nil
}

// isSQLiteUniqueViolation matches SQLITE_CONSTRAINT_UNIQUE and SQLITE_CONSTRAINT_PRIMARYKEY failures.
func isSQLiteUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint failed")
}
