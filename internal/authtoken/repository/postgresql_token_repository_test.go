package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	"github.com/allisson/authtokens/internal/testutil"
)

func TestPostgreSQLTokenRepository(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	runTokenRepositoryContract(t, func(t *testing.T) usecase.TokenRepository {
		db := testutil.SetupPostgresDB(t)
		t.Cleanup(func() { testutil.TeardownDB(t, db) })
		return NewPostgreSQLTokenRepository(db)
	})
}

func TestPostgreSQLTokenRepository_Create_UniqueViolation(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLTokenRepository(db)
	token := newTestToken("dup", time.Now().UTC())

	sqlMock.ExpectExec("INSERT INTO auth_tokens").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err = repo.Create(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgreSQLTokenRepository_Create_DriverError(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLTokenRepository(db)

	sqlMock.ExpectExec("INSERT INTO auth_tokens").WillReturnError(driver.ErrBadConn)

	err = repo.Create(context.Background(), newTestToken("bad-conn", time.Now().UTC()))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrTokenAlreadyExists)
}

func TestPostgreSQLTokenRepository_Consume_Query(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("WithoutType", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		sqlMock.ExpectExec(regexp.QuoteMeta(postgresConsumeQuery)).
			WithArgs("stored", "user-42", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := NewPostgreSQLTokenRepository(db).Consume(ctx, "stored", "user-42", nil, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("WithType", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		sqlMock.ExpectExec(regexp.QuoteMeta(postgresConsumeQuery+` AND token_type = $4`)).
			WithArgs("stored", "user-42", now, "PASSWORD_RESET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		tokenType := "PASSWORD_RESET"
		affected, err := NewPostgreSQLTokenRepository(db).Consume(ctx, "stored", "user-42", &tokenType, now)
		require.NoError(t, err)
		assert.Zero(t, affected)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("DriverError", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		sqlMock.ExpectExec("UPDATE auth_tokens").WillReturnError(errors.New("connection reset by peer"))

		_, err = NewPostgreSQLTokenRepository(db).Consume(ctx, "stored", "user-42", nil, now)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestPostgreSQLTokenRepository_GetByStoredValue_NotFound(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	sqlMock.ExpectQuery("SELECT (.+) FROM auth_tokens WHERE stored_value = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewPostgreSQLTokenRepository(db).GetByStoredValue(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
