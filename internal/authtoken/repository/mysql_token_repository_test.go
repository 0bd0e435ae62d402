package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	"github.com/allisson/authtokens/internal/testutil"
)

func TestMySQLTokenRepository(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	runTokenRepositoryContract(t, func(t *testing.T) usecase.TokenRepository {
		db := testutil.SetupMySQLDB(t)
		t.Cleanup(func() { testutil.TeardownDB(t, db) })
		return NewMySQLTokenRepository(db)
	})
}

func TestMySQLTokenRepository_Create_DuplicateEntry(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLTokenRepository(db)

	sqlMock.ExpectExec("INSERT INTO auth_tokens").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'dup' for key 'uk_auth_tokens_stored_value'"})

	err = repo.Create(context.Background(), newTestToken("dup", time.Now().UTC()))
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMySQLTokenRepository_Consume_Query(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	sqlMock.ExpectExec(regexp.QuoteMeta(mysqlConsumeQuery+` AND token_type = ?`)).
		WithArgs(now, now, "stored", "user-42", now, "EMAIL_VERIFICATION").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tokenType := "EMAIL_VERIFICATION"
	affected, err := NewMySQLTokenRepository(db).Consume(ctx, "stored", "user-42", &tokenType, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMySQLTokenRepository_StatusDerivedBeforeIncrement(t *testing.T) {
	statusAt := regexp.MustCompile(`SET status = CASE`).FindStringIndex(mysqlConsumeQuery)
	countAt := regexp.MustCompile(`usage_count = usage_count \+ 1`).FindStringIndex(mysqlConsumeQuery)

	require.NotNil(t, statusAt)
	require.NotNil(t, countAt)
	assert.Less(t, statusAt[0], countAt[0])
}

func TestMySQLTokenRepository_Scan_UnmarshalsBinaryID(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	token := newTestToken("stored", now)
	id, err := token.ID.MarshalBinary()
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"id", "stored_value", "parameter_value", "token_type", "status", "expiry_time", "usage_limit",
		"usage_count", "hashing_mode", "metadata", "created_at", "updated_at", "used_at",
	}).AddRow(id, "stored", "user-42", nil, "ACTIVE", token.ExpiryTime, 2, 0, "NONE", nil, now, now, nil)

	sqlMock.ExpectQuery("SELECT (.+) FROM auth_tokens WHERE stored_value = \\?").
		WithArgs("stored").
		WillReturnRows(rows)

	got, err := NewMySQLTokenRepository(db).GetByStoredValue(context.Background(), "stored")
	require.NoError(t, err)
	assert.Equal(t, token.ID, got.ID)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Nil(t, got.TokenType)
	assert.Equal(t, 2, *got.UsageLimit)
}
