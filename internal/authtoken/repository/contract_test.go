package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	apperrors "github.com/allisson/authtokens/internal/errors"
)

var (
	_ usecase.TokenRepository = (*PostgreSQLTokenRepository)(nil)
	_ usecase.TokenRepository = (*MySQLTokenRepository)(nil)
	_ usecase.TokenRepository = (*SQLiteTokenRepository)(nil)
	_ usecase.TokenRepository = (*MemoryTokenRepository)(nil)
)

func ptr[T any](v T) *T {
	return &v
}

func newTestToken(storedValue string, now time.Time) *domain.Token {
	return &domain.Token{
		ID:          uuid.Must(uuid.NewV7()),
		StoredValue: storedValue,
		Parameter:   "user-42",
		Status:      domain.StatusActive,
		ExpiryTime:  now.Add(time.Hour),
		UsageLimit:  ptr(2),
		HashingMode: domain.HashingModeNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// runTokenRepositoryContract checks the behavior every TokenRepository implementation shares.
// newRepo must return a repository backed by an empty store.
func runTokenRepositoryContract(t *testing.T, newRepo func(t *testing.T) usecase.TokenRepository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("CreateAndGet", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("create-and-get", now)
		token.TokenType = ptr("EMAIL_VERIFICATION")
		token.Metadata = ptr(`{"source":"signup"}`)

		require.NoError(t, repo.Create(ctx, token))

		got, err := repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, token.ID, got.ID)
		assert.Equal(t, token.Parameter, got.Parameter)
		require.NotNil(t, got.TokenType)
		assert.Equal(t, "EMAIL_VERIFICATION", *got.TokenType)
		assert.Equal(t, domain.StatusActive, got.Status)
		assert.True(t, token.ExpiryTime.Equal(got.ExpiryTime))
		require.NotNil(t, got.UsageLimit)
		assert.Equal(t, 2, *got.UsageLimit)
		assert.Equal(t, 0, got.UsageCount)
		assert.Equal(t, domain.HashingModeNone, got.HashingMode)
		assert.Equal(t, `{"source":"signup"}`, *got.Metadata)
		assert.Nil(t, got.UsedAt)

		byParam, err := repo.GetByStoredValueAndParameter(ctx, token.StoredValue, "user-42")
		require.NoError(t, err)
		assert.Equal(t, token.ID, byParam.ID)

		_, err = repo.GetByStoredValueAndParameter(ctx, token.StoredValue, "user-99")
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.GetByStoredValue(ctx, "missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("DuplicateStoredValue", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newTestToken("duplicate", now)))

		err := repo.Create(ctx, newTestToken("duplicate", now))
		assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)
	})

	t.Run("ConsumeUntilUsed", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("consume-limited", now)
		require.NoError(t, repo.Create(ctx, token))

		consumeAt := now.Add(time.Minute)

		affected, err := repo.Consume(ctx, token.StoredValue, "user-42", nil, consumeAt)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		got, err := repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPartiallyUsed, got.Status)
		assert.Equal(t, 1, got.UsageCount)
		require.NotNil(t, got.UsedAt)
		assert.True(t, consumeAt.Equal(*got.UsedAt))
		assert.True(t, consumeAt.Equal(got.UpdatedAt))

		affected, err = repo.Consume(ctx, token.StoredValue, "user-42", nil, consumeAt)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		got, err = repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUsed, got.Status)
		assert.Equal(t, 2, got.UsageCount)

		affected, err = repo.Consume(ctx, token.StoredValue, "user-42", nil, consumeAt)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("ConsumeUnlimited", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("consume-unlimited", now)
		token.UsageLimit = nil
		require.NoError(t, repo.Create(ctx, token))

		for i := 0; i < 5; i++ {
			affected, err := repo.Consume(ctx, token.StoredValue, "user-42", nil, now)
			require.NoError(t, err)
			require.Equal(t, int64(1), affected)
		}

		got, err := repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPartiallyUsed, got.Status)
		assert.Equal(t, 5, got.UsageCount)
		assert.Nil(t, got.UsageLimit)
	})

	t.Run("ConsumeRespectsBindings", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("consume-bindings", now)
		token.TokenType = ptr("PASSWORD_RESET")
		require.NoError(t, repo.Create(ctx, token))

		tests := []struct {
			name      string
			parameter string
			tokenType *string
			at        time.Time
		}{
			{"parameter mismatch", "user-99", nil, now},
			{"type mismatch", "user-42", ptr("EMAIL_VERIFICATION"), now},
			{"expiry boundary", "user-42", nil, token.ExpiryTime},
			{"after expiry", "user-42", nil, token.ExpiryTime.Add(time.Second)},
		}
		for _, tt := range tests {
			affected, err := repo.Consume(ctx, token.StoredValue, tt.parameter, tt.tokenType, tt.at)
			require.NoError(t, err, tt.name)
			assert.Zero(t, affected, tt.name)
		}

		got, err := repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, 0, got.UsageCount)
		assert.Equal(t, domain.StatusActive, got.Status)

		affected, err := repo.Consume(ctx, token.StoredValue, "user-42", ptr("PASSWORD_RESET"), now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("ConsumeUntypedRecordWithType", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("consume-untyped", now)
		require.NoError(t, repo.Create(ctx, token))

		affected, err := repo.Consume(ctx, token.StoredValue, "user-42", ptr("EMAIL_VERIFICATION"), now)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("Invalidate", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("invalidate", now)
		require.NoError(t, repo.Create(ctx, token))

		affected, err := repo.Invalidate(ctx, token.StoredValue, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		got, err := repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInvalidated, got.Status)

		affected, err = repo.Invalidate(ctx, token.StoredValue, now)
		require.NoError(t, err)
		assert.Zero(t, affected)

		affected, err = repo.Consume(ctx, token.StoredValue, "user-42", nil, now)
		require.NoError(t, err)
		assert.Zero(t, affected)

		affected, err = repo.Invalidate(ctx, "missing", now)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("DeleteAndCountExpired", func(t *testing.T) {
		repo := newRepo(t)

		expired := newTestToken("expired", now)
		expired.ExpiryTime = now.Add(-time.Minute)
		usedAndExpired := newTestToken("used-expired", now)
		usedAndExpired.ExpiryTime = now.Add(-time.Hour)
		usedAndExpired.Status = domain.StatusUsed
		usedAndExpired.UsageCount = 2
		boundary := newTestToken("boundary", now)
		boundary.ExpiryTime = now
		live := newTestToken("live", now)

		for _, token := range []*domain.Token{expired, usedAndExpired, boundary, live} {
			require.NoError(t, repo.Create(ctx, token))
		}

		count, err := repo.CountExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		deleted, err := repo.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		_, err = repo.GetByStoredValue(ctx, "expired")
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
		_, err = repo.GetByStoredValue(ctx, "boundary")
		assert.NoError(t, err)
		_, err = repo.GetByStoredValue(ctx, "live")
		assert.NoError(t, err)

		deleted, err = repo.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("ZeroCutoff", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.DeleteExpired(ctx, time.Time{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = repo.CountExpired(ctx, time.Time{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("ConcurrentConsume", func(t *testing.T) {
		repo := newRepo(t)
		token := newTestToken("concurrent", now)
		token.UsageLimit = ptr(3)
		require.NoError(t, repo.Create(ctx, token))

		var consumed atomic.Int64
		var g errgroup.Group
		for i := 0; i < 20; i++ {
			g.Go(func() error {
				affected, err := repo.Consume(ctx, token.StoredValue, "user-42", nil, now)
				if err != nil {
					return fmt.Errorf("consume: %w", err)
				}
				consumed.Add(affected)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int64(3), consumed.Load())

		got, err := repo.GetByStoredValue(ctx, token.StoredValue)
		require.NoError(t, err)
		assert.Equal(t, 3, got.UsageCount)
		assert.Equal(t, domain.StatusUsed, got.Status)
	})
}
