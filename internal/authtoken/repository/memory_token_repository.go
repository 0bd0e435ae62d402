package repository

import (
	"context"
	"sync"
	"time"

	"github.com/allisson/authtokens/internal/authtoken/domain"
)

// MemoryTokenRepository keeps token records in process memory. A single mutex
// serializes every operation, which makes Consume as atomic as the SQL stores.
// Records are lost on restart.
type MemoryTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*domain.Token
}

// NewMemoryTokenRepository creates an empty in-memory token repository.
func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{tokens: make(map[string]*domain.Token)}
}

// Create stores a copy of the token.
func (m *MemoryTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	if err := ctx.Err(); err != nil {
		return storeError(err, "failed to create token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tokens[token.StoredValue]; ok {
		return domain.ErrTokenAlreadyExists
	}
	m.tokens[token.StoredValue] = cloneToken(token)
	return nil
}

// GetByStoredValue returns a copy of the record with the given stored value.
func (m *MemoryTokenRepository) GetByStoredValue(ctx context.Context, storedValue string) (*domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err, "failed to get token by stored value")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens[storedValue]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return cloneToken(token), nil
}

// GetByStoredValueAndParameter returns a copy of the record bound to the given parameter.
func (m *MemoryTokenRepository) GetByStoredValueAndParameter(
	ctx context.Context,
	storedValue, parameter string,
) (*domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError(err, "failed to get token by stored value and parameter")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens[storedValue]
	if !ok || token.Parameter != parameter {
		return nil, domain.ErrTokenNotFound
	}
	return cloneToken(token), nil
}

// Consume applies the same predicate as the SQL stores under the repository lock.
func (m *MemoryTokenRepository) Consume(
	ctx context.Context,
	storedValue, parameter string,
	tokenType *string,
	now time.Time,
) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeError(err, "failed to consume token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens[storedValue]
	if !ok || token.Parameter != parameter || !token.IsConsumableAt(now) {
		return 0, nil
	}
	if tokenType != nil && (token.TokenType == nil || *token.TokenType != *tokenType) {
		return 0, nil
	}

	token.UsageCount++
	if token.UsageLimit != nil && token.UsageCount >= *token.UsageLimit {
		token.Status = domain.StatusUsed
	} else {
		token.Status = domain.StatusPartiallyUsed
	}
	usedAt := now
	token.UsedAt = &usedAt
	token.UpdatedAt = now

	return 1, nil
}

// Invalidate moves a consumable record to INVALIDATED.
func (m *MemoryTokenRepository) Invalidate(ctx context.Context, storedValue string, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeError(err, "failed to invalidate token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens[storedValue]
	if !ok || !token.Status.IsConsumable() {
		return 0, nil
	}

	token.Status = domain.StatusInvalidated
	token.UpdatedAt = now
	return 1, nil
}

// DeleteExpired removes records that expired before the given time.
func (m *MemoryTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, storeError(err, "failed to delete expired tokens")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for key, token := range m.tokens {
		if token.ExpiryTime.Before(before) {
			delete(m.tokens, key)
			deleted++
		}
	}
	return deleted, nil
}

// CountExpired counts records that expired before the given time.
func (m *MemoryTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := checkCutoff(before); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, storeError(err, "failed to count expired tokens")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, token := range m.tokens {
		if token.ExpiryTime.Before(before) {
			count++
		}
	}
	return count, nil
}

func cloneToken(token *domain.Token) *domain.Token {
	clone := *token
	if token.TokenType != nil {
		v := *token.TokenType
		clone.TokenType = &v
	}
	if token.UsageLimit != nil {
		v := *token.UsageLimit
		clone.UsageLimit = &v
	}
	if token.Metadata != nil {
		v := *token.Metadata
		clone.Metadata = &v
	}
	if token.UsedAt != nil {
		v := *token.UsedAt
		clone.UsedAt = &v
	}
	return &clone
}
