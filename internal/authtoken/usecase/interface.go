// Package usecase implements the token lifecycle engine: issuing tokens, the atomic
// validate-and-consume step with failure classification, invalidation, and expiry
// cleanup. All cross-request coordination is delegated to the TokenRepository.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/authtokens/internal/authtoken/domain"
)

// TokenRepository is the storage contract the engine depends on. Lookups return
// domain.ErrTokenNotFound when absent; I/O failures wrap domain.ErrStoreUnavailable.
type TokenRepository interface {
	// Create persists a new record, failing with domain.ErrTokenAlreadyExists on a stored value collision.
	Create(ctx context.Context, token *domain.Token) error

	GetByStoredValue(ctx context.Context, storedValue string) (*domain.Token, error)

	GetByStoredValueAndParameter(ctx context.Context, storedValue, parameter string) (*domain.Token, error)

	// Consume increments the usage of the matching consumable record in a single
	// conditional update and returns the rows affected (0 or 1). A nil tokenType
	// matches any record type.
	Consume(ctx context.Context, storedValue, parameter string, tokenType *string, now time.Time) (int64, error)

	// Invalidate moves an ACTIVE or PARTIALLY_USED record to INVALIDATED and returns the rows affected.
	Invalidate(ctx context.Context, storedValue string, now time.Time) (int64, error)

	// DeleteExpired removes every record whose expiry is strictly before the given time, regardless of status.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)

	// CountExpired counts the records DeleteExpired would remove.
	CountExpired(ctx context.Context, before time.Time) (int64, error)
}

// TokenUseCase is the lifecycle engine exposed to front ends.
type TokenUseCase interface {
	// Generate issues a new token and returns its raw value exactly once.
	Generate(ctx context.Context, input *domain.GenerateTokenInput) (*domain.GeneratedToken, error)

	// Validate consumes one use of the token if it is usable with the given bindings.
	// A rejected token is reported in the result, not as an error.
	Validate(ctx context.Context, input *domain.ValidateTokenInput) (*domain.ValidationResult, error)

	// Invalidate retires the token. Missing or already retired tokens are reported
	// through the outcome and are not errors.
	Invalidate(ctx context.Context, token string) (domain.InvalidationOutcome, error)

	// CleanupExpired deletes (or, with dryRun, counts) every record past its expiry.
	CleanupExpired(ctx context.Context, dryRun bool) (int64, error)

	// Policy returns the configuration the engine was built with.
	Policy() domain.Policy
}
