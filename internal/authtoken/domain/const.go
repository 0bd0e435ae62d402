// Package domain defines the usage-limited authorization token model: the stored token
// record, its lifecycle statuses, the hashing-at-rest variants, and the typed outcomes
// returned by validation and invalidation.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a token record.
type Status string

const (
	StatusActive        Status = "ACTIVE"
	StatusPartiallyUsed Status = "PARTIALLY_USED"
	StatusUsed          Status = "USED"
	StatusInvalidated   Status = "INVALIDATED"
	// StatusExpired is derived from the expiry time for reporting and is never persisted.
	StatusExpired Status = "EXPIRED"
)

// Validate checks that the status may be persisted.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusPartiallyUsed, StatusUsed, StatusInvalidated:
		return nil
	default:
		return fmt.Errorf("invalid stored status: %q", string(s))
	}
}

// IsConsumable reports whether a record in this status can still be consumed.
// Expiry is checked separately.
func (s Status) IsConsumable() bool {
	return s == StatusActive || s == StatusPartiallyUsed
}

// IsTerminal reports whether the status can never change again.
func (s Status) IsTerminal() bool {
	return s == StatusUsed || s == StatusInvalidated || s == StatusExpired
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// HashingMode determines how the stored value was derived from the raw token.
type HashingMode string

const (
	HashingModeNone   HashingMode = "NONE"
	HashingModeSHA256 HashingMode = "SHA256"
)

// Validate checks if the hashing mode is a supported variant.
func (h HashingMode) Validate() error {
	switch h {
	case HashingModeNone, HashingModeSHA256:
		return nil
	default:
		return ErrInvalidHashingMode
	}
}

// String returns the string representation of the hashing mode.
func (h HashingMode) String() string {
	return string(h)
}

// ParseHashingMode converts a case-insensitive name ("none", "sha256") to a HashingMode.
func ParseHashingMode(value string) (HashingMode, error) {
	mode := HashingMode(strings.ToUpper(strings.TrimSpace(value)))
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

// FailureReason explains why a validation did not consume the token.
type FailureReason string

const (
	FailureNotFound           FailureReason = "NOT_FOUND"
	FailureExpired            FailureReason = "EXPIRED"
	FailureInvalidated        FailureReason = "INVALIDATED"
	FailureUsageLimitExceeded FailureReason = "USAGE_LIMIT_EXCEEDED"
	FailureParameterMismatch  FailureReason = "PARAMETER_MISMATCH"
	FailureTokenTypeMismatch  FailureReason = "TOKEN_TYPE_MISMATCH"
	// FailureConcurrentConflict is returned when the consume lost to a concurrent writer
	// and the fresh re-read no longer explains the rejection.
	FailureConcurrentConflict FailureReason = "CONCURRENT_CONFLICT"
)

// String returns the string representation of the failure reason.
func (f FailureReason) String() string {
	return string(f)
}

// InvalidationOutcome reports what an invalidation request did.
type InvalidationOutcome string

const (
	InvalidationInvalidated InvalidationOutcome = "invalidated"
	InvalidationNotFound    InvalidationOutcome = "not_found"
	InvalidationNotActive   InvalidationOutcome = "not_active"
)

// String returns the string representation of the invalidation outcome.
func (o InvalidationOutcome) String() string {
	return string(o)
}

// Column limits of the auth_tokens table.
const (
	MaxStoredValueLength = 512
	MaxParameterLength   = 512
	MaxTokenTypeLength   = 100
	MaxMetadataLength    = 2000

	// MinTokenLength and MaxTokenLength bound the entropy drawn per token, in bytes.
	// The hex rendering doubles it, so MaxTokenLength keeps raw tokens within the column.
	MinTokenLength = 16
	MaxTokenLength = 128

	// MaxGenerateAttempts bounds retries after a stored value collision.
	MaxGenerateAttempts = 3
)

// MaxValidity caps token validity so expiry arithmetic stays within int64 nanoseconds.
const MaxValidity = 365 * 24 * time.Hour
