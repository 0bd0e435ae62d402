package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is the durable record behind an issued token. StoredValue holds either the raw
// token or its SHA-256 digest depending on HashingMode; the raw value of a hashed token
// is never persisted.
type Token struct {
	ID          uuid.UUID
	StoredValue string
	Parameter   string
	TokenType   *string
	Status      Status
	ExpiryTime  time.Time
	// UsageLimit is nil for unlimited tokens.
	UsageLimit  *int
	UsageCount  int
	HashingMode HashingMode
	Metadata    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UsedAt      *time.Time
}

// IsExpiredAt reports whether the token expiry is at or before now.
func (t *Token) IsExpiredAt(now time.Time) bool {
	return !t.ExpiryTime.After(now)
}

// IsConsumableAt reports whether a consume issued at now would match this record,
// ignoring the parameter and type bindings.
func (t *Token) IsConsumableAt(now time.Time) bool {
	if !t.Status.IsConsumable() || t.IsExpiredAt(now) {
		return false
	}
	return t.UsageLimit == nil || t.UsageCount < *t.UsageLimit
}

// EffectiveStatus returns StatusExpired for records past their expiry that have not
// reached another terminal state, otherwise the stored status.
func (t *Token) EffectiveStatus(now time.Time) Status {
	if t.Status.IsConsumable() && t.IsExpiredAt(now) {
		return StatusExpired
	}
	return t.Status
}

// RemainingUses returns the number of successful validations left, or nil when unlimited.
func (t *Token) RemainingUses() *int {
	if t.UsageLimit == nil {
		return nil
	}
	remaining := *t.UsageLimit - t.UsageCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// ClassifyFailure explains why a consume with the given bindings did not match this
// record. The first matching rule wins.
func (t *Token) ClassifyFailure(parameter string, tokenType *string, now time.Time) FailureReason {
	switch {
	case t.Status == StatusUsed:
		return FailureUsageLimitExceeded
	case t.Status == StatusInvalidated:
		return FailureInvalidated
	case t.IsExpiredAt(now):
		return FailureExpired
	case t.Parameter != parameter:
		return FailureParameterMismatch
	case tokenType != nil && (t.TokenType == nil || *t.TokenType != *tokenType):
		return FailureTokenTypeMismatch
	case t.UsageLimit != nil && t.UsageCount >= *t.UsageLimit:
		return FailureUsageLimitExceeded
	default:
		return FailureConcurrentConflict
	}
}

// GenerateTokenInput holds the caller-supplied options for issuing a token.
// Nil fields fall back to the policy defaults.
type GenerateTokenInput struct {
	Parameter      string
	TokenType      *string
	Validity       *time.Duration
	UsageLimit     *int
	UnlimitedUsage bool
	HashingMode    *HashingMode
	Metadata       *string
}

// GeneratedToken is returned once per issued token. Token is the raw value; it is the
// only time the caller sees it.
type GeneratedToken struct {
	Token         string
	ExpiryTime    time.Time
	UsageLimit    *int
	RemainingUses *int
	TokenType     *string
	HashingMode   HashingMode
}

// ValidateTokenInput identifies the token to consume and the bindings it must satisfy.
type ValidateTokenInput struct {
	Parameter string
	Token     string
	TokenType *string
}

// ValidationResult is the typed outcome of a validation. A rejected token is not an error.
type ValidationResult struct {
	Valid         bool
	FailureReason FailureReason
	RemainingUses *int
}

// NewValidResult builds a successful validation result.
func NewValidResult(remainingUses *int) *ValidationResult {
	return &ValidationResult{Valid: true, RemainingUses: remainingUses}
}

// NewFailedResult builds a rejected validation result.
func NewFailedResult(reason FailureReason) *ValidationResult {
	return &ValidationResult{Valid: false, FailureReason: reason}
}
