package dto

import (
	"time"

	"github.com/allisson/authtokens/internal/authtoken/domain"
)

// GenerateTokenResponse carries the raw token. It is the only response that ever contains it.
type GenerateTokenResponse struct {
	Token         string    `json:"token"`
	ExpiryTime    time.Time `json:"expiry_time"`
	UsageLimit    *int      `json:"usage_limit"`    // null when unlimited
	RemainingUses *int      `json:"remaining_uses"` // null when unlimited
	TokenType     *string   `json:"token_type,omitempty"`
	HashingMode   string    `json:"hashing_mode"`
}

// MapGeneratedTokenToResponse converts a generated token to an API response.
func MapGeneratedTokenToResponse(token *domain.GeneratedToken) GenerateTokenResponse {
	return GenerateTokenResponse{
		Token:         token.Token,
		ExpiryTime:    token.ExpiryTime,
		UsageLimit:    token.UsageLimit,
		RemainingUses: token.RemainingUses,
		TokenType:     token.TokenType,
		HashingMode:   token.HashingMode.String(),
	}
}

// ValidateTokenResponse represents the outcome of a validation.
type ValidateTokenResponse struct {
	Valid         bool   `json:"valid"`
	FailureReason string `json:"failure_reason,omitempty"`
	RemainingUses *int   `json:"remaining_uses"`
}

// MapValidationResultToResponse converts a validation result to an API response.
func MapValidationResultToResponse(result *domain.ValidationResult) ValidateTokenResponse {
	return ValidateTokenResponse{
		Valid:         result.Valid,
		FailureReason: result.FailureReason.String(),
		RemainingUses: result.RemainingUses,
	}
}

// InvalidateTokenResponse reports what an invalidation did.
type InvalidateTokenResponse struct {
	Outcome string `json:"outcome"` // "invalidated", "not_found" or "not_active"
}

// CleanupExpiredResponse reports how many expired records were removed, or would be with dry_run.
type CleanupExpiredResponse struct {
	Count  int64 `json:"count"`
	DryRun bool  `json:"dry_run"`
}

// PolicyResponse exposes the token policy so front ends can honor its advisory settings.
type PolicyResponse struct {
	DefaultValiditySeconds int64  `json:"default_validity_seconds"`
	DefaultUsageLimit      int    `json:"default_usage_limit"`
	TokenLength            int    `json:"token_length"`
	DefaultHashingMode     string `json:"default_hashing_mode"`
	CleanupEnabled         bool   `json:"cleanup_enabled"`
	CleanupIntervalSeconds int64  `json:"cleanup_interval_seconds"`
	AllowMultipleActive    bool   `json:"allow_multiple_active"`
}

// MapPolicyToResponse converts the policy to an API response.
func MapPolicyToResponse(policy domain.Policy) PolicyResponse {
	return PolicyResponse{
		DefaultValiditySeconds: int64(policy.DefaultValidity.Seconds()),
		DefaultUsageLimit:      policy.DefaultUsageLimit,
		TokenLength:            policy.TokenLength,
		DefaultHashingMode:     policy.DefaultHashingMode().String(),
		CleanupEnabled:         policy.CleanupEnabled,
		CleanupIntervalSeconds: int64(policy.CleanupInterval.Seconds()),
		AllowMultipleActive:    policy.AllowMultipleActive,
	}
}
