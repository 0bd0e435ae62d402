package domain

import (
	"fmt"
	"time"
)

// Policy is the immutable token configuration handed to the lifecycle engine at
// construction. Each engine instance owns its copy.
type Policy struct {
	DefaultValidity   time.Duration
	DefaultUsageLimit int
	// TokenLength is the number of random bytes per token.
	TokenLength     int
	HashingEnabled  bool
	CleanupEnabled  bool
	CleanupInterval time.Duration
	// AllowMultipleActive is advisory for front ends; the engine never enforces one
	// active token per parameter.
	AllowMultipleActive bool
}

// DefaultPolicy returns the stock policy: 30 minute validity, single use, 32 byte
// tokens, no hashing, no background cleanup, multiple active tokens allowed.
func DefaultPolicy() Policy {
	return Policy{
		DefaultValidity:     30 * time.Minute,
		DefaultUsageLimit:   1,
		TokenLength:         32,
		HashingEnabled:      false,
		CleanupEnabled:      false,
		CleanupInterval:     5 * time.Minute,
		AllowMultipleActive: true,
	}
}

// Validate rejects policies the engine cannot run with. Failures wrap ErrConfigurationFatal.
func (p Policy) Validate() error {
	if p.DefaultValidity <= 0 || p.DefaultValidity > MaxValidity {
		return fmt.Errorf("%w: default validity must be in (0, %s], got %s", ErrConfigurationFatal, MaxValidity, p.DefaultValidity)
	}
	if p.DefaultUsageLimit < 1 {
		return fmt.Errorf("%w: default usage limit must be at least 1, got %d", ErrConfigurationFatal, p.DefaultUsageLimit)
	}
	if p.TokenLength < MinTokenLength || p.TokenLength > MaxTokenLength {
		return fmt.Errorf(
			"%w: token length must be between %d and %d bytes, got %d",
			ErrConfigurationFatal,
			MinTokenLength,
			MaxTokenLength,
			p.TokenLength,
		)
	}
	if p.CleanupEnabled && p.CleanupInterval <= 0 {
		return fmt.Errorf("%w: cleanup interval must be positive when cleanup is enabled", ErrConfigurationFatal)
	}
	return nil
}

// DefaultHashingMode is the mode applied when a request does not name one.
func (p Policy) DefaultHashingMode() HashingMode {
	if p.HashingEnabled {
		return HashingModeSHA256
	}
	return HashingModeNone
}
