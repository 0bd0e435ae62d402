package domain

import (
	"strings"

	"github.com/allisson/authtokens/internal/errors"
)

// Validate checks the generation request against the column limits and the
// usage limit and validity rules.
func (i *GenerateTokenInput) Validate() error {
	if strings.TrimSpace(i.Parameter) == "" {
		return ErrParameterRequired
	}
	if len(i.Parameter) > MaxParameterLength {
		return errors.Wrapf(ErrValueTooLong, "parameter longer than %d", MaxParameterLength)
	}
	if i.TokenType != nil && len(*i.TokenType) > MaxTokenTypeLength {
		return errors.Wrapf(ErrValueTooLong, "token type longer than %d", MaxTokenTypeLength)
	}
	if i.Metadata != nil && len(*i.Metadata) > MaxMetadataLength {
		return errors.Wrapf(ErrValueTooLong, "metadata longer than %d", MaxMetadataLength)
	}
	if i.Validity != nil && (*i.Validity <= 0 || *i.Validity > MaxValidity) {
		return ErrInvalidValidity
	}
	if !i.UnlimitedUsage && i.UsageLimit != nil && *i.UsageLimit < 1 {
		return ErrInvalidUsageLimit
	}
	if i.HashingMode != nil {
		if err := i.HashingMode.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that the parameter and token are present.
func (i *ValidateTokenInput) Validate() error {
	if strings.TrimSpace(i.Parameter) == "" {
		return ErrParameterRequired
	}
	if strings.TrimSpace(i.Token) == "" {
		return ErrTokenRequired
	}
	return nil
}
