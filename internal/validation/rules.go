// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	apperrors "github.com/allisson/authtokens/internal/errors"
)

// tokenTypeRegex matches identifiers such as EMAIL_VERIFICATION or password-reset.
var tokenTypeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.:\-]*$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// TokenType validates a token type label.
var TokenType = validation.NewStringRuleWithError(
	func(s string) bool {
		return tokenTypeRegex.MatchString(s)
	},
	validation.NewError(
		"validation_token_type",
		"must start with a letter or digit and contain only letters, digits, '_', '.', ':' or '-'",
	),
)

// HashingMode validates a hashing mode name, case-insensitively.
var HashingMode = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := domain.ParseHashingMode(s)
		return err == nil
	},
	validation.NewError("validation_hashing_mode", "must be 'NONE' or 'SHA256'"),
)

// Positive validates that an optional integer is at least 1 when set. Unlike
// validation.Min it rejects a zero value instead of treating it as empty.
var Positive = validation.By(func(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	n, err := validation.ToInt(v)
	if err != nil {
		return validation.NewError("validation_positive_type", "must be an integer")
	}
	if n < 1 {
		return validation.NewError("validation_positive", "must be at least 1")
	}
	return nil
})
