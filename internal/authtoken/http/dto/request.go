// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	customValidation "github.com/allisson/authtokens/internal/validation"
)

// maxValiditySeconds bounds validity_seconds before it is converted to a time.Duration.
const maxValiditySeconds = int(domain.MaxValidity / time.Second)

// GenerateTokenRequest contains the options for issuing a token. Omitted fields fall
// back to the server policy.
type GenerateTokenRequest struct {
	Parameter       string  `json:"parameter"`
	TokenType       *string `json:"token_type,omitempty"`
	ValiditySeconds *int    `json:"validity_seconds,omitempty"`
	UsageLimit      *int    `json:"usage_limit,omitempty"`
	UnlimitedUsage  bool    `json:"unlimited_usage,omitempty"`
	HashingMode     *string `json:"hashing_mode,omitempty"` // "NONE" or "SHA256"
	Metadata        *string `json:"metadata,omitempty"`
}

// Validate checks if the generate token request is valid.
func (r *GenerateTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Parameter,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxParameterLength),
		),
		validation.Field(&r.TokenType,
			validation.NilOrNotEmpty,
			customValidation.TokenType,
			validation.Length(1, domain.MaxTokenTypeLength),
		),
		validation.Field(&r.ValiditySeconds,
			customValidation.Positive,
			validation.Max(maxValiditySeconds),
		),
		validation.Field(&r.UsageLimit,
			validation.When(r.UnlimitedUsage, validation.Nil.Error("must be omitted when unlimited_usage is true")),
			customValidation.Positive,
		),
		validation.Field(&r.HashingMode,
			validation.NilOrNotEmpty,
			customValidation.HashingMode,
		),
		validation.Field(&r.Metadata,
			validation.Length(0, domain.MaxMetadataLength),
		),
	)
}

// ToDomain converts the request into use case input. Call Validate first.
func (r *GenerateTokenRequest) ToDomain() (*domain.GenerateTokenInput, error) {
	input := &domain.GenerateTokenInput{
		Parameter:      r.Parameter,
		TokenType:      r.TokenType,
		UsageLimit:     r.UsageLimit,
		UnlimitedUsage: r.UnlimitedUsage,
		Metadata:       r.Metadata,
	}

	if r.ValiditySeconds != nil {
		validity := time.Duration(*r.ValiditySeconds) * time.Second
		input.Validity = &validity
	}

	if r.HashingMode != nil {
		mode, err := domain.ParseHashingMode(*r.HashingMode)
		if err != nil {
			return nil, err
		}
		input.HashingMode = &mode
	}

	return input, nil
}

// ValidateTokenRequest identifies the token to consume and the bindings it must match.
type ValidateTokenRequest struct {
	Parameter string  `json:"parameter"`
	Token     string  `json:"token"`
	TokenType *string `json:"token_type,omitempty"`
}

// Validate checks if the validate token request is valid.
func (r *ValidateTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Parameter,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxParameterLength),
		),
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxStoredValueLength),
		),
		validation.Field(&r.TokenType,
			validation.NilOrNotEmpty,
			validation.Length(1, domain.MaxTokenTypeLength),
		),
	)
}

// ToDomain converts the request into use case input.
func (r *ValidateTokenRequest) ToDomain() *domain.ValidateTokenInput {
	return &domain.ValidateTokenInput{
		Parameter: r.Parameter,
		Token:     r.Token,
		TokenType: r.TokenType,
	}
}

// InvalidateTokenRequest contains the token to retire.
type InvalidateTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the invalidate token request is valid.
func (r *InvalidateTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxStoredValueLength),
		),
	)
}
