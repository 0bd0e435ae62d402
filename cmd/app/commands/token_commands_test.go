package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/usecase/mocks"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRunGenerateToken(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Generate(ctx, mock.MatchedBy(func(input *domain.GenerateTokenInput) bool {
				return input.Parameter == "user-42" &&
					input.TokenType != nil && *input.TokenType == "PASSWORD_RESET" &&
					input.Validity != nil && *input.Validity == 10*time.Minute &&
					input.UsageLimit != nil && *input.UsageLimit == 3 &&
					input.HashingMode != nil && *input.HashingMode == domain.HashingModeSHA256
			})).
			Return(&domain.GeneratedToken{
				Token:         "raw-token-value",
				ExpiryTime:    expiry,
				UsageLimit:    ptr(3),
				RemainingUses: ptr(3),
				TokenType:     ptr("PASSWORD_RESET"),
				HashingMode:   domain.HashingModeSHA256,
			}, nil).
			Once()

		var out bytes.Buffer
		err := RunGenerateToken(ctx, mockUseCase, logger, &out, GenerateTokenOptions{
			Parameter:       "user-42",
			TokenType:       "PASSWORD_RESET",
			ValiditySeconds: 600,
			UsageLimit:      3,
			HashingMode:     "SHA256",
		}, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "raw-token-value")
		assert.Contains(t, out.String(), "2026-01-02T03:04:05Z")
		assert.Contains(t, out.String(), "Remaining uses: 3")
		assert.Contains(t, out.String(), "PASSWORD_RESET")
		assert.Contains(t, out.String(), "will not be shown again")
	})

	t.Run("json-output-unlimited", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Generate(ctx, &domain.GenerateTokenInput{Parameter: "user-42", UnlimitedUsage: true}).
			Return(&domain.GeneratedToken{
				Token:       "raw-token-value",
				ExpiryTime:  expiry,
				HashingMode: domain.HashingModeNone,
			}, nil).
			Once()

		var out bytes.Buffer
		err := RunGenerateToken(ctx, mockUseCase, logger, &out, GenerateTokenOptions{
			Parameter: "user-42",
			Unlimited: true,
		}, "json")

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"token": "raw-token-value"`)
		assert.Contains(t, out.String(), `"usage_limit": null`)
		assert.Contains(t, out.String(), `"hashing_mode": "NONE"`)
	})

	t.Run("invalid-options", func(t *testing.T) {
		tests := []struct {
			name string
			opts GenerateTokenOptions
		}{
			{"missing parameter", GenerateTokenOptions{}},
			{"negative validity", GenerateTokenOptions{Parameter: "user-42", ValiditySeconds: -1}},
			{"overflowing validity", GenerateTokenOptions{Parameter: "user-42", ValiditySeconds: 18446744074}},
			{"limit with unlimited", GenerateTokenOptions{Parameter: "user-42", UsageLimit: 2, Unlimited: true}},
			{"unknown hashing mode", GenerateTokenOptions{Parameter: "user-42", HashingMode: "MD5"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockUseCase := mocks.NewMockTokenUseCase(t)

				err := RunGenerateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, tt.opts, "text")
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid token options")
			})
		}
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)

		err := RunGenerateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, GenerateTokenOptions{Parameter: "user-42"}, "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Generate(ctx, mock.Anything).
			Return(nil, domain.ErrStoreUnavailable).
			Once()

		err := RunGenerateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, GenerateTokenOptions{Parameter: "user-42"}, "text")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestRunValidateToken(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("valid-text", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Validate(ctx, &domain.ValidateTokenInput{Parameter: "user-42", Token: "raw", TokenType: ptr("EMAIL_VERIFICATION")}).
			Return(domain.NewValidResult(ptr(1)), nil).
			Once()

		var out bytes.Buffer
		err := RunValidateToken(ctx, mockUseCase, logger, &out, "user-42", "raw", "EMAIL_VERIFICATION", "text")

		require.NoError(t, err)
		assert.Equal(t, "Token is valid (remaining uses: 1)\n", out.String())
	})

	t.Run("valid-unlimited", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Validate(ctx, &domain.ValidateTokenInput{Parameter: "user-42", Token: "raw"}).
			Return(domain.NewValidResult(nil), nil).
			Once()

		var out bytes.Buffer
		err := RunValidateToken(ctx, mockUseCase, logger, &out, "user-42", "raw", "", "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "remaining uses: unlimited")
	})

	t.Run("rejected-json", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Validate(ctx, mock.Anything).
			Return(domain.NewFailedResult(domain.FailureExpired), nil).
			Once()

		var out bytes.Buffer
		err := RunValidateToken(ctx, mockUseCase, logger, &out, "user-42", "raw", "", "json")

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"valid": false`)
		assert.Contains(t, out.String(), `"failure_reason": "EXPIRED"`)
	})

	t.Run("rejected-text", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Validate(ctx, mock.Anything).
			Return(domain.NewFailedResult(domain.FailureParameterMismatch), nil).
			Once()

		var out bytes.Buffer
		err := RunValidateToken(ctx, mockUseCase, logger, &out, "user-42", "raw", "", "text")

		require.NoError(t, err)
		assert.Equal(t, "Token rejected: PARAMETER_MISMATCH\n", out.String())
	})

	t.Run("missing-token", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)

		err := RunValidateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, "user-42", "", "", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid validation options")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().
			Validate(ctx, mock.Anything).
			Return(nil, domain.ErrStoreUnavailable).
			Once()

		err := RunValidateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, "user-42", "raw", "", "text")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestRunInvalidateToken(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	tests := []struct {
		name     string
		outcome  domain.InvalidationOutcome
		expected string
	}{
		{"invalidated", domain.InvalidationInvalidated, "Token invalidated successfully\n"},
		{"not-found", domain.InvalidationNotFound, "Token not found\n"},
		{"not-active", domain.InvalidationNotActive, "Token is no longer active\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := mocks.NewMockTokenUseCase(t)
			mockUseCase.EXPECT().Invalidate(ctx, "raw").Return(tt.outcome, nil).Once()

			var out bytes.Buffer
			err := RunInvalidateToken(ctx, mockUseCase, logger, &out, "raw", "text")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().Invalidate(ctx, "raw").Return(domain.InvalidationInvalidated, nil).Once()

		var out bytes.Buffer
		err := RunInvalidateToken(ctx, mockUseCase, logger, &out, "raw", "json")

		require.NoError(t, err)
		assert.JSONEq(t, `{"outcome":"invalidated"}`, out.String())
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().Invalidate(ctx, "raw").Return("", errors.New("boom")).Once()

		err := RunInvalidateToken(ctx, mockUseCase, logger, &bytes.Buffer{}, "raw", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to invalidate token")
	})
}

func TestRunShowPolicy(t *testing.T) {
	policy := domain.DefaultPolicy()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().Policy().Return(policy).Once()

		var out bytes.Buffer
		require.NoError(t, RunShowPolicy(mockUseCase, &out, "text"))
		assert.Contains(t, out.String(), "Default validity:      1800s")
		assert.Contains(t, out.String(), "Default hashing mode:  NONE")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := mocks.NewMockTokenUseCase(t)
		mockUseCase.EXPECT().Policy().Return(policy).Once()

		var out bytes.Buffer
		require.NoError(t, RunShowPolicy(mockUseCase, &out, "json"))
		assert.Contains(t, out.String(), `"default_usage_limit": 1`)
		assert.Contains(t, out.String(), `"token_length": 32`)
	})
}
