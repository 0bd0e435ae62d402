package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	usecaseMocks "github.com/allisson/authtokens/internal/authtoken/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordValidationFailure(ctx context.Context, reason string) {
	m.Called(ctx, reason)
}

func (m *mockBusinessMetrics) RecordExpiredTokens(ctx context.Context, count int64, dryRun bool) {
	m.Called(ctx, count, dryRun)
}

func (m *mockBusinessMetrics) expect(ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "authtoken", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "authtoken", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestTokenUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Generate success", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		input := &domain.GenerateTokenInput{Parameter: "user-42"}
		output := &domain.GeneratedToken{Token: "abc"}

		mockNext.EXPECT().Generate(ctx, input).Return(output, nil).Once()
		mockMetrics.expect(ctx, "generate", "success")

		res, err := uc.Generate(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Generate error", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		input := &domain.GenerateTokenInput{Parameter: "user-42"}
		expectedErr := errors.New("error")

		mockNext.EXPECT().Generate(ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.expect(ctx, "generate", "error")

		res, err := uc.Generate(ctx, input)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Validate valid", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		input := &domain.ValidateTokenInput{Parameter: "user-42", Token: "abc"}
		remaining := 0

		mockNext.EXPECT().Validate(ctx, input).Return(domain.NewValidResult(&remaining), nil).Once()
		mockMetrics.expect(ctx, "validate", "success")

		res, err := uc.Validate(ctx, input)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Validate rejected", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		input := &domain.ValidateTokenInput{Parameter: "user-42", Token: "abc"}

		mockNext.EXPECT().Validate(ctx, input).Return(domain.NewFailedResult(domain.FailureExpired), nil).Once()
		mockMetrics.expect(ctx, "validate", "rejected")
		mockMetrics.On("RecordValidationFailure", ctx, "EXPIRED").Return().Once()

		res, err := uc.Validate(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, domain.FailureExpired, res.FailureReason)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Invalidate success", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.EXPECT().Invalidate(ctx, "abc").Return(domain.InvalidationNotFound, nil).Once()
		mockMetrics.expect(ctx, "invalidate", "success")

		outcome, err := uc.Invalidate(ctx, "abc")
		assert.NoError(t, err)
		assert.Equal(t, domain.InvalidationNotFound, outcome)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CleanupExpired error", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.EXPECT().CleanupExpired(ctx, true).Return(int64(0), domain.ErrStoreUnavailable).Once()
		mockMetrics.expect(ctx, "cleanup_expired", "error")

		count, err := uc.CleanupExpired(ctx, true)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Zero(t, count)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CleanupExpired success", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.EXPECT().CleanupExpired(ctx, false).Return(int64(4), nil).Once()
		mockMetrics.expect(ctx, "cleanup_expired", "success")
		mockMetrics.On("RecordExpiredTokens", ctx, int64(4), false).Return().Once()

		count, err := uc.CleanupExpired(ctx, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Policy passthrough", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockTokenUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.EXPECT().Policy().Return(domain.DefaultPolicy()).Once()

		assert.Equal(t, domain.DefaultPolicy(), uc.Policy())
		mockMetrics.AssertNotCalled(t, "RecordOperation")
	})
}
