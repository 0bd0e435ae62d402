package usecase

import (
	"context"
	"time"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/metrics"
)

const metricsDomain = "authtoken"

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for token issuance.
func (t *tokenUseCaseWithMetrics) Generate(
	ctx context.Context,
	input *domain.GenerateTokenInput,
) (*domain.GeneratedToken, error) {
	start := time.Now()
	token, err := t.next.Generate(ctx, input)

	t.record(ctx, "generate", start, statusFor(err))
	return token, err
}

// Validate records metrics for validations. Rejected tokens are counted separately
// from failed calls.
func (t *tokenUseCaseWithMetrics) Validate(
	ctx context.Context,
	input *domain.ValidateTokenInput,
) (*domain.ValidationResult, error) {
	start := time.Now()
	result, err := t.next.Validate(ctx, input)

	status := statusFor(err)
	if err == nil && result != nil && !result.Valid {
		status = "rejected"
		t.metrics.RecordValidationFailure(ctx, result.FailureReason.String())
	}

	t.record(ctx, "validate", start, status)
	return result, err
}

// Invalidate records metrics for invalidations.
func (t *tokenUseCaseWithMetrics) Invalidate(
	ctx context.Context,
	token string,
) (domain.InvalidationOutcome, error) {
	start := time.Now()
	outcome, err := t.next.Invalidate(ctx, token)

	t.record(ctx, "invalidate", start, statusFor(err))
	return outcome, err
}

// CleanupExpired records metrics for cleanup runs.
func (t *tokenUseCaseWithMetrics) CleanupExpired(ctx context.Context, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := t.next.CleanupExpired(ctx, dryRun)
	if err == nil {
		t.metrics.RecordExpiredTokens(ctx, count, dryRun)
	}

	t.record(ctx, "cleanup_expired", start, statusFor(err))
	return count, err
}

// Policy is not instrumented.
func (t *tokenUseCaseWithMetrics) Policy() domain.Policy {
	return t.next.Policy()
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	t.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	t.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func statusFor(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
