package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	"github.com/allisson/authtokens/internal/authtoken/service"
	"github.com/allisson/authtokens/internal/database"
	apperrors "github.com/allisson/authtokens/internal/errors"
)

// Option customizes a tokenUseCase at construction.
type Option func(*tokenUseCase)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(u *tokenUseCase) {
		u.now = now
	}
}

// WithTxManager runs each consume and its remaining-uses read in one transaction, so the
// reported count is not affected by concurrent validations of the same token.
func WithTxManager(txManager database.TxManager) Option {
	return func(u *tokenUseCase) {
		u.txManager = txManager
	}
}

type tokenUseCase struct {
	txManager database.TxManager
	tokenRepo TokenRepository
	generator service.TokenGenerator
	digest    service.Digest
	policy    domain.Policy
	logger    *slog.Logger
	now       func() time.Time
}

// NewTokenUseCase builds the lifecycle engine. It fails with domain.ErrConfigurationFatal
// when the policy is unusable.
func NewTokenUseCase(
	tokenRepo TokenRepository,
	generator service.TokenGenerator,
	digest service.Digest,
	policy domain.Policy,
	logger *slog.Logger,
	opts ...Option,
) (TokenUseCase, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	u := &tokenUseCase{
		tokenRepo: tokenRepo,
		generator: generator,
		digest:    digest,
		policy:    policy,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}

	if !policy.AllowMultipleActive {
		logger.Info("multiple active tokens per parameter disallowed by policy; enforcement is left to front ends")
	}

	return u, nil
}

// Policy returns the engine configuration.
func (u *tokenUseCase) Policy() domain.Policy {
	return u.policy
}

// Generate issues a token with the requested options, falling back to policy defaults.
// A stored value collision is retried with fresh entropy up to domain.MaxGenerateAttempts times.
func (u *tokenUseCase) Generate(
	ctx context.Context,
	input *domain.GenerateTokenInput,
) (*domain.GeneratedToken, error) {
	if input == nil {
		return nil, domain.ErrParameterRequired
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	validity := u.policy.DefaultValidity
	if input.Validity != nil {
		validity = *input.Validity
	}

	var usageLimit *int
	if !input.UnlimitedUsage {
		limit := u.policy.DefaultUsageLimit
		if input.UsageLimit != nil {
			limit = *input.UsageLimit
		}
		usageLimit = &limit
	}

	mode := u.policy.DefaultHashingMode()
	if input.HashingMode != nil {
		mode = *input.HashingMode
	}

	for attempt := 1; attempt <= domain.MaxGenerateAttempts; attempt++ {
		raw, err := u.generator.Generate(u.policy.TokenLength)
		if err != nil {
			return nil, err
		}

		now := u.now()
		token := &domain.Token{
			ID:          uuid.Must(uuid.NewV7()),
			StoredValue: u.storedValue(raw, mode),
			Parameter:   input.Parameter,
			TokenType:   input.TokenType,
			Status:      domain.StatusActive,
			ExpiryTime:  now.Add(validity),
			UsageLimit:  usageLimit,
			UsageCount:  0,
			HashingMode: mode,
			Metadata:    input.Metadata,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		err = u.tokenRepo.Create(ctx, token)
		if err == nil {
			u.logger.Debug("token generated",
				slog.String("token_id", token.ID.String()),
				slog.String("hashing_mode", mode.String()),
				slog.Time("expiry_time", token.ExpiryTime),
			)
			return &domain.GeneratedToken{
				Token:         raw,
				ExpiryTime:    token.ExpiryTime,
				UsageLimit:    usageLimit,
				RemainingUses: token.RemainingUses(),
				TokenType:     token.TokenType,
				HashingMode:   mode,
			}, nil
		}
		if !apperrors.Is(err, domain.ErrTokenAlreadyExists) {
			return nil, err
		}

		u.logger.Warn("stored value collision, retrying with fresh entropy", slog.Int("attempt", attempt))
	}

	return nil, apperrors.Wrapf(
		domain.ErrTokenAlreadyExists,
		"no unique token after %d attempts",
		domain.MaxGenerateAttempts,
	)
}

// Validate resolves the presented token, then consumes one use through the store's
// conditional update. When nothing was consumed it re-reads the record to explain why.
func (u *tokenUseCase) Validate(
	ctx context.Context,
	input *domain.ValidateTokenInput,
) (*domain.ValidationResult, error) {
	if input == nil {
		return nil, domain.ErrParameterRequired
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	record, err := u.lookup(ctx, input.Token)
	if err != nil {
		if apperrors.Is(err, domain.ErrTokenNotFound) {
			u.logger.Debug("token validation failed", slog.String("reason", domain.FailureNotFound.String()))
			return domain.NewFailedResult(domain.FailureNotFound), nil
		}
		return nil, err
	}

	now := u.now()
	var (
		affected  int64
		remaining *int
	)
	err = u.withTx(ctx, func(ctx context.Context) error {
		var consumeErr error
		affected, consumeErr = u.tokenRepo.Consume(ctx, record.StoredValue, input.Parameter, input.TokenType, now)
		if consumeErr != nil || affected == 0 {
			return consumeErr
		}
		remaining = u.remainingAfterConsume(ctx, record, input.Parameter)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		reason, err := u.classify(ctx, record.StoredValue, input, now)
		if err != nil {
			return nil, err
		}
		u.logger.Debug("token validation failed",
			slog.String("token_id", record.ID.String()),
			slog.String("reason", reason.String()),
		)
		return domain.NewFailedResult(reason), nil
	}

	u.logger.Debug("token validated", slog.String("token_id", record.ID.String()))

	return domain.NewValidResult(remaining), nil
}

// Invalidate retires the presented token if it is still consumable.
func (u *tokenUseCase) Invalidate(ctx context.Context, token string) (domain.InvalidationOutcome, error) {
	if strings.TrimSpace(token) == "" {
		return "", domain.ErrTokenRequired
	}

	record, err := u.lookup(ctx, token)
	if err != nil {
		if apperrors.Is(err, domain.ErrTokenNotFound) {
			u.logger.Warn("token to invalidate not found")
			return domain.InvalidationNotFound, nil
		}
		return "", err
	}

	affected, err := u.tokenRepo.Invalidate(ctx, record.StoredValue, u.now())
	if err != nil {
		return "", err
	}

	if affected == 0 {
		u.logger.Warn("token already used or invalidated",
			slog.String("token_id", record.ID.String()),
			slog.String("status", record.Status.String()),
		)
		return domain.InvalidationNotActive, nil
	}

	u.logger.Info("token invalidated", slog.String("token_id", record.ID.String()))
	return domain.InvalidationInvalidated, nil
}

// CleanupExpired removes every record whose expiry is before now. With dryRun it only counts them.
func (u *tokenUseCase) CleanupExpired(ctx context.Context, dryRun bool) (int64, error) {
	now := u.now()

	if dryRun {
		return u.tokenRepo.CountExpired(ctx, now)
	}

	count, err := u.tokenRepo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	u.logger.Info("cleaned up expired tokens", slog.Int64("count", count))
	return count, nil
}

func (u *tokenUseCase) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.txManager == nil {
		return fn(ctx)
	}
	return u.txManager.WithTx(ctx, fn)
}

// storedValue derives what the store keeps for a raw token under the given mode.
func (u *tokenUseCase) storedValue(raw string, mode domain.HashingMode) string {
	if mode == domain.HashingModeSHA256 {
		return u.digest.Hash(raw)
	}
	return raw
}

// lookup finds the record for a presented raw token: first as an unhashed stored value,
// then by its digest. A presented digest never resolves a hashed record.
func (u *tokenUseCase) lookup(ctx context.Context, raw string) (*domain.Token, error) {
	record, err := u.tokenRepo.GetByStoredValue(ctx, raw)
	switch {
	case err == nil && record.HashingMode == domain.HashingModeNone:
		return record, nil
	case err != nil && !apperrors.Is(err, domain.ErrTokenNotFound):
		return nil, err
	}

	record, err = u.tokenRepo.GetByStoredValue(ctx, u.digest.Hash(raw))
	if err != nil {
		return nil, err
	}
	if record.HashingMode != domain.HashingModeSHA256 || !u.digest.Matches(raw, record.StoredValue) {
		return nil, domain.ErrTokenNotFound
	}

	return record, nil
}

// classify re-reads the record after a consume matched nothing.
func (u *tokenUseCase) classify(
	ctx context.Context,
	storedValue string,
	input *domain.ValidateTokenInput,
	now time.Time,
) (domain.FailureReason, error) {
	fresh, err := u.tokenRepo.GetByStoredValue(ctx, storedValue)
	if err != nil {
		if apperrors.Is(err, domain.ErrTokenNotFound) {
			return domain.FailureNotFound, nil
		}
		return "", err
	}
	return fresh.ClassifyFailure(input.Parameter, input.TokenType, now), nil
}

// remainingAfterConsume re-fetches the consumed record. If the re-fetch fails the use
// was still consumed, so the count is estimated from the record read before consuming.
func (u *tokenUseCase) remainingAfterConsume(ctx context.Context, before *domain.Token, parameter string) *int {
	updated, err := u.tokenRepo.GetByStoredValueAndParameter(ctx, before.StoredValue, parameter)
	if err == nil {
		return updated.RemainingUses()
	}

	u.logger.Warn("could not re-read consumed token, estimating remaining uses",
		slog.String("token_id", before.ID.String()),
		slog.Any("error", err),
	)

	estimate := *before
	estimate.UsageCount++
	return estimate.RemainingUses()
}
