package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/allisson/authtokens/internal/authtoken/domain"
)

const (
	cleanupRetryInitialInterval = 250 * time.Millisecond
	cleanupMaxRetries           = 3
)

// CleanupWorker periodically purges expired tokens. It is the external cadence that
// drives TokenUseCase.CleanupExpired when cleanup is enabled by policy.
type CleanupWorker struct {
	useCase       TokenUseCase
	interval      time.Duration
	retryInterval time.Duration
	logger        *slog.Logger
}

// NewCleanupWorker creates a worker that runs every interval.
func NewCleanupWorker(useCase TokenUseCase, interval time.Duration, logger *slog.Logger) *CleanupWorker {
	return &CleanupWorker{
		useCase:       useCase,
		interval:      interval,
		retryInterval: cleanupRetryInitialInterval,
		logger:        logger,
	}
}

// Start runs the cleanup loop until ctx is cancelled and then returns ctx.Err().
// A failed run is logged and attempted again on the next tick.
func (w *CleanupWorker) Start(ctx context.Context) error {
	w.log(slog.LevelInfo, "starting expired token cleanup worker", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log(slog.LevelInfo, "stopping expired token cleanup worker")
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
				w.log(slog.LevelError, "failed to clean up expired tokens", slog.Any("error", err))
			}
		}
	}
}

// RunOnce performs a single cleanup pass. An unavailable store is retried with
// exponential backoff for at most one interval; any other error ends the pass.
func (w *CleanupWorker) RunOnce(ctx context.Context) (int64, error) {
	var deleted int64
	operation := func() error {
		count, err := w.useCase.CleanupExpired(ctx, false)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				return err
			}
			return backoff.Permanent(err)
		}
		deleted = count
		return nil
	}

	notify := func(err error, wait time.Duration) {
		w.log(slog.LevelWarn, "token store unavailable, retrying cleanup",
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	if err := backoff.RetryNotify(operation, w.retryPolicy(ctx), notify); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (w *CleanupWorker) retryPolicy(ctx context.Context) backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = w.retryInterval
	policy.MaxElapsedTime = w.interval
	return backoff.WithContext(backoff.WithMaxRetries(policy, cleanupMaxRetries), ctx)
}

func (w *CleanupWorker) log(level slog.Level, msg string, attrs ...any) {
	if w.logger != nil {
		w.logger.Log(context.Background(), level, msg, attrs...)
	}
}
