package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/logging"
	"fantasy-intel-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a LeagueProvider with exponential backoff retries
// and records attempt metrics.
type retryingProvider struct {
	inner        LeagueProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	initial      time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, rec *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		initial:      initial,
	}
}

func (r *retryingProvider) FetchLeague(ctx context.Context) (league.League, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	policy.MaxElapsedTime = 0

	attempt := 0
	var out league.League
	operation := func() error {
		attempt++
		start := time.Now()
		fetched, err := r.inner.FetchLeague(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			out = fetched
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
		}
		if attempt >= r.maxAttempts {
			return backoff.Permanent(err)
		}
		r.logWarn(ctx, "league fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
		// Honor the upstream's Retry-After before the next attempt.
		if rl, ok := AsRateLimitError(err); ok && rl.RetryAfter > 0 {
			select {
			case <-ctx.Done():
				return backoff.Permanent(ctx.Err())
			case <-time.After(rl.RetryAfter):
			}
		}
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		r.logWarn(ctx, "league fetch failed", "attempts", attempt, "err", err)
		return league.League{}, err
	}
	return out, nil
}

// Close releases resources held by the wrapped provider, if any.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
