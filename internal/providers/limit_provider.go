package providers

import (
	"context"
	"log/slog"
	"time"

	"fantasy-intel-service/internal/domain/league"
)

// rateLimitedProvider wraps a LeagueProvider and enforces a minimum interval
// between calls.
type rateLimitedProvider struct {
	next     LeagueProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a LeagueProvider that limits calls to the
// given interval. Calls block until the interval elapses to avoid exceeding
// upstream quotas.
func NewRateLimitedProvider(next LeagueProvider, interval time.Duration, logger *slog.Logger) LeagueProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) FetchLeague(ctx context.Context) (league.League, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return league.League{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return league.League{}, ctx.Err()
	case <-p.ticker.C:
	}
	if p.logger != nil {
		p.logger.Info("rate-limited provider fetch", slog.String("provider", "rate-limited"))
	}
	return p.next.FetchLeague(ctx)
}
