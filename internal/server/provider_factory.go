package server

import (
	"log/slog"

	"fantasy-intel-service/internal/config"
	"fantasy-intel-service/internal/metrics"
	"fantasy-intel-service/internal/providers"
)

// providerFactory assembles the providers with shared wrappers
// (rate limit + retry for the league, TTL caches for news and stats).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providerSet {
	base := selectProviders(cfg, f.logger)

	// Shared rate limiter to respect upstream quota, then retry on transient failures.
	limited := providers.NewRateLimitedProvider(base.league, leagueRateLimit, f.logger)
	league := providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base.league), 0, 0)

	return providerSet{
		league: league,
		news:   providers.NewCachedNewsProvider(base.news, cfg.News.CacheTTL, f.logger),
		stats:  providers.NewCachedStatsProvider(base.stats, cfg.NBAStats.CacheTTL),
	}
}
