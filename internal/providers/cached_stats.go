package providers

import (
	"context"
	"fmt"
	"time"

	"fantasy-intel-service/internal/cache"
	"fantasy-intel-service/internal/domain/stats"
)

// cachedStatsProvider memoizes stats fetches. The pro stats host is slow and
// aggressively rate limited, so season lines and game logs are cached.
type cachedStatsProvider struct {
	inner StatsProvider
	lines *cache.TTL[[]stats.SeasonLine]
	logs  *cache.TTL[[]stats.GameLogEntry]
}

// NewCachedStatsProvider wraps a StatsProvider with TTL caches.
func NewCachedStatsProvider(inner StatsProvider, ttl time.Duration) StatsProvider {
	return &cachedStatsProvider{
		inner: inner,
		lines: cache.NewTTL[[]stats.SeasonLine](ttl),
		logs:  cache.NewTTL[[]stats.GameLogEntry](ttl),
	}
}

func (p *cachedStatsProvider) FetchSeasonLines(ctx context.Context) ([]stats.SeasonLine, error) {
	if lines, ok := p.lines.Get("season"); ok {
		return lines, nil
	}

	lines, err := p.inner.FetchSeasonLines(ctx)
	if err != nil {
		return nil, err
	}
	p.lines.Set("season", lines)
	return lines, nil
}

func (p *cachedStatsProvider) FetchGameLog(ctx context.Context, playerID int) ([]stats.GameLogEntry, error) {
	key := fmt.Sprintf("gamelog:%d", playerID)
	if log, ok := p.logs.Get(key); ok {
		return log, nil
	}

	log, err := p.inner.FetchGameLog(ctx, playerID)
	if err != nil {
		return nil, err
	}
	p.logs.Set(key, log)
	return log, nil
}
