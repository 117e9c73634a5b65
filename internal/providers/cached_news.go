package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fantasy-intel-service/internal/cache"
	"fantasy-intel-service/internal/domain/news"
)

// cachedNewsProvider memoizes news fetches per limit for a TTL window. The
// feed changes slowly and the upstream scrape is expensive.
type cachedNewsProvider struct {
	inner  NewsProvider
	cache  *cache.TTL[news.Feed]
	logger *slog.Logger
}

// NewCachedNewsProvider wraps a NewsProvider with a TTL cache.
func NewCachedNewsProvider(inner NewsProvider, ttl time.Duration, logger *slog.Logger) NewsProvider {
	return &cachedNewsProvider{
		inner:  inner,
		cache:  cache.NewTTL[news.Feed](ttl),
		logger: logger,
	}
}

func (p *cachedNewsProvider) FetchNews(ctx context.Context, limit int) (news.Feed, error) {
	key := fmt.Sprintf("news:%d", limit)
	if feed, ok := p.cache.Get(key); ok {
		return feed, nil
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, "news-cache", "news cache miss", slog.Int("limit", limit))
	feed, err := p.inner.FetchNews(ctx, limit)
	if err != nil {
		return news.Feed{}, err
	}
	p.cache.Set(key, feed)
	return feed, nil
}
