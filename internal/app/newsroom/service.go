// Package newsroom serves the player news feed through the provider chain.
package newsroom

import (
	"context"

	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/providers"
)

// Service fetches player news with a default item limit.
type Service struct {
	provider     providers.NewsProvider
	defaultLimit int
}

// NewService constructs a Service over a news provider.
func NewService(provider providers.NewsProvider, defaultLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 25
	}
	return &Service{
		provider:     provider,
		defaultLimit: defaultLimit,
	}
}

// Latest returns the most recent news items, newest first. A non-positive
// limit falls back to the service default.
func (s *Service) Latest(ctx context.Context, limit int) (news.Feed, error) {
	if s.provider == nil {
		return news.Feed{}, providers.ErrProviderUnavailable
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.provider.FetchNews(ctx, limit)
}
