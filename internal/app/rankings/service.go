// Package rankings computes league-wide player value and per-player
// consistency from the pro stats provider.
package rankings

import (
	"context"

	"fantasy-intel-service/internal/analysis"
	"fantasy-intel-service/internal/domain/stats"
	"fantasy-intel-service/internal/providers"
)

const (
	// Cap the rankings payload; the long tail of the league is noise.
	defaultTopN = 200

	consistencyWindow = 20
)

// RatingsStore caches computed ratings between requests.
type RatingsStore interface {
	SetRatings(ratings []stats.Rating)
	Ratings() []stats.Rating
}

// Service computes z-score rankings and consistency reports.
type Service struct {
	provider providers.StatsProvider
	store    RatingsStore
	topN     int
}

// NewService constructs a Service over a stats provider and ratings cache.
func NewService(provider providers.StatsProvider, store RatingsStore) *Service {
	return &Service{
		provider: provider,
		store:    store,
		topN:     defaultTopN,
	}
}

// Rankings returns players ordered by total z-score value, capped to the top
// slice of the league. Lines are fetched each call (the provider layer
// memoizes them with a TTL); the last good result is kept in the store as a
// fallback for upstream outages.
func (s *Service) Rankings(ctx context.Context) ([]stats.Rating, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	lines, err := s.provider.FetchSeasonLines(ctx)
	if err != nil {
		if cached := s.cachedRatings(); len(cached) > 0 {
			return cached, nil
		}
		return nil, err
	}

	ratings := analysis.ComputeRatings(lines)
	if len(ratings) > s.topN {
		ratings = ratings[:s.topN]
	}
	if s.store != nil {
		s.store.SetRatings(ratings)
	}
	return ratings, nil
}

// Consistency analyzes a player's recent game-to-game volatility.
func (s *Service) Consistency(ctx context.Context, playerID int) (stats.ConsistencyReport, error) {
	if s.provider == nil {
		return stats.ConsistencyReport{}, providers.ErrProviderUnavailable
	}

	log, err := s.provider.FetchGameLog(ctx, playerID)
	if err != nil {
		return stats.ConsistencyReport{}, err
	}
	return analysis.Consistency(playerID, log, consistencyWindow), nil
}

func (s *Service) cachedRatings() []stats.Rating {
	if s.store == nil {
		return nil
	}
	return s.store.Ratings()
}
