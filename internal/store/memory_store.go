// Package store keeps the latest fetched league, news, and rating snapshots
// in memory for handlers to read without touching upstreams.
package store

import (
	"sync"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/domain/stats"
)

// MemoryStore is a thread-safe holder for the current data snapshots.
type MemoryStore struct {
	mu sync.RWMutex

	league    league.League
	leagueSet bool
	updatedAt time.Time

	feed    news.Feed
	feedSet bool

	ratings []stats.Rating
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetLeague replaces the stored league snapshot.
func (s *MemoryStore) SetLeague(lg league.League, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.league = lg
	s.leagueSet = true
	s.updatedAt = at
}

// League returns the stored league and when it was fetched.
func (s *MemoryStore) League() (league.League, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.league, s.updatedAt, s.leagueSet
}

// SetNews replaces the stored news feed.
func (s *MemoryStore) SetNews(feed news.Feed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feed = feed
	s.feedSet = true
}

// News returns the stored news feed.
func (s *MemoryStore) News() (news.Feed, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.feed, s.feedSet
}

// SetRatings replaces the stored player ratings.
func (s *MemoryStore) SetRatings(ratings []stats.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ratings = ratings
}

// Ratings returns a copy of the stored player ratings.
func (s *MemoryStore) Ratings() []stats.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ratings == nil {
		return nil
	}
	out := make([]stats.Rating, len(s.ratings))
	copy(out, s.ratings)
	return out
}
