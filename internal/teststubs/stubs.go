// Package teststubs provides shared test doubles for the provider, poller,
// and snapshot seams.
package teststubs

import (
	"context"
	"sync/atomic"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/domain/stats"
)

// StubLeagueProvider is a test double for providers.LeagueProvider.
type StubLeagueProvider struct {
	League league.League
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchLeague returns the configured league and error while tracking calls.
func (s *StubLeagueProvider) FetchLeague(ctx context.Context) (league.League, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.League, s.Err
}

// StubNewsProvider is a test double for providers.NewsProvider.
type StubNewsProvider struct {
	Feed  news.Feed
	Err   error
	Calls atomic.Int32
}

// FetchNews returns the configured feed and error while tracking calls.
func (s *StubNewsProvider) FetchNews(ctx context.Context, limit int) (news.Feed, error) {
	_ = ctx
	_ = limit
	s.Calls.Add(1)
	return s.Feed, s.Err
}

// StubStatsProvider is a test double for providers.StatsProvider.
type StubStatsProvider struct {
	Lines []stats.SeasonLine
	Log   []stats.GameLogEntry
	Err   error
	Calls atomic.Int32
}

// FetchSeasonLines returns the configured season lines while tracking calls.
func (s *StubStatsProvider) FetchSeasonLines(ctx context.Context) ([]stats.SeasonLine, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Lines, nil
}

// FetchGameLog returns the configured game log for any player.
func (s *StubStatsProvider) FetchGameLog(ctx context.Context, playerID int) ([]stats.GameLogEntry, error) {
	_ = ctx
	_ = playerID
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Log, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[string]league.Snapshot // keyed by date
	Err     error
}

// WriteLeagueSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteLeagueSnapshot(date string, snapshot league.Snapshot) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]league.Snapshot)
	}
	w.Written[date] = snapshot
	return nil
}
