// Package providers defines the upstream data-source contracts and the
// decorators (retry, rate limit, caching) shared by concrete clients.
package providers

import (
	"context"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/domain/stats"
)

// LeagueProvider fetches a fully-hydrated fantasy league: teams, rosters,
// per-player pro schedules, and the league matchup schedule.
type LeagueProvider interface {
	FetchLeague(ctx context.Context) (league.League, error)
}

// NewsProvider fetches recent player news items, newest first.
type NewsProvider interface {
	FetchNews(ctx context.Context, limit int) (news.Feed, error)
}

// StatsProvider fetches league-wide season stat lines and per-player game
// logs from the pro stats source.
type StatsProvider interface {
	FetchSeasonLines(ctx context.Context) ([]stats.SeasonLine, error)
	FetchGameLog(ctx context.Context, playerID int) ([]stats.GameLogEntry, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	LeagueProvider
	NewsProvider
	StatsProvider
}
