// Package fixture returns a static league useful for local development and
// bootstrapping without upstream credentials.
package fixture

import (
	"context"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/domain/players"
	"fantasy-intel-service/internal/domain/stats"
	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/timeutil"
)

// Provider serves a deterministic league, news feed, and stat lines.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchLeague returns a small deterministic league. Player schedules land in
// the opening week of the 2025-26 season so calendar lookups have data.
func (p *Provider) FetchLeague(ctx context.Context) (league.League, error) {
	_ = ctx

	schedule := []teams.ScheduleEntry{
		{HomeTeamID: 1, AwayTeamID: 2},
		{HomeTeamID: 2, AwayTeamID: 1},
	}

	return league.League{
		LeagueID: 999,
		Season:   2026,
		Name:     "Fixture League",
		Teams: []teams.Team{
			{
				ID:     1,
				Name:   "Sharks",
				Abbrev: "SHK",
				Owner:  "fixture-owner-1",
				Record: teams.Record{Wins: 2, Losses: 1},
				Roster: []players.Player{
					fixturePlayer(101, "Jane Doe", "PG", "BOS",
						timeutil.Date(2025, time.October, 22),
						timeutil.Date(2025, time.October, 24),
						timeutil.Date(2025, time.October, 26)),
					fixturePlayer(102, "Kim Lee", "C", "DEN",
						timeutil.Date(2025, time.October, 23),
						timeutil.Date(2025, time.October, 25)),
				},
				Schedule: schedule,
			},
			{
				ID:     2,
				Name:   "Wolves",
				Abbrev: "WLV",
				Owner:  "fixture-owner-2",
				Record: teams.Record{Wins: 1, Losses: 2},
				Roster: []players.Player{
					fixturePlayer(201, "John Roe", "SF", "LAL",
						timeutil.Date(2025, time.October, 22),
						timeutil.Date(2025, time.October, 25)),
				},
				Schedule: schedule,
			},
		},
	}, nil
}

// FetchNews returns a deterministic feed.
func (p *Provider) FetchNews(ctx context.Context, limit int) (news.Feed, error) {
	_ = ctx

	items := []news.Item{
		{Player: "Jane Doe", Team: "Boston Celtics", Headline: "Jane Doe erupts for 41 points", Report: "Lock her into lineups.", Date: "Recent"},
		{Player: "John Roe", Team: "Los Angeles Lakers", Headline: "John Roe questionable for Friday", Report: "Sore ankle, monitor status.", Date: "Recent"},
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return news.Feed{Items: items}, nil
}

// FetchSeasonLines returns deterministic per-game averages.
func (p *Provider) FetchSeasonLines(ctx context.Context) ([]stats.SeasonLine, error) {
	_ = ctx
	return []stats.SeasonLine{
		{PlayerID: 101, Name: "Jane Doe", Team: "BOS", Minutes: 34.5, Points: 27.5, Rebounds: 8.1, Assists: 6.3, Steals: 1.4, Blocks: 0.8, Threes: 3.1, Turnovers: 2.7, FGPct: 0.49, FTPct: 0.88},
		{PlayerID: 102, Name: "Kim Lee", Team: "DEN", Minutes: 31.0, Points: 19.4, Rebounds: 11.2, Assists: 3.1, Steals: 0.9, Blocks: 2.1, Threes: 0.4, Turnovers: 2.0, FGPct: 0.57, FTPct: 0.74},
		{PlayerID: 201, Name: "John Roe", Team: "LAL", Minutes: 29.8, Points: 16.2, Rebounds: 5.0, Assists: 4.2, Steals: 1.1, Blocks: 0.3, Threes: 2.2, Turnovers: 1.8, FGPct: 0.45, FTPct: 0.81},
	}, nil
}

// FetchGameLog returns a deterministic recent log for any player.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int) ([]stats.GameLogEntry, error) {
	_ = ctx
	_ = playerID
	return []stats.GameLogEntry{
		{GameDate: "NOV 01, 2025", Minutes: 36, Points: 31, Rebounds: 9, Assists: 7, Steals: 2, Blocks: 1, Threes: 4, Turnovers: 3, FGPct: 0.52, FTPct: 0.90},
		{GameDate: "OCT 30, 2025", Minutes: 33, Points: 24, Rebounds: 7, Assists: 5, Steals: 1, Blocks: 0, Threes: 2, Turnovers: 2, FGPct: 0.47, FTPct: 0.85},
		{GameDate: "OCT 28, 2025", Minutes: 35, Points: 28, Rebounds: 8, Assists: 6, Steals: 1, Blocks: 1, Threes: 3, Turnovers: 2, FGPct: 0.50, FTPct: 0.87},
	}, nil
}

func fixturePlayer(id int, name, position, proTeam string, dates ...time.Time) players.Player {
	schedule := make(map[string]players.ScheduledGame, len(dates))
	for _, d := range dates {
		schedule[timeutil.FormatDate(d)] = players.ScheduledGame{Date: d, Opponent: "OPP"}
	}
	return players.Player{
		ID:       id,
		Name:     name,
		Position: position,
		ProTeam:  proTeam,
		Schedule: schedule,
	}
}
