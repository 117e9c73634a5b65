// Package leagueinfo serves league metadata, standings, and roster views from
// the stored league snapshot.
package leagueinfo

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fantasy-intel-service/internal/analysis"
	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/players"
	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/timeutil"
)

// ErrNoLeague is returned when no league snapshot has been loaded yet.
var ErrNoLeague = errors.New("league data not loaded")

// LeagueStore provides the current league snapshot.
type LeagueStore interface {
	League() (league.League, time.Time, bool)
}

// Service reads league data out of the store.
type Service struct {
	store LeagueStore
}

// NewService constructs a Service with the provided store.
func NewService(store LeagueStore) *Service {
	return &Service{store: store}
}

// Info describes the league for the info endpoint.
type Info struct {
	LeagueID  int    `json:"leagueId"`
	Season    int    `json:"season"`
	Name      string `json:"name"`
	TeamCount int    `json:"teamCount"`
	UpdatedAt string `json:"updatedAt"`
}

// Info returns league metadata.
func (s *Service) Info() (Info, error) {
	lg, updatedAt, ok := s.store.League()
	if !ok {
		return Info{}, ErrNoLeague
	}
	return Info{
		LeagueID:  lg.LeagueID,
		Season:    lg.Season,
		Name:      lg.Name,
		TeamCount: len(lg.Teams),
		UpdatedAt: timeutil.FormatDate(updatedAt.UTC()),
	}, nil
}

// Teams returns every team in the league.
func (s *Service) Teams() ([]teams.Team, error) {
	lg, _, ok := s.store.League()
	if !ok {
		return nil, ErrNoLeague
	}
	return lg.Teams, nil
}

// Standing is one row of the standings table.
type Standing struct {
	Rank   int          `json:"rank"`
	TeamID int          `json:"id"`
	Name   string       `json:"name"`
	Record teams.Record `json:"record"`
}

// Standings ranks teams by wins, breaking ties by fewer losses then name.
func (s *Service) Standings() ([]Standing, error) {
	lg, _, ok := s.store.League()
	if !ok {
		return nil, ErrNoLeague
	}

	ordered := make([]teams.Team, len(lg.Teams))
	copy(ordered, lg.Teams)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Record, ordered[j].Record
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return ordered[i].Name < ordered[j].Name
	})

	standings := make([]Standing, 0, len(ordered))
	for i, t := range ordered {
		standings = append(standings, Standing{
			Rank:   i + 1,
			TeamID: t.ID,
			Name:   t.Name,
			Record: t.Record,
		})
	}
	return standings, nil
}

// Roster returns a team's players.
func (s *Service) Roster(teamID int) ([]players.Player, error) {
	team, err := s.team(teamID)
	if err != nil {
		return nil, err
	}
	return team.Roster, nil
}

// Insight returns the composition analysis for a team's roster.
func (s *Service) Insight(teamID int) (analysis.RosterInsight, error) {
	team, err := s.team(teamID)
	if err != nil {
		return analysis.RosterInsight{}, err
	}
	return analysis.AnalyzeRoster(team.ID, team.Roster), nil
}

func (s *Service) team(teamID int) (teams.Team, error) {
	lg, _, ok := s.store.League()
	if !ok {
		return teams.Team{}, ErrNoLeague
	}
	team, ok := lg.TeamByID(teamID)
	if !ok {
		return teams.Team{}, fmt.Errorf("leagueinfo: unknown team %d", teamID)
	}
	return team, nil
}
