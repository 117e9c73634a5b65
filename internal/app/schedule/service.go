// Package schedule exposes the matchup-calendar operations: which period a
// date falls in, and the game-volume comparison for any period.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/matchup"
	"fantasy-intel-service/internal/season"
)

// ErrNoLeague is returned when no league snapshot has been loaded yet.
var ErrNoLeague = errors.New("league data not loaded")

// LeagueStore provides the current league snapshot.
type LeagueStore interface {
	League() (league.League, time.Time, bool)
}

// Service coordinates calendar lookups and week analyses.
type Service struct {
	store LeagueStore
	cal   season.Calendar
	now   func() time.Time
}

// NewService constructs a Service over a league store and season calendar.
func NewService(store LeagueStore, cal season.Calendar) *Service {
	return &Service{
		store: store,
		cal:   cal,
		now:   time.Now,
	}
}

// Calendar returns every matchup period with its date span.
func (s *Service) Calendar() []season.WeekRange {
	return s.cal.Weeks()
}

// CurrentPeriod returns the matchup period containing today.
func (s *Service) CurrentPeriod() int {
	return s.cal.FindWeek(s.now().UTC())
}

// PeriodFor returns the matchup period containing the given date.
func (s *Service) PeriodFor(date time.Time) int {
	return s.cal.FindWeek(date)
}

// HasPeriod reports whether the calendar defines the given period.
func (s *Service) HasPeriod(period int) bool {
	_, ok := s.cal.Range(period)
	return ok
}

// CurrentWeek analyzes the period containing today.
func (s *Service) CurrentWeek(highlightTeamID int) (*matchup.WeekAnalysis, error) {
	return s.Week(s.CurrentPeriod(), highlightTeamID)
}

// UpcomingWeek analyzes the period after the one containing today. During the
// final period there is no upcoming week and the result is nil.
func (s *Service) UpcomingWeek(highlightTeamID int) (*matchup.WeekAnalysis, error) {
	next := s.CurrentPeriod() + 1
	if _, ok := s.cal.Range(next); !ok {
		return nil, nil
	}
	return s.Week(next, highlightTeamID)
}

// Week analyzes one matchup period. A nil analysis with a nil error means the
// period exists but has no pairings.
func (s *Service) Week(period int, highlightTeamID int) (*matchup.WeekAnalysis, error) {
	wr, ok := s.cal.Range(period)
	if !ok {
		return nil, fmt.Errorf("schedule: unknown matchup period %d", period)
	}

	lg, _, ok := s.store.League()
	if !ok {
		return nil, ErrNoLeague
	}

	return matchup.AnalyzeWeek(lg.Teams, period, wr.Start, wr.End, highlightTeamID)
}
