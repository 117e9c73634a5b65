package schedule

import (
	"errors"
	"testing"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/players"
	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/season"
	"fantasy-intel-service/internal/timeutil"
)

type stubStore struct {
	league league.League
	ok     bool
}

func (s *stubStore) League() (league.League, time.Time, bool) {
	return s.league, time.Time{}, s.ok
}

func testLeague() league.League {
	schedule := []teams.ScheduleEntry{
		{HomeTeamID: 1, AwayTeamID: 2},
		{HomeTeamID: 2, AwayTeamID: 1},
	}
	player := players.Player{
		ID:   101,
		Name: "Jane Doe",
		Schedule: map[string]players.ScheduledGame{
			"a": {Date: timeutil.Date(2025, time.October, 22)},
			"b": {Date: timeutil.Date(2025, time.October, 24)},
		},
	}
	return league.League{
		LeagueID: 1,
		Season:   2026,
		Teams: []teams.Team{
			{ID: 1, Name: "Sharks", Roster: []players.Player{player}, Schedule: schedule},
			{ID: 2, Name: "Wolves", Schedule: schedule},
		},
	}
}

func newTestService(ok bool, now time.Time) *Service {
	svc := NewService(&stubStore{league: testLeague(), ok: ok}, season.Build(season.DefaultConfig(2026)))
	svc.now = func() time.Time { return now }
	return svc
}

func TestCalendarListsAllPeriods(t *testing.T) {
	svc := newTestService(true, timeutil.Date(2025, time.October, 22))

	weeks := svc.Calendar()
	if len(weeks) != 24 {
		t.Fatalf("expected 24 periods, got %d", len(weeks))
	}
	if weeks[0].Index != 1 || weeks[23].Index != 24 {
		t.Fatalf("expected ordered periods, got %+v", weeks)
	}
}

func TestCurrentWeekUsesToday(t *testing.T) {
	svc := newTestService(true, timeutil.Date(2025, time.October, 24))

	analysis, err := svc.CurrentWeek(0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if analysis == nil || analysis.Period != 1 {
		t.Fatalf("expected period 1 analysis, got %+v", analysis)
	}
	if analysis.Matchups[0].Home.TotalGames != 2 {
		t.Fatalf("expected 2 games in opening week, got %d", analysis.Matchups[0].Home.TotalGames)
	}
}

func TestUpcomingWeekAdvancesOnePeriod(t *testing.T) {
	svc := newTestService(true, timeutil.Date(2025, time.October, 24))

	analysis, err := svc.UpcomingWeek(0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if analysis == nil || analysis.Period != 2 {
		t.Fatalf("expected period 2 analysis, got %+v", analysis)
	}
}

func TestUpcomingWeekAtSeasonEndIsNil(t *testing.T) {
	svc := newTestService(true, timeutil.Date(2026, time.April, 12))

	cal := season.Build(season.DefaultConfig(2026))
	last, _ := cal.Range(24)
	svc.now = func() time.Time { return last.Start }

	analysis, err := svc.UpcomingWeek(0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if analysis != nil {
		t.Fatalf("expected nil analysis past the final period, got %+v", analysis)
	}
}

func TestWeekRejectsUnknownPeriod(t *testing.T) {
	svc := newTestService(true, timeutil.Date(2025, time.October, 24))

	if _, err := svc.Week(0, 0); err == nil {
		t.Fatal("expected error for period 0")
	}
	if _, err := svc.Week(25, 0); err == nil {
		t.Fatal("expected error for period beyond season")
	}
}

func TestWeekWithoutLeagueData(t *testing.T) {
	svc := newTestService(false, timeutil.Date(2025, time.October, 24))

	if _, err := svc.Week(1, 0); !errors.Is(err, ErrNoLeague) {
		t.Fatalf("expected ErrNoLeague, got %v", err)
	}
}

func TestPeriodForAndHasPeriod(t *testing.T) {
	svc := newTestService(true, timeutil.Date(2025, time.October, 24))

	if got := svc.PeriodFor(timeutil.Date(2025, time.October, 24)); got != 1 {
		t.Fatalf("expected period 1, got %d", got)
	}
	if !svc.HasPeriod(1) || !svc.HasPeriod(24) {
		t.Fatal("expected periods 1 and 24 defined")
	}
	if svc.HasPeriod(0) || svc.HasPeriod(25) {
		t.Fatal("expected periods 0 and 25 undefined")
	}
}
