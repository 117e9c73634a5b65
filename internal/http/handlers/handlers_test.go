package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fantasy-intel-service/internal/app/leagueinfo"
	"fantasy-intel-service/internal/app/newsroom"
	"fantasy-intel-service/internal/app/rankings"
	"fantasy-intel-service/internal/app/schedule"
	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/domain/players"
	"fantasy-intel-service/internal/domain/stats"
	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/poller"
	"fantasy-intel-service/internal/season"
	"fantasy-intel-service/internal/snapshots"
	"fantasy-intel-service/internal/store"
	"fantasy-intel-service/internal/teststubs"
	"fantasy-intel-service/internal/timeutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func handlerLeague() league.League {
	matchups := []teams.ScheduleEntry{
		{HomeTeamID: 1, AwayTeamID: 2},
		{HomeTeamID: 2, AwayTeamID: 1},
	}
	player := players.Player{
		ID:       101,
		Name:     "Jane Doe",
		Position: "PG",
		Schedule: map[string]players.ScheduledGame{
			"a": {Date: timeutil.Date(2025, time.October, 22)},
			"b": {Date: timeutil.Date(2025, time.October, 24)},
		},
	}
	return league.League{
		LeagueID: 42,
		Season:   2026,
		Name:     "Office League",
		Teams: []teams.Team{
			{ID: 1, Name: "Sharks", Record: teams.Record{Wins: 2, Losses: 1}, Roster: []players.Player{player}, Schedule: matchups},
			{ID: 2, Name: "Wolves", Record: teams.Record{Wins: 1, Losses: 2}, Schedule: matchups},
		},
	}
}

type handlerFixture struct {
	h     *Handler
	stats *teststubs.StubStatsProvider
	news  *teststubs.StubNewsProvider
}

func newFixture(loaded bool) *handlerFixture {
	st := store.NewMemoryStore()
	if loaded {
		st.SetLeague(handlerLeague(), time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC))
	}
	cal := season.Build(season.DefaultConfig(2026))

	newsStub := &teststubs.StubNewsProvider{Feed: news.Feed{Items: []news.Item{{Player: "Jane Doe", Headline: "probable"}}}}
	statsStub := &teststubs.StubStatsProvider{
		Lines: []stats.SeasonLine{
			{PlayerID: 1, Name: "Star", Points: 30},
			{PlayerID: 2, Name: "Role", Points: 12},
			{PlayerID: 3, Name: "Bench", Points: 6},
		},
		Log: []stats.GameLogEntry{
			{Points: 20},
			{Points: 22},
		},
	}

	h := NewHandler(Deps{
		League:   leagueinfo.NewService(st),
		Schedule: schedule.NewService(st, cal),
		News:     newsroom.NewService(newsStub, 25),
		Rankings: rankings.NewService(statsStub, store.NewMemoryStore()),
		Logger:   discardLogger(),
	})
	h.now = func() time.Time { return time.Date(2025, 10, 24, 12, 0, 0, 0, time.UTC) }
	return &handlerFixture{h: h, stats: statsStub, news: newsStub}
}

func get(t *testing.T, fn http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	fn(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(true)

	rr := get(t, f.h.Health, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	f := newFixture(true)
	rr := httptest.NewRecorder()
	f.h.Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.Ready, "/ready")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestReadyReportsNotReady(t *testing.T) {
	f := newFixture(true)
	f.h.statusFn = func() poller.Status {
		return poller.Status{ConsecutiveFailures: 5, LastError: "upstream down", LastSuccess: time.Now()}
	}
	rr := get(t, f.h.Ready, "/ready")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["error"] != "upstream down" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestReadyReportsReady(t *testing.T) {
	f := newFixture(true)
	f.h.statusFn = func() poller.Status {
		return poller.Status{LastSuccess: time.Now()}
	}
	rr := get(t, f.h.Ready, "/ready")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestLeagueInfo(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.LeagueInfo, "/league/info")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["leagueId"] != float64(42) || body["teamCount"] != float64(2) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestLeagueInfoWithoutData(t *testing.T) {
	f := newFixture(false)
	rr := get(t, f.h.LeagueInfo, "/league/info")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestLeagueInfoServesSnapshotForDate(t *testing.T) {
	base := t.TempDir()
	w := snapshots.NewWriter(base, 7)
	if err := w.WriteLeagueSnapshot("2025-10-23", league.NewSnapshot("2025-10-23", handlerLeague())); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	f := newFixture(true)
	f.h.snaps = snapshots.NewFSStore(base)

	rr := get(t, f.h.LeagueInfo, "/league/info?date=2025-10-23")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["date"] != "2025-10-23" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestLeagueInfoInvalidDate(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.LeagueInfo, "/league/info?date=nope")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestLeagueInfoMissingSnapshot(t *testing.T) {
	f := newFixture(true)
	f.h.snaps = snapshots.NewFSStore(t.TempDir())
	rr := get(t, f.h.LeagueInfo, "/league/info?date=2025-01-01")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestLeagueTeams(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.LeagueTeams, "/league/teams")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if teams, ok := body["teams"].([]any); !ok || len(teams) != 2 {
		t.Fatalf("unexpected teams %v", body["teams"])
	}
}

func TestLeagueStandings(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.LeagueStandings, "/league/standings")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	rows, ok := body["standings"].([]any)
	if !ok || len(rows) != 2 {
		t.Fatalf("unexpected standings %v", body["standings"])
	}
	first := rows[0].(map[string]any)
	if first["name"] != "Sharks" {
		t.Fatalf("expected Sharks first, got %v", first)
	}
}

func TestTeamRoster(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.TeamRoster, "/team/1/roster")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["teamId"] != float64(1) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestTeamRosterInvalidID(t *testing.T) {
	f := newFixture(true)
	for _, target := range []string{"/team/abc/roster", "/team//roster", "/team/0/roster"} {
		rr := get(t, f.h.TeamRoster, target)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rr.Code)
		}
	}
}

func TestTeamRosterUnknownTeam(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.TeamRoster, "/team/99/roster")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestTeamInsight(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.TeamInsight, "/team/1/insight")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["team_id"] != float64(1) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCalendar(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.Calendar, "/calendar")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	weeks, ok := body["weeks"].([]any)
	if !ok || len(weeks) != 24 {
		t.Fatalf("expected 24 weeks, got %v", body["weeks"])
	}
}

func TestScheduleCurrent(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.ScheduleCurrent, "/schedule/current?my_team_id=1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["period"] != float64(1) {
		t.Fatalf("expected period 1, got %v", body["period"])
	}
	if body["analysis"] == nil {
		t.Fatalf("expected analysis for the opening week")
	}
}

func TestScheduleCurrentHonorsTimezone(t *testing.T) {
	f := newFixture(true)
	// 03:00 UTC on the first day of period 2 is still the evening of the
	// last day of period 1 on the west coast.
	f.h.now = func() time.Time { return time.Date(2025, 10, 27, 3, 0, 0, 0, time.UTC) }

	rr := get(t, f.h.ScheduleCurrent, "/schedule/current?tz=America/Los_Angeles")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["period"] != float64(1) {
		t.Fatalf("expected period 1 in the requested zone, got %v", body["period"])
	}

	rr = get(t, f.h.ScheduleCurrent, "/schedule/current")
	if body := decodeBody(t, rr); body["period"] != float64(2) {
		t.Fatalf("expected period 2 in UTC, got %v", body["period"])
	}
}

func TestScheduleCurrentWithoutLeague(t *testing.T) {
	f := newFixture(false)
	rr := get(t, f.h.ScheduleCurrent, "/schedule/current")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestScheduleUpcoming(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.ScheduleUpcoming, "/schedule/upcoming")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["period"] != float64(2) {
		t.Fatalf("expected period 2, got %v", body["period"])
	}
}

func TestScheduleUpcomingPastSeasonEnd(t *testing.T) {
	f := newFixture(true)
	f.h.now = func() time.Time { return time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC) }
	rr := get(t, f.h.ScheduleUpcoming, "/schedule/upcoming")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["period"] != float64(0) || body["analysis"] != nil {
		t.Fatalf("expected empty week response, got %v", body)
	}
}

func TestScheduleWeek(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.ScheduleWeek, "/schedule/week?period=1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestScheduleWeekInvalidPeriod(t *testing.T) {
	f := newFixture(true)
	for _, target := range []string{"/schedule/week", "/schedule/week?period=abc"} {
		rr := get(t, f.h.ScheduleWeek, target)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rr.Code)
		}
	}
}

func TestScheduleWeekUnknownPeriod(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.ScheduleWeek, "/schedule/week?period=25")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestNews(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.News, "/news?limit=5")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if items, ok := body["items"].([]any); !ok || len(items) != 1 {
		t.Fatalf("unexpected items %v", body["items"])
	}
}

func TestNewsInvalidLimit(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.News, "/news?limit=nope")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestNewsUpstreamFailure(t *testing.T) {
	f := newFixture(true)
	f.news.Err = errors.New("scrape failed")
	rr := get(t, f.h.News, "/news")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestRankings(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.Rankings, "/nba/rankings")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["count"] != float64(3) {
		t.Fatalf("expected 3 players, got %v", body["count"])
	}
}

func TestRankingsUpstreamFailure(t *testing.T) {
	f := newFixture(true)
	f.stats.Err = errors.New("upstream down")
	rr := get(t, f.h.Rankings, "/nba/rankings")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestPlayerConsistency(t *testing.T) {
	f := newFixture(true)
	rr := get(t, f.h.PlayerConsistency, "/nba/player/7/consistency")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["playerId"] != float64(7) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestPlayerConsistencyInvalidID(t *testing.T) {
	f := newFixture(true)
	for _, target := range []string{"/nba/player/abc/consistency", "/nba/player/7/other", "/nba/player/-1/consistency"} {
		rr := httptest.NewRecorder()
		f.h.PlayerConsistency(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, rr.Code)
		}
	}
}

func TestHighlightTeamIDParsing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/schedule/current?my_team_id=3", nil)
	if got := highlightTeamID(r); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	r = httptest.NewRequest(http.MethodGet, "/schedule/current?my_team_id=nope", nil)
	if got := highlightTeamID(r); got != 0 {
		t.Fatalf("expected 0 for invalid value, got %d", got)
	}
}
