package fixture

import (
	"context"
	"testing"
)

func TestFetchLeagueIsDeterministic(t *testing.T) {
	p := New()

	lg, err := p.FetchLeague(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lg.LeagueID != 999 || lg.Season != 2026 {
		t.Fatalf("unexpected league identity %+v", lg)
	}
	if len(lg.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(lg.Teams))
	}
	if len(lg.Teams[0].Roster) != 2 {
		t.Fatalf("expected 2 players on first team, got %d", len(lg.Teams[0].Roster))
	}
	if len(lg.Teams[0].Schedule) != 2 {
		t.Fatalf("expected 2 schedule entries, got %d", len(lg.Teams[0].Schedule))
	}
	if lg.Teams[0].Roster[0].Schedule == nil {
		t.Fatalf("expected player schedules to be populated")
	}
}

func TestFetchNewsHonorsLimit(t *testing.T) {
	p := New()

	feed, err := p.FetchNews(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(feed.Items))
	}
}

func TestFetchStats(t *testing.T) {
	p := New()

	lines, err := p.FetchSeasonLines(context.Background())
	if err != nil || len(lines) != 3 {
		t.Fatalf("expected 3 season lines, got %d err %v", len(lines), err)
	}

	log, err := p.FetchGameLog(context.Background(), 101)
	if err != nil || len(log) != 3 {
		t.Fatalf("expected 3 log entries, got %d err %v", len(log), err)
	}
}
