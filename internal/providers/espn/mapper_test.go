package espn

import "testing"

func TestTeamNameFallsBackToLocationNickname(t *testing.T) {
	got := teamName(teamResponse{Location: "Granite", Nickname: "Golems"})
	if got != "Granite Golems" {
		t.Fatalf("expected combined name, got %q", got)
	}

	got = teamName(teamResponse{Name: "Sharks", Location: "x", Nickname: "y"})
	if got != "Sharks" {
		t.Fatalf("expected name field to win, got %q", got)
	}
}

func TestMapScheduleKeepsByePeriodsZero(t *testing.T) {
	schedule := []scheduleResponse{
		{MatchupPeriodID: 1, Home: scheduleSideResponse{TeamID: 1}, Away: scheduleSideResponse{TeamID: 2}},
		{MatchupPeriodID: 3, Home: scheduleSideResponse{TeamID: 1}},
	}

	entries := mapSchedule(1, schedule)
	if len(entries) != 3 {
		t.Fatalf("expected entries up to max period, got %d", len(entries))
	}
	if entries[1].HomeTeamID != 0 || entries[1].AwayTeamID != 0 {
		t.Fatalf("expected zero entry for period the team sits out, got %+v", entries[1])
	}
	if !entries[2].IsBye() {
		t.Fatalf("expected one-sided period 3 to read as bye")
	}
}

func TestMapScheduleEmpty(t *testing.T) {
	if entries := mapSchedule(1, nil); entries != nil {
		t.Fatalf("expected nil for empty schedule, got %v", entries)
	}
}

func TestMapPositionCoversLineup(t *testing.T) {
	want := map[int]string{1: "PG", 2: "SG", 3: "SF", 4: "PF", 5: "C", 9: ""}
	for id, pos := range want {
		if got := mapPosition(id); got != pos {
			t.Fatalf("position %d: expected %q, got %q", id, pos, got)
		}
	}
}

func TestMapProScheduleMissingTeam(t *testing.T) {
	if got := mapProSchedule(42, map[int]proTeamResponse{}); got != nil {
		t.Fatalf("expected nil schedule for unknown pro team, got %v", got)
	}
}
