package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-10-21")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2025-10-21" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestDayKeepsCivilDateOfOwnZone(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2025, 10, 21, 23, 30, 0, 0, loc)
	got := Day(value)
	if got.Hour() != 0 || got.Location() != time.UTC {
		t.Fatalf("expected UTC midnight, got %v", got)
	}
	// The zone's own calendar date wins, even though the instant is already
	// Oct 22 in UTC.
	if FormatDate(got) != "2025-10-21" {
		t.Fatalf("expected the local civil date, got %s", FormatDate(got))
	}
}

func TestDayAcrossZoneBoundary(t *testing.T) {
	west := time.FixedZone("west", -8*60*60)
	instant := time.Date(2025, 10, 27, 3, 0, 0, 0, time.UTC)
	if got := FormatDate(Day(instant.In(west))); got != "2025-10-26" {
		t.Fatalf("expected previous civil date west of UTC, got %s", got)
	}
	if got := FormatDate(Day(instant)); got != "2025-10-27" {
		t.Fatalf("expected UTC civil date unchanged, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := Date(2025, time.October, 21)
	b := Date(2025, time.October, 26)
	if got := DaysBetween(a, b); got != 5 {
		t.Fatalf("expected 5 days, got %d", got)
	}
	if got := DaysBetween(b, a); got != -5 {
		t.Fatalf("expected -5 days, got %d", got)
	}
}
