package analysis

import (
	"testing"

	"fantasy-intel-service/internal/domain/stats"
)

func logEntry(pts, min float64) stats.GameLogEntry {
	return stats.GameLogEntry{Points: pts, Minutes: min}
}

func TestConsistencySteadyScorerGetsTopGrade(t *testing.T) {
	log := []stats.GameLogEntry{
		logEntry(25, 34), logEntry(24, 33), logEntry(26, 35),
		logEntry(25, 34), logEntry(24, 36), logEntry(26, 33),
	}

	report := Consistency(7, log, 0)
	if report.PlayerID != 7 {
		t.Fatalf("expected player id 7, got %d", report.PlayerID)
	}
	if report.GamesAnalyzed != 6 {
		t.Fatalf("expected 6 games analyzed, got %d", report.GamesAnalyzed)
	}
	if report.Grade != "A+" {
		t.Fatalf("expected A+ for steady scoring, got %q", report.Grade)
	}
	if report.AvgPoints != 25.0 {
		t.Fatalf("expected 25.0 average points, got %f", report.AvgPoints)
	}
}

func TestConsistencyVolatileScorerGetsLowGrade(t *testing.T) {
	log := []stats.GameLogEntry{
		logEntry(40, 38), logEntry(5, 20), logEntry(35, 36),
		logEntry(8, 22), logEntry(30, 34), logEntry(2, 15),
	}

	report := Consistency(8, log, 0)
	if report.Grade != "D" {
		t.Fatalf("expected D for volatile scoring, got %q", report.Grade)
	}
	if report.Volatility[CatPoints+"_STD"] <= 0 {
		t.Fatalf("expected positive points volatility")
	}
}

func TestConsistencyWindowTruncatesLog(t *testing.T) {
	log := make([]stats.GameLogEntry, 30)
	for i := range log {
		log[i] = logEntry(20, 30)
	}

	report := Consistency(1, log, 0)
	if report.GamesAnalyzed != defaultConsistencyWindow {
		t.Fatalf("expected window of %d games, got %d", defaultConsistencyWindow, report.GamesAnalyzed)
	}

	report = Consistency(1, log, 5)
	if report.GamesAnalyzed != 5 {
		t.Fatalf("expected custom window of 5, got %d", report.GamesAnalyzed)
	}
}

func TestConsistencyTooFewGames(t *testing.T) {
	report := Consistency(3, []stats.GameLogEntry{logEntry(20, 30)}, 0)
	if report.Grade != "N/A" {
		t.Fatalf("expected N/A grade for a single game, got %q", report.Grade)
	}
	if report.GamesAnalyzed != 1 {
		t.Fatalf("expected 1 game analyzed, got %d", report.GamesAnalyzed)
	}
}
