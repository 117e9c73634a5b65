package analysis

import (
	"math"

	"fantasy-intel-service/internal/domain/stats"
)

const defaultConsistencyWindow = 20

// Consistency summarizes a player's volatility over their most recent games
// (the log is expected most-recent-first). The grade is derived from the
// coefficient of variation of scoring: low variation relative to average
// points earns a better grade.
func Consistency(playerID int, log []stats.GameLogEntry, window int) stats.ConsistencyReport {
	if window <= 0 {
		window = defaultConsistencyWindow
	}
	if len(log) > window {
		log = log[:window]
	}

	report := stats.ConsistencyReport{
		PlayerID:      playerID,
		GamesAnalyzed: len(log),
		Volatility:    make(map[string]float64),
	}
	if len(log) < 2 {
		report.Grade = "N/A"
		return report
	}

	report.Volatility[CatPoints+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Points }))
	report.Volatility[CatRebounds+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Rebounds }))
	report.Volatility[CatAssists+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Assists }))
	report.Volatility[CatSteals+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Steals }))
	report.Volatility[CatBlocks+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Blocks }))
	report.Volatility[CatThrees+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Threes }))
	report.Volatility[CatTurnovers+"_STD"] = round2(stdOf(log, func(e stats.GameLogEntry) float64 { return e.Turnovers }))
	report.Volatility[CatFGPct+"_STD"] = round3(stdOf(log, func(e stats.GameLogEntry) float64 { return e.FGPct }))
	report.Volatility[CatFTPct+"_STD"] = round3(stdOf(log, func(e stats.GameLogEntry) float64 { return e.FTPct }))

	report.AvgPoints = round1(meanOf(log, func(e stats.GameLogEntry) float64 { return e.Points }))
	report.AvgMinutes = round1(meanOf(log, func(e stats.GameLogEntry) float64 { return e.Minutes }))
	report.Grade = grade(report.Volatility[CatPoints+"_STD"], report.AvgPoints)
	return report
}

func grade(pointsStd, avgPoints float64) string {
	if avgPoints <= 0 {
		return "D"
	}
	cv := pointsStd / avgPoints
	switch {
	case cv < 0.2:
		return "A+"
	case cv < 0.3:
		return "A"
	case cv < 0.4:
		return "B"
	case cv < 0.5:
		return "C"
	default:
		return "D"
	}
}

func meanOf(log []stats.GameLogEntry, get func(stats.GameLogEntry) float64) float64 {
	var sum float64
	for _, e := range log {
		sum += get(e)
	}
	return sum / float64(len(log))
}

func stdOf(log []stats.GameLogEntry, get func(stats.GameLogEntry) float64) float64 {
	mean := meanOf(log, get)
	var sumSq float64
	for _, e := range log {
		d := get(e) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(log)-1))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
