// Package analysis holds pure statistical computations over already-fetched
// stat lines: 9-cat z-score value ratings, recent-game volatility grading,
// and roster composition insights.
package analysis

import (
	"math"
	"sort"

	"fantasy-intel-service/internal/domain/stats"
)

// Category names used as z-score map keys.
const (
	CatPoints    = "PTS"
	CatRebounds  = "REB"
	CatAssists   = "AST"
	CatSteals    = "STL"
	CatBlocks    = "BLK"
	CatThrees    = "FG3M"
	CatTurnovers = "TOV"
	CatFGPct     = "FG_PCT"
	CatFTPct     = "FT_PCT"
)

var categories = []string{
	CatPoints, CatRebounds, CatAssists, CatSteals, CatBlocks,
	CatThrees, CatTurnovers, CatFGPct, CatFTPct,
}

func categoryValue(line stats.SeasonLine, cat string) float64 {
	switch cat {
	case CatPoints:
		return line.Points
	case CatRebounds:
		return line.Rebounds
	case CatAssists:
		return line.Assists
	case CatSteals:
		return line.Steals
	case CatBlocks:
		return line.Blocks
	case CatThrees:
		return line.Threes
	case CatTurnovers:
		return line.Turnovers
	case CatFGPct:
		return line.FGPct
	case CatFTPct:
		return line.FTPct
	default:
		return 0
	}
}

// ComputeRatings standardizes each 9-cat category across the league as
// z-scores, sums them into a total value, and ranks descending. Turnovers are
// inverted since fewer is better. Fewer than two lines yields no ratings
// (standard deviation is undefined).
func ComputeRatings(lines []stats.SeasonLine) []stats.Rating {
	if len(lines) < 2 {
		return nil
	}

	means := make(map[string]float64, len(categories))
	stds := make(map[string]float64, len(categories))
	for _, cat := range categories {
		mean, std := meanStd(lines, cat)
		means[cat] = mean
		stds[cat] = std
	}

	ratings := make([]stats.Rating, 0, len(lines))
	for _, line := range lines {
		z := make(map[string]float64, len(categories))
		total := 0.0
		for _, cat := range categories {
			if stds[cat] == 0 {
				z[cat] = 0
				continue
			}
			score := (categoryValue(line, cat) - means[cat]) / stds[cat]
			if cat == CatTurnovers {
				score = -score
			}
			z[cat] = score
			total += score
		}
		ratings = append(ratings, stats.Rating{
			SeasonLine: line,
			ZScores:    z,
			TotalZ:     total,
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].TotalZ > ratings[j].TotalZ
	})
	for i := range ratings {
		ratings[i].Rank = i + 1
	}
	return ratings
}

func meanStd(lines []stats.SeasonLine, cat string) (mean, std float64) {
	n := float64(len(lines))
	for _, line := range lines {
		mean += categoryValue(line, cat)
	}
	mean /= n

	var sumSq float64
	for _, line := range lines {
		d := categoryValue(line, cat) - mean
		sumSq += d * d
	}
	// Sample standard deviation, matching the upstream computation.
	std = math.Sqrt(sumSq / (n - 1))
	return mean, std
}
