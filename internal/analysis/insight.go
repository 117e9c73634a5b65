package analysis

import (
	"fmt"
	"strings"

	"fantasy-intel-service/internal/domain/players"
)

// RosterInsight describes the composition of a single fantasy roster.
type RosterInsight struct {
	TeamID       int            `json:"team_id"`
	RosterSize   int            `json:"roster_size"`
	Positions    map[string]int `json:"positions"`
	Injured      []string       `json:"injured"`
	Composition  string         `json:"composition"`
	Observations []string       `json:"observations"`
}

// AnalyzeRoster counts positions, flags injured players, and labels the
// roster guard-heavy, big-man-heavy, or balanced based on the backcourt vs
// frontcourt split.
func AnalyzeRoster(teamID int, roster []players.Player) RosterInsight {
	insight := RosterInsight{
		TeamID:     teamID,
		RosterSize: len(roster),
		Positions:  make(map[string]int),
	}

	guards, bigs := 0, 0
	for _, p := range roster {
		if p.Position != "" {
			insight.Positions[p.Position]++
		}
		if injured(p.InjuryStatus) {
			insight.Injured = append(insight.Injured, p.Name)
		}
		isGuard, isBig := classifyPosition(p.Position)
		if isGuard {
			guards++
		}
		if isBig {
			bigs++
		}
	}
	switch {
	case guards > bigs+2:
		insight.Composition = "guard-heavy"
		insight.Observations = append(insight.Observations,
			fmt.Sprintf("backcourt-leaning roster: %d guards vs %d bigs", guards, bigs))
	case bigs > guards+2:
		insight.Composition = "big-man-heavy"
		insight.Observations = append(insight.Observations,
			fmt.Sprintf("frontcourt-leaning roster: %d bigs vs %d guards", bigs, guards))
	default:
		insight.Composition = "balanced"
	}

	if n := len(insight.Injured); n > 0 {
		insight.Observations = append(insight.Observations,
			fmt.Sprintf("%d player(s) carrying an injury designation", n))
	}
	return insight
}

// classifyPosition buckets a player by eligibility slot. Eligibility strings
// arrive as compound lists ("PG, SG", "F/C"), so matching works on the
// individual slot tokens rather than the whole string.
func classifyPosition(position string) (guard, big bool) {
	tokens := strings.FieldsFunc(strings.ToUpper(position), func(r rune) bool {
		return r == ',' || r == '/' || r == ' '
	})
	for _, tok := range tokens {
		switch tok {
		case "PG", "SG", "G":
			guard = true
		case "PF", "C":
			big = true
		}
	}
	return guard, big
}

func injured(status string) bool {
	switch strings.ToUpper(status) {
	case "OUT", "DOUBTFUL", "QUESTIONABLE", "DAY_TO_DAY", "INJURY_RESERVE":
		return true
	}
	return false
}
