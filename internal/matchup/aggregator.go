package matchup

import (
	"fmt"
	"time"

	"fantasy-intel-service/internal/domain/players"
	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/timeutil"
)

// GameCount is the per-roster result of counting games in a date range.
// PerDay is keyed by YYYY-MM-DD and omits days with no games; Total always
// equals the sum of PerDay values.
type GameCount struct {
	Total  int            `json:"total"`
	PerDay map[string]int `json:"perDay"`
}

// CountGamesInRange counts scheduled games for every player on the roster
// whose game date falls inside [start, end]. An empty roster or a player with
// no schedule data contributes zero games. A range with end before start is a
// caller bug and is rejected rather than treated as empty.
func CountGamesInRange(roster []players.Player, start, end time.Time) (GameCount, error) {
	startDay := timeutil.Day(start)
	endDay := timeutil.Day(end)
	if endDay.Before(startDay) {
		return GameCount{}, fmt.Errorf("matchup: end date %s before start date %s",
			timeutil.FormatDate(endDay), timeutil.FormatDate(startDay))
	}

	count := GameCount{PerDay: make(map[string]int)}
	for _, p := range roster {
		for _, game := range p.Schedule {
			day := timeutil.Day(game.Date)
			if day.Before(startDay) || day.After(endDay) {
				continue
			}
			count.Total++
			count.PerDay[timeutil.FormatDate(day)]++
		}
	}
	return count, nil
}

// Pairing is one head-to-head matchup for a week.
type Pairing struct {
	Home teams.Team
	Away teams.Team
}

// involves reports whether either side of the pairing is the given team.
func (p Pairing) involves(teamID int) bool {
	return teamID != 0 && (p.Home.ID == teamID || p.Away.ID == teamID)
}

// PairTeamsForWeek builds the head-to-head pairings for a matchup period from
// each team's own schedule entry. Teams with no entry at that period and bye
// entries are skipped. Both sides of a matchup report the same pairing, so
// duplicates are collapsed by the unordered team-id pair; the first report
// wins and insertion order is preserved.
func PairTeamsForWeek(league []teams.Team, weekIndex int) []Pairing {
	idx := weekIndex - 1
	if idx < 0 {
		return nil
	}

	var pairings []Pairing
	seen := make(map[[2]int]struct{})

	for _, team := range league {
		if idx >= len(team.Schedule) {
			continue
		}
		entry := team.Schedule[idx]
		if entry.IsBye() {
			continue
		}

		key := pairKey(entry.HomeTeamID, entry.AwayTeamID)
		if _, ok := seen[key]; ok {
			continue
		}

		home, homeOK := teamByID(league, entry.HomeTeamID)
		away, awayOK := teamByID(league, entry.AwayTeamID)
		if !homeOK || !awayOK {
			continue
		}

		seen[key] = struct{}{}
		pairings = append(pairings, Pairing{Home: home, Away: away})
	}

	return pairings
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func teamByID(league []teams.Team, id int) (teams.Team, bool) {
	for _, t := range league {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}
