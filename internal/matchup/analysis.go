package matchup

import (
	"fmt"
	"sort"
	"time"

	"fantasy-intel-service/internal/domain/teams"
	"fantasy-intel-service/internal/timeutil"
)

// TeamGameCount is one side of an analyzed matchup. DailyCounts is aligned
// with the enclosing WeekAnalysis.DayDates slice, zero-filled for idle days.
type TeamGameCount struct {
	TeamID      int    `json:"id"`
	Name        string `json:"name"`
	TotalGames  int    `json:"totalGames"`
	DailyCounts []int  `json:"dailyCounts"`
}

// MatchupAnalysis compares scheduled game volume for one pairing.
type MatchupAnalysis struct {
	Home        TeamGameCount `json:"homeTeam"`
	Away        TeamGameCount `json:"awayTeam"`
	Diff        int           `json:"diff"`
	Advantage   string        `json:"advantage"`
	Highlighted bool          `json:"isMyMatchup"`
}

// WeekAnalysis is the full schedule comparison for one matchup period.
type WeekAnalysis struct {
	Period    int               `json:"period"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Days      []string          `json:"days"`
	DayDates  []string          `json:"dayDates"`
	Matchups  []MatchupAnalysis `json:"matchups"`
}

// AdvantageEven is the label used when both sides play the same number of games.
const AdvantageEven = "Even"

// AnalyzeWeek pairs the league's teams for a matchup period and compares each
// pairing's scheduled game volume over [start, end]. Pairings involving
// highlightTeamID (when non-zero) are floated to the front, preserving the
// relative order of the rest. A week with no pairings yields a nil result,
// which callers surface as an empty state rather than an error.
func AnalyzeWeek(league []teams.Team, weekIndex int, start, end time.Time, highlightTeamID int) (*WeekAnalysis, error) {
	startDay := timeutil.Day(start)
	endDay := timeutil.Day(end)
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("matchup: end date %s before start date %s",
			timeutil.FormatDate(endDay), timeutil.FormatDate(startDay))
	}

	pairings := PairTeamsForWeek(league, weekIndex)
	if len(pairings) == 0 {
		return nil, nil
	}

	if highlightTeamID != 0 {
		sort.SliceStable(pairings, func(i, j int) bool {
			return pairings[i].involves(highlightTeamID) && !pairings[j].involves(highlightTeamID)
		})
	}

	days, dayDates := buildDays(startDay, endDay)

	analysis := &WeekAnalysis{
		Period:    weekIndex,
		StartDate: timeutil.FormatDate(startDay),
		EndDate:   timeutil.FormatDate(endDay),
		Days:      days,
		DayDates:  dayDates,
		Matchups:  make([]MatchupAnalysis, 0, len(pairings)),
	}

	for _, pairing := range pairings {
		homeCount, err := CountGamesInRange(pairing.Home.Roster, startDay, endDay)
		if err != nil {
			return nil, err
		}
		awayCount, err := CountGamesInRange(pairing.Away.Roster, startDay, endDay)
		if err != nil {
			return nil, err
		}

		diff := homeCount.Total - awayCount.Total
		analysis.Matchups = append(analysis.Matchups, MatchupAnalysis{
			Home:        teamGameCount(pairing.Home, homeCount, dayDates),
			Away:        teamGameCount(pairing.Away, awayCount, dayDates),
			Diff:        diff,
			Advantage:   advantageLabel(pairing, diff),
			Highlighted: pairing.involves(highlightTeamID),
		})
	}

	return analysis, nil
}

func buildDays(start, end time.Time) (names, dates []string) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		names = append(names, d.Format("Mon"))
		dates = append(dates, timeutil.FormatDate(d))
	}
	return names, dates
}

func teamGameCount(team teams.Team, count GameCount, dayDates []string) TeamGameCount {
	daily := make([]int, len(dayDates))
	for i, date := range dayDates {
		daily[i] = count.PerDay[date]
	}
	return TeamGameCount{
		TeamID:      team.ID,
		Name:        team.Name,
		TotalGames:  count.Total,
		DailyCounts: daily,
	}
}

func advantageLabel(pairing Pairing, diff int) string {
	switch {
	case diff > 0:
		return fmt.Sprintf("%s +%d", pairing.Home.Name, diff)
	case diff < 0:
		return fmt.Sprintf("%s +%d", pairing.Away.Name, -diff)
	default:
		return AdvantageEven
	}
}
