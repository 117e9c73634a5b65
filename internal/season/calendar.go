package season

import (
	"time"

	"fantasy-intel-service/internal/timeutil"
)

const (
	defaultWeeks            = 24
	defaultDoubleWeek       = 17
	defaultDoubleWeekLength = 14
	defaultStartMonth       = time.October
	defaultStartDay         = 22
)

// Config describes a season's matchup calendar rules. The irregular weeks are
// configuration data, not computed: which week is doubled (the all-star pause)
// and where the season starts both come from here.
type Config struct {
	EndingYear       int
	StartDate        time.Time
	Weeks            int
	DoubleWeek       int
	DoubleWeekLength int
}

// knownStarts holds season start dates that differ from the default rule.
var knownStarts = map[int]time.Time{
	2026: timeutil.Date(2025, time.October, 21),
}

// DefaultConfig returns the calendar rules for a season identified by its
// ending year. Seasons outside the known table use the default start rule
// (October 22 of the prior calendar year).
func DefaultConfig(endingYear int) Config {
	start, ok := knownStarts[endingYear]
	if !ok {
		start = timeutil.Date(endingYear-1, defaultStartMonth, defaultStartDay)
	}
	return Config{
		EndingYear:       endingYear,
		StartDate:        start,
		Weeks:            defaultWeeks,
		DoubleWeek:       defaultDoubleWeek,
		DoubleWeekLength: defaultDoubleWeekLength,
	}
}

// WeekRange is an inclusive [Start, End] span for one matchup period.
type WeekRange struct {
	Index int       `json:"period"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the inclusive length of the range in days.
func (w WeekRange) Days() int {
	return timeutil.DaysBetween(w.Start, w.End) + 1
}

// Contains reports whether the date falls inside the range (inclusive both ends).
func (w WeekRange) Contains(date time.Time) bool {
	d := timeutil.Day(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Calendar is the ordered set of week ranges for one season.
type Calendar struct {
	weeks []WeekRange
}

// Build derives the full matchup calendar from the season rules.
// Week 1 runs from the start date to the first Sunday on or after it; the
// configured double week spans DoubleWeekLength days; every other week is
// seven days starting the day after the previous week ends.
func Build(cfg Config) Calendar {
	cfg = normalize(cfg)

	weeks := make([]WeekRange, 0, cfg.Weeks)
	start := timeutil.Day(cfg.StartDate)

	for idx := 1; idx <= cfg.Weeks; idx++ {
		var end time.Time
		switch {
		case idx == 1:
			end = nextSunday(start)
		case idx == cfg.DoubleWeek:
			end = start.AddDate(0, 0, cfg.DoubleWeekLength-1)
		default:
			end = start.AddDate(0, 0, 6)
		}
		weeks = append(weeks, WeekRange{Index: idx, Start: start, End: end})
		start = end.AddDate(0, 0, 1)
	}

	return Calendar{weeks: weeks}
}

func normalize(cfg Config) Config {
	if cfg.Weeks <= 0 {
		cfg.Weeks = defaultWeeks
	}
	if cfg.DoubleWeekLength <= 0 {
		cfg.DoubleWeekLength = defaultDoubleWeekLength
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = DefaultConfig(cfg.EndingYear).StartDate
	}
	return cfg
}

// nextSunday returns the first Sunday on or after the given date.
func nextSunday(date time.Time) time.Time {
	d := timeutil.Day(date)
	offset := (int(time.Sunday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// Weeks returns the ordered week ranges.
func (c Calendar) Weeks() []WeekRange {
	out := make([]WeekRange, len(c.weeks))
	copy(out, c.weeks)
	return out
}

// Range returns the span for a matchup period if it exists.
func (c Calendar) Range(week int) (WeekRange, bool) {
	if week < 1 || week > len(c.weeks) {
		return WeekRange{}, false
	}
	return c.weeks[week-1], true
}

// Contains reports whether the date falls within any defined week.
func (c Calendar) Contains(date time.Time) bool {
	d := timeutil.Day(date)
	if len(c.weeks) == 0 {
		return false
	}
	return !d.Before(c.weeks[0].Start) && !d.After(c.weeks[len(c.weeks)-1].End)
}

// FindWeek returns the matchup period containing the date. Dates outside the
// season fall back to period 1; use Contains to detect out-of-range dates.
func (c Calendar) FindWeek(date time.Time) int {
	d := timeutil.Day(date)
	for _, w := range c.weeks {
		if w.Contains(d) {
			return w.Index
		}
	}
	return 1
}
