package players

import "time"

// ScheduledGame is one entry in a player's pro-team schedule.
// Dates are normalized to UTC midnight at the provider boundary.
type ScheduledGame struct {
	Date     time.Time `json:"date"`
	Opponent string    `json:"opponent"`
}

// Player represents the normalized rostered-player shape.
// Schedule is keyed by the upstream scoring-period identifier; the core only
// reads game dates from it, and a nil map means no schedule data (zero games).
type Player struct {
	ID           int                      `json:"id"`
	Name         string                   `json:"name"`
	Position     string                   `json:"position"`
	ProTeam      string                   `json:"proTeam"`
	InjuryStatus string                   `json:"injuryStatus,omitempty"`
	Schedule     map[string]ScheduledGame `json:"schedule,omitempty"`
}

// GameDates returns the set of dates the player has a scheduled game.
func (p Player) GameDates() []time.Time {
	if len(p.Schedule) == 0 {
		return nil
	}
	dates := make([]time.Time, 0, len(p.Schedule))
	for _, g := range p.Schedule {
		dates = append(dates, g.Date)
	}
	return dates
}
