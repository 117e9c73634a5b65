// Package http assembles the service's route table.
package http

import (
	nethttp "net/http"
	"strings"

	"fantasy-intel-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/league/info", h.LeagueInfo)
	mux.HandleFunc("/league/teams", h.LeagueTeams)
	mux.HandleFunc("/league/standings", h.LeagueStandings)
	mux.HandleFunc("/team/", teamMux(h))
	mux.HandleFunc("/calendar", h.Calendar)
	mux.HandleFunc("/schedule/current", h.ScheduleCurrent)
	mux.HandleFunc("/schedule/upcoming", h.ScheduleUpcoming)
	mux.HandleFunc("/schedule/week", h.ScheduleWeek)
	mux.HandleFunc("/news", h.News)
	mux.HandleFunc("/nba/rankings", h.Rankings)
	mux.HandleFunc("/nba/player/", h.PlayerConsistency)
	if admin != nil {
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}
	return mux
}

// teamMux dispatches /team/{id}/roster and /team/{id}/insight.
func teamMux(h *handlers.Handler) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/roster"):
			h.TeamRoster(w, r)
		case strings.HasSuffix(r.URL.Path, "/insight"):
			h.TeamInsight(w, r)
		default:
			nethttp.NotFound(w, r)
		}
	}
}
