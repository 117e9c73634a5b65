package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fantasy-intel-service/internal/app/leagueinfo"
	"fantasy-intel-service/internal/app/newsroom"
	"fantasy-intel-service/internal/app/rankings"
	"fantasy-intel-service/internal/app/schedule"
	"fantasy-intel-service/internal/matchup"
	"fantasy-intel-service/internal/poller"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/snapshots"
	"fantasy-intel-service/internal/timeutil"
)

type nowFunc func() time.Time

// Deps collects the services the handler composes.
type Deps struct {
	League   *leagueinfo.Service
	Schedule *schedule.Service
	News     *newsroom.Service
	Rankings *rankings.Service
	Snaps    snapshots.Store
	Logger   *slog.Logger
	StatusFn func() poller.Status
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	league   *leagueinfo.Service
	schedule *schedule.Service
	news     *newsroom.Service
	rankings *rankings.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(d Deps) *Handler {
	return &Handler{
		league:   d.League,
		schedule: d.Schedule,
		news:     d.News,
		rankings: d.Rankings,
		snaps:    d.Snaps,
		logger:   d.Logger,
		now:      time.Now,
		statusFn: d.StatusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// LeagueInfo returns league metadata. With an explicit date query the stored
// snapshot for that day is served instead of the live store.
func (h *Handler) LeagueInfo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		if h.snaps == nil {
			writeError(w, r, http.StatusServiceUnavailable, "snapshot store not configured", h.logger)
			return
		}
		snap, err := h.snaps.LoadLeague(date)
		if err != nil {
			writeError(w, r, http.StatusNotFound, "no snapshot for date", h.logger)
			return
		}
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Info("served league snapshot", "date", snap.Date, "count", len(snap.League.Teams))
		}
		writeJSON(w, http.StatusOK, snap, h.logger)
		return
	}

	info, err := h.league.Info()
	if err != nil {
		h.writeLeagueError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info, h.logger)
}

// LeagueTeams returns every team in the league.
func (h *Handler) LeagueTeams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	teams, err := h.league.Teams()
	if err != nil {
		h.writeLeagueError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teams": teams}, h.logger)
}

// LeagueStandings returns teams ranked by record.
func (h *Handler) LeagueStandings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	standings, err := h.league.Standings()
	if err != nil {
		h.writeLeagueError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standings": standings}, h.logger)
}

// TeamRoster returns a team's players. Path: /team/{id}/roster.
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := teamIDFromPath(r.URL.Path, "roster")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	roster, err := h.league.Roster(id)
	if err != nil {
		h.writeLeagueError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teamId": id, "roster": roster}, h.logger)
}

// TeamInsight returns the roster composition analysis. Path: /team/{id}/insight.
func (h *Handler) TeamInsight(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := teamIDFromPath(r.URL.Path, "insight")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	insight, err := h.league.Insight(id)
	if err != nil {
		h.writeLeagueError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insight, h.logger)
}

// Calendar returns the full season matchup calendar.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weeks": h.schedule.Calendar()}, h.logger)
}

type weekResponse struct {
	Period   int                   `json:"period"`
	Analysis *matchup.WeekAnalysis `json:"analysis"`
}

// ScheduleCurrent analyzes the matchup period containing today.
func (h *Handler) ScheduleCurrent(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	period := h.schedule.PeriodFor(h.localNow(r))
	h.writeWeek(w, r, period)
}

// ScheduleUpcoming analyzes the period after the one containing today.
func (h *Handler) ScheduleUpcoming(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	next := h.schedule.PeriodFor(h.localNow(r)) + 1
	if !h.schedule.HasPeriod(next) {
		writeJSON(w, http.StatusOK, weekResponse{}, h.logger)
		return
	}
	h.writeWeek(w, r, next)
}

// ScheduleWeek analyzes an explicit matchup period (?period=N).
func (h *Handler) ScheduleWeek(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	raw := r.URL.Query().Get("period")
	period, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid period", h.logger)
		return
	}
	if !h.schedule.HasPeriod(period) {
		writeError(w, r, http.StatusNotFound, "unknown matchup period", h.logger)
		return
	}
	h.writeWeek(w, r, period)
}

// News returns the latest player news (?limit=N).
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		limit = parsed
	}
	feed, err := h.news.Latest(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "news unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, feed, h.logger)
}

// Rankings returns players ranked by 9-cat z-score value.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	ratings, err := h.rankings.Rankings(r.Context())
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "rankings unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(ratings), "players": ratings}, h.logger)
}

// PlayerConsistency returns a player's volatility report.
// Path: /nba/player/{id}/consistency.
func (h *Handler) PlayerConsistency(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/nba/player/")
	idRaw, action, found := strings.Cut(rest, "/")
	id, err := strconv.Atoi(idRaw)
	if !found || action != "consistency" || err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	report, err := h.rankings.Consistency(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "consistency unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

func (h *Handler) writeWeek(w http.ResponseWriter, r *http.Request, period int) {
	analysis, err := h.schedule.Week(period, highlightTeamID(r))
	if err != nil {
		if errors.Is(err, schedule.ErrNoLeague) {
			writeError(w, r, http.StatusServiceUnavailable, "league data not loaded", h.logger)
			return
		}
		writeError(w, r, http.StatusNotFound, "unknown matchup period", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, weekResponse{Period: period, Analysis: analysis}, h.logger)
}

func (h *Handler) writeLeagueError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, leagueinfo.ErrNoLeague) {
		writeError(w, r, http.StatusServiceUnavailable, "league data not loaded", h.logger)
		return
	}
	writeError(w, r, http.StatusNotFound, "team not found", h.logger)
}

// localNow resolves "today" in the requested timezone (?tz=), defaulting UTC.
func (h *Handler) localNow(r *http.Request) time.Time {
	now := h.now().UTC()
	if tz := r.URL.Query().Get("tz"); tz != "" {
		if loc := providers.ResolveTimezone(tz); loc != nil {
			return now.In(loc)
		}
	}
	return now
}

func highlightTeamID(r *http.Request) int {
	raw := r.URL.Query().Get("my_team_id")
	if raw == "" {
		return 0
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func teamIDFromPath(path, action string) (int, bool) {
	rest := strings.TrimPrefix(path, "/team/")
	idRaw, got, found := strings.Cut(rest, "/")
	if !found || got != action {
		return 0, false
	}
	id, err := strconv.Atoi(idRaw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
