package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/http/requestutil"
	"fantasy-intel-service/internal/logging"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/snapshots"
	"fantasy-intel-service/internal/timeutil"
)

const adminNewsLimit = 50

// AdminHandler exposes admin-only endpoints (e.g., snapshot refresh).
type AdminHandler struct {
	writer       *snapshots.Writer
	leagueSource providers.LeagueProvider
	newsSource   providers.NewsProvider
	token        string
	logger       *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, leagueSource providers.LeagueProvider, newsSource providers.NewsProvider, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:       writer,
		leagueSource: leagueSource,
		newsSource:   newsSource,
		token:        token,
		logger:       logger,
	}
}

// RefreshSnapshots writes league and news snapshots for the requested date
// (defaults to today). Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.leagueSource == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(time.Now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin snapshot invalid date", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	lg, err := h.leagueSource.FetchLeague(r.Context())
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed",
			slog.String("date", date),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch league", logger)
		return
	}
	if len(lg.Teams) == 0 {
		logging.Warn(logger, "admin snapshot empty league", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "no teams to snapshot", logger)
		return
	}
	if err := h.writer.WriteLeagueSnapshot(date, league.NewSnapshot(date, lg)); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String("date", date),
			slog.Int("count", len(lg.Teams)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	newsItems := h.refreshNews(r, date, logger)

	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date,
		"teams":     len(lg.Teams),
		"newsItems": newsItems,
		"status":    "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String("date", date),
		slog.Int("count", len(lg.Teams)),
	)
}

// refreshNews is best effort: a news failure does not fail the refresh.
func (h *AdminHandler) refreshNews(r *http.Request, date string, logger *slog.Logger) int {
	if h.newsSource == nil {
		return 0
	}
	feed, err := h.newsSource.FetchNews(r.Context(), adminNewsLimit)
	if err != nil {
		logging.Warn(logger, "admin news fetch failed", slog.Any("err", err))
		return 0
	}
	if len(feed.Items) == 0 {
		return 0
	}
	if err := h.writer.WriteNewsSnapshot(date, snapshots.NewsSnapshot{Date: date, Items: feed.Items}); err != nil {
		logging.Warn(logger, "admin news write failed", slog.Any("err", err))
		return 0
	}
	return len(feed.Items)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
