package snapshots

import (
	"context"
	"log/slog"
	"time"

	"fantasy-intel-service/internal/domain/league"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/timeutil"
)

// News snapshots keep more items than the default API page.
const snapshotNewsLimit = 50

// Syncer refreshes daily snapshots on a schedule.
type Syncer struct {
	leagueProvider providers.LeagueProvider
	newsProvider   providers.NewsProvider
	writer         *Writer
	cfg            SyncConfig
	logger         *slog.Logger
	now            func() time.Time
	newTicker      func(time.Duration) *time.Ticker
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled      bool
	Interval     time.Duration
	DailyHourUTC int
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(leagueProvider providers.LeagueProvider, newsProvider providers.NewsProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger) *Syncer {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = 2
	}

	return &Syncer{
		leagueProvider: leagueProvider,
		newsProvider:   newsProvider,
		writer:         writer,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
		newTicker:      time.NewTicker,
	}
}

// Run performs a startup sync and then refreshes once a day.
// Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil {
		return
	}
	if s.leagueProvider == nil && s.newsProvider == nil {
		return
	}
	s.logInfo(
		"snapshot sync starting",
		"interval", s.cfg.Interval.String(),
		"daily_hour_utc", s.cfg.DailyHourUTC,
	)
	s.syncOnce(ctx)
	go s.daily(ctx)
}

func (s *Syncer) daily(ctx context.Context) {
	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.UTC().Hour() == s.cfg.DailyHourUTC {
				s.syncOnce(ctx)
			}
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	date := timeutil.FormatDate(s.now().UTC())
	s.syncLeague(ctx, date)
	if s.leagueProvider != nil && s.newsProvider != nil {
		s.sleep(ctx, s.cfg.Interval)
	}
	s.syncNews(ctx, date)
}

func (s *Syncer) syncLeague(ctx context.Context, date string) {
	if s.leagueProvider == nil {
		return
	}
	start := time.Now()
	lg, err := s.leagueProvider.FetchLeague(ctx)
	if err != nil {
		s.logWarn("league snapshot fetch failed", "date", date, "err", err)
		return
	}
	if len(lg.Teams) == 0 {
		s.logWarn("league snapshot received no teams", "date", date)
		return
	}
	if err := s.writer.WriteLeagueSnapshot(date, league.NewSnapshot(date, lg)); err != nil {
		s.logWarn("league snapshot write failed", "date", date, "err", err)
		return
	}
	s.logInfo("league snapshot written",
		"date", date,
		"count", len(lg.Teams),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) syncNews(ctx context.Context, date string) {
	if s.newsProvider == nil {
		return
	}
	start := time.Now()
	feed, err := s.newsProvider.FetchNews(ctx, snapshotNewsLimit)
	if err != nil {
		s.logWarn("news snapshot fetch failed", "date", date, "err", err)
		return
	}
	if len(feed.Items) == 0 {
		s.logWarn("news snapshot received no items", "date", date)
		return
	}
	if err := s.writer.WriteNewsSnapshot(date, NewsSnapshot{Date: date, Items: feed.Items}); err != nil {
		s.logWarn("news snapshot write failed", "date", date, "err", err)
		return
	}
	s.logInfo("news snapshot written",
		"date", date,
		"count", len(feed.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
