package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"fantasy-intel-service/internal/app/leagueinfo"
	"fantasy-intel-service/internal/app/newsroom"
	"fantasy-intel-service/internal/app/rankings"
	"fantasy-intel-service/internal/app/schedule"
	"fantasy-intel-service/internal/config"
	httpserver "fantasy-intel-service/internal/http"
	"fantasy-intel-service/internal/http/handlers"
	"fantasy-intel-service/internal/http/middleware"
	"fantasy-intel-service/internal/logging"
	"fantasy-intel-service/internal/metrics"
	"fantasy-intel-service/internal/poller"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/season"
	"fantasy-intel-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, providerSet{})
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, set providerSet) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if set.league == nil {
		set = newProviderFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	cal := season.Build(season.DefaultConfig(cfg.ESPN.Season))
	snaps := buildSnapshots(cfg, set.league, set.news, logger)

	plr := poller.New(set.league, memoryStore, snaps.writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, cal, set, snaps, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, cal season.Calendar, set providerSet, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(handlers.Deps{
		League:   leagueinfo.NewService(memoryStore),
		Schedule: schedule.NewService(memoryStore, cal),
		News:     newsroom.NewService(set.news, cfg.News.DefaultLimit),
		Rankings: rankings.NewService(set.stats, memoryStore),
		Snaps:    snaps.store,
		Logger:   logger,
		StatusFn: statusFn,
	})

	// Mount the admin refresh endpoint only when a token is configured.
	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(snaps.writer, set.league, set.news, cfg.Snapshots.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	})
	wrapped := middleware.LoggingMiddleware(logger, recorder, corsWrapper.Handler(router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider attempts to extract the underlying provider from the poller when available.
// Best-effort helper to enable cleanup of rate-limited tickers; safe if not supported.
func (s *Server) pollerProvider() providers.LeagueProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.LeagueProvider
	}); ok {
		return pa.Provider()
	}
	return nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
