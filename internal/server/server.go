package server

import (
	"context"
	"log/slog"
	"net/http"

	appdrafts "github.com/preston-bernstein/nba-draft-service/internal/app/drafts"
	appplayers "github.com/preston-bernstein/nba-draft-service/internal/app/players"
	"github.com/preston-bernstein/nba-draft-service/internal/assistant"
	"github.com/preston-bernstein/nba-draft-service/internal/config"
	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	httpserver "github.com/preston-bernstein/nba-draft-service/internal/http"
	"github.com/preston-bernstein/nba-draft-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-draft-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
	"github.com/preston-bernstein/nba-draft-service/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-service/internal/store"
	"github.com/preston-bernstein/nba-draft-service/internal/sweeper"
)

// Version is reported by the MCP server and in log attributes.
var Version = "dev"

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	playersService *appplayers.Service
	draftsService  *appdrafts.Service
	assistant      *assistant.Server
	httpServer     httpServer
	metricsServer  httpServer
	sweeper        Sweeper
	metricsStop    func(context.Context) error
}

// New constructs a server, loading the player pools named in cfg.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	source, err := pool.LoadSource(cfg.Pools.CurrentFile, cfg.Pools.AllTimeFile, logger)
	if err != nil {
		return nil, err
	}

	memoryStore := store.NewMemoryStore()
	evaluator := evaluation.NewEvaluator(logger, recorder)
	playerSvc := appplayers.NewService(memoryStore, source, pool.NewNormalizer(logger, recorder), logger)
	playerSvc.Warm()

	writer := snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays)
	draftSvc := buildDraftService(cfg, memoryStore, playerSvc, evaluator, writer, logger, recorder)

	sw := sweeper.New(memoryStore, writer, logger, recorder, sweeper.Config{
		Interval:     cfg.Sweep.Interval,
		CompletedTTL: cfg.Sweep.CompletedTTL,
		AbandonedTTL: cfg.Sweep.AbandonedTTL,
	})

	var mcpServer *assistant.Server
	if cfg.MCP.Enabled {
		mcpServer = assistant.New(evaluator, logger, Version,
			assistant.WithPlayers(playerSvc),
			assistant.WithDefaultPool(cfg.Draft.Pool),
		)
	}

	httpSrv := buildHTTPServer(cfg, playerSvc, draftSvc, evaluator, mcpServer, sw, logger, recorder)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		playersService: playerSvc,
		draftsService:  draftSvc,
		assistant:      mcpServer,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		sweeper:        sw,
		metricsStop:    metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, sw Sweeper) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		sweeper:    sw,
	}
}

func buildDraftService(cfg config.Config, sessions *store.MemoryStore, pools *appplayers.Service, evaluator *evaluation.Evaluator, writer *snapshots.Writer, logger *slog.Logger, recorder *metrics.Recorder) *appdrafts.Service {
	// Load already validated the order.
	order, _ := draft.ParseOrder(cfg.Draft.Order)
	defaults := appdrafts.Defaults{
		Pool:     cfg.Draft.Pool,
		Rounds:   cfg.Draft.Rounds,
		AITeams:  cfg.Draft.AITeams,
		UserTeam: cfg.Draft.UserTeam,
		Order:    order,
	}
	return appdrafts.NewService(sessions, pools, evaluator, defaults,
		appdrafts.WithSnapshots(writer, snapshots.NewFSStore(cfg.Snapshots.Dir)),
		appdrafts.WithObservability(logger, recorder),
	)
}

func buildHTTPServer(cfg config.Config, playerSvc *appplayers.Service, draftSvc *appdrafts.Service, evaluator *evaluation.Evaluator, mcpServer *assistant.Server, sw Sweeper, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() sweeper.Status
	if sw != nil {
		statusFn = sw.Status
	}

	handler := handlers.NewHandler(handlers.Deps{
		Players:     playerSvc,
		Drafts:      draftSvc,
		Evaluator:   evaluator,
		DefaultPool: cfg.Draft.Pool,
		Logger:      logger,
		Status:      statusFn,
	})

	var opts []httpserver.RouteOption
	// The admin endpoint is only mounted when a token is configured.
	if cfg.AdminToken != "" && sw != nil {
		opts = append(opts, httpserver.WithAdmin(handlers.NewAdminHandler(sw, cfg.AdminToken, logger)))
	}
	if mcpServer != nil {
		opts = append(opts, httpserver.WithMount(cfg.MCP.Path, mcpServer.Handler()))
		logging.Info(logger, "mcp assistant mounted", logging.FieldPath, cfg.MCP.Path, logging.FieldCount, len(mcpServer.Tools()))
	}

	router := httpserver.NewRouter(handler, opts...)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the sweeper and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.sweeper != nil {
		s.sweeper.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.sweeper != nil {
		if err := s.sweeper.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop sweeper", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := cfg.Metrics.Telemetry()

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
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

// SweepNow runs one cleanup pass outside the ticker.
func (s *Server) SweepNow(ctx context.Context) (sweeper.Result, error) {
	if s.sweeper == nil {
		return sweeper.Result{}, nil
	}
	return s.sweeper.SweepOnce(ctx)
}
