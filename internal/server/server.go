package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/player-profile-service/internal/app/admin"
	"github.com/preston-bernstein/player-profile-service/internal/app/profile"
	"github.com/preston-bernstein/player-profile-service/internal/config"
	httpserver "github.com/preston-bernstein/player-profile-service/internal/http"
	"github.com/preston-bernstein/player-profile-service/internal/http/handlers"
	"github.com/preston-bernstein/player-profile-service/internal/http/middleware"
	"github.com/preston-bernstein/player-profile-service/internal/logging"
	"github.com/preston-bernstein/player-profile-service/internal/metrics"
	"github.com/preston-bernstein/player-profile-service/internal/store"
	"github.com/preston-bernstein/player-profile-service/internal/web"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	lock          *store.DirLock
	profiles      *store.ProfileStore
	auth          *store.AuthStore
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New locks the data directory, creates any missing documents with their
// defaults and wires the HTTP stack. It fails when another process holds the
// data directory or a document cannot be created.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	lock, err := store.AcquireDirLock(cfg.Storage.LockPath())
	if err != nil {
		return nil, fmt.Errorf("data dir %s is in use: %w", cfg.Storage.DataDir, err)
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	hasher := admin.BcryptHasher{}
	profileStore := store.NewProfileStore(cfg.Storage.DataPath(), logger, recorder)
	authStore := store.NewAuthStore(cfg.Storage.AuthPath(), admin.DefaultIdentity(hasher, logger), logger, recorder)
	if err := store.EnsureInitialized(logger, profileStore.File(), authStore.File()); err != nil {
		if relErr := lock.Release(); relErr != nil {
			logging.Warn(logger, "failed to release data dir lock", slog.Any("error", relErr))
		}
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, fmt.Errorf("initialize documents: %w", err)
	}

	profiles := profile.NewService(profileStore, logger)
	adminSvc := admin.NewService(authStore, hasher, admin.Options{
		RegistrationCode: cfg.Auth.RegistrationCode,
		AllowReregister:  cfg.Auth.AllowReregister,
	}, logger, recorder)

	handler := handlers.NewHandler(profiles, adminSvc, logger, profileStore.File(), authStore.File())
	httpSrv := buildHTTPServer(cfg, handler, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		lock:          lock,
		profiles:      profileStore,
		auth:          authStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, lock *store.DirLock) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		lock:       lock,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	files, source := web.Assets(cfg.Storage.StaticDir)
	logging.Info(logger, "serving front-end bundle",
		slog.String("source", source),
		slog.String("static_dir", cfg.Storage.StaticDir),
	)

	router := httpserver.NewRouter(handler, handlers.SPAHandler(files, logger), httpserver.RouterOptions{
		MaxBodyBytes: cfg.MaxBodyBytes,
		CORSOrigins:  cfg.CORSOrigins,
	})
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       orDefault(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout:      orDefault(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting",
		slog.String("addr", s.httpServer.Addr()),
		slog.String("data_dir", s.cfg.Storage.DataDir),
	)
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
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any("error", err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any("error", err))
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Handlers have drained, so no write is in flight when the lock goes.
	if err := s.lock.Release(); err != nil {
		logging.Warn(s.logger, "failed to release data dir lock", slog.Any("error", err))
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("error", err))
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", slog.Any("error", err))
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
