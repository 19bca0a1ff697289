package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/unmask/internal/config"
	"github.com/JaimeStill/unmask/internal/infrastructure"
)

// Server binds the API module and native probes to one listener whose
// lifetime follows the infrastructure lifecycle.
type Server struct {
	infra           *infrastructure.Infrastructure
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	logger := infra.Logger.With("system", "http")
	logger.Info("server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"driver", cfg.Database.Driver,
		"collaborator", cfg.Collaborator.Provider,
		"model", cfg.Collaborator.Model,
		"archive", infra.Storage != nil,
		"write_timeout", cfg.Server.WriteTimeout,
	)

	return &Server{
		infra: infra,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeoutDuration(),
			ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
			WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
			IdleTimeout:       cfg.Server.IdleTimeoutDuration(),
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}, nil
}

// Start runs migrations and subsystem startup, then binds the listener.
// A bind failure is returned rather than logged from the serve loop.
func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}

	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", "error", err)
		}
	}()

	lc := s.infra.Lifecycle
	lc.OnShutdown(func() {
		<-lc.Context().Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		// In-flight collaborator calls finish or hit the deadline.
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("server shutdown incomplete", "error", err)
			return
		}
		s.logger.Info("server stopped")
	})

	go func() {
		lc.WaitForStartup()
		s.logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
