// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, tracing, and the
// collaborator runtime) that domain systems require.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JaimeStill/unmask/internal/collaborator"
	"github.com/JaimeStill/unmask/internal/config"
	"github.com/JaimeStill/unmask/internal/schema"
	"github.com/JaimeStill/unmask/internal/workflow"
	"github.com/JaimeStill/unmask/pkg/database"
	"github.com/JaimeStill/unmask/pkg/lifecycle"
	"github.com/JaimeStill/unmask/pkg/logging"
	"github.com/JaimeStill/unmask/pkg/storage"
	"github.com/JaimeStill/unmask/pkg/telemetry"
)

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil when report archiving is disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Telemetry telemetry.System
	Runtime   *workflow.Runtime

	closer      io.Closer
	autoMigrate bool
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New with log lines written to out.
func NewWithOutput(cfg *config.Config, out io.Writer) (*Infrastructure, error) {
	lc := lifecycle.New()

	logs, err := logging.New(&cfg.Logging, out)
	if err != nil {
		return nil, fmt.Errorf("logging init failed: %w", err)
	}
	logger := logs.Logger

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	tel, err := telemetry.New(&cfg.Telemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init failed: %w", err)
	}

	collab, err := collaborator.New(&cfg.Collaborator, logger)
	if err != nil {
		return nil, fmt.Errorf("collaborator init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:   lc,
		Logger:      logger,
		Database:    db,
		Storage:     store,
		Telemetry:   tel,
		Runtime:     workflow.NewRuntime(collab, tel.Tracer("unmask/workflow"), logger),
		closer:      logs,
		autoMigrate: cfg.Database.AutoMigrate,
	}, nil
}

// Start applies migrations when auto-migrate is enabled and registers all
// infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.autoMigrate {
		i.Logger.Info("applying migrations", "driver", i.Database.Driver())
		if err := schema.Up(i.Database.Connection(), i.Database.Driver()); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
	}

	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	if err := i.Telemetry.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("telemetry start failed: %w", err)
	}

	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()
		i.closer.Close()
	})
	return nil
}
