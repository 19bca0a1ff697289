// Package telemetry configures OpenTelemetry tracing. Spans are exported as
// JSON to a rotated trace file so they can be inspected without a collector.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/JaimeStill/unmask/pkg/lifecycle"
)

// Config controls span export.
type Config struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	TraceFile   string `toml:"trace_file"`
}

// Env maps config fields to environment variable names.
type Env struct {
	Enabled     string
	ServiceName string
	TraceFile   string
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *Env) error {
	if c.ServiceName == "" {
		c.ServiceName = "unmask"
	}
	if c.TraceFile == "" {
		c.TraceFile = "logs/traces.log"
	}
	if env == nil {
		return nil
	}
	if env.Enabled != "" {
		switch os.Getenv(env.Enabled) {
		case "true", "1":
			c.Enabled = true
		case "false", "0":
			c.Enabled = false
		}
	}
	if env.ServiceName != "" {
		if v := os.Getenv(env.ServiceName); v != "" {
			c.ServiceName = v
		}
	}
	if env.TraceFile != "" {
		if v := os.Getenv(env.TraceFile); v != "" {
			c.TraceFile = v
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay. Enabled always applies.
func (c *Config) Merge(overlay *Config) {
	c.Enabled = overlay.Enabled
	if overlay.ServiceName != "" {
		c.ServiceName = overlay.ServiceName
	}
	if overlay.TraceFile != "" {
		c.TraceFile = overlay.TraceFile
	}
}

// System owns the tracer provider.
type System interface {
	// Tracer returns a named tracer. Disabled systems return a no-op tracer.
	Tracer(name string) trace.Tracer
	// Start registers a shutdown hook that flushes pending spans.
	Start(lc *lifecycle.Coordinator) error
}

type tracing struct {
	provider *sdktrace.TracerProvider
	file     io.Closer
	logger   *slog.Logger
}

type disabled struct{}

func (disabled) Tracer(name string) trace.Tracer    { return noop.NewTracerProvider().Tracer(name) }
func (disabled) Start(*lifecycle.Coordinator) error { return nil }

// New creates a tracing System and installs it as the global provider.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if !cfg.Enabled {
		return disabled{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.TraceFile), 0o755); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.TraceFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	return NewWithWriter(cfg, file, logger)
}

// NewWithWriter creates a tracing System exporting to w. Closers passed as
// w are closed on shutdown.
func NewWithWriter(cfg *Config, w io.Writer, logger *slog.Logger) (System, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(provider)

	t := &tracing{
		provider: provider,
		logger:   logger.With("system", "telemetry"),
	}
	if c, ok := w.(io.Closer); ok {
		t.file = c
	}
	return t, nil
}

func (t *tracing) Tracer(name string) trace.Tracer {
	return t.provider.Tracer(name)
}

func (t *tracing) Start(lc *lifecycle.Coordinator) error {
	t.logger.Info("tracing enabled")

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := t.Shutdown(); err != nil {
			t.logger.Error("tracer shutdown failed", "error", err)
		}
	})

	return nil
}

// Shutdown flushes spans and closes the trace file.
func (t *tracing) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := t.provider.Shutdown(ctx)
	if t.file != nil {
		if cerr := t.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
