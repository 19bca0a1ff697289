package telemetry_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/unmask/pkg/lifecycle"
	"github.com/JaimeStill/unmask/pkg/telemetry"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDisabledIsNoop(t *testing.T) {
	cfg := &telemetry.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	sys, err := telemetry.New(cfg, discard())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, span := sys.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("disabled tracer should produce invalid span contexts")
	}
}

func TestSpansFlushedOnShutdown(t *testing.T) {
	cfg := &telemetry.Config{Enabled: true}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	var buf bytes.Buffer
	sys, err := telemetry.NewWithWriter(cfg, &buf, discard())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, span := sys.Tracer("test").Start(context.Background(), "collaborator.complete")
	span.End()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	if !strings.Contains(buf.String(), "collaborator.complete") {
		t.Errorf("exported spans missing operation name: %s", buf.String())
	}
}
