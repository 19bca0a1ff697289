package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/unmask/pkg/logging"
)

func TestConfigFinalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logging.Config
		wantErr bool
	}{
		{"defaults", logging.Config{}, false},
		{"bad level", logging.Config{Level: "loud"}, true},
		{"bad format", logging.Config{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "DEBUG")

	cfg := logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.Level != "debug" {
		t.Errorf("level: got %s", cfg.Level)
	}
}

func TestNewJSON(t *testing.T) {
	cfg := logging.Config{Format: "json", Level: "warn"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	var buf bytes.Buffer
	logger, err := logging.New(&cfg, &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer logger.Close()

	logger.Info("dropped")
	logger.Warn("kept", "system", "test")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines: got %d, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["msg"] != "kept" || entry["system"] != "test" {
		t.Errorf("entry: %v", entry)
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "unmask.log")
	cfg := logging.Config{File: path}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	var buf bytes.Buffer
	logger, err := logging.New(&cfg, &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hello")
	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("file content: %s", data)
	}
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("stdout content: %s", buf.String())
	}
}
