package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/unmask/internal/config"
	"github.com/JaimeStill/unmask/internal/infrastructure"
)

func TestNativeRoutes(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UNMASK_DB_DRIVER", "sqlite")
	t.Setenv("UNMASK_DB_PATH", filepath.Join(t.TempDir(), "unmask.db"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	infra, err := infrastructure.NewWithOutput(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("infrastructure: %v", err)
	}
	t.Cleanup(func() { infra.Database.Connection().Close() })

	modules, err := NewModules(infra, cfg)
	if err != nil {
		t.Fatalf("modules: %v", err)
	}
	router := buildRouter(infra)
	modules.Mount(router)

	tests := []struct {
		path     string
		want     int
		contains string
	}{
		{"/healthz", http.StatusOK, `"ok"`},
		{"/readyz", http.StatusServiceUnavailable, "not ready"},
		{"/metrics", http.StatusOK, "go_goroutines"},
		{"/api/openapi.json", http.StatusOK, `"openapi"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}
