package storage_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/JaimeStill/unmask/pkg/storage"
)

func TestConfigFinalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr bool
	}{
		{"disabled needs nothing", storage.Config{}, false},
		{"enabled without credentials", storage.Config{Enabled: true}, true},
		{"connection string", storage.Config{Enabled: true, ConnectionString: "UseDevelopmentStorage=true"}, false},
		{"account url", storage.Config{Enabled: true, AccountURL: "https://acct.blob.core.windows.net"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.cfg.ContainerName != "reports" {
				t.Errorf("container default: got %s", tt.cfg.ContainerName)
			}
		})
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_STORAGE_ENABLED", "true")
	t.Setenv("TEST_STORAGE_CONN", "UseDevelopmentStorage=true")

	cfg := storage.Config{}
	env := &storage.Env{Enabled: "TEST_STORAGE_ENABLED", ConnectionString: "TEST_STORAGE_CONN"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !cfg.Enabled || cfg.ConnectionString != "UseDevelopmentStorage=true" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestNewDisabled(t *testing.T) {
	sys, err := storage.New(&storage.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if sys != nil {
		t.Error("disabled storage should return a nil System")
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key  string
		want error
	}{
		{"", storage.ErrEmptyKey},
		{"reports/../secret", storage.ErrInvalidKey},
		{"reports/abc.pdf", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := storage.ValidateKey(tt.key); !errors.Is(err, tt.want) {
				t.Errorf("ValidateKey(%q) = %v, want %v", tt.key, err, tt.want)
			}
		})
	}
}

func TestNewWithConnectionString(t *testing.T) {
	cfg := &storage.Config{
		Enabled:       true,
		ContainerName: "reports",
		ConnectionString: "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;" +
			"AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;" +
			"BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;",
	}

	sys, err := storage.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if sys == nil {
		t.Fatal("enabled storage returned a nil System")
	}
}
