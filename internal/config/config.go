package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/unmask/internal/collaborator"
	"github.com/JaimeStill/unmask/pkg/database"
	"github.com/JaimeStill/unmask/pkg/logging"
	"github.com/JaimeStill/unmask/pkg/storage"
	"github.com/JaimeStill/unmask/pkg/telemetry"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvUnmaskEnv             = "UNMASK_ENV"
	EnvUnmaskShutdownTimeout = "UNMASK_SHUTDOWN_TIMEOUT"
	EnvUnmaskVersion         = "UNMASK_VERSION"
)

var databaseEnv = &database.Env{
	Driver:          "UNMASK_DB_DRIVER",
	Path:            "UNMASK_DB_PATH",
	Host:            "UNMASK_DB_HOST",
	Port:            "UNMASK_DB_PORT",
	Name:            "UNMASK_DB_NAME",
	User:            "UNMASK_DB_USER",
	Password:        "UNMASK_DB_PASSWORD",
	SSLMode:         "UNMASK_DB_SSL_MODE",
	MaxOpenConns:    "UNMASK_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "UNMASK_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "UNMASK_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "UNMASK_DB_CONN_TIMEOUT",
	AutoMigrate:     "UNMASK_DB_AUTO_MIGRATE",
}

var storageEnv = &storage.Env{
	Enabled:          "UNMASK_STORAGE_ENABLED",
	ContainerName:    "UNMASK_STORAGE_CONTAINER_NAME",
	ConnectionString: "UNMASK_STORAGE_CONNECTION_STRING",
	AccountURL:       "UNMASK_STORAGE_ACCOUNT_URL",
}

var collaboratorEnv = &collaborator.Env{
	Provider:    "UNMASK_COLLABORATOR_PROVIDER",
	Model:       "UNMASK_COLLABORATOR_MODEL",
	BaseURL:     "UNMASK_COLLABORATOR_BASE_URL",
	APIKey:      "UNMASK_COLLABORATOR_API_KEY",
	APIVersion:  "UNMASK_COLLABORATOR_API_VERSION",
	MaxTokens:   "UNMASK_COLLABORATOR_MAX_TOKENS",
	Temperature: "UNMASK_COLLABORATOR_TEMPERATURE",
	Timeout:     "UNMASK_COLLABORATOR_TIMEOUT",
}

var loggingEnv = &logging.Env{
	Level:  "UNMASK_LOG_LEVEL",
	Format: "UNMASK_LOG_FORMAT",
	File:   "UNMASK_LOG_FILE",
}

var telemetryEnv = &telemetry.Env{
	Enabled:     "UNMASK_TELEMETRY_ENABLED",
	ServiceName: "UNMASK_TELEMETRY_SERVICE_NAME",
	TraceFile:   "UNMASK_TELEMETRY_TRACE_FILE",
}

// Config is the root configuration for the Unmask service.
type Config struct {
	Server          ServerConfig        `toml:"server"`
	Database        database.Config     `toml:"database"`
	Storage         storage.Config      `toml:"storage"`
	API             APIConfig           `toml:"api"`
	Collaborator    collaborator.Config `toml:"collaborator"`
	Logging         logging.Config      `toml:"logging"`
	Telemetry       telemetry.Config    `toml:"telemetry"`
	ShutdownTimeout string              `toml:"shutdown_timeout"`
	Version         string              `toml:"version"`
}

// Env returns the UNMASK_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvUnmaskEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Collaborator.Merge(&overlay.Collaborator)
	c.Logging.Merge(&overlay.Logging)
	c.Telemetry.Merge(&overlay.Telemetry)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Collaborator.Finalize(collaboratorEnv); err != nil {
		return fmt.Errorf("collaborator: %w", err)
	}
	if err := c.Server.validateCollaboratorBudget(c.Collaborator.TimeoutDuration()); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Telemetry.Finalize(telemetryEnv); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvUnmaskShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvUnmaskVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvUnmaskEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
