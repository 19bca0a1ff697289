package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "UNMASK_SERVER_HOST"
	EnvServerPort              = "UNMASK_SERVER_PORT"
	EnvServerReadHeaderTimeout = "UNMASK_SERVER_READ_HEADER_TIMEOUT"
	EnvServerReadTimeout       = "UNMASK_SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout      = "UNMASK_SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout       = "UNMASK_SERVER_IDLE_TIMEOUT"
)

// ServerConfig holds listener parameters. Requests carry small JSON bodies
// but may wait on a collaborator call, so reads are short and writes long.
// Shutdown is bounded by the top-level shutdown_timeout.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	ReadTimeout       string `toml:"read_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	IdleTimeout       string `toml:"idle_timeout"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return parseDuration(c.ReadHeaderTimeout)
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return parseDuration(c.ReadTimeout)
}

// WriteTimeoutDuration bounds a whole response, including the collaborator
// call behind it.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return parseDuration(c.WriteTimeout)
}

func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	return parseDuration(c.IdleTimeout)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	for dst, src := range c.durations(overlay) {
		if src != "" {
			*dst = src
		}
	}
}

func (c *ServerConfig) durations(from *ServerConfig) map[*string]string {
	return map[*string]string{
		&c.ReadHeaderTimeout: from.ReadHeaderTimeout,
		&c.ReadTimeout:       from.ReadTimeout,
		&c.WriteTimeout:      from.WriteTimeout,
		&c.IdleTimeout:       from.IdleTimeout,
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	defaults := &ServerConfig{
		ReadHeaderTimeout: "10s",
		ReadTimeout:       "30s",
		WriteTimeout:      "3m",
		IdleTimeout:       "2m",
	}
	for dst, def := range c.durations(defaults) {
		if *dst == "" {
			*dst = def
		}
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	env := map[string]*string{
		EnvServerReadHeaderTimeout: &c.ReadHeaderTimeout,
		EnvServerReadTimeout:       &c.ReadTimeout,
		EnvServerWriteTimeout:      &c.WriteTimeout,
		EnvServerIdleTimeout:       &c.IdleTimeout,
	}
	for key, dst := range env {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	fields := []struct{ name, value string }{
		{"read_header_timeout", c.ReadHeaderTimeout},
		{"read_timeout", c.ReadTimeout},
		{"write_timeout", c.WriteTimeout},
		{"idle_timeout", c.IdleTimeout},
	}
	for _, f := range fields {
		if d, err := time.ParseDuration(f.value); err != nil || d <= 0 {
			return fmt.Errorf("invalid %s: %q", f.name, f.value)
		}
	}
	return nil
}

// validateCollaboratorBudget rejects a write timeout that would cut off
// responses before the collaborator call behind them can time out.
func (c *ServerConfig) validateCollaboratorBudget(collaborator time.Duration) error {
	if c.WriteTimeoutDuration() <= collaborator {
		return fmt.Errorf("write_timeout %s must exceed collaborator timeout %s", c.WriteTimeout, collaborator)
	}
	return nil
}

func parseDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
