package storage

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds Azure Blob Storage settings. Storage is optional; when
// Enabled is false no client is created. Authentication uses
// ConnectionString when set, otherwise AccountURL with the default Azure
// credential chain.
type Config struct {
	Enabled          bool   `toml:"enabled"`
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	AccountURL       string `toml:"account_url"`
}

// Env maps config fields to environment variable names.
type Env struct {
	Enabled          string
	ContainerName    string
	ConnectionString string
	AccountURL       string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. Enabled always applies.
func (c *Config) Merge(overlay *Config) {
	c.Enabled = overlay.Enabled
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.AccountURL != "" {
		c.AccountURL = overlay.AccountURL
	}
}

func (c *Config) loadDefaults() {
	if c.ContainerName == "" {
		c.ContainerName = "reports"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if b, err := strconv.ParseBool(os.Getenv(env.Enabled)); err == nil {
			c.Enabled = b
		}
	}
	for name, dst := range map[string]*string{
		env.ContainerName:    &c.ContainerName,
		env.ConnectionString: &c.ConnectionString,
		env.AccountURL:       &c.AccountURL,
	} {
		if name == "" {
			continue
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
}

func (c *Config) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.ContainerName == "" {
		return fmt.Errorf("container_name required")
	}
	if c.ConnectionString == "" && c.AccountURL == "" {
		return fmt.Errorf("connection_string or account_url required")
	}
	return nil
}
