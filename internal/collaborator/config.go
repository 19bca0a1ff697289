package collaborator

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Providers selectable through Config.Provider.
const (
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
	ProviderOllama = "ollama"
	ProviderMock   = "mock"
)

// Config selects and parameterizes the collaborator.
type Config struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	BaseURL     string  `toml:"base_url"`
	APIKey      string  `toml:"api_key"`
	APIVersion  string  `toml:"api_version"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
	Timeout     string  `toml:"timeout"`
}

// Env maps config fields to environment variable names.
type Env struct {
	Provider    string
	Model       string
	BaseURL     string
	APIKey      string
	APIVersion  string
	MaxTokens   string
	Temperature string
	Timeout     string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	for dst, v := range map[*string]string{
		&c.Provider:   overlay.Provider,
		&c.Model:      overlay.Model,
		&c.BaseURL:    overlay.BaseURL,
		&c.APIKey:     overlay.APIKey,
		&c.APIVersion: overlay.APIVersion,
		&c.Timeout:    overlay.Timeout,
	} {
		if v != "" {
			*dst = v
		}
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
}

// loadDefaults runs after env so provider-specific defaults follow an
// overridden provider.
func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderMock
	}
	if c.Model == "" {
		switch c.Provider {
		case ProviderOllama:
			c.Model = "llama3.1"
		default:
			c.Model = "gpt-4o-mini"
		}
	}
	if c.BaseURL == "" && c.Provider == ProviderOllama {
		c.BaseURL = "http://localhost:11434/v1"
	}
	if c.APIVersion == "" && c.Provider == ProviderAzure {
		c.APIVersion = "2024-06-01"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1024
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *Config) loadEnv(env *Env) {
	for name, dst := range map[string]*string{
		env.Provider:   &c.Provider,
		env.Model:      &c.Model,
		env.BaseURL:    &c.BaseURL,
		env.APIKey:     &c.APIKey,
		env.APIVersion: &c.APIVersion,
		env.Timeout:    &c.Timeout,
	} {
		if name == "" {
			continue
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	if env.MaxTokens != "" {
		if n, err := strconv.Atoi(os.Getenv(env.MaxTokens)); err == nil {
			c.MaxTokens = n
		}
	}
	if env.Temperature != "" {
		if f, err := strconv.ParseFloat(os.Getenv(env.Temperature), 32); err == nil {
			c.Temperature = float32(f)
		}
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("api_key required for provider %s", c.Provider)
		}
	case ProviderAzure:
		if c.APIKey == "" || c.BaseURL == "" {
			return fmt.Errorf("api_key and base_url required for provider %s", c.Provider)
		}
	case ProviderOllama, ProviderMock:
	default:
		return fmt.Errorf("unsupported provider %q", c.Provider)
	}

	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2]")
	}
	if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid timeout %q", c.Timeout)
	}
	return nil
}
