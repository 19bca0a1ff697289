package collaborator

import (
	"fmt"
	"log/slog"
)

// New returns the Collaborator selected by cfg.Provider. cfg must be finalized.
func New(cfg *Config, logger *slog.Logger) (Collaborator, error) {
	logger = logger.With("system", "collaborator", "provider", cfg.Provider)

	switch cfg.Provider {
	case ProviderOpenAI, ProviderAzure, ProviderOllama:
		logger.Info("collaborator configured", "model", cfg.Model)
		return newChat(cfg, logger), nil
	case ProviderMock:
		logger.Warn("using mock collaborator")
		return mock{}, nil
	}
	return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
}
