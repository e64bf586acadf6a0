// Package llm provides completion-provider integration for the agents.
package llm

import (
	"context"
	"fmt"

	"github.com/eldersense/eldersense/internal/config"
)

// Provider is a text-completion backend. The agents treat all providers as
// interchangeable black boxes: one prompt in, one text response out.
type Provider interface {
	// Generate sends a single prompt and returns the completion text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider for logging.
	Name() string
}

// New selects a provider from configuration. Ollama is the default;
// Claude is used when PreferCloud is set and an API key is available.
func New(cfg *config.Config) (Provider, error) {
	if cfg.Features.PreferCloud {
		if cfg.Claude.APIKey == "" {
			return nil, fmt.Errorf("prefer_cloud is set but no Claude API key is configured")
		}
		return NewClient(ClientConfig{
			APIKey: cfg.Claude.APIKey,
			Model:  cfg.Claude.Model,
		}), nil
	}

	return NewOllamaClient(OllamaConfig{
		BaseURL: cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
	}), nil
}
