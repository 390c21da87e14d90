// File path: internal/llm/llm.go

// Package llm abstracts the hosted language-model backends used for property
// analysis behind a single completion interface.
package llm

import (
	"context"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/config"
	"github.com/alyprop/propreport/internal/llm/providers"
)

// Provider produces a completion for a system prompt and user prompt pair.
type Provider interface {
	// Complete returns the model's full text response.
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Name identifies the backend for logging and health reporting.
	Name() string
}

// NewProvider selects a backend from configuration: Anthropic when its key
// is set, then OpenAI, falling back to the deterministic local provider so
// the service stays usable without any credentials.
func NewProvider(cfg config.Config) Provider {
	logger := common.Logger()
	switch {
	case cfg.AnthropicAPIKey != "":
		logger.Info("llm: using anthropic provider", "model", cfg.AnthropicModel)
		return providers.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case cfg.OpenAIAPIKey != "":
		logger.Info("llm: using openai provider", "model", cfg.OpenAIModel)
		return providers.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		logger.Warn("llm: no provider credentials, using local analysis")
		return providers.NewLocalProvider()
	}
}
