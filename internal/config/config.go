// File path: internal/config/config.go
package config

import (
	"os"
	"strings"
)

// ReportCost is the flat price charged per successfully generated report.
const ReportCost = 5.00

// Config carries the environment-derived settings for the service. All
// collaborators receive their settings explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	EstatedAPIKey  string
	EstatedBaseURL string

	AnthropicAPIKey string
	AnthropicModel  string
	OpenAIAPIKey    string
	OpenAIModel     string

	Port string
}

// Load reads configuration from the environment, applying defaults for
// everything except the API keys.
func Load() Config {
	return Config{
		EstatedAPIKey:   strings.TrimSpace(os.Getenv("ESTATED_API_KEY")),
		EstatedBaseURL:  getenv("ESTATED_BASE_URL", "https://apis.estated.com/v4"),
		AnthropicAPIKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		AnthropicModel:  getenv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:     getenv("OPENAI_CHAT_MODEL", "gpt-4o"),
		Port:            getenv("PORT", "8080"),
	}
}

// PropertyDataConfigured reports whether the property lookup collaborator has
// credentials.
func (c Config) PropertyDataConfigured() bool {
	return c.EstatedAPIKey != ""
}

// LLMConfigured reports whether any hosted LLM provider has credentials.
func (c Config) LLMConfigured() bool {
	return c.AnthropicAPIKey != "" || c.OpenAIAPIKey != ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
