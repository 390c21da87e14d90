// File path: internal/llm/providers/anthropic_client.go
package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

const (
	anthropicMaxTokens   = 4000
	anthropicTemperature = 0.3
)

// AnthropicProvider completes prompts through Anthropic's messages API via
// langchaingo.
type AnthropicProvider struct {
	model string
	token string
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	return &AnthropicProvider{token: apiKey, model: model}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	client, err := anthropic.New(
		anthropic.WithToken(p.token),
		anthropic.WithModel(p.model),
	)
	if err != nil {
		return "", fmt.Errorf("anthropic client: %w", err)
	}

	messages := make([]llms.MessageContent, 0, 2)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	resp, err := client.GenerateContent(ctx, messages,
		llms.WithMaxTokens(anthropicMaxTokens),
		llms.WithTemperature(anthropicTemperature),
	)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("anthropic completion: empty response")
	}
	return resp.Choices[0].Content, nil
}
