// File path: internal/agent/chat.go

// Package agent hosts the conversational investment assistant. It runs a
// small message graph whose single node asks the configured model for a
// reply, keeping the graph structure in place for richer multi-step flows.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langgraphgo/graph"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/llm"
)

const assistantSystemPrompt = `You are a real estate investment assistant. Answer questions about property analysis, investment strategies (flip, buy and hold, BRRRR), seller outreach, and report contents. Be concise and practical. If report context is provided, ground your answers in it.`

// Assistant answers free-form questions, optionally grounded in a
// previously generated report serialized as context text.
type Assistant struct {
	provider llm.Provider
}

func NewAssistant(provider llm.Provider) *Assistant {
	return &Assistant{provider: provider}
}

// Chat runs one question through the assistant graph and returns the reply.
func (a *Assistant) Chat(ctx context.Context, question, reportContext string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("agent: empty question")
	}

	g := graph.NewMessageGraph()
	g.AddNode("assist", func(ctx context.Context, state []llms.MessageContent) ([]llms.MessageContent, error) {
		prompt := question
		if strings.TrimSpace(reportContext) != "" {
			prompt = "Report context:\n" + reportContext + "\n\nQuestion: " + question
		}
		reply, err := a.provider.Complete(ctx, assistantSystemPrompt, prompt)
		if err != nil {
			return nil, err
		}
		return append(state, llms.TextParts(llms.ChatMessageTypeAI, reply)), nil
	})
	g.AddEdge("assist", graph.END)
	g.SetEntryPoint("assist")

	runnable, err := g.Compile()
	if err != nil {
		return "", fmt.Errorf("agent: compile graph: %w", err)
	}

	state := []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, question)}
	result, err := runnable.Invoke(ctx, state)
	if err != nil {
		return "", fmt.Errorf("agent: %w", err)
	}

	reply := lastAIMessage(result)
	if reply == "" {
		return "", errors.New("agent: assistant produced no reply")
	}
	common.Logger().Debug("agent: chat reply produced", "provider", a.provider.Name(), "chars", len(reply))
	return reply, nil
}

func lastAIMessage(state []llms.MessageContent) string {
	for i := len(state) - 1; i >= 0; i-- {
		if state[i].Role != llms.ChatMessageTypeAI {
			continue
		}
		var b strings.Builder
		for _, part := range state[i].Parts {
			if text, ok := part.(llms.TextContent); ok {
				b.WriteString(text.Text)
			}
		}
		if reply := strings.TrimSpace(b.String()); reply != "" {
			return reply
		}
	}
	return ""
}
