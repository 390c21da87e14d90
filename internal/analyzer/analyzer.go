// File path: internal/analyzer/analyzer.go
package analyzer

import (
	"context"
	"strings"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/insight"
	"github.com/alyprop/propreport/internal/llm"
	"github.com/alyprop/propreport/internal/metrics"
	"github.com/alyprop/propreport/internal/property"
)

// Analyzer runs the model-backed analysis step of report generation.
type Analyzer struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// ProviderName reports the active backend, for health output.
func (a *Analyzer) ProviderName() string {
	return a.provider.Name()
}

// Analyze prompts the model with the property fact sheet and parses the
// response into typed insights. Model failure or an empty response degrades
// to the deterministic fallback insights; it is never an error, so a report
// can always be produced.
func (a *Analyzer) Analyze(ctx context.Context, p property.NormalizedProperty, m metrics.Metrics) insight.Insights {
	logger := common.Logger()

	prompt := BuildPrompt(p, m)
	text, err := a.provider.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		logger.Warn("analyzer: completion failed, using fallback insights",
			"provider", a.provider.Name(), "error", err)
		return insight.Fallback()
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("analyzer: empty completion, using fallback insights",
			"provider", a.provider.Name())
		return insight.Fallback()
	}

	logger.Debug("analyzer: completion parsed", "provider", a.provider.Name(), "chars", len(text))
	return insight.Parse(text)
}
