// File path: internal/report/outreach.go
package report

import (
	"fmt"
	"strings"

	"github.com/alyprop/propreport/internal/metrics"
	"github.com/alyprop/propreport/internal/property"
)

// BuildOutreachScript composes a short cold-outreach letter personalized
// with the owner's name, the property address, and ownership tenure. Always
// returns a usable script, with neutral wording when fields are missing.
func BuildOutreachScript(p property.NormalizedProperty, m metrics.Metrics) string {
	greeting := "Hello"
	if name := strings.TrimSpace(p.OwnerName); name != "" {
		greeting = "Hello " + name
	}

	subject := "your property"
	if addr := strings.TrimSpace(p.Address); addr != "" {
		subject = "your property at " + addr
	}

	tenure := ""
	if m.OwnershipYears >= 1 {
		tenure = fmt.Sprintf(" I understand you've owned it for about %.0f years, and owners with that kind of history often have options they haven't explored.", m.OwnershipYears)
	}

	return fmt.Sprintf(
		"%s,\n\nI'm a local real estate investor reaching out about %s.%s I buy properties directly, as-is, with no agent fees or repair requirements, and I can close on your timeline.\n\nIf you've ever considered selling, I'd welcome a short conversation. No obligation either way.\n\nBest regards",
		greeting, subject, tenure,
	)
}
