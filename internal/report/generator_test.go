// File path: internal/report/generator_test.go
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alyprop/propreport/internal/insight"
	"github.com/alyprop/propreport/internal/metrics"
	"github.com/alyprop/propreport/internal/property"
)

type stubLookup struct {
	prop property.NormalizedProperty
	err  error
}

func (s *stubLookup) Lookup(ctx context.Context, address string) (property.NormalizedProperty, error) {
	if s.err != nil {
		return property.NormalizedProperty{}, s.err
	}
	return s.prop, nil
}

type stubAnalyzer struct {
	insights insight.Insights
}

func (s *stubAnalyzer) Analyze(ctx context.Context, p property.NormalizedProperty, m metrics.Metrics) insight.Insights {
	return s.insights
}

func fixtureProperty() property.NormalizedProperty {
	yearBuilt := 1960
	sqft := 1850
	lot := 8700.0
	beds := 3
	baths := 2.0
	price := 100000.0
	estimate := 500000.0
	assessed := 310000.0
	return property.NormalizedProperty{
		Address:             "123 Main St, Austin, TX 78701",
		ParcelID:            "R-123456",
		PropertyType:        property.TypeSingleFamily,
		YearBuilt:           &yearBuilt,
		SquareFootage:       &sqft,
		LotSizeSqFt:         &lot,
		Bedrooms:            &beds,
		Bathrooms:           &baths,
		OwnerName:           "ACME Holdings LLC",
		OwnerMailingAddress: "900 Congress Ave, Dallas, TX 75201",
		LastSalePrice:       &price,
		LastSaleDate:        "1990-01-01",
		EstimatedValue:      &estimate,
		TaxAssessedValue:    &assessed,
	}
}

func fixtureGenerator(lookup PropertyLookup, analyzer InsightAnalyzer) *Generator {
	g := NewGenerator(lookup, analyzer)
	g.now = func() time.Time { return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) }
	seq := 0
	g.newID = func() string { seq++; return fmt.Sprintf("report-%d", seq) }
	return g
}

func TestGenerateLegendaryReportScenario(t *testing.T) {
	g := fixtureGenerator(&stubLookup{prop: fixtureProperty()}, &stubAnalyzer{insights: insight.Fallback()})

	rep, err := g.GenerateLegendaryReport(context.Background(), "123 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.RiskLedger.AgeRiskTier != "critical" {
		t.Fatalf("expected critical age tier, got %q", rep.RiskLedger.AgeRiskTier)
	}
	if rep.EquityAnalysis.EquityEstimate != 400000 {
		t.Fatalf("expected equity 400000, got %v", rep.EquityAnalysis.EquityEstimate)
	}
	if !rep.OwnershipProfile.AbsenteeOwner {
		t.Fatal("expected absentee owner")
	}
	if rep.OwnershipProfile.OwnershipYears < 35 || rep.OwnershipProfile.OwnershipYears > 36 {
		t.Fatalf("expected ~35.5 ownership years, got %v", rep.OwnershipProfile.OwnershipYears)
	}
	if rep.ReportID == "" || rep.GeneratedAt.IsZero() || rep.Cost != 5.00 {
		t.Fatalf("report metadata incomplete: %+v", rep)
	}
}

func TestReportsGetFreshIdentifiers(t *testing.T) {
	g := fixtureGenerator(&stubLookup{prop: fixtureProperty()}, &stubAnalyzer{insights: insight.Fallback()})

	first, err := g.GenerateLegacyReport(context.Background(), "123 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.GenerateLegacyReport(context.Background(), "123 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ReportID == second.ReportID {
		t.Fatalf("expected distinct report ids, both %q", first.ReportID)
	}
}

func TestNotFoundPropagates(t *testing.T) {
	g := fixtureGenerator(&stubLookup{err: property.ErrNotFound}, &stubAnalyzer{insights: insight.Fallback()})

	_, err := g.GenerateLegacyReport(context.Background(), "nowhere")
	if !errors.Is(err, property.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = g.GenerateLegendaryReport(context.Background(), "nowhere")
	if !errors.Is(err, property.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// With every optional property field absent and fallback insights, both
// shapes must still populate every string field.
func TestTotalityWithBareProperty(t *testing.T) {
	bare := property.NormalizedProperty{Address: "1 Nowhere Ln"}
	g := fixtureGenerator(&stubLookup{prop: bare}, &stubAnalyzer{insights: insight.Fallback()})

	legacy, err := g.GenerateLegacyReport(context.Background(), "1 Nowhere Ln")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, value := range map[string]string{
		"overview summary":    legacy.PropertyOverview.Summary,
		"property type":       legacy.PropertyOverview.PropertyType,
		"owner name":          legacy.OwnershipHistory.OwnerName,
		"sale date":           legacy.OwnershipHistory.LastSaleDate,
		"motivation":          legacy.OwnershipHistory.MotivationInsight,
		"tax analysis":        legacy.EquityPosition.TaxVsAVMAnalysis,
		"flip potential":      legacy.InvestmentStrategy.FlipPotential,
		"recommendation":      legacy.InvestmentStrategy.Recommendation,
		"walkability":         legacy.NeighborhoodContext.Walkability,
		"community":           legacy.NeighborhoodContext.Community,
		"age rehab risk":      legacy.RiskFlags.AgeRehabRisk,
		"risk summary":        legacy.RiskFlags.Summary,
		"investor summary":    legacy.InvestorSnapshot.Summary,
		"outreach approach":   legacy.InvestorSnapshot.OutreachApproach,
		"off-market":          legacy.InvestorSnapshot.OffMarketProbability,
		"ai grade":            legacy.BonusAnalytics.AIGrade,
		"rebuild vs rehab":    legacy.BonusAnalytics.RebuildVsRehab,
		"outreach script":     legacy.BonusAnalytics.ColdOutreachScript,
	} {
		if strings.TrimSpace(value) == "" {
			t.Fatalf("legacy report field %s is empty", name)
		}
	}

	legendary, err := g.GenerateLegendaryReport(context.Background(), "1 Nowhere Ln")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, value := range map[string]string{
		"snapshot summary":  legendary.PropertySnapshot.Summary,
		"parcel id":         legendary.PropertySnapshot.ParcelID,
		"zoning":            legendary.PropertySnapshot.Zoning,
		"mailing address":   legendary.OwnershipProfile.MailingAddress,
		"market trends":     legendary.MarketContext.Trends,
		"comparables":       legendary.MarketContext.ComparableAnalysis,
		"age advisory":      legendary.RiskLedger.AgeAdvisory,
		"executive summary": legendary.ExecutiveSummary.Narrative,
		"deal grade":        legendary.LegendaryBonus.DealGrade,
		"outreach script":   legendary.OutreachPlan.ColdOutreachScript,
	} {
		if strings.TrimSpace(value) == "" {
			t.Fatalf("legendary report field %s is empty", name)
		}
	}
}

// Calculator-derived numbers must win over anything the model narrated.
func TestCalculatorValuesWin(t *testing.T) {
	ins := insight.Fallback()
	ins.Summary = "The equity position is roughly $9,999,999 by my estimate."
	g := fixtureGenerator(&stubLookup{prop: fixtureProperty()}, &stubAnalyzer{insights: ins})

	rep, err := g.GenerateLegacyReport(context.Background(), "123 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.EquityPosition.EquityEstimate != 400000 {
		t.Fatalf("expected calculator equity 400000, got %v", rep.EquityPosition.EquityEstimate)
	}
	if rep.OwnershipHistory.OwnershipYears < 35 || rep.OwnershipHistory.OwnershipYears > 36 {
		t.Fatalf("expected calculator ownership years, got %v", rep.OwnershipHistory.OwnershipYears)
	}
}

func TestDealScoreDeterministic(t *testing.T) {
	equity := 400000.0
	m := metrics.Metrics{
		OwnershipYears: 35.5,
		AbsenteeOwner:  true,
		EquityEstimate: &equity,
		AgeRisk:        metrics.AgeRisk{Tier: metrics.RiskCritical},
	}
	ins := insight.Fallback()
	ins.MotivationScore = 8

	// 50 base + 20 equity + 10 absentee + 10 tenure + 5 motivation - 10 critical.
	score, grade := dealScore(m, ins)
	if score != 85 {
		t.Fatalf("expected deal score 85, got %d", score)
	}
	if grade != "A" {
		t.Fatalf("expected grade A, got %q", grade)
	}

	again, _ := dealScore(m, ins)
	if again != score {
		t.Fatal("deal score must be deterministic")
	}
}

func TestOutreachScriptPersonalization(t *testing.T) {
	prop := fixtureProperty()
	m := metrics.Compute(prop, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	script := BuildOutreachScript(prop, m)
	if !strings.Contains(script, "ACME Holdings LLC") {
		t.Fatalf("script missing owner name: %q", script)
	}
	if !strings.Contains(script, "123 Main St") {
		t.Fatalf("script missing address: %q", script)
	}
	if !strings.Contains(script, "owned it for about") {
		t.Fatalf("script missing tenure: %q", script)
	}

	neutral := BuildOutreachScript(property.NormalizedProperty{}, metrics.Metrics{})
	if !strings.Contains(neutral, "your property") || strings.Contains(neutral, "  ") {
		t.Fatalf("neutral script malformed: %q", neutral)
	}
}
