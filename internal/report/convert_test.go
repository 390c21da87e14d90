// File path: internal/report/convert_test.go
package report

import (
	"context"
	"strings"
	"testing"

	"github.com/alyprop/propreport/internal/insight"
)

func TestToLegacyShapeRoundTrip(t *testing.T) {
	g := fixtureGenerator(&stubLookup{prop: fixtureProperty()}, &stubAnalyzer{insights: insight.Fallback()})

	legendary, err := g.GenerateLegendaryReport(context.Background(), "123 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legacy := ToLegacyShape(legendary)

	if legacy.PropertyOverview.Address != legendary.PropertySnapshot.Address {
		t.Fatalf("address mismatch: %q vs %q", legacy.PropertyOverview.Address, legendary.PropertySnapshot.Address)
	}
	if legacy.PropertyOverview.YearBuilt != legendary.PropertySnapshot.YearBuilt {
		t.Fatal("year built mismatch after conversion")
	}
	if legacy.PropertyOverview.Bedrooms != legendary.PropertySnapshot.Bedrooms ||
		legacy.PropertyOverview.Bathrooms != legendary.PropertySnapshot.Bathrooms {
		t.Fatal("bed/bath mismatch after conversion")
	}
	if legacy.ReportID != legendary.ReportID || !legacy.GeneratedAt.Equal(legendary.GeneratedAt) {
		t.Fatal("identity fields must project unchanged")
	}
	// 8700 sq ft -> 0.2 acres.
	if legacy.PropertyOverview.LotSizeAcres != 0.2 {
		t.Fatalf("expected 0.2 acres, got %v", legacy.PropertyOverview.LotSizeAcres)
	}
	if legacy.InvestorSnapshot.MotivationScore != legendary.OwnershipProfile.MotivationScore {
		t.Fatal("motivation score must carry over from ownership profile")
	}
}

func TestLotSizeAcres(t *testing.T) {
	if got := lotSizeAcres(43560); got != 1.0 {
		t.Fatalf("expected 1 acre, got %v", got)
	}
	if got := lotSizeAcres(0); got != 0 {
		t.Fatalf("expected 0 for missing lot size, got %v", got)
	}
	if got := lotSizeAcres(21780); got != 0.5 {
		t.Fatalf("expected 0.5 acres, got %v", got)
	}
}

func TestSynthesizeRiskSummaryCountsElevatedRisks(t *testing.T) {
	calm := RiskLedger{
		AgeRiskTier:   "low",
		AgeRehabRisk:  "Newer construction, minimal work expected.",
		TaxRisk:       "Standard assessment.",
		AbsenteeRisk:  "Owner occupied.",
		StructureRisk: "No concerns on record.",
	}
	if got := synthesizeRiskSummary(calm); !strings.Contains(got, "No elevated") {
		t.Fatalf("expected calm summary, got %q", got)
	}

	tense := RiskLedger{
		AgeRiskTier:   "critical",
		AgeRehabRisk:  "Expect major system replacement.",
		TaxRisk:       "Tax burden is high relative to value.",
		AbsenteeRisk:  "Owner occupied.",
		StructureRisk: "Foundation shows significant settling.",
	}
	got := synthesizeRiskSummary(tense)
	if !strings.Contains(got, "3 of 4") {
		t.Fatalf("expected 3 of 4 elevated, got %q", got)
	}
}

func TestSampleStructureListsAllSections(t *testing.T) {
	sample := Sample()
	if len(sample.LegacySections) != 8 {
		t.Fatalf("expected 8 legacy sections, got %d", len(sample.LegacySections))
	}
	if len(sample.LegendarySections) != 11 {
		t.Fatalf("expected 11 legendary sections, got %d", len(sample.LegendarySections))
	}
	for _, s := range append(sample.LegacySections, sample.LegendarySections...) {
		if s.Name == "" || len(s.Fields) == 0 {
			t.Fatalf("section %+v incomplete", s)
		}
	}
}

func TestConversionIsPure(t *testing.T) {
	g := fixtureGenerator(&stubLookup{prop: fixtureProperty()}, &stubAnalyzer{insights: insight.Fallback()})
	legendary, err := g.GenerateLegendaryReport(context.Background(), "123 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := legendary.GeneratedAt
	first := ToLegacyShape(legendary)
	second := ToLegacyShape(legendary)
	if first.RiskFlags.Summary != second.RiskFlags.Summary {
		t.Fatal("conversion must be deterministic")
	}
	if !legendary.GeneratedAt.Equal(before) {
		t.Fatal("conversion must not mutate its input")
	}
}
