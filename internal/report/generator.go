// File path: internal/report/generator.go
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/config"
	"github.com/alyprop/propreport/internal/insight"
	"github.com/alyprop/propreport/internal/metrics"
	"github.com/alyprop/propreport/internal/property"
)

// PropertyLookup resolves a free-text address to a normalized record.
type PropertyLookup interface {
	Lookup(ctx context.Context, address string) (property.NormalizedProperty, error)
}

// InsightAnalyzer produces typed insights for a property. Implementations
// must be total: analysis failure degrades to fallback insights, never an
// error.
type InsightAnalyzer interface {
	Analyze(ctx context.Context, p property.NormalizedProperty, m metrics.Metrics) insight.Insights
}

// Generator runs the full report pipeline: lookup, metrics, analysis,
// assembly. Both report shapes share the pipeline and differ only in the
// assembly step.
type Generator struct {
	lookup   PropertyLookup
	analyzer InsightAnalyzer

	// Injected for tests; default to the real clock and random IDs.
	now   func() time.Time
	newID func() string
}

func NewGenerator(lookup PropertyLookup, analyzer InsightAnalyzer) *Generator {
	return &Generator{
		lookup:   lookup,
		analyzer: analyzer,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// GenerateLegacyReport produces the 8-section report for an address.
// property.ErrNotFound propagates when the address cannot be resolved.
func (g *Generator) GenerateLegacyReport(ctx context.Context, address string) (LegacyReport, error) {
	prop, m, ins, err := g.pipeline(ctx, address)
	if err != nil {
		return LegacyReport{}, err
	}
	rep := g.assembleLegacy(prop, m, ins)
	common.Logger().Info("report: legacy report generated", "report_id", rep.ReportID, "address", prop.Address)
	return rep, nil
}

// GenerateLegendaryReport produces the 10-section report for an address.
func (g *Generator) GenerateLegendaryReport(ctx context.Context, address string) (LegendaryReport, error) {
	prop, m, ins, err := g.pipeline(ctx, address)
	if err != nil {
		return LegendaryReport{}, err
	}
	rep := g.assembleLegendary(prop, m, ins)
	common.Logger().Info("report: legendary report generated", "report_id", rep.ReportID, "address", prop.Address)
	return rep, nil
}

func (g *Generator) pipeline(ctx context.Context, address string) (property.NormalizedProperty, metrics.Metrics, insight.Insights, error) {
	prop, err := g.lookup.Lookup(ctx, address)
	if err != nil {
		return property.NormalizedProperty{}, metrics.Metrics{}, insight.Insights{}, fmt.Errorf("lookup %q: %w", address, err)
	}
	m := metrics.Compute(prop, g.now())
	ins := g.analyzer.Analyze(ctx, prop, m)
	return prop, m, ins, nil
}

func (g *Generator) assembleLegacy(p property.NormalizedProperty, m metrics.Metrics, ins insight.Insights) LegacyReport {
	return LegacyReport{
		ReportID:    g.newID(),
		GeneratedAt: g.now().UTC(),
		Cost:        config.ReportCost,

		PropertyOverview: PropertyOverview{
			Address:       p.Address,
			PropertyType:  orUnknown(string(p.PropertyType)),
			YearBuilt:     intValue(p.YearBuilt),
			SquareFootage: intValue(p.SquareFootage),
			LotSizeAcres:  lotSizeAcres(floatValue(p.LotSizeSqFt)),
			Bedrooms:      intValue(p.Bedrooms),
			Bathrooms:     floatValue(p.Bathrooms),
			Summary:       ins.Summary,
		},
		OwnershipHistory: OwnershipHistory{
			OwnerName:         orUnknown(p.OwnerName),
			OwnershipYears:    m.OwnershipYears,
			AbsenteeOwner:     m.AbsenteeOwner,
			LastSalePrice:     floatValue(p.LastSalePrice),
			LastSaleDate:      orUnknown(p.LastSaleDate),
			MotivationInsight: ins.MotivationInsight,
		},
		EquityPosition: EquityPosition{
			EstimatedValue:   floatValue(p.EstimatedValue),
			EquityEstimate:   floatValue(m.EquityEstimate),
			TaxAssessedValue: floatValue(p.TaxAssessedValue),
			TaxVsAVMAnalysis: ins.TaxVsAVMAnalysis,
		},
		InvestmentStrategy: InvestmentStrategy{
			FlipPotential:  ins.FlipPotentialRating,
			BuyHold:        ins.BuyHoldAssessment,
			BRRRRFitScore:  ins.BRRRRFitScore,
			Recommendation: ins.StrategyRecommendation,
			RentEstimate:   ins.RentEstimate,
		},
		NeighborhoodContext: NeighborhoodContext{
			Walkability:   ins.Walkability,
			TransitAccess: ins.TransitAccess,
			SchoolZone:    ins.SchoolZoneQuality,
			Community:     ins.CommunityDescription,
		},
		RiskFlags: RiskFlags{
			AgeRehabRisk:  orDefault(ins.AgeRehabRisk, m.AgeRisk.Advisory),
			TaxRisk:       ins.TaxRisk,
			AbsenteeRisk:  ins.AbsenteeRisk,
			StructureRisk: ins.StructureRisk,
			Summary:       ins.RiskSummary,
		},
		InvestorSnapshot: InvestorSnapshot{
			Summary:              ins.InvestorSummary,
			TargetBuyerType:      ins.TargetBuyerType,
			MotivationScore:      ins.MotivationScore,
			OutreachApproach:     ins.OutreachApproach,
			OffMarketProbability: ins.OffMarketProbability,
		},
		BonusAnalytics: BonusAnalytics{
			AIGrade:            ins.AIGrade,
			RebuildVsRehab:     ins.RebuildVsRehab,
			ColdOutreachScript: BuildOutreachScript(p, m),
		},
	}
}

func (g *Generator) assembleLegendary(p property.NormalizedProperty, m metrics.Metrics, ins insight.Insights) LegendaryReport {
	score, grade := dealScore(m, ins)
	return LegendaryReport{
		ReportID:    g.newID(),
		GeneratedAt: g.now().UTC(),
		Cost:        config.ReportCost,

		PropertySnapshot: PropertySnapshot{
			Address:       p.Address,
			ParcelID:      orUnknown(p.ParcelID),
			PropertyType:  orUnknown(string(p.PropertyType)),
			YearBuilt:     intValue(p.YearBuilt),
			SquareFootage: intValue(p.SquareFootage),
			LotSizeSqFt:   floatValue(p.LotSizeSqFt),
			Bedrooms:      intValue(p.Bedrooms),
			Bathrooms:     floatValue(p.Bathrooms),
			Zoning:        orUnknown(p.Zoning),
			County:        orUnknown(p.County),
			Summary:       ins.Summary,
		},
		OwnershipProfile: OwnershipProfile{
			OwnerName:         orUnknown(p.OwnerName),
			MailingAddress:    orUnknown(p.OwnerMailingAddress),
			OwnershipYears:    m.OwnershipYears,
			AbsenteeOwner:     m.AbsenteeOwner,
			LastSalePrice:     floatValue(p.LastSalePrice),
			LastSaleDate:      orUnknown(p.LastSaleDate),
			MotivationInsight: ins.MotivationInsight,
			MotivationScore:   ins.MotivationScore,
		},
		EquityAnalysis: EquityAnalysis{
			EstimatedValue:    floatValue(p.EstimatedValue),
			EquityEstimate:    floatValue(m.EquityEstimate),
			TaxAssessedValue:  floatValue(p.TaxAssessedValue),
			PropertyTaxAmount: floatValue(p.PropertyTaxAmount),
			TaxVsAVMAnalysis:  ins.TaxVsAVMAnalysis,
		},
		StrategyScorecard: StrategyScorecard{
			FlipPotential:  ins.FlipPotentialRating,
			BuyHold:        ins.BuyHoldAssessment,
			BRRRRFitScore:  ins.BRRRRFitScore,
			Recommendation: ins.StrategyRecommendation,
			RentEstimate:   ins.RentEstimate,
		},
		NeighborhoodPulse: NeighborhoodPulse{
			Walkability:   ins.Walkability,
			TransitAccess: ins.TransitAccess,
			SchoolZone:    ins.SchoolZoneQuality,
			Community:     ins.CommunityDescription,
		},
		MarketContext: MarketContext{
			Trends:             ins.MarketTrends,
			ComparableAnalysis: ins.ComparableAnalysis,
			KeyHighlights:      ins.KeyHighlights,
		},
		RiskLedger: RiskLedger{
			AgeRiskTier:   string(m.AgeRisk.Tier),
			AgeAdvisory:   m.AgeRisk.Advisory,
			AgeRehabRisk:  orDefault(ins.AgeRehabRisk, m.AgeRisk.Advisory),
			TaxRisk:       ins.TaxRisk,
			AbsenteeRisk:  ins.AbsenteeRisk,
			StructureRisk: ins.StructureRisk,
			RiskFactors:   ins.RiskFactors,
		},
		InvestorBrief: InvestorBrief{
			Summary:              ins.InvestorSummary,
			TargetBuyerType:      ins.TargetBuyerType,
			OffMarketProbability: ins.OffMarketProbability,
		},
		ExecutiveSummary: ExecutiveSummary{
			Narrative: ins.ExecutiveSummary,
			AIGrade:   ins.AIGrade,
		},
		OutreachPlan: OutreachPlan{
			Approach:           ins.OutreachApproach,
			ColdOutreachScript: BuildOutreachScript(p, m),
		},
		LegendaryBonus: LegendaryBonus{
			DealScore:      score,
			DealGrade:      grade,
			RebuildVsRehab: ins.RebuildVsRehab,
		},
	}
}

// dealScore folds the derived metrics and insight scores into a 0-100 deal
// score with a letter grade. The weights are fixed so the score is
// reproducible for identical inputs.
func dealScore(m metrics.Metrics, ins insight.Insights) (int, string) {
	score := 50
	if m.EquityEstimate != nil {
		if *m.EquityEstimate >= 100000 {
			score += 20
		} else {
			score += 10
		}
	}
	if m.AbsenteeOwner {
		score += 10
	}
	if m.OwnershipYears >= 15 {
		score += 10
	}
	if ins.MotivationScore >= 7 {
		score += 5
	}
	switch m.AgeRisk.Tier {
	case metrics.RiskCritical:
		score -= 10
	case metrics.RiskHigh:
		score -= 5
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	grade := "F"
	switch {
	case score >= 85:
		grade = "A"
	case score >= 70:
		grade = "B"
	case score >= 55:
		grade = "C"
	case score >= 40:
		grade = "D"
	}
	return score, grade
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
