// File path: internal/report/convert.go
package report

import (
	"fmt"
	"math"
	"strings"
)

const sqFtPerAcre = 43560.0

// ToLegacyShape projects a legendary report down to the legacy shape for
// backward-compatible clients. Pure function, total over all well-formed
// legendary reports.
func ToLegacyShape(r LegendaryReport) LegacyReport {
	return LegacyReport{
		ReportID:    r.ReportID,
		GeneratedAt: r.GeneratedAt,
		Cost:        r.Cost,

		PropertyOverview: PropertyOverview{
			Address:       r.PropertySnapshot.Address,
			PropertyType:  r.PropertySnapshot.PropertyType,
			YearBuilt:     r.PropertySnapshot.YearBuilt,
			SquareFootage: r.PropertySnapshot.SquareFootage,
			LotSizeAcres:  lotSizeAcres(r.PropertySnapshot.LotSizeSqFt),
			Bedrooms:      r.PropertySnapshot.Bedrooms,
			Bathrooms:     r.PropertySnapshot.Bathrooms,
			Summary:       r.PropertySnapshot.Summary,
		},
		OwnershipHistory: OwnershipHistory{
			OwnerName:         r.OwnershipProfile.OwnerName,
			OwnershipYears:    r.OwnershipProfile.OwnershipYears,
			AbsenteeOwner:     r.OwnershipProfile.AbsenteeOwner,
			LastSalePrice:     r.OwnershipProfile.LastSalePrice,
			LastSaleDate:      r.OwnershipProfile.LastSaleDate,
			MotivationInsight: r.OwnershipProfile.MotivationInsight,
		},
		EquityPosition: EquityPosition{
			EstimatedValue:   r.EquityAnalysis.EstimatedValue,
			EquityEstimate:   r.EquityAnalysis.EquityEstimate,
			TaxAssessedValue: r.EquityAnalysis.TaxAssessedValue,
			TaxVsAVMAnalysis: r.EquityAnalysis.TaxVsAVMAnalysis,
		},
		InvestmentStrategy: InvestmentStrategy{
			FlipPotential:  r.StrategyScorecard.FlipPotential,
			BuyHold:        r.StrategyScorecard.BuyHold,
			BRRRRFitScore:  r.StrategyScorecard.BRRRRFitScore,
			Recommendation: r.StrategyScorecard.Recommendation,
			RentEstimate:   r.StrategyScorecard.RentEstimate,
		},
		NeighborhoodContext: NeighborhoodContext{
			Walkability:   r.NeighborhoodPulse.Walkability,
			TransitAccess: r.NeighborhoodPulse.TransitAccess,
			SchoolZone:    r.NeighborhoodPulse.SchoolZone,
			Community:     r.NeighborhoodPulse.Community,
		},
		RiskFlags: RiskFlags{
			AgeRehabRisk:  r.RiskLedger.AgeRehabRisk,
			TaxRisk:       r.RiskLedger.TaxRisk,
			AbsenteeRisk:  r.RiskLedger.AbsenteeRisk,
			StructureRisk: r.RiskLedger.StructureRisk,
			Summary:       synthesizeRiskSummary(r.RiskLedger),
		},
		InvestorSnapshot: InvestorSnapshot{
			Summary:              r.InvestorBrief.Summary,
			TargetBuyerType:      r.InvestorBrief.TargetBuyerType,
			MotivationScore:      r.OwnershipProfile.MotivationScore,
			OutreachApproach:     r.OutreachPlan.Approach,
			OffMarketProbability: r.InvestorBrief.OffMarketProbability,
		},
		BonusAnalytics: BonusAnalytics{
			AIGrade:            r.ExecutiveSummary.AIGrade,
			RebuildVsRehab:     r.LegendaryBonus.RebuildVsRehab,
			ColdOutreachScript: r.OutreachPlan.ColdOutreachScript,
		},
	}
}

// lotSizeAcres converts square feet to acres, rounded to two decimals. Zero
// input stays zero rather than producing a misleading fraction.
func lotSizeAcres(sqft float64) float64 {
	if sqft <= 0 {
		return 0
	}
	return math.Round(sqft/sqFtPerAcre*100) / 100
}

var elevatedRiskWords = []string{"elevated", "high", "critical", "significant", "major"}

// synthesizeRiskSummary recomposes the legacy risk summary, which has no
// direct legendary equivalent, by counting sub-risks whose text signals an
// elevated condition.
func synthesizeRiskSummary(ledger RiskLedger) string {
	subRisks := []string{
		ledger.AgeRiskTier + " " + ledger.AgeRehabRisk,
		ledger.TaxRisk,
		ledger.AbsenteeRisk,
		ledger.StructureRisk,
	}
	elevated := 0
	for _, risk := range subRisks {
		lower := strings.ToLower(risk)
		for _, word := range elevatedRiskWords {
			if strings.Contains(lower, word) {
				elevated++
				break
			}
		}
	}
	switch elevated {
	case 0:
		return "No elevated risk areas identified; standard due diligence applies."
	case 1:
		return "1 of 4 risk areas elevated; focused due diligence recommended."
	default:
		return fmt.Sprintf("%d of 4 risk areas elevated; thorough due diligence required.", elevated)
	}
}
