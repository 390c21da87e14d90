// File path: internal/report/types.go

// Package report assembles typed investment reports from property records,
// derived metrics, and extracted insights. Two shapes are produced: the
// legacy 8-section report older clients consume, and the richer legendary
// shape. Every string field in an assembled report is non-empty; numeric
// fields default to zero when the underlying record is silent.
package report

import "time"

// LegacyReport is the original 8-section report shape.
type LegacyReport struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Cost        float64   `json:"cost"`

	PropertyOverview    PropertyOverview    `json:"property_overview"`
	OwnershipHistory    OwnershipHistory    `json:"ownership_history"`
	EquityPosition      EquityPosition      `json:"equity_position"`
	InvestmentStrategy  InvestmentStrategy  `json:"investment_strategy"`
	NeighborhoodContext NeighborhoodContext `json:"neighborhood_context"`
	RiskFlags           RiskFlags           `json:"risk_flags"`
	InvestorSnapshot    InvestorSnapshot    `json:"investor_snapshot"`
	BonusAnalytics      BonusAnalytics      `json:"bonus_analytics"`
}

type PropertyOverview struct {
	Address       string  `json:"address"`
	PropertyType  string  `json:"property_type"`
	YearBuilt     int     `json:"year_built"`
	SquareFootage int     `json:"square_footage"`
	LotSizeAcres  float64 `json:"lot_size_acres"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	Summary       string  `json:"summary"`
}

type OwnershipHistory struct {
	OwnerName         string  `json:"owner_name"`
	OwnershipYears    float64 `json:"ownership_years"`
	AbsenteeOwner     bool    `json:"absentee_owner"`
	LastSalePrice     float64 `json:"last_sale_price"`
	LastSaleDate      string  `json:"last_sale_date"`
	MotivationInsight string  `json:"motivation_insight"`
}

type EquityPosition struct {
	EstimatedValue   float64 `json:"estimated_value"`
	EquityEstimate   float64 `json:"equity_estimate"`
	TaxAssessedValue float64 `json:"tax_assessed_value"`
	TaxVsAVMAnalysis string  `json:"tax_vs_avm_analysis"`
}

type InvestmentStrategy struct {
	FlipPotential  string `json:"flip_potential"`
	BuyHold        string `json:"buy_hold"`
	BRRRRFitScore  int    `json:"brrrr_fit_score"`
	Recommendation string `json:"recommendation"`
	RentEstimate   string `json:"rent_estimate"`
}

type NeighborhoodContext struct {
	Walkability   string `json:"walkability"`
	TransitAccess string `json:"transit_access"`
	SchoolZone    string `json:"school_zone"`
	Community     string `json:"community"`
}

type RiskFlags struct {
	AgeRehabRisk  string `json:"age_rehab_risk"`
	TaxRisk       string `json:"tax_risk"`
	AbsenteeRisk  string `json:"absentee_risk"`
	StructureRisk string `json:"structure_risk"`
	Summary       string `json:"summary"`
}

type InvestorSnapshot struct {
	Summary              string `json:"summary"`
	TargetBuyerType      string `json:"target_buyer_type"`
	MotivationScore      int    `json:"motivation_score"`
	OutreachApproach     string `json:"outreach_approach"`
	OffMarketProbability string `json:"off_market_probability"`
}

type BonusAnalytics struct {
	AIGrade            string `json:"ai_grade"`
	RebuildVsRehab     string `json:"rebuild_vs_rehab"`
	ColdOutreachScript string `json:"cold_outreach_script"`
}

// LegendaryReport is the richer 10-section shape with bonus extras. It is a
// data superset of LegacyReport; ToLegacyShape projects it down.
type LegendaryReport struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Cost        float64   `json:"cost"`

	PropertySnapshot  PropertySnapshot  `json:"property_snapshot"`
	OwnershipProfile  OwnershipProfile  `json:"ownership_profile"`
	EquityAnalysis    EquityAnalysis    `json:"equity_analysis"`
	StrategyScorecard StrategyScorecard `json:"strategy_scorecard"`
	NeighborhoodPulse NeighborhoodPulse `json:"neighborhood_pulse"`
	MarketContext     MarketContext     `json:"market_context"`
	RiskLedger        RiskLedger        `json:"risk_ledger"`
	InvestorBrief     InvestorBrief     `json:"investor_brief"`
	ExecutiveSummary  ExecutiveSummary  `json:"executive_summary"`
	OutreachPlan      OutreachPlan      `json:"outreach_plan"`
	LegendaryBonus    LegendaryBonus    `json:"legendary_bonus"`
}

type PropertySnapshot struct {
	Address       string  `json:"address"`
	ParcelID      string  `json:"parcel_id"`
	PropertyType  string  `json:"property_type"`
	YearBuilt     int     `json:"year_built"`
	SquareFootage int     `json:"square_footage"`
	LotSizeSqFt   float64 `json:"lot_size_sq_ft"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	Zoning        string  `json:"zoning"`
	County        string  `json:"county"`
	Summary       string  `json:"summary"`
}

type OwnershipProfile struct {
	OwnerName         string  `json:"owner_name"`
	MailingAddress    string  `json:"mailing_address"`
	OwnershipYears    float64 `json:"ownership_years"`
	AbsenteeOwner     bool    `json:"absentee_owner"`
	LastSalePrice     float64 `json:"last_sale_price"`
	LastSaleDate      string  `json:"last_sale_date"`
	MotivationInsight string  `json:"motivation_insight"`
	MotivationScore   int     `json:"motivation_score"`
}

type EquityAnalysis struct {
	EstimatedValue    float64 `json:"estimated_value"`
	EquityEstimate    float64 `json:"equity_estimate"`
	TaxAssessedValue  float64 `json:"tax_assessed_value"`
	PropertyTaxAmount float64 `json:"property_tax_amount"`
	TaxVsAVMAnalysis  string  `json:"tax_vs_avm_analysis"`
}

type StrategyScorecard struct {
	FlipPotential  string `json:"flip_potential"`
	BuyHold        string `json:"buy_hold"`
	BRRRRFitScore  int    `json:"brrrr_fit_score"`
	Recommendation string `json:"recommendation"`
	RentEstimate   string `json:"rent_estimate"`
}

type MarketContext struct {
	Trends             string   `json:"trends"`
	ComparableAnalysis string   `json:"comparable_analysis"`
	KeyHighlights      []string `json:"key_highlights"`
}

type NeighborhoodPulse struct {
	Walkability   string `json:"walkability"`
	TransitAccess string `json:"transit_access"`
	SchoolZone    string `json:"school_zone"`
	Community     string `json:"community"`
}

type RiskLedger struct {
	AgeRiskTier   string   `json:"age_risk_tier"`
	AgeAdvisory   string   `json:"age_advisory"`
	AgeRehabRisk  string   `json:"age_rehab_risk"`
	TaxRisk       string   `json:"tax_risk"`
	AbsenteeRisk  string   `json:"absentee_risk"`
	StructureRisk string   `json:"structure_risk"`
	RiskFactors   []string `json:"risk_factors"`
}

type InvestorBrief struct {
	Summary              string `json:"summary"`
	TargetBuyerType      string `json:"target_buyer_type"`
	OffMarketProbability string `json:"off_market_probability"`
}

type ExecutiveSummary struct {
	Narrative string `json:"narrative"`
	AIGrade   string `json:"ai_grade"`
}

type OutreachPlan struct {
	Approach           string `json:"approach"`
	ColdOutreachScript string `json:"cold_outreach_script"`
}

type LegendaryBonus struct {
	DealScore      int    `json:"deal_score"`
	DealGrade      string `json:"deal_grade"`
	RebuildVsRehab string `json:"rebuild_vs_rehab"`
}
