// File path: internal/insight/insights.go

// Package insight parses free-form analysis prose from a language model into
// a closed, typed set of investment insights. Parsing is heuristic keyword
// and pattern matching; every field has a deterministic default so a report
// can always be assembled even when the prose is unusable.
package insight

// Insights is the complete set of narrative and scored fields a generated
// report consumes. The struct is closed: downstream code addresses fields by
// name, never by dynamic key.
type Insights struct {
	Summary string `json:"summary"`

	// Ownership and motivation.
	MotivationInsight string `json:"motivation_insight"`
	MotivationScore   int    `json:"motivation_score"`

	// Equity and valuation.
	TaxVsAVMAnalysis string `json:"tax_vs_avm_analysis"`

	// Strategy fit.
	FlipPotentialRating    string `json:"flip_potential_rating"`
	BuyHoldAssessment      string `json:"buy_hold_assessment"`
	BRRRRFitScore          int    `json:"brrrr_fit_score"`
	StrategyRecommendation string `json:"strategy_recommendation"`
	RentEstimate           string `json:"rent_estimate"`

	// Neighborhood context.
	Walkability          string `json:"walkability"`
	TransitAccess        string `json:"transit_access"`
	SchoolZoneQuality    string `json:"school_zone_quality"`
	CommunityDescription string `json:"community_description"`

	// Risk flags.
	AgeRehabRisk  string `json:"age_rehab_risk"`
	TaxRisk       string `json:"tax_risk"`
	AbsenteeRisk  string `json:"absentee_risk"`
	StructureRisk string `json:"structure_risk"`
	RiskSummary   string `json:"risk_summary"`

	// Investor snapshot.
	InvestorSummary      string `json:"investor_summary"`
	TargetBuyerType      string `json:"target_buyer_type"`
	OutreachApproach     string `json:"outreach_approach"`
	OffMarketProbability string `json:"off_market_probability"`

	// Bonus analytics.
	AIGrade        string `json:"ai_grade"`
	RebuildVsRehab string `json:"rebuild_vs_rehab"`

	// Market context.
	KeyHighlights      []string `json:"key_highlights"`
	RiskFactors        []string `json:"risk_factors"`
	MarketTrends       string   `json:"market_trends"`
	ComparableAnalysis string   `json:"comparable_analysis"`
	ExecutiveSummary   string   `json:"executive_summary"`
}
