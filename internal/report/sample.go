// File path: internal/report/sample.go
package report

// SectionDescription documents one report section for client discovery.
type SectionDescription struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// SampleStructure describes both report shapes: section names and the
// fields each carries. Static metadata, no I/O.
type SampleStructure struct {
	LegacySections    []SectionDescription `json:"legacy_sections"`
	LegendarySections []SectionDescription `json:"legendary_sections"`
	Notes             string               `json:"notes"`
}

// Sample returns the report structure metadata served by the discovery
// endpoint.
func Sample() SampleStructure {
	return SampleStructure{
		LegacySections: []SectionDescription{
			{Name: "property_overview", Fields: []string{"address", "property_type", "year_built", "square_footage", "lot_size_acres", "bedrooms", "bathrooms", "summary"}},
			{Name: "ownership_history", Fields: []string{"owner_name", "ownership_years", "absentee_owner", "last_sale_price", "last_sale_date", "motivation_insight"}},
			{Name: "equity_position", Fields: []string{"estimated_value", "equity_estimate", "tax_assessed_value", "tax_vs_avm_analysis"}},
			{Name: "investment_strategy", Fields: []string{"flip_potential", "buy_hold", "brrrr_fit_score", "recommendation", "rent_estimate"}},
			{Name: "neighborhood_context", Fields: []string{"walkability", "transit_access", "school_zone", "community"}},
			{Name: "risk_flags", Fields: []string{"age_rehab_risk", "tax_risk", "absentee_risk", "structure_risk", "summary"}},
			{Name: "investor_snapshot", Fields: []string{"summary", "target_buyer_type", "motivation_score", "outreach_approach", "off_market_probability"}},
			{Name: "bonus_analytics", Fields: []string{"ai_grade", "rebuild_vs_rehab", "cold_outreach_script"}},
		},
		LegendarySections: []SectionDescription{
			{Name: "property_snapshot", Fields: []string{"address", "parcel_id", "property_type", "year_built", "square_footage", "lot_size_sq_ft", "bedrooms", "bathrooms", "zoning", "county", "summary"}},
			{Name: "ownership_profile", Fields: []string{"owner_name", "mailing_address", "ownership_years", "absentee_owner", "last_sale_price", "last_sale_date", "motivation_insight", "motivation_score"}},
			{Name: "equity_analysis", Fields: []string{"estimated_value", "equity_estimate", "tax_assessed_value", "property_tax_amount", "tax_vs_avm_analysis"}},
			{Name: "strategy_scorecard", Fields: []string{"flip_potential", "buy_hold", "brrrr_fit_score", "recommendation", "rent_estimate"}},
			{Name: "neighborhood_pulse", Fields: []string{"walkability", "transit_access", "school_zone", "community"}},
			{Name: "market_context", Fields: []string{"trends", "comparable_analysis", "key_highlights"}},
			{Name: "risk_ledger", Fields: []string{"age_risk_tier", "age_advisory", "age_rehab_risk", "tax_risk", "absentee_risk", "structure_risk", "risk_factors"}},
			{Name: "investor_brief", Fields: []string{"summary", "target_buyer_type", "off_market_probability"}},
			{Name: "executive_summary", Fields: []string{"narrative", "ai_grade"}},
			{Name: "outreach_plan", Fields: []string{"approach", "cold_outreach_script"}},
			{Name: "legendary_bonus", Fields: []string{"deal_score", "deal_grade", "rebuild_vs_rehab"}},
		},
		Notes: "Every report also carries report_id, generated_at, and cost. All string fields are always populated; missing source data yields neutral fallback text.",
	}
}
