// File path: internal/analyzer/prompt.go

// Package analyzer turns a property record and its derived metrics into a
// language-model prompt and parses the response into typed insights.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/alyprop/propreport/internal/metrics"
	"github.com/alyprop/propreport/internal/property"
)

// SystemPrompt frames the model as an investment analyst and pins the
// response structure the extraction pipeline expects.
const SystemPrompt = `You are an expert real estate investment analyst. Analyze the property data provided and produce a thorough, plain-text investment assessment.

Cover each of these areas, using the area name in your text:
1. Summary of the opportunity
2. Seller motivation (include a motivation score as N/10)
3. Tax assessed value versus market estimate
4. Strategy fit: flip potential, buy and hold, BRRRR fit (as N/10), recommended strategy, rent estimate
5. Neighborhood: walkability, transit, school zone, community character
6. Risks: rehab/condition, tax, absentee ownership, structural; end with a risk summary
7. Investor brief: target buyer type, outreach approach, off-market probability (as a percentage)
8. Overall investment grade (letter grade) and rebuild versus rehab guidance

Add a short bullet list of key highlights. Be specific and quantitative where the data allows; say Unknown where it does not. Do not invent data.`

// BuildPrompt renders the property and metrics as the labelled fact sheet
// sent to the model. Missing values render as N/A so the model is never
// tempted to guess.
func BuildPrompt(p property.NormalizedProperty, m metrics.Metrics) string {
	var b strings.Builder

	b.WriteString("PROPERTY FACT SHEET\n\n")
	b.WriteString("Identification:\n")
	writeFact(&b, "Address", p.Address)
	writeFact(&b, "Parcel ID", p.ParcelID)
	writeFact(&b, "Property type", string(p.PropertyType))
	writeFact(&b, "City", p.City)
	writeFact(&b, "Zip code", p.ZipCode)
	writeFact(&b, "County", p.County)
	writeFact(&b, "Zoning", p.Zoning)
	writeFact(&b, "Legal description", p.LegalDescription)

	b.WriteString("\nStructure:\n")
	writeFact(&b, "Year built", formatInt(p.YearBuilt))
	writeFact(&b, "Square footage", formatInt(p.SquareFootage))
	writeFact(&b, "Lot size (sq ft)", formatFloat(p.LotSizeSqFt, "%.0f"))
	writeFact(&b, "Bedrooms", formatInt(p.Bedrooms))
	writeFact(&b, "Bathrooms", formatFloat(p.Bathrooms, "%.1f"))

	b.WriteString("\nOwnership:\n")
	writeFact(&b, "Owner name", p.OwnerName)
	writeFact(&b, "Owner mailing address", p.OwnerMailingAddress)
	writeFact(&b, "Ownership duration (years)", fmt.Sprintf("%.1f", m.OwnershipYears))
	writeFact(&b, "Absentee owner", fmt.Sprintf("%t", m.AbsenteeOwner))

	b.WriteString("\nValuation:\n")
	writeFact(&b, "Last sale price", formatFloat(p.LastSalePrice, "$%.0f"))
	writeFact(&b, "Last sale date", p.LastSaleDate)
	writeFact(&b, "Estimated market value", formatFloat(p.EstimatedValue, "$%.0f"))
	writeFact(&b, "Tax assessed value", formatFloat(p.TaxAssessedValue, "$%.0f"))
	writeFact(&b, "Annual property tax", formatFloat(p.PropertyTaxAmount, "$%.0f"))
	writeFact(&b, "Estimated equity", formatFloat(m.EquityEstimate, "$%.0f"))

	b.WriteString("\nCondition signals:\n")
	writeFact(&b, "Building age (years)", fmt.Sprintf("%d", m.AgeRisk.AgeYears))
	writeFact(&b, "Age risk tier", string(m.AgeRisk.Tier))
	writeFact(&b, "Age advisory", m.AgeRisk.Advisory)

	return b.String()
}

func writeFact(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = "N/A"
	}
	fmt.Fprintf(b, "  %s: %s\n", label, value)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func formatFloat(v *float64, format string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(format, *v)
}
