// File path: internal/metrics/metrics.go

// Package metrics derives numeric investment signals from a normalized
// property record. Every function is pure: missing or malformed input maps
// to a neutral value, never an error.
package metrics

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/alyprop/propreport/internal/property"
)

// RiskTier buckets building age into coarse rehab-risk categories.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

// AgeRisk pairs a tier with its canned advisory text.
type AgeRisk struct {
	Tier     RiskTier `json:"tier"`
	AgeYears int      `json:"age_years"`
	Advisory string   `json:"advisory"`
}

// Metrics holds every derived value the report pipeline consumes.
type Metrics struct {
	OwnershipYears float64  `json:"ownership_years"`
	AbsenteeOwner  bool     `json:"absentee_owner"`
	EquityEstimate *float64 `json:"equity_estimate,omitempty"`
	AgeRisk        AgeRisk  `json:"age_risk"`
}

// Compute derives all metrics for a property at the given instant.
func Compute(p property.NormalizedProperty, now time.Time) Metrics {
	yearBuilt := 0
	if p.YearBuilt != nil {
		yearBuilt = *p.YearBuilt
	}
	return Metrics{
		OwnershipYears: OwnershipDuration(p.LastSaleDate, now),
		AbsenteeOwner:  IsAbsenteeOwner(p.Address, p.OwnerMailingAddress),
		EquityEstimate: EquityEstimate(p.EstimatedValue, p.LastSalePrice),
		AgeRisk:        AgeRiskTier(yearBuilt, now),
	}
}

// saleDateLayouts are tried in priority order.
var saleDateLayouts = []string{"2006-01-02", "01/02/2006", "2006"}

// OwnershipDuration returns the years elapsed since the last sale, rounded
// to one decimal. Unknown or unparsable dates yield 0.0.
func OwnershipDuration(lastSaleDate string, now time.Time) float64 {
	trimmed := strings.TrimSpace(lastSaleDate)
	if trimmed == "" {
		return 0.0
	}
	for _, layout := range saleDateLayouts {
		sale, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		years := now.Sub(sale).Hours() / 24 / 365.25
		if years < 0 {
			return 0.0
		}
		return math.Round(years*10) / 10
	}
	return 0.0
}

var streetTupleRE = regexp.MustCompile(`(\d+)\s+([a-z]+(?:\s+[a-z]+)*)`)

// IsAbsenteeOwner reports whether the owner's mailing address appears to
// differ from the property address. The comparison extracts the first house
// number and the street-word run that follows it from each address; the
// owner is flagged absentee when the tuples differ and the mailing address
// is long enough to be a real address. This is an approximation, not postal
// matching.
func IsAbsenteeOwner(propertyAddress, ownerAddress string) bool {
	prop := normalizeAddress(propertyAddress)
	owner := normalizeAddress(ownerAddress)
	if prop == "" || owner == "" {
		return false
	}
	propNum, propStreet := streetTuple(prop)
	ownerNum, ownerStreet := streetTuple(owner)
	differs := propNum != ownerNum || propStreet != ownerStreet
	return differs && len(owner) > 10
}

// suffixAbbreviations folds spelled-out street suffixes so "Main Street" and
// "Main St" compare equal.
var suffixAbbreviations = map[string]string{
	"street":    "st",
	"avenue":    "ave",
	"boulevard": "blvd",
	"drive":     "dr",
	"road":      "rd",
	"lane":      "ln",
	"court":     "ct",
	"place":     "pl",
	"circle":    "cir",
	"terrace":   "ter",
}

func normalizeAddress(addr string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(addr)))
	for i, f := range fields {
		trailer := ""
		word := f
		if strings.HasSuffix(word, ",") {
			trailer = ","
			word = strings.TrimSuffix(word, ",")
		}
		word = strings.TrimSuffix(word, ".")
		if abbr, ok := suffixAbbreviations[word]; ok {
			word = abbr
		}
		fields[i] = word + trailer
	}
	return strings.Join(fields, " ")
}

func streetTuple(addr string) (string, string) {
	match := streetTupleRE.FindStringSubmatch(addr)
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}

// EquityEstimate returns estimated value minus last sale price, rounded to
// the nearest whole unit. It is nil unless both inputs are present and the
// estimate exceeds the price.
func EquityEstimate(estimatedValue, lastSalePrice *float64) *float64 {
	if estimatedValue == nil || lastSalePrice == nil {
		return nil
	}
	if *estimatedValue <= *lastSalePrice {
		return nil
	}
	equity := math.Round(*estimatedValue - *lastSalePrice)
	return &equity
}

// AgeRiskTier buckets the building age. A zero or missing year built counts
// as age zero, which lands in the low tier.
func AgeRiskTier(yearBuilt int, now time.Time) AgeRisk {
	age := 0
	if yearBuilt > 0 {
		age = now.Year() - yearBuilt
	}
	if age < 0 {
		age = 0
	}

	risk := AgeRisk{AgeYears: age}
	switch {
	case age < 20:
		risk.Tier = RiskLow
		risk.Advisory = "Newer construction; systems and structure should require minimal work."
	case age <= 40:
		risk.Tier = RiskModerate
		risk.Advisory = "Mid-life property; budget for roof, HVAC, and cosmetic updates."
	case age <= 60:
		risk.Tier = RiskHigh
		risk.Advisory = "Aging structure; expect electrical, plumbing, and envelope remediation."
	default:
		risk.Tier = RiskCritical
		risk.Advisory = "Expect major system replacement and hazardous-material risk (lead paint, asbestos)."
	}
	return risk
}
