// File path: internal/metrics/metrics_test.go
package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/alyprop/propreport/internal/property"
)

func TestOwnershipDuration(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date string
		want float64
	}{
		{"iso date", "2020-06-15", 5.0},
		{"us date", "06/15/2015", 10.0},
		{"year only", "2005", 20.5},
		{"empty", "", 0.0},
		{"garbage", "not-a-date", 0.0},
		{"future sale", "2030-01-01", 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OwnershipDuration(tc.date, now)
			if math.Abs(got-tc.want) > 0.1 {
				t.Fatalf("OwnershipDuration(%q) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestIsAbsenteeOwner(t *testing.T) {
	cases := []struct {
		name     string
		property string
		owner    string
		want     bool
	}{
		{"same street tuple", "123 Main St, Austin, TX", "123 Main Street, Austin, TX 78701", false},
		{"different number", "123 Main St, Austin, TX", "456 Oak Ave, Dallas, TX 75201", true},
		{"different street", "123 Main St, Austin, TX", "123 Elm St, Austin, TX 78701", true},
		{"missing owner", "123 Main St, Austin, TX", "", false},
		{"missing property", "", "456 Oak Ave, Dallas, TX", false},
		{"short owner address", "123 Main St", "456 Oak", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAbsenteeOwner(tc.property, tc.owner); got != tc.want {
				t.Fatalf("IsAbsenteeOwner(%q, %q) = %v, want %v", tc.property, tc.owner, got, tc.want)
			}
		})
	}
}

func TestEquityEstimate(t *testing.T) {
	price := 285000.0
	estimate := 685000.0
	underwater := 200000.0

	if got := EquityEstimate(&estimate, &price); got == nil || *got != 400000 {
		t.Fatalf("expected equity 400000, got %v", got)
	}
	if got := EquityEstimate(&underwater, &price); got != nil {
		t.Fatalf("expected nil equity when estimate below price, got %v", *got)
	}
	if got := EquityEstimate(nil, &price); got != nil {
		t.Fatalf("expected nil equity when estimate missing")
	}
	if got := EquityEstimate(&estimate, nil); got != nil {
		t.Fatalf("expected nil equity when price missing")
	}
}

func TestAgeRiskTier(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		yearBuilt int
		want      RiskTier
	}{
		{2015, RiskLow},
		{1995, RiskModerate},
		{1985, RiskModerate}, // exactly 40 years
		{1975, RiskHigh},
		{1965, RiskHigh}, // exactly 60 years
		{1960, RiskCritical},
		{0, RiskLow}, // unknown year built
	}
	for _, tc := range cases {
		got := AgeRiskTier(tc.yearBuilt, now)
		if got.Tier != tc.want {
			t.Fatalf("AgeRiskTier(%d) = %s, want %s", tc.yearBuilt, got.Tier, tc.want)
		}
		if got.Advisory == "" {
			t.Fatalf("AgeRiskTier(%d) returned empty advisory", tc.yearBuilt)
		}
	}
}

func TestComputeScenario(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	yearBuilt := 1960
	price := 285000.0
	estimate := 685000.0

	prop := property.NormalizedProperty{
		Address:             "123 Main St, Austin, TX 78701",
		YearBuilt:           &yearBuilt,
		LastSalePrice:       &price,
		LastSaleDate:        "1990-03-01",
		EstimatedValue:      &estimate,
		OwnerName:           "ACME Holdings LLC",
		OwnerMailingAddress: "900 Congress Ave, Austin, TX 78701",
	}

	m := Compute(prop, now)

	if m.AgeRisk.Tier != RiskCritical {
		t.Fatalf("expected critical age risk for 1960 build, got %s", m.AgeRisk.Tier)
	}
	if m.EquityEstimate == nil || *m.EquityEstimate != 400000 {
		t.Fatalf("expected equity 400000, got %v", m.EquityEstimate)
	}
	if !m.AbsenteeOwner {
		t.Fatal("expected absentee owner when mailing address differs")
	}
	if m.OwnershipYears < 35 || m.OwnershipYears > 35.5 {
		t.Fatalf("expected ~35.3 ownership years, got %v", m.OwnershipYears)
	}
}
