// File path: internal/property/types.go
package property

import "strings"

// PropertyType classifies a parcel into the fixed set of categories the
// report pipeline understands.
type PropertyType string

const (
	TypeSingleFamily PropertyType = "Single Family Residential"
	TypeDuplex       PropertyType = "Duplex"
	TypeCondo        PropertyType = "Condominium"
	TypeTownhouse    PropertyType = "Townhouse"
	TypeMultiFamily  PropertyType = "Multi-Family"
	TypeLand         PropertyType = "Land"
	TypeCommercial   PropertyType = "Commercial"
	TypeOther        PropertyType = "Other"
)

// NormalizedProperty is the flattened view of a property-data lookup. Every
// field except Address is optional; a nil pointer or empty string means the
// upstream source did not know the value. Absence is never an error.
type NormalizedProperty struct {
	Address          string       `json:"address"`
	ParcelID         string       `json:"parcel_id,omitempty"`
	PropertyType     PropertyType `json:"property_type,omitempty"`
	YearBuilt        *int         `json:"year_built,omitempty"`
	SquareFootage    *int         `json:"square_footage,omitempty"`
	LotSizeSqFt      *float64     `json:"lot_size_sq_ft,omitempty"`
	Bedrooms         *int         `json:"bedrooms,omitempty"`
	Bathrooms        *float64     `json:"bathrooms,omitempty"`
	LegalDescription string       `json:"legal_description,omitempty"`
	Zoning           string       `json:"zoning,omitempty"`

	City    string `json:"city,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	County  string `json:"county,omitempty"`

	OwnerName           string `json:"owner_name,omitempty"`
	OwnerMailingAddress string `json:"owner_mailing_address,omitempty"`

	LastSalePrice     *float64 `json:"last_sale_price,omitempty"`
	LastSaleDate      string   `json:"last_sale_date,omitempty"`
	EstimatedValue    *float64 `json:"estimated_value,omitempty"`
	TaxAssessedValue  *float64 `json:"tax_assessed_value,omitempty"`
	PropertyTaxAmount *float64 `json:"property_tax_amount,omitempty"`
}

// MapPropertyType converts an upstream property-type label into the closed
// enumeration, defaulting to TypeOther for anything unrecognized.
func MapPropertyType(raw string) PropertyType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "single_family", "single family", "single family residential", "sfr":
		return TypeSingleFamily
	case "duplex":
		return TypeDuplex
	case "condominium", "condo":
		return TypeCondo
	case "townhouse", "town_house":
		return TypeTownhouse
	case "multi_family", "multi-family", "multifamily":
		return TypeMultiFamily
	case "vacant_land", "land":
		return TypeLand
	case "commercial":
		return TypeCommercial
	default:
		return TypeOther
	}
}
