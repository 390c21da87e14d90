// File path: internal/property/client.go
package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alyprop/propreport/internal/common"
)

// ErrNotFound indicates the upstream source has no record for the requested
// address, or returned one without a resolvable street address.
var ErrNotFound = errors.New("property not found")

const acresToSqFt = 43560.0

// Client fetches property records from an Estated-style JSON API and
// flattens them into NormalizedProperty values. Unknown upstream fields are
// left absent, never fabricated.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// estatedRecord mirrors the nested shape of the upstream response; only the
// groups the pipeline consumes are declared.
type estatedRecord struct {
	Address struct {
		FormattedStreetAddress string `json:"formatted_street_address"`
		City                   string `json:"city"`
		ZipCode                string `json:"zip_code"`
		County                 string `json:"county"`
	} `json:"address"`
	Parcel struct {
		APNOriginal      string   `json:"apn_original"`
		AreaSqFt         *float64 `json:"area_sq_ft"`
		AreaAcres        *float64 `json:"area_acres"`
		LegalDescription string   `json:"legal_description"`
		Zoning           string   `json:"zoning"`
	} `json:"parcel"`
	Structure struct {
		PropertyType string   `json:"property_type"`
		YearBuilt    *int     `json:"year_built"`
		TotalAreaSq  *int     `json:"total_area_sq_ft"`
		BedsCount    *int     `json:"beds_count"`
		BathsTotal   *float64 `json:"baths_total"`
	} `json:"structure"`
	Owner struct {
		Name           string `json:"name"`
		MailingAddress struct {
			Street  string `json:"street"`
			City    string `json:"city"`
			State   string `json:"state"`
			ZipCode string `json:"zip_code"`
		} `json:"mailing_address"`
	} `json:"owner"`
	Valuation struct {
		LastSalePrice *float64 `json:"last_sale_price"`
		LastSaleDate  string   `json:"last_sale_date"`
		Estimate      *float64 `json:"estimate"`
	} `json:"valuation"`
	Tax struct {
		AssessedValue *float64 `json:"assessed_value"`
		TotalTaxes    *float64 `json:"total_taxes"`
	} `json:"tax"`
}

type estatedEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Lookup fetches and flattens the record for an address. A 404 from the
// upstream, an empty payload, or a record without a street address all
// surface as ErrNotFound.
func (c *Client) Lookup(ctx context.Context, address string) (NormalizedProperty, error) {
	logger := common.Logger()

	endpoint := fmt.Sprintf("%s/property?%s", c.baseURL, url.Values{"address": {address}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NormalizedProperty{}, fmt.Errorf("create lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return NormalizedProperty{}, fmt.Errorf("property lookup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NormalizedProperty{}, fmt.Errorf("read lookup response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		logger.Warn("property: no record for address", "address", address)
		return NormalizedProperty{}, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return NormalizedProperty{}, fmt.Errorf("property lookup status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	record, err := decodeRecord(body)
	if err != nil {
		return NormalizedProperty{}, fmt.Errorf("decode lookup response: %w", err)
	}

	prop := flatten(record)
	if strings.TrimSpace(prop.Address) == "" {
		logger.Warn("property: record missing street address", "address", address)
		return NormalizedProperty{}, ErrNotFound
	}
	logger.Debug("property: lookup succeeded", "address", prop.Address, "type", prop.PropertyType)
	return prop, nil
}

// Health probes the upstream API and reports reachability.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// decodeRecord accepts the documented {"data": {...}} envelope as well as a
// bare record or a single-element array, which older upstream versions emit.
func decodeRecord(body []byte) (estatedRecord, error) {
	var envelope estatedEnvelope
	payload := body
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		payload = envelope.Data
	}

	trimmed := strings.TrimSpace(string(payload))
	if strings.HasPrefix(trimmed, "[") {
		var list []estatedRecord
		if err := json.Unmarshal(payload, &list); err != nil {
			return estatedRecord{}, err
		}
		if len(list) == 0 {
			return estatedRecord{}, ErrNotFound
		}
		return list[0], nil
	}

	var record estatedRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return estatedRecord{}, err
	}
	return record, nil
}

func flatten(r estatedRecord) NormalizedProperty {
	prop := NormalizedProperty{
		Address:           strings.TrimSpace(r.Address.FormattedStreetAddress),
		ParcelID:          strings.TrimSpace(r.Parcel.APNOriginal),
		PropertyType:      MapPropertyType(r.Structure.PropertyType),
		YearBuilt:         r.Structure.YearBuilt,
		SquareFootage:     r.Structure.TotalAreaSq,
		Bedrooms:          r.Structure.BedsCount,
		Bathrooms:         r.Structure.BathsTotal,
		LegalDescription:  strings.TrimSpace(r.Parcel.LegalDescription),
		Zoning:            strings.TrimSpace(r.Parcel.Zoning),
		City:              strings.TrimSpace(r.Address.City),
		ZipCode:           strings.TrimSpace(r.Address.ZipCode),
		County:            strings.TrimSpace(r.Address.County),
		OwnerName:         strings.TrimSpace(r.Owner.Name),
		LastSalePrice:     r.Valuation.LastSalePrice,
		LastSaleDate:      strings.TrimSpace(r.Valuation.LastSaleDate),
		EstimatedValue:    r.Valuation.Estimate,
		TaxAssessedValue:  r.Tax.AssessedValue,
		PropertyTaxAmount: r.Tax.TotalTaxes,
	}

	switch {
	case r.Parcel.AreaSqFt != nil:
		prop.LotSizeSqFt = r.Parcel.AreaSqFt
	case r.Parcel.AreaAcres != nil:
		sqft := *r.Parcel.AreaAcres * acresToSqFt
		prop.LotSizeSqFt = &sqft
	}

	mail := r.Owner.MailingAddress
	parts := make([]string, 0, 4)
	for _, part := range []string{mail.Street, mail.City, mail.State, mail.ZipCode} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	prop.OwnerMailingAddress = strings.Join(parts, ", ")

	return prop
}
