package core

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitType is the unit a material is purchased and consumed in.
type UnitType string

const (
	UnitSheet    UnitType = "sheet"
	UnitRoll     UnitType = "roll"
	UnitKilogram UnitType = "kg"
)

// ProductCategory selects the material usage strategy for a product.
// Unknown categories price with the flyer strategy (one item per sheet
// unless the specification says otherwise).
type ProductCategory string

const (
	CategoryBusinessCard ProductCategory = "business_card"
	CategoryFlyer        ProductCategory = "flyer"
	CategoryPoster       ProductCategory = "poster"
	CategoryBanner       ProductCategory = "banner"
)

// ParseCategory normalizes a raw category tag. Unknown tags are preserved
// as-is; dispatch handles the fallback.
func ParseCategory(raw string) ProductCategory {
	return ProductCategory(strings.ToLower(strings.TrimSpace(raw)))
}

// Product is an immutable pricing template. The surrounding persistence
// layer owns it; the engines only read it.
type Product struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Category       ProductCategory `json:"category"`
	SetupCost      decimal.Decimal `json:"setup_cost"`
	SetupThreshold int             `json:"setup_threshold"` // quantities below this pay the setup cost
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
}

// Material is the stock a job is printed on. A quote may have no material
// at all (digital-only services); callers pass nil in that case.
type Material struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	UnitType    UnitType        `json:"unit_type"`
}

// ShopRates carries a shop's commercial configuration.
// A zero LaborHourlyRate means "use the engine fallback".
type ShopRates struct {
	MarkupPercent   decimal.Decimal `json:"markup_percent"`
	LaborHourlyRate decimal.Decimal `json:"labor_hourly_rate"`
}

// Specification is the free-form job parameter bag attached to a quote:
// dimensions in millimetres, bleed, items per sheet, banner length, and so
// on. Keys consumed depend on the product category; unknown keys are
// ignored and missing keys fall back to documented defaults. Values arrive
// JSON-decoded, so numbers may be float64, int, or numeric strings.
type Specification map[string]any

// Float reads a numeric key, tolerating the types JSON decoding produces.
func (s Specification) Float(key string, fallback float64) float64 {
	v, ok := s[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return fallback
}

// Int reads an integer key. Fractional values truncate toward zero.
func (s Specification) Int(key string, fallback int) int {
	if _, ok := s[key]; !ok {
		return fallback
	}
	return int(s.Float(key, float64(fallback)))
}

// String reads a string key.
func (s Specification) String(key, fallback string) string {
	if v, ok := s[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
