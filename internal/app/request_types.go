package app

import "strings"

// QuoteRequest is the fully-resolved input for pricing one print job.
// The surrounding system performs tenant scoping, record lookup, and
// foreign-key validation before building it. Monetary fields travel as
// decimal strings so no binary-float drift enters the engines.
type QuoteRequest struct {
	Product        ProductInput   `json:"product"`
	Material       *MaterialInput `json:"material,omitempty" jsonschema_description:"Omit for digital-only services"`
	ShopRates      RatesInput     `json:"shop_rates"`
	Quantity       int            `json:"quantity" jsonschema_description:"Number of finished items, must be positive"`
	Specifications map[string]any `json:"specifications,omitempty" jsonschema_description:"Free-form job parameters: dimensions in mm, items_per_sheet, length_m, ..."`
}

// ProductInput is the pricing template portion of a QuoteRequest.
type ProductInput struct {
	Name           string `json:"name"`
	Category       string `json:"category" jsonschema_description:"business_card, flyer, poster, or banner; anything else prices as a flyer"`
	SetupCost      string `json:"setup_cost" jsonschema_description:"Money as a decimal string, e.g. \"25.00\""`
	SetupThreshold int    `json:"setup_threshold" jsonschema_description:"Quantities below this pay the setup cost"`
	EstimatedHours string `json:"estimated_hours"`
}

// MaterialInput is the stock portion of a QuoteRequest.
type MaterialInput struct {
	Name        string `json:"name"`
	CostPerUnit string `json:"cost_per_unit" jsonschema_description:"Money per sheet/roll-metre/kg as a decimal string"`
	UnitType    string `json:"unit_type" jsonschema_description:"sheet, roll, or kg"`
}

// RatesInput is the shop commercial configuration portion of a
// QuoteRequest.
type RatesInput struct {
	MarkupPercent   string `json:"markup_percent"`
	LaborHourlyRate string `json:"labor_hourly_rate,omitempty" jsonschema_description:"Blank means the shop default applies"`
}

// Normalize cleans up wire input: trims fields and defaults blank numeric
// strings to zero so absent values parse cleanly.
func (r *QuoteRequest) Normalize() {
	r.Product.Name = strings.TrimSpace(r.Product.Name)
	r.Product.Category = strings.TrimSpace(r.Product.Category)
	r.Product.SetupCost = defaultBlank(r.Product.SetupCost)
	r.Product.EstimatedHours = defaultBlank(r.Product.EstimatedHours)
	r.ShopRates.MarkupPercent = defaultBlank(r.ShopRates.MarkupPercent)
	r.ShopRates.LaborHourlyRate = defaultBlank(r.ShopRates.LaborHourlyRate)
	if r.Material != nil {
		r.Material.Name = strings.TrimSpace(r.Material.Name)
		r.Material.CostPerUnit = defaultBlank(r.Material.CostPerUnit)
		r.Material.UnitType = strings.ToLower(strings.TrimSpace(r.Material.UnitType))
	}
}

func defaultBlank(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ToLower(raw) == "null" {
		return "0"
	}
	return raw
}
