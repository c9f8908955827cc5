package core

import "github.com/shopspring/decimal"

// PricingResult is the complete output of one pricing calculation. All
// monetary and percent fields are rounded to two decimal places
// independently of each other; the value is never mutated after
// construction.
type PricingResult struct {
	MaterialCost  decimal.Decimal  `json:"material_cost"`
	SetupCost     decimal.Decimal  `json:"setup_cost"`
	LaborCost     decimal.Decimal  `json:"labor_cost"`
	TotalCost     decimal.Decimal  `json:"total_cost"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	MarginPercent decimal.Decimal  `json:"margin_percent"`
	Breakdown     PricingBreakdown `json:"breakdown"`
}

// PricingBreakdown explains where the numbers came from. MaterialUsage is
// nil when the quote has no material.
type PricingBreakdown struct {
	MaterialUsage *UsageBreakdown  `json:"material_usage,omitempty"`
	Labor         LaborBreakdown   `json:"labor"`
	Calculations  CalculationFlags `json:"calculations"`
}

// UsageBreakdown reports the material consumption behind MaterialCost.
type UsageBreakdown struct {
	UnitsNeeded  decimal.Decimal `json:"units_needed"`
	UnitType     UnitType        `json:"unit_type"`
	WastePercent decimal.Decimal `json:"waste_percent"`
}

// LaborBreakdown reports the inputs behind LaborCost.
type LaborBreakdown struct {
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
}

// CalculationFlags records which pricing rules fired.
type CalculationFlags struct {
	SetupApplied bool `json:"setup_applied"`
}
