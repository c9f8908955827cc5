package app

import (
	"printshop-core/internal/core"

	"github.com/shopspring/decimal"
)

// QuoteResult is the display-ready output of pricing one job.
type QuoteResult struct {
	Quantity int                `json:"quantity"`
	Pricing  core.PricingResult `json:"pricing"`
	// UnitPrice keeps four places so short-run items do not collapse
	// to zero.
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// QuantityBreak is one row of a run-size comparison quote.
type QuantityBreak struct {
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// WorkOrderFacts bundles every derived read-only attribute of a work
// order status for dashboards and decision gates.
type WorkOrderFacts struct {
	Status         core.WorkOrderStatus   `json:"status"`
	Phase          core.ProductionPhase   `json:"phase"`
	AllowedNext    []core.WorkOrderStatus `json:"allowed_next"`
	CanEdit        bool                   `json:"can_edit"`
	CanCancel      bool                   `json:"can_cancel"`
	Priority       int                    `json:"priority"`
	NotifyCustomer bool                   `json:"notify_customer"`
}
