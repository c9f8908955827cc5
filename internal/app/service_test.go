package app_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"printshop-core/internal/app"
	"printshop-core/internal/core"

	"github.com/shopspring/decimal"
)

const cardQuoteJSON = `{
	"product": {
		"name": "Business Cards",
		"category": "business_card",
		"setup_cost": "25.00",
		"setup_threshold": 100,
		"estimated_hours": "0.5"
	},
	"material": {
		"name": "350gsm card stock",
		"cost_per_unit": "0.15",
		"unit_type": "sheet"
	},
	"shop_rates": {
		"markup_percent": "100",
		"labor_hourly_rate": "50"
	},
	"quantity": 500,
	"specifications": {
		"sheet_width_mm": 450,
		"sheet_height_mm": 320,
		"card_width_mm": 90,
		"card_height_mm": 50
	}
}`

func newTestService() *app.Service {
	return app.NewService(core.NewPricingService(), nil)
}

func decodeQuote(t *testing.T, raw string) app.QuoteRequest {
	t.Helper()
	var req app.QuoteRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("failed to decode quote request: %v", err)
	}
	return req
}

func TestPriceQuote_FromWireJSON(t *testing.T) {
	svc := newTestService()

	result, err := svc.PriceQuote(decodeQuote(t, cardQuoteJSON))
	if err != nil {
		t.Fatalf("PriceQuote failed: %v", err)
	}

	if !result.Pricing.TotalCost.Equal(decimal.RequireFromString("28.60")) {
		t.Errorf("TotalCost = %s, want 28.60", result.Pricing.TotalCost)
	}
	if !result.Pricing.SellingPrice.Equal(decimal.RequireFromString("57.20")) {
		t.Errorf("SellingPrice = %s, want 57.20", result.Pricing.SellingPrice)
	}
	if !result.UnitPrice.Equal(decimal.RequireFromString("0.1144")) {
		t.Errorf("UnitPrice = %s, want 0.1144", result.UnitPrice)
	}
}

func TestPriceQuote_BadAmount(t *testing.T) {
	svc := newTestService()

	req := decodeQuote(t, cardQuoteJSON)
	req.Product.SetupCost = "twenty-five"

	if _, err := svc.PriceQuote(req); err == nil {
		t.Fatal("expected an error for a non-decimal setup cost")
	}
}

func TestPriceQuote_InvalidQuantityPropagates(t *testing.T) {
	svc := newTestService()

	req := decodeQuote(t, cardQuoteJSON)
	req.Quantity = 0

	_, err := svc.PriceQuote(req)
	if err == nil {
		t.Fatal("expected an error for quantity 0")
	}
}

func TestPriceQuantityBreaks_UnitPriceFalls(t *testing.T) {
	svc := app.NewService(core.NewPricingService(), []int{100, 250, 500, 1000})

	req := decodeQuote(t, cardQuoteJSON)
	breaks, err := svc.PriceQuantityBreaks(req)
	if err != nil {
		t.Fatalf("PriceQuantityBreaks failed: %v", err)
	}
	if len(breaks) != 4 {
		t.Fatalf("got %d breaks, want 4", len(breaks))
	}

	for i := 1; i < len(breaks); i++ {
		if breaks[i].UnitPrice.GreaterThan(breaks[i-1].UnitPrice) {
			t.Errorf("unit price rose from %s at %d to %s at %d",
				breaks[i-1].UnitPrice, breaks[i-1].Quantity,
				breaks[i].UnitPrice, breaks[i].Quantity)
		}
	}
}

func TestDescribeWorkOrder(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)

	facts, err := svc.DescribeWorkOrder("printing", &due, now)
	if err != nil {
		t.Fatalf("DescribeWorkOrder failed: %v", err)
	}

	if facts.Phase != core.PhaseProduction {
		t.Errorf("Phase = %s, want Production", facts.Phase)
	}
	if facts.Priority != 5 {
		t.Errorf("Priority = %d, want 5 for an overdue printing job", facts.Priority)
	}
	if facts.CanEdit {
		t.Error("a printing job must not be editable")
	}
	if !facts.CanCancel {
		t.Error("a printing job must be cancellable")
	}
	if len(facts.AllowedNext) != 2 {
		t.Errorf("AllowedNext = %v, want finishing and quality_check", facts.AllowedNext)
	}

	if _, err := svc.DescribeWorkOrder("shipped", nil, now); err == nil {
		t.Error("expected an error for an unknown status")
	}
}

func TestQuoteRequestSchema(t *testing.T) {
	schema := app.QuoteRequestSchema()
	if schema == nil {
		t.Fatal("expected a schema")
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("schema does not marshal: %v", err)
	}
	for _, key := range []string{"product", "shop_rates", "quantity"} {
		if !strings.Contains(string(raw), `"`+key+`"`) {
			t.Errorf("schema is missing property %q", key)
		}
	}
}
