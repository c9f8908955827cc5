package app

import (
	"fmt"
	"strings"
	"time"

	"printshop-core/internal/core"

	"github.com/shopspring/decimal"
)

// defaultRunSizes are the standard print run quantities quoted side by
// side when the shop has not configured its own.
var defaultRunSizes = []int{100, 250, 500, 1000}

// Service is the single façade UI adapters call. It maps wire-shaped
// requests onto the core engines and contains no display logic.
type Service struct {
	pricing  core.PricingService
	runSizes []int
}

// NewService creates the façade. runSizes may be nil for the standard
// run-size ladder.
func NewService(pricing core.PricingService, runSizes []int) *Service {
	if len(runSizes) == 0 {
		runSizes = defaultRunSizes
	}
	return &Service{pricing: pricing, runSizes: runSizes}
}

// PriceQuote prices one job at its requested quantity.
func (s *Service) PriceQuote(req QuoteRequest) (*QuoteResult, error) {
	req.Normalize()

	product, material, rates, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	pricing, err := s.pricing.CalculatePricing(product, material, rates, req.Quantity, req.Specifications)
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		Quantity:  req.Quantity,
		Pricing:   *pricing,
		UnitPrice: pricing.SellingPrice.Div(decimal.NewFromInt(int64(req.Quantity))).Round(4),
	}, nil
}

// PriceQuantityBreaks prices the same job at each of the shop's standard
// run sizes so the customer can see how unit price falls with volume.
func (s *Service) PriceQuantityBreaks(req QuoteRequest) ([]QuantityBreak, error) {
	req.Normalize()

	product, material, rates, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	breaks := make([]QuantityBreak, 0, len(s.runSizes))
	for _, quantity := range s.runSizes {
		pricing, err := s.pricing.CalculatePricing(product, material, rates, quantity, req.Specifications)
		if err != nil {
			return nil, fmt.Errorf("pricing run size %d: %w", quantity, err)
		}
		breaks = append(breaks, QuantityBreak{
			Quantity:     quantity,
			SellingPrice: pricing.SellingPrice,
			UnitPrice:    pricing.SellingPrice.Div(decimal.NewFromInt(int64(quantity))).Round(4),
		})
	}
	return breaks, nil
}

// DescribeWorkOrder derives every read-only fact for a work order status
// and optional due date, evaluated against now.
func (s *Service) DescribeWorkOrder(rawStatus string, dueDate *time.Time, now time.Time) (*WorkOrderFacts, error) {
	status := core.WorkOrderStatus(strings.ToLower(strings.TrimSpace(rawStatus)))
	if !status.Valid() {
		return nil, fmt.Errorf("unknown work order status %q", rawStatus)
	}

	return &WorkOrderFacts{
		Status:         status,
		Phase:          status.Phase(),
		AllowedNext:    core.AllowedNextStatuses(status),
		CanEdit:        core.CanEditWorkOrder(status),
		CanCancel:      core.CanCancelWorkOrder(status),
		Priority:       core.CalculatePriority(dueDate, status, now),
		NotifyCustomer: core.ShouldNotifyOnStatusChange(status),
	}, nil
}

// resolve converts the wire request into core records.
func (s *Service) resolve(req QuoteRequest) (core.Product, *core.Material, core.ShopRates, error) {
	var product core.Product
	var rates core.ShopRates

	setupCost, err := parseAmount("setup_cost", req.Product.SetupCost)
	if err != nil {
		return product, nil, rates, err
	}
	estimatedHours, err := parseAmount("estimated_hours", req.Product.EstimatedHours)
	if err != nil {
		return product, nil, rates, err
	}
	markup, err := parseAmount("markup_percent", req.ShopRates.MarkupPercent)
	if err != nil {
		return product, nil, rates, err
	}
	laborRate, err := parseAmount("labor_hourly_rate", req.ShopRates.LaborHourlyRate)
	if err != nil {
		return product, nil, rates, err
	}

	product = core.Product{
		Name:           req.Product.Name,
		Category:       core.ParseCategory(req.Product.Category),
		SetupCost:      setupCost,
		SetupThreshold: req.Product.SetupThreshold,
		EstimatedHours: estimatedHours,
	}
	rates = core.ShopRates{MarkupPercent: markup, LaborHourlyRate: laborRate}

	var material *core.Material
	if req.Material != nil {
		costPerUnit, err := parseAmount("cost_per_unit", req.Material.CostPerUnit)
		if err != nil {
			return product, nil, rates, err
		}
		material = &core.Material{
			Name:        req.Material.Name,
			CostPerUnit: costPerUnit,
			UnitType:    core.UnitType(req.Material.UnitType),
		}
	}

	return product, material, rates, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	return d, nil
}
