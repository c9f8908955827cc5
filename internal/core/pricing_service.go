package core

import "github.com/shopspring/decimal"

// DefaultLaborHourlyRate applies when a shop has not configured its own
// labor rate.
var DefaultLaborHourlyRate = decimal.NewFromInt(50)

var hundred = decimal.New(100, 0)

// PricingService turns a product template, a material choice, the shop's
// commercial rates, an order quantity, and a job specification into a full
// cost and price breakdown. It is a pure computation: no I/O, no logging,
// no shared state, safe to call from any number of goroutines.
type PricingService interface {
	// CalculatePricing prices one job. material may be nil for
	// digital-only services, in which case material cost is zero and no
	// usage breakdown is attached. Fails with *InvalidQuantityError when
	// quantity <= 0.
	CalculatePricing(product Product, material *Material, rates ShopRates, quantity int, spec Specification) (*PricingResult, error)
}

type pricingService struct {
	fallbackHourlyRate decimal.Decimal
	defaultCategory    ProductCategory
}

var _ PricingService = (*pricingService)(nil)

// NewPricingService creates a pricing service with the standard fallbacks:
// labor at DefaultLaborHourlyRate, unknown jobs priced as flyers.
func NewPricingService() PricingService {
	return NewPricingServiceWith(DefaultLaborHourlyRate, CategoryFlyer)
}

// NewPricingServiceWith creates a pricing service with explicit fallbacks.
// Zero values select the standard fallbacks.
func NewPricingServiceWith(fallbackHourlyRate decimal.Decimal, defaultCategory ProductCategory) PricingService {
	if fallbackHourlyRate.IsZero() {
		fallbackHourlyRate = DefaultLaborHourlyRate
	}
	if defaultCategory == "" {
		defaultCategory = CategoryFlyer
	}
	return &pricingService{
		fallbackHourlyRate: fallbackHourlyRate,
		defaultCategory:    defaultCategory,
	}
}

func (s *pricingService) CalculatePricing(product Product, material *Material, rates ShopRates, quantity int, spec Specification) (*PricingResult, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{Quantity: quantity}
	}

	materialCost := decimal.Zero
	var usage *UsageBreakdown
	if material != nil {
		category := s.resolveCategory(product, spec)
		u := calculatorFor(category).Calculate(quantity, spec)
		materialCost = u.UnitsNeeded.Mul(material.CostPerUnit)
		usage = &UsageBreakdown{
			UnitsNeeded:  u.UnitsNeeded,
			UnitType:     material.UnitType,
			WastePercent: u.WastePercent,
		}
	}

	// Hard threshold: crossing it by one unit drops the whole setup fee.
	setupCost := decimal.Zero
	setupApplied := false
	if quantity < product.SetupThreshold {
		setupCost = product.SetupCost
		setupApplied = true
	}

	hourlyRate := rates.LaborHourlyRate
	if hourlyRate.IsZero() {
		hourlyRate = s.fallbackHourlyRate
	}
	laborCost := product.EstimatedHours.Mul(hourlyRate)

	totalCost := materialCost.Add(setupCost).Add(laborCost)
	sellingPrice := totalCost.Mul(decimal.New(1, 0).Add(rates.MarkupPercent.Div(hundred)))

	marginPercent := decimal.Zero
	if sellingPrice.IsPositive() {
		marginPercent = sellingPrice.Sub(totalCost).Div(sellingPrice).Mul(hundred)
	}

	// Each published figure rounds independently from the unrounded chain,
	// so breakdown lines never compound rounding error into the totals.
	return &PricingResult{
		MaterialCost:  materialCost.Round(2),
		SetupCost:     setupCost.Round(2),
		LaborCost:     laborCost.Round(2),
		TotalCost:     totalCost.Round(2),
		SellingPrice:  sellingPrice.Round(2),
		MarginPercent: marginPercent.Round(2),
		Breakdown: PricingBreakdown{
			MaterialUsage: usage,
			Labor: LaborBreakdown{
				EstimatedHours: product.EstimatedHours,
				HourlyRate:     hourlyRate,
			},
			Calculations: CalculationFlags{SetupApplied: setupApplied},
		},
	}, nil
}

// resolveCategory picks the usage strategy tag: an explicit "category" key
// in the specification wins, then the product's own category, then the
// engine default.
func (s *pricingService) resolveCategory(product Product, spec Specification) ProductCategory {
	if raw := spec.String("category", ""); raw != "" {
		return ParseCategory(raw)
	}
	if product.Category != "" {
		return product.Category
	}
	return s.defaultCategory
}
