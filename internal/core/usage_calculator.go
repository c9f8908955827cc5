package core

import (
	"math"

	"github.com/shopspring/decimal"
)

// Specification defaults for the usage strategies. Sheet and card sizes
// default to the common SRA3 sheet and standard business card.
const (
	defaultSheetWidthMM  = 450.0
	defaultSheetHeightMM = 320.0
	defaultCardWidthMM   = 90.0
	defaultCardHeightMM  = 50.0
	defaultBleedMM       = 3.0
	defaultMarginMM      = 5.0

	defaultItemsPerSheet = 1

	defaultBannerLengthM         = 1.0
	defaultWasteAllowancePercent = 5.0
)

// MaterialUsage is the output of a usage strategy: how many material units
// the job consumes and what fraction of the purchased material is waste.
// Sheet strategies report whole sheets; the roll strategy reports a
// continuous length rounded up to two decimals.
type MaterialUsage struct {
	UnitsNeeded  decimal.Decimal
	WastePercent decimal.Decimal
}

// UsageCalculator computes material consumption for one product category.
// quantity has already been validated positive by the pricing service.
type UsageCalculator interface {
	Calculate(quantity int, spec Specification) MaterialUsage
}

// calculatorFor selects the usage strategy for a category. Every category
// without a dedicated strategy prices like a flyer.
func calculatorFor(category ProductCategory) UsageCalculator {
	switch category {
	case CategoryBusinessCard:
		return businessCardCalculator{}
	case CategoryBanner:
		return bannerCalculator{}
	default:
		return flyerCalculator{}
	}
}

// businessCardCalculator packs card footprints (card size plus bleed on
// every edge) onto a sheet, keeping a margin between footprints and at the
// sheet edge. Both orientations are evaluated and the better one wins; a
// card larger than the sheet still counts as one per sheet so the packing
// never reports zero.
type businessCardCalculator struct{}

func (businessCardCalculator) Calculate(quantity int, spec Specification) MaterialUsage {
	sheetW := spec.Float("sheet_width_mm", defaultSheetWidthMM)
	sheetH := spec.Float("sheet_height_mm", defaultSheetHeightMM)
	cardW := spec.Float("card_width_mm", defaultCardWidthMM)
	cardH := spec.Float("card_height_mm", defaultCardHeightMM)
	bleed := spec.Float("bleed_mm", defaultBleedMM)
	margin := spec.Float("margin_mm", defaultMarginMM)

	effW := cardW + 2*bleed
	effH := cardH + 2*bleed

	portrait := cardsOnSheet(sheetW, sheetH, effW, effH, margin)
	rotated := cardsOnSheet(sheetW, sheetH, effH, effW, margin)

	perSheet := portrait
	if rotated > perSheet {
		perSheet = rotated
	}
	if perSheet < 1 {
		perSheet = 1
	}

	sheets := ceilDiv(quantity, perSheet)
	return MaterialUsage{
		UnitsNeeded:  decimal.NewFromInt(int64(sheets)),
		WastePercent: sheetWastePercent(sheets, perSheet, quantity),
	}
}

// cardsOnSheet counts how many footprints of the given orientation fit.
func cardsOnSheet(sheetW, sheetH, footW, footH, margin float64) int {
	cols := int(math.Floor((sheetW - margin) / (footW + margin)))
	rows := int(math.Floor((sheetH - margin) / (footH + margin)))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols * rows
}

// flyerCalculator handles flyers, posters, and any category without its
// own strategy: a fixed number of finished items per sheet.
type flyerCalculator struct{}

func (flyerCalculator) Calculate(quantity int, spec Specification) MaterialUsage {
	perSheet := spec.Int("items_per_sheet", defaultItemsPerSheet)
	if perSheet < 1 {
		perSheet = 1
	}

	sheets := ceilDiv(quantity, perSheet)
	return MaterialUsage{
		UnitsNeeded:  decimal.NewFromInt(int64(sheets)),
		WastePercent: sheetWastePercent(sheets, perSheet, quantity),
	}
}

// bannerCalculator prices continuous roll material: run length times
// quantity plus a configured waste allowance. Rolls are cut, not packed,
// so the reported waste is exactly the allowance.
type bannerCalculator struct{}

func (bannerCalculator) Calculate(quantity int, spec Specification) MaterialUsage {
	lengthM := decimal.NewFromFloat(spec.Float("length_m", defaultBannerLengthM))
	allowance := decimal.NewFromFloat(spec.Float("waste_allowance_percent", defaultWasteAllowancePercent))

	factor := decimal.New(1, 0).Add(allowance.Div(decimal.New(100, 0)))
	units := lengthM.Mul(decimal.NewFromInt(int64(quantity))).Mul(factor)

	return MaterialUsage{
		UnitsNeeded:  units.RoundCeil(2),
		WastePercent: allowance.Round(2),
	}
}

func ceilDiv(quantity, perSheet int) int {
	return (quantity + perSheet - 1) / perSheet
}

// sheetWastePercent is the overproduced fraction of a whole-sheet run:
// (produced - ordered) / produced. Always in [0, 100).
func sheetWastePercent(sheets, perSheet, quantity int) decimal.Decimal {
	produced := int64(sheets) * int64(perSheet)
	over := produced - int64(quantity)
	return decimal.NewFromInt(over).
		Div(decimal.NewFromInt(produced)).
		Mul(decimal.New(100, 0)).
		Round(2)
}
