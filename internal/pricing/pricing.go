package pricing

import (
	"github.com/shopspring/decimal"

	"servix/backend/internal/domain"
)

// vatFactor is 1 plus the 19% VAT applied to gross sale prices.
var vatFactor = decimal.NewFromFloat(1.19)

var hundred = decimal.NewFromInt(100)

// NetFromGross strips VAT from a gross amount, rounding to the nearest
// minor unit.
func NetFromGross(grossCents int64) int64 {
	if grossCents <= 0 {
		return 0
	}
	return decimal.NewFromInt(grossCents).Div(vatFactor).Round(0).IntPart()
}

// GrossFromNet applies VAT to a net amount.
func GrossFromNet(netCents int64) int64 {
	if netCents <= 0 {
		return 0
	}
	return decimal.NewFromInt(netCents).Mul(vatFactor).Round(0).IntPart()
}

// Preview computes the margin figures shown while pricing a product.
// The net base is the explicit net price when set, otherwise it is
// derived from the gross price. Returns nil when cost and both prices
// are zero, meaning there is nothing to preview yet.
func Preview(costCents, netCents, grossCents int64) *domain.MarginPreview {
	if costCents == 0 && netCents == 0 && grossCents == 0 {
		return nil
	}

	base := netCents
	if base <= 0 {
		base = NetFromGross(grossCents)
	}
	profit := base - costCents

	rentability := decimal.Zero
	if costCents > 0 {
		rentability = decimal.NewFromInt(profit).
			Div(decimal.NewFromInt(costCents)).
			Mul(hundred).
			Round(2)
	}

	utility := decimal.Zero
	if base > 0 {
		utility = decimal.NewFromInt(profit).
			Div(decimal.NewFromInt(base)).
			Mul(hundred).
			Round(2)
	}

	return &domain.MarginPreview{
		ProfitCents:    profit,
		RentabilityPct: rentability.InexactFloat64(),
		UtilityPct:     utility.InexactFloat64(),
	}
}
