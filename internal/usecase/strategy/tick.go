package strategy

import "github.com/shopspring/decimal"

// floorToTick rounds price down to a multiple of tick. A non-positive tick leaves price unchanged.
func floorToTick(price, tick float64) float64 {
	if tick <= 0 {
		return price
	}
	t := decimal.NewFromFloat(tick)
	return decimal.NewFromFloat(price).Div(t).Floor().Mul(t).InexactFloat64()
}

// ceilToTick rounds price up to a multiple of tick. A non-positive tick leaves price unchanged.
func ceilToTick(price, tick float64) float64 {
	if tick <= 0 {
		return price
	}
	t := decimal.NewFromFloat(tick)
	return decimal.NewFromFloat(price).Div(t).Ceil().Mul(t).InexactFloat64()
}

// feeFor returns price*quantity*bps/10000.
func feeFor(price, quantity, bps float64) float64 {
	if bps <= 0 {
		return 0
	}
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(quantity)).
		Mul(decimal.NewFromFloat(bps)).
		Div(decimal.NewFromInt(10_000)).
		InexactFloat64()
}
