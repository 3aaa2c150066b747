package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds v half away from zero to two decimal places.
// Non-finite values round to 0.
func RoundMoney(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ClampPercent limits a discount percent to [0, 100]. NaN and infinities
// count as no discount.
func ClampPercent(p float64) float64 {
	if !finite(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
