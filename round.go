package diarystats

import (
	"math"

	"github.com/shopspring/decimal"
)

// round1 rounds v to one decimal place, halves away from zero.
// NaN and infinities are returned unchanged.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}

// ratio returns n/d, or 0 when d is 0.
func ratio(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}
