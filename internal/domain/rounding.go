package domain

import "math"

// Display rounding contract: rates render as one-decimal percentages,
// delay and variance as two-decimal day values. Adapters never re-round.

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Pct1 converts a fractional rate to a one-decimal percentage.
func Pct1(rate float64) float64 {
	return math.Round(rate*1000) / 10
}
