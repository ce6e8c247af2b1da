// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/finwell/debt-payoff/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundWhole rounds a value to the nearest whole currency unit. Aggregate
// interest totals are only rounded at this final boundary, never
// mid-simulation.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ClampNonNegative clamps negative values to zero. Upstream data-quality
// issues must not be able to make a simulation diverge.
func ClampNonNegative(val float64) float64 {
	if val < 0 {
		return 0
	}
	return val
}
