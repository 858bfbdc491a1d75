// Package stats contains the numeric primitives used by the aggregation pipeline.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SqrtTolerance is the convergence tolerance of SquareRoot.
const SqrtTolerance = 0.01

// Mean returns the arithmetic mean of series. The series must not be empty.
func Mean(series []float64) float64 {
	return stat.Mean(series, nil)
}

// Variance returns the population variance of window (sum of squared deviations divided by N).
func Variance(window []float64) float64 {
	return stat.PopVariance(window, nil)
}

// StdDev returns the population standard deviation of window.
// The square root is the Babylonian approximation from SquareRoot, so the
// result is within SqrtTolerance of the exact value.
func StdDev(window []float64) float64 {
	return SquareRoot(Variance(window))
}

// SquareRoot approximates the square root of v with the Babylonian method:
// starting from x = v, y = 1 it repeats x = (x+y)/2, y = v/x until |x-y| <= SqrtTolerance.
// Zero and negative inputs return 0.
func SquareRoot(v float64) float64 {
	if v <= 0 {
		return 0
	}

	x, y := v, 1.0
	for math.Abs(x-y) > SqrtTolerance {
		x = 0.5 * (x + y)
		y = v / x
	}
	return x
}
