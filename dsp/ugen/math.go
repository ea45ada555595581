//go:build !fastmath

package ugen

import "math"

// mathExp computes e^x using standard library math.
func mathExp(x float64) float64 {
	return math.Exp(x)
}

// mathPower2 computes 2^x using standard library math.
func mathPower2(x float64) float64 {
	return math.Pow(2, x)
}
