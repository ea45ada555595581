//go:build fastmath

package ugen

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2.
const ln2 = 0.693147180559945309417232121458

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathPower2 computes 2^x using the identity 2^x = e^(x * ln(2)).
func mathPower2(x float64) float64 {
	return approx.FastExp(x * ln2)
}
