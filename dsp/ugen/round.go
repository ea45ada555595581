package ugen

import (
	"fmt"
	"math"
)

// RoundMode selects the rounding function of a Rounder.
type RoundMode int

const (
	// RoundNearest rounds half away from zero.
	RoundNearest RoundMode = iota
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundCeil rounds towards positive infinity.
	RoundCeil
)

// String returns the lowercase name used in configuration strings.
func (m RoundMode) String() string {
	switch m {
	case RoundNearest:
		return "round"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	default:
		return "unknown"
	}
}

// Rounder quantizes its input to a number of decimal places.
type Rounder struct {
	places int
	factor float64
	mode   RoundMode
}

// NewRounder returns a rounder to places decimal places. Negative places
// round to tens, hundreds and so on.
func NewRounder(places int, mode RoundMode) *Rounder {
	return &Rounder{
		places: places,
		factor: math.Pow(10, float64(places)),
		mode:   mode,
	}
}

// TypeName returns "Round".
func (r *Rounder) TypeName() string { return "Round" }
// InputNames lists the input ports in order.
func (r *Rounder) InputNames() []string { return rateInputs }
// OutputNames lists the output ports in order.
func (r *Rounder) OutputNames() []string { return singleOut }

// DescribeConfig summarizes the construction parameters.
func (r *Rounder) DescribeConfig() (string, bool) {
	return fmt.Sprintf("places = %d, mode = %s", r.places, r.mode), true
}

// Process computes one block of Rounder output.
func (r *Rounder) Process(inputs, outputs [][]float64, _ float64, _ int) {
	in := input(inputs, 0)
	out := outputs[0]

	var fn func(float64) float64
	switch r.mode {
	case RoundFloor:
		fn = math.Floor
	case RoundCeil:
		fn = math.Ceil
	default:
		fn = math.Round
	}

	for i := range out {
		out[i] = fn(At(in, i, 0)*r.factor) / r.factor
	}
}
