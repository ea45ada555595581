package ugen

import (
	"math/rand"
	"strconv"
)

var rangeInputs = []string{"min", "max"}

// WhiteNoise draws uniform samples in [min, max].
type WhiteNoise struct {
	rng  *rand.Rand
	seed seedConfig
}

// NewWhiteNoise returns a noise generator. Pass WithSeed for reproducible output.
func NewWhiteNoise(opts ...Option) *WhiteNoise {
	cfg := applySeedOptions(opts)
	return &WhiteNoise{rng: cfg.newRand(), seed: cfg}
}

// TypeName returns "White".
func (w *WhiteNoise) TypeName() string { return "White" }
// InputNames lists the input ports in order.
func (w *WhiteNoise) InputNames() []string { return rangeInputs }
// OutputNames lists the output ports in order.
func (w *WhiteNoise) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (w *WhiteNoise) DefaultInput(name string) (float64, bool) {
	switch name {
	case "min":
		return -1, true
	case "max":
		return 1, true
	default:
		return 0, false
	}
}

// DescribeConfig summarizes the construction parameters.
func (w *WhiteNoise) DescribeConfig() (string, bool) {
	if !w.seed.seeded {
		return "", false
	}
	return "seed = " + strconv.FormatInt(w.seed.seed, 10), true
}

// Process computes one block of WhiteNoise output.
func (w *WhiteNoise) Process(inputs, outputs [][]float64, _ float64, _ int) {
	minIn := input(inputs, 0)
	maxIn := input(inputs, 1)
	out := outputs[0]

	for i := range out {
		lo := At(minIn, i, -1)
		hi := At(maxIn, i, 1)
		out[i] = lo + w.rng.Float64()*(hi-lo)
	}
}
