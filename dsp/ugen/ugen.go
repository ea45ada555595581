package ugen

import (
	"errors"
	"math"
)

// ErrConfig is returned when a generator is constructed with invalid parameters.
var ErrConfig = errors.New("ugen: invalid configuration")

// UnitGenerator is the contract shared by all generators.
//
// Process computes one block. len(outputs) equals len(OutputNames()) and every
// output slice has the block length; inputs are indexed like InputNames().
// timeSample is the absolute index of the first sample of the block.
type UnitGenerator interface {
	Process(inputs, outputs [][]float64, sampleRate float64, timeSample int)
	TypeName() string
	InputNames() []string
	OutputNames() []string
}

// DefaultInputer is implemented by generators that substitute a value for
// unconnected inputs.
type DefaultInputer interface {
	DefaultInput(name string) (float64, bool)
}

// ConfigDescriber is implemented by generators that can summarize their
// construction parameters.
type ConfigDescriber interface {
	DescribeConfig() (string, bool)
}

// DefaultFor returns the default value g declares for input name.
func DefaultFor(g UnitGenerator, name string) (float64, bool) {
	d, ok := g.(DefaultInputer)
	if !ok {
		return 0, false
	}
	return d.DefaultInput(name)
}

// Describe returns the configuration summary of g, if it provides one.
func Describe(g UnitGenerator) (string, bool) {
	d, ok := g.(ConfigDescriber)
	if !ok {
		return "", false
	}
	return d.DescribeConfig()
}

// At returns in[i], or def when in does not cover index i.
func At(in []float64, i int, def float64) float64 {
	if i < len(in) {
		return in[i]
	}
	return def
}

// input returns the k-th input slice or nil.
func input(inputs [][]float64, k int) []float64 {
	if k < len(inputs) {
		return inputs[k]
	}
	return nil
}

// maxCount caps step and duration counts so large or infinite control
// values convert to int without overflow.
const maxCount = math.MaxInt32

// stepCount converts a step control value to a whole number of steps in
// [1, maxCount]. NaN counts as 1.
func stepCount(step float64) int {
	return wholeCount(math.Round(step))
}

// durationCount converts a duration control value to a whole number of
// samples or pulses in [1, maxCount]. NaN counts as 1.
func durationCount(x float64) int {
	return wholeCount(math.Round(math.Max(x, 1)))
}

func wholeCount(x float64) int {
	switch {
	case !(x >= 1):
		return 1
	case x > maxCount:
		return maxCount
	default:
		return int(x)
	}
}
