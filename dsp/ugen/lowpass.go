package ugen

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

const maxPoles = 12

var (
	lowPassInputs  = []string{"in", "cutoff"}
	lowPassQInputs = []string{"in", "cutoff", "resonance"}
)

// poleCount maps a roll-off in dB/octave to a cascade of one-pole stages.
func poleCount(rollOffDb float64) int {
	return int(core.Clamp(math.Round(rollOffDb/6), 1, maxPoles))
}

// onePoleCascade runs a chain of one-pole smoothers sharing a coefficient.
type onePoleCascade struct {
	state []float64
}

func newOnePoleCascade(poles int) onePoleCascade {
	return onePoleCascade{state: make([]float64, poles)}
}

func (c *onePoleCascade) coefficient(cutoff, sampleRate float64) float64 {
	fc := core.Clamp(cutoff, 1, sampleRate/2)
	return core.Clamp(2*math.Pi*fc/sampleRate, 0, 1)
}

func (c *onePoleCascade) tick(x, g float64) float64 {
	y := x
	for k := range c.state {
		c.state[k] = core.FlushDenormals(c.state[k] + g*(y-c.state[k]))
		y = c.state[k]
	}
	return y
}

func (c *onePoleCascade) describe() (string, bool) {
	return "poles = " + strconv.Itoa(len(c.state)), true
}

// LowPass is a cascade of one-pole low-pass stages, 6 dB/octave per stage.
type LowPass struct {
	cascade onePoleCascade
}

// NewLowPass returns a filter with the roll-off rounded to a multiple of
// 6 dB/octave between 6 and 72.
func NewLowPass(rollOffDb float64) *LowPass {
	return &LowPass{cascade: newOnePoleCascade(poleCount(rollOffDb))}
}

// Poles returns the number of cascaded stages.
func (f *LowPass) Poles() int { return len(f.cascade.state) }

// TypeName returns "LowPass".
func (f *LowPass) TypeName() string { return "LowPass" }
// InputNames lists the input ports in order.
func (f *LowPass) InputNames() []string { return lowPassInputs }
// OutputNames lists the output ports in order.
func (f *LowPass) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (f *LowPass) DefaultInput(name string) (float64, bool) {
	switch name {
	case "in":
		return 0, true
	case "cutoff":
		return 1000, true
	default:
		return 0, false
	}
}

// DescribeConfig summarizes the construction parameters.
func (f *LowPass) DescribeConfig() (string, bool) { return f.cascade.describe() }

// Process computes one block of LowPass output.
func (f *LowPass) Process(inputs, outputs [][]float64, sampleRate float64, _ int) {
	in := input(inputs, 0)
	cutoff := input(inputs, 1)
	out := outputs[0]

	for i := range out {
		g := f.cascade.coefficient(At(cutoff, i, 1000), sampleRate)
		out[i] = f.cascade.tick(At(in, i, 0), g)
	}
}

// ResonantLowPass adds output feedback, scaled by resonance in [0, 1], to
// the LowPass cascade.
type ResonantLowPass struct {
	cascade onePoleCascade
	z1      float64
}

// NewResonantLowPass returns a resonant filter; see NewLowPass for rollOffDb.
func NewResonantLowPass(rollOffDb float64) *ResonantLowPass {
	return &ResonantLowPass{cascade: newOnePoleCascade(poleCount(rollOffDb))}
}

// Poles returns the number of cascaded stages.
func (f *ResonantLowPass) Poles() int { return len(f.cascade.state) }

// TypeName returns "LowPassQ".
func (f *ResonantLowPass) TypeName() string { return "LowPassQ" }
// InputNames lists the input ports in order.
func (f *ResonantLowPass) InputNames() []string { return lowPassQInputs }
// OutputNames lists the output ports in order.
func (f *ResonantLowPass) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (f *ResonantLowPass) DefaultInput(name string) (float64, bool) {
	switch name {
	case "in", "resonance":
		return 0, true
	case "cutoff":
		return 1000, true
	default:
		return 0, false
	}
}

// DescribeConfig summarizes the construction parameters.
func (f *ResonantLowPass) DescribeConfig() (string, bool) { return f.cascade.describe() }

// Process computes one block of ResonantLowPass output.
func (f *ResonantLowPass) Process(inputs, outputs [][]float64, sampleRate float64, _ int) {
	in := input(inputs, 0)
	cutoff := input(inputs, 1)
	resonance := input(inputs, 2)
	out := outputs[0]

	for i := range out {
		g := f.cascade.coefficient(At(cutoff, i, 1000), sampleRate)
		res := core.Clamp(At(resonance, i, 0), 0, 1)
		y := f.cascade.tick(At(in, i, 0)-res*f.z1, g)
		f.z1 = y
		out[i] = y
	}
}
