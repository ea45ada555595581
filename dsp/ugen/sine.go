package ugen

import "math"

var (
	sineInputs  = []string{"freq", "phase", "min", "max"}
	sineOutputs = []string{"wave", "trigger"}
)

// Sine is a phase-accumulating sine oscillator with a wrap trigger output.
//
// Output "wave" spans [min, max]; output "trigger" is 1 on the sample where
// the phase wraps and 0 otherwise.
type Sine struct {
	phase float64
}

// NewSine returns a sine oscillator at phase zero.
func NewSine() *Sine {
	return &Sine{}
}

// Phase returns the accumulated phase in [0, 1).
func (s *Sine) Phase() float64 { return s.phase }

// TypeName returns "Sine".
func (s *Sine) TypeName() string { return "Sine" }
// InputNames lists the input ports in order.
func (s *Sine) InputNames() []string { return sineInputs }
// OutputNames lists the output ports in order.
func (s *Sine) OutputNames() []string { return sineOutputs }

// DefaultInput reports the value used for an unconnected input.
func (s *Sine) DefaultInput(name string) (float64, bool) {
	switch name {
	case "freq":
		return 440, true
	case "phase":
		return 0, true
	case "min":
		return -1, true
	case "max":
		return 1, true
	default:
		return 0, false
	}
}

// Process computes one block of Sine output.
func (s *Sine) Process(inputs, outputs [][]float64, sampleRate float64, _ int) {
	freqIn := input(inputs, 0)
	offsetIn := input(inputs, 1)
	minIn := input(inputs, 2)
	maxIn := input(inputs, 3)
	wave := outputs[0]
	trig := outputs[1]

	dt := 1 / sampleRate

	for i := range wave {
		freq := At(freqIn, i, 440)
		offset := At(offsetIn, i, 0)
		lo := At(minIn, i, -1)
		hi := At(maxIn, i, 1)

		s.phase += freq * dt
		crossed := s.phase >= 1
		if crossed {
			s.phase -= 1
		}

		norm := math.Sin(2 * math.Pi * (s.phase + offset))
		wave[i] = lo + (norm+1)*0.5*(hi-lo)
		if crossed {
			trig[i] = 1
		} else {
			trig[i] = 0
		}
	}
}
