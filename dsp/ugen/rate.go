package ugen

import (
	"fmt"
	"strings"
)

// UnitRate names the unit a rate value is expressed in.
type UnitRate int

const (
	// RateHz is cycles per second.
	RateHz UnitRate = iota
	// RateSeconds is the period in seconds.
	RateSeconds
	// RateSamples is the period in samples.
	RateSamples
	// RateMidi is a MIDI note number (69 = 440 Hz).
	RateMidi
	// RateBpm is beats per minute.
	RateBpm
)

// String returns the lowercase name used in configuration strings.
func (u UnitRate) String() string {
	switch u {
	case RateHz:
		return "hz"
	case RateSeconds:
		return "seconds"
	case RateSamples:
		return "samples"
	case RateMidi:
		return "midi"
	case RateBpm:
		return "bpm"
	default:
		return "unknown"
	}
}

// ParseUnitRate parses a case-insensitive unit name.
// Accepted: hz, sec, seconds, samples, spc, midi, bpm.
func ParseUnitRate(s string) (UnitRate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hz":
		return RateHz, nil
	case "sec", "seconds":
		return RateSeconds, nil
	case "samples", "spc":
		return RateSamples, nil
	case "midi":
		return RateMidi, nil
	case "bpm":
		return RateBpm, nil
	default:
		return 0, fmt.Errorf("%w: unknown rate unit %q", ErrConfig, s)
	}
}

// ToHz converts x expressed in u to Hz. Zero periods map to 0 Hz.
func (u UnitRate) ToHz(x, sampleRate float64) float64 {
	switch u {
	case RateSeconds:
		if x == 0 {
			return 0
		}
		return 1 / x
	case RateSamples:
		if x == 0 {
			return 0
		}
		return sampleRate / x
	case RateMidi:
		return 440 * mathPower2((x-69)/12)
	case RateBpm:
		return x / 60
	default:
		return x
	}
}

var rateInputs = []string{"in"}

// RateConverter converts its input from a unit rate to Hz, sample by sample.
type RateConverter struct {
	unit UnitRate
}

// NewRateConverter returns a converter reading values expressed in unit.
func NewRateConverter(unit UnitRate) *RateConverter {
	return &RateConverter{unit: unit}
}

// TypeName returns "AsHz".
func (r *RateConverter) TypeName() string { return "AsHz" }
// InputNames lists the input ports in order.
func (r *RateConverter) InputNames() []string { return rateInputs }
// OutputNames lists the output ports in order.
func (r *RateConverter) OutputNames() []string { return singleOut }

// DescribeConfig summarizes the construction parameters.
func (r *RateConverter) DescribeConfig() (string, bool) {
	return "mode = " + r.unit.String(), true
}

// Process computes one block of RateConverter output.
func (r *RateConverter) Process(inputs, outputs [][]float64, sampleRate float64, _ int) {
	in := input(inputs, 0)
	out := outputs[0]
	for i := range out {
		out[i] = r.unit.ToHz(At(in, i, 0), sampleRate)
	}
}
