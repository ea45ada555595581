package ugen

import (
	"fmt"
	"math"
)

// wrapEpsilon keeps integer periods exact under float accumulation.
const wrapEpsilon = 1e-9

var (
	triggerInputs = []string{"rate"}
	clockInputs   = []string{"gate"}
)

// Trigger emits 1 at the start of every block and on every phase wrap
// driven by its rate input (Hz).
type Trigger struct {
	phase float64
}

// NewTrigger returns a trigger at phase zero.
func NewTrigger() *Trigger {
	return &Trigger{}
}

// TypeName returns "Trigger".
func (t *Trigger) TypeName() string { return "Trigger" }
// InputNames lists the input ports in order.
func (t *Trigger) InputNames() []string { return triggerInputs }
// OutputNames lists the output ports in order.
func (t *Trigger) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (t *Trigger) DefaultInput(name string) (float64, bool) {
	if name == "rate" {
		return 1, true
	}
	return 0, false
}

// Process computes one block of Trigger output.
func (t *Trigger) Process(inputs, outputs [][]float64, sampleRate float64, _ int) {
	rateIn := input(inputs, 0)
	out := outputs[0]

	for i := range out {
		if i == 0 {
			out[i] = 1
			continue
		}

		rate := math.Max(At(rateIn, i, 1), 0)
		t.phase += rate / sampleRate
		if t.phase >= 1 {
			t.phase = 0
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

// Clock emits a single-sample pulse at a fixed rate while its gate is open.
// The first gated sample always pulses.
type Clock struct {
	value float64
	unit  UnitRate

	inc   float64
	ready bool
	phase float64
}

// NewClock returns a clock running at value expressed in unit.
func NewClock(value float64, unit UnitRate) *Clock {
	return &Clock{value: value, unit: unit, phase: 1}
}

// TypeName returns "Clock".
func (c *Clock) TypeName() string { return "Clock" }
// InputNames lists the input ports in order.
func (c *Clock) InputNames() []string { return clockInputs }
// OutputNames lists the output ports in order.
func (c *Clock) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (c *Clock) DefaultInput(name string) (float64, bool) {
	if name == "gate" {
		return 1, true
	}
	return 0, false
}

// DescribeConfig summarizes the construction parameters.
func (c *Clock) DescribeConfig() (string, bool) {
	return fmt.Sprintf("value = %.3f, mode = %s", c.value, c.unit), true
}

// Process computes one block of Clock output.
func (c *Clock) Process(inputs, outputs [][]float64, sampleRate float64, _ int) {
	if !c.ready {
		hz := c.unit.ToHz(c.value, sampleRate)
		c.inc = math.Max(hz, 0) / sampleRate
		c.ready = true
	}

	gate := input(inputs, 0)
	out := outputs[0]

	for i := range out {
		if At(gate, i, 1) <= 0.5 {
			out[i] = 0
			continue
		}

		c.phase += c.inc
		if c.phase >= 1-wrapEpsilon {
			c.phase = 0
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}
