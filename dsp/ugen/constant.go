package ugen

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

var singleOut = []string{"out"}

// Constant fills its output with a fixed value.
type Constant struct {
	value float64
}

// NewConstant returns a generator emitting value on every sample.
func NewConstant(value float64) *Constant {
	return &Constant{value: value}
}

// Value returns the emitted value.
func (c *Constant) Value() float64 { return c.value }

// TypeName returns "Constant".
func (c *Constant) TypeName() string { return "Constant" }
// InputNames lists the input ports in order.
func (c *Constant) InputNames() []string { return nil }
// OutputNames lists the output ports in order.
func (c *Constant) OutputNames() []string { return singleOut }

// DescribeConfig summarizes the construction parameters.
func (c *Constant) DescribeConfig() (string, bool) {
	return fmt.Sprintf("value = %.3f", c.value), true
}

// Process computes one block of Constant output.
func (c *Constant) Process(_, outputs [][]float64, _ float64, _ int) {
	core.Fill(outputs[0], c.value)
}
