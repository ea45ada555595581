package ugen

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Sum adds N inputs named in1..inN.
type Sum struct {
	inputNames []string
}

// NewSum returns a summing generator with count inputs. count must be >= 2.
func NewSum(count int) (*Sum, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: sum needs at least 2 inputs, got %d", ErrConfig, count)
	}

	names := make([]string, count)
	for i := range names {
		names[i] = "in" + strconv.Itoa(i+1)
	}

	return &Sum{inputNames: names}, nil
}

// TypeName returns "Sum".
func (s *Sum) TypeName() string { return "Sum" }
// InputNames lists the input ports in order.
func (s *Sum) InputNames() []string { return s.inputNames }
// OutputNames lists the output ports in order.
func (s *Sum) OutputNames() []string { return singleOut }

// DescribeConfig summarizes the construction parameters.
func (s *Sum) DescribeConfig() (string, bool) {
	return "inputs = " + strconv.Itoa(len(s.inputNames)), true
}

// Process computes one block of Sum output.
func (s *Sum) Process(inputs, outputs [][]float64, _ float64, _ int) {
	out := outputs[0]

	if len(s.inputNames) == 2 {
		a := input(inputs, 0)
		b := input(inputs, 1)
		for i := range out {
			out[i] = At(a, i, 0) + At(b, i, 0)
		}
		return
	}

	core.Zero(out)
	for k := range s.inputNames {
		in := input(inputs, k)
		if len(in) >= len(out) {
			vecmath.AddBlockInPlace(out, in[:len(out)])
			continue
		}
		for i := range in {
			out[i] += in[i]
		}
	}
}
