package ugen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

// SelectMode controls how a Selector advances through its values.
type SelectMode int

const (
	// SelectCycle steps forward and wraps around.
	SelectCycle SelectMode = iota
	// SelectRandom draws an index uniformly.
	SelectRandom
	// SelectShuffle draws without replacement from a reshuffled pool.
	SelectShuffle
	// SelectWalk moves step positions in a random direction.
	SelectWalk
)

// String returns the lowercase name used in configuration strings.
func (m SelectMode) String() string {
	switch m {
	case SelectCycle:
		return "cycle"
	case SelectRandom:
		return "random"
	case SelectShuffle:
		return "shuffle"
	case SelectWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// ParseSelectMode parses a case-insensitive mode name.
func ParseSelectMode(s string) (SelectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cycle":
		return SelectCycle, nil
	case "random":
		return SelectRandom, nil
	case "shuffle":
		return SelectShuffle, nil
	case "walk":
		return SelectWalk, nil
	default:
		return 0, fmt.Errorf("%w: unknown select mode %q", ErrConfig, s)
	}
}

var selectInputs = []string{"trigger", "step"}

// Selector emits one value of a fixed list, advancing on every sample whose
// trigger input exceeds 0.5. The step input (rounded, at least 1) sets how
// far each advance moves.
type Selector struct {
	values []float64
	mode   SelectMode
	index  int
	pool   []int
	rng    *rand.Rand
	seed   seedConfig
}

// NewSelector returns a selector over a copy of values. An empty list
// yields a selector that always outputs 0.
func NewSelector(values []float64, mode SelectMode, opts ...Option) *Selector {
	cfg := applySeedOptions(opts)
	return &Selector{
		values: append([]float64(nil), values...),
		mode:   mode,
		index:  max(len(values), 1) - 1,
		rng:    cfg.newRand(),
		seed:   cfg,
	}
}

// Values returns the selectable values.
func (s *Selector) Values() []float64 { return s.values }

// Mode returns the advance mode.
func (s *Selector) Mode() SelectMode { return s.mode }

// TypeName returns "Select".
func (s *Selector) TypeName() string { return "Select" }
// InputNames lists the input ports in order.
func (s *Selector) InputNames() []string { return selectInputs }
// OutputNames lists the output ports in order.
func (s *Selector) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (s *Selector) DefaultInput(name string) (float64, bool) {
	switch name {
	case "trigger":
		return 0, true
	case "step":
		return 1, true
	default:
		return 0, false
	}
}

// DescribeConfig summarizes the construction parameters.
func (s *Selector) DescribeConfig() (string, bool) {
	return fmt.Sprintf("values = %v, mode = %s", s.values, s.mode), true
}

// SelectNext advances once by step and returns the selected value.
func (s *Selector) SelectNext(step float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	s.advance(stepCount(step))
	return s.values[s.index]
}

// Process computes one block of Selector output.
func (s *Selector) Process(inputs, outputs [][]float64, _ float64, _ int) {
	trigger := input(inputs, 0)
	step := input(inputs, 1)
	out := outputs[0]

	if len(s.values) == 0 {
		core.Zero(out)
		return
	}

	for i := range out {
		if At(trigger, i, 0) > 0.5 {
			s.advance(stepCount(At(step, i, 1)))
		}
		out[i] = s.values[s.index]
	}
}

func (s *Selector) advance(step int) {
	n := len(s.values)

	switch s.mode {
	case SelectRandom:
		s.index = s.rng.Intn(n)
	case SelectShuffle:
		// Only the last partial pool of a long step is drawn.
		if step > n {
			step = (step-1)%n + 1
		}
		for range step {
			if len(s.pool) == 0 {
				s.pool = s.rng.Perm(n)
			}
			last := len(s.pool) - 1
			s.index = s.pool[last]
			s.pool = s.pool[:last]
		}
	case SelectWalk:
		dir := 1
		if s.rng.Intn(2) == 0 {
			dir = -1
		}
		s.index = core.EuclidMod(s.index+dir*(step%n), n)
	default:
		s.index = (s.index + step%n) % n
	}
}
