package ugen

import "github.com/cwbudde/algo-ugen/dsp/core"

var envStepInputs = []string{"clock", "step"}

// BreakpointEnvelope holds a level drawn from a level selector, and moves to
// the next level after a number of clock pulses drawn from a duration
// selector.
type BreakpointEnvelope struct {
	durations *Selector
	levels    *Selector

	level    float64
	counter  int
	required int
	last     bool
}

// NewBreakpointEnvelope returns an envelope whose segment lengths (in clock
// pulses) and levels come from the given lists. Both selectors share opts.
func NewBreakpointEnvelope(durations []float64, durationMode SelectMode, levels []float64, levelMode SelectMode, opts ...Option) *BreakpointEnvelope {
	return &BreakpointEnvelope{
		durations: NewSelector(durations, durationMode, opts...),
		levels:    NewSelector(levels, levelMode, opts...),
		required:  1,
	}
}

// TypeName returns "EnvBreakPoint".
func (e *BreakpointEnvelope) TypeName() string { return "EnvBreakPoint" }
// InputNames lists the input ports in order.
func (e *BreakpointEnvelope) InputNames() []string { return envStepInputs }
// OutputNames lists the output ports in order.
func (e *BreakpointEnvelope) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (e *BreakpointEnvelope) DefaultInput(name string) (float64, bool) {
	switch name {
	case "clock":
		return 0, true
	case "step":
		return 1, true
	default:
		return 0, false
	}
}

// DescribeConfig summarizes the construction parameters.
func (e *BreakpointEnvelope) DescribeConfig() (string, bool) {
	return "durations = " + formatSelector(e.durations) + ", levels = " + formatSelector(e.levels), true
}

// Process computes one block of BreakpointEnvelope output.
func (e *BreakpointEnvelope) Process(inputs, outputs [][]float64, _ float64, _ int) {
	clock := input(inputs, 0)
	step := input(inputs, 1)
	out := outputs[0]

	for i := range out {
		high := At(clock, i, 0) > 0.5
		rising := high && !e.last
		e.last = high

		if rising {
			e.counter++
			if e.counter >= e.required {
				s := At(step, i, 1)
				e.counter = 0
				e.required = durationCount(e.durations.SelectNext(s))
				e.level = e.levels.SelectNext(s)
			}
		}

		out[i] = e.level
	}
}

// EnvelopeStage is the active segment of an AttackReleaseEnvelope.
type EnvelopeStage int

const (
	// StageIdle holds the output at 0 until the next trigger edge.
	StageIdle EnvelopeStage = iota
	// StageAttack moves towards 1 over attack_dur samples.
	StageAttack
	// StageRelease moves towards 0 over release_dur samples.
	StageRelease
)

// String returns the lowercase name used in configuration strings.
func (s EnvelopeStage) String() string {
	switch s {
	case StageAttack:
		return "attack"
	case StageRelease:
		return "release"
	default:
		return "idle"
	}
}

var arInputs = []string{"trigger", "attack_dur", "release_dur", "attack_curve", "release_curve"}

// AttackReleaseEnvelope rises to 1 over attack_dur samples after a rising
// trigger edge, then falls to 0 over release_dur samples. Curves other than
// 1 shape each stage as 1-exp(-curve*p).
type AttackReleaseEnvelope struct {
	stage     EnvelopeStage
	current   float64
	start     float64
	target    float64
	total     int
	remaining int
	curve     float64
	last      bool
}

// NewAttackReleaseEnvelope returns an idle envelope at 0.
func NewAttackReleaseEnvelope() *AttackReleaseEnvelope {
	return &AttackReleaseEnvelope{target: 1, curve: 1}
}

// Stage reports the active stage.
func (e *AttackReleaseEnvelope) Stage() EnvelopeStage { return e.stage }

// TypeName returns "EnvAR".
func (e *AttackReleaseEnvelope) TypeName() string { return "EnvAR" }
// InputNames lists the input ports in order.
func (e *AttackReleaseEnvelope) InputNames() []string { return arInputs }
// OutputNames lists the output ports in order.
func (e *AttackReleaseEnvelope) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (e *AttackReleaseEnvelope) DefaultInput(name string) (float64, bool) {
	switch name {
	case "trigger":
		return 0, true
	case "attack_dur", "release_dur", "attack_curve", "release_curve":
		return 1, true
	default:
		return 0, false
	}
}

// Process computes one block of AttackReleaseEnvelope output.
func (e *AttackReleaseEnvelope) Process(inputs, outputs [][]float64, _ float64, _ int) {
	trigger := input(inputs, 0)
	attackDur := input(inputs, 1)
	releaseDur := input(inputs, 2)
	attackCurve := input(inputs, 3)
	releaseCurve := input(inputs, 4)
	out := outputs[0]

	for i := range out {
		high := At(trigger, i, 0) > 0.5
		rising := high && !e.last
		e.last = high

		if rising {
			e.begin(StageAttack, 1, At(attackDur, i, 1), At(attackCurve, i, 1))
		}

		if e.remaining > 0 {
			e.current = e.start + (e.target-e.start)*e.shape()
			e.remaining--

			if e.remaining == 0 {
				switch e.stage {
				case StageAttack:
					e.begin(StageRelease, 0, At(releaseDur, i, 1), At(releaseCurve, i, 1))
				case StageRelease:
					e.stage = StageIdle
					e.current = 0
				}
			}
		}

		out[i] = e.current
	}
}

func (e *AttackReleaseEnvelope) begin(stage EnvelopeStage, target, dur, curve float64) {
	e.stage = stage
	e.start = e.current
	e.target = target
	e.total = durationCount(dur)
	e.remaining = e.total
	e.curve = 0.001
	if curve > e.curve {
		e.curve = curve
	}
}

func (e *AttackReleaseEnvelope) shape() float64 {
	progress := 1.0
	if e.remaining > 1 {
		progress = 1 - float64(e.remaining-1)/float64(e.total)
	}

	if core.NearlyEqual(e.curve, 1, 1e-6) {
		return progress
	}
	return 1 - mathExp(-e.curve*progress)
}

func formatSelector(s *Selector) string {
	cfg, _ := s.DescribeConfig()
	return "{" + cfg + "}"
}
