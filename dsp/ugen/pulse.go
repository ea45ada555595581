package ugen

// PulseSelector passes the first clock pulse of each run and mutes the rest.
// Run lengths, in pulses, are drawn from a duration selector each time a
// run starts.
type PulseSelector struct {
	durations *Selector

	counter   int
	runLength int
	last      bool
}

// NewPulseSelector returns a pulse selector drawing run lengths from durations.
func NewPulseSelector(durations []float64, mode SelectMode, opts ...Option) *PulseSelector {
	return &PulseSelector{
		durations: NewSelector(durations, mode, opts...),
		runLength: 1,
	}
}

// TypeName returns "PulseSelect".
func (p *PulseSelector) TypeName() string { return "PulseSelect" }
// InputNames lists the input ports in order.
func (p *PulseSelector) InputNames() []string { return envStepInputs }
// OutputNames lists the output ports in order.
func (p *PulseSelector) OutputNames() []string { return singleOut }

// DefaultInput reports the value used for an unconnected input.
func (p *PulseSelector) DefaultInput(name string) (float64, bool) {
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
func (p *PulseSelector) DescribeConfig() (string, bool) {
	return "durations = " + formatSelector(p.durations), true
}

// Process computes one block of PulseSelector output.
func (p *PulseSelector) Process(inputs, outputs [][]float64, _ float64, _ int) {
	clock := input(inputs, 0)
	step := input(inputs, 1)
	out := outputs[0]

	for i := range out {
		high := At(clock, i, 0) > 0.5
		rising := high && !p.last
		p.last = high

		out[i] = 0
		if !rising {
			continue
		}

		if p.counter == 0 {
			out[i] = 1
			p.runLength = durationCount(p.durations.SelectNext(At(step, i, 1)))
		}

		p.counter++
		if p.counter >= p.runLength {
			p.counter = 0
		}
	}
}
