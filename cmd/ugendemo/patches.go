package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/graph"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

type patchEnv struct {
	cfg    core.ProcessorConfig
	seed   int64
	logger *slog.Logger
}

type patchEntry struct {
	name  string
	desc  string
	build func(g *graph.Graph, env patchEnv) error
}

var registry = []patchEntry{
	{"vibrato", "sine LFO sweeping an oscillator, mixed with quiet noise", buildVibrato},
	{"midi-note", "MIDI note 69 converted to Hz driving an oscillator", buildMidiNote},
	{"polyrhythm", "two clocks (5 and 13 samples) stepping a value selector", buildPolyrhythm},
	{"pluck", "clocked attack-release envelope beside resonant filtered noise", buildPluck},
	{"sequencer", "pulse-gated breakpoint melody through a MIDI converter", buildSequencer},
	{"ticks", "block-start trigger stream at 3 Hz", buildTicks},
}

func findPatch(name string) (patchEntry, error) {
	for _, p := range registry {
		if p.name == name {
			return p, nil
		}
	}

	names := make([]string, 0, len(registry))
	for _, p := range registry {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return patchEntry{}, fmt.Errorf("unknown patch %q (available: %v)", name, names)
}

func buildPatch(name string, env patchEnv) (*graph.Graph, error) {
	p, err := findPatch(name)
	if err != nil {
		return nil, err
	}

	g, err := graph.NewFromConfig(env.cfg, graph.WithLogger(env.logger))
	if err != nil {
		return nil, err
	}
	if err := p.build(g, env); err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return g, nil
}

// wire registers nodes in order, then applies src->dst connections.
func wire(g *graph.Graph, nodes []node, edges [][2]string) error {
	for _, n := range nodes {
		if _, err := g.AddNode(n.name, n.gen); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := g.Connect(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

type node struct {
	name string
	gen  ugen.UnitGenerator
}

func buildVibrato(g *graph.Graph, env patchEnv) error {
	mix, err := ugen.NewSum(2)
	if err != nil {
		return err
	}

	return wire(g, []node{
		{"lfo-rate", ugen.NewConstant(5)},
		{"lfo-lo", ugen.NewConstant(430)},
		{"lfo-hi", ugen.NewConstant(450)},
		{"lfo", ugen.NewSine()},
		{"osc", ugen.NewSine()},
		{"noise-lo", ugen.NewConstant(-0.05)},
		{"noise-hi", ugen.NewConstant(0.05)},
		{"noise", ugen.NewWhiteNoise(ugen.WithSeed(env.seed))},
		{"mix", mix},
	}, [][2]string{
		{"lfo-rate.out", "lfo.freq"},
		{"lfo-lo.out", "lfo.min"},
		{"lfo-hi.out", "lfo.max"},
		{"lfo.wave", "osc.freq"},
		{"noise-lo.out", "noise.min"},
		{"noise-hi.out", "noise.max"},
		{"osc.wave", "mix.in1"},
		{"noise.out", "mix.in2"},
	})
}

func buildMidiNote(g *graph.Graph, _ patchEnv) error {
	return wire(g, []node{
		{"note", ugen.NewConstant(69)},
		{"conv", ugen.NewRateConverter(ugen.RateMidi)},
		{"osc", ugen.NewSine()},
	}, [][2]string{
		{"note.out", "conv.in"},
		{"conv.out", "osc.freq"},
	})
}

func buildPolyrhythm(g *graph.Graph, env patchEnv) error {
	sum, err := ugen.NewSum(2)
	if err != nil {
		return err
	}

	return wire(g, []node{
		{"clock1", ugen.NewClock(5, ugen.RateSamples)},
		{"clock2", ugen.NewClock(13, ugen.RateSamples)},
		{"sum", sum},
		{"sel", ugen.NewSelector([]float64{3, 6, 12, 24, 48}, ugen.SelectCycle, ugen.WithSeed(env.seed))},
	}, [][2]string{
		{"clock1.out", "sum.in1"},
		{"clock2.out", "sum.in2"},
		{"sum.out", "sel.trigger"},
	})
}

func buildPluck(g *graph.Graph, env patchEnv) error {
	attack := env.cfg.SampleRate * 0.005
	release := env.cfg.SampleRate * 0.25

	return wire(g, []node{
		{"clock", ugen.NewClock(120, ugen.RateBpm)},
		{"attack", ugen.NewConstant(attack)},
		{"release", ugen.NewConstant(release)},
		{"curve", ugen.NewConstant(4)},
		{"env", ugen.NewAttackReleaseEnvelope()},
		{"sweep-rate", ugen.NewConstant(0.5)},
		{"sweep-lo", ugen.NewConstant(300)},
		{"sweep-hi", ugen.NewConstant(3000)},
		{"sweep", ugen.NewSine()},
		{"noise", ugen.NewWhiteNoise(ugen.WithSeed(env.seed))},
		{"res", ugen.NewConstant(0.4)},
		{"lpf", ugen.NewResonantLowPass(24)},
	}, [][2]string{
		{"clock.out", "env.trigger"},
		{"attack.out", "env.attack_dur"},
		{"release.out", "env.release_dur"},
		{"curve.out", "env.release_curve"},
		{"sweep-rate.out", "sweep.freq"},
		{"sweep-lo.out", "sweep.min"},
		{"sweep-hi.out", "sweep.max"},
		{"noise.out", "lpf.in"},
		{"sweep.wave", "lpf.cutoff"},
		{"res.out", "lpf.resonance"},
	})
}

func buildSequencer(g *graph.Graph, env patchEnv) error {
	return wire(g, []node{
		{"clock", ugen.NewClock(480, ugen.RateBpm)},
		{"gate", ugen.NewPulseSelector([]float64{1, 2, 1, 3}, ugen.SelectCycle)},
		{"melody", ugen.NewBreakpointEnvelope(
			[]float64{1, 2, 1}, ugen.SelectShuffle,
			[]float64{57, 60, 64, 67, 69, 72}, ugen.SelectWalk,
			ugen.WithSeed(env.seed),
		)},
		{"conv", ugen.NewRateConverter(ugen.RateMidi)},
		{"osc", ugen.NewSine()},
		{"amp", ugen.NewAttackReleaseEnvelope()},
		{"lpf", ugen.NewLowPass(12)},
	}, [][2]string{
		{"clock.out", "gate.clock"},
		{"gate.out", "melody.clock"},
		{"gate.out", "amp.trigger"},
		{"melody.out", "conv.in"},
		{"conv.out", "osc.freq"},
		{"osc.wave", "lpf.in"},
	})
}

func buildTicks(g *graph.Graph, _ patchEnv) error {
	return wire(g, []node{
		{"rate", ugen.NewConstant(3)},
		{"trig", ugen.NewTrigger()},
	}, [][2]string{
		{"rate.out", "trig.rate"},
	})
}
