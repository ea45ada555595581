package ugen

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestStepCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{-3, 1}, {0, 1}, {0.4, 1}, {1, 1}, {1.5, 2}, {2.49, 2}, {7, 7},
		{math.NaN(), 1}, {math.Inf(-1), 1}, {-1e300, 1},
		{math.Inf(1), maxCount}, {1e300, maxCount}, {maxCount + 0.4, maxCount},
	}
	for _, tt := range tests {
		if got := stepCount(tt.in); got != tt.want {
			t.Errorf("stepCount(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDurationCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{-1, 1}, {0, 1}, {0.9, 1}, {1.4, 1}, {1.5, 2}, {4, 4}, {8.2, 8},
		{math.NaN(), 1}, {math.Inf(-1), 1}, {-1e300, 1},
		{math.Inf(1), maxCount}, {1e300, maxCount},
	}
	for _, tt := range tests {
		if got := durationCount(tt.in); got != tt.want {
			t.Errorf("durationCount(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAt(t *testing.T) {
	t.Parallel()

	in := []float64{4, 5}
	if At(in, 1, -1) != 5 {
		t.Fatal("At inside range returned default")
	}
	if At(in, 2, -1) != -1 {
		t.Fatal("At outside range did not return default")
	}
	if At(nil, 0, 9) != 9 {
		t.Fatal("At on nil did not return default")
	}
}

func TestDefaultForAndDescribe(t *testing.T) {
	t.Parallel()

	if v, ok := DefaultFor(NewSine(), "freq"); !ok || v != 440 {
		t.Fatalf("Sine freq default = %v, %v", v, ok)
	}
	if _, ok := DefaultFor(NewSine(), "nope"); ok {
		t.Fatal("unknown input reported a default")
	}
	if _, ok := DefaultFor(NewRounder(1, RoundNearest), "in"); ok {
		t.Fatal("Rounder reported a default")
	}

	if cfg, ok := Describe(NewConstant(2)); !ok || cfg != "value = 2.000" {
		t.Fatalf("Constant config = %q, %v", cfg, ok)
	}
	if _, ok := Describe(NewSine()); ok {
		t.Fatal("Sine reported a config")
	}
}

func TestGeneratorContracts(t *testing.T) {
	t.Parallel()

	sum, err := NewSum(3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		gen     UnitGenerator
		typ     string
		inputs  int
		outputs int
	}{
		{NewConstant(1), "Constant", 0, 1},
		{NewRateConverter(RateHz), "AsHz", 1, 1},
		{NewRounder(0, RoundFloor), "Round", 1, 1},
		{sum, "Sum", 3, 1},
		{NewWhiteNoise(WithSeed(1)), "White", 2, 1},
		{NewSine(), "Sine", 4, 2},
		{NewTrigger(), "Trigger", 1, 1},
		{NewClock(1, RateHz), "Clock", 1, 1},
		{NewSelector([]float64{1}, SelectCycle), "Select", 2, 1},
		{NewBreakpointEnvelope(nil, SelectCycle, nil, SelectCycle), "EnvBreakPoint", 2, 1},
		{NewAttackReleaseEnvelope(), "EnvAR", 5, 1},
		{NewLowPass(12), "LowPass", 2, 1},
		{NewResonantLowPass(12), "LowPassQ", 3, 1},
		{NewPulseSelector([]float64{2}, SelectCycle), "PulseSelect", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			t.Parallel()

			if tt.gen.TypeName() != tt.typ {
				t.Errorf("TypeName = %q, want %q", tt.gen.TypeName(), tt.typ)
			}
			if len(tt.gen.InputNames()) != tt.inputs {
				t.Errorf("inputs = %v, want %d", tt.gen.InputNames(), tt.inputs)
			}
			if len(tt.gen.OutputNames()) != tt.outputs {
				t.Errorf("outputs = %v, want %d", tt.gen.OutputNames(), tt.outputs)
			}

			outs := runBlock(tt.gen, 48000, 16)
			for _, out := range outs {
				testutil.RequireFinite(t, out)
			}
		})
	}
}
