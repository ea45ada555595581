package ugen

import (
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestPoleCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		db   float64
		want int
	}{
		{-12, 1}, {0, 1}, {6, 1}, {8, 1}, {9, 2}, {12, 2}, {24, 4}, {72, 12}, {200, 12},
	}
	for _, tt := range tests {
		if got := NewLowPass(tt.db).Poles(); got != tt.want {
			t.Errorf("NewLowPass(%v).Poles() = %d, want %d", tt.db, got, tt.want)
		}
		if got := NewResonantLowPass(tt.db).Poles(); got != tt.want {
			t.Errorf("NewResonantLowPass(%v).Poles() = %d, want %d", tt.db, got, tt.want)
		}
	}
}

func TestLowPassImpulse(t *testing.T) {
	t.Parallel()

	f := NewLowPass(12)
	out := runBlock(f, 2000, 20, testutil.Impulse(20, 0), testutil.DC(60, 20))[0]

	want := []float64{
		0.036, 0.058, 0.07, 0.076, 0.077, 0.075, 0.071, 0.066, 0.06, 0.054,
		0.048, 0.043, 0.038, 0.033, 0.029, 0.025, 0.021, 0.018, 0.016, 0.013,
	}
	testutil.RequireSliceNearlyEqual(t, testutil.RoundSlice(out, 3), want, 1e-12)

	if cfg, _ := f.DescribeConfig(); cfg != "poles = 2" {
		t.Fatalf("config = %q", cfg)
	}
}

func TestLowPassConvergesToDC(t *testing.T) {
	t.Parallel()

	n := 2000
	out := runBlock(NewLowPass(24), 8000, n, testutil.Ones(n), testutil.DC(500, n))[0]
	if d := 1 - out[n-1]; d > 1e-6 || d < -1e-6 {
		t.Fatalf("final sample = %v, want 1", out[n-1])
	}
	testutil.RequireInRange(t, out, 0, 1)
}

func TestLowPassCutoffClamped(t *testing.T) {
	t.Parallel()

	// Cutoff above Nyquist clamps the coefficient to 1, so one pole passes
	// the input straight through.
	out := runBlock(NewLowPass(6), 8, 4, []float64{1, -1, 1, -1}, testutil.DC(1e9, 4))[0]
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, -1, 1, -1}, 0)

	// Negative cutoff clamps to 1 Hz.
	out = runBlock(NewLowPass(6), 8, 4, testutil.Ones(4), testutil.DC(-50, 4))[0]
	testutil.RequireFinite(t, out)
	if out[0] <= 0 || out[0] >= 1 {
		t.Fatalf("out[0] = %v, want (0, 1)", out[0])
	}
}

func TestResonantLowPassMatchesLowPassWithoutResonance(t *testing.T) {
	t.Parallel()

	n := 64
	in := testutil.Impulse(n, 0)
	plain := runBlock(NewLowPass(18), 2000, n, in, testutil.DC(200, n))[0]
	res := runBlock(NewResonantLowPass(18), 2000, n, in, testutil.DC(200, n), testutil.DC(0, n))[0]
	testutil.RequireSliceNearlyEqual(t, res, plain, 0)
}

func TestResonantLowPassFeedback(t *testing.T) {
	t.Parallel()

	n := 4
	out := runBlock(NewResonantLowPass(6), 8, n, testutil.Ones(n), testutil.DC(1e9, n), testutil.DC(0.5, n))[0]

	// g = 1: y = x - 0.5*z1.
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 0.5, 0.75, 0.625}, 1e-12)

	// Resonance above 1 clamps to 1.
	out = runBlock(NewResonantLowPass(6), 8, n, testutil.Ones(n), testutil.DC(1e9, n), testutil.DC(5, n))[0]
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 0, 1, 0}, 1e-12)
}
