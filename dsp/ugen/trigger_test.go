package ugen

import (
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestTriggerFiresAtBlockStart(t *testing.T) {
	t.Parallel()

	tr := NewTrigger()
	for range 3 {
		out := runBlock(tr, 8, 4, testutil.DC(0, 4))[0]
		testutil.RequireSliceNearlyEqual(t, out, []float64{1, 0, 0, 0}, 0)
	}
}

func TestTriggerRate(t *testing.T) {
	t.Parallel()

	// 2 Hz at 8 Hz sample rate wraps every 4 samples after the first.
	out := runBlock(NewTrigger(), 8, 12, testutil.DC(2, 12))[0]
	want := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)

	// Negative rates hold the phase.
	out = runBlock(NewTrigger(), 8, 6, testutil.DC(-5, 6))[0]
	testutil.RequireSliceNearlyEqual(t, out, testutil.Impulse(6, 0), 0)
}

func TestClockPeriods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		unit  UnitRate
		sr    float64
		n     int
		want  []float64
	}{
		{"two samples", 2, RateSamples, 8, 8, testutil.PulseTrain(2, 8)},
		{"five samples", 5, RateSamples, 8, 20, testutil.PulseTrain(5, 20)},
		{"thirteen samples", 13, RateSamples, 8, 40, testutil.PulseTrain(13, 40)},
		{"one hz", 1, RateHz, 10, 30, testutil.PulseTrain(10, 30)},
		{"bpm", 120, RateBpm, 8, 16, testutil.PulseTrain(4, 16)},
		{"seconds", 0.5, RateSeconds, 6, 12, testutil.PulseTrain(3, 12)},
		{"zero rate", 0, RateHz, 8, 16, testutil.Impulse(16, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := runBlock(NewClock(tt.value, tt.unit), tt.sr, tt.n)[0]
			testutil.RequireSliceNearlyEqual(t, out, tt.want, 0)
		})
	}
}

func TestClockAcrossBlocks(t *testing.T) {
	t.Parallel()

	c := NewClock(3, RateSamples)
	var got []float64
	for range 4 {
		got = append(got, runBlock(c, 8, 5)[0]...)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.PulseTrain(3, 20), 0)
}

func TestClockGate(t *testing.T) {
	t.Parallel()

	gate := []float64{0, 0, 1, 1, 0, 1, 1, 1}
	out := runBlock(NewClock(2, RateSamples), 8, 8, gate)[0]

	// Closed gate samples emit 0 and hold the phase.
	want := []float64{0, 0, 1, 0, 0, 1, 0, 1}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}
