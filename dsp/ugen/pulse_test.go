package ugen

import (
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestPulseSelectorRuns(t *testing.T) {
	t.Parallel()

	p := NewPulseSelector([]float64{2, 3}, SelectCycle)
	out := runBlock(p, 8, 20, testutil.PulseTrain(2, 20))[0]

	want := make([]float64, 20)
	for _, i := range []int{0, 4, 10, 14} {
		want[i] = 1
	}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}

func TestPulseSelectorHeldClock(t *testing.T) {
	t.Parallel()

	p := NewPulseSelector([]float64{1}, SelectCycle)
	out := runBlock(p, 8, 6, testutil.Ones(6))[0]
	testutil.RequireSliceNearlyEqual(t, out, testutil.Impulse(6, 0), 0)
}

func TestPulseSelectorPassesEveryPulseWithUnitRuns(t *testing.T) {
	t.Parallel()

	clock := testutil.PulseTrain(3, 30)
	p := NewPulseSelector([]float64{0, 1, -4}, SelectRandom, WithSeed(3))
	out := runBlock(p, 8, 30, clock)[0]
	testutil.RequireSliceNearlyEqual(t, out, clock, 0)
}
