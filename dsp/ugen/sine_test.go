package ugen

import (
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
)

func TestSineQuarterSteps(t *testing.T) {
	t.Parallel()

	s := NewSine()
	outs := runBlock(s, 8, 8, testutil.Ones(8))

	want := []float64{0.7, 1, 0.7, 0, -0.7, -1, -0.7, 0}
	testutil.RequireSliceNearlyEqual(t, testutil.RoundSlice(outs[0], 1), want, 1e-12)
	testutil.RequireSliceNearlyEqual(t, outs[1], []float64{0, 0, 0, 0, 0, 0, 0, 1}, 0)

	if s.Phase() != 0 {
		t.Fatalf("phase after one cycle = %v, want 0", s.Phase())
	}
}

func TestSineRangeAndOffset(t *testing.T) {
	t.Parallel()

	n := 8
	outs := runBlock(NewSine(), 8, n,
		testutil.Ones(n),
		testutil.DC(0.25, n),
		testutil.DC(0, n),
		testutil.DC(10, n),
	)

	// A quarter-cycle offset turns the sine into a cosine mapped onto [0, 10].
	want := []float64{8.5355, 5, 1.4645, 0, 1.4645, 5, 8.5355, 10}
	testutil.RequireSliceNearlyEqual(t, testutil.RoundSlice(outs[0], 4), want, 1e-9)
}

func TestSineTriggerCount(t *testing.T) {
	t.Parallel()

	n := 1050
	outs := runBlock(NewSine(), 1000, n, testutil.DC(10, n))
	if got := testutil.Count(outs[1], 1); got != 10 {
		t.Fatalf("triggers = %d, want 10", got)
	}
	testutil.RequireInRange(t, outs[0], -1, 1)
}
