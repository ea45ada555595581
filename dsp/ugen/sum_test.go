package ugen

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestNewSumRejectsFewInputs(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, 0, 1} {
		if _, err := NewSum(n); !errors.Is(err, ErrConfig) {
			t.Errorf("NewSum(%d) error = %v, want ErrConfig", n, err)
		}
	}
}

func TestSumInputNames(t *testing.T) {
	t.Parallel()

	s, err := NewSum(4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"in1", "in2", "in3", "in4"}, s.InputNames()); diff != "" {
		t.Fatalf("input names (-want +got):\n%s", diff)
	}
}

func TestSumProcess(t *testing.T) {
	t.Parallel()

	two, _ := NewSum(2)
	out := runBlock(two, 8, 3, []float64{1, 2, 3}, []float64{10, 20, 30})[0]
	testutil.RequireSliceNearlyEqual(t, out, []float64{11, 22, 33}, 0)

	three, _ := NewSum(3)
	out = runBlock(three, 8, 4,
		[]float64{1, 1, 1, 1},
		[]float64{0.5, 0.5},
		[]float64{2, 2, 2, 2, 9},
	)[0]
	testutil.RequireSliceNearlyEqual(t, out, []float64{3.5, 3.5, 3, 3}, 0)

	// Unsupplied inputs count as zero.
	out = runBlock(three, 8, 2, []float64{4, 4})[0]
	testutil.RequireSliceNearlyEqual(t, out, []float64{4, 4}, 0)
}
