package ugen

import (
	"testing"

	"github.com/cwbudde/algo-ugen/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestWhiteNoiseSeeded(t *testing.T) {
	t.Parallel()

	a := runBlock(NewWhiteNoise(WithSeed(42)), 8, 64)[0]
	b := runBlock(NewWhiteNoise(WithSeed(42)), 8, 64)[0]
	c := runBlock(NewWhiteNoise(WithSeed(43)), 8, 64)[0]

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed diverged:\n%s", diff)
	}
	if cmp.Equal(a, c) {
		t.Fatal("different seeds produced identical noise")
	}
	testutil.RequireInRange(t, a, -1, 1)
}

func TestWhiteNoiseRangeInputs(t *testing.T) {
	t.Parallel()

	n := 256
	out := runBlock(NewWhiteNoise(WithSeed(7)), 8, n, testutil.DC(10, n), testutil.DC(12, n))[0]
	testutil.RequireInRange(t, out, 10, 12)

	out = runBlock(NewWhiteNoise(WithSeed(7)), 8, n, testutil.DC(3, n), testutil.DC(3, n))[0]
	testutil.RequireSliceNearlyEqual(t, out, testutil.DC(3, n), 0)
}

func TestWhiteNoiseConfig(t *testing.T) {
	t.Parallel()

	if cfg, ok := NewWhiteNoise(WithSeed(42)).DescribeConfig(); !ok || cfg != "seed = 42" {
		t.Fatalf("seeded config = %q, %v", cfg, ok)
	}
	if _, ok := NewWhiteNoise().DescribeConfig(); ok {
		t.Fatal("unseeded noise reported a config")
	}
}
