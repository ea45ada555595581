package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestEuclidMod(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{a: 0, n: 5, want: 0},
		{a: 7, n: 5, want: 2},
		{a: -1, n: 5, want: 4},
		{a: -6, n: 5, want: 4},
		{a: -5, n: 5, want: 0},
	}

	for _, tt := range tests {
		if got := EuclidMod(tt.a, tt.n); got != tt.want {
			t.Errorf("EuclidMod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-40); got != 0 {
		t.Fatalf("FlushDenormals(1e-40) = %v, want 0", got)
	}
	if got := FlushDenormals(-0.25); got != -0.25 {
		t.Fatalf("FlushDenormals(-0.25) = %v, want -0.25", got)
	}
}
