package testutil

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// PulseTrain returns single-sample pulses every period samples, starting at
// sample 0. A non-positive period yields only the first pulse.
func PulseTrain(period, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}
	if period <= 0 {
		out[0] = 1
		return out
	}
	for i := 0; i < length; i += period {
		out[i] = 1
	}
	return out
}

// Count returns how many elements of data equal v.
func Count(data []float64, v float64) int {
	n := 0
	for _, x := range data {
		if x == v {
			n++
		}
	}
	return n
}
