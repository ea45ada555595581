package core

// Fill sets every value in buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	Fill(buf, 0)
}

// Last returns the final sample of buf and false when buf is empty.
func Last(buf []float64) (float64, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	return buf[len(buf)-1], true
}
