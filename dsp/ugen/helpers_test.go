package ugen

// runBlock processes one block of n samples and returns the outputs.
func runBlock(g UnitGenerator, sampleRate float64, n int, inputs ...[]float64) [][]float64 {
	outs := make([][]float64, len(g.OutputNames()))
	for i := range outs {
		outs[i] = make([]float64, n)
	}
	g.Process(inputs, outs, sampleRate, 0)
	return outs
}
