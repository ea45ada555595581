package graph

// Process advances the graph by one block. Each node runs once, in
// execution order, overwriting its output buffers in place.
func (g *Graph) Process() {
	for _, id := range g.schedule() {
		n := g.nodes[id]
		n.gen.Process(n.inputs, n.outputs, g.sampleRate, g.timeSample)
	}
	g.timeSample += g.blockSize
}

// ProcessBlocks calls Process count times.
func (g *Graph) ProcessBlocks(count int) {
	for range count {
		g.Process()
	}
}
