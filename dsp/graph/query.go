package graph

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// LabeledOutput pairs an output label with its current block.
type LabeledOutput struct {
	Label   string
	Samples []float64
}

// SampleRate returns the processing sample rate in Hz.
func (g *Graph) SampleRate() float64 { return g.sampleRate }

// BlockSize returns the number of samples per block.
func (g *Graph) BlockSize() int { return g.blockSize }

// TimeSample returns the absolute index of the next block's first sample.
func (g *Graph) TimeSample() int { return g.timeSample }

// Len returns the number of registered nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// NodeID returns the id registered under name.
func (g *Graph) NodeID(name string) (NodeID, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// Name returns the name of node id.
func (g *Graph) Name(id NodeID) (string, error) {
	n, err := g.node(id)
	if err != nil {
		return "", err
	}
	return n.name, nil
}

// Generator returns the generator of node id.
func (g *Graph) Generator(id NodeID) (ugen.UnitGenerator, error) {
	n, err := g.node(id)
	if err != nil {
		return nil, err
	}
	return n.gen, nil
}

// Edges returns a copy of the incoming edges of node id, in connection order.
func (g *Graph) Edges(id NodeID) ([]Edge, error) {
	n, err := g.node(id)
	if err != nil {
		return nil, err
	}
	return append([]Edge(nil), n.edges...), nil
}

// OutputByLabel returns the current block of the output labelled
// "node.output". The slice is reused by the next Process call.
func (g *Graph) OutputByLabel(label string) ([]float64, error) {
	n, idx, err := g.resolve(label, false)
	if err != nil {
		return nil, fmt.Errorf("output %s: %w", label, err)
	}
	return n.outputs[idx], nil
}

// Outputs returns every output in execution order, then declaration order.
func (g *Graph) Outputs() []LabeledOutput {
	var outs []LabeledOutput
	for _, id := range g.schedule() {
		n := g.nodes[id]
		for i, name := range n.gen.OutputNames() {
			outs = append(outs, LabeledOutput{Label: Label(n.name, name), Samples: n.outputs[i]})
		}
	}
	return outs
}

// OutputNames returns every output label in the order of Outputs.
func (g *Graph) OutputNames() []string {
	var labels []string
	for _, id := range g.schedule() {
		n := g.nodes[id]
		for _, name := range n.gen.OutputNames() {
			labels = append(labels, Label(n.name, name))
		}
	}
	return labels
}
