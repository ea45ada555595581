// Package graph wires unit generators into a directed acyclic graph and
// processes it block by block.
//
// Nodes are registered under unique names and connected by labels of the
// form "node.port". Every block, nodes run in a cached topological order
// so each node reads inputs its sources produced during the same block.
// Unconnected inputs read the generator's declared default, or 0.
//
//	g := graph.MustNew(48000, 128)
//	g.MustAddNode("lfo", ugen.NewSine())
//	g.MustAddNode("osc", ugen.NewSine())
//	g.MustConnect("lfo.wave", "osc.freq")
//	g.Process()
//	wave, _ := g.OutputByLabel("osc.wave")
package graph
