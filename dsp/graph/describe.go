package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// NodeInfo describes one node for diagnostics.
type NodeInfo struct {
	ID      NodeID       `json:"id"`
	Name    string       `json:"name"`
	Type    string       `json:"type"`
	Config  *string      `json:"config"`
	Inputs  []InputInfo  `json:"inputs"`
	Outputs []OutputInfo `json:"outputs"`
}

// InputInfo describes an input: its source when connected, otherwise its
// default when the generator declares one.
type InputInfo struct {
	Name        string      `json:"name"`
	ConnectedTo *SourceInfo `json:"connected_to,omitempty"`
	Default     *float64    `json:"default,omitempty"`
}

// SourceInfo identifies the output feeding an input.
type SourceInfo struct {
	Node   string `json:"node"`
	Output string `json:"output"`
}

// OutputInfo holds an output name and the last sample of its current block.
type OutputInfo struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

// Describe returns a description of every node in execution order.
func (g *Graph) Describe() []NodeInfo {
	order := g.schedule()
	infos := make([]NodeInfo, 0, len(order))

	for _, id := range order {
		n := g.nodes[id]
		inNames := n.gen.InputNames()
		outNames := n.gen.OutputNames()
		info := NodeInfo{
			ID:      n.id,
			Name:    n.name,
			Type:    n.gen.TypeName(),
			Inputs:  make([]InputInfo, 0, len(inNames)),
			Outputs: make([]OutputInfo, 0, len(outNames)),
		}
		if cfg, ok := ugen.Describe(n.gen); ok {
			info.Config = &cfg
		}

		for i, in := range inNames {
			ii := InputInfo{Name: in}
			if e, ok := incoming(n, i); ok {
				src := g.nodes[e.Src]
				ii.ConnectedTo = &SourceInfo{Node: src.name, Output: src.gen.OutputNames()[e.Output]}
			} else if def, ok := ugen.DefaultFor(n.gen, in); ok {
				ii.Default = &def
			}
			info.Inputs = append(info.Inputs, ii)
		}

		for i, out := range outNames {
			oi := OutputInfo{Name: out}
			if v, ok := core.Last(n.outputs[i]); ok {
				oi.Value = &v
			}
			info.Outputs = append(info.Outputs, oi)
		}

		infos = append(infos, info)
	}

	return infos
}

// WriteJSON writes the Describe result as indented JSON.
func (g *Graph) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Describe()); err != nil {
		return fmt.Errorf("graph: encode description: %w", err)
	}
	return nil
}

// DescribeText renders Describe as text, one stanza per node:
//
//	osc <Sine {}>
//	freq ← lfo.wave
//	phase ←= 0.000
//	→ wave ≊ 0.383
func (g *Graph) DescribeText() string {
	var lines []string

	for _, info := range g.Describe() {
		cfg := ""
		if info.Config != nil {
			cfg = *info.Config
		}
		lines = append(lines, fmt.Sprintf("%s <%s {%s}>", info.Name, info.Type, cfg))

		for _, in := range info.Inputs {
			switch {
			case in.ConnectedTo != nil:
				lines = append(lines, fmt.Sprintf("%s ← %s.%s", in.Name, in.ConnectedTo.Node, in.ConnectedTo.Output))
			case in.Default != nil:
				lines = append(lines, fmt.Sprintf("%s ←= %.3f", in.Name, *in.Default))
			default:
				lines = append(lines, in.Name+" ← ∅")
			}
		}

		for _, out := range info.Outputs {
			value := "(empty)"
			if out.Value != nil {
				value = fmt.Sprintf("%.3f", *out.Value)
			}
			lines = append(lines, fmt.Sprintf("→ %s ≊ %s", out.Name, value))
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func incoming(n *node, input int) (Edge, bool) {
	for _, e := range n.edges {
		if e.Input == input {
			return e, true
		}
	}
	return Edge{}, false
}
