package graph

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/ugen"
)

// NodeID is a dense node index assigned in registration order.
type NodeID int

// Edge feeds output Output of node Src into input Input of the owning node.
type Edge struct {
	Src    NodeID
	Output int
	Input  int
}

type node struct {
	id    NodeID
	name  string
	gen   ugen.UnitGenerator
	edges []Edge

	outputs  [][]float64
	defaults [][]float64
	// inputs aliases either a default buffer or a source node's output.
	inputs [][]float64
}

// Graph is a block processor over a DAG of unit generators.
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []*node
	ids   map[string]NodeID

	sampleRate float64
	blockSize  int
	timeSample int

	order      []NodeID
	orderValid bool

	logger *slog.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger receiving debug records for registration,
// connection and scheduling. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns an empty graph processing blocks of blockSize samples.
func New(sampleRate float64, blockSize int, opts ...Option) (*Graph, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, sampleRate)
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidConfig, blockSize)
	}

	g := &Graph{
		ids:        make(map[string]NodeID),
		sampleRate: sampleRate,
		blockSize:  blockSize,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g, nil
}

// NewFromConfig returns a graph using cfg's sample rate and block size.
func NewFromConfig(cfg core.ProcessorConfig, opts ...Option) (*Graph, error) {
	return New(cfg.SampleRate, cfg.BlockSize, opts...)
}

// MustNew is like New but panics on error.
func MustNew(sampleRate float64, blockSize int, opts ...Option) *Graph {
	g, err := New(sampleRate, blockSize, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// AddNode registers gen under name and allocates its buffers.
func (g *Graph) AddNode(name string, gen ugen.UnitGenerator) (NodeID, error) {
	if gen == nil {
		return 0, fmt.Errorf("%w: nil generator for %q", ErrInvalidConfig, name)
	}
	if _, ok := g.ids[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	n := &node{
		id:   NodeID(len(g.nodes)),
		name: name,
		gen:  gen,
	}

	outNames := gen.OutputNames()
	n.outputs = make([][]float64, len(outNames))
	for i := range n.outputs {
		n.outputs[i] = make([]float64, g.blockSize)
	}

	inNames := gen.InputNames()
	n.defaults = make([][]float64, len(inNames))
	n.inputs = make([][]float64, len(inNames))
	for i, in := range inNames {
		def, _ := ugen.DefaultFor(gen, in)
		buf := make([]float64, g.blockSize)
		core.Fill(buf, def)
		n.defaults[i] = buf
		n.inputs[i] = buf
	}

	g.nodes = append(g.nodes, n)
	g.ids[name] = n.id
	g.orderValid = false

	g.logger.Debug("node added",
		"id", n.id,
		"name", name,
		"type", gen.TypeName(),
		"inputs", len(inNames),
		"outputs", len(outNames))

	return n.id, nil
}

// MustAddNode is like AddNode but panics on error.
func (g *Graph) MustAddNode(name string, gen ugen.UnitGenerator) NodeID {
	id, err := g.AddNode(name, gen)
	if err != nil {
		panic(err)
	}
	return id
}

// Connect feeds the output labelled src ("node.output") into the input
// labelled dst ("node.input"). On error the graph is unchanged.
func (g *Graph) Connect(src, dst string) error {
	srcNode, out, err := g.resolve(src, false)
	if err != nil {
		return fmt.Errorf("connect %s -> %s: %w", src, dst, err)
	}
	dstNode, in, err := g.resolve(dst, true)
	if err != nil {
		return fmt.Errorf("connect %s -> %s: %w", src, dst, err)
	}

	if err := g.link(srcNode, out, dstNode, in); err != nil {
		return fmt.Errorf("connect %s -> %s: %w", src, dst, err)
	}
	return nil
}

// MustConnect is like Connect but panics on error.
func (g *Graph) MustConnect(src, dst string) {
	if err := g.Connect(src, dst); err != nil {
		panic(err)
	}
}

// ConnectIDs connects by node id and port index.
func (g *Graph) ConnectIDs(src NodeID, output int, dst NodeID, input int) error {
	s, err := g.node(src)
	if err != nil {
		return err
	}
	d, err := g.node(dst)
	if err != nil {
		return err
	}
	if output < 0 || output >= len(s.outputs) {
		return fmt.Errorf("%w: %s output %d", ErrUnknownPort, s.name, output)
	}
	if input < 0 || input >= len(d.inputs) {
		return fmt.Errorf("%w: %s input %d", ErrUnknownPort, d.name, input)
	}
	return g.link(s, output, d, input)
}

func (g *Graph) link(src *node, out int, dst *node, in int) error {
	for _, e := range dst.edges {
		if e.Input == in {
			return fmt.Errorf("%w: %s", ErrInputConnected, Label(dst.name, dst.gen.InputNames()[in]))
		}
	}
	if g.reaches(src.id, dst.id) {
		return fmt.Errorf("%w: %s depends on %s", ErrCycle, src.name, dst.name)
	}

	dst.edges = append(dst.edges, Edge{Src: src.id, Output: out, Input: in})
	dst.inputs[in] = src.outputs[out]
	g.orderValid = false

	g.logger.Debug("nodes connected",
		"src", Label(src.name, src.gen.OutputNames()[out]),
		"dst", Label(dst.name, dst.gen.InputNames()[in]))

	return nil
}

// reaches reports whether from is to or transitively depends on to.
func (g *Graph) reaches(from, to NodeID) bool {
	seen := make([]bool, len(g.nodes))
	stack := []NodeID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, e := range g.nodes[id].edges {
			stack = append(stack, e.Src)
		}
	}
	return false
}

func (g *Graph) resolve(label string, isInput bool) (*node, int, error) {
	name, port, err := SplitLabel(label)
	if err != nil {
		return nil, 0, err
	}

	id, ok := g.ids[name]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	n := g.nodes[id]

	names := n.gen.OutputNames()
	if isInput {
		names = n.gen.InputNames()
	}
	idx := portIndex(names, port)
	if idx < 0 {
		return nil, 0, fmt.Errorf("%w: %q on %s node %q", ErrUnknownPort, port, n.gen.TypeName(), name)
	}

	return n, idx, nil
}

func (g *Graph) node(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}
	return g.nodes[id], nil
}
