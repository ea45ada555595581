package graph

import "fmt"

// ExecutionOrder returns the node ids in processing order. Sources always
// precede their consumers; ties follow registration order. The order is
// cached until the next AddNode or Connect.
func (g *Graph) ExecutionOrder() []NodeID {
	return append([]NodeID(nil), g.schedule()...)
}

// ExecutionNames returns node names in processing order.
func (g *Graph) ExecutionNames() []string {
	order := g.schedule()
	names := make([]string, len(order))
	for i, id := range order {
		names[i] = g.nodes[id].name
	}
	return names
}

// schedule returns the cached order, recomputing it with Kahn's algorithm
// when stale.
func (g *Graph) schedule() []NodeID {
	if g.orderValid {
		return g.order
	}

	n := len(g.nodes)
	indegree := make([]int, n)
	outgoing := make([][]NodeID, n)
	for _, nd := range g.nodes {
		for _, e := range nd.edges {
			outgoing[e.Src] = append(outgoing[e.Src], nd.id)
			indegree[nd.id]++
		}
	}

	queue := make([]NodeID, 0, n)
	for id := range n {
		if indegree[id] == 0 {
			queue = append(queue, NodeID(id))
		}
	}

	order := g.order[:0]
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		order = append(order, id)
		for _, next := range outgoing[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Connect rejects cycles, so every node must be ordered.
	if len(order) != n {
		panic(fmt.Sprintf("graph: scheduled %d of %d nodes", len(order), n))
	}

	g.order = order
	g.orderValid = true
	g.logger.Debug("execution order computed", "nodes", n)

	return g.order
}
