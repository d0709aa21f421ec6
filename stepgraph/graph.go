package stepgraph

// Edge is one transition of the step graph: applying the link at LinkIdx
// moves the body from node From to node To.
type Edge struct {
	From    int
	LinkIdx int
	To      int
}

// Graph is the full precomputed step graph for one pad: an arena of
// deduplicated body states, an arena of deduplicated links, and the edge
// list connecting them. No node or edge owns a pointer to another; every
// reference is an arena index, which is what lets the graph be cyclic
// (any state can reach itself again) without cyclic ownership.
type Graph struct {
	ChartType string

	Nodes []BodyState
	Links []GraphLink
	Edges []Edge

	nodeIndex map[BodyState]int
	linkIndex map[GraphLink]int

	// Out[nodeIdx] lists the indices into Edges leaving that node.
	Out [][]int
}

// NewGraph creates an empty graph for the given chart type.
func NewGraph(chartType string) *Graph {
	return &Graph{
		ChartType: chartType,
		nodeIndex: make(map[BodyState]int),
		linkIndex: make(map[GraphLink]int),
	}
}

// AddNode returns the index of state, interning it if new.
func (g *Graph) AddNode(state BodyState) int {
	if idx, ok := g.nodeIndex[state]; ok {
		return idx
	}
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, state)
	g.Out = append(g.Out, nil)
	g.nodeIndex[state] = idx
	return idx
}

// AddLink returns the index of link, interning it if new.
func (g *Graph) AddLink(link GraphLink) int {
	if idx, ok := g.linkIndex[link]; ok {
		return idx
	}
	idx := len(g.Links)
	g.Links = append(g.Links, link)
	g.linkIndex[link] = idx
	return idx
}

// AddEdge records a transition from -> to via the link at linkIdx,
// deduplicating against an identical existing edge.
func (g *Graph) AddEdge(from, linkIdx, to int) int {
	for _, ei := range g.Out[from] {
		e := g.Edges[ei]
		if e.LinkIdx == linkIdx && e.To == to {
			return ei
		}
	}
	ei := len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: from, LinkIdx: linkIdx, To: to})
	g.Out[from] = append(g.Out[from], ei)
	return ei
}

// IndexOf returns the interned index of state, if present.
func (g *Graph) IndexOf(state BodyState) (int, bool) {
	idx, ok := g.nodeIndex[state]
	return idx, ok
}

// NodeCount returns the number of distinct body states in the graph.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of transitions in the graph.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Neighbors returns the outgoing edges of the node at idx.
func (g *Graph) Neighbors(idx int) []Edge {
	out := g.Out[idx]
	edges := make([]Edge, len(out))
	for i, ei := range out {
		edges[i] = g.Edges[ei]
	}
	return edges
}
