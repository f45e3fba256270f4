package quadruplex

import (
	"slices"

	"github.com/matzehuels/tetrado/pkg/dssr"
)

// PairGraph is the pairing relation among nucleotides.
//
// Only nucleotides with at least one outgoing edge are nodes. Nodes keep the
// order in which they first received an edge, and neighbor lists keep input
// order with duplicates.
type PairGraph struct {
	order    []string
	outgoing map[string][]string
}

func newPairGraph() *PairGraph {
	return &PairGraph{outgoing: make(map[string][]string)}
}

// BuildPairGraph builds the pairing relation from the pairs of s.
//
// Without strict, every pair adds edges in both directions. With strict,
// a cWH pair from A to B adds A→B, a cHW pair from A to B adds B→A, and
// all other geometry classes are ignored.
func BuildPairGraph(s *dssr.Structure, strict bool) *PairGraph {
	g := newPairGraph()
	for _, p := range s.Pairs {
		if !strict {
			g.addEdge(p.NT1, p.NT2)
			g.addEdge(p.NT2, p.NT1)
			continue
		}
		switch p.LW {
		case dssr.LWcWH:
			g.addEdge(p.NT1, p.NT2)
		case dssr.LWcHW:
			g.addEdge(p.NT2, p.NT1)
		}
	}
	return g
}

func (g *PairGraph) addEdge(from, to string) {
	if _, ok := g.outgoing[from]; !ok {
		g.order = append(g.order, from)
	}
	g.outgoing[from] = append(g.outgoing[from], to)
}

// Nodes returns the nucleotides with outgoing edges in insertion order.
func (g *PairGraph) Nodes() []string {
	return slices.Clone(g.order)
}

// Has reports whether id has at least one outgoing edge.
func (g *PairGraph) Has(id string) bool {
	_, ok := g.outgoing[id]
	return ok
}

// Neighbors returns the targets of id's outgoing edges in input order.
// The returned slice must not be modified.
func (g *PairGraph) Neighbors(id string) []string {
	return g.outgoing[id]
}

// HasEdge reports whether the edge from→to exists.
func (g *PairGraph) HasEdge(from, to string) bool {
	return slices.Contains(g.outgoing[from], to)
}

// NodeCount returns the number of nodes with outgoing edges.
func (g *PairGraph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges, counting duplicates.
func (g *PairGraph) EdgeCount() int {
	n := 0
	for _, targets := range g.outgoing {
		n += len(targets)
	}
	return n
}
