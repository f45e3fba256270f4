package quadruplex

import (
	"strings"

	"github.com/matzehuels/tetrado/pkg/dssr"
)

// Tetrad is a directed 4-cycle of nucleotide IDs in canonical order: the
// member with the smallest sequence index comes first and the cyclic order
// is preserved.
type Tetrad [4]string

// String returns the four IDs separated by spaces.
func (t Tetrad) String() string {
	return strings.Join(t[:], " ")
}

// Contains reports whether id is a member of t.
func (t Tetrad) Contains(id string) bool {
	for _, m := range t {
		if m == id {
			return true
		}
	}
	return false
}

// Indices returns the sequence indices of the members in tetrad order.
func (t Tetrad) Indices(s *dssr.Structure) [4]int {
	var idx [4]int
	for i, id := range t {
		idx[i] = s.Index(id)
	}
	return idx
}

// canonicalize rotates the cycle i→j→k→l so that the member with the
// minimum index is first.
func canonicalize(cycle [4]string, s *dssr.Structure) Tetrad {
	start := 0
	for i := 1; i < len(cycle); i++ {
		if s.Index(cycle[i]) < s.Index(cycle[start]) {
			start = i
		}
	}
	var t Tetrad
	for i := range t {
		t[i] = cycle[(start+i)%len(cycle)]
	}
	return t
}

// finder searches for tetrads while tracking consumed nucleotides.
type finder struct {
	graph *PairGraph
	used  map[string]bool
}

// usable reports whether id may join a cycle that already holds taken.
func (f *finder) usable(id string, taken ...string) bool {
	if f.used[id] || !f.graph.Has(id) {
		return false
	}
	for _, t := range taken {
		if id == t {
			return false
		}
	}
	return true
}

// from returns the first 4-cycle starting at i, if any.
func (f *finder) from(i string) ([4]string, bool) {
	for _, j := range f.graph.Neighbors(i) {
		if !f.usable(j, i) {
			continue
		}
		for _, k := range f.graph.Neighbors(j) {
			if !f.usable(k, i, j) {
				continue
			}
			for _, l := range f.graph.Neighbors(k) {
				if f.usable(l, i, j, k) && f.graph.HasEdge(l, i) {
					return [4]string{i, j, k, l}, true
				}
			}
		}
	}
	return [4]string{}, false
}

// FindTetrads returns the non-overlapping directed 4-cycles of g.
//
// Start candidates are visited in node order. The first cycle found from a
// candidate is canonicalized, recorded, and its four members are excluded
// from all further cycles. The search never backtracks, so a nucleotide that
// could close an alternative cycle is lost once consumed.
func FindTetrads(g *PairGraph, s *dssr.Structure) []Tetrad {
	f := &finder{graph: g, used: make(map[string]bool)}
	var tetrads []Tetrad
	for _, i := range g.order {
		if f.used[i] {
			continue
		}
		cycle, ok := f.from(i)
		if !ok {
			continue
		}
		for _, id := range cycle {
			f.used[id] = true
		}
		tetrads = append(tetrads, canonicalize(cycle, s))
	}
	return tetrads
}
