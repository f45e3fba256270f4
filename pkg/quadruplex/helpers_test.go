package quadruplex

import (
	"fmt"
	"testing"

	"github.com/matzehuels/tetrado/pkg/dssr"
)

// structure builds a single-chain structure where nucleotide "G<i>" has
// index i, for every i in indices.
func structure(t *testing.T, indices []int, pairs []dssr.Pair, stacks ...[]string) *dssr.Structure {
	t.Helper()
	nts := make([]dssr.Nucleotide, len(indices))
	for i, idx := range indices {
		nts[i] = dssr.Nucleotide{ID: g(idx), Chain: "A", Index: idx}
	}
	st := make([]dssr.Stack, len(stacks))
	for i, members := range stacks {
		st[i] = dssr.Stack{Members: members}
	}
	if pairs == nil {
		pairs = []dssr.Pair{}
	}
	s, err := dssr.NewStructure(nts, pairs, st)
	if err != nil {
		t.Fatalf("NewStructure: %v", err)
	}
	return s
}

func g(i int) string { return fmt.Sprintf("G%d", i) }

// cycle returns non-strict pairs a-b, b-c, c-d, d-a for the given indices.
func cycle(a, b, c, d int) []dssr.Pair {
	return []dssr.Pair{
		{NT1: g(a), NT2: g(b), LW: "cWH"},
		{NT1: g(b), NT2: g(c), LW: "cWH"},
		{NT1: g(c), NT2: g(d), LW: "cWH"},
		{NT1: g(d), NT2: g(a), LW: "cWH"},
	}
}

func seq(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// checkTetradInvariants verifies cycle validity, global uniqueness and the
// canonical first member of every tetrad.
func checkTetradInvariants(t *testing.T, pg *PairGraph, s *dssr.Structure, tetrads []Tetrad) {
	t.Helper()
	seen := make(map[string]bool)
	for _, tt := range tetrads {
		for i, id := range tt {
			if seen[id] {
				t.Errorf("nucleotide %s appears in more than one tetrad", id)
			}
			seen[id] = true
			next := tt[(i+1)%4]
			if !pg.HasEdge(id, next) {
				t.Errorf("tetrad %v: missing edge %s->%s", tt, id, next)
			}
			if s.Index(id) < s.Index(tt[0]) {
				t.Errorf("tetrad %v: first member is not the minimum index", tt)
			}
		}
	}
}
