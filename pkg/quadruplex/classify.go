package quadruplex

import (
	"slices"

	"github.com/matzehuels/tetrado/pkg/dssr"
)

// ONZ is the topology code of a single-chain tetrad.
type ONZ string

// ONZ codes. ONZNone marks tetrads spanning several chains.
const (
	ONZNone  ONZ = ""
	ONZPlusO ONZ = "+O"
	ONZMinO  ONZ = "-O"
	ONZPlusN ONZ = "+N"
	ONZMinN  ONZ = "-N"
	ONZPlusZ ONZ = "+Z"
	ONZMinZ  ONZ = "-Z"
)

// Entry is one classified tetrad of a quadruplex.
type Entry struct {
	Tetrad Tetrad `json:"tetrad"`
	// Stem is the 1-based stem the tetrad belongs to.
	Stem int `json:"stem"`
	// StemStart marks the first tetrad of a stem.
	StemStart bool `json:"stem_start"`
	ONZ       ONZ  `json:"onz"`
}

// Classified is a quadruplex in stem order.
type Classified struct {
	Entries []Entry `json:"entries"`
	Stems   int     `json:"stems"`
}

// Classify orders the tetrads of q by the index of their first member and
// assigns stems and ONZ codes.
//
// A new stem starts at the first tetrad and wherever the four indices of a
// tetrad are not each exactly one above those of the previous tetrad.
func Classify(q Quadruplex, s *dssr.Structure) Classified {
	sorted := slices.Clone(q.Tetrads)
	slices.SortStableFunc(sorted, func(a, b Tetrad) int {
		return s.Index(a[0]) - s.Index(b[0])
	})

	c := Classified{Entries: make([]Entry, 0, len(sorted))}
	var prev [4]int
	for i, t := range sorted {
		cur := t.Indices(s)
		start := i == 0 || !ladder(prev, cur)
		if start {
			c.Stems++
		}
		c.Entries = append(c.Entries, Entry{
			Tetrad:    t,
			Stem:      c.Stems,
			StemStart: start,
			ONZ:       ClassifyTetrad(t, s),
		})
		prev = cur
	}
	return c
}

// ladder reports whether every index of cur is one above prev.
func ladder(prev, cur [4]int) bool {
	for i := range cur {
		if cur[i]-prev[i] != 1 {
			return false
		}
	}
	return true
}

// ClassifyTetrad returns the ONZ code of t, or ONZNone if its members span
// more than one chain. Tied indices are unsupported and yield ONZNone.
func ClassifyTetrad(t Tetrad, s *dssr.Structure) ONZ {
	chain := s.Chain(t[0])
	for _, id := range t[1:] {
		if s.Chain(id) != chain {
			return ONZNone
		}
	}

	n := t.Indices(s)
	n2, n3, n4 := n[1], n[2], n[3]
	switch {
	case n2 < n3 && n3 < n4:
		return ONZPlusO
	case n2 > n3 && n3 > n4:
		return ONZMinO
	case n2 < n3 && n2 < n4:
		return ONZPlusN
	case n2 < n3 && n2 > n4:
		return ONZMinN
	case n2 > n3 && n2 > n4:
		return ONZPlusZ
	case n2 > n3 && n2 < n4:
		return ONZMinZ
	}
	return ONZNone
}
