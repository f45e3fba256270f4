package quadruplex

import "github.com/matzehuels/tetrado/pkg/dssr"

// Options configures an analysis run.
type Options struct {
	// Strict restricts the pairing relation to directional cWH/cHW edges.
	Strict bool `json:"strict"`
}

// Analysis is the outcome of analysing one structure.
type Analysis struct {
	// HasPairs is false when the annotation carried no pairs at all.
	HasPairs bool `json:"has_pairs"`
	Strict   bool `json:"strict"`

	// Tetrads lists every tetrad in discovery order.
	Tetrads []Tetrad `json:"tetrads"`

	// Quadruplexes lists the classified quadruplexes in discovery order.
	Quadruplexes []Classified `json:"quadruplexes"`
}

// Empty reports whether no quadruplex was found.
func (a *Analysis) Empty() bool {
	return a == nil || len(a.Quadruplexes) == 0
}

// Analyze runs the full tetrad and quadruplex analysis on s.
func Analyze(s *dssr.Structure, opts Options) *Analysis {
	a := &Analysis{HasPairs: s.HasPairs, Strict: opts.Strict}
	if !s.HasPairs {
		return a
	}

	g := BuildPairGraph(s, opts.Strict)
	a.Tetrads = FindTetrads(g, s)
	for _, q := range Cluster(a.Tetrads, s.Stacks) {
		a.Quadruplexes = append(a.Quadruplexes, Classify(q, s))
	}
	return a
}
