package quadruplex

import "github.com/matzehuels/tetrado/pkg/dssr"

// Quadruplex is a group of tetrads connected transitively by stacking.
// Tetrads appear in the order they joined the group.
type Quadruplex struct {
	Tetrads []Tetrad `json:"tetrads"`
}

// StackingGraph maps each tetrad to the tetrads it is stacked with, in
// discovery order.
type StackingGraph map[Tetrad][]Tetrad

// BuildStackingGraph tests every unordered pair of tetrads with [Stacked].
func BuildStackingGraph(tetrads []Tetrad, stacks []dssr.Stack) StackingGraph {
	g := make(StackingGraph)
	for i, a := range tetrads {
		for _, b := range tetrads[i+1:] {
			if Stacked(a, b, stacks) {
				g[a] = append(g[a], b)
				g[b] = append(g[b], a)
			}
		}
	}
	return g
}

// Cluster partitions tetrads into quadruplexes.
//
// Each quadruplex is seeded with the first unassigned tetrad in discovery
// order and grown along stacking edges until closed. Isolated tetrads form
// single-tetrad quadruplexes.
func Cluster(tetrads []Tetrad, stacks []dssr.Stack) []Quadruplex {
	return clusterGraph(tetrads, BuildStackingGraph(tetrads, stacks))
}

func clusterGraph(tetrads []Tetrad, g StackingGraph) []Quadruplex {
	assigned := make(map[Tetrad]bool, len(tetrads))
	var quads []Quadruplex
	for _, seed := range tetrads {
		if assigned[seed] {
			continue
		}
		assigned[seed] = true
		members := []Tetrad{seed}
		for i := 0; i < len(members); i++ {
			for _, next := range g[members[i]] {
				if !assigned[next] {
					assigned[next] = true
					members = append(members, next)
				}
			}
		}
		quads = append(quads, Quadruplex{Tetrads: members})
	}
	return quads
}
