package quadruplex_test

import (
	"fmt"

	"github.com/matzehuels/tetrado/pkg/dssr"
	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

func ExampleAnalyze() {
	nts := []dssr.Nucleotide{
		{ID: "A.DG1", Chain: "A", Index: 1},
		{ID: "A.DG4", Chain: "A", Index: 4},
		{ID: "A.DG7", Chain: "A", Index: 7},
		{ID: "A.DG10", Chain: "A", Index: 10},
	}
	pairs := []dssr.Pair{
		{NT1: "A.DG1", NT2: "A.DG4", LW: "cWH"},
		{NT1: "A.DG4", NT2: "A.DG7", LW: "cWH"},
		{NT1: "A.DG7", NT2: "A.DG10", LW: "cWH"},
		{NT1: "A.DG10", NT2: "A.DG1", LW: "cWH"},
	}
	s, _ := dssr.NewStructure(nts, pairs, nil)

	a := quadruplex.Analyze(s, quadruplex.Options{Strict: true})
	for _, q := range a.Quadruplexes {
		for _, e := range q.Entries {
			fmt.Println(e.Tetrad, e.ONZ)
		}
	}
	// Output:
	// A.DG1 A.DG4 A.DG7 A.DG10 +O
}

func ExampleStacked() {
	a := quadruplex.Tetrad{"G1", "G4", "G7", "G10"}
	b := quadruplex.Tetrad{"G2", "G5", "G8", "G11"}
	stacks := []dssr.Stack{
		{Members: []string{"G1", "G2"}},
		{Members: []string{"G4", "G5"}},
		{Members: []string{"G7", "G8"}},
		{Members: []string{"G10", "G11"}},
	}

	fmt.Println(quadruplex.Stacked(a, b, stacks))
	fmt.Println(quadruplex.Stacked(a, b, stacks[:3]))
	// Output:
	// true
	// false
}
