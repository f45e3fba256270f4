package quadruplex

import (
	"testing"

	"github.com/matzehuels/tetrado/pkg/dssr"
)

func TestFindTetradsSingleCycle(t *testing.T) {
	s := structure(t, seq(1, 4), cycle(1, 2, 3, 4))
	pg := BuildPairGraph(s, false)

	tetrads := FindTetrads(pg, s)
	if len(tetrads) != 1 {
		t.Fatalf("len(tetrads) = %d, want 1", len(tetrads))
	}
	if want := (Tetrad{"G1", "G2", "G3", "G4"}); tetrads[0] != want {
		t.Errorf("tetrad = %v, want %v", tetrads[0], want)
	}
	checkTetradInvariants(t, pg, s, tetrads)
}

func TestFindTetradsCanonicalRotation(t *testing.T) {
	// The first pair makes G7 the first start candidate.
	s := structure(t, []int{3, 5, 7, 9}, []dssr.Pair{
		{NT1: "G7", NT2: "G9", LW: "cWH"},
		{NT1: "G9", NT2: "G3", LW: "cWH"},
		{NT1: "G3", NT2: "G5", LW: "cWH"},
		{NT1: "G5", NT2: "G7", LW: "cWH"},
	})
	pg := BuildPairGraph(s, true)

	tetrads := FindTetrads(pg, s)
	if len(tetrads) != 1 {
		t.Fatalf("len(tetrads) = %d, want 1", len(tetrads))
	}
	if want := (Tetrad{"G3", "G5", "G7", "G9"}); tetrads[0] != want {
		t.Errorf("tetrad = %v, want %v", tetrads[0], want)
	}
}

func TestFindTetradsGreedyExclusion(t *testing.T) {
	// G1-G2-G3-G4 and G1-G2-G3-G5 share three members; only the first wins.
	pairs := append(cycle(1, 2, 3, 4),
		dssr.Pair{NT1: "G3", NT2: "G5", LW: "cWH"},
		dssr.Pair{NT1: "G5", NT2: "G1", LW: "cWH"},
	)
	s := structure(t, seq(1, 5), pairs)
	pg := BuildPairGraph(s, false)

	tetrads := FindTetrads(pg, s)
	if len(tetrads) != 1 {
		t.Fatalf("len(tetrads) = %d, want 1: %v", len(tetrads), tetrads)
	}
	if want := (Tetrad{"G1", "G2", "G3", "G4"}); tetrads[0] != want {
		t.Errorf("tetrad = %v, want %v", tetrads[0], want)
	}
	checkTetradInvariants(t, pg, s, tetrads)
}

func TestFindTetradsDisjointCycles(t *testing.T) {
	pairs := append(cycle(1, 4, 7, 10), cycle(2, 5, 8, 11)...)
	s := structure(t, []int{1, 2, 4, 5, 7, 8, 10, 11}, pairs)
	pg := BuildPairGraph(s, false)

	tetrads := FindTetrads(pg, s)
	want := []Tetrad{{"G1", "G4", "G7", "G10"}, {"G2", "G5", "G8", "G11"}}
	if len(tetrads) != len(want) {
		t.Fatalf("len(tetrads) = %d, want %d", len(tetrads), len(want))
	}
	for i := range want {
		if tetrads[i] != want[i] {
			t.Errorf("tetrads[%d] = %v, want %v", i, tetrads[i], want[i])
		}
	}
	checkTetradInvariants(t, pg, s, tetrads)
}

func TestFindTetradsStrictReverseEdge(t *testing.T) {
	// The closing pair is cHW from G4 to G1, which yields G1->G4 only.
	pairs := []dssr.Pair{
		{NT1: "G1", NT2: "G2", LW: "cWH"},
		{NT1: "G2", NT2: "G3", LW: "cWH"},
		{NT1: "G3", NT2: "G4", LW: "cWH"},
		{NT1: "G4", NT2: "G1", LW: "cHW"},
	}
	s := structure(t, seq(1, 4), pairs)

	if got := FindTetrads(BuildPairGraph(s, true), s); len(got) != 0 {
		t.Errorf("strict: tetrads = %v, want none", got)
	}
	if got := FindTetrads(BuildPairGraph(s, false), s); len(got) != 1 {
		t.Errorf("non-strict: len(tetrads) = %d, want 1", len(got))
	}
}

func TestFindTetradsStrictMirrored(t *testing.T) {
	// cHW pairs listed the other way round describe the same directed cycle.
	pairs := []dssr.Pair{
		{NT1: "G2", NT2: "G1", LW: "cHW"},
		{NT1: "G3", NT2: "G2", LW: "cHW"},
		{NT1: "G4", NT2: "G3", LW: "cHW"},
		{NT1: "G1", NT2: "G4", LW: "cHW"},
	}
	s := structure(t, seq(1, 4), pairs)
	pg := BuildPairGraph(s, true)

	tetrads := FindTetrads(pg, s)
	if len(tetrads) != 1 {
		t.Fatalf("len(tetrads) = %d, want 1", len(tetrads))
	}
	if want := (Tetrad{"G1", "G2", "G3", "G4"}); tetrads[0] != want {
		t.Errorf("tetrad = %v, want %v", tetrads[0], want)
	}
	checkTetradInvariants(t, pg, s, tetrads)
}

func TestFindTetradsNoCycle(t *testing.T) {
	s := structure(t, seq(1, 4), []dssr.Pair{
		{NT1: "G1", NT2: "G2", LW: "cWW"},
		{NT1: "G2", NT2: "G3", LW: "cWW"},
		{NT1: "G3", NT2: "G4", LW: "cWW"},
	})
	if got := FindTetrads(BuildPairGraph(s, false), s); len(got) != 0 {
		t.Errorf("tetrads = %v, want none", got)
	}
}

func TestTetradHelpers(t *testing.T) {
	tt := Tetrad{"A.DG1", "A.DG5", "A.DG9", "A.DG13"}
	if got := tt.String(); got != "A.DG1 A.DG5 A.DG9 A.DG13" {
		t.Errorf("String() = %q", got)
	}
	if !tt.Contains("A.DG9") || tt.Contains("A.DG2") {
		t.Error("Contains() mismatch")
	}
}
