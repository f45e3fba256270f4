package quadruplex

import (
	"testing"

	"github.com/matzehuels/tetrado/pkg/dssr"
)

func stacks(members ...[]string) []dssr.Stack {
	out := make([]dssr.Stack, len(members))
	for i, m := range members {
		out[i] = dssr.Stack{Members: m}
	}
	return out
}

func TestStacked(t *testing.T) {
	a := Tetrad{"a1", "a2", "a3", "a4"}
	b := Tetrad{"b1", "b2", "b3", "b4"}

	tests := []struct {
		name   string
		stacks []dssr.Stack
		want   bool
	}{
		{
			name: "column stacks cover both",
			stacks: stacks(
				[]string{"a1", "b1"}, []string{"a2", "b2"},
				[]string{"a3", "b3"}, []string{"a4", "b4"},
			),
			want: true,
		},
		{
			name: "one member left uncovered",
			stacks: stacks(
				[]string{"a1", "b1"}, []string{"a2", "b2"},
				[]string{"a3", "b3"}, []string{"a4", "x9"},
			),
			want: false,
		},
		{
			name: "stack touching a single tetrad is ignored",
			stacks: stacks(
				[]string{"a1", "a2", "a3", "a4"}, []string{"b1", "b2", "b3", "b4"},
			),
			want: false,
		},
		{
			name:   "one long stack",
			stacks: stacks([]string{"x1", "a1", "a2", "a3", "a4", "b1", "b2", "b3", "b4"}),
			want:   true,
		},
		{
			name:   "no stacks",
			stacks: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stacked(a, b, tt.stacks); got != tt.want {
				t.Errorf("Stacked(a, b) = %v, want %v", got, tt.want)
			}
			if got := Stacked(b, a, tt.stacks); got != tt.want {
				t.Errorf("Stacked(b, a) = %v, want %v (must be symmetric)", got, tt.want)
			}
		})
	}
}

func TestStackedSinglePassOrder(t *testing.T) {
	a := Tetrad{"a1", "a2", "a3", "a4"}
	b := Tetrad{"b1", "b2", "b3", "b4"}
	wide := []string{"a1", "a2", "a3", "a4", "b1"}
	narrow := []string{"a1", "b2", "b3", "b4"}

	// wide empties a first, so narrow no longer touches it.
	if Stacked(a, b, stacks(wide, narrow)) {
		t.Error("Stacked(wide, narrow) = true, want false")
	}
	if !Stacked(a, b, stacks(narrow, wide)) {
		t.Error("Stacked(narrow, wide) = false, want true")
	}
}

func TestStackedDoesNotMutateInput(t *testing.T) {
	a := Tetrad{"a1", "a2", "a3", "a4"}
	b := Tetrad{"b1", "b2", "b3", "b4"}
	st := stacks([]string{"a1", "a2", "a3", "a4", "b1", "b2", "b3", "b4"})

	Stacked(a, b, st)
	if a[0] != "a1" || len(st[0].Members) != 8 {
		t.Error("Stacked modified its inputs")
	}
}
