package quadruplex

import "github.com/matzehuels/tetrado/pkg/dssr"

// memberSet is a working copy of a tetrad's members.
type memberSet map[string]struct{}

func newMemberSet(t Tetrad) memberSet {
	s := make(memberSet, len(t))
	for _, id := range t {
		s[id] = struct{}{}
	}
	return s
}

func (s memberSet) intersects(ids []string) bool {
	for _, id := range ids {
		if _, ok := s[id]; ok {
			return true
		}
	}
	return false
}

func (s memberSet) remove(ids []string) {
	for _, id := range ids {
		delete(s, id)
	}
}

// Stacked reports whether tetrads a and b are connected by stacking.
//
// Stacks are visited once, in order. A stack touching both remaining member
// sets is subtracted from both. The tetrads are stacked if both sets end up
// empty. Earlier stacks shrink the sets seen by later ones, so the result
// depends on stack order.
func Stacked(a, b Tetrad, stacks []dssr.Stack) bool {
	ra, rb := newMemberSet(a), newMemberSet(b)
	for _, st := range stacks {
		if ra.intersects(st.Members) && rb.intersects(st.Members) {
			ra.remove(st.Members)
			rb.remove(st.Members)
		}
	}
	return len(ra) == 0 && len(rb) == 0
}
