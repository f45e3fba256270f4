package dssr

import (
	"errors"
	"fmt"
	"strings"
)

// Geometry classes distinguished by strict pairing.
const (
	LWcWH = "cWH"
	LWcHW = "cHW"
)

// symmetrySeparator splits a symmetry/model prefix from the rest of an ID.
const symmetrySeparator = ":"

var (
	// ErrUnknownNucleotide is returned when a pair references a nucleotide
	// that is not listed in the document.
	ErrUnknownNucleotide = errors.New("unknown nucleotide")

	// ErrDuplicateNucleotide is returned when two nucleotides share an ID.
	ErrDuplicateNucleotide = errors.New("duplicate nucleotide")
)

// Nucleotide is a single residue of the annotated structure.
type Nucleotide struct {
	ID    string `json:"id"`
	Chain string `json:"chain"`
	Index int    `json:"index"`
}

// Pair is a base pair between two nucleotides with its geometry class.
type Pair struct {
	NT1 string `json:"nt1"`
	NT2 string `json:"nt2"`
	LW  string `json:"lw"`
}

// Stack is a set of nucleotides reported as mutually stacked.
type Stack struct {
	Members []string `json:"members"`
}

// Structure holds the annotation facts of one structure in document order.
//
// The zero value is an empty structure without pairs. Use [NewStructure]
// to build one with a working nucleotide lookup.
type Structure struct {
	Nucleotides []Nucleotide
	Pairs       []Pair
	Stacks      []Stack

	// HasPairs reports whether the document carried a pairs field at all.
	HasPairs bool

	byID map[string]int
}

// NewStructure builds a Structure and validates that every pair references
// a known nucleotide. Chains are disambiguated for symmetry-prefixed IDs.
func NewStructure(nts []Nucleotide, pairs []Pair, stacks []Stack) (*Structure, error) {
	s := &Structure{
		Nucleotides: make([]Nucleotide, 0, len(nts)),
		Pairs:       pairs,
		Stacks:      stacks,
		HasPairs:    pairs != nil,
		byID:        make(map[string]int, len(nts)),
	}
	for _, nt := range nts {
		if _, dup := s.byID[nt.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNucleotide, nt.ID)
		}
		nt.Chain = disambiguateChain(nt.ID, nt.Chain)
		s.byID[nt.ID] = len(s.Nucleotides)
		s.Nucleotides = append(s.Nucleotides, nt)
	}
	for i, p := range pairs {
		for _, id := range []string{p.NT1, p.NT2} {
			if _, ok := s.byID[id]; !ok {
				return nil, fmt.Errorf("pair %d: %w: %s", i, ErrUnknownNucleotide, id)
			}
		}
	}
	return s, nil
}

// disambiguateChain prefixes chain with the symmetry/model part of id.
func disambiguateChain(id, chain string) string {
	prefix, _, found := strings.Cut(id, symmetrySeparator)
	if !found {
		return chain
	}
	return prefix + symmetrySeparator + chain
}

// Nucleotide returns the nucleotide with the given ID.
func (s *Structure) Nucleotide(id string) (Nucleotide, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Nucleotide{}, false
	}
	return s.Nucleotides[i], true
}

// Index returns the sequence index of id, or -1 if it is unknown.
func (s *Structure) Index(id string) int {
	if nt, ok := s.Nucleotide(id); ok {
		return nt.Index
	}
	return -1
}

// Chain returns the (disambiguated) chain of id.
func (s *Structure) Chain(id string) string {
	nt, _ := s.Nucleotide(id)
	return nt.Chain
}
