// Package dssr loads base-pairing and base-stacking annotations produced by
// the DSSR structural-annotation tool.
//
// A DSSR JSON document is reduced to a [Structure]: the nucleotides in
// document order, the pairs with their Leontis-Westhof geometry class, and
// the stacks as ordered member lists. Order is preserved everywhere because
// the tetrad search and the stacking test downstream are order sensitive.
//
// # Loading
//
//	s, err := dssr.ReadFile("1jpq.json")
//	if err != nil {
//	    return err
//	}
//	if !s.HasPairs {
//	    // no pairing annotation at all
//	}
//
// Nucleotide identifiers that carry a symmetry/model prefix ("1:A.DG1") get
// their chain rewritten to "1:A" so symmetry mates never share a chain with
// the asymmetric unit.
//
// # Running the annotator
//
// [Runner] invokes the x3dna-dssr binary on a PDB or mmCIF file and returns
// the raw JSON document, for callers that do not have DSSR output yet.
package dssr
