// Package quadruplex finds and classifies nucleic-acid quadruplexes in an
// annotated structure.
//
// # Overview
//
// A tetrad is a planar quartet of nucleotides linked cyclically by base
// pairing. Tetrads stacked on top of each other form a quadruplex. The
// analysis runs in four stages, each exposed on its own:
//
//  1. [BuildPairGraph] turns pairs into an adjacency relation.
//  2. [FindTetrads] enumerates non-overlapping directed 4-cycles.
//  3. [Cluster] groups tetrads connected by [Stacked] into quadruplexes.
//  4. [Classify] orders each quadruplex, splits it into stems and assigns
//     the ONZ code to every single-chain tetrad.
//
// [Analyze] runs the whole chain on a [dssr.Structure].
//
// # Determinism
//
// Results depend on input order. The tetrad search is greedy: the first
// 4-cycle found wins and its members are excluded from every later cycle.
// The stacking test makes one pass over the stacks in document order. All
// containers feeding a decision are order preserving.
//
// # Strict Mode
//
// In strict mode only cWH/cHW pairs contribute edges and they are
// directional, so every tetrad found has a single consistent
// Watson-Crick/Hoogsteen orientation around the cycle.
//
// [dssr.Structure]: github.com/matzehuels/tetrado/pkg/dssr.Structure
package quadruplex
