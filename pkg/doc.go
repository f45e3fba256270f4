// Package pkg provides the core libraries for tetrado.
//
// # Overview
//
// Tetrado finds tetrads (four nucleotides joined by a directed cycle of
// base pairs) in DSSR annotations of nucleic acid structures, groups
// stacked tetrads into quadruplexes, and classifies each quadruplex into
// stems and ONZ topologies. The pkg directory is organized into:
//
//  1. [dssr] - DSSR documents: decoding and running the annotator
//  2. [quadruplex] - Detection: pairing graph, tetrads, stacking, clustering, classification
//  3. [report] - Output formats (text, JSON, DOT, SVG)
//  4. [pipeline] - Orchestration with caching and archiving
//  5. [cache], [store], [config], [observability], [errors] - Infrastructure
//
// # Architecture
//
// The typical data flow through tetrado:
//
//	PDB/mmCIF file
//	     ↓
//	[dssr] Runner (x3dna-dssr --json)
//	     ↓
//	[dssr] Parse → Structure
//	     ↓
//	[quadruplex] Analyze → tetrads, quadruplexes, stems, ONZ
//	     ↓
//	[report] text/JSON/DOT/SVG
//
// # Quick Start
//
//	s, err := dssr.ReadFile("1jpq.json")
//	if err != nil {
//	    return err
//	}
//	a := quadruplex.Analyze(s, quadruplex.Options{Strict: true})
//	report.WriteText(os.Stdout, a)
//
// See the package documentation of each subpackage for details.
package pkg
