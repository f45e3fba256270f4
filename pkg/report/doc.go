// Package report writes quadruplex analyses in the supported output formats.
//
// Writers are looked up by format name through a registry:
//
//	if err := report.Write(report.FormatText, os.Stdout, analysis); err != nil {
//	    return err
//	}
//
// The text format is the canonical report: one block per quadruplex listing
// its tetrads in stem order with their ONZ codes, or the single line "None"
// when nothing was found. The json format carries the full analysis, dot
// describes the tetrads as a Graphviz graph, and svg renders that graph.
package report
