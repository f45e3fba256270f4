package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

// None is the whole report when no quadruplex was found.
const None = "None"

// WriteText writes the plain text report.
//
// For each quadruplex: a "<N> tetrads" line, then every tetrad in stem order
// preceded by "stem #<k>" at each stem boundary, then a blank line. A tetrad
// line holds its four nucleotide IDs and its ONZ code separated by spaces;
// the code may be empty.
func WriteText(w io.Writer, a *quadruplex.Analysis) error {
	bw := bufio.NewWriter(w)
	if a.Empty() {
		fmt.Fprintln(bw, None)
		return bw.Flush()
	}

	for _, q := range a.Quadruplexes {
		fmt.Fprintf(bw, "%d tetrads\n", len(q.Entries))
		for _, e := range q.Entries {
			if e.StemStart {
				fmt.Fprintf(bw, "stem #%d\n", e.Stem)
			}
			t := e.Tetrad
			fmt.Fprintln(bw, t[0], t[1], t[2], t[3], string(e.ONZ))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
