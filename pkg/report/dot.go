package report

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

// onzColors maps ONZ classes to edge colors.
var onzColors = map[quadruplex.ONZ]string{
	quadruplex.ONZPlusO: "#1b9e77",
	quadruplex.ONZMinO:  "#66c2a5",
	quadruplex.ONZPlusN: "#d95f02",
	quadruplex.ONZMinN:  "#fc8d62",
	quadruplex.ONZPlusZ: "#7570b3",
	quadruplex.ONZMinZ:  "#8da0cb",
}

// ToDOT converts an analysis to Graphviz DOT.
//
// Each quadruplex becomes a cluster. Pairing edges follow the tetrad cycle
// and are colored by ONZ class; dashed edges link corresponding members of
// consecutive tetrads within a stem.
func ToDOT(a *quadruplex.Analysis) string {
	var buf bytes.Buffer
	buf.WriteString("digraph quadruplexes {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")

	if a != nil {
		for qi, q := range a.Quadruplexes {
			fmt.Fprintf(&buf, "\n  subgraph cluster_q%d {\n", qi+1)
			fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("quadruplex %d: %d tetrads, %d stems", qi+1, len(q.Entries), q.Stems))
			for ei, e := range q.Entries {
				writeTetrad(&buf, e)
				if ei > 0 && !e.StemStart {
					writeStacking(&buf, q.Entries[ei-1].Tetrad, e.Tetrad)
				}
			}
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeTetrad(buf *bytes.Buffer, e quadruplex.Entry) {
	color, ok := onzColors[e.ONZ]
	if !ok {
		color = "black"
	}
	label := string(e.ONZ)
	for i, id := range e.Tetrad {
		next := e.Tetrad[(i+1)%len(e.Tetrad)]
		attrs := fmt.Sprintf("color=%q", color)
		if i == 0 && label != "" {
			attrs += fmt.Sprintf(", label=%q", label)
		}
		fmt.Fprintf(buf, "    %q -> %q [%s];\n", id, next, attrs)
	}
}

func writeStacking(buf *bytes.Buffer, prev, cur quadruplex.Tetrad) {
	for i := range cur {
		fmt.Fprintf(buf, "    %q -> %q [style=dashed, dir=none, color=grey];\n", prev[i], cur[i])
	}
}

// WriteDOT writes the DOT description of a.
func WriteDOT(w io.Writer, a *quadruplex.Analysis) error {
	_, err := io.WriteString(w, ToDOT(a))
	return err
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSVG renders a through Graphviz and writes the SVG.
func WriteSVG(w io.Writer, a *quadruplex.Analysis) error {
	svg, err := RenderSVG(context.Background(), ToDOT(a))
	if err != nil {
		return err
	}
	_, err = w.Write(svg)
	return err
}
