// Package matrix renders the switch-to-diode wiring of a board as a
// node-link diagram.
//
// Every switch is paired with its diode (SW7 drives D7). The diagram groups
// the main grid by column and the thumb cluster into its own block, which
// makes it easy to eyeball a netlist before routing.
//
// Convert to DOT, then render:
//
//	dot := matrix.ToDOT(matrix.Options{})
//	svg, err := matrix.RenderSVG(ctx, dot)
package matrix

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/place"
)

// Options configures diagram generation.
type Options struct {
	// Detailed includes the grid coordinate in switch labels.
	// When false, only the reference designator is shown.
	Detailed bool
}

// ToDOT produces a Graphviz DOT description of the switch matrix. Each
// column of the main grid becomes a cluster, as does the thumb group, and
// every switch points at its diode.
func ToDOT(opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph matrix {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")

	for col := 0; col < place.NumCols; col++ {
		fmt.Fprintf(&buf, "\n  subgraph cluster_col%d {\n", col)
		fmt.Fprintf(&buf, "    label=\"col %d\";\n", col)
		buf.WriteString("    style=dashed;\n")
		for row := 0; row < place.NumRows; row++ {
			n := place.GridSwitchNumber(col, row)
			label := board.SwitchRef(n)
			if opts.Detailed {
				label = fmt.Sprintf("%s\\nc%d r%d", label, col, row)
			}
			fmt.Fprintf(&buf, "    %q [label=\"%s\"];\n", board.SwitchRef(n), label)
			fmt.Fprintf(&buf, "    %q [fillcolor=lightgrey];\n", board.DiodeRef(n))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n  subgraph cluster_thumb {\n")
	buf.WriteString("    label=\"thumb\";\n")
	buf.WriteString("    style=dashed;\n")
	for n := place.NumGridSwitches + 1; n <= place.NumSwitches; n++ {
		fmt.Fprintf(&buf, "    %q;\n", board.SwitchRef(n))
		fmt.Fprintf(&buf, "    %q [fillcolor=lightgrey];\n", board.DiodeRef(n))
	}
	buf.WriteString("  }\n\n")

	for n := 1; n <= place.NumSwitches; n++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", board.SwitchRef(n), board.DiodeRef(n))
	}

	buf.WriteString("}\n")
	return buf.String()
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the document starts
// at the origin with explicit pixel dimensions. Graphviz emits point-based
// sizes with an offset viewBox, which scales badly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
