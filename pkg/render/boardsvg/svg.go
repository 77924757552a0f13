// Package boardsvg renders a board model to SVG for visual inspection.
//
// Board coordinates are millimeters with y increasing down the page, which
// matches SVG user space, so positions map 1:1. The preview draws every
// drawing segment (the generated outline plus any user geometry), a keycap
// square for each switch, and a small body for each diode, rotated to its
// orientation.
package boardsvg

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/mechwright/switchyard/pkg/board"
)

const (
	// keycapSize is the drawn footprint of a switch in mm (MX spacing
	// leaves ~14 mm for the cutout).
	keycapSize = 14.0

	// diodeW and diodeL are the drawn diode body in mm.
	diodeW = 2.0
	diodeL = 4.0

	// margin is the whitespace around the drawing in mm.
	margin = 5.0
)

// Options configures the preview.
type Options struct {
	// Labels draws reference designators next to footprints.
	Labels bool
}

// Render draws the board to an SVG document.
func Render(b board.Board, refs []string, opts Options) []byte {
	minX, minY, maxX, maxY := bounds(b, refs)

	width := maxX - minX + 2*margin
	height := maxY - minY + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		minX-margin, minY-margin, width, height, width*4, height*4)
	buf.WriteString(`  <rect x="-10000" y="-10000" width="20000" height="20000" fill="#1a3d2e"/>` + "\n")

	for _, d := range b.Drawings() {
		seg := d.Segment()
		color := "#cccccc"
		if seg.Tag != "" {
			color = "#e8c547"
		}
		fmt.Fprintf(&buf,
			`  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.2f"/>`+"\n",
			seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y, color, math.Max(seg.Width, 0.15))
	}

	for _, ref := range refs {
		fp, ok := b.Footprint(ref)
		if !ok {
			continue
		}
		renderFootprint(&buf, fp, opts)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderFootprint(buf *bytes.Buffer, fp board.Footprint, opts Options) {
	pos := fp.Position()
	// Board angles are counter-clockwise in design terms; SVG rotates
	// clockwise in y-down space, so the sign flips.
	rotate := ""
	if a := fp.Orientation(); a != 0 {
		rotate = fmt.Sprintf(` transform="rotate(%.2f %.3f %.3f)"`, -a, pos.X, pos.Y)
	}

	if strings.HasPrefix(fp.Ref(), "SW") {
		fmt.Fprintf(buf,
			`  <rect x="%.3f" y="%.3f" width="%g" height="%g" fill="none" stroke="#9ad1aa" stroke-width="0.3"%s/>`+"\n",
			pos.X-keycapSize/2, pos.Y-keycapSize/2, keycapSize, keycapSize, rotate)
	} else {
		fmt.Fprintf(buf,
			`  <rect x="%.3f" y="%.3f" width="%g" height="%g" fill="#d08770" stroke="none"%s/>`+"\n",
			pos.X-diodeL/2, pos.Y-diodeW/2, diodeL, diodeW, rotate)
	}

	if opts.Labels {
		fmt.Fprintf(buf,
			`  <text x="%.3f" y="%.3f" font-size="2.2" fill="#eeeeee" text-anchor="middle">%s</text>`+"\n",
			pos.X, pos.Y+0.8, fp.Ref())
	}
}

// bounds computes the extent of everything drawable. An empty board gets a
// small non-degenerate box so the SVG stays valid.
func bounds(b board.Board, refs []string) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, d := range b.Drawings() {
		seg := d.Segment()
		grow(seg.Start.X, seg.Start.Y)
		grow(seg.End.X, seg.End.Y)
	}
	for _, ref := range refs {
		if fp, ok := b.Footprint(ref); ok {
			pos := fp.Position()
			grow(pos.X-keycapSize, pos.Y-keycapSize)
			grow(pos.X+keycapSize, pos.Y+keycapSize)
		}
	}

	if math.IsInf(minX, 1) {
		return 0, 0, 100, 100
	}
	return minX, minY, maxX, maxY
}
