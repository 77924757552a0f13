// Package logo generates the project's circle-pattern logo as SVG.
//
// The mark starts from a set of seed circles (a dot-matrix pattern) and
// grows decoration by repeatedly spawning smaller circles at the four grid
// corners around every existing circle. Circles landing on an occupied
// position are deduplicated, keeping the larger radius.
//
// This is a standalone drawing utility: it shares no state or algorithm with
// the placement engine.
package logo

import (
	"bytes"
	"fmt"
	"math"
)

// Circle is one dot of the mark. Fill defaults to black, stroke to none.
type Circle struct {
	CX, CY      float64
	R           float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// posKey is a quantized position used for overlap detection. Coordinates are
// keyed at micrometer resolution so float noise cannot split a position into
// two keys.
type posKey struct {
	x, y int64
}

func keyFor(x, y float64) posKey {
	return posKey{x: int64(math.Round(x * 1000)), y: int64(math.Round(y * 1000))}
}

// CornerCircles spawns four smaller circles around each input circle at the
// corners (±gridSize/2, ±gridSize/2), with radius shrunk by radiusFactor.
// Style attributes are inherited from the parent. Where corners of different
// parents coincide, only the largest circle survives; on an exact radius tie
// the first one placed wins.
func CornerCircles(circles []Circle, gridSize, radiusFactor float64) []Circle {
	offset := gridSize / 2
	corners := [4][2]float64{
		{-offset, -offset},
		{offset, -offset},
		{-offset, offset},
		{offset, offset},
	}

	index := make(map[posKey]int)
	var out []Circle

	for _, c := range circles {
		child := c
		child.R = c.R / radiusFactor

		for _, corner := range corners {
			child.CX = c.CX + corner[0]
			child.CY = c.CY + corner[1]

			key := keyFor(child.CX, child.CY)
			if i, ok := index[key]; ok {
				if child.R > out[i].R {
					out[i] = child
				}
				continue
			}
			index[key] = len(out)
			out = append(out, child)
		}
	}
	return out
}

// Grow runs CornerCircles once per shrink factor, feeding each generation's
// output into the next, and returns the seeds plus every generation.
func Grow(seeds []Circle, gridSize float64, factors []float64) []Circle {
	all := append([]Circle(nil), seeds...)
	gen := seeds
	for _, f := range factors {
		gen = CornerCircles(gen, gridSize, f)
		all = append(all, gen...)
	}
	return all
}

// FromPattern converts a dot-matrix pattern to seed circles. Every
// non-space character becomes a circle; rows are top to bottom. pitch is the
// distance between adjacent dots and r the dot radius.
func FromPattern(pattern []string, pitch, r float64) []Circle {
	var out []Circle
	for row, line := range pattern {
		for col, ch := range line {
			if ch == ' ' {
				continue
			}
			out = append(out, Circle{
				CX: pitch + float64(col)*pitch,
				CY: pitch + float64(row)*pitch,
				R:  r,
			})
		}
	}
	return out
}

// RenderSVG renders circles to an SVG document. Overlapping positions are
// deduplicated with the same largest-radius rule as CornerCircles.
func RenderSVG(circles []Circle, width, height float64) []byte {
	index := make(map[posKey]int)
	var unique []Circle
	for _, c := range circles {
		key := keyFor(c.CX, c.CY)
		if i, ok := index[key]; ok {
			if c.R > unique[i].R {
				unique[i] = c
			}
			continue
		}
		index[key] = len(unique)
		unique = append(unique, c)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	for _, c := range unique {
		fill := c.Fill
		if fill == "" {
			fill = "black"
		}
		stroke := c.Stroke
		if stroke == "" {
			stroke = "none"
		}
		strokeWidth := c.StrokeWidth
		if strokeWidth == 0 {
			strokeWidth = 1
		}
		fmt.Fprintf(&buf, `  <circle cx="%g" cy="%g" r="%g" fill="%s" stroke="%s" stroke-width="%g" />`+"\n",
			c.CX, c.CY, c.R, fill, stroke, strokeWidth)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
