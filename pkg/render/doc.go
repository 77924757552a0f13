// Package render groups the visual output generators.
//
// # Overview
//
// Rendering is strictly downstream of placement: each subpackage reads a
// board or static layout data and produces an SVG document.
//
// # Board Preview
//
// The [boardsvg] subpackage draws a placed board (outline, switches, diodes)
// for inspection in a browser:
//
//	svg := boardsvg.Render(b, place.Refs(), boardsvg.Options{Labels: true})
//
// # Wiring Diagram
//
// The [matrix] subpackage renders the switch-to-diode wiring as a node-link
// diagram using Graphviz:
//
//	dot := matrix.ToDOT(matrix.Options{})
//	svg, err := matrix.RenderSVG(ctx, dot)
//
// # Logo
//
// The [logo] subpackage generates the project mark from a dot pattern
// decorated with shrinking corner circles.
//
// [boardsvg]: github.com/mechwright/switchyard/pkg/render/boardsvg
// [matrix]: github.com/mechwright/switchyard/pkg/render/matrix
// [logo]: github.com/mechwright/switchyard/pkg/render/logo
package render
