// Package board defines the board model the placement engine mutates.
//
// The engine never owns the board. It looks components up by reference,
// writes positions and orientations, and manages the drawing primitives it
// created itself, identified by their tag. Everything else on the board is
// user-authored and must not be touched.
//
// Two implementations are provided: [Memory], a plain in-memory board used
// for tests and as the working representation, and [Document], a JSON-backed
// board file built on top of it.
package board

import (
	"fmt"

	"github.com/mechwright/switchyard/pkg/geom"
)

// Footprint is an addressable component slot on the board.
type Footprint interface {
	// Ref returns the reference designator, e.g. "SW7" or "D7".
	Ref() string

	// Position returns the current board-space position in mm.
	Position() geom.Point

	// Orientation returns the current rotation in degrees.
	Orientation() float64

	// SetPosition moves the footprint to a board-space position in mm.
	SetPosition(p geom.Point)

	// SetOrientation rotates the footprint. Angle is in degrees.
	SetOrientation(deg float64)
}

// Segment describes one straight drawing primitive.
type Segment struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
	Width float64    `json:"width"` // stroke width in mm
	Layer string     `json:"layer"`
	Tag   string     `json:"tag,omitempty"`
}

// Drawing is a handle to a drawing primitive on the board.
type Drawing interface {
	// ID identifies the drawing within its board.
	ID() string

	// Tag returns the ownership marker the drawing was created with.
	// User-authored drawings have an empty tag.
	Tag() string

	// Segment returns the drawing's geometry.
	Segment() Segment
}

// Board is the mutable board model consumed by the placement engine.
// Implementations are not safe for concurrent use; the engine performs one
// linear pass of reads and writes and assumes exclusive access.
type Board interface {
	// Footprint looks a component up by reference designator.
	Footprint(ref string) (Footprint, bool)

	// FootprintRefs returns every reference designator on the board, sorted.
	FootprintRefs() []string

	// Drawings returns all drawing primitives currently on the board.
	Drawings() []Drawing

	// RemoveDrawing deletes a drawing primitive.
	RemoveDrawing(d Drawing)

	// AddSegment creates a line segment drawing and returns its handle.
	AddSegment(s Segment) Drawing

	// Refresh requests a visual redraw. Fire-and-forget.
	Refresh()
}

// SwitchRef returns the reference designator for switch n.
func SwitchRef(n int) string {
	return fmt.Sprintf("SW%d", n)
}

// DiodeRef returns the reference designator for the diode paired with
// switch n. Switch and diode share the index.
func DiodeRef(n int) string {
	return fmt.Sprintf("D%d", n)
}
