// Package geom provides the 2-D primitives and coordinate conversion used by
// the placement engine.
//
// Two coordinate conventions are in play. Design space is where all
// parametric reasoning happens: the origin sits at the frame corner and y
// increases upward. Board space is what the layout tool consumes: y increases
// downward and the whole design is shifted by a fixed page offset so it lands
// inside the visible page area.
//
// Every conversion between the two goes through [Transform.ToBoard]. Keeping
// the sign flip in one place is the whole point of this package.
package geom

import "math"

// Point is a position in millimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Transform converts design-space coordinates to board-space coordinates.
// The offsets are chosen so the design lands inside the host tool's page.
type Transform struct {
	OffsetX float64
	OffsetY float64
}

// Page is the transform for the standard page placement: 40 mm from the left
// edge, 120 mm down.
var Page = Transform{OffsetX: 40, OffsetY: 120}

// ToBoard converts a design-space point to board space.
// Design y increases upward, board y increases downward.
func (t Transform) ToBoard(p Point) Point {
	return Point{X: p.X + t.OffsetX, Y: -p.Y + t.OffsetY}
}

// Polar returns the point at the given radius and angle from center.
// The angle is in degrees, standard mathematical convention: 0° points along
// +x and angles increase counter-clockwise.
func Polar(center Point, radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Rect is an axis-aligned rectangle in board space.
type Rect struct {
	X0, Y0 float64 // first corner
	X1, Y1 float64 // opposite corner
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return math.Abs(r.X1 - r.X0)
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return math.Abs(r.Y1 - r.Y0)
}
