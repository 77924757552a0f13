package place

import (
	"context"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/geom"
	"github.com/mechwright/switchyard/pkg/params"
)

// ThumbAngle returns the angular position in degrees of arc switch i
// (1-based) for the given rotation step. Angles follow the standard
// mathematical convention: 0° along +x, counter-clockwise positive.
func ThumbAngle(step float64, i int) float64 {
	return thumbBaseAngle + float64(i)*step
}

// placeThumb positions the thumb cluster: two switches by fixed offsets from
// the grid anchor, then two switches on a circle below the first, each with
// its diode.
//
// SW20 sits one switch spacing below the anchor; SW19 sits one column to its
// left. Their diodes follow the grid rule. SW21 and SW22 ride a circle of
// ThumbRadius centered below SW20; each takes the orientation of its angular
// position, and its diode is pushed DiodeOffset further out along the same
// radial, rotated to match.
//
// Returns the design-space circle center for the border extent calculation.
func (e *Engine) placeThumb(ctx context.Context, anchor geom.Point, res *Result) geom.Point {
	spacing := e.params.Value(params.SwitchSpacing)
	radius := e.params.Value(params.ThumbRadius)
	step := e.params.Value(params.ThumbRotationAngle)

	top := anchor.Add(0, -spacing)
	left := top.Add(-spacing, 0)

	e.placeFootprint(ctx, board.SwitchRef(topThumbSwitch), top, res)
	e.placeFootprint(ctx, board.DiodeRef(topThumbSwitch), top.Add(0, -DiodeOffset), res)

	e.placeFootprint(ctx, board.SwitchRef(leftThumbSwitch), left, res)
	e.placeFootprint(ctx, board.DiodeRef(leftThumbSwitch), left.Add(0, -DiodeOffset), res)

	center := top.Add(0, -radius)

	for i, n := range []int{firstArcSwitch, secondArcSwitch} {
		angle := ThumbAngle(step, i+1)
		pos := geom.Polar(center, radius, angle)

		e.placeOriented(ctx, board.SwitchRef(n), pos, angle, res)
		e.placeOriented(ctx, board.DiodeRef(n), geom.Polar(pos, DiodeOffset, angle), angle, res)
	}

	return center
}
