package place

import (
	"context"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/geom"
	"github.com/mechwright/switchyard/pkg/params"
)

// GridSwitchNumber returns the switch number for grid column c, row r
// (both 0-indexed). Numbering is column-major starting at 1.
func GridSwitchNumber(c, r int) int {
	return c*NumRows + r + 1
}

// GridDesignPos returns the design-space position of the grid switch at
// column c, row r for the given parameter set.
func GridDesignPos(set params.Set, c, r int) geom.Point {
	spacing := set.Value(params.SwitchSpacing)
	border := set.Value(params.FrameBorder)
	return geom.Point{
		X: border + float64(c)*spacing,
		Y: border + float64(r)*spacing + set.ColOffset(c),
	}
}

// placeGrid positions the primary switch grid and its diodes. Each diode
// sits DiodeOffset below its switch in design space, unrotated. Switch and
// diode lookups are independent: an absent switch does not prevent its diode
// from being placed at the computed location.
//
// The returned anchor is the design-space position of the switch at the last
// column, first row, which the thumb cluster hangs off.
func (e *Engine) placeGrid(ctx context.Context, res *Result) geom.Point {
	for c := 0; c < NumCols; c++ {
		for r := 0; r < NumRows; r++ {
			n := GridSwitchNumber(c, r)
			pos := GridDesignPos(e.params, c, r)

			e.placeFootprint(ctx, board.SwitchRef(n), pos, res)
			e.placeFootprint(ctx, board.DiodeRef(n), pos.Add(0, -DiodeOffset), res)
		}
	}

	return GridDesignPos(e.params, NumCols-1, 0)
}
