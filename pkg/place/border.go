package place

import (
	"context"
	"math"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/geom"
	"github.com/mechwright/switchyard/pkg/observability"
	"github.com/mechwright/switchyard/pkg/params"
)

// clearBorder removes every drawing tagged as generated by a previous run.
// Removing before adding is what keeps repeated runs from accumulating
// border segments; user-authored drawings are never touched.
func (e *Engine) clearBorder(ctx context.Context) int {
	removed := 0
	for _, d := range e.board.Drawings() {
		if d.Tag() == BorderTag {
			e.board.RemoveDrawing(d)
			removed++
		}
	}
	if removed > 0 {
		e.logger.Debug("removed generated border", "segments", removed)
	}
	observability.Placement().OnBorderCleared(ctx, removed)
	return removed
}

// drawBorder computes the rectangular outline enclosing the layout and adds
// it as four tagged segments. centerY is the design-space y of the thumb
// circle center; the outline extends however far it reaches past the frame
// border.
func (e *Engine) drawBorder(ctx context.Context, centerY float64) geom.Rect {
	// Border synthesis owns its own cleanup so it is idempotent even when
	// invoked outside a full run.
	e.clearBorder(ctx)

	spacing := e.params.Value(params.SwitchSpacing)
	frame := e.params.Value(params.FrameBorder)

	width := 2*frame + float64(NumCols-1)*spacing
	height := 2*frame + 2*spacing + math.Abs(centerY-frame)

	// The outline is a direct board-space rectangle: the page offset is the
	// top-left corner and the board body extends down the page.
	rect := geom.Rect{
		X0: e.xform.OffsetX,
		Y0: e.xform.OffsetY,
		X1: width + e.xform.OffsetX,
		Y1: e.xform.OffsetY - height,
	}

	edges := [4][2]geom.Point{
		{{X: rect.X0, Y: rect.Y0}, {X: rect.X1, Y: rect.Y0}}, // top
		{{X: rect.X1, Y: rect.Y0}, {X: rect.X1, Y: rect.Y1}}, // right
		{{X: rect.X1, Y: rect.Y1}, {X: rect.X0, Y: rect.Y1}}, // bottom
		{{X: rect.X0, Y: rect.Y1}, {X: rect.X0, Y: rect.Y0}}, // left
	}

	for i, edge := range edges {
		e.board.AddSegment(board.Segment{
			Start: edge[0],
			End:   edge[1],
			Width: BorderStroke,
			Layer: EdgeLayer,
			Tag:   BorderTag,
		})
		e.logger.Info("border segment",
			"index", i,
			"x1", edge[0].X, "y1", edge[0].Y,
			"x2", edge[1].X, "y2", edge[1].Y)
		observability.Placement().OnBorderSegment(ctx, i, edge[0].X, edge[0].Y, edge[1].X, edge[1].Y)
	}

	e.logger.Info("border created", "width", width, "height", height)
	return rect
}
