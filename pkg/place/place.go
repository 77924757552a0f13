// Package place computes the physical layout of the keyboard and applies it
// to a board model.
//
// The layout has a fixed topology: a 3×6 grid of primary switches (SW1..SW18,
// numbered column-major), two thumb switches offset from the last grid column
// (SW19, SW20), and two more thumb switches on a circular arc (SW21, SW22).
// Every switch is paired with a diode sharing its index.
//
// All geometric reasoning happens in design space (y up, origin at the frame
// corner); positions are converted to board space through geom.Transform
// exactly once, at the point of application. The generated board outline is
// tagged so a later run can find and remove it, which is what makes the
// engine safe to re-run against a live board.
package place

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/geom"
	"github.com/mechwright/switchyard/pkg/observability"
	"github.com/mechwright/switchyard/pkg/params"
)

const (
	// NumRows and NumCols define the primary switch grid.
	NumRows = 3
	NumCols = 6

	// NumGridSwitches is the number of switches in the primary grid.
	NumGridSwitches = NumRows * NumCols

	// NumSwitches is the total switch count including the thumb cluster.
	NumSwitches = NumGridSwitches + 4

	// DiodeOffset is the distance in mm from a switch center to its diode.
	// Grid diodes sit this far below the switch in design space; circular
	// diodes sit this far radially outward from the circle center.
	DiodeOffset = 8.0

	// BorderStroke is the stroke width in mm of generated border segments.
	BorderStroke = 0.15

	// EdgeLayer is the board layer border segments are drawn on.
	EdgeLayer = "Edge.Cuts"

	// BorderTag marks drawings created by this engine. It is the only
	// handle used to reclaim generated geometry on a later run.
	BorderTag = "AUTO_GENERATED_BORDER"

	// thumbBaseAngle puts the first offset thumb switch at the top of the
	// thumb circle; the circular switches fan out from there.
	thumbBaseAngle = 90.0
)

// Thumb cluster switch numbers. SW19 sits one column left of SW20, which
// sits one switch spacing below the last grid column; SW21 and SW22 ride the
// thumb circle.
const (
	leftThumbSwitch = 19
	topThumbSwitch  = 20
	firstArcSwitch  = 21
	secondArcSwitch = 22
)

// Refs returns the reference designators of every switch and diode slot the
// layout expects on the board, in index order.
func Refs() []string {
	refs := make([]string, 0, 2*NumSwitches)
	for n := 1; n <= NumSwitches; n++ {
		refs = append(refs, board.SwitchRef(n))
	}
	for n := 1; n <= NumSwitches; n++ {
		refs = append(refs, board.DiodeRef(n))
	}
	return refs
}

// Result summarizes one orchestrator run.
type Result struct {
	// Placed and Missing count footprint placements that succeeded and
	// references that were absent from the board.
	Placed  int
	Missing int

	// Anchor is the design-space position of the grid switch at the last
	// column, first row. The thumb cluster hangs off it.
	Anchor geom.Point

	// CircleCenter is the design-space center of the thumb circle.
	CircleCenter geom.Point

	// Border is the generated outline in board space.
	Border geom.Rect
}

// Engine sequences the placement algorithms against a board model.
// It performs one linear pass of reads and writes per Run and assumes
// exclusive access to the board for its duration.
type Engine struct {
	board  board.Board
	params params.Set
	xform  geom.Transform
	logger *log.Logger
}

// New creates an engine for the given board and parameter set.
// A nil logger falls back to log.Default().
func New(b board.Board, set params.Set, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		board:  b,
		params: set,
		xform:  geom.Page,
		logger: logger,
	}
}

// Run executes the full placement sequence: parameter validation, stale
// border cleanup, grid placement, thumb cluster placement, border synthesis,
// and a final redraw request.
//
// A missing required parameter aborts before any board mutation. A missing
// component reference is logged and skipped; the remaining components and
// the border are still placed from whatever was computed.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := e.params.Validate(); err != nil {
		e.logger.Error("parameter set incomplete", "err", err)
		observability.Placement().OnRunComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	res := &Result{}

	e.clearBorder(ctx)
	res.Anchor = e.placeGrid(ctx, res)
	res.CircleCenter = e.placeThumb(ctx, res.Anchor, res)
	res.Border = e.drawBorder(ctx, res.CircleCenter.Y)

	e.board.Refresh()

	e.logger.Info("placement complete",
		"placed", res.Placed,
		"missing", res.Missing,
		"width", res.Border.Width(),
		"height", res.Border.Height())
	observability.Placement().OnRunComplete(ctx, res.Placed, res.Missing, time.Since(start), nil)
	return res, nil
}

// placeFootprint converts a design-space position to board space and applies
// it to the named footprint. A missing reference is logged and skipped.
func (e *Engine) placeFootprint(ctx context.Context, ref string, design geom.Point, res *Result) bool {
	fp, ok := e.board.Footprint(ref)
	if !ok {
		res.Missing++
		e.logger.Warn("footprint not found", "ref", ref)
		observability.Placement().OnFootprintMissing(ctx, ref)
		return false
	}

	pos := e.xform.ToBoard(design)
	fp.SetPosition(pos)
	res.Placed++
	e.logger.Info("placed footprint", "ref", ref, "x", pos.X, "y", pos.Y)
	observability.Placement().OnFootprintPlaced(ctx, ref, pos.X, pos.Y)
	return true
}

// placeOriented places a footprint and sets its rotation.
func (e *Engine) placeOriented(ctx context.Context, ref string, design geom.Point, angleDeg float64, res *Result) bool {
	fp, ok := e.board.Footprint(ref)
	if !ok {
		res.Missing++
		e.logger.Warn("footprint not found", "ref", ref)
		observability.Placement().OnFootprintMissing(ctx, ref)
		return false
	}

	pos := e.xform.ToBoard(design)
	fp.SetPosition(pos)
	fp.SetOrientation(angleDeg)
	res.Placed++
	e.logger.Info("placed footprint", "ref", ref, "x", pos.X, "y", pos.Y, "angle", angleDeg)
	observability.Placement().OnFootprintPlaced(ctx, ref, pos.X, pos.Y)
	observability.Placement().OnFootprintOriented(ctx, ref, angleDeg)
	return true
}
