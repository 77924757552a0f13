package place

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/geom"
	"github.com/mechwright/switchyard/pkg/params"
)

const eps = 1e-9

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// fullBoard returns a memory board with every expected slot registered.
func fullBoard() *board.Memory {
	m := board.NewMemory()
	for _, ref := range Refs() {
		m.AddFootprint(ref)
	}
	return m
}

func mustRun(t *testing.T, b board.Board, set params.Set) *Result {
	t.Helper()
	res, err := New(b, set, testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func position(t *testing.T, b board.Board, ref string) geom.Point {
	t.Helper()
	fp, ok := b.Footprint(ref)
	if !ok {
		t.Fatalf("footprint %s not on board", ref)
	}
	return fp.Position()
}

func orientation(t *testing.T, b board.Board, ref string) float64 {
	t.Helper()
	fp, ok := b.Footprint(ref)
	if !ok {
		t.Fatalf("footprint %s not on board", ref)
	}
	return fp.Orientation()
}

func TestRefs(t *testing.T) {
	refs := Refs()
	if len(refs) != 44 {
		t.Fatalf("Refs() returned %d references, want 44", len(refs))
	}
	if refs[0] != "SW1" || refs[21] != "SW22" || refs[22] != "D1" || refs[43] != "D22" {
		t.Errorf("unexpected reference ordering: %v", refs)
	}
}

func TestGridSwitchNumber(t *testing.T) {
	tests := []struct {
		c, r, want int
	}{
		{0, 0, 1},
		{0, 2, 3},
		{1, 0, 4},
		{5, 0, 16},
		{5, 2, 18},
	}
	for _, tt := range tests {
		if got := GridSwitchNumber(tt.c, tt.r); got != tt.want {
			t.Errorf("GridSwitchNumber(%d, %d) = %d, want %d", tt.c, tt.r, got, tt.want)
		}
	}
}

// Every grid switch must land at the closed-form board-space coordinate.
func TestGridClosedForm(t *testing.T) {
	set := params.Defaults()
	b := fullBoard()
	mustRun(t, b, set)

	spacing := set.Value(params.SwitchSpacing)
	frame := set.Value(params.FrameBorder)

	for c := 0; c < NumCols; c++ {
		for r := 0; r < NumRows; r++ {
			n := GridSwitchNumber(c, r)
			designX := frame + float64(c)*spacing
			designY := frame + float64(r)*spacing + set.ColOffset(c)

			want := geom.Point{X: designX + 40, Y: -designY + 120}
			got := position(t, b, board.SwitchRef(n))
			if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
				t.Errorf("SW%d at %v, want %v", n, got, want)
			}

			// Diode: same x, 8 mm below in design space, unrotated.
			wantDiode := geom.Point{X: want.X, Y: want.Y + DiodeOffset}
			gotDiode := position(t, b, board.DiodeRef(n))
			if math.Abs(gotDiode.X-wantDiode.X) > eps || math.Abs(gotDiode.Y-wantDiode.Y) > eps {
				t.Errorf("D%d at %v, want %v", n, gotDiode, wantDiode)
			}
			if a := orientation(t, b, board.DiodeRef(n)); a != 0 {
				t.Errorf("D%d orientation = %v, want 0", n, a)
			}
		}
	}
}

// Worked example from the reference parameters: SW1 at design (5,5) lands at
// board (45,115).
func TestReferenceExample(t *testing.T) {
	b := fullBoard()
	mustRun(t, b, params.Defaults())

	got := position(t, b, "SW1")
	if got.X != 45 || got.Y != 115 {
		t.Errorf("SW1 at %v, want (45, 115)", got)
	}
}

func TestThumbOffsetSwitches(t *testing.T) {
	set := params.Defaults()
	b := fullBoard()
	res := mustRun(t, b, set)

	// Anchor is column 5, row 0: design (102.5, 14).
	if math.Abs(res.Anchor.X-102.5) > eps || math.Abs(res.Anchor.Y-14) > eps {
		t.Fatalf("anchor = %v, want (102.5, 14)", res.Anchor)
	}

	// SW20 one spacing below the anchor, SW19 one column left of SW20.
	sw20 := position(t, b, "SW20")
	want20 := geom.Page.ToBoard(geom.Point{X: 102.5, Y: -5.5})
	if math.Abs(sw20.X-want20.X) > eps || math.Abs(sw20.Y-want20.Y) > eps {
		t.Errorf("SW20 at %v, want %v", sw20, want20)
	}

	sw19 := position(t, b, "SW19")
	want19 := geom.Page.ToBoard(geom.Point{X: 83, Y: -5.5})
	if math.Abs(sw19.X-want19.X) > eps || math.Abs(sw19.Y-want19.Y) > eps {
		t.Errorf("SW19 at %v, want %v", sw19, want19)
	}

	// Offset thumb diodes follow the grid rule and stay unrotated.
	for _, n := range []int{19, 20} {
		sw := position(t, b, board.SwitchRef(n))
		d := position(t, b, board.DiodeRef(n))
		if math.Abs(d.X-sw.X) > eps || math.Abs(d.Y-(sw.Y+DiodeOffset)) > eps {
			t.Errorf("D%d at %v, want 8 mm below SW%d at %v", n, d, n, sw)
		}
		if a := orientation(t, b, board.DiodeRef(n)); a != 0 {
			t.Errorf("D%d orientation = %v, want 0", n, a)
		}
	}
}

func TestThumbCircleCenter(t *testing.T) {
	b := fullBoard()
	res := mustRun(t, b, params.Defaults())

	// Center is ThumbRadius below SW20: design (102.5, -5.5 - 92.28).
	if math.Abs(res.CircleCenter.X-102.5) > eps || math.Abs(res.CircleCenter.Y-(-97.78)) > 1e-9 {
		t.Errorf("circle center = %v, want (102.5, -97.78)", res.CircleCenter)
	}
}

func TestThumbOrientations(t *testing.T) {
	set := params.Defaults() // ThumbRotationAngle = -12
	b := fullBoard()
	mustRun(t, b, set)

	if got := orientation(t, b, "SW21"); math.Abs(got-78) > eps {
		t.Errorf("SW21 orientation = %v, want 78", got)
	}
	if got := orientation(t, b, "SW22"); math.Abs(got-66) > eps {
		t.Errorf("SW22 orientation = %v, want 66", got)
	}
	if got := orientation(t, b, "D21"); math.Abs(got-78) > eps {
		t.Errorf("D21 orientation = %v, want 78", got)
	}
	if got := orientation(t, b, "D22"); math.Abs(got-66) > eps {
		t.Errorf("D22 orientation = %v, want 66", got)
	}
}

// A circular switch's diode must sit exactly DiodeOffset away along the
// switch's own orientation. The design→board transform is distance
// preserving, so the invariant holds in board space too.
func TestCircularDiodeRadialOffset(t *testing.T) {
	b := fullBoard()
	mustRun(t, b, params.Defaults())

	for _, n := range []int{21, 22} {
		sw := position(t, b, board.SwitchRef(n))
		d := position(t, b, board.DiodeRef(n))
		if dist := sw.Dist(d); math.Abs(dist-DiodeOffset) > eps {
			t.Errorf("D%d is %v mm from SW%d, want %v", n, dist, n, DiodeOffset)
		}

		// Direction check: in board space the y axis is flipped, so the
		// radial direction is (cos a, -sin a).
		angle := orientation(t, b, board.SwitchRef(n)) * math.Pi / 180
		wantX := sw.X + DiodeOffset*math.Cos(angle)
		wantY := sw.Y - DiodeOffset*math.Sin(angle)
		if math.Abs(d.X-wantX) > eps || math.Abs(d.Y-wantY) > eps {
			t.Errorf("D%d at %v, want (%v, %v)", n, d, wantX, wantY)
		}
	}
}

func TestBorderGeometry(t *testing.T) {
	set := params.Defaults()
	b := fullBoard()
	res := mustRun(t, b, set)

	if math.Abs(res.Border.Width()-107.5) > eps {
		t.Errorf("border width = %v, want 107.5", res.Border.Width())
	}
	// height = 2*5 + 2*19.5 + |-97.78 - 5| = 151.78
	if math.Abs(res.Border.Height()-151.78) > 1e-9 {
		t.Errorf("border height = %v, want 151.78", res.Border.Height())
	}
	if res.Border.X0 != 40 || res.Border.Y0 != 120 {
		t.Errorf("border origin = (%v, %v), want (40, 120)", res.Border.X0, res.Border.Y0)
	}

	segments := taggedSegments(b)
	if len(segments) != 4 {
		t.Fatalf("%d tagged segments on board, want 4", len(segments))
	}
	for _, d := range segments {
		seg := d.Segment()
		if seg.Width != BorderStroke {
			t.Errorf("segment stroke = %v, want %v", seg.Width, BorderStroke)
		}
		if seg.Layer != EdgeLayer {
			t.Errorf("segment layer = %q, want %q", seg.Layer, EdgeLayer)
		}
	}
}

// Re-running the orchestrator any number of times leaves exactly one
// generation of tagged segments.
func TestBorderIdempotence(t *testing.T) {
	b := fullBoard()
	set := params.Defaults()

	// A user-authored drawing must survive every run.
	user := b.AddSegment(board.Segment{
		Start: geom.Point{X: 0, Y: 0},
		End:   geom.Point{X: 10, Y: 10},
		Width: 0.3,
		Layer: "Cmts.User",
	})

	for k := 0; k < 3; k++ {
		mustRun(t, b, set)

		if got := len(taggedSegments(b)); got != 4 {
			t.Fatalf("after run %d: %d tagged segments, want 4", k+1, got)
		}
	}

	found := false
	for _, d := range b.Drawings() {
		if d.ID() == user.ID() {
			found = true
		}
	}
	if !found {
		t.Error("user-authored drawing was removed")
	}
	if got := len(b.Drawings()); got != 5 {
		t.Errorf("%d drawings on board, want 5 (4 border + 1 user)", got)
	}
}

// A missing grid footprint is skipped; everything else, including its own
// diode and the border, is still placed.
func TestMissingSwitchSkipped(t *testing.T) {
	b := board.NewMemory()
	for _, ref := range Refs() {
		if ref == "SW5" {
			continue
		}
		b.AddFootprint(ref)
	}

	res := mustRun(t, b, params.Defaults())

	if res.Missing != 1 {
		t.Errorf("Missing = %d, want 1", res.Missing)
	}
	if res.Placed != 43 {
		t.Errorf("Placed = %d, want 43", res.Placed)
	}

	// D5 is placed even though SW5 is absent.
	if got := position(t, b, "D5"); got == (geom.Point{}) {
		t.Error("D5 should be placed despite missing SW5")
	}
	for n := 6; n <= 18; n++ {
		if got := position(t, b, board.SwitchRef(n)); got == (geom.Point{}) {
			t.Errorf("SW%d should be placed despite missing SW5", n)
		}
	}
	if got := len(taggedSegments(b)); got != 4 {
		t.Errorf("border should still be created, got %d segments", got)
	}
	if b.Refreshes() != 1 {
		t.Errorf("Refreshes = %d, want 1", b.Refreshes())
	}
}

// A missing required parameter aborts before any board mutation: no
// placements, no border removal, no redraw.
func TestMissingParameterAbortsBeforeMutation(t *testing.T) {
	b := fullBoard()

	// Simulate a stale border from an earlier run; it must survive the
	// aborted run untouched.
	b.AddSegment(board.Segment{Layer: EdgeLayer, Tag: BorderTag})
	before := b.Mutations()

	set := params.Defaults()
	delete(set, params.ThumbRadius)

	_, err := New(b, set, testLogger()).Run(context.Background())
	if err == nil {
		t.Fatal("Run should fail on a missing parameter")
	}
	var missing *params.MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("error should be *MissingParameterError, got %T", err)
	}
	if missing.Key != params.ThumbRadius {
		t.Errorf("error names %q, want %q", missing.Key, params.ThumbRadius)
	}

	if b.Mutations() != before {
		t.Errorf("board mutated %d times during aborted run", b.Mutations()-before)
	}
	if got := len(taggedSegments(b)); got != 1 {
		t.Errorf("stale border should be untouched, got %d tagged segments", got)
	}
	if b.Refreshes() != 0 {
		t.Error("no redraw should be requested on an aborted run")
	}
}

func TestFullRunCounts(t *testing.T) {
	b := fullBoard()
	res := mustRun(t, b, params.Defaults())

	if res.Placed != 44 || res.Missing != 0 {
		t.Errorf("Placed=%d Missing=%d, want 44/0", res.Placed, res.Missing)
	}
}

func taggedSegments(b board.Board) []board.Drawing {
	var out []board.Drawing
	for _, d := range b.Drawings() {
		if d.Tag() == BorderTag {
			out = append(out, d)
		}
	}
	return out
}
