package board

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mechwright/switchyard/pkg/geom"
)

// Memory is an in-memory board. It keeps footprints and drawings in plain
// maps and slices and counts mutations, which lets tests assert that a fatal
// configuration error left the board untouched.
type Memory struct {
	footprints map[string]*memFootprint
	drawings   []*memDrawing

	mutations int
	refreshes int
}

// NewMemory creates an empty in-memory board.
func NewMemory() *Memory {
	return &Memory{footprints: make(map[string]*memFootprint)}
}

// AddFootprint registers an empty component slot under the given reference.
// Adding an existing reference is a no-op.
func (m *Memory) AddFootprint(ref string) {
	if _, ok := m.footprints[ref]; ok {
		return
	}
	m.footprints[ref] = &memFootprint{board: m, ref: ref}
}

// Footprint looks a component up by reference designator.
func (m *Memory) Footprint(ref string) (Footprint, bool) {
	fp, ok := m.footprints[ref]
	if !ok {
		return nil, false
	}
	return fp, true
}

// FootprintRefs returns all registered references in sorted order.
func (m *Memory) FootprintRefs() []string {
	refs := make([]string, 0, len(m.footprints))
	for ref := range m.footprints {
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	return refs
}

// Drawings returns all drawing primitives currently on the board.
func (m *Memory) Drawings() []Drawing {
	out := make([]Drawing, len(m.drawings))
	for i, d := range m.drawings {
		out[i] = d
	}
	return out
}

// AddSegment creates a line segment drawing and returns its handle.
func (m *Memory) AddSegment(s Segment) Drawing {
	d := &memDrawing{id: uuid.NewString(), seg: s}
	m.drawings = append(m.drawings, d)
	m.mutations++
	return d
}

// RemoveDrawing deletes a drawing primitive. Unknown handles are ignored.
func (m *Memory) RemoveDrawing(d Drawing) {
	for i, existing := range m.drawings {
		if existing.id == d.ID() {
			m.drawings = slices.Delete(m.drawings, i, i+1)
			m.mutations++
			return
		}
	}
}

// Refresh counts redraw requests; there is nothing to repaint in memory.
func (m *Memory) Refresh() {
	m.refreshes++
}

// Mutations returns the number of writes applied to the board.
func (m *Memory) Mutations() int { return m.mutations }

// Refreshes returns the number of redraw requests received.
func (m *Memory) Refreshes() int { return m.refreshes }

type memFootprint struct {
	board *Memory
	ref   string
	pos   geom.Point
	angle float64
}

func (f *memFootprint) Ref() string          { return f.ref }
func (f *memFootprint) Position() geom.Point { return f.pos }
func (f *memFootprint) Orientation() float64 { return f.angle }

func (f *memFootprint) SetPosition(p geom.Point) {
	f.pos = p
	f.board.mutations++
}

func (f *memFootprint) SetOrientation(deg float64) {
	f.angle = deg
	f.board.mutations++
}

type memDrawing struct {
	id  string
	seg Segment
}

func (d *memDrawing) ID() string       { return d.id }
func (d *memDrawing) Tag() string      { return d.seg.Tag }
func (d *memDrawing) Segment() Segment { return d.seg }

var _ Board = (*Memory)(nil)
