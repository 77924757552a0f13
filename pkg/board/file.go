package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mechwright/switchyard/pkg/geom"
)

// Document is a board persisted as a JSON file. It behaves exactly like a
// [Memory] board; Save writes the current state back to disk.
type Document struct {
	*Memory
	path string
}

// NewDocument creates an empty document that will save to path.
func NewDocument(path string) *Document {
	return &Document{Memory: NewMemory(), path: path}
}

// LoadDocument reads a board document from a JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var state documentState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse board document %s: %w", path, err)
	}

	doc := NewDocument(path)
	for _, fs := range state.Footprints {
		doc.footprints[fs.Ref] = &memFootprint{
			board: doc.Memory,
			ref:   fs.Ref,
			pos:   geom.Point{X: fs.X, Y: fs.Y},
			angle: fs.Angle,
		}
	}
	for _, ds := range state.Drawings {
		doc.drawings = append(doc.drawings, &memDrawing{id: ds.ID, seg: ds.Segment})
	}
	// Loading is not a mutation.
	doc.mutations = 0
	return doc, nil
}

// Path returns the file the document saves to.
func (d *Document) Path() string { return d.path }

// SetPath changes the file the document saves to.
func (d *Document) SetPath(path string) { d.path = path }

// Save writes the board state to its file.
func (d *Document) Save() error {
	state := documentState{
		Footprints: make([]footprintState, 0, len(d.footprints)),
		Drawings:   make([]drawingState, 0, len(d.drawings)),
	}
	for _, ref := range d.FootprintRefs() {
		fp := d.footprints[ref]
		state.Footprints = append(state.Footprints, footprintState{
			Ref:   fp.ref,
			X:     fp.pos.X,
			Y:     fp.pos.Y,
			Angle: fp.angle,
		})
	}
	for _, dr := range d.drawings {
		state.Drawings = append(state.Drawings, drawingState{ID: dr.id, Segment: dr.seg})
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(d.path, append(data, '\n'), 0o644)
}

type documentState struct {
	Footprints []footprintState `json:"footprints"`
	Drawings   []drawingState   `json:"drawings,omitempty"`
}

type footprintState struct {
	Ref   string  `json:"ref"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle,omitempty"`
}

type drawingState struct {
	ID string `json:"id"`
	Segment
}

var _ Board = (*Document)(nil)
