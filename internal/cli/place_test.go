package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/place"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestInitAndPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")

	if err := runCommand(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := runCommand(t, "place", path); err != nil {
		t.Fatalf("place: %v", err)
	}

	doc, err := board.LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if got := len(doc.FootprintRefs()); got != place.NumSwitches*2 {
		t.Errorf("footprint count = %d, want %d", got, place.NumSwitches*2)
	}

	outline := 0
	for _, d := range doc.Drawings() {
		if d.Tag() == place.BorderTag {
			outline++
		}
	}
	if outline != 4 {
		t.Errorf("outline segments = %d, want 4", outline)
	}

	fp, ok := doc.Footprint("SW1")
	if !ok {
		t.Fatal("SW1 missing")
	}
	if pos := fp.Position(); pos.X != 45 || pos.Y != 115 {
		t.Errorf("SW1 at (%g, %g), want (45, 115)", pos.X, pos.Y)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")

	if err := runCommand(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := runCommand(t, "init", path); err == nil {
		t.Error("second init without --force should fail")
	}
	if err := runCommand(t, "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestPlaceWithParamsFile(t *testing.T) {
	dir := t.TempDir()
	boardPath := filepath.Join(dir, "board.json")
	paramsPath := filepath.Join(dir, "params.toml")

	if err := runCommand(t, "init", boardPath); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := runCommand(t, "params", "--output", paramsPath); err != nil {
		t.Fatalf("params --output: %v", err)
	}
	if err := runCommand(t, "place", boardPath, "--params", paramsPath); err != nil {
		t.Fatalf("place with params file: %v", err)
	}
}

func TestPlaceMissingParamFails(t *testing.T) {
	dir := t.TempDir()
	boardPath := filepath.Join(dir, "board.json")

	if err := runCommand(t, "init", boardPath); err != nil {
		t.Fatalf("init: %v", err)
	}

	paramsPath := filepath.Join(dir, "partial.toml")
	if err := os.WriteFile(paramsPath, []byte("SwitchSpacing = 19.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runCommand(t, "place", boardPath, "--params", paramsPath); err == nil {
		t.Error("place with incomplete parameters should fail")
	}
}
