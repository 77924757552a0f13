package cli

import (
	"io"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"init", "place", "params", "logo", "matrix", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if got := c.Logger.GetLevel(); got != LogInfo {
		t.Fatalf("initial level = %v", got)
	}
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("level after SetLogLevel = %v, want debug", got)
	}
}

func TestParseFactors(t *testing.T) {
	got, err := parseFactors("1.5, 2")
	if err != nil {
		t.Fatalf("parseFactors: %v", err)
	}
	if len(got) != 2 || got[0] != 1.5 || got[1] != 2 {
		t.Errorf("parseFactors = %v", got)
	}

	if _, err := parseFactors("1.5,nope"); err == nil {
		t.Error("non-numeric factor should fail")
	}
	if _, err := parseFactors("-1"); err == nil {
		t.Error("non-positive factor should fail")
	}
}
