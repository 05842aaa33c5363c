package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/torus/game"
	"github.com/lixenwraith/torus/input"
	"github.com/lixenwraith/torus/render"
)

func fixedViewport(w, h int) ViewportFunc {
	return func() (int, int, error) { return w, h, nil }
}

func failingViewport() (int, int, error) {
	return 0, 0, errors.New("not a terminal")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "torus.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestResolve_Defaults(t *testing.T) {
	s, err := Resolve(&Args{}, failingViewport)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("dims = %dx%d, want defaults", s.Width, s.Height)
	}
	if s.Tick != game.DefaultTick {
		t.Errorf("tick = %v, want %v", s.Tick, game.DefaultTick)
	}
	if s.Glyphs != render.DefaultGlyphs() {
		t.Errorf("glyphs = %+v", s.Glyphs)
	}
	if s.Keys.Runes['q'] != input.ActionQuit {
		t.Error("default key table missing")
	}
}

func TestResolve_Viewport(t *testing.T) {
	s, err := Resolve(&Args{}, fixedViewport(80, 24))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 78 || s.Height != 21 {
		t.Errorf("dims = %dx%d, want 78x21", s.Width, s.Height)
	}

	// Flags take precedence per axis
	s, err = Resolve(&Args{Height: 5}, fixedViewport(80, 24))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 78 || s.Height != 5 {
		t.Errorf("dims = %dx%d, want 78x5", s.Width, s.Height)
	}

	// Tiny terminals still get a 1x1 grid
	s, err = Resolve(&Args{}, fixedViewport(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 1 || s.Height != 1 {
		t.Errorf("dims = %dx%d, want 1x1", s.Width, s.Height)
	}
}

func TestResolve_File(t *testing.T) {
	path := writeConfig(t, `
tick: 50ms
sound: true
glyphs:
  alive: "#"
  dead: "."
keys:
  x: toggle
  enter: step
  q: none
`)
	s, err := Resolve(&Args{ConfigPath: path, Width: 3, Height: 3}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if s.Tick != 50*time.Millisecond {
		t.Errorf("tick = %v, want 50ms", s.Tick)
	}
	if !s.Sound {
		t.Error("sound not enabled from file")
	}
	if s.Glyphs.Alive != '#' || s.Glyphs.Dead != '.' {
		t.Errorf("glyphs = %+v", s.Glyphs)
	}
	if s.Keys.Runes['x'] != input.ActionToggle {
		t.Error("x binding not applied")
	}
	if s.Keys.Keys[tcell.KeyEnter] != input.ActionStep {
		t.Error("enter binding not applied")
	}
	if _, ok := s.Keys.Runes['q']; ok {
		t.Error("q should be unbound")
	}
	if s.Keys.Runes['n'] != input.ActionStep {
		t.Error("default n binding lost")
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "tick: 50ms\nsound: false\n")
	s, err := Resolve(&Args{ConfigPath: path, Tick: 5 * time.Millisecond, Sound: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Tick != 5*time.Millisecond {
		t.Errorf("tick = %v, want flag value", s.Tick)
	}
	if !s.Sound {
		t.Error("--sound should override file")
	}
}

func TestResolve_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "speed: fast\n"},
		{"bad action", "keys:\n  x: explode\n"},
		{"bad key", "keys:\n  xyz: toggle\n"},
		{"wide glyph", "glyphs:\n  alive: \"##\"\n"},
		{"bad tick", "tick: soon\n"},
		{"negative tick", "tick: -1s\n"},
		{"zero tick", "tick: 0s\n"},
		{"not yaml", "keys: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			if _, err := Resolve(&Args{ConfigPath: path}, nil); err == nil {
				t.Errorf("expected error for %q", tc.content)
			}
		})
	}
}

func TestResolve_MissingFile(t *testing.T) {
	_, err := Resolve(&Args{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestParseFile_Empty(t *testing.T) {
	f, err := ParseFile(nil)
	if err != nil {
		t.Fatalf("ParseFile(empty): %v", err)
	}
	if f.Tick != nil || f.Sound != nil || len(f.Keys) != 0 {
		t.Errorf("empty file decoded to %+v", f)
	}
}
