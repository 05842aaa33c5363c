package config

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/torus/game"
	"github.com/lixenwraith/torus/grid"
	"github.com/lixenwraith/torus/input"
	"github.com/lixenwraith/torus/render"
)

// Fallback grid size when neither flags nor the terminal provide one
const (
	DefaultWidth  = 40
	DefaultHeight = 20
)

// Screen rows and columns taken by the frame and status line
const (
	borderCols = 2
	borderRows = 2
	statusRows = 1
)

// ViewportFunc reports the terminal size in cells
type ViewportFunc func() (width, height int, err error)

// StdoutViewport queries the size of the terminal attached to stdout
func StdoutViewport() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Settings is the fully resolved runtime configuration
type Settings struct {
	Width, Height int
	Tick          time.Duration
	Sound         bool
	Debug         bool
	Glyphs        render.Glyphs
	Keys          *input.KeyTable
}

// Resolve merges defaults, the config file named in args, the flags and the viewport
// Flags win over the file; the viewport is consulted only for missing dimensions
func Resolve(args *Args, viewport ViewportFunc) (*Settings, error) {
	s := &Settings{
		Tick:   game.DefaultTick,
		Glyphs: render.DefaultGlyphs(),
		Keys:   input.DefaultKeyTable(),
		Debug:  args.Debug,
	}

	if args.ConfigPath != "" {
		f, err := LoadFile(args.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := s.applyFile(f); err != nil {
			return nil, fmt.Errorf("%s: %w", args.ConfigPath, err)
		}
	}

	if args.Tick > 0 {
		s.Tick = args.Tick
	}
	if args.Sound {
		s.Sound = true
	}

	s.Width, s.Height = args.Width, args.Height
	if s.Width == 0 || s.Height == 0 {
		vw, vh := viewportGrid(viewport)
		if s.Width == 0 {
			s.Width = vw
		}
		if s.Height == 0 {
			s.Height = vh
		}
	}

	return s, nil
}

func (s *Settings) applyFile(f *File) error {
	if f.Tick != nil {
		s.Tick = *f.Tick
	}
	if f.Sound != nil {
		s.Sound = *f.Sound
	}

	if f.Glyphs.Alive != "" {
		r, err := singleRune("glyphs.alive", f.Glyphs.Alive)
		if err != nil {
			return err
		}
		s.Glyphs.Alive = r
	}
	if f.Glyphs.Dead != "" {
		r, err := singleRune("glyphs.dead", f.Glyphs.Dead)
		if err != nil {
			return err
		}
		s.Glyphs.Dead = r
	}

	if len(f.Keys) > 0 {
		override, err := input.LoadKeyConfig(f.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		s.Keys = input.MergeKeyTable(s.Keys, override)
	}
	return nil
}

func singleRune(field, v string) (rune, error) {
	runes := []rune(v)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%s: expected a single character, got %q", field, v)
	}
	return runes[0], nil
}

// viewportGrid returns the largest grid that fits the viewport with its
// frame and status line, or the defaults when the size is unknown
func viewportGrid(viewport ViewportFunc) (int, int) {
	if viewport == nil {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := viewport()
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return clampDimension(w - borderCols), clampDimension(h - borderRows - statusRows)
}

func clampDimension(n int) int {
	return max(1, min(n, grid.MaxDimension))
}
