// Package config resolves runtime settings from the command line, an optional
// YAML file and the terminal size
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lixenwraith/torus/grid"
)

// Usage is printed for -h/--help and after usage errors
const Usage = `torus ~ a toggleable cell grid on a torus.
rules:
    Each generation, a cell with more than 2 live neighbors is alive, a live
    cell with fewer than 2 dies, and a cell with exactly 2 keeps its state.
    Neighbors wrap around the edges.
flags:
    -r | --height N     ~ set the height of the grid.
    -c | --width N      ~ set the width of the grid.
    -h | --help         ~ this help page.
    --config PATH       ~ YAML settings file (keys, glyphs, tick, sound).
    --tick DURATION     ~ autorun interval, e.g. 50ms.
    --sound             ~ play feedback tones.
    --debug             ~ log to logs/torus.log.
controls:
    ---selection--------------------
    space ~ toggle the current cell.
    ---movement---------------------
    h | a | left  ~ move left.
    j | s | down  ~ move down.
    k | w | up    ~ move up.
    l | d | right ~ move right.
    ---control----------------------
    n     ~ advance one generation.
    p     ~ toggle autorun.
    r     ~ reset the grid.
    q     ~ quit.
`

// ErrHelp is returned by ParseArgs when help was requested
var ErrHelp = errors.New("help requested")

// UsageError reports a bad command line
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Args holds the parsed command line; zero values mean "not given"
type Args struct {
	Width, Height int
	ConfigPath    string
	Tick          time.Duration // Zero when --tick is absent
	Sound         bool
	Debug         bool
}

// dimensionValue is a flag.Value accepting one integer in [1, grid.MaxDimension]
// Registered under a short and a long name, so a second Set from either is a duplicate
type dimensionValue struct {
	name string
	val  *int
	set  bool
}

func (d *dimensionValue) String() string {
	if d == nil || d.val == nil {
		return ""
	}
	return strconv.Itoa(*d.val)
}

func (d *dimensionValue) Set(s string) error {
	if d.set {
		return fmt.Errorf("%s given more than once", d.name)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > grid.MaxDimension {
		return fmt.Errorf("%s must be an integer in [1, %d], got %q", d.name, grid.MaxDimension, s)
	}
	*d.val = n
	d.set = true
	return nil
}

// ParseArgs parses command-line arguments, excluding the program name
// Returns ErrHelp for -h/--help and *UsageError for anything malformed
func ParseArgs(argv []string) (*Args, error) {
	args := &Args{}

	fs := flag.NewFlagSet("torus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	height := &dimensionValue{name: "height", val: &args.Height}
	width := &dimensionValue{name: "width", val: &args.Width}
	fs.Var(height, "r", "")
	fs.Var(height, "height", "")
	fs.Var(width, "c", "")
	fs.Var(width, "width", "")
	fs.StringVar(&args.ConfigPath, "config", "", "")
	fs.DurationVar(&args.Tick, "tick", 0, "")
	fs.BoolVar(&args.Sound, "sound", false, "")
	fs.BoolVar(&args.Debug, "debug", false, "")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, &UsageError{Msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, usageErrorf("unknown argument: %s", fs.Arg(0))
	}
	tickGiven := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tick" {
			tickGiven = true
		}
	})
	if tickGiven && args.Tick <= 0 {
		return nil, usageErrorf("tick must be positive, got %s", args.Tick)
	}

	return args, nil
}
