// Package game runs the interactive control loop around a grid
//
// The loop is a small state machine. In Idle it blocks on the input source for
// exactly one action. In Autorun it polls without blocking, advances the grid
// one generation and sleeps one tick. Every iteration that does not stop the
// loop ends with a redraw, so the display is never more than one tick stale.
package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/torus/grid"
	"github.com/lixenwraith/torus/input"
)

// DefaultTick is the autorun sleep between generations
const DefaultTick = 10 * time.Millisecond

// Source supplies decoded user actions
type Source interface {
	// Next blocks until an action is available or ctx ends
	Next(ctx context.Context) (input.Action, error)
	// Poll returns immediately; ok is false when nothing is pending
	Poll() (a input.Action, ok bool, err error)
}

// Renderer draws the grid to a display surface
// DrawFrame is only needed once and after a resize; DrawCells refreshes the interior
type Renderer interface {
	DrawFrame(width, height int) error
	DrawCells(cells grid.CellReader, status Status) error
	PlaceCaret(x, y int) error
	Flush() error
}

// Feedback receives notifications of user edits, e.g. for sound
type Feedback interface {
	Toggled(alive bool)
	Cleared()
	AutorunChanged(on bool)
}

// Status is the summary line shown under the grid
type Status struct {
	Generation uint64
	Population int
	Autorun    bool
}

// Option configures a Loop
type Option func(*Loop)

// WithTick sets the autorun interval
func WithTick(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.tick = d
		}
	}
}

// WithFeedback registers an edit listener
func WithFeedback(f Feedback) Option {
	return func(l *Loop) { l.feedback = f }
}

// WithSleep replaces the tick sleep, for tests
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Loop) { l.sleep = sleep }
}

// WithLogger sets the debug logger
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// Loop owns the grid, the cursor and the run state
type Loop struct {
	grid   *grid.Grid
	source Source
	out    Renderer

	state  State
	cursor grid.Point

	tick     time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	feedback Feedback
	logger   *log.Logger
}

// New creates an Idle loop with the cursor at the origin
func New(g *grid.Grid, source Source, out Renderer, opts ...Option) *Loop {
	l := &Loop{
		grid:     g,
		source:   source,
		out:      out,
		state:    StateIdle,
		tick:     DefaultTick,
		sleep:    sleepContext,
		feedback: nopFeedback{},
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current run state
func (l *Loop) State() State { return l.state }

// Cursor returns the cursor position
func (l *Loop) Cursor() grid.Point { return l.cursor }

// Run draws the initial view and iterates until quit, ctx end or an I/O error
func (l *Loop) Run(ctx context.Context) error {
	if err := l.out.DrawFrame(l.grid.Width(), l.grid.Height()); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	if err := l.redraw(); err != nil {
		return err
	}

	for l.state != StateStopped {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Iterate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Iterate runs one loop body: read or poll input, apply it, advance if in
// autorun, then redraw unless stopped
func (l *Loop) Iterate(ctx context.Context) error {
	switch l.state {
	case StateIdle:
		a, err := l.source.Next(ctx)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := l.Apply(a); err != nil {
			return err
		}

	case StateAutorun:
		a, ok, err := l.source.Poll()
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if ok {
			if err := l.Apply(a); err != nil {
				return err
			}
		}

	case StateStopped:
		return nil
	}

	// Autorun may have been entered or left by the action above
	if l.state == StateAutorun {
		l.grid.Step()
		if err := l.sleep(ctx, l.tick); err != nil {
			return err
		}
	}

	if l.state == StateStopped {
		return nil
	}
	return l.redraw()
}

// Apply maps one action onto the grid, the cursor or the run state
// Only ActionRedraw can fail, by way of the renderer
func (l *Loop) Apply(a input.Action) error {
	g := l.grid
	switch a {
	case input.ActionLeft:
		l.cursor.X = g.Left(l.cursor.X)
	case input.ActionRight:
		l.cursor.X = g.Right(l.cursor.X)
	case input.ActionUp:
		l.cursor.Y = g.Up(l.cursor.Y)
	case input.ActionDown:
		l.cursor.Y = g.Down(l.cursor.Y)
	case input.ActionToggle:
		l.feedback.Toggled(g.Toggle(l.cursor.X, l.cursor.Y))
	case input.ActionReset:
		g.Reset()
		l.feedback.Cleared()
	case input.ActionStep:
		g.Step()
	case input.ActionAutorun:
		l.toggleAutorun()
	case input.ActionQuit:
		l.transition(StateStopped)
	case input.ActionRedraw:
		if err := l.out.DrawFrame(g.Width(), g.Height()); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}
	return nil
}

func (l *Loop) toggleAutorun() {
	if l.state == StateAutorun {
		l.transition(StateIdle)
	} else {
		l.transition(StateAutorun)
	}
	l.feedback.AutorunChanged(l.state == StateAutorun)
}

func (l *Loop) transition(to State) {
	if !l.state.CanTransition(to) {
		l.logger.Printf("rejected transition %s -> %s", l.state, to)
		return
	}
	l.logger.Printf("state %s -> %s at generation %d", l.state, to, l.grid.Generation())
	l.state = to
}

func (l *Loop) redraw() error {
	status := Status{
		Generation: l.grid.Generation(),
		Population: l.grid.Population(),
		Autorun:    l.state == StateAutorun,
	}
	if err := l.out.DrawCells(l.grid, status); err != nil {
		return fmt.Errorf("draw cells: %w", err)
	}
	if err := l.out.PlaceCaret(l.cursor.X, l.cursor.Y); err != nil {
		return fmt.Errorf("place caret: %w", err)
	}
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type nopFeedback struct{}

func (nopFeedback) Toggled(bool)        {}
func (nopFeedback) Cleared()            {}
func (nopFeedback) AutorunChanged(bool) {}
