package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned once the screen stops delivering events
var ErrClosed = errors.New("input source closed")

const eventBuffer = 256

// ScreenSource reads key events from a tcell screen
// A pump goroutine moves events from screen.PollEvent into a buffered channel,
// so Next can block on it and Poll can drain it without blocking
type ScreenSource struct {
	keys   *KeyTable
	events chan tcell.Event
	done   chan struct{}

	// Called with the recovered value if the pump goroutine panics
	onPanic func(r any)
}

// SourceOption configures a ScreenSource
type SourceOption func(*ScreenSource)

// WithCrashHandler replaces the pump's panic handler
// The default restores the terminal, prints the stack to stderr and exits 1
func WithCrashHandler(h func(r any)) SourceOption {
	return func(s *ScreenSource) { s.onPanic = h }
}

// NewScreenSource starts pumping events from an initialized screen
func NewScreenSource(screen tcell.Screen, keys *KeyTable, opts ...SourceOption) *ScreenSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	s := &ScreenSource{
		keys:    keys,
		events:  make(chan tcell.Event, eventBuffer),
		done:    make(chan struct{}),
		onPanic: terminalCrashHandler(screen),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.pump(screen)
	return s
}

// terminalCrashHandler mirrors the main goroutine's recovery for the pump,
// which main's recover cannot reach
func terminalCrashHandler(screen tcell.Screen) func(r any) {
	return func(r any) {
		screen.Fini()
		// Use \r\n in case the terminal is still in raw mode
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

func (s *ScreenSource) pump(screen tcell.Screen) {
	// Runs after the recover below, so readers see ErrClosed once the handler returns
	defer close(s.events)
	defer func() {
		if r := recover(); r != nil {
			s.onPanic(r)
		}
	}()
	for {
		// nil after screen.Fini
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Next blocks until an event arrives or ctx ends
func (s *ScreenSource) Next(ctx context.Context) (Action, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return ActionNone, ErrClosed
		}
		return s.keys.Decode(ev), nil
	case <-ctx.Done():
		return ActionNone, ctx.Err()
	}
}

// Poll returns the next pending event without blocking
// ok is false when nothing is pending
func (s *ScreenSource) Poll() (a Action, ok bool, err error) {
	select {
	case ev, open := <-s.events:
		if !open {
			return ActionNone, false, ErrClosed
		}
		return s.keys.Decode(ev), true, nil
	default:
		return ActionNone, false, nil
	}
}

// Close stops the pump; the screen itself is owned by the caller
func (s *ScreenSource) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
