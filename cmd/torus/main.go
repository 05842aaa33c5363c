package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/torus/audio"
	"github.com/lixenwraith/torus/config"
	"github.com/lixenwraith/torus/game"
	"github.com/lixenwraith/torus/grid"
	"github.com/lixenwraith/torus/input"
	"github.com/lixenwraith/torus/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status
func run(argv []string) int {
	args, err := config.ParseArgs(argv)
	if errors.Is(err, config.ErrHelp) {
		fmt.Fprint(os.Stdout, config.Usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n\n%s", err, config.Usage)
		return 1
	}

	settings, err := config.Resolve(args, config.StdoutViewport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}

	if logFile := setupLogging(settings.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting %dx%d tick=%v sound=%v", settings.Width, settings.Height, settings.Tick, settings.Sound)

	g, err := grid.New(settings.Width, settings.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTORUS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player, err := audio.NewPlayer(settings.Sound)
	if err != nil {
		// Non-fatal, runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	source := input.NewScreenSource(screen, settings.Keys)
	defer source.Close()

	loop := game.New(g, source, render.NewScreenRenderer(screen, settings.Glyphs),
		game.WithTick(settings.Tick),
		game.WithFeedback(player),
		game.WithLogger(log.Default()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	// Normal exit terminal cleanup
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("loop failed: %v", err)
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}
	log.Printf("exit at generation %d", g.Generation())
	return 0
}
