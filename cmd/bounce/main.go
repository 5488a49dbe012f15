package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/terminal"
)

func main() {
	// Panic Recovery: Ensure the cursor is restored even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state immediately
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOUNCE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Environment supplies the baseline, flags override
	params := parameter.Load()
	flag.IntVar(&params.Width, "width", params.Width, "canvas width in cells")
	flag.IntVar(&params.Height, "height", params.Height, "canvas height in pixel rows, must be even")
	flag.IntVar(&params.FPS, "fps", params.FPS, "target frames per second")
	flag.Float64Var(&params.Gravity, "gravity", params.Gravity, "downward acceleration in cells per second squared")
	flag.Float64Var(&params.BallRadius, "radius", params.BallRadius, "ball radius in cells")
	flag.BoolVar(&params.Sound, "sound", params.Sound, "play bounce and respawn sounds")
	flag.BoolVar(&params.Debug, "debug", params.Debug, "write frame statistics to logs/bounce.log")
	flag.Parse()

	// Reject bad configuration before touching the terminal
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(params.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	sim, err := engine.NewSim(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build simulation: %v\n", err)
		os.Exit(1)
	}

	// Initialize audio
	var player *audio.Player
	if params.Sound {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		}
		defer player.Close()
	}

	// Initialize terminal
	term := terminal.NewSession(os.Stdout)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	// Handle interrupt signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	runner := engine.NewRunner(sim, term, engine.NewTimeProvider())
	runner.Logger = log.Default()
	if player != nil {
		runner.Listener = player
	}

	if err := runner.Run(ctx); err != nil {
		// Restore the cursor before reporting, otherwise the message lands mid-canvas
		term.Fini()
		fmt.Fprintf(os.Stderr, "Render loop failed: %v\n", err)
		os.Exit(1)
	}
}
