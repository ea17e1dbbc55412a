package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	MinColumns = 50
	MinLines   = 20
)

func main() {
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence (0 picks one at random).")
	tick := flag.Duration("tick", loop.DefaultConfig().TickInterval, "Minimum time between updates.")
	autoscroll := flag.Duration("autoscroll", loop.DefaultConfig().AutoscrollInterval, "Time between automatic drops.")
	sound := flag.Bool("sound", true, "Beep when lines are cleared.")
	logPath := flag.String("log", "", "Write log output to this file (the terminal belongs to the game).")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cfg := tetris.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	if cfg.SpawnX+tetris.MaxPieceSize > cfg.Width {
		cfg.SpawnX = (cfg.Width - tetris.MaxPieceSize) / 2
	}

	game, err := tetris.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	loopCfg := loop.Config{TickInterval: *tick, AutoscrollInterval: *autoscroll}
	if err := loopCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cols, lines := screen.Size()
	if cols < max(MinColumns, cfg.Width+4) || lines < max(MinLines, cfg.Height+4) {
		screen.Fini()
		fmt.Printf("Your terminal needs to be at least %dx%d\n", max(MinColumns, cfg.Width+4), max(MinLines, cfg.Height+4))
		os.Exit(1)
	}
	screen.HideCursor()

	var audio *beeper
	if *sound {
		audio, err = newBeeper()
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := newKeyInput(screen, cancel)
	go input.pump()

	driver := loop.NewDriver(game, loopCfg, input, newRenderer(screen))
	driver.OnLock(func(res tetris.StepResult) {
		if res.Lines > 0 {
			log.Printf("cleared %d line(s) for %d points", res.Lines, res.Points)
			audio.playClear(res.Lines)
		}
	})

	log.Printf("starting %dx%d board, tick %s, autoscroll %s", cfg.Width, cfg.Height, *tick, *autoscroll)
	runErr := driver.Run(ctx)

	audio.close()
	screen.Fini()

	if errors.Is(runErr, context.Canceled) {
		fmt.Println("Bye!")
	} else {
		fmt.Println("You lost!")
	}
	fmt.Printf("Score: %s\n", game.Score.String())
	fmt.Printf("Lines: %d  Pieces: %d\n", game.Stats.Lines, game.Stats.Pieces())
	fmt.Printf("Frames rendered: %d\n", driver.Frames())
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}
