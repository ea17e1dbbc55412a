package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize     = 30
	ScreenWidth  = 640
	ScreenHeight = 600
)

func main() {
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence (0 picks one at random).")
	tick := flag.Duration("tick", loop.DefaultConfig().TickInterval, "Minimum time between updates.")
	autoscroll := flag.Duration("autoscroll", loop.DefaultConfig().AutoscrollInterval, "Time between automatic drops.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	if cfg.SpawnX+tetris.MaxPieceSize > cfg.Width {
		cfg.SpawnX = (cfg.Width - tetris.MaxPieceSize) / 2
	}

	game, err := tetris.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	loopCfg := loop.Config{TickInterval: *tick, AutoscrollInterval: *autoscroll}
	if err := loopCfg.Validate(); err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	ebiten.SetTPS(max(1, int(time.Second / *tick)))

	input := &keyboard{}
	screen := &screenRenderer{}

	var backend *debugui_ebiten.ImguiBackend
	var overlay *debugui.ImguiSystem
	if *debug {
		backend = debugui_ebiten.NewImguiBackend("blockfall (debug)", ScreenWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("blockfall")
	}

	driver := loop.NewDriver(game, loopCfg, input, screen)
	if backend != nil {
		overlay = debugui.NewDefaultSystem(driver)
		driver.Scheduler.Register(overlay)
		input.capture = &overlay.InputState
	}
	driver.OnLock(func(res tetris.StepResult) {
		if res.Lines > 0 {
			log.Printf("cleared %d line(s), score %06d", res.Lines, game.Score.Points())
		}
		if res.GameOver {
			log.Printf("game over after %d pieces, score %06d", game.Stats.Pieces(), game.Score.Points())
		}
	})

	g := &Game{
		driver:   driver,
		screen:   screen,
		imgui:    backend,
		cellSize: CellSize,
	}

	log.Printf("starting %dx%d board, tick %s, autoscroll %s", cfg.Width, cfg.Height, *tick, *autoscroll)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	log.Printf("Frames rendered: %d", driver.Frames())
}
