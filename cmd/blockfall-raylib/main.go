package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const CellSize = 32

func main() {
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence (0 picks one at random).")
	autoscroll := flag.Duration("autoscroll", loop.DefaultConfig().AutoscrollInterval, "Time between automatic drops.")
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

	rl.InitWindow(int32(cfg.Width*CellSize+250), int32(cfg.Height*CellSize+100), "Blockfall")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	driver := loop.NewDriver(game, loop.Config{AutoscrollInterval: *autoscroll}, &KeyboardInput{}, nil, &RenderSystem{})
	driver.OnLock(func(res tetris.StepResult) {
		if res.GameOver {
			log.Printf("Game over with score %s", game.Score.String())
		}
	})

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		if rl.IsKeyPressed(rl.KeyR) {
			driver.Restart()
		}

		driver.Tick(deltaTime)
	}

	log.Printf("Frames rendered: %d", driver.Frames())
}
