package loop_test

import (
	"fmt"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type printer struct{}

func (printer) Render(snap tetris.Snapshot) {
	fmt.Printf("score %06d over=%v\n", snap.Score, snap.GameOver)
}

// ExampleDriver drives a headless game with a frontend that owns its own
// frame timing.
func ExampleDriver() {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 1
	game, err := tetris.NewGame(cfg)
	if err != nil {
		panic(err)
	}

	driver := loop.NewDriver(game, loop.DefaultConfig(), nil, printer{})
	driver.Tick(1.0 / 60.0)
	driver.Tick(1.0 / 60.0)
	// Output:
	// score 000000 over=false
	// score 000000 over=false
}
