package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// bot presses a random key on roughly one tick in three.
type bot struct {
	rng *rand.Rand
}

var botActions = [...]tetris.Action{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.MoveDown,
	tetris.RotateCW,
	tetris.RotateCCW,
}

func (b *bot) Poll() tetris.Action {
	if b.rng.IntN(3) != 0 {
		return tetris.None
	}
	return botActions[b.rng.IntN(len(botActions))]
}

// WorkerResult is what one worker played before the deadline.
type WorkerResult struct {
	Games      int
	Ticks      int64
	Scores     []int
	Stats      *tetris.Stats
	UpdateTime []time.Duration
}

type worker struct {
	driver *loop.Driver
	result *WorkerResult
}

func newWorker(seed uint64, autoscroll time.Duration) (*worker, error) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = seed
	game, err := tetris.NewGame(cfg)
	if err != nil {
		return nil, err
	}

	input := &bot{rng: rand.New(rand.NewPCG(seed, seed+1))}
	return &worker{
		driver: loop.NewDriver(game, loop.Config{AutoscrollInterval: autoscroll}, input, nil),
		result: &WorkerResult{Stats: tetris.NewStats()},
	}, nil
}

// run ticks finished games back to back until ctx is done. A game still
// in progress at the deadline is not counted.
func (w *worker) run(ctx context.Context) *WorkerResult {
	for ctx.Err() == nil {
		w.tick()
	}
	return w.result
}

func (w *worker) tick() {
	start := time.Now()
	w.driver.Tick(frameStep)
	w.result.UpdateTime = append(w.result.UpdateTime, time.Since(start))
	w.result.Ticks++

	game := w.driver.Game
	if game.Over() {
		w.result.Games++
		w.result.Scores = append(w.result.Scores, game.Score.Points())
		w.result.Stats.Merge(game.Stats)
		w.driver.Restart()
	}
}
