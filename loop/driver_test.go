package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := loop.DefaultConfig()
	assert.Equal(t, 16*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.AutoscrollInterval)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, loop.DefaultConfig().Validate())

	err := loop.Config{AutoscrollInterval: time.Second}.Validate()
	assert.ErrorIs(t, err, loop.ErrInvalidConfig)

	err = loop.Config{TickInterval: time.Millisecond, AutoscrollInterval: -time.Second}.Validate()
	assert.ErrorIs(t, err, loop.ErrInvalidConfig)
}

func TestDriverRunRejectsZeroTick(t *testing.T) {
	game := newGame(t, tetris.ShapeT)
	d := loop.NewDriver(game, loop.Config{AutoscrollInterval: time.Second}, nil, nil)

	err := d.Run(context.Background())
	assert.ErrorIs(t, err, loop.ErrInvalidConfig)
	assert.Zero(t, d.Frames())
}

func TestDriverTickUntilGameOver(t *testing.T) {
	game := newGame(t, tetris.ShapeO)
	r := &recorder{}
	d := loop.NewDriver(game, loop.DefaultConfig(), &script{}, r)

	var locks int
	d.OnLock(func(tetris.StepResult) { locks++ })

	for i := 0; i < 1000 && !game.Over(); i++ {
		d.Tick(0.6)
	}

	require.True(t, game.Over())
	assert.True(t, d.Scheduler.Stopped())
	assert.Equal(t, 7, locks)
	assert.Equal(t, 7, game.Stats.Locks)
	assert.True(t, r.last().GameOver)
	assert.Equal(t, int64(len(r.frames)), d.Frames())

	err := d.Run(context.Background())
	assert.NoError(t, err)
}

func TestDriverRunStopsOnGameOver(t *testing.T) {
	game := newGame(t, tetris.ShapeO)
	for y := 2; y < 16; y++ {
		for x := 1; x < 10; x++ {
			game.Board.Set(x, y, tetris.Locked)
		}
	}

	r := &recorder{}
	cfg := loop.Config{TickInterval: time.Millisecond, AutoscrollInterval: time.Millisecond}
	d := loop.NewDriver(game, cfg, nil, r)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, d.Run(ctx))
	assert.True(t, game.Over())
	assert.NotZero(t, d.Frames())
	assert.True(t, r.last().GameOver)
}

func TestDriverRunHonoursContext(t *testing.T) {
	game := newGame(t, tetris.ShapeT)
	cfg := loop.Config{TickInterval: time.Millisecond, AutoscrollInterval: time.Hour}
	d := loop.NewDriver(game, cfg, &script{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, game.Over())
}

func TestDriverRestart(t *testing.T) {
	game := newGame(t, tetris.ShapeO)
	d := loop.NewDriver(game, loop.DefaultConfig(), nil, nil)

	for !game.Over() {
		d.Tick(0.6)
	}
	require.True(t, d.Scheduler.Stopped())

	d.Restart()

	assert.False(t, game.Over())
	assert.False(t, d.Scheduler.Stopped())
	assert.Equal(t, 0, game.Board.LockedCount())

	d.Tick(0.6)
	assert.Equal(t, 1, game.Current.Y)
}

type tickCounter struct {
	ticks int
}

func (c *tickCounter) Execute(frame *loop.UpdateFrame) {
	c.ticks++
}

func TestDriverExtraSystems(t *testing.T) {
	game := newGame(t, tetris.ShapeT)
	extra := &tickCounter{}
	d := loop.NewDriver(game, loop.DefaultConfig(), &script{}, &recorder{}, extra)

	d.Tick(0.016)
	d.Tick(0.016)

	assert.Equal(t, 2, extra.ticks)

	names := make([]string, 0)
	for _, s := range d.Scheduler.GetStats().Systems {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"InputSystem", "GravitySystem", "tickCounter", "RenderSystem", "HaltSystem"}, names)
}
