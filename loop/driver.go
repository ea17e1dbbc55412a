package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Config holds the two timing thresholds of the loop.
type Config struct {
	// TickInterval is the minimum time between updates.
	TickInterval time.Duration
	// AutoscrollInterval is the time between forced downward steps.
	AutoscrollInterval time.Duration
}

// DefaultConfig returns a 16ms tick with a half-second autoscroll.
func DefaultConfig() Config {
	return Config{
		TickInterval:       16 * time.Millisecond,
		AutoscrollInterval: 500 * time.Millisecond,
	}
}

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("loop: invalid config")

// Validate checks the thresholds Run needs. Frontends that only call Tick
// may leave TickInterval zero.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if c.AutoscrollInterval < 0 {
		return fmt.Errorf("%w: autoscroll interval %s is negative", ErrInvalidConfig, c.AutoscrollInterval)
	}
	return nil
}

// Driver wires a game to its input, gravity and renderer. Systems run as
// input, gravity, extras, render, halt.
type Driver struct {
	Game      *tetris.Game
	Scheduler *Scheduler
	Gravity   *GravitySystem

	cfg Config
}

// NewDriver builds the standard tick. input and renderer may be nil for
// headless use.
func NewDriver(game *tetris.Game, cfg Config, input InputSource, renderer Renderer, extra ...System) *Driver {
	d := &Driver{
		Game:      game,
		Scheduler: NewScheduler(game),
		Gravity:   &GravitySystem{Interval: cfg.AutoscrollInterval},
		cfg:       cfg,
	}

	if input != nil {
		d.Scheduler.Register(&InputSystem{Source: input})
	}
	d.Scheduler.Register(d.Gravity)
	for _, sys := range extra {
		d.Scheduler.Register(sys)
	}
	if renderer != nil {
		d.Scheduler.Register(&RenderSystem{Renderer: renderer})
	}
	d.Scheduler.Register(HaltSystem{})

	return d
}

// Config returns the timing thresholds.
func (d *Driver) Config() Config {
	return d.cfg
}

// OnLock registers a callback for every lock event.
func (d *Driver) OnLock(fn func(res tetris.StepResult)) {
	d.Gravity.OnLock = fn
}

// Tick runs one update with dt seconds elapsed. Frontends that own their
// own frame timing call this instead of Run.
func (d *Driver) Tick(dt float64) {
	d.Scheduler.Once(dt)
}

// Run ticks until the game is over, returning nil, or until ctx is done,
// returning its error.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.cfg.Validate(); err != nil {
		return err
	}
	d.Scheduler.Run(ctx, d.cfg.TickInterval)
	if d.Game.Over() {
		return nil
	}
	return ctx.Err()
}

// Frames returns the number of ticks run so far.
func (d *Driver) Frames() int64 {
	return d.Scheduler.Ticks()
}

// Restart starts a new session on the same driver.
func (d *Driver) Restart() {
	d.Game.Reset()
	d.Gravity.Reset()
	d.Scheduler.Resume()
}
