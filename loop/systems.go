package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// InputSource is polled once per tick and must not block. It returns
// tetris.None when nothing was pressed.
type InputSource interface {
	Poll() tetris.Action
}

// Renderer receives a snapshot after every tick.
type Renderer interface {
	Render(snap tetris.Snapshot)
}

// InputSystem applies at most one action per tick.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	if action := s.Source.Poll(); action != tetris.None {
		frame.Game.Apply(action)
	}
}

// GravitySystem steps the game once the autoscroll interval has elapsed.
type GravitySystem struct {
	Interval time.Duration
	// OnLock is called after every step that locked a piece.
	OnLock func(res tetris.StepResult)

	elapsed float64
	last    tetris.StepResult
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if frame.Game.Over() {
		return
	}

	s.elapsed += frame.DeltaTime
	if s.elapsed <= s.Interval.Seconds() {
		return
	}
	s.elapsed = 0

	s.last = frame.Game.Step()
	if s.last.Locked && s.OnLock != nil {
		s.OnLock(s.last)
	}
}

// Last returns the result of the most recent step.
func (s *GravitySystem) Last() tetris.StepResult {
	return s.last
}

// Reset drops the accumulated time and last result.
func (s *GravitySystem) Reset() {
	s.elapsed = 0
	s.last = tetris.StepResult{}
}

// RenderSystem snapshots the game and hands the copy to the renderer after
// the tick has been flushed.
type RenderSystem struct {
	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *UpdateFrame) {
	snap := frame.Game.Snapshot()
	frame.Commands.Defer(func() {
		s.Renderer.Render(snap)
	})
}

// HaltSystem stops the scheduler once the game is over.
type HaltSystem struct{}

func (HaltSystem) Execute(frame *UpdateFrame) {
	if frame.Game.Over() {
		frame.Commands.Stop()
	}
}
