package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/tetris"
)

const (
	// Held movement keys repeat after RepeatDelay ticks, every RepeatRate ticks.
	RepeatDelay = 12
	RepeatRate  = 3
)

var bindings = []struct {
	key    ebiten.Key
	action tetris.Action
	repeat bool
}{
	{ebiten.KeyArrowRight, tetris.MoveRight, true},
	{ebiten.KeyArrowLeft, tetris.MoveLeft, true},
	{ebiten.KeyArrowDown, tetris.MoveDown, true},
	{ebiten.KeyX, tetris.RotateCW, false},
	{ebiten.KeyZ, tetris.RotateCCW, false},
}

// keyboard turns ebiten key state into at most one action per tick.
type keyboard struct {
	capture *debugui.ImguiInputState
}

func (k *keyboard) Poll() tetris.Action {
	if k.capture != nil && k.capture.WantCaptureKeyboard {
		return tetris.None
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			return b.action
		}
		if b.repeat && repeating(inpututil.KeyPressDuration(b.key)) {
			return b.action
		}
	}
	return tetris.None
}

func repeating(ticks int) bool {
	return ticks > RepeatDelay && (ticks-RepeatDelay)%RepeatRate == 0
}
