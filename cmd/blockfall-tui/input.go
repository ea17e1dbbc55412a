package main

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// keyInput forwards tcell events from a pump goroutine and hands the
// driver at most one action per poll without blocking.
type keyInput struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   context.CancelFunc
}

func newKeyInput(screen tcell.Screen, quit context.CancelFunc) *keyInput {
	return &keyInput{
		screen: screen,
		events: make(chan tcell.Event, 100),
		quit:   quit,
	}
}

func (k *keyInput) pump() {
	for {
		ev := k.screen.PollEvent()
		if ev == nil {
			return
		}
		k.events <- ev
	}
}

func (k *keyInput) Poll() tetris.Action {
	for {
		select {
		case ev := <-k.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					k.quit()
					return tetris.None
				}
				if action := keyAction(ev); action != tetris.None {
					return action
				}
			case *tcell.EventResize:
				k.screen.Sync()
			}
		default:
			return tetris.None
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

func keyAction(ev *tcell.EventKey) tetris.Action {
	switch ev.Key() {
	case tcell.KeyRight:
		return tetris.MoveRight
	case tcell.KeyLeft:
		return tetris.MoveLeft
	case tcell.KeyDown:
		return tetris.MoveDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return tetris.RotateCW
		case 'z', 'Z':
			return tetris.RotateCCW
		}
	}
	return tetris.None
}
