package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// layout holds the screen origin of each panel.
type layout struct {
	frameX, frameY int
	frameW, frameH int
	boardX, boardY int
	sideX          int
}

// computeLayout centers the frame and the board independently, then hangs
// the score and next panels off the frame's right column.
func computeLayout(cols, lines, width, height int) layout {
	frameW := max(MinColumns, width+4)
	frameH := max(MinLines, height+4)

	l := layout{
		frameW: frameW,
		frameH: frameH,
		frameX: (cols - frameW) / 2,
		frameY: (lines - frameH) / 2,
		boardX: (cols - width) / 2,
		boardY: (lines - height) / 2,
	}
	l.sideX = l.frameX + 37
	if l.sideX < l.boardX+width+3 {
		l.sideX = l.boardX + width + 3
	}
	return l
}

type tuiRenderer struct {
	screen tcell.Screen
	style  tcell.Style
	block  tcell.Style
	border tcell.Style
}

func newRenderer(screen tcell.Screen) *tuiRenderer {
	return &tuiRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
		block:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		border: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

func (r *tuiRenderer) Render(snap tetris.Snapshot) {
	r.screen.Clear()

	cols, lines := r.screen.Size()
	l := computeLayout(cols, lines, snap.Width, snap.Height)

	r.box(l.frameX, l.frameY, l.frameW, l.frameH)
	r.text(l.frameX+3, l.frameY+8, "Use arrow keys")
	r.text(l.frameX+6, l.frameY+9, "to move")
	r.text(l.frameX+4, l.frameY+11, "Rotate with")
	r.text(l.frameX+4, l.frameY+12, "'z' or 'x'")

	r.box(l.boardX, l.boardY-1, snap.Width+2, snap.Height+2)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if snap.Occupied(x, y) {
				r.screen.SetContent(l.boardX+1+x, l.boardY+y, '#', nil, r.block)
			}
		}
	}

	r.text(l.sideX, l.frameY+3, "Score:")
	r.text(l.sideX, l.frameY+4, fmt.Sprintf("%06d", snap.Score))
	r.text(l.sideX, l.frameY+6, "Lines:")
	r.text(l.sideX, l.frameY+7, fmt.Sprintf("%d", snap.Lines))

	r.text(l.sideX, l.frameY+11, "Next:")
	r.box(l.sideX, l.frameY+12, tetris.MaxPieceSize+2, tetris.MaxPieceSize+2)
	for i := 0; i < tetris.MaxPieceSize; i++ {
		for j := 0; j < tetris.MaxPieceSize; j++ {
			if snap.Next[i][j] {
				r.screen.SetContent(l.sideX+1+j, l.frameY+13+i, '#', nil, r.block)
			}
		}
	}

	if snap.GameOver {
		r.text(l.boardX+1+(snap.Width-9)/2, l.boardY+snap.Height/2, "GAME OVER")
	}

	r.screen.Show()
}

func (r *tuiRenderer) text(x, y int, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, r.style)
	}
}

func (r *tuiRenderer) box(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, nil, r.border)
		r.screen.SetContent(i, bottom, tcell.RuneHLine, nil, r.border)
	}
	for j := y + 1; j < bottom; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, nil, r.border)
		r.screen.SetContent(right, j, tcell.RuneVLine, nil, r.border)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, r.border)
	r.screen.SetContent(right, y, tcell.RuneURCorner, nil, r.border)
	r.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, r.border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.border)
}
