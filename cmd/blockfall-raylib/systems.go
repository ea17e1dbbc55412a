package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var tetrominoColors = [tetris.ShapeCount]rl.Color{
	tetris.ShapeO: rl.Gold,
	tetris.ShapeI: rl.SkyBlue,
	tetris.ShapeT: rl.Violet,
	tetris.ShapeS: rl.Lime,
	tetris.ShapeZ: rl.Pink,
	tetris.ShapeJ: rl.Blue,
	tetris.ShapeL: rl.Orange,
}

var lockedColor = rl.NewColor(130, 130, 130, 255)

// KeyboardInput maps raylib key state to one action per poll. Held keys
// repeat at the OS repeat rate.
type KeyboardInput struct{}

func (KeyboardInput) Poll() tetris.Action {
	switch {
	case pressed(rl.KeyLeft):
		return tetris.MoveLeft
	case pressed(rl.KeyRight):
		return tetris.MoveRight
	case pressed(rl.KeyDown):
		return tetris.MoveDown
	case rl.IsKeyPressed(rl.KeyX) || rl.IsKeyPressed(rl.KeyUp):
		return tetris.RotateCW
	case rl.IsKeyPressed(rl.KeyZ):
		return tetris.RotateCCW
	}
	return tetris.None
}

func pressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// RenderSystem draws the board, a ghost of the landing position and the
// side panel straight from the game state.
type RenderSystem struct{}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	game := frame.Game
	board := game.Board

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	offsetX := int32(50)
	offsetY := int32(50)
	boardW := int32(board.Width() * CellSize)
	boardH := int32(board.Height() * CellSize)

	rl.DrawRectangleLines(offsetX-2, offsetY-2, boardW+4, boardH+4, rl.Gray)

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if board.IsLocked(x, y) {
				drawCell(offsetX, offsetY, x, y, lockedColor)
			}
		}
	}

	if !game.Over() {
		drop := game.DropDistance()
		ghostColor := rl.NewColor(255, 255, 255, 80)
		for _, p := range game.Current.Blocks() {
			if board.Contains(p.X, p.Y+drop) {
				rl.DrawRectangle(offsetX+int32(p.X*CellSize), offsetY+int32((p.Y+drop)*CellSize), CellSize, CellSize, ghostColor)
			}
		}
	}

	for _, p := range game.Current.Blocks() {
		if board.Contains(p.X, p.Y) && !board.IsLocked(p.X, p.Y) {
			drawCell(offsetX, offsetY, p.X, p.Y, tetrominoColors[game.Current.Shape])
		}
	}

	textX := offsetX + boardW + 20
	rl.DrawText("SCORE", textX, offsetY, 20, rl.White)
	rl.DrawText(game.Score.String(), textX, offsetY+25, 20, rl.White)

	rl.DrawText("LINES", textX, offsetY+60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", game.Stats.Lines), textX, offsetY+85, 20, rl.White)

	rl.DrawText("NEXT", textX, offsetY+120, 20, rl.White)
	for p := range game.Next.Cells() {
		x := textX + int32(p.X*CellSize/2)
		y := offsetY + 150 + int32(p.Y*CellSize/2)
		rl.DrawRectangle(x, y, CellSize/2, CellSize/2, tetrominoColors[game.Next.Shape])
	}

	if game.Over() {
		rl.DrawText("GAME OVER", offsetX+20, offsetY+boardH/2-10, 30, rl.Red)
		rl.DrawText("Press R to restart", offsetX+10, offsetY+boardH/2+30, 20, rl.White)
	}

	rl.EndDrawing()
}

func drawCell(offsetX, offsetY int32, x, y int, color rl.Color) {
	px := offsetX + int32(x*CellSize)
	py := offsetY + int32(y*CellSize)
	rl.DrawRectangle(px, py, CellSize, CellSize, color)
	rl.DrawRectangleLines(px, py, CellSize, CellSize, rl.Black)
}
