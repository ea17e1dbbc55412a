package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var (
	blockColor  = color.RGBA{135, 206, 235, 255}
	borderColor = color.RGBA{128, 128, 128, 255}
	emptyColor  = color.RGBA{24, 24, 24, 255}
)

// screenRenderer keeps the latest snapshot for Draw.
type screenRenderer struct {
	snap tetris.Snapshot
	ok   bool
}

func (r *screenRenderer) Render(snap tetris.Snapshot) {
	r.snap = snap
	r.ok = true
}

// Game implements ebiten.Game on top of the loop driver.
type Game struct {
	driver   *loop.Driver
	screen   *screenRenderer
	imgui    *debugui_ebiten.ImguiBackend
	cellSize int
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Restart()
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.driver.Tick(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen.ok {
		g.drawBoard(screen, g.screen.snap)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	offsetX := float32(ScreenWidth/2 - snap.Width*g.cellSize/2)
	offsetY := float32(40)
	cell := float32(g.cellSize)

	vector.StrokeRect(screen, offsetX-2, offsetY-2, float32(snap.Width)*cell+4, float32(snap.Height)*cell+4, 1, borderColor, false)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			clr := emptyColor
			if snap.Occupied(x, y) {
				clr = blockColor
			}
			vector.DrawFilledRect(screen, offsetX+float32(x)*cell+1, offsetY+float32(y)*cell+1, cell-2, cell-2, clr, false)
		}
	}

	panelX := int(offsetX) + snap.Width*g.cellSize + 30
	ebitenutil.DebugPrintAt(screen, "Score:", panelX, int(offsetY))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%06d", snap.Score), panelX, int(offsetY)+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", snap.Lines), panelX, int(offsetY)+40)
	ebitenutil.DebugPrintAt(screen, "Next:", panelX, int(offsetY)+80)

	small := cell / 2
	for i := 0; i < tetris.MaxPieceSize; i++ {
		for j := 0; j < tetris.MaxPieceSize; j++ {
			if snap.Next[i][j] {
				vector.DrawFilledRect(screen, float32(panelX)+float32(j)*small, offsetY+100+float32(i)*small, small-1, small-1, blockColor, false)
			}
		}
	}

	helpX := int(offsetX) - 150
	ebitenutil.DebugPrintAt(screen, "Use arrow keys\n  to move", helpX, int(offsetY)+120)
	ebitenutil.DebugPrintAt(screen, "Rotate with\n 'z' or 'x'", helpX, int(offsetY)+170)

	if snap.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(offsetX)+snap.Width*g.cellSize/2-30, int(offsetY)+snap.Height*g.cellSize/2-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", int(offsetX)+snap.Width*g.cellSize/2-55, int(offsetY)+snap.Height*g.cellSize/2+10)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
