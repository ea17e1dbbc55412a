package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector shows the live session: score, statistics, the pieces in
// play and the raw board with its cell states.
type GameInspector struct {
	driver *loop.Driver
}

func NewGameInspector(d *loop.Driver) *GameInspector {
	return &GameInspector{driver: d}
}

func (gi *GameInspector) Render() {
	game := gi.driver.Game

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 400), imgui.CondOnce)

	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %s", game.Score.String()))
	imgui.Text(fmt.Sprintf("Lines: %d  Locks: %d", game.Stats.Lines, game.Stats.Locks))
	imgui.Text(fmt.Sprintf("Game over: %v", game.Over()))
	imgui.Separator()

	cur := game.Current
	imgui.Text(fmt.Sprintf("Current: %s at (%d,%d) size %d", cur.Shape, cur.X, cur.Y, cur.Size))
	imgui.Text(fmt.Sprintf("Next: %s", game.Next.Shape))
	imgui.Text(fmt.Sprintf("Drop distance: %d", game.DropDistance()))

	last := gi.driver.Gravity.Last()
	imgui.Text(fmt.Sprintf("Last step: moved=%v locked=%v lines=%d", last.Moved, last.Locked, last.Lines))

	if imgui.TreeNodeStr("Spawned Shapes") {
		for _, shape := range tetris.Shapes {
			imgui.BulletText(fmt.Sprintf("%s: %d", shape, game.Stats.Spawned(shape)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears per Lock") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Lines")
			imgui.TableSetupColumn("Locks")
			imgui.TableHeadersRow()

			for lines := 0; lines <= 4; lines++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", lines))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", game.Stats.Clears(lines)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(boardText(game.Board))
		imgui.TreePop()
	}

	imgui.End()
}

// boardText draws the board with '.' for empty, '#' for locked and '@' for
// the active overlay.
func boardText(b *tetris.Board) string {
	buf := make([]byte, 0, (b.Width()+1)*b.Height())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			switch b.At(x, y) {
			case tetris.Locked:
				buf = append(buf, '#')
			case tetris.Active:
				buf = append(buf, '@')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
