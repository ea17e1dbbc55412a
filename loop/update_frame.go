package loop

import "github.com/plus3/blockfall/tetris"

type UpdateFrame struct {
	DeltaTime float64
	Game      *tetris.Game
	Commands  *Commands
}

func newUpdateFrame(dt float64, game *tetris.Game) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Game:      game,
		Commands:  newCommands(),
	}
}
