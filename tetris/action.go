package tetris

// Action is the single input a driver may apply in one tick.
type Action uint8

const (
	None Action = iota
	MoveLeft
	MoveRight
	MoveDown
	RotateCW
	RotateCCW
)

var actionNames = [...]string{
	None:      "none",
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	MoveDown:  "move-down",
	RotateCW:  "rotate-cw",
	RotateCCW: "rotate-ccw",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}
