package tetris

// Cell is the state of a single board cell.
type Cell uint8

const (
	// Empty cells hold nothing.
	Empty Cell = iota
	// Locked cells are settled terrain. Only line clears remove them.
	Locked
	// Active cells belong to the falling piece and are recomputed every tick.
	Active
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Locked:
		return "locked"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}
