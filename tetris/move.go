package tetris

// Direction is a one-cell translation.
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	}
	return 0, 0
}

// CanMove reports whether p can shift one cell in direction d on b.
func CanMove(p *Piece, b *Board, d Direction) bool {
	dx, dy := d.delta()
	return fits(p, b, dx, dy)
}

// Move shifts p one cell in direction d if nothing blocks it. The origin is
// left untouched when the move is refused.
func Move(p *Piece, b *Board, d Direction) bool {
	dx, dy := d.delta()
	if !fits(p, b, dx, dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// fits reports whether every filled cell of p, offset by (dx, dy), lands
// inside b on a cell that is not locked.
func fits(p *Piece, b *Board, dx, dy int) bool {
	for pt := range p.Cells() {
		x := p.X + pt.X + dx
		y := p.Y + pt.Y + dy
		if !b.Contains(x, y) || b.At(x, y) == Locked {
			return false
		}
	}
	return true
}
