package tetris

// Rotation is a quarter turn of a piece inside its bounding box.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (r Rotation) String() string {
	if r == Clockwise {
		return "cw"
	}
	return "ccw"
}

// CanRotate reports whether p may rotate on b. The whole bounding box must
// be on the board and free of locked cells, including cells the piece does
// not occupy.
func CanRotate(p *Piece, b *Board) bool {
	if p.X < 0 || p.X+p.Size > b.Width() {
		return false
	}
	for i := 0; i < p.Size; i++ {
		for j := 0; j < p.Size; j++ {
			x, y := p.X+j, p.Y+i
			if !b.Contains(x, y) || b.At(x, y) == Locked {
				return false
			}
		}
	}
	return true
}

// Rotate turns p a quarter in direction r, transforming the occupancy grid
// in place. The origin never changes.
func Rotate(p *Piece, b *Board, r Rotation) bool {
	if !CanRotate(p, b) {
		return false
	}

	var old [4]Point
	n := 0
	for pt := range p.Cells() {
		old[n] = pt
		n++
	}
	for _, pt := range old[:n] {
		p.Grid[pt.Y][pt.X] = false
	}

	last := p.Size - 1
	for _, pt := range old[:n] {
		i, j := pt.Y, pt.X
		if r == Clockwise {
			p.Grid[j][last-i] = true
		} else {
			p.Grid[last-j][i] = true
		}
	}
	return true
}
