package tetris

// Board is a fixed-size grid of cells stored row-major.
// x addresses columns and y addresses rows, with y = 0 at the top.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an all-empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Contains reports whether (x, y) lies inside the board.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). The coordinates must be inside the board.
func (b *Board) At(x, y int) Cell {
	return b.cells[y*b.width+x]
}

// Set stores c at (x, y). The coordinates must be inside the board.
func (b *Board) Set(x, y int, c Cell) {
	b.cells[y*b.width+x] = c
}

// IsLocked reports whether (x, y) is inside the board and holds settled terrain.
func (b *Board) IsLocked(x, y int) bool {
	return b.Contains(x, y) && b.At(x, y) == Locked
}

// RowFull reports whether every cell of row y is locked.
func (b *Board) RowFull(y int) bool {
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, c := range row {
		if c != Locked {
			return false
		}
	}
	return true
}

// LockedCount returns the number of locked cells on the board.
func (b *Board) LockedCount() int {
	n := 0
	for _, c := range b.cells {
		if c == Locked {
			n++
		}
	}
	return n
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// collapseRow clears row line and moves every locked cell above it one row
// down. Walking upward from the cleared row means each destination row has
// already been vacated when cells land in it.
func (b *Board) collapseRow(line int) {
	for y := line; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if b.At(x, y) != Locked {
				continue
			}
			b.Set(x, y, Empty)
			if y != line {
				b.Set(x, y+1, Locked)
			}
		}
	}
}

// clearActive drops the overlay left by a previous tick.
func (b *Board) clearActive() {
	for i, c := range b.cells {
		if c == Active {
			b.cells[i] = Empty
		}
	}
}

// markActive overlays p onto the board. Cells outside the board or already
// locked are skipped so the overlay never hides terrain.
func (b *Board) markActive(p *Piece) {
	for pt := range p.Cells() {
		x, y := p.X+pt.X, p.Y+pt.Y
		if b.Contains(x, y) && b.At(x, y) == Empty {
			b.Set(x, y, Active)
		}
	}
}
