package tetris

import "iter"

// MaxPieceSize is the largest bounding box in the catalog.
const MaxPieceSize = 4

// Grid is a piece occupancy grid indexed [row][column]. Only the top-left
// Size×Size corner is meaningful.
type Grid [MaxPieceSize][MaxPieceSize]bool

// Piece is a tetromino with an origin at the top-left of its bounding box.
type Piece struct {
	Shape Shape
	X, Y  int
	Size  int
	Grid  Grid
}

// NewPiece builds a piece in its canonical orientation at (x, y).
func NewPiece(shape Shape, x, y int) Piece {
	t := catalog[shape]
	p := Piece{
		Shape: shape,
		X:     x,
		Y:     y,
		Size:  t.size,
	}
	for _, pt := range t.cells {
		p.Grid[pt.Y][pt.X] = true
	}
	return p
}

// Cells yields the filled cells relative to the origin, row by row.
func (p *Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < p.Size; i++ {
			for j := 0; j < p.Size; j++ {
				if !p.Grid[i][j] {
					continue
				}
				if !yield(Point{X: j, Y: i}) {
					return
				}
			}
		}
	}
}

// Blocks returns the absolute board coordinates of the filled cells.
func (p *Piece) Blocks() []Point {
	blocks := make([]Point, 0, 4)
	for pt := range p.Cells() {
		blocks = append(blocks, Point{X: p.X + pt.X, Y: p.Y + pt.Y})
	}
	return blocks
}

// FilledCount returns the number of filled cells in the grid.
func (p *Piece) FilledCount() int {
	n := 0
	for range p.Cells() {
		n++
	}
	return n
}
