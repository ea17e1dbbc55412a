package tetris

import "strings"

// Snapshot is a read-only copy of what a renderer needs. It shares no
// memory with the Game it came from.
type Snapshot struct {
	Width    int
	Height   int
	Cells    []bool
	Score    int
	Lines    int
	Next     Grid
	NextSize int
	GameOver bool
}

// Snapshot refreshes the overlay and copies the visible state.
func (g *Game) Snapshot() Snapshot {
	g.Refresh()

	b := g.Board
	s := Snapshot{
		Width:    b.width,
		Height:   b.height,
		Cells:    make([]bool, len(b.cells)),
		Score:    g.Score.Points(),
		Lines:    g.Stats.Lines,
		Next:     g.Next.Grid,
		NextSize: g.Next.Size,
		GameOver: g.over,
	}
	for i, c := range b.cells {
		s.Cells[i] = c != Empty
	}
	return s
}

// Occupied reports whether (x, y) shows a block.
func (s Snapshot) Occupied(x, y int) bool {
	return s.Cells[y*s.Width+x]
}

// String renders the board one line per row with '#' for blocks.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Occupied(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// NextString renders the lookahead piece in a MaxPieceSize square.
func (s Snapshot) NextString() string {
	var sb strings.Builder
	for i := 0; i < MaxPieceSize; i++ {
		for j := 0; j < MaxPieceSize; j++ {
			if s.Next[i][j] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
