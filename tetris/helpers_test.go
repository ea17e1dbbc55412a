package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// sequence hands out shapes in a fixed order, wrapping around.
type sequence struct {
	shapes []tetris.Shape
	next   int
}

func (s *sequence) IntN(n int) int {
	shape := s.shapes[s.next%len(s.shapes)]
	s.next++
	return int(shape) % n
}

func newTestGame(t *testing.T, shapes ...tetris.Shape) *tetris.Game {
	t.Helper()
	cfg := tetris.DefaultConfig()
	cfg.Rand = &sequence{shapes: shapes}
	g, err := tetris.NewGame(cfg)
	require.NoError(t, err)
	return g
}

func fillRow(b *tetris.Board, y int, skip ...int) {
	for x := 0; x < b.Width(); x++ {
		skipped := false
		for _, s := range skip {
			if s == x {
				skipped = true
			}
		}
		if !skipped {
			b.Set(x, y, tetris.Locked)
		}
	}
}

func rowCells(b *tetris.Board, y int) []tetris.Cell {
	row := make([]tetris.Cell, b.Width())
	for x := range row {
		row[x] = b.At(x, y)
	}
	return row
}
