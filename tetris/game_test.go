package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameSpawnsCurrentAndNext(t *testing.T) {
	g := newTestGame(t, tetris.ShapeT, tetris.ShapeO, tetris.ShapeL)

	assert.Equal(t, tetris.ShapeT, g.Current.Shape)
	assert.Equal(t, tetris.ShapeO, g.Next.Shape)
	assert.Equal(t, tetris.DefaultSpawnX, g.Current.X)
	assert.Equal(t, 0, g.Current.Y)
	assert.Equal(t, 3, g.Current.Size)
	assert.Equal(t, 2, g.Next.Size)
	assert.Equal(t, 1, g.Stats.Pieces())
	assert.False(t, g.Over())

	g.Advance()
	assert.Equal(t, tetris.ShapeO, g.Current.Shape)
	assert.Equal(t, tetris.ShapeL, g.Next.Shape)
	assert.Equal(t, 2, g.Stats.Pieces())
}

func TestSeededGamesAreReproducible(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 42

	a, err := tetris.NewGame(cfg)
	require.NoError(t, err)
	b, err := tetris.NewGame(cfg)
	require.NoError(t, err)

	for range 50 {
		assert.Equal(t, a.SpawnNext(), b.SpawnNext())
	}
}

func TestSpawnCoversEveryShape(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 7
	g, err := tetris.NewGame(cfg)
	require.NoError(t, err)

	seen := make(map[tetris.Shape]int)
	for range 700 {
		p := g.SpawnNext()
		seen[p.Shape]++
		assert.Equal(t, 4, p.FilledCount())
		assert.Equal(t, p.Shape.Size(), p.Size)
	}
	assert.Len(t, seen, tetris.ShapeCount)
}

func TestApply(t *testing.T) {
	g := newTestGame(t, tetris.ShapeT)

	assert.False(t, g.Apply(tetris.None))
	assert.True(t, g.Apply(tetris.MoveLeft))
	assert.Equal(t, 3, g.Current.X)
	assert.True(t, g.Apply(tetris.MoveRight))
	assert.Equal(t, 4, g.Current.X)
	assert.True(t, g.Apply(tetris.MoveDown))
	assert.Equal(t, 1, g.Current.Y)

	grid := g.Current.Grid
	assert.True(t, g.Apply(tetris.RotateCW))
	assert.NotEqual(t, grid, g.Current.Grid)
	assert.True(t, g.Apply(tetris.RotateCCW))
	assert.Equal(t, grid, g.Current.Grid)
}

func TestStepFallsThenLocks(t *testing.T) {
	g := newTestGame(t, tetris.ShapeO)

	for y := 1; y <= 14; y++ {
		res := g.Step()
		assert.Equal(t, tetris.StepResult{Moved: true}, res)
		assert.Equal(t, y, g.Current.Y)
	}

	res := g.Step()
	assert.True(t, res.Locked)
	assert.Equal(t, 0, res.Lines)
	assert.False(t, res.GameOver)
	assert.Equal(t, 4, g.Board.LockedCount())
	assert.Equal(t, 0, g.Current.Y)
	assert.Equal(t, 1, g.Stats.Locks)
	assert.Equal(t, 1, g.Stats.Clears(0))
}

func TestStepClearsAndScores(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		g := newTestGame(t, tetris.ShapeO)
		fillRow(g.Board, 15, 4, 5)

		var res tetris.StepResult
		for !res.Locked {
			res = g.Step()
		}

		assert.Equal(t, 1, res.Lines)
		assert.Equal(t, 40, res.Points)
		assert.Equal(t, 40, g.Score.Points())
		assert.Equal(t, 1, g.Stats.Lines)
		assert.Equal(t, 2, g.Board.LockedCount())
		assert.Equal(t, tetris.Locked, g.Board.At(4, 15))
		assert.Equal(t, tetris.Locked, g.Board.At(5, 15))
	})

	t.Run("four", func(t *testing.T) {
		g := newTestGame(t, tetris.ShapeI)
		col := tetris.DefaultSpawnX + 1
		for y := 12; y < 16; y++ {
			fillRow(g.Board, y, col)
		}

		var res tetris.StepResult
		for !res.Locked {
			res = g.Step()
		}

		assert.Equal(t, 4, res.Lines)
		assert.Equal(t, 1200, g.Score.Points())
		assert.Equal(t, 0, g.Board.LockedCount())
		assert.Equal(t, 1, g.Stats.Clears(4))
	})
}

func TestGameOverOnObstructedSpawn(t *testing.T) {
	for _, shape := range tetris.Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			b := tetris.NewBoard(10, 16)
			for y := 1; y < 16; y++ {
				fillRow(b, y, 0)
			}
			p := tetris.NewPiece(shape, tetris.DefaultSpawnX, 0)
			assert.True(t, tetris.IsGameOver(&p, b))
		})
	}

	t.Run("not at the top row", func(t *testing.T) {
		b := tetris.NewBoard(10, 16)
		p := tetris.NewPiece(tetris.ShapeO, 4, 14)
		assert.False(t, tetris.CanMove(&p, b, tetris.Down))
		assert.False(t, tetris.IsGameOver(&p, b))
	})

	t.Run("free board", func(t *testing.T) {
		b := tetris.NewBoard(10, 16)
		p := tetris.NewPiece(tetris.ShapeI, 4, 0)
		assert.False(t, tetris.IsGameOver(&p, b))
	})
}

func TestStepEndsGame(t *testing.T) {
	g := newTestGame(t, tetris.ShapeO)
	for y := 2; y < 16; y++ {
		fillRow(g.Board, y, 0)
	}

	res := g.Step()
	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.True(t, g.Over())

	before := g.Current
	assert.Equal(t, tetris.StepResult{GameOver: true}, g.Step())
	assert.False(t, g.Apply(tetris.MoveLeft))
	assert.False(t, g.Apply(tetris.RotateCW))
	assert.Equal(t, before, g.Current)
}

func TestRefreshOverlay(t *testing.T) {
	g := newTestGame(t, tetris.ShapeT)
	countActive := func() int {
		n := 0
		for y := 0; y < g.Board.Height(); y++ {
			for x := 0; x < g.Board.Width(); x++ {
				if g.Board.At(x, y) == tetris.Active {
					n++
				}
			}
		}
		return n
	}

	g.Refresh()
	assert.Equal(t, 4, countActive())

	g.Move(tetris.Down)
	g.Move(tetris.Left)
	g.Refresh()
	assert.Equal(t, 4, countActive())
	for _, pt := range g.Current.Blocks() {
		assert.Equal(t, tetris.Active, g.Board.At(pt.X, pt.Y))
	}

	// A locked cell under the piece is never overwritten by the overlay.
	pt := g.Current.Blocks()[0]
	g.Board.Set(pt.X, pt.Y, tetris.Locked)
	g.Refresh()
	assert.Equal(t, 3, countActive())
	assert.Equal(t, tetris.Locked, g.Board.At(pt.X, pt.Y))
}

func TestDropDistance(t *testing.T) {
	g := newTestGame(t, tetris.ShapeO)
	assert.Equal(t, 14, g.DropDistance())
	assert.Equal(t, 0, g.Current.Y)

	g.Board.Set(4, 10, tetris.Locked)
	assert.Equal(t, 8, g.DropDistance())
}

func TestReset(t *testing.T) {
	g := newTestGame(t, tetris.ShapeO)
	fillRow(g.Board, 15, 4, 5)
	for !g.Step().Locked {
	}
	require.Equal(t, 40, g.Score.Points())

	g.Reset()

	assert.Equal(t, 0, g.Score.Points())
	assert.Equal(t, 0, g.Board.LockedCount())
	assert.Equal(t, 0, g.Stats.Lines)
	assert.Equal(t, 1, g.Stats.Pieces())
	assert.False(t, g.Over())
	assert.Equal(t, 0, g.Current.Y)
}
