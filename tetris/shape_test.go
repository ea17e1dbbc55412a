package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	sizes := map[tetris.Shape]int{
		tetris.ShapeO: 2,
		tetris.ShapeI: 4,
		tetris.ShapeT: 3,
		tetris.ShapeS: 3,
		tetris.ShapeZ: 3,
		tetris.ShapeJ: 3,
		tetris.ShapeL: 3,
	}

	assert.Len(t, tetris.Shapes, 7)
	for _, shape := range tetris.Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			p := tetris.NewPiece(shape, 0, 0)
			assert.Equal(t, sizes[shape], p.Size)
			assert.Equal(t, 4, p.FilledCount())

			for pt := range p.Cells() {
				assert.Less(t, pt.X, p.Size)
				assert.Less(t, pt.Y, p.Size)
			}
		})
	}
}

func TestShapeLetters(t *testing.T) {
	assert.Equal(t, "OITSZJL", func() string {
		s := ""
		for _, shape := range tetris.Shapes {
			s += shape.String()
		}
		return s
	}())

	for _, shape := range tetris.Shapes {
		parsed, ok := tetris.ParseShape(shape.Letter())
		assert.True(t, ok)
		assert.Equal(t, shape, parsed)
	}

	_, ok := tetris.ParseShape('X')
	assert.False(t, ok)
}

func TestPieceTemplates(t *testing.T) {
	tests := []struct {
		shape tetris.Shape
		cells []tetris.Point
	}{
		{tetris.ShapeO, []tetris.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{tetris.ShapeI, []tetris.Point{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{tetris.ShapeT, []tetris.Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{tetris.ShapeS, []tetris.Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{tetris.ShapeZ, []tetris.Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
		{tetris.ShapeJ, []tetris.Point{{1, 0}, {1, 1}, {0, 2}, {1, 2}}},
		{tetris.ShapeL, []tetris.Point{{1, 0}, {1, 1}, {1, 2}, {2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := tetris.NewPiece(tt.shape, 3, 2)
			var got []tetris.Point
			for pt := range p.Cells() {
				got = append(got, pt)
			}
			assert.ElementsMatch(t, tt.cells, got)

			for i, pt := range p.Blocks() {
				assert.Equal(t, got[i].X+3, pt.X)
				assert.Equal(t, got[i].Y+2, pt.Y)
			}
		})
	}
}
