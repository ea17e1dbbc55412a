package tetris

import "fmt"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeO Shape = iota
	ShapeI
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

// Shapes lists every shape in catalog order.
var Shapes = [ShapeCount]Shape{ShapeO, ShapeI, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// Point is a column/row pair. Inside a piece it is relative to the piece
// origin; elsewhere it is an absolute board coordinate.
type Point struct {
	X, Y int
}

type template struct {
	letter byte
	size   int
	cells  [4]Point
}

// catalog holds the canonical orientation of every shape inside its
// bounding box. Points are {column, row}.
var catalog = [ShapeCount]template{
	ShapeO: {'O', 2, [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeI: {'I', 4, [4]Point{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
	ShapeT: {'T', 3, [4]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeS: {'S', 3, [4]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
	ShapeZ: {'Z', 3, [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	ShapeJ: {'J', 3, [4]Point{{1, 0}, {1, 1}, {0, 2}, {1, 2}}},
	ShapeL: {'L', 3, [4]Point{{1, 0}, {1, 1}, {1, 2}, {2, 2}}},
}

// Size returns the edge length of the shape's bounding box.
func (s Shape) Size() int {
	return catalog[s].size
}

// Letter returns the canonical letter for the shape.
func (s Shape) Letter() byte {
	return catalog[s].letter
}

func (s Shape) String() string {
	if int(s) >= ShapeCount {
		return fmt.Sprintf("Shape(%d)", s)
	}
	return string(s.Letter())
}

// ParseShape maps a letter such as 'T' to its shape.
func ParseShape(letter byte) (Shape, bool) {
	for _, s := range Shapes {
		if catalog[s].letter == letter {
			return s, true
		}
	}
	return 0, false
}
