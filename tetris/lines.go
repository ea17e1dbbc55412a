package tetris

// Lock writes every filled cell of p onto b as settled terrain.
func Lock(p *Piece, b *Board) {
	for pt := range p.Cells() {
		x, y := p.X+pt.X, p.Y+pt.Y
		if b.Contains(x, y) {
			b.Set(x, y, Locked)
		}
	}
}

// ResolveLines clears every full row in [start, start+count) and lets the
// rows above fall into place. Only the rows a lock touched can have been
// completed by it, so callers pass the locked piece's vertical span. Rows
// are handled top to bottom, one collapse at a time; a collapse only moves
// rows above the one being cleared, so rows still to be checked keep their
// index. Returns the number of rows cleared.
func ResolveLines(b *Board, start, count int) int {
	cleared := 0
	for y := max(start, 0); y < start+count && y < b.Height(); y++ {
		if !b.RowFull(y) {
			continue
		}
		b.collapseRow(y)
		cleared++
	}
	return cleared
}
