package tetris

import "math/rand/v2"

// StepResult describes what one autoscroll step did.
type StepResult struct {
	// Moved is set when the piece fell one row.
	Moved bool
	// Locked is set when the piece settled and the next one spawned.
	Locked bool
	// Lines is the number of rows the lock cleared.
	Lines int
	// Points is the score the lock added.
	Points   int
	GameOver bool
}

// Game owns the whole session state. It is not safe for concurrent use:
// one driver goroutine mutates it and renderers read Snapshots.
type Game struct {
	Board   *Board
	Current Piece
	Next    Piece
	Score   ScoreTracker
	Stats   *Stats

	cfg  Config
	rng  Randomizer
	over bool
}

// NewGame validates cfg and starts a session with an empty board.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	g := &Game{
		Board: NewBoard(cfg.Width, cfg.Height),
		Stats: NewStats(),
		cfg:   cfg,
		rng:   rng,
	}
	g.start()
	return g, nil
}

func (g *Game) start() {
	g.Next = g.SpawnNext()
	g.Advance()
	g.Refresh()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// SpawnNext draws a uniformly random shape at the spawn position.
func (g *Game) SpawnNext() Piece {
	shape := Shapes[g.rng.IntN(ShapeCount)]
	return NewPiece(shape, g.cfg.SpawnX, 0)
}

// Advance promotes the lookahead piece and draws a new one.
func (g *Game) Advance() {
	g.Current = g.Next
	g.Next = g.SpawnNext()
	g.Stats.RecordSpawn(g.Current.Shape)
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

// Move shifts the current piece. Refused once the game is over.
func (g *Game) Move(d Direction) bool {
	if g.over {
		return false
	}
	return Move(&g.Current, g.Board, d)
}

// Rotate turns the current piece. Refused once the game is over.
func (g *Game) Rotate(r Rotation) bool {
	if g.over {
		return false
	}
	return Rotate(&g.Current, g.Board, r)
}

// Apply performs a single input action and reports whether it changed the
// current piece.
func (g *Game) Apply(a Action) bool {
	switch a {
	case MoveLeft:
		return g.Move(Left)
	case MoveRight:
		return g.Move(Right)
	case MoveDown:
		return g.Move(Down)
	case RotateCW:
		return g.Rotate(Clockwise)
	case RotateCCW:
		return g.Rotate(CounterClockwise)
	}
	return false
}

// Step runs one autoscroll event: the piece falls a row, or it locks, full
// rows are resolved and scored, and the next piece spawns.
func (g *Game) Step() StepResult {
	if g.over {
		return StepResult{GameOver: true}
	}
	if g.Move(Down) {
		return StepResult{Moved: true}
	}

	g.Board.clearActive()
	Lock(&g.Current, g.Board)
	lines := ResolveLines(g.Board, g.Current.Y, g.Current.Size)
	points := g.Score.Award(lines)
	g.Stats.RecordLock(lines)

	g.Advance()
	g.over = IsGameOver(&g.Current, g.Board)

	return StepResult{
		Locked:   true,
		Lines:    lines,
		Points:   points,
		GameOver: g.over,
	}
}

// IsGameOver reports whether a freshly spawned piece is stuck on the top row.
func IsGameOver(p *Piece, b *Board) bool {
	return p.Y == 0 && !CanMove(p, b, Down)
}

// DropDistance returns how many rows the current piece can still fall.
func (g *Game) DropDistance() int {
	ghost := g.Current
	n := 0
	for Move(&ghost, g.Board, Down) {
		n++
	}
	return n
}

// Refresh recomputes the active-piece overlay on the board.
func (g *Game) Refresh() {
	g.Board.clearActive()
	g.Board.markActive(&g.Current)
}

// Reset clears the board, score and stats and starts a new session with
// the same configuration and randomizer.
func (g *Game) Reset() {
	g.Board.Reset()
	g.Score.Reset()
	g.Stats.Reset()
	g.over = false
	g.start()
}
