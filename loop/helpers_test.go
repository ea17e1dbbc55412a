package loop_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

type fixedShape tetris.Shape

func (f fixedShape) IntN(n int) int {
	return int(f) % n
}

func newGame(t *testing.T, shape tetris.Shape) *tetris.Game {
	t.Helper()
	cfg := tetris.DefaultConfig()
	cfg.Rand = fixedShape(shape)
	g, err := tetris.NewGame(cfg)
	require.NoError(t, err)
	return g
}

// script replays actions, then returns None forever.
type script struct {
	actions []tetris.Action
	polls   int
}

func (s *script) Poll() tetris.Action {
	s.polls++
	if len(s.actions) == 0 {
		return tetris.None
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a
}

type recorder struct {
	frames []tetris.Snapshot
}

func (r *recorder) Render(snap tetris.Snapshot) {
	r.frames = append(r.frames, snap)
}

func (r *recorder) last() tetris.Snapshot {
	return r.frames[len(r.frames)-1]
}
