package tetris

import "fmt"

// MaxScore is the largest score the display can hold.
const MaxScore = 999999

var lineBonus = [...]int{0, 40, 100, 300, 1200}

// ScoreTracker accumulates points per lock event.
type ScoreTracker struct {
	points int
}

// Award adds the bonus for clearing lines rows in one lock and returns the
// points actually added after saturating at MaxScore.
func (s *ScoreTracker) Award(lines int) int {
	if lines <= 0 || lines >= len(lineBonus) {
		return 0
	}
	before := s.points
	s.points = min(s.points+lineBonus[lines], MaxScore)
	return s.points - before
}

// Points returns the current score.
func (s *ScoreTracker) Points() int {
	return s.points
}

func (s *ScoreTracker) Reset() {
	s.points = 0
}

// String formats the score the way the scoreboard shows it.
func (s *ScoreTracker) String() string {
	return fmt.Sprintf("%06d", s.points)
}
