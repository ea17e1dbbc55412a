package tetris

import "github.com/kamstrup/intmap"

// Stats records what happened during a session.
type Stats struct {
	Locks int
	Lines int

	spawned *intmap.Map[Shape, int]
	clears  *intmap.Map[int, int]
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{
		spawned: intmap.New[Shape, int](ShapeCount),
		clears:  intmap.New[int, int](len(lineBonus)),
	}
}

// RecordSpawn counts a piece entering play.
func (s *Stats) RecordSpawn(shape Shape) {
	n, _ := s.spawned.Get(shape)
	s.spawned.Put(shape, n+1)
}

// RecordLock counts a lock event that cleared lines rows.
func (s *Stats) RecordLock(lines int) {
	s.Locks++
	s.Lines += lines
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
}

// Spawned returns how many pieces of the given shape entered play.
func (s *Stats) Spawned(shape Shape) int {
	n, _ := s.spawned.Get(shape)
	return n
}

// Pieces returns how many pieces entered play in total.
func (s *Stats) Pieces() int {
	total := 0
	for _, shape := range Shapes {
		total += s.Spawned(shape)
	}
	return total
}

// Clears returns how many lock events cleared exactly lines rows.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

func (s *Stats) Reset() {
	s.Locks = 0
	s.Lines = 0
	s.spawned.Clear()
	s.clears.Clear()
}

// Merge adds the counts of other into s.
func (s *Stats) Merge(other *Stats) {
	s.Locks += other.Locks
	s.Lines += other.Lines
	for _, shape := range Shapes {
		if n := other.Spawned(shape); n > 0 {
			s.spawned.Put(shape, s.Spawned(shape)+n)
		}
	}
	for lines := range lineBonus {
		if n := other.Clears(lines); n > 0 {
			s.clears.Put(lines, s.Clears(lines)+n)
		}
	}
}
