package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

func (st *SystemStats) record(d time.Duration) {
	if st.ExecutionCount == 0 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
	st.LastDuration = d
	st.TotalDuration += d
	st.ExecutionCount++
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

type entry struct {
	system System
	stats  SystemStats
}

// Scheduler runs systems against one game, in order, once per tick.
type Scheduler struct {
	game    *tetris.Game
	entries []*entry
	ticks   int64
	stopped bool
}

// NewScheduler creates a scheduler for the given game.
func NewScheduler(game *tetris.Game) *Scheduler {
	return &Scheduler{game: game}
}

// Register appends a system to the tick. Its stats are reported under the
// system's type name.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.entries = append(s.entries, &entry{system: system, stats: SystemStats{Name: t.Name()}})
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.game)

	for _, e := range s.entries {
		start := time.Now()
		e.system.Execute(frame)
		e.stats.record(time.Since(start))
	}

	s.ticks++
	if frame.Commands.Flush() {
		s.stopped = true
	}
}

// Run ticks every interval until the context is cancelled or a system asks
// to stop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for !s.stopped {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stopped reports whether a system requested a stop.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Resume clears a stop request so Run can be called again.
func (s *Scheduler) Resume() {
	s.stopped = false
}

// Ticks returns how many times Once has run.
func (s *Scheduler) Ticks() int64 {
	return s.ticks
}

// GetStats returns a copy of the execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.entries),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, 0, len(s.entries)),
	}
	for _, e := range s.entries {
		stats.Systems = append(stats.Systems, e.stats)
		stats.TotalExecutions += e.stats.ExecutionCount
	}
	return stats
}
