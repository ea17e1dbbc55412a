package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Workers  int
	Seed     uint64

	// Results
	Games          int
	TotalTicks     int64
	TotalTime      time.Duration
	MaxScore       int
	TotalScore     int
	Stats          *tetris.Stats
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Add folds one worker's result into the report.
func (r *Report) Add(res *WorkerResult) {
	r.Games += res.Games
	r.TotalTicks += res.Ticks
	for _, s := range res.Scores {
		r.TotalScore += s
		r.MaxScore = max(r.MaxScore, s)
	}
	r.Stats.Merge(res.Stats)
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTime...)
}

func (r *Report) AvgScore() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Games)
}

// ClearRows lists lock events by number of rows cleared.
func (r *Report) ClearRows() []ClearRow {
	rows := make([]ClearRow, 0, 5)
	for lines := 0; lines <= 4; lines++ {
		rows = append(rows, ClearRow{Lines: lines, Count: r.Stats.Clears(lines)})
	}
	return rows
}

type ClearRow struct {
	Lines int
	Count int
}

type ShapeRow struct {
	Shape tetris.Shape
	Count int
}

func (r *Report) ShapeRows() []ShapeRow {
	rows := make([]ShapeRow, 0, tetris.ShapeCount)
	for _, shape := range tetris.Shapes {
		rows = append(rows, ShapeRow{Shape: shape, Count: r.Stats.Spawned(shape)})
	}
	return rows
}

// Stats summarizes tick durations.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Workers:** {{.Workers}}
- **Base Seed:** {{.Seed}}

## Games
- **Finished Games:** {{.Games}}
- **Total Ticks:** {{.TotalTicks}}
- **Score:** avg {{printf "%.1f" .AvgScore}}, max {{.MaxScore}}
- **Locks:** {{.Stats.Locks}}
- **Lines:** {{.Stats.Lines}}
- **Lock events by rows cleared:**
{{- range .ClearRows}}
  - {{.Lines}}: {{.Count}}
{{- end}}
- **Pieces spawned:**
{{- range .ShapeRows}}
  - {{.Shape}}: {{.Count}}
{{- end}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **P99:** {{.UpdateTime.P99}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
