package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/space"
)

type Report struct {
	// Configuration
	Games          int
	GameDuration   time.Duration
	Frame          time.Duration
	Seed           uint64
	GCPauseMetrics bool

	// Results
	Variants      []*VariantReport
	TotalTime     time.Duration
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// VariantReport aggregates every game played on one variant.
type VariantReport struct {
	Name       string
	Frames     int64
	Actions    int64
	Locks      int64
	Lines      int64
	GameOvers  int64
	BestScore  int
	UpdateTime Stats

	clears   *intmap.Map[int, int64]
	maxClear int
	spawns   *intmap.Map[space.Cell, int]
}

func NewVariantReport(name string) *VariantReport {
	return &VariantReport{
		Name:   name,
		clears: intmap.New[int, int64](8),
		spawns: intmap.New[space.Cell, int](len(space.Kinds)),
	}
}

// AddClear records one lock that cleared n layers.
func (v *VariantReport) AddClear(n int) {
	c, _ := v.clears.Get(n)
	v.clears.Put(n, c+1)
	v.maxClear = max(v.maxClear, n)
}

// AddSpawns merges per-kind spawn counts.
func (v *VariantReport) AddSpawns(counts map[space.Cell]int) {
	for kind, n := range counts {
		c, _ := v.spawns.Get(kind)
		v.spawns.Put(kind, c+n)
	}
}

type Count struct {
	Label string
	N     int64
}

// Clears returns clear counts ordered by layers cleared.
func (v *VariantReport) Clears() []Count {
	var out []Count
	for n := 1; n <= v.maxClear; n++ {
		if c, ok := v.clears.Get(n); ok {
			out = append(out, Count{Label: fmt.Sprintf("%d layer(s)", n), N: c})
		}
	}
	return out
}

// Spawns returns spawn counts in kind order.
func (v *VariantReport) Spawns() []Count {
	out := make([]Count, 0, len(space.Kinds))
	for _, kind := range space.Kinds {
		c, _ := v.spawns.Get(kind)
		out = append(out, Count{Label: kind.String(), N: int64(c)})
	}
	return out
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Games per Variant:** {{.Games}}
- **Virtual Time per Game:** {{.GameDuration}}
- **Frame:** {{.Frame}}
- **Seed:** {{.Seed}}
{{range .Variants}}
## {{.Name}}
- **Frames:** {{.Frames}}
- **Actions:** {{.Actions}}
- **Locks:** {{.Locks}}
- **Lines:** {{.Lines}}
- **Game Overs:** {{.GameOvers}}
- **Best Score:** {{.BestScore}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Clears:**{{range .Clears}}
  - {{.Label}}: {{.N}}{{else}} none{{end}}
- **Spawns:**{{range .Spawns}}
  - {{.Label}}: {{.N}}{{end}}
{{end}}
## Totals
- **Total Test Time:** {{.TotalTime}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
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
