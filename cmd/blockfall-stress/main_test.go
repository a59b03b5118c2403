package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	v := NewVariantReport("planar")
	cfg := config{duration: 2 * time.Minute, frame: 16 * time.Millisecond, actionRate: 0.5}

	err := simulate(engine.NewPlanar, rand.New(rand.NewPCG(1, 2)), cfg, v)
	require.NoError(t, err)

	assert.Equal(t, int64(cfg.duration/cfg.frame), v.Frames)
	assert.Len(t, v.UpdateTime.Samples, int(v.Frames))
	assert.Greater(t, v.Locks, int64(0))
	assert.Greater(t, v.Actions, int64(0))

	total := int64(0)
	for _, c := range v.Spawns() {
		total += c.N
	}
	// Every lock spawns a piece, plus one for each start.
	assert.GreaterOrEqual(t, total, v.Locks)
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config{duration: time.Minute, frame: 16 * time.Millisecond}

	run := func() *VariantReport {
		v := NewVariantReport("volumetric")
		require.NoError(t, simulate(engine.NewVolumetric, rand.New(rand.NewPCG(9, 9)), cfg, v))
		return v
	}

	a, b := run(), run()
	assert.Equal(t, a.Locks, b.Locks)
	assert.Equal(t, a.Lines, b.Lines)
	assert.Equal(t, a.Spawns(), b.Spawns())
	assert.Equal(t, a.Clears(), b.Clears())
}

func TestVariantReportCounts(t *testing.T) {
	v := NewVariantReport("x")
	v.AddClear(2)
	v.AddClear(1)
	v.AddClear(2)
	v.AddSpawns(map[space.Cell]int{space.T: 3, space.I: 1})
	v.AddSpawns(map[space.Cell]int{space.T: 1})

	assert.Equal(t, []Count{{Label: "1 layer(s)", N: 1}, {Label: "2 layer(s)", N: 2}}, v.Clears())

	spawns := v.Spawns()
	require.Len(t, spawns, len(space.Kinds))
	assert.Equal(t, Count{Label: "I", N: 1}, spawns[0])
	assert.Equal(t, Count{Label: "T", N: 4}, spawns[2])
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	v := NewVariantReport("planar")
	v.Frames = 10
	v.AddClear(4)
	v.AddSpawns(map[space.Cell]int{space.O: 2})

	r := &Report{Games: 1, GameDuration: time.Second, Frame: time.Millisecond, Seed: 7, Variants: []*VariantReport{v}}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "## planar")
	assert.Contains(t, out, "- **Frames:** 10")
	assert.Contains(t, out, "  - 4 layer(s): 1")
	assert.Contains(t, out, "  - O: 2")
	assert.NotContains(t, out, "GC Pause")
}
