package play_test

import (
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planar(t *testing.T, kinds ...space.Cell) *engine.Game[space.Vec2] {
	t.Helper()
	g, err := engine.NewPlanar(engine.WithSource(piece.NewSequence(kinds...)))
	require.NoError(t, err)
	return g
}

func volumetric(t *testing.T, kinds ...space.Cell) *engine.Game[space.Vec3] {
	t.Helper()
	g, err := engine.NewVolumetric(engine.WithSource(piece.NewSequence(kinds...)))
	require.NoError(t, err)
	return g
}

func TestApplyPlanar(t *testing.T) {
	g := planar(t, space.T)
	start, _ := g.Active()

	tests := []struct {
		action play.Action
		ok     bool
		anchor space.Vec2
	}{
		{play.MoveLeft, true, space.Vec2{Row: 0, Col: 2}},
		{play.MoveRight, true, space.Vec2{Row: 0, Col: 3}},
		{play.MoveDown, true, space.Vec2{Row: 1, Col: 3}},
		{play.MoveBack, false, space.Vec2{Row: 1, Col: 3}},
		{play.MoveFront, false, space.Vec2{Row: 1, Col: 3}},
		{play.RotateHeight, false, space.Vec2{Row: 1, Col: 3}},
		{play.RotateWidth, false, space.Vec2{Row: 1, Col: 3}},
		{play.Rotate, true, space.Vec2{Row: 1, Col: 3}},
		{play.RotateDepth, true, space.Vec2{Row: 1, Col: 3}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, play.Apply(g, tt.action, 0), tt.action.String())
		p, _ := g.Active()
		assert.Equal(t, tt.anchor, p.Anchor, tt.action.String())
	}

	p, _ := g.Active()
	assert.Equal(t, 2, p.Rotation[space.AxisDepth])
	assert.Equal(t, start.Kind, p.Kind)
}

func TestApplyVolumetric(t *testing.T) {
	g := volumetric(t, space.O)
	start, _ := g.Active()

	require.True(t, play.Apply(g, play.MoveBack, 0))
	require.True(t, play.Apply(g, play.MoveBack, 0))
	p, _ := g.Active()
	assert.Equal(t, start.Anchor.D-2, p.Anchor.D)

	require.True(t, play.Apply(g, play.MoveFront, 0))
	p, _ = g.Active()
	assert.Equal(t, start.Anchor.D-1, p.Anchor.D)

	for _, a := range []play.Action{play.RotateHeight, play.RotateDepth, play.RotateWidth} {
		assert.True(t, play.Apply(g, a, 0), a.String())
	}
	p, _ = g.Active()
	assert.Equal(t, piece.Rotation{1, 1, 1}, p.Rotation)
}

func TestApplyHardDropHoldAndReset(t *testing.T) {
	g := planar(t, space.O, space.I, space.T)

	require.True(t, play.Apply(g, play.HardDrop, 3*time.Second))
	assert.Equal(t, 4, g.Snapshot().Board.Count())
	assert.Equal(t, 3*time.Second, g.LastFall())

	require.True(t, play.Apply(g, play.Hold, 0))
	held, ok := g.Held()
	require.True(t, ok)
	assert.Equal(t, space.I, held.Kind)

	require.True(t, play.Apply(g, play.Reset, 0))
	_, ok = g.Held()
	assert.False(t, ok)
	assert.Equal(t, 0, g.Score())

	assert.False(t, play.Apply(g, play.Action(200), 0))
	assert.Equal(t, "action(200)", play.Action(200).String())
}

func TestSessionAppliesSubmittedActionsOnTick(t *testing.T) {
	g := planar(t, space.O)
	s := play.NewSession(g)

	s.Submit(play.MoveLeft)
	s.Submit(play.MoveLeft)
	assert.Equal(t, 2, s.Pending())

	// Nothing happens until the scheduler runs.
	p, _ := g.Active()
	assert.Equal(t, 4, p.Anchor.Col)

	s.Tick(0)
	assert.Equal(t, 0, s.Pending())

	snap := s.Latest()
	require.NotNil(t, snap.Active)
	assert.Equal(t, space.Vec2{Row: 0, Col: 2}, snap.Active.Anchor)
}

func TestSessionStepsOnInterval(t *testing.T) {
	g := planar(t, space.O)
	s := play.NewSession(g)

	s.Tick(0)
	s.Tick(g.Interval() / 2)
	assert.Equal(t, 0, s.Latest().Active.Anchor.Row)

	s.Tick(g.Interval())
	assert.Equal(t, 1, s.Latest().Active.Anchor.Row)

	s.SetPaused(true)
	assert.True(t, s.Paused())
	s.Tick(10 * g.Interval())
	assert.Equal(t, 1, s.Latest().Active.Anchor.Row)

	s.SetPaused(false)
	s.Tick(11 * g.Interval())
	assert.Equal(t, 2, s.Latest().Active.Anchor.Row)
}

func TestSessionHardDropUsesFrameTime(t *testing.T) {
	g := planar(t, space.O)
	s := play.NewSession(g)

	s.Tick(0)
	s.Submit(play.HardDrop)
	s.Tick(250 * time.Millisecond)

	assert.Equal(t, 250*time.Millisecond, g.LastFall())
	assert.Equal(t, 2, s.Latest().LayerFill[19])
	assert.Equal(t, 2, s.Latest().LayerFill[18])
}

func TestSessionExtraSystemsAndDo(t *testing.T) {
	g := planar(t, space.T)
	frames := 0
	s := play.NewSession(g, loop.SystemFunc(func(*loop.Frame) { frames++ }))

	var score int
	s.Do(func(g *engine.Game[space.Vec2]) { score = g.Score() + 1 })
	s.Tick(0)
	s.Tick(time.Millisecond)

	assert.Equal(t, 2, frames)
	assert.Equal(t, 1, score)

	stats := s.Scheduler().GetStats()
	require.Len(t, stats.Systems, 3)
	assert.Equal(t, "step", stats.Systems[0].Name)
	assert.Equal(t, "publish", stats.Systems[2].Name)
}

func TestSessionConcurrentSubmit(t *testing.T) {
	g := planar(t, space.O)
	s := play.NewSession(g)
	task := s.Start(time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.Submit(play.MoveLeft)
				s.Submit(play.MoveRight)
				_ = s.Latest()
			}
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, time.Millisecond)
	task.Stop()

	assert.Equal(t, engine.Playing, s.Latest().State)
}
