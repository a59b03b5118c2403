package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	g, err := engine.NewVolumetric(engine.WithSource(piece.NewSequence(space.I, space.O)))
	require.NoError(t, err)

	// Vertical I lands in column (d=2, w=4); then an O spawns.
	require.True(t, g.HardDrop(0))
	snap := g.Snapshot()

	front, frontGhost := engine.Project(snap, space.AxisDepth)
	assert.Equal(t, space.Vec2{Row: 20, Col: 10}, front.Extent())
	for h := 16; h < 20; h++ {
		assert.Equal(t, space.I, front.At(space.Vec2{Row: h, Col: 4}))
	}

	side, sideGhost := engine.Project(snap, space.AxisWidth)
	assert.Equal(t, space.Vec2{Row: 20, Col: 6}, side.Extent())
	for h := 16; h < 20; h++ {
		assert.Equal(t, space.I, side.At(space.Vec2{Row: h, Col: 2}))
	}

	// Active O: H 0..1, D 2, W 4..5.
	assert.Equal(t, space.O, front.At(space.Vec2{Row: 0, Col: 4}))
	assert.Equal(t, space.O, front.At(space.Vec2{Row: 1, Col: 5}))
	assert.Equal(t, space.O, side.At(space.Vec2{Row: 1, Col: 2}))
	assert.Equal(t, space.Empty, side.At(space.Vec2{Row: 1, Col: 3}))

	// Its ghost rests on top of the I.
	assert.Equal(t, space.O, frontGhost.At(space.Vec2{Row: 14, Col: 5}))
	assert.Equal(t, space.O, frontGhost.At(space.Vec2{Row: 15, Col: 4}))
	assert.Equal(t, space.O, sideGhost.At(space.Vec2{Row: 15, Col: 2}))
	assert.Equal(t, 4, frontGhost.Count())
	assert.Equal(t, 2, sideGhost.Count())
}

func TestProjectNearestWins(t *testing.T) {
	g, err := engine.NewVolumetric(engine.WithSource(piece.NewSequence(space.I)))
	require.NoError(t, err)

	snap := g.Snapshot()
	snap.Board.Set(space.Vec3{H: 10, D: 0, W: 4}, space.Z)
	snap.Board.Set(space.Vec3{H: 10, D: 5, W: 4}, space.T)

	front, _ := engine.Project(snap, space.AxisDepth)
	assert.Equal(t, space.Z, front.At(space.Vec2{Row: 10, Col: 4}))

	side, _ := engine.Project(snap, space.AxisWidth)
	assert.Equal(t, space.Z, side.At(space.Vec2{Row: 10, Col: 0}))
	assert.Equal(t, space.T, side.At(space.Vec2{Row: 10, Col: 5}))
}
