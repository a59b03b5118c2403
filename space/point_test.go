package space_test

import (
	"testing"

	"github.com/plus3/blockfall/space"
	"github.com/stretchr/testify/assert"
)

func TestFlattenRoundTrip(t *testing.T) {
	extent := space.Vec3{H: 5, D: 3, W: 4}
	seen := make(map[int]bool)

	for h := 0; h < extent.H; h++ {
		for d := 0; d < extent.D; d++ {
			for w := 0; w < extent.W; w++ {
				p := space.Vec3{H: h, D: d, W: w}
				idx := space.Flatten(extent, p)
				assert.False(t, seen[idx], "offset %d reused", idx)
				seen[idx] = true
				assert.Equal(t, p, space.Unflatten(extent, idx))
			}
		}
	}

	assert.Len(t, seen, space.Volume(extent))
}

func TestContains(t *testing.T) {
	extent := space.Vec2{Row: 20, Col: 10}

	assert.True(t, space.Contains(extent, space.Vec2{Row: 0, Col: 0}))
	assert.True(t, space.Contains(extent, space.Vec2{Row: 19, Col: 9}))
	assert.False(t, space.Contains(extent, space.Vec2{Row: -1, Col: 0}))
	assert.False(t, space.Contains(extent, space.Vec2{Row: 20, Col: 0}))
	assert.False(t, space.Contains(extent, space.Vec2{Row: 0, Col: 10}))
}

func TestUnitAndAxes(t *testing.T) {
	assert.Equal(t, space.Vec2{Row: 1}, space.Unit[space.Vec2](space.AxisHeight))
	assert.Equal(t, space.Vec3{D: 1}, space.Unit[space.Vec3](space.AxisDepth))

	// A planar point does not span depth, so stepping along it is a no-op.
	assert.Equal(t, space.Vec2{}, space.Unit[space.Vec2](space.AxisDepth))

	assert.Equal(t, []space.Axis{space.AxisHeight, space.AxisWidth}, space.Vec2{}.Axes())
	assert.Equal(t, "width", space.AxisWidth.String())
}

func TestVolume(t *testing.T) {
	assert.Equal(t, 200, space.Volume(space.Vec2{Row: 20, Col: 10}))
	assert.Equal(t, 1200, space.Volume(space.Vec3{H: 20, D: 6, W: 10}))
	assert.Equal(t, 0, space.Volume(space.Vec3{H: 20, D: 0, W: 10}))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, ".", space.Empty.String())
	assert.Equal(t, "L", space.L.String())
	assert.True(t, space.Z.IsKind())
	assert.False(t, space.Empty.IsKind())
	assert.False(t, space.Cell(9).IsKind())
}
