package piece_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	planarBoard     = space.Vec2{Row: 20, Col: 10}
	volumetricBoard = space.Vec3{H: 20, D: 6, W: 10}
)

func TestCatalogMasksHoldFourCells(t *testing.T) {
	for _, kind := range space.Kinds {
		for rot := 0; rot < piece.Rotations; rot++ {
			mask := piece.PlanarMask(kind, rot)
			require.NotNil(t, mask, "planar %v rot %d", kind, rot)
			assert.Equal(t, 4, mask.Count(), "planar %v rot %d", kind, rot)
			for _, c := range mask.Occupied() {
				assert.Equal(t, kind, c)
			}
		}

		mask := piece.VolumetricMask(kind)
		require.NotNil(t, mask, "volumetric %v", kind)
		assert.Equal(t, 4, mask.Count(), "volumetric %v", kind)
	}

	assert.Nil(t, piece.PlanarMask(space.Empty, 0))
	assert.Nil(t, piece.VolumetricMask(space.Cell(42)))
}

func TestPlanarRotationUsesCatalog(t *testing.T) {
	geom := piece.Planar{}
	p := piece.Piece[space.Vec2]{Kind: space.T, Mask: geom.Base(space.T)}

	for rot := 1; rot <= piece.Rotations; rot++ {
		var ok bool
		p, ok = geom.Rotate(p, space.AxisDepth)
		require.True(t, ok)
		assert.Equal(t, rot%piece.Rotations, p.Rotation[space.AxisDepth])
		assert.Same(t, piece.PlanarMask(space.T, rot), p.Mask)
	}

	assert.Equal(t, piece.Rotation{}, p.Rotation)
}

func TestPlanarRejectsOtherAxes(t *testing.T) {
	geom := piece.Planar{}
	p := piece.Piece[space.Vec2]{Kind: space.L, Mask: geom.Base(space.L)}

	for _, axis := range []space.Axis{space.AxisHeight, space.AxisWidth} {
		got, ok := geom.Rotate(p, axis)
		assert.False(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestRotateVolumePermutesExtent(t *testing.T) {
	base := piece.VolumetricMask(space.T) // 2 high, 1 deep, 3 wide

	tests := []struct {
		axis space.Axis
		want space.Vec3
	}{
		{space.AxisHeight, space.Vec3{H: 2, D: 3, W: 1}},
		{space.AxisWidth, space.Vec3{H: 1, D: 2, W: 3}},
		{space.AxisDepth, space.Vec3{H: 3, D: 1, W: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			got := piece.RotateVolume(base, tt.axis)
			assert.Equal(t, tt.want, got.Extent())
			assert.Equal(t, 4, got.Count())
		})
	}
}

func TestRotateVolumeIndexRemap(t *testing.T) {
	// Single cell at (h=0, d=0, w=0) in a 2x3x4 mask.
	mask := space.MustGrid(space.Vec3{H: 2, D: 3, W: 4})
	mask.Set(space.Vec3{}, space.J)

	got := piece.RotateVolume(mask, space.AxisHeight)
	assert.Equal(t, space.J, got.At(space.Vec3{H: 0, D: 0, W: 2}))

	got = piece.RotateVolume(mask, space.AxisWidth)
	assert.Equal(t, space.J, got.At(space.Vec3{H: 0, D: 1, W: 0}))

	got = piece.RotateVolume(mask, space.AxisDepth)
	assert.Equal(t, space.J, got.At(space.Vec3{H: 0, D: 0, W: 1}))
}

func TestVolumetricRotationRoundTrip(t *testing.T) {
	geom := piece.Volumetric{}
	axes := []space.Axis{space.AxisHeight, space.AxisDepth, space.AxisWidth}

	for _, kind := range space.Kinds {
		for _, axis := range axes {
			t.Run(fmt.Sprintf("%v/%v", kind, axis), func(t *testing.T) {
				start := piece.Piece[space.Vec3]{Kind: kind, Mask: geom.Base(kind)}
				p := start
				for i := 0; i < piece.Rotations; i++ {
					var ok bool
					p, ok = geom.Rotate(p, axis)
					require.True(t, ok)
				}
				assert.Equal(t, start.Rotation, p.Rotation)
				assert.True(t, start.Mask.Equal(p.Mask))
			})
		}
	}
}

func TestFactorySpawnPosition(t *testing.T) {
	t.Run("planar O", func(t *testing.T) {
		f := piece.NewFactory[space.Vec2](piece.Planar{}, planarBoard, piece.NewSequence(space.O))
		p := f.Spawn()
		assert.Equal(t, space.O, p.Kind)
		assert.Equal(t, space.Vec2{Row: 0, Col: 4}, p.Anchor)
		assert.Equal(t, piece.Rotation{}, p.Rotation)
	})

	t.Run("planar I starts with its bar on row 0", func(t *testing.T) {
		f := piece.NewFactory[space.Vec2](piece.Planar{}, planarBoard, piece.NewSequence(space.I))
		p := f.Spawn()
		assert.Equal(t, space.Vec2{Row: -1, Col: 3}, p.Anchor)

		top := planarBoard.Row
		for c := range p.Cells() {
			top = min(top, c.Row)
		}
		assert.Equal(t, 0, top)
	})

	t.Run("volumetric T", func(t *testing.T) {
		f := piece.NewFactory[space.Vec3](piece.Volumetric{}, volumetricBoard, piece.NewSequence(space.T))
		p := f.Spawn()
		assert.Equal(t, space.Vec3{H: 0, D: 2, W: 3}, p.Anchor)
	})
}

func TestFactoryDrawsFromSource(t *testing.T) {
	seq := []space.Cell{space.S, space.Z, space.J, space.L, space.I}
	f := piece.NewFactory[space.Vec2](piece.Planar{}, planarBoard, piece.NewSequence(seq...))

	for i := 0; i < 2*len(seq); i++ {
		assert.Equal(t, seq[i%len(seq)], f.Spawn().Kind)
	}

	counts := f.Counts()
	assert.Equal(t, 2, counts[space.S])
	assert.Equal(t, 2, counts[space.I])
	assert.Zero(t, counts[space.O])
}

func TestFactoryRandomSourceCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	f := piece.NewFactory[space.Vec3](piece.Volumetric{}, volumetricBoard, rng)

	for i := 0; i < 700; i++ {
		p := f.Spawn()
		require.True(t, p.Kind.IsKind())
	}

	counts := f.Counts()
	assert.Len(t, counts, len(space.Kinds))
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 700, total)
}

func TestPieceCellsFollowAnchor(t *testing.T) {
	p := piece.Piece[space.Vec2]{
		Kind:   space.O,
		Mask:   piece.PlanarMask(space.O, 0),
		Anchor: space.Vec2{Row: 5, Col: 2},
	}

	var cells []space.Vec2
	for c := range p.Moved(space.Vec2{Row: 1}).Cells() {
		cells = append(cells, c)
	}

	assert.ElementsMatch(t, []space.Vec2{
		{Row: 6, Col: 2}, {Row: 6, Col: 3},
		{Row: 7, Col: 2}, {Row: 7, Col: 3},
	}, cells)
	assert.Equal(t, space.Vec2{Row: 5, Col: 2}, p.Anchor)
}
