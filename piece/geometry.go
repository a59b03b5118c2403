package piece

import "github.com/plus3/blockfall/space"

// Geometry is the part of the game that differs between dimensionalities:
// where base masks come from and how a piece turns.
type Geometry[P space.Point[P]] interface {
	// Name identifies the variant, e.g. for flags and window titles.
	Name() string
	// Base returns the rotation-zero mask of kind, or nil if kind is not a
	// piece kind.
	Base(kind space.Cell) *space.Grid[P]
	// Rotate returns p turned a quarter about axis a. ok is false if the
	// variant cannot turn about a; the piece is returned unchanged then.
	// Rotate does not check the board.
	Rotate(p Piece[P], a space.Axis) (Piece[P], bool)
	// DefaultAxis is the axis used by a plain rotate command.
	DefaultAxis() space.Axis
}

// Planar is the classic 2-D geometry. Rotation swaps in precomputed masks.
type Planar struct{}

var _ Geometry[space.Vec2] = Planar{}

func (Planar) Name() string { return "planar" }

func (Planar) Base(kind space.Cell) *space.Grid[space.Vec2] {
	return PlanarMask(kind, 0)
}

func (Planar) Rotate(p Piece[space.Vec2], a space.Axis) (Piece[space.Vec2], bool) {
	if a != space.AxisDepth {
		return p, false
	}
	mask := PlanarMask(p.Kind, p.Rotation[a]+1)
	if mask == nil {
		return p, false
	}
	p.Rotation = p.Rotation.Turn(a)
	p.Mask = mask
	return p, true
}

func (Planar) DefaultAxis() space.Axis { return space.AxisDepth }

// Volumetric is the 3-D geometry. Rotation transforms the mask at runtime
// about any of the three axes.
type Volumetric struct{}

var _ Geometry[space.Vec3] = Volumetric{}

func (Volumetric) Name() string { return "volumetric" }

func (Volumetric) Base(kind space.Cell) *space.Grid[space.Vec3] {
	return VolumetricMask(kind)
}

func (Volumetric) Rotate(p Piece[space.Vec3], a space.Axis) (Piece[space.Vec3], bool) {
	if a > space.AxisWidth || p.Mask == nil {
		return p, false
	}
	p.Rotation = p.Rotation.Turn(a)
	p.Mask = RotateVolume(p.Mask, a)
	return p, true
}

func (Volumetric) DefaultAxis() space.Axis { return space.AxisHeight }
