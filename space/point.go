// Package space provides the coordinate types and dense cell grids shared by the
// planar and volumetric variants of the game.
//
// Every variant is expressed through the Point trait: a coordinate type lists
// the axes it spans (the fall axis first) and exposes per-axis access. Grid,
// Volume, Flatten and friends are written once against that trait, so board
// and mask code never needs to know which dimensionality it is working in.
package space

// Axis names one axis of a board. AxisHeight is the fall axis in every
// variant and grows downward.
type Axis uint8

const (
	AxisHeight Axis = iota
	AxisDepth
	AxisWidth
)

// NumAxes is the number of distinct axes a Point may span.
const NumAxes = 3

func (a Axis) String() string {
	switch a {
	case AxisHeight:
		return "height"
	case AxisDepth:
		return "depth"
	case AxisWidth:
		return "width"
	}
	return "unknown"
}

// Point is the dimensionality trait. P is the implementing type itself.
type Point[P any] interface {
	comparable
	// Axes returns the axes spanned by the point, fall axis first. The order
	// is also the row-major layout order used by Grid.
	Axes() []Axis
	// Coord returns the coordinate on axis a, or 0 if the point does not span a.
	Coord(a Axis) int
	// With returns a copy with the coordinate on axis a replaced.
	With(a Axis, v int) P
	Add(q P) P
}

// Vec2 is a planar coordinate. Row runs along the fall axis.
type Vec2 struct {
	Row, Col int
}

var vec2Axes = []Axis{AxisHeight, AxisWidth}

func (v Vec2) Axes() []Axis { return vec2Axes }

func (v Vec2) Coord(a Axis) int {
	switch a {
	case AxisHeight:
		return v.Row
	case AxisWidth:
		return v.Col
	}
	return 0
}

func (v Vec2) With(a Axis, n int) Vec2 {
	switch a {
	case AxisHeight:
		v.Row = n
	case AxisWidth:
		v.Col = n
	}
	return v
}

func (v Vec2) Add(q Vec2) Vec2 {
	return Vec2{Row: v.Row + q.Row, Col: v.Col + q.Col}
}

// Vec3 is a volumetric coordinate: height, depth, width.
type Vec3 struct {
	H, D, W int
}

var vec3Axes = []Axis{AxisHeight, AxisDepth, AxisWidth}

func (v Vec3) Axes() []Axis { return vec3Axes }

func (v Vec3) Coord(a Axis) int {
	switch a {
	case AxisHeight:
		return v.H
	case AxisDepth:
		return v.D
	case AxisWidth:
		return v.W
	}
	return 0
}

func (v Vec3) With(a Axis, n int) Vec3 {
	switch a {
	case AxisHeight:
		v.H = n
	case AxisDepth:
		v.D = n
	case AxisWidth:
		v.W = n
	}
	return v
}

func (v Vec3) Add(q Vec3) Vec3 {
	return Vec3{H: v.H + q.H, D: v.D + q.D, W: v.W + q.W}
}

// Unit returns the point one step along axis a.
func Unit[P Point[P]](a Axis) P {
	var zero P
	return zero.With(a, 1)
}

// Volume returns the number of cells inside extent. Non-positive axes give 0.
func Volume[P Point[P]](extent P) int {
	n := 1
	for _, a := range extent.Axes() {
		c := extent.Coord(a)
		if c <= 0 {
			return 0
		}
		n *= c
	}
	return n
}

// Contains reports whether p lies in [0, extent) on every axis.
func Contains[P Point[P]](extent, p P) bool {
	for _, a := range extent.Axes() {
		c := p.Coord(a)
		if c < 0 || c >= extent.Coord(a) {
			return false
		}
	}
	return true
}

// Flatten returns the row-major offset of p inside extent. The caller is
// responsible for checking Contains first.
func Flatten[P Point[P]](extent, p P) int {
	idx := 0
	for _, a := range extent.Axes() {
		idx = idx*extent.Coord(a) + p.Coord(a)
	}
	return idx
}

// Unflatten is the inverse of Flatten.
func Unflatten[P Point[P]](extent P, idx int) P {
	var p P
	axes := extent.Axes()
	for i := len(axes) - 1; i >= 0; i-- {
		size := extent.Coord(axes[i])
		p = p.With(axes[i], idx%size)
		idx /= size
	}
	return p
}
