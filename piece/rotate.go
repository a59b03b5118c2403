package piece

import "github.com/plus3/blockfall/space"

// RotateVolume returns mask turned a quarter about axis a. The extents of the
// two axes in the plane of rotation swap:
//
//	height: (d, w) -> (w, D-1-d)   extent (H, D, W) -> (H, W, D)
//	width:  (h, d) -> (d, H-1-h)   extent (H, D, W) -> (D, H, W)
//	depth:  (h, w) -> (w, H-1-h)   extent (H, D, W) -> (W, D, H)
func RotateVolume(mask *space.Grid[space.Vec3], a space.Axis) *space.Grid[space.Vec3] {
	src := mask.Extent()

	var dst space.Vec3
	switch a {
	case space.AxisHeight:
		dst = space.Vec3{H: src.H, D: src.W, W: src.D}
	case space.AxisWidth:
		dst = space.Vec3{H: src.D, D: src.H, W: src.W}
	case space.AxisDepth:
		dst = space.Vec3{H: src.W, D: src.D, W: src.H}
	default:
		return mask
	}

	out := space.MustGrid(dst)
	for p, c := range mask.Occupied() {
		var q space.Vec3
		switch a {
		case space.AxisHeight:
			q = space.Vec3{H: p.H, D: p.W, W: src.D - 1 - p.D}
		case space.AxisWidth:
			q = space.Vec3{H: p.D, D: src.H - 1 - p.H, W: p.W}
		case space.AxisDepth:
			q = space.Vec3{H: p.W, D: p.D, W: src.H - 1 - p.H}
		}
		out.Set(q, c)
	}
	return out
}
