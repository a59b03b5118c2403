package engine

import "github.com/plus3/blockfall/space"

// Project flattens a volumetric snapshot along a horizontal axis for 2-D
// display. Looking along space.AxisDepth gives the front view (columns are
// width); along space.AxisWidth the side view (columns are depth). For each
// line of sight the cell nearest index 0 wins. The active piece is drawn over
// the board.
//
// ghost holds the projected ghost piece. Renderers draw it only where cells
// is empty.
func Project(s Snapshot[space.Vec3], along space.Axis) (cells, ghost *space.Grid[space.Vec2]) {
	across := space.AxisWidth
	if along == space.AxisWidth {
		across = space.AxisDepth
	}

	extent := s.Board.Extent()
	flat := space.Vec2{Row: extent.H, Col: extent.Coord(across)}
	cells = space.MustGrid(flat)
	ghost = space.MustGrid(flat)

	for h := 0; h < extent.H; h++ {
		for c := 0; c < flat.Col; c++ {
			at := space.Vec2{Row: h, Col: c}
			for n := 0; n < extent.Coord(along); n++ {
				p := space.Vec3{H: h}.With(across, c).With(along, n)
				if cell := s.Cell(p); cell.Filled() && !cells.At(at).Filled() {
					cells.Set(at, cell)
				}
				if s.IsGhost(p) {
					ghost.Set(at, s.Ghost.Kind)
				}
			}
		}
	}
	return cells, ghost
}
