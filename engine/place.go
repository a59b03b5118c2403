package engine

import (
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
)

// CanPlace reports whether p translated by delta fits on board. Cells above
// the top edge (negative height) are allowed; any other out-of-range
// coordinate or an occupied board cell rejects the placement.
func CanPlace[P space.Point[P]](p piece.Piece[P], board space.Reader[P], delta P) bool {
	extent := board.Extent()
	for c := range p.Moved(delta).Cells() {
		h := c.Coord(space.AxisHeight)
		if !space.Contains(extent, c.With(space.AxisHeight, max(h, 0))) {
			return false
		}
		if h >= 0 && board.At(c).Filled() {
			return false
		}
	}
	return true
}

// DropDistance returns how many layers p can fall before it is blocked.
func DropDistance[P space.Point[P]](p piece.Piece[P], board space.Reader[P]) int {
	down := space.Unit[P](space.AxisHeight)
	n := 0
	for CanPlace(p, board, down) {
		p = p.Moved(down)
		n++
	}
	return n
}
