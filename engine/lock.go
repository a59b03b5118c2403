package engine

import (
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
)

// Merge returns a copy of board with p written into it. Cells of p that fall
// outside the board, such as those still above the top edge, are dropped.
func Merge[P space.Point[P]](p piece.Piece[P], board *space.Grid[P]) *space.Grid[P] {
	next := board.Clone()
	for c := range p.Cells() {
		next.Set(c, p.Kind)
	}
	return next
}

// FullLayers returns the fall-axis indices of every completely filled layer,
// top to bottom.
func FullLayers[P space.Point[P]](board *space.Grid[P]) []int {
	var full []int
	for h := 0; h < board.Layers(); h++ {
		if board.LayerFull(h) {
			full = append(full, h)
		}
	}
	return full
}

// ClearFull removes every full layer, lets the remaining layers settle in
// order and refills the top with empty layers. It returns the new board and
// the number of layers removed; board itself is not modified.
func ClearFull[P space.Point[P]](board *space.Grid[P]) (*space.Grid[P], int) {
	cleared := 0
	out := board.Compact(func(h int) bool {
		if board.LayerFull(h) {
			cleared++
			return false
		}
		return true
	})
	return out, cleared
}
