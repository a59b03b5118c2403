// Package piece holds the shape catalog, the piece type and the per-variant
// rotation rules, plus the factory that spawns new pieces.
package piece

import (
	"iter"

	"github.com/plus3/blockfall/space"
)

// Rotation holds one quarter-turn counter per axis, each in [0, 4).
// Planar pieces only ever turn about space.AxisDepth.
type Rotation [space.NumAxes]int

// Turn returns the rotation advanced one quarter turn about axis a.
func (r Rotation) Turn(a space.Axis) Rotation {
	r[a] = (r[a] + 1) % Rotations
	return r
}

// Piece is a falling piece: its kind, orientation, the mask for that
// orientation and the board coordinate the mask is offset from.
//
// Mask grids are shared between pieces and with the catalog. Rotation
// replaces the mask; it never writes into it.
type Piece[P space.Point[P]] struct {
	Kind     space.Cell
	Rotation Rotation
	Mask     *space.Grid[P]
	Anchor   P
}

// Cells iterates the absolute board coordinates covered by the piece.
func (p Piece[P]) Cells() iter.Seq[P] {
	return func(yield func(P) bool) {
		for off := range p.Mask.Occupied() {
			if !yield(p.Anchor.Add(off)) {
				return
			}
		}
	}
}

// Moved returns a copy translated by delta.
func (p Piece[P]) Moved(delta P) Piece[P] {
	p.Anchor = p.Anchor.Add(delta)
	return p
}

// At returns a copy anchored at a.
func (p Piece[P]) At(a P) Piece[P] {
	p.Anchor = a
	return p
}

// Top returns the lowest fall-axis offset of any occupied mask cell, i.e. the
// mask row that ends up highest on the board.
func (p Piece[P]) Top() int {
	lo, _, ok := p.Mask.Bounds()
	if !ok {
		return 0
	}
	return lo.Coord(space.AxisHeight)
}
