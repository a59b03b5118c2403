package space

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrInvalidExtent is returned when a grid is requested with a zero or
// negative size on any axis.
var ErrInvalidExtent = errors.New("space: extent must be positive on every axis")

// Reader is the read-only view of a grid handed to renderers and HUDs.
type Reader[P Point[P]] interface {
	Extent() P
	At(p P) Cell
	All() iter.Seq2[P, Cell]
}

// Grid is a dense, fixed-size container of cells laid out row-major with the
// fall axis outermost, so each layer occupies a contiguous run of cells.
// The extent never changes after construction.
type Grid[P Point[P]] struct {
	extent P
	cells  []Cell
}

// NewGrid allocates an empty grid of the given extent.
func NewGrid[P Point[P]](extent P) (*Grid[P], error) {
	n := Volume(extent)
	if n == 0 {
		return nil, fmt.Errorf("new grid %v: %w", extent, ErrInvalidExtent)
	}
	return &Grid[P]{
		extent: extent,
		cells:  make([]Cell, n),
	}, nil
}

// MustGrid is NewGrid for extents known to be valid, such as catalog masks.
func MustGrid[P Point[P]](extent P) *Grid[P] {
	g, err := NewGrid(extent)
	if err != nil {
		panic(err)
	}
	return g
}

// Extent returns the size of the grid on each axis.
func (g *Grid[P]) Extent() P {
	return g.extent
}

// Len returns the total number of cells.
func (g *Grid[P]) Len() int {
	return len(g.cells)
}

// Contains reports whether p addresses a cell of the grid.
func (g *Grid[P]) Contains(p P) bool {
	return Contains(g.extent, p)
}

// At returns the cell at p, or Empty if p is outside the grid.
func (g *Grid[P]) At(p P) Cell {
	if !g.Contains(p) {
		return Empty
	}
	return g.cells[Flatten(g.extent, p)]
}

// Set writes c at p. Points outside the grid are ignored and reported as false.
func (g *Grid[P]) Set(p P, c Cell) bool {
	if !g.Contains(p) {
		return false
	}
	g.cells[Flatten(g.extent, p)] = c
	return true
}

// Clone returns a deep copy.
func (g *Grid[P]) Clone() *Grid[P] {
	return &Grid[P]{
		extent: g.extent,
		cells:  slices.Clone(g.cells),
	}
}

// Cells returns a copy of the raw row-major cell data.
func (g *Grid[P]) Cells() []Cell {
	return slices.Clone(g.cells)
}

// All iterates every cell with its coordinate in row-major order.
func (g *Grid[P]) All() iter.Seq2[P, Cell] {
	return func(yield func(P, Cell) bool) {
		for i, c := range g.cells {
			if !yield(Unflatten(g.extent, i), c) {
				return
			}
		}
	}
}

// Occupied iterates the non-empty cells only.
func (g *Grid[P]) Occupied() iter.Seq2[P, Cell] {
	return func(yield func(P, Cell) bool) {
		for i, c := range g.cells {
			if c == Empty {
				continue
			}
			if !yield(Unflatten(g.extent, i), c) {
				return
			}
		}
	}
}

// Count returns the number of non-empty cells.
func (g *Grid[P]) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Layers returns the extent along the fall axis.
func (g *Grid[P]) Layers() int {
	return g.extent.Coord(AxisHeight)
}

// LayerSize returns the number of cells in one layer.
func (g *Grid[P]) LayerSize() int {
	return len(g.cells) / g.Layers()
}

// Layer returns the cells of layer h. The slice aliases the grid and must not
// be modified by callers outside this package.
func (g *Grid[P]) Layer(h int) []Cell {
	size := g.LayerSize()
	return g.cells[h*size : (h+1)*size]
}

// LayerFill returns the number of occupied cells in layer h.
func (g *Grid[P]) LayerFill(h int) int {
	n := 0
	for _, c := range g.Layer(h) {
		if c != Empty {
			n++
		}
	}
	return n
}

// LayerFull reports whether every cell of layer h is occupied.
func (g *Grid[P]) LayerFull(h int) bool {
	return !slices.Contains(g.Layer(h), Empty)
}

// Compact returns a new grid holding the layers for which keep returns true,
// in their original order, pushed to the bottom and topped up with empty
// layers so the extent is unchanged.
func (g *Grid[P]) Compact(keep func(h int) bool) *Grid[P] {
	out := &Grid[P]{
		extent: g.extent,
		cells:  make([]Cell, len(g.cells)),
	}

	size := g.LayerSize()
	write := g.Layers() - 1
	for h := g.Layers() - 1; h >= 0; h-- {
		if !keep(h) {
			continue
		}
		copy(out.cells[write*size:(write+1)*size], g.Layer(h))
		write--
	}

	return out
}

// Bounds returns, for each axis, the lowest and highest coordinate holding a
// non-empty cell. ok is false when the grid is empty.
func (g *Grid[P]) Bounds() (lo, hi P, ok bool) {
	for p := range g.Occupied() {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		for _, a := range g.extent.Axes() {
			c := p.Coord(a)
			if c < lo.Coord(a) {
				lo = lo.With(a, c)
			}
			if c > hi.Coord(a) {
				hi = hi.With(a, c)
			}
		}
	}
	return lo, hi, ok
}

// Equal reports whether two grids have the same extent and contents.
func (g *Grid[P]) Equal(o *Grid[P]) bool {
	return g.extent == o.extent && slices.Equal(g.cells, o.cells)
}
