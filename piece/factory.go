package piece

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/space"
)

// Source is the random capability used to pick kinds. *math/rand/v2.Rand
// satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Sequence is a deterministic Source that yields the given kinds in order,
// wrapping around at the end. It assumes draws over space.Kinds.
type Sequence struct {
	kinds []space.Cell
	next  int
}

// NewSequence returns a Sequence over kinds. With no kinds it always yields I.
func NewSequence(kinds ...space.Cell) *Sequence {
	if len(kinds) == 0 {
		kinds = []space.Cell{space.I}
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) IntN(n int) int {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return (int(k) - 1) % n
}

// Factory spawns pieces of uniformly random kind (independent trials, no bag)
// centered at the top of a board.
type Factory[P space.Point[P]] struct {
	geom   Geometry[P]
	extent P
	src    Source
	counts *intmap.Map[space.Cell, int]
}

// NewFactory returns a factory for boards of the given extent.
func NewFactory[P space.Point[P]](geom Geometry[P], extent P, src Source) *Factory[P] {
	if geom == nil || src == nil {
		panic("piece: factory needs a geometry and a source")
	}
	return &Factory[P]{
		geom:   geom,
		extent: extent,
		src:    src,
		counts: intmap.New[space.Cell, int](len(space.Kinds)),
	}
}

// Spawn draws a kind and returns it at its spawn position with every
// rotation counter at zero.
func (f *Factory[P]) Spawn() Piece[P] {
	kind := space.Kinds[f.src.IntN(len(space.Kinds))]
	return f.SpawnKind(kind)
}

// SpawnKind returns a piece of the given kind at its spawn position without
// consuming a random draw.
func (f *Factory[P]) SpawnKind(kind space.Cell) Piece[P] {
	n, _ := f.counts.Get(kind)
	f.counts.Put(kind, n+1)

	p := Piece[P]{
		Kind: kind,
		Mask: f.geom.Base(kind),
	}
	p.Anchor = f.SpawnAnchor(p)
	return p
}

// SpawnAnchor returns the anchor that centers p on every non-fall axis and
// puts its topmost occupied row on board row 0.
func (f *Factory[P]) SpawnAnchor(p Piece[P]) P {
	var anchor P
	size := p.Mask.Extent()
	for _, a := range f.extent.Axes() {
		if a == space.AxisHeight {
			anchor = anchor.With(a, -p.Top())
			continue
		}
		anchor = anchor.With(a, (f.extent.Coord(a)-size.Coord(a))/2)
	}
	return anchor
}

// Counts returns how many pieces of each kind the factory has produced.
func (f *Factory[P]) Counts() map[space.Cell]int {
	out := make(map[space.Cell]int, len(space.Kinds))
	for _, kind := range space.Kinds {
		if n, ok := f.counts.Get(kind); ok {
			out[kind] = n
		}
	}
	return out
}

// Geometry returns the geometry the factory spawns for.
func (f *Factory[P]) Geometry() Geometry[P] {
	return f.geom
}
