package space

// Cell is the content of one unit of space: Empty or the kind of piece that
// occupies it. The same values are used for board cells and piece masks.
type Cell uint8

const (
	Empty Cell = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds lists the seven piece kinds in catalog order.
var Kinds = [...]Cell{I, O, T, S, Z, J, L}

var cellNames = [...]string{".", "I", "O", "T", "S", "Z", "J", "L"}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "?"
}

// Filled reports whether the cell holds a piece kind.
func (c Cell) Filled() bool {
	return c != Empty
}

// IsKind reports whether c is one of the seven piece kinds.
func (c Cell) IsKind() bool {
	return c >= I && c <= L
}
