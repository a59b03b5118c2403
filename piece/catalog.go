package piece

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/space"
)

// Rotations is the number of distinct orientations about one axis.
const Rotations = 4

// planarShapes holds four precomputed orientations per kind. '#' marks an
// occupied cell.
var planarShapes = map[space.Cell][Rotations][]string{
	space.I: {
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	space.O: {
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
	},
	space.T: {
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
	},
	space.S: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
		{"...", ".##", "##."},
		{"#..", "##.", ".#."},
	},
	space.Z: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
		{"...", "##.", ".##"},
		{".#.", "##.", "#.."},
	},
	space.J: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	space.L: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
}

// volumetricShapes holds one base orientation per kind as height layers of
// depth rows of width cells. Other orientations are computed by Rotate.
var volumetricShapes = map[space.Cell][][]string{
	space.I: {{"#"}, {"#"}, {"#"}, {"#"}},
	space.O: {{"##"}, {"##"}},
	space.T: {{"###"}, {".#."}},
	space.L: {{"###"}, {"#.."}},
	space.J: {{"###"}, {"..#"}},
	space.S: {{".##"}, {"##."}},
	space.Z: {{"##."}, {".##"}},
}

var (
	planarCatalog     = intmap.New[space.Cell, [Rotations]*space.Grid[space.Vec2]](len(space.Kinds))
	volumetricCatalog = intmap.New[space.Cell, *space.Grid[space.Vec3]](len(space.Kinds))
)

func init() {
	for kind, shapes := range planarShapes {
		var masks [Rotations]*space.Grid[space.Vec2]
		for rot, rows := range shapes {
			masks[rot] = planarMask(kind, rows)
		}
		planarCatalog.Put(kind, masks)
	}

	for kind, layers := range volumetricShapes {
		volumetricCatalog.Put(kind, volumetricMask(kind, layers))
	}
}

// PlanarMask returns the catalog mask for kind at rotation rot (taken mod 4),
// or nil for a value that is not a piece kind. The returned grid is shared
// and must not be modified.
func PlanarMask(kind space.Cell, rot int) *space.Grid[space.Vec2] {
	masks, ok := planarCatalog.Get(kind)
	if !ok {
		return nil
	}
	return masks[wrap(rot)]
}

// VolumetricMask returns the base mask for kind, or nil for a value that is
// not a piece kind. The returned grid is shared and must not be modified.
func VolumetricMask(kind space.Cell) *space.Grid[space.Vec3] {
	mask, ok := volumetricCatalog.Get(kind)
	if !ok {
		return nil
	}
	return mask
}

func planarMask(kind space.Cell, rows []string) *space.Grid[space.Vec2] {
	g := space.MustGrid(space.Vec2{Row: len(rows), Col: len(rows[0])})
	for r, row := range rows {
		for c, ch := range row {
			if ch == '#' {
				g.Set(space.Vec2{Row: r, Col: c}, kind)
			}
		}
	}
	return g
}

func volumetricMask(kind space.Cell, layers [][]string) *space.Grid[space.Vec3] {
	g := space.MustGrid(space.Vec3{H: len(layers), D: len(layers[0]), W: len(layers[0][0])})
	for h, layer := range layers {
		for d, row := range layer {
			for w, ch := range row {
				if ch == '#' {
					g.Set(space.Vec3{H: h, D: d, W: w}, kind)
				}
			}
		}
	}
	return g
}

func wrap(rot int) int {
	return ((rot % Rotations) + Rotations) % Rotations
}
