package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
)

const (
	cellWidth  = 2
	blockRune  = '█'
	ghostRune  = '░'
	emptyRune  = '·'
	boardTop   = 1
	boardLeft  = 1
	viewMargin = 3
)

var kindColors = map[space.Cell]tcell.Color{
	space.I: tcell.ColorAqua,
	space.O: tcell.ColorYellow,
	space.T: tcell.ColorPurple,
	space.S: tcell.ColorGreen,
	space.Z: tcell.ColorRed,
	space.J: tcell.ColorBlue,
	space.L: tcell.ColorOrange,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func kindStyle(c space.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(kindColors[c])
}

// renderer draws snapshots onto a tcell screen. Every board cell is two
// terminal columns wide so squares look square.
type renderer struct {
	screen tcell.Screen
}

// plane is a 2-D view of a board: rows are height.
type plane struct {
	title string
	cells space.Reader[space.Vec2]
	ghost space.Reader[space.Vec2]
}

func (r *renderer) drawPlanar(snap engine.Snapshot[space.Vec2], paused bool) {
	r.screen.Clear()

	ghost := space.MustGrid(snap.Board.Extent())
	if snap.Ghost != nil {
		for c := range snap.Ghost.Cells() {
			if snap.Board.Contains(c) && !snap.Cell(c).Filled() {
				ghost.Set(c, snap.Ghost.Kind)
			}
		}
	}

	cells := space.MustGrid(snap.Board.Extent())
	for p := range cells.All() {
		cells.Set(p, snap.Cell(p))
	}

	x := r.drawPlane(boardLeft, boardTop, plane{cells: cells, ghost: ghost})
	r.drawHUD(x+viewMargin, boardTop, hudOf(snap), paused)
	r.screen.Show()
}

func (r *renderer) drawVolumetric(snap engine.Snapshot[space.Vec3], paused bool) {
	r.screen.Clear()

	front, frontGhost := engine.Project(snap, space.AxisDepth)
	side, sideGhost := engine.Project(snap, space.AxisWidth)

	x := r.drawPlane(boardLeft, boardTop, plane{title: "front", cells: front, ghost: frontGhost})
	x = r.drawPlane(x+viewMargin, boardTop, plane{title: "side", cells: side, ghost: sideGhost})
	r.drawHUD(x+viewMargin, boardTop, hudOf(snap), paused)
	r.screen.Show()
}

// drawPlane draws p with a border whose top-left corner is at (x, y) and
// returns the column just past the right border.
func (r *renderer) drawPlane(x, y int, p plane) int {
	extent := p.cells.Extent()
	width := extent.Col*cellWidth + 2
	height := extent.Row + 2

	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, '─', nil, borderStyle)
		r.screen.SetContent(x+i, y+height-1, '─', nil, borderStyle)
	}
	for j := 0; j < height; j++ {
		r.screen.SetContent(x, y+j, '│', nil, borderStyle)
		r.screen.SetContent(x+width-1, y+j, '│', nil, borderStyle)
	}
	r.screen.SetContent(x, y, '┌', nil, borderStyle)
	r.screen.SetContent(x+width-1, y, '┐', nil, borderStyle)
	r.screen.SetContent(x, y+height-1, '└', nil, borderStyle)
	r.screen.SetContent(x+width-1, y+height-1, '┘', nil, borderStyle)
	if p.title != "" {
		r.text(x+2, y, p.title, textStyle)
	}

	for row := 0; row < extent.Row; row++ {
		for col := 0; col < extent.Col; col++ {
			at := space.Vec2{Row: row, Col: col}
			ch, style := emptyRune, emptyStyle
			switch c := p.cells.At(at); {
			case c.Filled():
				ch, style = blockRune, kindStyle(c)
			case p.ghost != nil && p.ghost.At(at).Filled():
				ch, style = ghostRune, kindStyle(p.ghost.At(at))
			}
			sx := x + 1 + col*cellWidth
			r.screen.SetContent(sx, y+1+row, ch, nil, style)
			if ch == emptyRune {
				ch = ' '
			}
			r.screen.SetContent(sx+1, y+1+row, ch, nil, style)
		}
	}
	return x + width
}

type hud struct {
	score, level, lines int
	over                bool
	held                space.Cell
	// heldCells is the held piece's mask flattened onto height and width.
	heldCells []space.Vec2
}

func hudOf[P space.Point[P]](snap engine.Snapshot[P]) hud {
	h := hud{
		score: snap.Score,
		level: snap.Level,
		lines: snap.Lines,
		over:  snap.State == engine.GameOver,
	}
	if snap.Held != nil {
		h.held = snap.Held.Kind
		h.heldCells = flatten(snap.Held)
	}
	return h
}

func flatten[P space.Point[P]](p *piece.Piece[P]) []space.Vec2 {
	var out []space.Vec2
	for off := range p.Mask.Occupied() {
		out = append(out, space.Vec2{
			Row: off.Coord(space.AxisHeight),
			Col: off.Coord(space.AxisWidth),
		})
	}
	return out
}

func (r *renderer) drawHUD(x, y int, h hud, paused bool) {
	r.text(x, y, fmt.Sprintf("SCORE %8d", h.score), textStyle)
	r.text(x, y+1, fmt.Sprintf("LEVEL %8d", h.level), textStyle)
	r.text(x, y+2, fmt.Sprintf("LINES %8d", h.lines), textStyle)

	r.text(x, y+4, "HOLD", textStyle)
	style := kindStyle(h.held)
	for _, c := range h.heldCells {
		sx := x + c.Col*cellWidth
		r.screen.SetContent(sx, y+5+c.Row, blockRune, nil, style)
		r.screen.SetContent(sx+1, y+5+c.Row, blockRune, nil, style)
	}

	switch {
	case h.over:
		r.text(x, y+10, "GAME OVER", alertStyle)
		r.text(x, y+11, "press r to restart", textStyle)
	case paused:
		r.text(x, y+10, "PAUSED", alertStyle)
	}
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
