package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
)

const (
	margin   = 20
	gap      = 30
	hudWidth = 160
)

var kindColors = map[space.Cell]color.RGBA{
	space.I: {135, 206, 235, 255},
	space.O: {255, 203, 0, 255},
	space.T: {200, 122, 255, 255},
	space.S: {0, 228, 48, 255},
	space.Z: {230, 41, 55, 255},
	space.J: {0, 121, 241, 255},
	space.L: {255, 161, 0, 255},
}

var (
	background  = color.RGBA{18, 18, 24, 255}
	boardColor  = color.RGBA{30, 30, 40, 255}
	borderColor = color.RGBA{120, 120, 130, 255}
	outline     = color.RGBA{0, 0, 0, 255}
	ghostAlpha  = uint8(90)
)

// view is a 2-D picture of (part of) the board with rows along height.
type view struct {
	title string
	cells space.Reader[space.Vec2]
	ghost space.Reader[space.Vec2]
}

// layout gives the on-screen cell size and positions for a set of views.
type layout struct {
	cell  float32
	views []view
}

func (l layout) size() (int, int) {
	w, h := margin, 0
	for _, v := range l.views {
		e := v.cells.Extent()
		w += int(float32(e.Col)*l.cell) + gap
		h = max(h, int(float32(e.Row)*l.cell))
	}
	return w + hudWidth, h + 2*margin + 16
}

func (l layout) draw(screen *ebiten.Image, h hud) {
	screen.Fill(background)

	x := float32(margin)
	y := float32(margin + 16)
	for _, v := range l.views {
		x = l.drawView(screen, x, y, v) + gap
	}
	h.draw(screen, int(x), int(y))
}

func (l layout) drawView(screen *ebiten.Image, x, y float32, v view) float32 {
	e := v.cells.Extent()
	w := float32(e.Col) * l.cell
	ht := float32(e.Row) * l.cell

	vector.DrawFilledRect(screen, x, y, w, ht, boardColor, false)
	vector.StrokeRect(screen, x-2, y-2, w+4, ht+4, 2, borderColor, false)
	if v.title != "" {
		ebitenutil.DebugPrintAt(screen, v.title, int(x), int(y)-18)
	}

	for p, c := range v.cells.All() {
		cx := x + float32(p.Col)*l.cell
		cy := y + float32(p.Row)*l.cell
		switch {
		case c.Filled():
			vector.DrawFilledRect(screen, cx, cy, l.cell, l.cell, kindColors[c], false)
			vector.StrokeRect(screen, cx, cy, l.cell, l.cell, 1, outline, false)
		case v.ghost != nil && v.ghost.At(p).Filled():
			clr := kindColors[v.ghost.At(p)]
			clr.A = ghostAlpha
			vector.StrokeRect(screen, cx+1, cy+1, l.cell-2, l.cell-2, 2, clr, false)
		}
	}
	return x + w
}

type hud struct {
	score, level, lines int
	interval            string
	over, paused        bool
	held                space.Cell
	heldCells           []space.Vec2
}

func hudOf[P space.Point[P]](snap engine.Snapshot[P], paused bool) hud {
	h := hud{
		score:    snap.Score,
		level:    snap.Level,
		lines:    snap.Lines,
		interval: snap.Interval.String(),
		over:     snap.State == engine.GameOver,
		paused:   paused,
	}
	if snap.Held != nil {
		h.held = snap.Held.Kind
		h.heldCells = flatten(snap.Held)
	}
	return h
}

// flatten drops every axis but height and width from a piece's mask.
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

func (h hud) draw(screen *ebiten.Image, x, y int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", h.score), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL  %d", h.level), x, y+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", h.lines), x, y+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPEED  %s", h.interval), x, y+60)

	ebitenutil.DebugPrintAt(screen, "HOLD", x, y+100)
	const mini = 14
	for _, c := range h.heldCells {
		cx := float32(x) + float32(c.Col)*mini
		cy := float32(y+120) + float32(c.Row)*mini
		vector.DrawFilledRect(screen, cx, cy, mini, mini, kindColors[h.held], false)
		vector.StrokeRect(screen, cx, cy, mini, mini, 1, outline, false)
	}

	switch {
	case h.over:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y+200)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", x, y+220)
	case h.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", x, y+200)
	}
}

func planarLayout(snap engine.Snapshot[space.Vec2]) layout {
	cells := space.MustGrid(snap.Board.Extent())
	ghost := space.MustGrid(snap.Board.Extent())
	for p := range cells.All() {
		cells.Set(p, snap.Cell(p))
		if snap.IsGhost(p) {
			ghost.Set(p, snap.Ghost.Kind)
		}
	}
	return layout{cell: 28, views: []view{{cells: cells, ghost: ghost}}}
}

func volumetricLayout(snap engine.Snapshot[space.Vec3]) layout {
	front, frontGhost := engine.Project(snap, space.AxisDepth)
	side, sideGhost := engine.Project(snap, space.AxisWidth)
	return layout{cell: 24, views: []view{
		{title: "FRONT", cells: front, ghost: frontGhost},
		{title: "SIDE", cells: side, ghost: sideGhost},
	}}
}
