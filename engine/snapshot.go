package engine

import (
	"time"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
)

// Snapshot is a copy of everything a renderer or HUD needs. It shares
// nothing mutable with the game, so it may be handed to another goroutine.
type Snapshot[P space.Point[P]] struct {
	Board    *space.Grid[P]
	Active   *piece.Piece[P]
	Ghost    *piece.Piece[P]
	Held     *piece.Piece[P]
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	State    State
	// LayerFill holds the number of occupied cells per layer, top first.
	LayerFill []int
}

// Snapshot copies the current state.
func (g *Game[P]) Snapshot() Snapshot[P] {
	s := Snapshot[P]{
		Board:     g.board.Clone(),
		Score:     g.score,
		Level:     g.level,
		Lines:     g.lines,
		Interval:  g.interval,
		State:     g.state,
		LayerFill: make([]int, g.board.Layers()),
	}

	for h := range s.LayerFill {
		s.LayerFill[h] = g.board.LayerFill(h)
	}

	if p, ok := g.Active(); ok {
		s.Active = &p
	}
	if p, ok := g.Ghost(); ok {
		s.Ghost = &p
	}
	if p, ok := g.Held(); ok {
		s.Held = &p
	}
	return s
}

// Cell returns what a renderer should draw at p: the active piece over the
// board. The ghost is not included.
func (s Snapshot[P]) Cell(p P) space.Cell {
	if s.Active != nil {
		for c := range s.Active.Cells() {
			if c == p {
				return s.Active.Kind
			}
		}
	}
	return s.Board.At(p)
}

// IsGhost reports whether p is covered by the ghost but not by the active
// piece or the board.
func (s Snapshot[P]) IsGhost(p P) bool {
	if s.Ghost == nil || s.Cell(p).Filled() {
		return false
	}
	for c := range s.Ghost.Cells() {
		if c == p {
			return true
		}
	}
	return false
}
