// Package play maps player intents onto a game and runs the game on a loop
// scheduler so frontends never touch it from their own goroutines.
package play

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/space"
)

// Action is a player intent, independent of any key binding.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	MoveDown
	// MoveBack and MoveFront step along the depth axis. Planar games ignore
	// them.
	MoveBack
	MoveFront
	// Rotate turns about the variant's default axis.
	Rotate
	RotateHeight
	RotateDepth
	RotateWidth
	HardDrop
	Hold
	Reset
)

var actionNames = [...]string{
	MoveLeft:     "move-left",
	MoveRight:    "move-right",
	MoveDown:     "move-down",
	MoveBack:     "move-back",
	MoveFront:    "move-front",
	Rotate:       "rotate",
	RotateHeight: "rotate-height",
	RotateDepth:  "rotate-depth",
	RotateWidth:  "rotate-width",
	HardDrop:     "hard-drop",
	Hold:         "hold",
	Reset:        "reset",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Apply performs a on g at time now and reports whether anything changed.
// Actions along an axis the game's coordinates do not span are rejected.
func Apply[P space.Point[P]](g *engine.Game[P], a Action, now time.Duration) bool {
	switch a {
	case MoveLeft:
		return move(g, space.AxisWidth, -1)
	case MoveRight:
		return move(g, space.AxisWidth, 1)
	case MoveDown:
		return move(g, space.AxisHeight, 1)
	case MoveBack:
		return move(g, space.AxisDepth, -1)
	case MoveFront:
		return move(g, space.AxisDepth, 1)
	case Rotate:
		return g.Rotate()
	case RotateHeight:
		return g.RotateAbout(space.AxisHeight)
	case RotateDepth:
		return g.RotateAbout(space.AxisDepth)
	case RotateWidth:
		return g.RotateAbout(space.AxisWidth)
	case HardDrop:
		return g.HardDrop(now)
	case Hold:
		return g.HoldSwap()
	case Reset:
		g.Reset()
		return true
	}
	return false
}

func move[P space.Point[P]](g *engine.Game[P], axis space.Axis, dir int) bool {
	if !spans(g.Extent(), axis) {
		return false
	}
	var zero P
	return g.Move(zero.With(axis, dir))
}

func spans[P space.Point[P]](p P, axis space.Axis) bool {
	for _, a := range p.Axes() {
		if a == axis {
			return true
		}
	}
	return false
}
