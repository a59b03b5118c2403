package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/play"
)

const (
	// repeatDelay is how many ticks a key is held before it auto-repeats.
	repeatDelay = 10
	// repeatEvery is the auto-repeat period in ticks.
	repeatEvery = 3
)

type binding struct {
	keys   []ebiten.Key
	action play.Action
	// repeat makes the action fire again while the key is held.
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: play.MoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: play.MoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: play.MoveDown, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyQ}, action: play.MoveBack, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyE}, action: play.MoveFront, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: play.Rotate},
	{keys: []ebiten.Key{ebiten.KeyZ}, action: play.RotateDepth},
	{keys: []ebiten.Key{ebiten.KeyX}, action: play.RotateWidth},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: play.HardDrop},
	{keys: []ebiten.Key{ebiten.KeyC}, action: play.Hold},
	{keys: []ebiten.Key{ebiten.KeyR}, action: play.Reset},
}

// fires reports whether a key held for d ticks should trigger this tick.
func fires(d int, repeat bool) bool {
	switch {
	case d == 1:
		return true
	case !repeat || d < repeatDelay:
		return false
	}
	return (d-repeatDelay)%repeatEvery == 0
}

// pressedActions returns the actions triggered by the keyboard this tick.
func pressedActions() []play.Action {
	var out []play.Action
	for _, b := range bindings {
		for _, k := range b.keys {
			if fires(inpututil.KeyPressDuration(k), b.repeat) {
				out = append(out, b.action)
				break
			}
		}
	}
	return out
}
