package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/play"
)

// command is what a key press means to the terminal frontend.
type command uint8

const (
	cmdNone command = iota
	cmdAction
	cmdPause
	cmdQuit
)

var runeActions = map[rune]play.Action{
	'a': play.MoveLeft,
	'd': play.MoveRight,
	's': play.MoveDown,
	'w': play.Rotate,
	'q': play.MoveBack,
	'e': play.MoveFront,
	'z': play.RotateDepth,
	'x': play.RotateWidth,
	' ': play.HardDrop,
	'c': play.Hold,
	'r': play.Reset,
}

var keyActions = map[tcell.Key]play.Action{
	tcell.KeyLeft:  play.MoveLeft,
	tcell.KeyRight: play.MoveRight,
	tcell.KeyDown:  play.MoveDown,
	tcell.KeyUp:    play.Rotate,
}

func translate(ev *tcell.EventKey) (command, play.Action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, 0
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r == 'p' {
			return cmdPause, 0
		}
		if a, ok := runeActions[r]; ok {
			return cmdAction, a
		}
		return cmdNone, 0
	}
	if a, ok := keyActions[ev.Key()]; ok {
		return cmdAction, a
	}
	return cmdNone, 0
}
