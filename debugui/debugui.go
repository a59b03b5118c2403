// Package debugui provides Dear ImGui panels for inspecting a running game.
// Panels are plain render funcs collected by a System, which defers them onto
// the frame's command buffer so they run after the game has been stepped.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before turning key presses into game actions.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates the input state and queues every item's render function.
// It must run on the goroutine that owns the ImGui frame.
type System struct {
	Items []Item
	Input InputState
}

// Add registers a render function.
func (s *System) Add(render func()) {
	s.Items = append(s.Items, Item{Render: render})
}

func (s *System) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
