// Package debugui provides an immediate-mode debug overlay for the game loop
// using Dear ImGui. Panels are queued each tick and drawn after the tick's
// systems have run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input, so frontends can stop forwarding keys to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the tick
// and refreshes InputState.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add registers an item to draw every tick.
func (i *ImguiSystem) Add(item ImguiItem) {
	i.Items = append(i.Items, item)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// NewDefaultSystem returns an ImguiSystem with the performance and game
// panels attached to d.
func NewDefaultSystem(d *loop.Driver) *ImguiSystem {
	sys := &ImguiSystem{}
	perf := NewPerformanceStats(d.Scheduler, 120)
	inspector := NewGameInspector(d)
	sys.Add(ImguiItem{Render: perf.Render})
	sys.Add(ImguiItem{Render: inspector.Render})
	return sys
}
