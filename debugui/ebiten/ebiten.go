// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini is not
// written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Overlay wraps an ebiten.Game so that its Update runs inside an ImGui frame
// and the ImGui draw lists are rendered on top of the game's own drawing.
type Overlay struct {
	ebiten.Game
	Backend *ImguiBackend
}

func (o *Overlay) Update() error {
	o.Backend.BeginFrame()
	defer o.Backend.EndFrame()
	return o.Game.Update()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.Game.Draw(screen)
	o.Backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.Backend.Layout(outsideWidth, outsideHeight)
	return o.Game.Layout(outsideWidth, outsideHeight)
}
