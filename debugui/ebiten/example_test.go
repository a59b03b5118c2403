package ebiten_test

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/space"
)

// Game ticks a play session from ebiten's update loop.
type Game struct {
	session *play.Session[space.Vec2]
	frames  int
}

func (g *Game) Update() error {
	// Panels registered on the debugui.System render while the session's
	// deferred commands are flushed, inside the ImGui frame.
	g.frames++
	g.session.Tick(time.Duration(g.frames) * time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720)

	game, err := engine.NewPlanar()
	if err != nil {
		panic(err)
	}

	ui := &debugui.System{}
	session := play.NewSession(game, ui)
	ui.Add(debugui.NewInspector(session, 120).Render)
	ui.Add(debugui.NewPerformanceStats(session.Scheduler(), 120).Render)
	ui.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from blockfall!")
		imgui.End()
	})

	overlay := &debugui_ebiten.Overlay{
		Game:    &Game{session: session},
		Backend: backend,
	}

	if err := ebiten.RunGame(overlay); err != nil {
		panic(err)
	}
}
