// Command blockfall plays blockfall in a window, with an optional Dear ImGui
// debug overlay.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/sfx"
	"github.com/plus3/blockfall/space"
)

const title = "Blockfall"

func main() {
	variant := flag.String("variant", "planar", "Game variant: planar or volumetric")
	seed := flag.Uint64("seed", 0, "Random seed for piece selection (0 picks one)")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	log.Printf("Starting %s game with seed %d", *variant, *seed)

	var player sfx.Player = sfx.Mute{}
	if !*mute {
		beeper, err := sfx.NewBeeper(0.3)
		if err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer beeper.Close()
			player = beeper
		}
	}

	cues := sfx.Listener(player)
	opts := []engine.Option{
		engine.WithSource(rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))),
		engine.WithListener(func(e engine.Event) {
			log.Printf("event: %s", e)
			cues(e)
		}),
	}

	var err error
	switch *variant {
	case "planar":
		var g *engine.Game[space.Vec2]
		if g, err = engine.NewPlanar(opts...); err == nil {
			err = run(g, planarLayout, *debug)
		}
	case "volumetric":
		var g *engine.Game[space.Vec3]
		if g, err = engine.NewVolumetric(opts...); err == nil {
			err = run(g, volumetricLayout, *debug)
		}
	default:
		log.Fatalf("Unknown variant %q", *variant)
	}
	if err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}

// window is the ebiten.Game for one variant. The session is ticked from
// Update, so the ebiten update goroutine is the game's only writer.
type window[P space.Point[P]] struct {
	session *play.Session[P]
	arrange func(engine.Snapshot[P]) layout
	ui      *debugui.System
	ticks   int
}

func run[P space.Point[P]](g *engine.Game[P], arrange func(engine.Snapshot[P]) layout, debug bool) error {
	w := &window[P]{arrange: arrange}

	var systems []loop.System
	if debug {
		w.ui = &debugui.System{}
		systems = append(systems, w.ui)
	}
	w.session = play.NewSession(g, systems...)

	width, height := arrange(w.session.Latest()).size()

	if !debug {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
		return ebiten.RunGame(w)
	}

	backend := debugui_ebiten.NewImguiBackend(title+" (debug)", width+400, max(height, 660))
	w.ui.Add(debugui.NewInspector(w.session, 300).Render)
	w.ui.Add(debugui.NewPerformanceStats(w.session.Scheduler(), 120).Render)
	return ebiten.RunGame(&debugui_ebiten.Overlay{Game: w, Backend: backend})
}

func (w *window[P]) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if w.ui == nil || !w.ui.Input.WantCaptureKeyboard {
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			w.session.SetPaused(!w.session.Paused())
		}
		for _, a := range pressedActions() {
			w.session.Submit(a)
		}
	}

	w.ticks++
	w.session.Tick(time.Duration(w.ticks) * time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (w *window[P]) Draw(screen *ebiten.Image) {
	snap := w.session.Latest()
	w.arrange(snap).draw(screen, hudOf(snap, w.session.Paused()))
}

func (w *window[P]) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
