// Command blockfall-tui plays blockfall in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/sfx"
	"github.com/plus3/blockfall/space"
)

func main() {
	variant := flag.String("variant", "planar", "Game variant: planar or volumetric")
	seed := flag.Uint64("seed", 0, "Random seed for piece selection (0 picks one)")
	mute := flag.Bool("mute", false, "Disable sound")
	volume := flag.Float64("volume", 0.3, "Sound volume between 0 and 1")
	logPath := flag.String("log", "", "Write the event log to this file")
	tick := flag.Duration("tick", 16*time.Millisecond, "Frame interval")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	log.Printf("Starting %s game with seed %d", *variant, *seed)

	var player sfx.Player = sfx.Mute{}
	if !*mute {
		beeper, err := sfx.NewBeeper(*volume)
		if err != nil {
			// Non-fatal, the game runs without sound.
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	r := &renderer{screen: screen}

	switch *variant {
	case "planar":
		g, err := engine.NewPlanar(opts...)
		if err != nil {
			fatal(screen, err)
		}
		run(screen, play.NewSession(g), *tick, r.drawPlanar)
	case "volumetric":
		g, err := engine.NewVolumetric(opts...)
		if err != nil {
			fatal(screen, err)
		}
		run(screen, play.NewSession(g), *tick, r.drawVolumetric)
	default:
		fatal(screen, fmt.Errorf("unknown variant %q", *variant))
	}
}

func fatal(screen tcell.Screen, err error) {
	screen.Fini()
	log.SetOutput(os.Stderr)
	log.Fatalf("Failed to start game: %v", err)
}

// run owns the session: ticks, input and drawing all happen on this
// goroutine, so the session is never started on its own.
func run[P space.Point[P]](screen tcell.Screen, s *play.Session[P], tick time.Duration, draw func(engine.Snapshot[P], bool)) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	start := time.Now()
	s.Tick(0)
	draw(s.Latest(), s.Paused())

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, action := translate(ev)
				switch cmd {
				case cmdQuit:
					stats := s.Scheduler().GetStats()
					snap := s.Latest()
					log.Printf("Quit after %d frames: score=%d lines=%d level=%d",
						stats.Frames, snap.Score, snap.Lines, snap.Level)
					return
				case cmdPause:
					s.SetPaused(!s.Paused())
				case cmdAction:
					s.Submit(action)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			s.Tick(now.Sub(start))
			draw(s.Latest(), s.Paused())
		}
	}
}
