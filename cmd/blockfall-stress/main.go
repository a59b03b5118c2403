// Command blockfall-stress plays many headless games with random input on a
// virtual clock and reports throughput and game statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/space"
)

func main() {
	games := flag.Int("games", 20, "Games to play per variant.")
	duration := flag.Duration("duration", 10*time.Minute, "Virtual time each game runs for.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Virtual frame length.")
	seed := flag.Uint64("seed", 1, "Random seed for pieces and input.")
	variant := flag.String("variant", "all", "Variant to play: planar, volumetric or all.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *frame <= 0 || *games <= 0 {
		log.Fatalf("games and frame must be positive")
	}

	report := &Report{
		Games:          *games,
		GameDuration:   *duration,
		Frame:          *frame,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	cfg := config{duration: *duration, frame: *frame}

	if *variant == "all" || *variant == "planar" {
		log.Printf("Playing %d planar games...", *games)
		v := NewVariantReport("planar")
		for i := 0; i < *games; i++ {
			rng := rand.New(rand.NewPCG(*seed, uint64(i)))
			if err := simulate(engine.NewPlanar, rng, cfg, v); err != nil {
				log.Fatalf("Planar game %d failed: %v", i, err)
			}
		}
		report.Variants = append(report.Variants, v)
	}

	if *variant == "all" || *variant == "volumetric" {
		log.Printf("Playing %d volumetric games...", *games)
		v := NewVariantReport("volumetric")
		for i := 0; i < *games; i++ {
			rng := rand.New(rand.NewPCG(*seed, uint64(i)|1<<32))
			if err := simulate(engine.NewVolumetric, rng, cfg, v); err != nil {
				log.Fatalf("Volumetric game %d failed: %v", i, err)
			}
		}
		report.Variants = append(report.Variants, v)
	}

	if len(report.Variants) == 0 {
		log.Fatalf("Unknown variant %q", *variant)
	}

	report.TotalTime = time.Since(startTime)
	for _, v := range report.Variants {
		v.UpdateTime.Finalize()
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

type config struct {
	duration time.Duration
	frame    time.Duration
	// actionRate is the chance of a random action on any frame.
	actionRate float64
}

// randomActions are the actions the bot picks from, weighted by repetition.
var randomActions = []play.Action{
	play.MoveLeft, play.MoveLeft, play.MoveRight, play.MoveRight,
	play.MoveDown, play.MoveBack, play.MoveFront,
	play.Rotate, play.RotateHeight, play.RotateDepth, play.RotateWidth,
	play.HardDrop, play.Hold,
}

// simulate plays one game on a virtual clock, restarting after every game
// over until the duration has passed.
func simulate[P space.Point[P]](
	newGame func(...engine.Option) (*engine.Game[P], error),
	rng *rand.Rand,
	cfg config,
	v *VariantReport,
) error {
	if cfg.actionRate == 0 {
		cfg.actionRate = 0.2
	}

	over := false
	g, err := newGame(
		engine.WithSource(rng),
		engine.WithListener(func(e engine.Event) {
			switch e.Type {
			case engine.EventLock:
				v.Locks++
				if e.Cleared > 0 {
					v.AddClear(e.Cleared)
					v.Lines += int64(e.Cleared)
				}
			case engine.EventGameOver:
				v.GameOvers++
				v.BestScore = max(v.BestScore, e.Score)
				over = true
			}
		}),
	)
	if err != nil {
		return err
	}

	s := play.NewSession(g)
	for now := time.Duration(0); now < cfg.duration; now += cfg.frame {
		if over {
			s.Submit(play.Reset)
			over = false
		} else if rng.Float64() < cfg.actionRate {
			s.Submit(randomActions[rng.IntN(len(randomActions))])
			v.Actions++
		}

		start := time.Now()
		s.Tick(now)
		v.UpdateTime.Samples = append(v.UpdateTime.Samples, time.Since(start))
		v.Frames++
	}

	v.BestScore = max(v.BestScore, g.Score())
	v.AddSpawns(g.Spawned())
	return nil
}
