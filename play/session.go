package play

import (
	"sync/atomic"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/space"
)

// StepSystem advances the game's fall timer every frame.
type StepSystem[P space.Point[P]] struct {
	Game   *engine.Game[P]
	Paused *atomic.Bool
}

func (s *StepSystem[P]) Execute(frame *loop.Frame) {
	if s.Paused != nil && s.Paused.Load() {
		return
	}
	s.Game.Step(frame.Now)
}

// PublishSystem stores a snapshot of the game after every frame for readers
// on other goroutines.
type PublishSystem[P space.Point[P]] struct {
	Game   *engine.Game[P]
	latest atomic.Pointer[engine.Snapshot[P]]
}

func (s *PublishSystem[P]) Execute(frame *loop.Frame) {
	// Publish after this frame's commands have been applied.
	frame.Commands.Defer(func() {
		snap := s.Game.Snapshot()
		s.latest.Store(&snap)
	})
}

// Session owns a game and the scheduler that is allowed to mutate it.
//
// Submit, Do and Latest may be called from any goroutine. Game and Tick
// belong to the scheduler goroutine: call Tick yourself from a render loop,
// or call Start and leave the scheduler to its own goroutine.
type Session[P space.Point[P]] struct {
	game      *engine.Game[P]
	scheduler *loop.Scheduler
	publish   *PublishSystem[P]
	paused    atomic.Bool
	submitted atomic.Int64
	applied   atomic.Int64
}

// NewSession wraps g. Extra systems run after the step system, in order.
func NewSession[P space.Point[P]](g *engine.Game[P], systems ...loop.System) *Session[P] {
	s := &Session[P]{
		game:      g,
		scheduler: loop.NewScheduler(),
		publish:   &PublishSystem[P]{Game: g},
	}

	s.scheduler.RegisterNamed("step", &StepSystem[P]{Game: g, Paused: &s.paused})
	for _, sys := range systems {
		s.scheduler.Register(sys)
	}
	s.scheduler.RegisterNamed("publish", s.publish)

	snap := g.Snapshot()
	s.publish.latest.Store(&snap)
	return s
}

// Submit queues a for the next frame. Actions are applied after the frame's
// systems, in submission order.
func (s *Session[P]) Submit(a Action) {
	s.submitted.Add(1)
	s.scheduler.Commands().Defer(func() {
		Apply(s.game, a, s.scheduler.Now())
		s.applied.Add(1)
	})
}

// Do queues fn to run against the game on the scheduler goroutine.
func (s *Session[P]) Do(fn func(g *engine.Game[P])) {
	s.scheduler.Commands().Defer(func() { fn(s.game) })
}

// Tick runs one frame at now.
func (s *Session[P]) Tick(now time.Duration) {
	s.scheduler.Once(now)
}

// Start runs frames every interval on a new goroutine.
func (s *Session[P]) Start(interval time.Duration) *loop.Task {
	return s.scheduler.Start(interval)
}

// Latest returns the snapshot taken at the end of the last frame.
func (s *Session[P]) Latest() engine.Snapshot[P] {
	return *s.publish.latest.Load()
}

// SetPaused stops or resumes the fall timer. Submitted actions still apply.
func (s *Session[P]) SetPaused(paused bool) {
	s.paused.Store(paused)
}

func (s *Session[P]) Paused() bool {
	return s.paused.Load()
}

// Pending returns the number of submitted actions not yet applied.
func (s *Session[P]) Pending() int {
	return int(s.submitted.Load() - s.applied.Load())
}

// Game returns the game. Only use it from the scheduler goroutine.
func (s *Session[P]) Game() *engine.Game[P] {
	return s.game
}

// Scheduler returns the session's scheduler, e.g. for its stats.
func (s *Session[P]) Scheduler() *loop.Scheduler {
	return s.scheduler
}
