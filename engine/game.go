// Package engine implements the falling-block game state machine on top of
// the space and piece packages. The same Game type serves every
// dimensionality; see NewPlanar and NewVolumetric for the two stock variants.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
)

var (
	// PlanarExtent is the classic 20 rows by 10 columns.
	PlanarExtent = space.Vec2{Row: 20, Col: 10}
	// VolumetricExtent is 20 high, 6 deep and 10 wide.
	VolumetricExtent = space.Vec3{H: 20, D: 6, W: 10}
)

// State is the phase of a game.
type State uint8

const (
	Playing State = iota
	// GameOver is terminal: only Reset has any effect.
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

type options struct {
	rules    Rules
	source   piece.Source
	listener Listener
}

// Option configures a Game.
type Option func(*options)

// WithRules replaces DefaultRules.
func WithRules(r Rules) Option {
	return func(o *options) { o.rules = r }
}

// WithSource sets the random source used to pick kinds.
func WithSource(src piece.Source) Option {
	return func(o *options) { o.source = src }
}

// WithListener registers a callback for game events.
func WithListener(l Listener) Option {
	return func(o *options) { o.listener = l }
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Game is the state of one game: the board, the active and held pieces, the
// score/level/lines counters and the fall timer.
//
// A Game is not safe for concurrent use. All calls, including reads, must be
// made from the goroutine that drives it; see the loop package.
type Game[P space.Point[P]] struct {
	geom     piece.Geometry[P]
	extent   P
	rules    Rules
	factory  *piece.Factory[P]
	listener Listener

	board  *space.Grid[P]
	active *piece.Piece[P]
	held   *piece.Piece[P]

	score    int
	level    int
	lines    int
	interval time.Duration
	lastFall time.Duration
	state    State
}

// New creates a game on a board of the given extent and starts it.
func New[P space.Point[P]](geom piece.Geometry[P], extent P, opts ...Option) (*Game[P], error) {
	if geom == nil {
		return nil, errors.New("engine: nil geometry")
	}

	o := options{
		rules:  DefaultRules(),
		source: globalSource{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.rules.Validate(); err != nil {
		return nil, err
	}
	if _, err := space.NewGrid(extent); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	g := &Game[P]{
		geom:     geom,
		extent:   extent,
		rules:    o.rules,
		factory:  piece.NewFactory(geom, extent, o.source),
		listener: o.listener,
	}
	g.init()
	return g, nil
}

// NewPlanar creates a classic 10x20 game.
func NewPlanar(opts ...Option) (*Game[space.Vec2], error) {
	return New[space.Vec2](piece.Planar{}, PlanarExtent, opts...)
}

// NewVolumetric creates a 10x20x6 game.
func NewVolumetric(opts ...Option) (*Game[space.Vec3], error) {
	return New[space.Vec3](piece.Volumetric{}, VolumetricExtent, opts...)
}

func (g *Game[P]) init() {
	g.score = 0
	g.level = 1
	g.lines = 0
	g.interval = g.rules.Interval(g.level)
	g.lastFall = 0
	g.state = Playing
	g.board = space.MustGrid(g.extent)
	g.held = nil

	next := g.factory.Spawn()
	g.active = &next
}

// Reset starts a new game. It works in every state.
func (g *Game[P]) Reset() {
	g.init()
	g.emit(EventReset, 0, 0)
}

func (g *Game[P]) playing() bool {
	return g.state == Playing && g.active != nil
}

// Step advances the fall timer to now. Once at least one interval has passed
// since the last fall the active piece drops one layer, or locks if it
// cannot. Calls inside the interval are no-ops, so Step may be called every
// frame.
func (g *Game[P]) Step(now time.Duration) {
	if !g.playing() {
		return
	}
	if now-g.lastFall < g.interval {
		return
	}

	down := space.Unit[P](space.AxisHeight)
	if CanPlace(*g.active, g.board, down) {
		moved := g.active.Moved(down)
		g.active = &moved
		g.lastFall = now
		return
	}

	g.lock(now)
}

func (g *Game[P]) lock(now time.Duration) {
	merged := Merge(*g.active, g.board)
	board, cleared := ClearFull(merged)
	reward := g.rules.Reward(cleared)
	prevLevel := g.level

	g.board = board
	g.score += reward
	g.lines += cleared
	g.level = g.rules.Level(g.lines)
	g.interval = g.rules.Interval(g.level)

	g.emit(EventLock, cleared, reward)
	if cleared > 0 {
		g.emit(EventClear, cleared, reward)
	}
	if g.level > prevLevel {
		g.emit(EventLevelUp, cleared, reward)
	}

	var zero P
	next := g.factory.Spawn()
	if CanPlace(next, g.board, zero) {
		g.active = &next
	} else {
		g.active = nil
		g.state = GameOver
		g.emit(EventGameOver, 0, 0)
	}

	g.lastFall = now
}

// Move translates the active piece by delta if the whole move fits. It
// reports whether the piece moved.
func (g *Game[P]) Move(delta P) bool {
	if !g.playing() || !CanPlace(*g.active, g.board, delta) {
		return false
	}
	moved := g.active.Moved(delta)
	g.active = &moved
	return true
}

// Rotate turns the active piece about the variant's default axis.
func (g *Game[P]) Rotate() bool {
	return g.RotateAbout(g.geom.DefaultAxis())
}

// RotateAbout turns the active piece a quarter about axis a in place. There
// are no kicks: if the turned piece does not fit, nothing changes.
func (g *Game[P]) RotateAbout(a space.Axis) bool {
	if !g.playing() {
		return false
	}
	rotated, ok := g.geom.Rotate(*g.active, a)
	if !ok {
		return false
	}
	var zero P
	if !CanPlace(rotated, g.board, zero) {
		return false
	}
	g.active = &rotated
	return true
}

// HardDrop moves the active piece down as far as it goes and locks it at
// once, regardless of the fall timer.
func (g *Game[P]) HardDrop(now time.Duration) bool {
	if !g.playing() {
		return false
	}
	dropped := g.active.Moved(scale(space.Unit[P](space.AxisHeight), DropDistance(*g.active, g.board)))
	g.active = &dropped
	g.lock(now)
	return true
}

// HoldSwap exchanges the active piece with the held one.
//
// With nothing held, the active piece is held and a newly spawned piece
// becomes active. Otherwise the held piece comes back at the active piece's
// position on the non-fall axes and at its spawn row on the fall axis. The
// piece going into hold is parked at the origin. If the incoming piece does
// not fit nothing changes.
func (g *Game[P]) HoldSwap() bool {
	if !g.playing() {
		return false
	}

	var next piece.Piece[P]
	if g.held == nil {
		next = g.factory.Spawn()
	} else {
		next = *g.held
		spawn := g.factory.SpawnAnchor(next)
		next.Anchor = g.active.Anchor.With(space.AxisHeight, spawn.Coord(space.AxisHeight))
	}

	var zero P
	if !CanPlace(next, g.board, zero) {
		return false
	}

	held := g.active.At(zero)
	g.held = &held
	g.active = &next
	g.emit(EventHold, 0, 0)
	return true
}

func (g *Game[P]) emit(t EventType, cleared, reward int) {
	if g.listener == nil {
		return
	}
	g.listener(Event{
		Type:    t,
		Cleared: cleared,
		Reward:  reward,
		Score:   g.score,
		Lines:   g.lines,
		Level:   g.level,
	})
}

func scale[P space.Point[P]](p P, n int) P {
	var out P
	for _, a := range p.Axes() {
		out = out.With(a, p.Coord(a)*n)
	}
	return out
}

// Board returns a read-only view of the live board.
func (g *Game[P]) Board() space.Reader[P] { return g.board }

// Extent returns the board size.
func (g *Game[P]) Extent() P { return g.extent }

// Geometry returns the variant geometry.
func (g *Game[P]) Geometry() piece.Geometry[P] { return g.geom }

// Rules returns the rules the game was built with.
func (g *Game[P]) Rules() Rules { return g.rules }

// Active returns the falling piece. ok is false after game over.
func (g *Game[P]) Active() (piece.Piece[P], bool) {
	if g.active == nil {
		return piece.Piece[P]{}, false
	}
	return *g.active, true
}

// Held returns the held piece, if any.
func (g *Game[P]) Held() (piece.Piece[P], bool) {
	if g.held == nil {
		return piece.Piece[P]{}, false
	}
	return *g.held, true
}

// Ghost returns the active piece moved to where a hard drop would put it.
func (g *Game[P]) Ghost() (piece.Piece[P], bool) {
	if g.active == nil {
		return piece.Piece[P]{}, false
	}
	n := DropDistance(*g.active, g.board)
	return g.active.Moved(scale(space.Unit[P](space.AxisHeight), n)), true
}

func (g *Game[P]) Score() int { return g.score }

func (g *Game[P]) Level() int { return g.level }

func (g *Game[P]) Lines() int { return g.lines }

// Interval returns the current fall interval.
func (g *Game[P]) Interval() time.Duration { return g.interval }

// LastFall returns the time of the last fall step or lock.
func (g *Game[P]) LastFall() time.Duration { return g.lastFall }

func (g *Game[P]) State() State { return g.state }

func (g *Game[P]) Over() bool { return g.state == GameOver }

// Spawned returns how many pieces of each kind have been spawned since the
// game was created, across resets.
func (g *Game[P]) Spawned() map[space.Cell]int { return g.factory.Counts() }
