package engine

import "fmt"

// EventType identifies what happened in an Event.
type EventType uint8

const (
	// EventLock is sent after a piece has been merged into the board.
	EventLock EventType = iota
	// EventClear is sent after a lock that removed at least one layer.
	EventClear
	// EventLevelUp is sent when a clear raised the level.
	EventLevelUp
	// EventGameOver is sent when a freshly spawned piece could not be placed.
	EventGameOver
	// EventHold is sent after a successful hold swap.
	EventHold
	// EventReset is sent after Reset.
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventLock:
		return "lock"
	case EventClear:
		return "clear"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventHold:
		return "hold"
	case EventReset:
		return "reset"
	}
	return fmt.Sprintf("event(%d)", uint8(t))
}

// Event describes a state change, with the HUD values after the change.
type Event struct {
	Type    EventType
	Cleared int
	Reward  int
	Score   int
	Lines   int
	Level   int
}

func (e Event) String() string {
	return fmt.Sprintf("%s cleared=%d reward=%d score=%d lines=%d level=%d",
		e.Type, e.Cleared, e.Reward, e.Score, e.Lines, e.Level)
}

// Listener receives events synchronously from the goroutine mutating the game.
type Listener func(Event)
