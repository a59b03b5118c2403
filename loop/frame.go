package loop

import "time"

// Frame is passed to every system during one scheduler tick.
type Frame struct {
	// Now is the time of this frame as an offset from the scheduler's epoch.
	Now time.Duration
	// Delta is the time since the previous frame, zero on the first.
	Delta time.Duration
	// Commands is flushed once every system has run.
	Commands *Commands
}
