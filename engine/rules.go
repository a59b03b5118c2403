package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("engine: invalid rules")

// Rules are the tunable numbers of the scoring and timing state machine.
type Rules struct {
	// Rewards is indexed by the number of layers cleared by one lock.
	// Counts past the end of the table score nothing.
	Rewards []int
	// LinesPerLevel is the number of cleared layers per level.
	LinesPerLevel int
	// BaseInterval is the fall interval at level 1.
	BaseInterval time.Duration
	// IntervalStep is subtracted from the interval for every level above 1.
	IntervalStep time.Duration
	// MinInterval is the floor of the fall interval.
	MinInterval time.Duration
}

// DefaultRules returns the classic numbers: rewards 0/100/300/500/800, a level
// every 10 layers, 700ms falling 50ms per level down to 120ms.
func DefaultRules() Rules {
	return Rules{
		Rewards:       []int{0, 100, 300, 500, 800},
		LinesPerLevel: 10,
		BaseInterval:  700 * time.Millisecond,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   120 * time.Millisecond,
	}
}

func (r Rules) Validate() error {
	switch {
	case len(r.Rewards) == 0:
		return fmt.Errorf("%w: empty reward table", ErrInvalidRules)
	case r.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level %d", ErrInvalidRules, r.LinesPerLevel)
	case r.MinInterval <= 0:
		return fmt.Errorf("%w: min interval %v", ErrInvalidRules, r.MinInterval)
	case r.BaseInterval < r.MinInterval:
		return fmt.Errorf("%w: base interval %v below min %v", ErrInvalidRules, r.BaseInterval, r.MinInterval)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: interval step %v", ErrInvalidRules, r.IntervalStep)
	}
	for i, v := range r.Rewards {
		if v < 0 {
			return fmt.Errorf("%w: reward[%d] = %d", ErrInvalidRules, i, v)
		}
	}
	return nil
}

// Reward returns the score for clearing n layers with one lock. A count with
// no table entry scores 0.
func (r Rules) Reward(n int) int {
	if n < 0 || n >= len(r.Rewards) {
		return 0
	}
	return r.Rewards[n]
}

// Level returns the level reached after lines cleared layers.
func (r Rules) Level(lines int) int {
	return 1 + lines/r.LinesPerLevel
}

// Interval returns the fall interval at level.
func (r Rules) Interval(level int) time.Duration {
	return max(r.MinInterval, r.BaseInterval-time.Duration(level-1)*r.IntervalStep)
}
