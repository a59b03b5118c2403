package loop

import "sync"

// Commands buffers deferred work that is applied at the end of a frame, on
// the scheduler goroutine. Defer may be called from any goroutine; Flush must
// only be called by the goroutine that owns the state the commands touch.
type Commands struct {
	mu     sync.Mutex
	defers []func()
	spare  []func()
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Defer queues fn. Queued functions run in the order they were deferred.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.defers)
}

// Flush runs every queued function and resets the buffer. Functions deferred
// while flushing are kept for the next Flush.
func (c *Commands) Flush() int {
	c.mu.Lock()
	pending := c.defers
	c.defers = c.spare[:0]
	c.mu.Unlock()

	for _, fn := range pending {
		fn()
	}

	clear(pending)
	c.mu.Lock()
	c.spare = pending[:0]
	c.mu.Unlock()
	return len(pending)
}
