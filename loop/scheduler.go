// Package loop is the frame scheduler that drives a game. It owns the single
// goroutine allowed to mutate game state; other goroutines hand work to it
// through Commands.
package loop

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in order, once per frame.
type Scheduler struct {
	commands *Commands
	systems  []System

	statsMu     sync.Mutex
	systemStats []*systemStatsInternal
	frames      int64

	last    time.Duration
	started bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		commands: NewCommands(),
		systems:  make([]System, 0),
	}
}

// Commands returns the buffer flushed at the end of every frame. It is safe
// to Defer onto it from any goroutine.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Register adds a system under its type name.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.RegisterNamed(systemType.Name(), system)
}

// RegisterNamed adds a system with an explicit name for the stats.
func (s *Scheduler) RegisterNamed(name string, system System) {
	s.systems = append(s.systems, system)

	s.statsMu.Lock()
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
	s.statsMu.Unlock()
}

// Once runs every system once for a frame at now, then flushes the command
// buffer. now is an offset from any fixed epoch and must not decrease.
func (s *Scheduler) Once(now time.Duration) {
	var delta time.Duration
	if s.started {
		delta = now - s.last
	}
	s.last = now
	s.started = true

	frame := &Frame{
		Now:      now,
		Delta:    delta,
		Commands: s.commands,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		s.statsMu.Lock()
		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		s.statsMu.Unlock()
	}

	s.commands.Flush()

	s.statsMu.Lock()
	s.frames++
	s.statsMu.Unlock()
}

// Run executes frames at the given interval until the context is cancelled.
// Frame times continue from the last frame run, so a stopped scheduler can be
// started again without the clock jumping.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	epoch := time.Now().Add(-s.last)

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(epoch))
		}
	}
}

// Now returns the time of the last frame.
func (s *Scheduler) Now() time.Duration {
	return s.last
}

// Task is a running Scheduler.Run started by Start.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start runs the scheduler on a new goroutine until Stop is called.
func (s *Scheduler) Start(interval time.Duration) *Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		s.Run(ctx, interval)
	}()
	return t
}

// Stop cancels the task and waits for the current frame to finish. It is
// safe to call more than once.
func (t *Task) Stop() {
	t.cancel()
	<-t.done
}

// Done is closed once the task has stopped.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	stats := &SchedulerStats{
		SystemCount: len(s.systemStats),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
