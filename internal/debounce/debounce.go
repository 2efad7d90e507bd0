// Package debounce coalesces rapid repeated work per key: scheduling a
// task supersedes any pending task for the same key. It belongs to the
// editing surface; the derivation engine itself stays timer-free.
package debounce

import (
	"sync"
	"time"
)

// Scheduler delays tasks by a fixed window, cancelling a pending task
// whenever a new one arrives under the same key.
type Scheduler struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*entry
	stopped bool
}

type entry struct {
	timer *time.Timer
	fn    func()
}

// NewScheduler creates a scheduler with the given delay window.
func NewScheduler(delay time.Duration) *Scheduler {
	return &Scheduler{
		delay:   delay,
		pending: make(map[string]*entry),
	}
}

// Schedule queues fn to run after the delay window. A prior pending task
// for the same key is cancelled and replaced.
func (s *Scheduler) Schedule(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if e, ok := s.pending[key]; ok {
		e.timer.Stop()
	}
	e := &entry{fn: fn}
	e.timer = time.AfterFunc(s.delay, func() {
		s.fire(key, e)
	})
	s.pending[key] = e
}

func (s *Scheduler) fire(key string, e *entry) {
	s.mu.Lock()
	if s.pending[key] != e {
		// Superseded between expiry and lock acquisition.
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()
	e.fn()
}

// Flush runs every pending task immediately.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	tasks := make([]func(), 0, len(s.pending))
	for key, e := range s.pending {
		e.timer.Stop()
		tasks = append(tasks, e.fn)
		delete(s.pending, key)
	}
	s.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
}

// Stop cancels every pending task and rejects further scheduling.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for key, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, key)
	}
}

// Pending reports how many tasks are queued. Intended for tests and
// status displays.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
