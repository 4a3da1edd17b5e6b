package timer

import (
	"sync"
	"time"

	"atomicgo.dev/schedule"
)

// Task is a cancellable periodic callback. Start and Stop are idempotent.
type Task interface {
	Start()
	Stop()
	Active() bool
}

// TaskFactory creates a Task that calls fn every interval.
type TaskFactory func(interval time.Duration, fn func()) Task

// Dispatcher carries callbacks from scheduler goroutines to the goroutine that
// owns the timer. Every mutation of timer state happens on the receiving end.
type Dispatcher chan func()

// NewDispatcher returns a buffered Dispatcher.
func NewDispatcher() Dispatcher {
	return make(Dispatcher, 8)
}

// Scheduler returns a TaskFactory whose tasks post their callbacks to d.
func (d Dispatcher) Scheduler() TaskFactory {
	return func(interval time.Duration, fn func()) Task {
		return &scheduledTask{
			interval: interval,
			fn:       fn,
			post:     d,
		}
	}
}

// scheduledTask runs on an atomicgo schedule. Each Start opens a new
// generation; callbacks from an older generation are dropped when they reach
// the owning goroutine, so nothing posted before Stop runs after it.
type scheduledTask struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	post     Dispatcher
	task     *schedule.Task
	done     chan struct{}
	gen      uint64
}

func (s *scheduledTask) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.task != nil {
		return
	}

	s.gen++
	gen := s.gen
	done := make(chan struct{})
	s.done = done

	s.task = schedule.Every(s.interval, func() bool {
		select {
		case s.post <- func() { s.run(gen) }:
		case <-done:
		}

		return true
	})
}

func (s *scheduledTask) run(gen uint64) {
	s.mu.Lock()
	current := s.task != nil && s.gen == gen
	s.mu.Unlock()

	if current {
		s.fn()
	}
}

func (s *scheduledTask) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.task == nil {
		return
	}

	close(s.done)
	s.task.Stop()
	s.task = nil
}

func (s *scheduledTask) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.task != nil
}
