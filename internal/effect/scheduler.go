// Package effect schedules one-shot delayed actions for timed power-up effects.
//
// Actions never run on a timer goroutine. They are collected when due and executed by
// RunDue, which the simulation calls at the start of each tick, so every action sees the
// same single-threaded view of game state as the rest of the update.
package effect

import (
	"container/heap"
	"sync"
	"time"
)

// Scheduler arms actions to fire once after a delay.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	pending taskQueue
	seq     uint64
}

type task struct {
	deadline time.Time
	seq      uint64 // Arming order, breaks deadline ties
	action   func()
}

// NewScheduler creates a scheduler measuring delays on clock.
// A nil clock uses the system clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Schedule arms action to run exactly once, delay after now.
// Safe to call from any goroutine, including from inside a running action.
func (s *Scheduler) Schedule(delay time.Duration, action func()) {
	if action == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	heap.Push(&s.pending, &task{
		deadline: s.clock.Now().Add(delay),
		seq:      s.seq,
		action:   action,
	})
}

// RunDue runs every action whose deadline has passed, earliest first, and returns how many ran.
// Actions armed by a running action are picked up in the same call only if already due.
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	ran := 0

	for {
		s.mu.Lock()
		if len(s.pending) == 0 || s.pending[0].deadline.After(now) {
			s.mu.Unlock()
			return ran
		}
		t := heap.Pop(&s.pending).(*task)
		s.mu.Unlock()

		// Run outside the lock so the action can arm new effects.
		t.action()
		ran++
	}
}

// Pending returns the number of armed actions that have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// taskQueue is a min-heap ordered by deadline, then arming order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*task))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
