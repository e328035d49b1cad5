// Package interactiontest provides a manually advanced scheduler for tests.
package interactiontest

import (
	"sort"
	"sync"
	"time"

	"github.com/zhouzirui/nexusai/internal/interaction"
)

// Scheduler fires callbacks only when Advance moves its clock past their deadline.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*task
}

type task struct {
	owner   *Scheduler
	seq     int
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// New returns a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

var _ interaction.Scheduler = (*Scheduler)(nil)

// AfterFunc registers fn to run once the virtual clock reaches now+d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) interaction.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &task{owner: s, seq: s.seq, at: s.now + d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (t *task) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the virtual clock forward and runs every due callback in deadline order.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	due := make([]*task, 0, len(s.tasks))
	rest := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.stopped:
		case t.at <= s.now:
			t.fired = true
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending counts callbacks that are neither stopped nor fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}
