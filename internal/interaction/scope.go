package interaction

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned when work is scheduled on a scope that has been released.
var ErrClosed = errors.New("interaction scope closed")

// Scope owns the delayed tasks of one view lifetime (a request or a page session).
// Closing it stops every pending timer, and no callback starts after Close returns.
type Scope struct {
	sched  Scheduler
	ctx    context.Context
	cancel context.CancelFunc
	detach func() bool

	mu      sync.Mutex
	closed  bool
	seq     uint64
	timers  map[uint64]Timer
	running sync.WaitGroup
}

// NewScope creates a scope that is also released when parent is done.
func NewScope(parent context.Context, sched Scheduler) *Scope {
	if sched == nil {
		sched = SystemScheduler{}
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	s := &Scope{
		sched:  sched,
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[uint64]Timer),
	}
	s.detach = context.AfterFunc(parent, s.Close)
	return s
}

// After schedules fn to run once after d. It reports false when the scope is closed.
// fn must not close its own scope.
func (s *Scope) After(d time.Duration, fn func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}

	s.seq++
	id := s.seq
	s.timers[id] = s.sched.AfterFunc(d, func() { s.fire(id, fn) })
	return true
}

func (s *Scope) fire(id uint64, fn func(ctx context.Context)) {
	s.mu.Lock()
	if _, ok := s.timers[id]; !ok || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	fn(s.ctx)
}

// Pending returns the number of scheduled callbacks that have not fired yet.
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Closed reports whether the scope has been released.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Done is closed once the scope is released.
func (s *Scope) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Close stops all pending timers and waits for callbacks already running.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.detach()
	s.cancel()
	s.running.Wait()
}
