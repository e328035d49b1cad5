package interaction

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the phase of a simulated interaction.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

var stateNames = [...]string{"idle", "submitting", "succeeded", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

var (
	// ErrBusy rejects a submit while another one is in flight.
	ErrBusy = errors.New("interaction already submitting")
	// ErrSettled rejects a submit after the machine reached a terminal success.
	ErrSettled = errors.New("interaction already settled")
)

// Result is the terminal outcome of one submission.
type Result struct {
	State    State
	Redirect string
	Err      error
}

// Submission tracks a single delayed transition.
type Submission struct {
	done   chan struct{}
	scope  <-chan struct{}
	result Result
}

func (s *Submission) finish(res Result) {
	s.result = res
	close(s.done)
}

// Done is closed when the submission resolves.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Result returns the outcome. Only valid after Done is closed.
func (s *Submission) Result() Result {
	return s.result
}

// Wait blocks until the submission resolves, ctx ends, or the owning scope is released.
func (s *Submission) Wait(ctx context.Context) (Result, error) {
	select {
	case <-s.done:
		return s.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-s.scope:
		// the callback may have won the race against Close
		select {
		case <-s.done:
			return s.result, nil
		default:
			return Result{}, ErrClosed
		}
	}
}

// Option customises a Machine.
type Option func(*Machine)

// WithOverlap lets new submissions start while earlier ones are still pending.
func WithOverlap() Option {
	return func(m *Machine) { m.overlap = true }
}

// WithRearm returns the machine to Idle after a success instead of staying terminal.
func WithRearm() Option {
	return func(m *Machine) { m.rearm = true }
}

// OnChange registers a callback invoked after every state change.
func OnChange(fn func(State)) Option {
	return func(m *Machine) { m.onChange = fn }
}

// Machine implements Idle → Submitting → Succeeded|Failed on top of a Scope.
type Machine struct {
	scope    *Scope
	overlap  bool
	rearm    bool
	onChange func(State)

	mu      sync.Mutex
	state   State
	pending int
	last    Result
}

// NewMachine returns an idle machine whose timers belong to scope.
func NewMachine(scope *Scope, opts ...Option) *Machine {
	m := &Machine{scope: scope}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current phase.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Last returns the most recent terminal result.
func (m *Machine) Last() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Fail records a synchronous failure and leaves the machine Idle.
func (m *Machine) Fail(err error) Result {
	res := Result{State: Failed, Err: err}
	m.mu.Lock()
	m.last = res
	changed := m.pending == 0 && m.state != Idle
	if m.pending == 0 {
		m.state = Idle
	}
	m.mu.Unlock()

	if changed {
		m.notify(Idle)
	}
	return res
}

// Submit moves the machine to Submitting and runs resolve after delay.
func (m *Machine) Submit(delay time.Duration, resolve func(ctx context.Context) Result) (*Submission, error) {
	m.mu.Lock()
	switch {
	case m.state == Submitting && !m.overlap:
		m.mu.Unlock()
		return nil, ErrBusy
	case m.state == Succeeded:
		m.mu.Unlock()
		return nil, ErrSettled
	}
	prev := m.state
	m.state = Submitting
	m.pending++
	m.mu.Unlock()

	if prev != Submitting {
		m.notify(Submitting)
	}

	sub := &Submission{done: make(chan struct{}), scope: m.scope.Done()}
	scheduled := m.scope.After(delay, func(ctx context.Context) {
		res := resolve(ctx)
		m.settle(res)
		sub.finish(res)
	})
	if !scheduled {
		m.mu.Lock()
		m.pending--
		reverted := m.pending == 0
		if reverted {
			m.state = prev
		}
		m.mu.Unlock()
		if reverted && prev != Submitting {
			m.notify(prev)
		}
		return nil, ErrClosed
	}
	return sub, nil
}

func (m *Machine) settle(res Result) {
	m.mu.Lock()
	m.pending--
	m.last = res
	next := res.State
	if next == Failed || (next == Succeeded && m.rearm) {
		next = Idle
	}
	if m.pending > 0 {
		next = Submitting
	}
	changed := next != m.state
	m.state = next
	m.mu.Unlock()

	if changed {
		m.notify(next)
	}
}

func (m *Machine) notify(state State) {
	if m.onChange != nil {
		m.onChange(state)
	}
}
