// Package session keeps short-lived page sessions in memory and expires the idle ones.
package session

import (
	"sync"
	"time"
)

// Resource is anything a page session owns that must be released when the session ends.
type Resource interface {
	Close()
}

// Option customises a Registry.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the clock used to stamp activity.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

type entry[T Resource] struct {
	value    T
	lastSeen time.Time
}

// Registry maps session ids to live resources. Entries idle for longer than the TTL are
// closed by Sweep.
type Registry[T Resource] struct {
	name  string
	ttl   time.Duration
	clock func() time.Time

	mu    sync.Mutex
	items map[string]*entry[T]
}

// NewRegistry builds an empty registry. A non-positive ttl disables expiry.
func NewRegistry[T Resource](name string, ttl time.Duration, opts ...Option) *Registry[T] {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		name:  name,
		ttl:   ttl,
		clock: o.clock,
		items: make(map[string]*entry[T]),
	}
}

func (r *Registry[T]) Name() string {
	return r.name
}

// Put stores value under id. A previous value under the same id is closed.
func (r *Registry[T]) Put(id string, value T) {
	r.mu.Lock()
	prev, existed := r.items[id]
	r.items[id] = &entry[T]{value: value, lastSeen: r.clock()}
	r.mu.Unlock()

	if existed {
		prev.value.Close()
	}
}

// Get returns the value stored under id and marks it as active.
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	e.lastSeen = r.clock()
	return e.value, true
}

// Close removes the session and releases its resource. It reports whether id was present.
func (r *Registry[T]) Close(id string) bool {
	r.mu.Lock()
	e, ok := r.items[id]
	delete(r.items, id)
	r.mu.Unlock()

	if ok {
		e.value.Close()
	}
	return ok
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep closes every session idle since before now minus the TTL and returns how many it closed.
func (r *Registry[T]) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	var expired []T
	r.mu.Lock()
	for id, e := range r.items {
		if now.Sub(e.lastSeen) > r.ttl {
			expired = append(expired, e.value)
			delete(r.items, id)
		}
	}
	r.mu.Unlock()

	for _, v := range expired {
		v.Close()
	}
	return len(expired)
}

// CloseAll releases every session. Used on shutdown.
func (r *Registry[T]) CloseAll() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*entry[T])
	r.mu.Unlock()

	for _, e := range items {
		e.value.Close()
	}
}
