package viewstate

import (
	"context"
	"sync"
)

// State describes where a Resource currently is in its fetch lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateReady
)

// Resource binds a loader function to a tri-state view model: pages render a
// skeleton while loading, the error message on failure and the data when
// ready. Overlapping fetches follow last-started-wins: a fetch whose result
// arrives after a newer fetch began is discarded, the server stays the sole
// arbiter of final state.
type Resource[T any] struct {
	mu     sync.Mutex
	loader func(ctx context.Context) (T, error)
	state  State
	value  T
	err    error
	gen    int
	subs   map[int]func()
	next   int
}

func NewResource[T any](loader func(ctx context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{loader: loader, subs: make(map[int]func())}
}

// Fetch runs the loader and publishes Loading followed by exactly one of
// Error or Ready. It blocks until the loader returns; callers wanting
// concurrency run it on their own goroutine.
func (r *Resource[T]) Fetch(ctx context.Context) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.state = StateLoading
	r.mu.Unlock()
	r.notify()

	value, err := r.loader(ctx)

	r.mu.Lock()
	if gen != r.gen {
		// A newer fetch started while this one was in flight.
		r.mu.Unlock()
		return
	}
	if err != nil {
		r.state = StateError
		r.err = err
	} else {
		r.state = StateReady
		r.value = value
		r.err = nil
	}
	r.mu.Unlock()
	r.notify()
}

func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Value returns the last fetched data and whether it is valid.
func (r *Resource[T]) Value() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.state == StateReady
}

func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (r *Resource[T]) Subscribe(fn func()) func() {
	r.mu.Lock()
	id := r.next
	r.next++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Resource[T]) notify() {
	r.mu.Lock()
	subs := make([]func(), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
