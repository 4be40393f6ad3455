// Package viewstate provides the small reactive primitives the client pages
// are built from: a value cell with subscribers, a fetch-backed resource
// with loading/error/ready states, a trailing-edge debouncer and a sort
// toggle holder.
package viewstate

import "sync"

// Signal holds a single value and notifies subscribers when it changes.
// Subscribers run synchronously on the goroutine that called Set.
type Signal[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]func(T)
	next  int
}

func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and notifies all current subscribers.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Subscribe registers fn to run on every Set. The returned function removes
// the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
