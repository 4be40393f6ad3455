package viewstate

import "sync"

// SortState tracks the library page's sort controls: one active field and a
// remembered direction per field. Toggling the already-active field flips
// its direction; selecting another field only activates it, keeping the
// direction it had last time.
//
// The controls only hold UI state. They are not wired to reorder the
// underlying collection; actual sorting is a separately scoped follow-up.
type SortState struct {
	mu        sync.Mutex
	active    string
	ascending map[string]bool
}

func NewSortState(initial string) *SortState {
	return &SortState{active: initial, ascending: make(map[string]bool)}
}

func (s *SortState) Toggle(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == field {
		s.ascending[field] = !s.ascending[field]
	}
	s.active = field
}

func (s *SortState) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Ascending reports the direction remembered for field; false (descending)
// until the field is toggled while active.
func (s *SortState) Ascending(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ascending[field]
}
