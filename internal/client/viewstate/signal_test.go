package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_GetSet(t *testing.T) {
	s := NewSignal(1)
	assert.Equal(t, 1, s.Get())

	s.Set(42)
	assert.Equal(t, 42, s.Get())
}

func TestSignal_SubscribersRerun(t *testing.T) {
	s := NewSignal("")

	var seen []string
	unsubscribe := s.Subscribe(func(v string) { seen = append(seen, v) })

	s.Set("a")
	s.Set("b")
	unsubscribe()
	s.Set("c")

	assert.Equal(t, []string{"a", "b"}, seen)
}
