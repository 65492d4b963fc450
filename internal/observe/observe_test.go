package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_NotifyOrder(t *testing.T) {
	var s Set[int]
	var got []string
	s.Add(func(v int) { got = append(got, "a") })
	s.Add(func(v int) { got = append(got, "b") })

	s.Notify(1)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSet_Cancel(t *testing.T) {
	var s Set[string]
	calls := 0
	cancel := s.Add(func(string) { calls++ })
	s.Add(func(string) {})

	s.Notify("x")
	cancel()
	s.Notify("y")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.Len())

	// Cancelling twice is harmless.
	cancel()
	assert.Equal(t, 1, s.Len())
}

func TestSet_NilCallback(t *testing.T) {
	var s Set[int]
	cancel := s.Add(nil)
	cancel()
	assert.Equal(t, 0, s.Len())
	assert.NotPanics(t, func() { s.Notify(3) })
}
