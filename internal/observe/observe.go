// Package observe holds the subscriber list shared by the widget controllers.
// Controllers call Notify after every state transition; renderers and loggers
// subscribe instead of reading ambient state.
package observe

// Set is an ordered list of callbacks. The zero value is ready to use.
// Not safe for concurrent use; controllers are driven from a single event loop.
type Set[E any] struct {
	next int
	subs []subscriber[E]
}

type subscriber[E any] struct {
	id int
	fn func(E)
}

// Add registers fn and returns a function that removes it again.
func (s *Set[E]) Add(fn func(E)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.next++
	id := s.next
	s.subs = append(s.subs, subscriber[E]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *Set[E]) remove(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Notify calls every subscriber in registration order.
func (s *Set[E]) Notify(e E) {
	for _, sub := range s.subs {
		sub.fn(e)
	}
}

// Len reports the number of subscribers.
func (s *Set[E]) Len() int {
	return len(s.subs)
}
