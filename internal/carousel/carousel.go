// Package carousel implements the testimonial browser: a position over a
// fixed, ordered sequence that wraps at both ends and can jump to a random
// entry.
package carousel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"tourdeck/internal/observe"
)

// ErrEmptySequence is returned by every navigation on a carousel with no items.
var ErrEmptySequence = errors.New("carousel: empty sequence")

// Op names a transition.
type Op string

const (
	OpPrevious Op = "previous"
	OpNext     Op = "next"
	OpRandom   Op = "random"
)

// Event is delivered to subscribers after a successful transition.
type Event struct {
	Op   Op
	From int
	To   int
}

// Source supplies the random draws used by Random.
// IntN must return a value in [0, n).
type Source interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Option configures a Carousel.
type Option func(*options)

type options struct {
	source Source
}

// WithSource replaces the default math/rand/v2 source.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// Carousel tracks which item of a fixed sequence is current.
// Not safe for concurrent use.
type Carousel[T any] struct {
	items     []T
	index     int
	source    Source
	observers observe.Set[Event]
}

// New returns a carousel positioned on the first item. items is copied.
func New[T any](items []T, opts ...Option) *Carousel[T] {
	o := options{source: defaultSource{}}
	for _, opt := range opts {
		opt(&o)
	}
	own := make([]T, len(items))
	copy(own, items)
	return &Carousel[T]{items: own, source: o.source}
}

// Len returns the fixed number of items.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Index returns the current position.
func (c *Carousel[T]) Index() int { return c.index }

// Current returns the item at the current position.
func (c *Carousel[T]) Current() (T, error) {
	var zero T
	if len(c.items) == 0 {
		return zero, ErrEmptySequence
	}
	return c.items[c.index], nil
}

// Previous moves one step back, wrapping from the first item to the last.
func (c *Carousel[T]) Previous() error {
	if len(c.items) == 0 {
		return fmt.Errorf("%s: %w", OpPrevious, ErrEmptySequence)
	}
	if c.index-1 < 0 {
		c.move(OpPrevious, len(c.items)-1)
	} else {
		c.move(OpPrevious, c.index-1)
	}
	return nil
}

// Next moves one step forward, wrapping from the last item to the first.
func (c *Carousel[T]) Next() error {
	if len(c.items) == 0 {
		return fmt.Errorf("%s: %w", OpNext, ErrEmptySequence)
	}
	if c.index+1 == len(c.items) {
		c.move(OpNext, 0)
	} else {
		c.move(OpNext, c.index+1)
	}
	return nil
}

// Random jumps to a uniformly chosen position. The result may equal the
// current position.
func (c *Carousel[T]) Random() error {
	n := len(c.items)
	if n == 0 {
		return fmt.Errorf("%s: %w", OpRandom, ErrEmptySequence)
	}
	i := c.source.IntN(n)
	if i < 0 || i >= n {
		return fmt.Errorf("%s: source returned %d outside [0,%d)", OpRandom, i, n)
	}
	c.move(OpRandom, i)
	return nil
}

// Subscribe registers fn to run after every successful transition.
func (c *Carousel[T]) Subscribe(fn func(Event)) (cancel func()) {
	return c.observers.Add(fn)
}

func (c *Carousel[T]) move(op Op, to int) {
	from := c.index
	c.index = to
	c.observers.Notify(Event{Op: op, From: from, To: to})
}
