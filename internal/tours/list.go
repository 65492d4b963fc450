package tours

import (
	"tourdeck/internal/catalog"
	"tourdeck/internal/observe"
)

// ListEvent is delivered after a removal or refresh changes the list.
type ListEvent struct {
	Removed string // id passed to Remove; empty for Refresh
	Count   int    // entries removed
	Len     int    // length after the change
}

// List is the ordered set of tours still on screen.
// Not safe for concurrent use.
type List struct {
	items     []catalog.Tour
	original  []catalog.Tour
	observers observe.Set[ListEvent]
}

// NewList copies items as both the working and the refresh set.
func NewList(items []catalog.Tour) *List {
	return &List{
		items:    clone(items),
		original: clone(items),
	}
}

// Remove drops every tour with the given id, keeping the rest in order, and
// returns how many were dropped. Unknown ids leave the list untouched.
func (l *List) Remove(id string) int {
	kept := make([]catalog.Tour, 0, len(l.items))
	for _, t := range l.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(l.items) - len(kept)
	if removed == 0 {
		return 0
	}
	l.items = kept
	l.observers.Notify(ListEvent{Removed: id, Count: removed, Len: len(kept)})
	return removed
}

// Refresh restores the list it was constructed with.
func (l *List) Refresh() {
	l.items = clone(l.original)
	l.observers.Notify(ListEvent{Len: len(l.items)})
}

// Items returns a snapshot of the current list.
func (l *List) Items() []catalog.Tour { return clone(l.items) }

// Len returns the number of tours left.
func (l *List) Len() int { return len(l.items) }

// Empty reports whether every tour has been removed.
func (l *List) Empty() bool { return len(l.items) == 0 }

// Subscribe registers fn to run after every change.
func (l *List) Subscribe(fn func(ListEvent)) (cancel func()) {
	return l.observers.Add(fn)
}

func clone(in []catalog.Tour) []catalog.Tour {
	out := make([]catalog.Tour, len(in))
	copy(out, in)
	return out
}
