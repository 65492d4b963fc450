// Package tours implements the tour-card widget state: a read-more toggle per
// card and the list of tours the user has not dismissed.
package tours

import (
	"unicode/utf16"

	"tourdeck/internal/observe"
)

const (
	// TruncateAt is the collapsed description length in UTF-16 code units.
	TruncateAt = 200
	// Ellipsis is appended to every collapsed description.
	Ellipsis = "...."
)

const (
	labelCollapsed = "read more"
	labelExpanded  = "show less"
)

// ReadMore is the expanded/collapsed flag of one card. The zero value is a
// collapsed card using TruncateAt and Ellipsis.
type ReadMore struct {
	expanded  bool
	limit     int
	marker    string
	custom    bool
	observers observe.Set[bool]
}

// NewReadMore returns a collapsed card that truncates to limit code units and
// appends marker. A non-positive limit falls back to TruncateAt.
func NewReadMore(limit int, marker string) *ReadMore {
	if limit <= 0 {
		limit = TruncateAt
	}
	return &ReadMore{limit: limit, marker: marker, custom: true}
}

// Toggle flips between collapsed and expanded.
func (r *ReadMore) Toggle() {
	r.expanded = !r.expanded
	r.observers.Notify(r.expanded)
}

// Expanded reports whether the full text is shown.
func (r *ReadMore) Expanded() bool { return r.expanded }

// Label is the text of the toggle control.
func (r *ReadMore) Label() string {
	if r.expanded {
		return labelExpanded
	}
	return labelCollapsed
}

// Subscribe registers fn to run after each Toggle with the new state.
func (r *ReadMore) Subscribe(fn func(expanded bool)) (cancel func()) {
	return r.observers.Add(fn)
}

// DisplayText returns full when expanded. Collapsed, it returns the leading
// code units of full with the marker appended, whether or not anything was cut.
func (r *ReadMore) DisplayText(full string) string {
	if r.expanded {
		return full
	}
	limit, marker := TruncateAt, Ellipsis
	if r.custom {
		limit, marker = r.limit, r.marker
	}
	return truncateUnits(full, limit) + marker
}

// truncateUnits keeps the first n UTF-16 code units of s. A surrogate pair
// that straddles the cut is dropped whole.
func truncateUnits(s string, n int) string {
	units := 0
	for i, r := range s {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if units+w > n {
			return s[:i]
		}
		units += w
	}
	return s
}
