package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdeck/internal/catalog"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testTours() []catalog.Tour {
	return []catalog.Tour{
		{ID: "1", Name: "Agra", Price: 45000, Info: strings.Repeat("a", 250)},
		{ID: "2", Name: "Jaipur", Price: 51000, Info: "short"},
		{ID: "3", Name: "Goa", Price: 29500, Info: "beach"},
	}
}

func newToursPage() ToursPageModel {
	return NewToursPageModel(testTours(), 200, "....", NewStyles(LightTheme()), DefaultKeyMap())
}

func TestToursPage_CursorMovement(t *testing.T) {
	m := newToursPage()
	assert.Equal(t, 0, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(runeKey('j'))
	assert.Equal(t, 2, m.Cursor())

	// Clamped at the bottom
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Cursor())
}

func TestToursPage_ToggleReadMore(t *testing.T) {
	m := newToursPage()

	assert.False(t, m.ReadMore("1").Expanded())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.ReadMore("1").Expanded())
	assert.False(t, m.ReadMore("2").Expanded(), "other cards keep their own state")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.ReadMore("1").Expanded())
}

func TestToursPage_RemoveSelected(t *testing.T) {
	m := newToursPage()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m, _ = m.Update(runeKey('x'))

	items := m.List().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
	assert.Equal(t, 1, m.Cursor())
}

func TestToursPage_RemoveLastClampsCursor(t *testing.T) {
	m := newToursPage()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m, _ = m.Update(runeKey('x'))
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, 2, m.List().Len())
}

func TestToursPage_EmptyAndRefresh(t *testing.T) {
	m := newToursPage()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 3; i++ {
		m, _ = m.Update(runeKey('x'))
	}
	assert.True(t, m.List().Empty())
	assert.Contains(t, m.View(), "No Tours Left")

	// Removing on an empty page does nothing.
	m, _ = m.Update(runeKey('x'))
	assert.True(t, m.List().Empty())

	m, _ = m.Update(runeKey('r'))
	assert.Equal(t, 3, m.List().Len())
	assert.Equal(t, 0, m.Cursor())
	assert.False(t, m.ReadMore("1").Expanded(), "refreshed cards start collapsed")
}

func TestToursPage_RefreshIgnoredWhileNotEmpty(t *testing.T) {
	m := newToursPage()
	m, _ = m.Update(runeKey('x'))
	m, _ = m.Update(runeKey('r'))
	assert.Equal(t, 2, m.List().Len())
}

func TestToursPage_View(t *testing.T) {
	m := newToursPage()
	m.SetSize(120, 60)

	view := m.View()
	assert.Contains(t, view, "Plan With Love")
	assert.Contains(t, view, "Agra")
	assert.Contains(t, view, "₹ 45,000")
	assert.Contains(t, view, "read more")
	assert.Contains(t, view, "Not Interested")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹ 0", FormatPrice(0))
	assert.Equal(t, "₹ 999", FormatPrice(999))
	assert.Equal(t, "₹ 1,234,567", FormatPrice(1234567))
}
