package ui

import (
	"fmt"
	"strings"

	"tourdeck/internal/catalog"
	"tourdeck/internal/logging"
	"tourdeck/internal/tours"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const toursTitle = "Plan With Love"

// ToursPageModel renders the tour cards and routes keys to the list and
// read-more controllers.
type ToursPageModel struct {
	list     *tours.List
	cards    map[string]*tours.ReadMore
	cursor   int
	limit    int
	marker   string
	viewport viewport.Model
	styles   Styles
	keys     KeyMap
	width    int
	height   int

	// first line of each rendered card, for keeping the cursor in view
	offsets []int
}

// NewToursPageModel builds the page over items. limit and marker configure
// description truncation.
func NewToursPageModel(items []catalog.Tour, limit int, marker string, styles Styles, keys KeyMap) ToursPageModel {
	list := tours.NewList(items)
	log := logging.Get(logging.CategoryTours)
	list.Subscribe(func(e tours.ListEvent) {
		if e.Removed == "" {
			log.Info("tours refreshed", zap.Int("len", e.Len))
			return
		}
		log.Info("tour removed", zap.String("id", e.Removed), zap.Int("count", e.Count), zap.Int("len", e.Len))
	})

	m := ToursPageModel{
		list:     list,
		cards:    make(map[string]*tours.ReadMore),
		limit:    limit,
		marker:   marker,
		viewport: viewport.New(80, 20),
		styles:   styles,
		keys:     keys,
		width:    80,
		height:   20,
	}
	m.UpdateContent()
	return m
}

// SetSize updates the size of the viewport.
func (m *ToursPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-2, 1) // Reserve space for the title
	m.UpdateContent()
}

// List exposes the underlying controller.
func (m ToursPageModel) List() *tours.List { return m.list }

// Cursor returns the index of the selected card.
func (m ToursPageModel) Cursor() int { return m.cursor }

// ReadMore returns the toggle state of the card with id, creating it collapsed.
func (m ToursPageModel) ReadMore(id string) *tours.ReadMore {
	r, ok := m.cards[id]
	if !ok {
		r = tours.NewReadMore(m.limit, m.marker)
		m.cards[id] = r
	}
	return r
}

func (m ToursPageModel) selected() (catalog.Tour, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return catalog.Tour{}, false
	}
	return items[m.cursor], true
}

// Update handles messages.
func (m ToursPageModel) Update(msg tea.Msg) (ToursPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			r := m.ReadMore(t.ID)
			r.Toggle()
			logging.Get(logging.CategoryTours).Debug("read more toggled",
				zap.String("id", t.ID), zap.Bool("expanded", r.Expanded()))
		}
	case key.Matches(keyMsg, m.keys.Remove):
		if t, ok := m.selected(); ok {
			m.list.Remove(t.ID)
			delete(m.cards, t.ID)
			if m.cursor >= m.list.Len() {
				m.cursor = max(m.list.Len()-1, 0)
			}
		}
	case key.Matches(keyMsg, m.keys.Refresh):
		if m.list.Empty() {
			m.list.Refresh()
			m.cards = make(map[string]*tours.ReadMore)
			m.cursor = 0
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.UpdateContent()
	return m, nil
}

// UpdateContent re-renders the cards into the viewport and scrolls the
// selected card into view.
func (m *ToursPageModel) UpdateContent() {
	if m.list.Empty() {
		m.offsets = nil
		m.viewport.SetContent(m.renderEmpty())
		m.viewport.GotoTop()
		return
	}

	var sb strings.Builder
	items := m.list.Items()
	m.offsets = make([]int, len(items))
	line := 0
	for i, t := range items {
		card := m.renderCard(t, i == m.cursor)
		m.offsets[i] = line
		sb.WriteString(card)
		sb.WriteString("\n")
		line += lipgloss.Height(card)
	}
	m.viewport.SetContent(sb.String())

	top := m.offsets[m.cursor]
	bottom := line
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(max(bottom-m.viewport.Height, top))
	}
}

func (m ToursPageModel) renderCard(t catalog.Tour, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}
	inner := max(m.width-style.GetHorizontalFrameSize(), 10)

	r := m.ReadMore(t.ID)
	heading := fmt.Sprintf("%s  %s",
		m.styles.Price.Render(FormatPrice(t.Price)),
		m.styles.Bold.Render(t.Name))
	desc := m.styles.Body.Width(inner).Render(
		r.DisplayText(t.Info) + " " + m.styles.ReadMore.Render(r.Label()))

	parts := []string{heading}
	if t.Image != "" {
		parts = append(parts, m.styles.Muted.Render(t.Image))
	}
	parts = append(parts, desc, m.styles.Remove.Render("[x] Not Interested"))

	return style.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m ToursPageModel) renderEmpty() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Bold.Render("No Tours Left"),
		m.styles.Muted.Render("press r to refresh"),
	)
}

// FormatPrice renders a price in rupees with thousands separators.
func FormatPrice(price int) string {
	return "₹ " + humanize.Comma(int64(price))
}

// View renders the page.
func (m ToursPageModel) View() string {
	title := m.styles.Title.Render(toursTitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
}
