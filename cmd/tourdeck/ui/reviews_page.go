package ui

import (
	"errors"
	"fmt"
	"strings"

	"tourdeck/internal/carousel"
	"tourdeck/internal/catalog"
	"tourdeck/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const reviewsTitle = "Our Testimonial"

// ReviewsPageModel renders the current testimonial and routes navigation keys
// to the carousel.
type ReviewsPageModel struct {
	carousel *carousel.Carousel[catalog.Review]
	renderer *glamour.TermRenderer
	styles   Styles
	keys     KeyMap
	status   string
	width    int
	height   int
}

// NewReviewsPageModel builds the page over reviews.
func NewReviewsPageModel(reviews []catalog.Review, styles Styles, keys KeyMap, opts ...carousel.Option) ReviewsPageModel {
	c := carousel.New(reviews, opts...)
	log := logging.Get(logging.CategoryCarousel)
	c.Subscribe(func(e carousel.Event) {
		log.Debug("testimonial changed", zap.String("op", string(e.Op)), zap.Int("from", e.From), zap.Int("to", e.To))
	})

	m := ReviewsPageModel{
		carousel: c,
		styles:   styles,
		keys:     keys,
		width:    80,
		height:   20,
	}
	m.renderer = newQuoteRenderer(styles.Theme, m.width)
	return m
}

func newQuoteRenderer(theme Theme, width int) *glamour.TermRenderer {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(width-8, 20)),
	)
	if err != nil {
		logging.Get(logging.CategoryUI).Warn("markdown renderer unavailable", zap.Error(err))
		return nil
	}
	return r
}

// SetSize updates the layout width.
func (m *ReviewsPageModel) SetSize(w, h int) {
	if w != m.width {
		m.renderer = newQuoteRenderer(m.styles.Theme, w)
	}
	m.width = w
	m.height = h
}

// Carousel exposes the underlying controller.
func (m ReviewsPageModel) Carousel() *carousel.Carousel[catalog.Review] { return m.carousel }

// Status returns the last navigation error shown to the user, if any.
func (m ReviewsPageModel) Status() string { return m.status }

// Update handles messages.
func (m ReviewsPageModel) Update(msg tea.Msg) (ReviewsPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var err error
	switch {
	case key.Matches(keyMsg, m.keys.Previous):
		err = m.carousel.Previous()
	case key.Matches(keyMsg, m.keys.Next):
		err = m.carousel.Next()
	case key.Matches(keyMsg, m.keys.Surprise):
		err = m.carousel.Random()
	default:
		return m, nil
	}

	m.status = ""
	if err != nil {
		m.status = statusFor(err)
		logging.Get(logging.CategoryCarousel).Warn("navigation refused", zap.Error(err))
	}
	return m, nil
}

func statusFor(err error) string {
	if errors.Is(err, carousel.ErrEmptySequence) {
		return "No testimonials to show."
	}
	return err.Error()
}

// View renders the page.
func (m ReviewsPageModel) View() string {
	title := m.styles.Title.Render(reviewsTitle)

	review, err := m.carousel.Current()
	if err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.Muted.Render(statusFor(err)))
	}

	inner := max(m.width-m.styles.Card.GetHorizontalFrameSize(), 10)
	parts := []string{
		m.styles.Bold.Render(review.Name),
		m.styles.Muted.Render(review.Job),
	}
	if review.Image != "" {
		parts = append(parts, m.styles.Muted.Render(review.Image))
	}
	parts = append(parts, "", m.renderQuote(review.Text))
	card := m.styles.Card.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	position := m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.carousel.Index()+1, m.carousel.Len()))
	controls := m.styles.Muted.Render("‹ previous    next ›    [s] Surprise Me")

	out := []string{title, card, position + "  " + controls}
	if m.status != "" {
		out = append(out, m.styles.Status.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m ReviewsPageModel) renderQuote(text string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render("> " + text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return m.styles.Quote.Render("❝ ") + m.styles.Body.Render(text) + m.styles.Quote.Render(" ❞")
}
