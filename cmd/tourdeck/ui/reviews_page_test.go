package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"tourdeck/internal/carousel"
	"tourdeck/internal/catalog"
)

func testReviews() []catalog.Review {
	return []catalog.Review{
		{Name: "Andrew", Job: "Engineer", Text: "great"},
		{Name: "Priya", Job: "Designer", Text: "lovely"},
		{Name: "Rohit", Job: "Intern", Text: "cheap"},
	}
}

type stubSource struct{ v int }

func (s stubSource) IntN(int) int { return s.v }

func TestReviewsPage_Navigation(t *testing.T) {
	m := NewReviewsPageModel(testReviews(), NewStyles(LightTheme()), DefaultKeyMap())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.Carousel().Index())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Carousel().Index())

	m, _ = m.Update(runeKey('l'))
	assert.Equal(t, 1, m.Carousel().Index())

	m, _ = m.Update(runeKey('h'))
	assert.Equal(t, 0, m.Carousel().Index())
}

func TestReviewsPage_Surprise(t *testing.T) {
	m := NewReviewsPageModel(testReviews(), NewStyles(LightTheme()), DefaultKeyMap(),
		carousel.WithSource(stubSource{v: 2}))

	m, _ = m.Update(runeKey('s'))
	assert.Equal(t, 2, m.Carousel().Index())
}

func TestReviewsPage_View(t *testing.T) {
	m := NewReviewsPageModel(testReviews(), NewStyles(LightTheme()), DefaultKeyMap())
	m.SetSize(100, 30)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	view := m.View()
	assert.Contains(t, view, "Our Testimonial")
	assert.Contains(t, view, "Priya")
	assert.Contains(t, view, "Designer")
	assert.Contains(t, view, "2/3")
}

func TestReviewsPage_Empty(t *testing.T) {
	m := NewReviewsPageModel(nil, NewStyles(LightTheme()), DefaultKeyMap())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "No testimonials to show.", m.Status())
	assert.Equal(t, 0, m.Carousel().Index())
	assert.Contains(t, m.View(), "No testimonials to show.")
}

func TestReviewsPage_IgnoresOtherKeys(t *testing.T) {
	m := NewReviewsPageModel(testReviews(), NewStyles(LightTheme()), DefaultKeyMap())
	m, _ = m.Update(runeKey('x'))
	assert.Equal(t, 0, m.Carousel().Index())
	assert.Empty(t, m.Status())
}
