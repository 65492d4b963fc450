package ui

import (
	"tourdeck/internal/carousel"
	"tourdeck/internal/catalog"
	"tourdeck/internal/config"
	"tourdeck/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Page identifies one of the two screens.
type Page int

const (
	PageTours Page = iota
	PageReviews
)

// PageFromName maps config.PageTours/config.PageReviews to a Page.
func PageFromName(name string) Page {
	if name == config.PageReviews {
		return PageReviews
	}
	return PageTours
}

// CatalogMsg carries a reloaded catalog (or the reload error) into Update.
type CatalogMsg catalog.Update

// Options configures a Model.
type Options struct {
	UI        config.UIConfig
	StartPage Page

	// Updates, when set, is polled for catalog reloads.
	Updates <-chan catalog.Update

	// CarouselOptions are forwarded to the testimonial carousel.
	CarouselOptions []carousel.Option
}

// Model is the root bubbletea model.
type Model struct {
	opts    Options
	styles  Styles
	keys    KeyMap
	help    help.Model
	page    Page
	tours   ToursPageModel
	reviews ReviewsPageModel
	status  string
	width   int
	height  int
}

// NewModel builds both pages over c.
func NewModel(c *catalog.Catalog, opts Options) Model {
	styles := NewStyles(ThemeFor(opts.UI.Theme))
	keys := DefaultKeyMap()
	h := help.New()

	m := Model{
		opts:   opts,
		styles: styles,
		keys:   keys,
		help:   h,
		page:   opts.StartPage,
		width:  80,
		height: 24,
	}
	m.load(c)
	return m
}

func (m *Model) load(c *catalog.Catalog) {
	m.tours = NewToursPageModel(c.Tours, m.opts.UI.TruncateAt, m.opts.UI.Ellipsis, m.styles, m.keys)
	m.reviews = NewReviewsPageModel(c.Reviews, m.styles, m.keys, m.opts.CarouselOptions...)
	m.resize()
}

func (m *Model) resize() {
	bodyHeight := max(m.height-4, 1) // tabs + status + help
	m.tours.SetSize(m.width, bodyHeight)
	m.reviews.SetSize(m.width, bodyHeight)
	m.help.Width = m.width
}

// Page returns the active page.
func (m Model) Page() Page { return m.page }

// Tours returns the tours page.
func (m Model) Tours() ToursPageModel { return m.tours }

// Reviews returns the testimonials page.
func (m Model) Reviews() ReviewsPageModel { return m.reviews }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForCatalog(m.opts.Updates)
}

func waitForCatalog(updates <-chan catalog.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return CatalogMsg(u)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case CatalogMsg:
		if msg.Err != nil {
			m.status = "reload failed: " + msg.Err.Error()
		} else {
			m.status = "catalog reloaded"
			m.load(msg.Catalog)
			logging.UI("catalog applied", zap.Int("tours", len(msg.Catalog.Tours)), zap.Int("reviews", len(msg.Catalog.Reviews)))
		}
		return m, waitForCatalog(m.opts.Updates)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			if m.page == PageTours {
				m.page = PageReviews
			} else {
				m.page = PageTours
			}
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.page == PageTours {
		m.tours, cmd = m.tours.Update(msg)
	} else {
		m.reviews, cmd = m.reviews.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var body, helpView string
	if m.page == PageTours {
		body = m.tours.View()
		helpView = m.help.View(toursHelp{m.keys})
	} else {
		body = m.reviews.View()
		helpView = m.help.View(reviewsHelp{m.keys})
	}

	parts := []string{m.renderTabs(), body}
	if m.status != "" {
		parts = append(parts, m.styles.Muted.Render(m.status))
	}
	parts = append(parts, m.styles.Footer.Render(helpView))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTabs() string {
	tab := func(label string, on bool) string {
		if on {
			return m.styles.TabOn.Render(label)
		}
		return m.styles.Tab.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab("Tours", m.page == PageTours),
		tab("Testimonials", m.page == PageReviews),
	)
}
