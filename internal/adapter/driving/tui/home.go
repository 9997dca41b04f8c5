package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ericfisherdev/shopfront/internal/adapter/driving/render"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// homeScreen shows the welcome line, a search box, and the product list.
type homeScreen struct {
	search   textinput.Model
	products []model.Product
	cursor   int
	loadErr  string
}

func newHomeScreen() homeScreen {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "Search products..."
	ti.CharLimit = 64
	return homeScreen{search: ti}
}

// productsMsg carries search results for query.
type productsMsg struct {
	query    string
	products []model.Product
	err      error
}

func (m Model) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		products, err := m.catalog.Search(m.ctx, query)
		return productsMsg{query: query, products: products, err: err}
	}
}

func (m Model) updateHome(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productsMsg:
		// Results for an outdated query are dropped.
		if msg.query != m.home.search.Value() {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("load products failed", "error", msg.err)
			m.home.loadErr = "Products are unavailable right now"
			m.home.products = nil
			return m, nil
		}
		m.home.loadErr = ""
		m.home.products = msg.products
		if m.home.cursor >= len(msg.products) {
			m.home.cursor = max(len(msg.products)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Logout):
			return m.fire(model.EventLoggedOut, model.Identity{})
		case key.Matches(msg, keys.Register):
			return m.fire(model.EventOpenRegister, model.Identity{})
		case key.Matches(msg, keys.OpenLogin):
			return m.fire(model.EventOpenLogin, model.Identity{})
		case key.Matches(msg, keys.Up):
			if m.home.cursor > 0 {
				m.home.cursor--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.home.cursor < len(m.home.products)-1 {
				m.home.cursor++
			}
			return m, nil
		}
	}

	before := m.home.search.Value()
	var cmd tea.Cmd
	m.home.search, cmd = m.home.search.Update(msg)
	if after := m.home.search.Value(); after != before {
		m.home.cursor = 0
		return m, tea.Batch(cmd, m.searchCmd(after))
	}
	return m, cmd
}

func (m Model) viewHome() string {
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("Online Store"),
		"   ",
		labelStyle.Render("Welcome, "+m.session.Identity().Name),
	)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.home.search.View())
	b.WriteString("\n\n")

	switch {
	case m.home.loadErr != "":
		b.WriteString(errorStyle.Render(m.home.loadErr))
		b.WriteString("\n")
	case len(m.home.products) == 0:
		b.WriteString(labelStyle.Render("No products found."))
		b.WriteString("\n")
	default:
		for i, p := range m.home.products {
			style := cardStyle
			if i == m.home.cursor {
				style = selectedCardStyle
			}
			card := fmt.Sprintf("%s\n%s", p.Name, priceStyle.Render(render.FormatPrice(p.Price)))
			if i == m.home.cursor {
				if desc := render.PlainText(p.Description); desc != "" {
					card += "\n" + labelStyle.Render(desc)
				}
			}
			b.WriteString(style.Render(card))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{
		keys.Up, keys.Down, keys.Logout, keys.Register, keys.OpenLogin, keys.Quit,
	}))
	return b.String()
}
