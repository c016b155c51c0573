package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-cookbook/internal/query"
	"github.com/MKhiriev/go-cookbook/models"
)

const listTitleWidth = 48

type listModel struct {
	search      textinput.Model
	categories  []models.Category
	categoryIdx int

	all   []models.Recipe
	items []models.Recipe
	idx   int

	loading bool
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search by title, ingredients or category"
	search.CharLimit = 128
	search.Width = 48
	search.Prompt = "🔍 "
	search.Focus()

	return listModel{
		search:     search,
		categories: models.Categories(),
		loading:    true,
	}
}

func (m listModel) category() models.Category {
	return m.categories[m.categoryIdx]
}

// setRecipes replaces the full collection and refreshes the visible rows.
func (m listModel) setRecipes(all []models.Recipe) listModel {
	m.all = all
	m.loading = false
	return m.refresh()
}

// refresh recomputes the visible rows from the full collection, the search
// text and the selected category. The cursor stays in range.
func (m listModel) refresh() listModel {
	m.items = query.Filter(m.all, m.search.Value(), m.category())
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) nextCategory() listModel {
	m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
	return m.refresh()
}

func (m listModel) prevCategory() listModel {
	m.categoryIdx = (m.categoryIdx - 1 + len(m.categories)) % len(m.categories)
	return m.refresh()
}

func (m listModel) current() (models.Recipe, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Recipe{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) View(username, status string) string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString("◀ ")
	b.WriteString(categoryStyle.Render(m.category().String()))
	b.WriteString(" ▶\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No recipes found\n")
	default:
		for i, r := range m.items {
			line := fitText(r.ListLabel(), listTitleWidth)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n%d of %d recipes\n", len(m.items), len(m.all)))
	if status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}

	title := "COOKBOOK: " + username
	hotKeys := "enter: open  ←/→: category  ctrl+n: new  ctrl+t: stats  ctrl+d: demo recipes  ctrl+l: log out"
	return renderPage(title, b.String(), hotKeys)
}
