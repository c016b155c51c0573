package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cookbook/models"
)

type detailModel struct {
	recipe models.Recipe
}

func (m detailModel) View(username, status string) string {
	r := m.recipe

	var b strings.Builder
	fmt.Fprintf(&b, "Category:  %s\n", r.Category)
	fmt.Fprintf(&b, "Time:      %s\n", r.FormattedTime())
	fmt.Fprintf(&b, "Author:    %s\n", valueOrDash(r.Author))
	fmt.Fprintf(&b, "Created:   %s\n", r.FormattedDate())
	if r.IsFavorite {
		b.WriteString("Favorite:  ❤️\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Ingredients"))
	b.WriteString("\n")
	b.WriteString(valueOrDash(r.Ingredients))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Instructions"))
	b.WriteString("\n")
	b.WriteString(valueOrDash(r.Instructions))
	b.WriteString("\n")

	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}

	hotKeys := "f: favorite  c: copy ingredients"
	if r.IsAuthoredBy(username) {
		hotKeys += "  d: delete"
	}
	hotKeys += "  esc: back"

	return renderPage(strings.ToUpper(r.Title), b.String(), hotKeys)
}
