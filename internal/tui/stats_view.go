package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cookbook/models"
)

func renderStats(stats models.Stats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total recipes:  %d\n", stats.Total)
	fmt.Fprintf(&b, "My recipes:     %d\n", stats.Mine)
	fmt.Fprintf(&b, "Favorites:      %d\n", stats.Favorites)

	if len(stats.ByCategory) > 0 {
		b.WriteString("\nBy category:\n")
		for _, c := range stats.ByCategory {
			fmt.Fprintf(&b, "  %-14s %d\n", c.Category, c.Count)
		}
	}

	b.WriteString("\nenter / esc close")
	return overlayBoxStyle.Render(b.String())
}
