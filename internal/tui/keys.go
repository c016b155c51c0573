package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	register  key.Binding
	logout    key.Binding
	newRecipe key.Binding
	stats     key.Binding
	demo      key.Binding
	save      key.Binding
	favorite  key.Binding
	copy      key.Binding
	delete    key.Binding
	yes       key.Binding
	no        key.Binding
}

// The list screen keeps the search box focused, so its hotkeys are control
// combinations.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	newRecipe: key.NewBinding(key.WithKeys("ctrl+n")),
	stats:     key.NewBinding(key.WithKeys("ctrl+t")),
	demo:      key.NewBinding(key.WithKeys("ctrl+d")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	copy:      key.NewBinding(key.WithKeys("c")),
	delete:    key.NewBinding(key.WithKeys("d")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
