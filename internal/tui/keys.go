package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	toggle      key.Binding
	submit      key.Binding
	password    key.Binding
	reset       key.Binding
	history     key.Binding
	quit        key.Binding
	newSecret   key.Binding
	burn        key.Binding
	separateKey key.Binding
	activeOnly  key.Binding
	reload      key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left")),
	right:       key.NewBinding(key.WithKeys("right")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	toggle:      key.NewBinding(key.WithKeys(" ")),
	submit:      key.NewBinding(key.WithKeys("ctrl+s")),
	password:    key.NewBinding(key.WithKeys("ctrl+p")),
	reset:       key.NewBinding(key.WithKeys("ctrl+r")),
	history:     key.NewBinding(key.WithKeys("ctrl+l")),
	quit:        key.NewBinding(key.WithKeys("q")),
	newSecret:   key.NewBinding(key.WithKeys("n")),
	burn:        key.NewBinding(key.WithKeys("b")),
	separateKey: key.NewBinding(key.WithKeys("s")),
	activeOnly:  key.NewBinding(key.WithKeys("a")),
	reload:      key.NewBinding(key.WithKeys("r")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
