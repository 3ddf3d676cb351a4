package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	close     key.Binding
	buildInfo key.Binding
	scrollUp  key.Binding
	scrollDn  key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	close:     key.NewBinding(key.WithKeys("q", "enter", "esc")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	scrollUp:  key.NewBinding(key.WithKeys("up", "k")),
	scrollDn:  key.NewBinding(key.WithKeys("down", "j")),
}
