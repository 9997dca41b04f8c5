package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the screens use. Screens pick the subset they
// show in their help line.
type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Register  key.Binding
	Guest     key.Binding
	Back      key.Binding
	Logout    key.Binding
	OpenLogin key.Binding
	Dismiss   key.Binding
	Up        key.Binding
	Down      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Register:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "register")),
	Guest:     key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "continue as guest")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to login")),
	Logout:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
	OpenLogin: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "go to login")),
	Dismiss:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "dismiss")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous product")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next product")),
}
