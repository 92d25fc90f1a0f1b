package runtime

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Logout  key.Binding
	Back    key.Binding
	Menu    key.Binding
	UpDown  key.Binding
	Enter   key.Binding
	Reload  key.Binding
	NextFld key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Menu:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "switch screen")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		NextFld: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
	}
}

func (k keyMap) authenticatedHelp() []key.Binding {
	return []key.Binding{k.Menu, k.UpDown, k.Enter, k.Back, k.Logout, k.Quit}
}

func (k keyMap) anonymousHelp() []key.Binding {
	return []key.Binding{k.NextFld, k.Enter, k.Quit}
}
