package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the picker's non-editing bindings. Anything it does not match
// falls through to the filter editor.
type keyMap struct {
	cancel   key.Binding
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	next     key.Binding
	prev     key.Binding
	commit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "close")),
		up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
	}
}

// ShortHelp returns the footer bindings.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.next, k.prev, k.commit, k.cancel}
}

// FullHelp returns every binding grouped by concern.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown},
		{k.next, k.prev},
		{k.commit, k.cancel},
	}
}
