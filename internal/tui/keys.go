package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap maps the gestures of the list screen onto keys. It is shared by
// pointer with the list's help callbacks so help text follows the mode.
type keyMap struct {
	Add            key.Binding
	Tap            key.Binding
	Select         key.Binding
	Delete         key.Binding
	DeleteSelected key.Binding
	Share          key.Binding
	Quit           key.Binding

	selecting bool
}

func newKeyMap() *keyMap {
	return &keyMap{
		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Tap:            key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "bought")),
		Select:         key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select")),
		Delete:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		DeleteSelected: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete selected")),
		Share:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Quit:           key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k *keyMap) setSelecting(on bool) {
	k.selecting = on
	if on {
		k.Tap.SetHelp("space", "select")
		return
	}
	k.Tap.SetHelp("space", "bought")
}

func (k *keyMap) helpKeys() []key.Binding {
	if k.selecting {
		return []key.Binding{k.Tap, k.Select, k.DeleteSelected, k.Share}
	}
	return []key.Binding{k.Add, k.Tap, k.Select, k.Delete, k.Share}
}
