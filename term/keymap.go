package term

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mjl-/duitseg"
)

// KeyMap holds the key bindings of a Model.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultKeyMap returns the bindings for variant v: arrows along the direction of the entries,
// with vi keys as alternatives.
func DefaultKeyMap(v duitseg.Variant) KeyMap {
	if _, ok := v.(duitseg.Vertical); ok {
		return KeyMap{
			Prev: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "previous"),
			),
			Next: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "next"),
			),
			First: key.NewBinding(
				key.WithKeys("home", "g"),
				key.WithHelp("home/g", "first"),
			),
			Last: key.NewBinding(
				key.WithKeys("end", "G"),
				key.WithHelp("end/G", "last"),
			),
		}
	}
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.First, k.Last}}
}
