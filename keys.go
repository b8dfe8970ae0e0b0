package looptab

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings. Hosts may replace individual
// bindings or the whole map through Config.KeyMap.
type KeyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
	}
}

// ShortHelp implements the bubbles help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage}
}

// FullHelp implements the bubbles help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevPage, k.NextPage}}
}

func (k KeyMap) isZero() bool {
	return len(k.NextPage.Keys()) == 0 && len(k.PrevPage.Keys()) == 0
}
