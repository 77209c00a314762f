package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

const defaultReleaseKey = "enter"

type keyMap struct {
	Release  key.Binding
	Select   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Search   key.Binding
	Cancel   key.Binding
}

func newKeyMap(release string) keyMap {
	release = strings.TrimSpace(release)
	if release == "" {
		release = defaultReleaseKey
	}
	return keyMap{
		Release:  key.NewBinding(key.WithKeys(release), key.WithHelp(release, "run highlighted")),
		Select:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open/run")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "down", "j"), key.WithHelp("→", "next")),
		Prev:     key.NewBinding(key.WithKeys("left", "h", "up", "k"), key.WithHelp("←", "previous")),
		Back:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "back")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "tab"), key.WithHelp("tab", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Release, k.Next, k.Back, k.NextPage, k.Search, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Release, k.Select, k.Next, k.Prev},
		{k.Back, k.NextPage, k.PrevPage, k.Search, k.Cancel},
	}
}
