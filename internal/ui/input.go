package ui

import (
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.search.Focused() {
		return m.handleSearchKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Release):
		return m.dispatch("release", m.ctrl.Release)
	case key.Matches(keyMsg, m.keys.Select):
		return m.dispatch("select", func() menu.Result { return m.ctrl.Click(menu.PrimaryButton) })
	case key.Matches(keyMsg, m.keys.Next):
		m.ctrl.Rotate(1)
	case key.Matches(keyMsg, m.keys.Prev):
		m.ctrl.Rotate(-1)
	case key.Matches(keyMsg, m.keys.Back):
		m.ctrl.Back()
	case key.Matches(keyMsg, m.keys.NextPage):
		m.ctrl.NextPage()
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.ctrl.PreviousPage()
	case key.Matches(keyMsg, m.keys.Search):
		return m.startSearch()
	case key.Matches(keyMsg, m.keys.Cancel):
		if m.ctrl.Searching() && keyMsg.String() == "esc" {
			m.endSearch()
			return nil
		}
		return m.dispatch("cancel", m.ctrl.Cancel)
	}
	return nil
}

// startSearch focuses the search box. Results stay on screen when the box
// loses focus, so pressing / again refines the same query.
func (m *Model) startSearch() tea.Cmd {
	m.errMsg = ""
	if !m.ctrl.Searching() {
		m.search.SetValue("")
		m.ctrl.Search("")
		events.Search.Start()
	}
	return m.search.Focus()
}

func (m *Model) endSearch() {
	m.search.Blur()
	m.search.SetValue("")
	m.ctrl.EndSearch()
	events.Search.Cancel()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.endSearch()
		return nil
	case tea.KeyCtrlC:
		return m.dispatch("cancel", m.ctrl.Cancel)
	case tea.KeyEnter:
		m.search.Blur()
		return nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.ctrl.Search(value)
	}
	return cmd
}
