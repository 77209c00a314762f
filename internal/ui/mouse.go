package ui

import (
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	row := mouse.Y - headerLines
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m.ctrl.Rotate(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.ctrl.Rotate(1)
		return nil
	}
	if row < 0 || row >= m.canvasHeight() {
		return nil
	}
	m.ctrl.PointerMoved(mouse.X, row)
	if mouse.Action != tea.MouseActionPress {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonLeft:
		return m.dispatch("click", func() menu.Result { return m.ctrl.Click(menu.PrimaryButton) })
	case tea.MouseButtonRight:
		return m.dispatch("cancel-click", func() menu.Result { return m.ctrl.Click(menu.SecondaryButton) })
	}
	return nil
}
