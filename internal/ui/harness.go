package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
// Commands that block, such as waiting for the backend, must not be returned
// while a harness drives the model.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Key sends a key press by name, e.g. "enter", "/" or "a".
func (h *Harness) Key(name string) {
	switch name {
	case "enter":
		h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "backspace":
		h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	case "tab":
		h.Send(tea.KeyMsg{Type: tea.KeyTab})
	case "space":
		h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "left":
		h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		h.Send(tea.KeyMsg{Type: tea.KeyRight})
	default:
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
	}
}

// Move reports pointer motion at a screen cell.
func (h *Harness) Move(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

// Click presses a mouse button at a screen cell.
func (h *Harness) Click(x, y int, button tea.MouseButton) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button})
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
