package command

import (
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Failed reports an action that did not complete while the menu stays open.
type Failed struct {
	Path string
	Err  error
}

// Bus runs menu gestures and turns their outcome into Bubble Tea commands.
// Gestures run synchronously: validators and actions must only ever be
// touched from the Update loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Dispatch performs gesture and reports its result. The returned command
// quits the program when the menu closed, or delivers a Failed message when
// an action failed without closing it.
func (b *Bus) Dispatch(name string, gesture func() menu.Result) (menu.Result, tea.Cmd) {
	events.Command.Queue(name)
	res := gesture()
	if res.Path != "" || res.Close {
		events.Command.Result(res.Path, res.Close, res.Err)
	}
	switch {
	case res.Close:
		return res, tea.Quit
	case res.Err != nil:
		failed := Failed{Path: res.Path, Err: res.Err}
		return res, func() tea.Msg { return failed }
	}
	return res, nil
}
