package testutil

import (
	"fmt"
	"strings"
)

// FakeHost records the tmux operations quick actions request. Set Err to make
// every operation fail.
type FakeHost struct {
	Calls []string
	Err   error
}

func (h *FakeHost) record(format string, args ...interface{}) error {
	h.Calls = append(h.Calls, strings.TrimSpace(fmt.Sprintf(format, args...)))
	return h.Err
}

// Called reports whether call was recorded.
func (h *FakeHost) Called(call string) bool {
	for _, c := range h.Calls {
		if c == call {
			return true
		}
	}
	return false
}

// Reset forgets every recorded call.
func (h *FakeHost) Reset() {
	h.Calls = nil
}

func (h *FakeHost) SplitPane(horizontal bool) error {
	if horizontal {
		return h.record("split-pane horizontal")
	}
	return h.record("split-pane vertical")
}

func (h *FakeHost) ToggleZoom() error { return h.record("toggle-zoom") }

func (h *FakeHost) SetSynchronize(on bool) error { return h.record("synchronize %v", on) }

func (h *FakeHost) KillPane() error { return h.record("kill-pane") }

func (h *FakeHost) SelectLayout(layout string) error { return h.record("select-layout %s", layout) }

func (h *FakeHost) NewWindow(session string) error { return h.record("new-window %s", session) }

func (h *FakeHost) NextWindow(session string) error { return h.record("next-window %s", session) }

func (h *FakeHost) PreviousWindow(session string) error {
	return h.record("previous-window %s", session)
}

func (h *FakeHost) KillWindow(target string) error { return h.record("kill-window %s", target) }

func (h *FakeHost) SelectWindow(target string) error { return h.record("select-window %s", target) }

func (h *FakeHost) NewSession() error { return h.record("new-session") }

func (h *FakeHost) Detach() error { return h.record("detach") }

func (h *FakeHost) SwitchSession(name string) error { return h.record("switch-session %s", name) }
