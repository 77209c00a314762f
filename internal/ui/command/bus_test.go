package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDispatchQuitsWhenMenuCloses(t *testing.T) {
	bus := New()
	res, cmd := bus.Dispatch("click", func() menu.Result {
		return menu.Result{Close: true, Path: "Pane/Zoom"}
	})
	if !res.Executed() {
		t.Fatalf("expected executed result, got %#v", res)
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestDispatchReportsFailureWithoutQuitting(t *testing.T) {
	boom := errors.New("boom")
	bus := New()
	_, cmd := bus.Dispatch("click", func() menu.Result {
		return menu.Result{Path: "Pane/Kill", Err: boom}
	})
	if cmd == nil {
		t.Fatalf("expected failure command")
	}
	failed, ok := cmd().(Failed)
	if !ok {
		t.Fatalf("expected Failed message")
	}
	if failed.Path != "Pane/Kill" || !errors.Is(failed.Err, boom) {
		t.Fatalf("unexpected failure %#v", failed)
	}
}

func TestDispatchNavigationHasNoCommand(t *testing.T) {
	bus := New()
	called := false
	_, cmd := bus.Dispatch("click", func() menu.Result {
		called = true
		return menu.Result{}
	})
	if !called {
		t.Fatalf("gesture was not run")
	}
	if cmd != nil {
		t.Fatalf("expected no command for navigation")
	}
}
