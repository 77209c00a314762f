package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	"github.com/atomicstack/tmux-quick-actions/internal/quickactions"
	"github.com/atomicstack/tmux-quick-actions/internal/testutil"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
	"github.com/fatih/color"
)

func listSnapshot() tmux.Snapshot {
	return tmux.Snapshot{
		Session: "dev",
		Sessions: []tmux.Session{
			{Name: "dev", Windows: 2, Current: true},
			{Name: "ops", Windows: 1},
		},
		Windows: []tmux.Window{
			{ID: "@1", Session: "dev", Index: 1, Name: "editor", Active: true},
			{ID: "@2", Session: "dev", Index: 2, Name: "logs"},
		},
		Panes: []tmux.Pane{{ID: "%1", Index: 0, Active: true}},
	}
}

func findLine(t *testing.T, out, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix+" ") {
			return line
		}
	}
	t.Fatalf("no line for %q in:\n%s", prefix, out)
	return ""
}

func TestListPrintsCatalog(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	qctx := quickactions.NewContext(&testutil.FakeHost{})
	qctx.SetSnapshot(listSnapshot())
	reg := NewRegistry(qctx)

	var buf bytes.Buffer
	if err := List(reg, &buf); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "PATH ") {
		t.Fatalf("expected header first, got:\n%s", out)
	}

	zoom := strings.Fields(findLine(t, out, "Pane/Zoom"))
	if zoom[1] != "-10" || zoom[2] != "static" || zoom[3] != "disabled" || zoom[4] != "off" {
		t.Fatalf("unexpected zoom row %v", zoom)
	}
	editor := findLine(t, out, "Window/Select/1 editor")
	if !strings.Contains(editor, "dynamic") || !strings.Contains(editor, " on ") {
		t.Fatalf("unexpected window row %q", editor)
	}
	if !strings.Contains(findLine(t, out, "Session/Switch/ops"), "enabled") {
		t.Fatalf("expected switch to ops to be enabled")
	}

	if _, ok := reg.Lookup("Window/Select/1 editor"); ok {
		t.Fatalf("dynamic commands should be cleared after listing")
	}
}

func TestReport(t *testing.T) {
	failure := &action.ExecutionError{Path: "Pane/Kill", Err: errors.New("boom")}
	if err := report(menu.Result{Close: true, Path: "Pane/Kill", Err: failure}, false); !errors.Is(err, failure) {
		t.Fatalf("expected failure to be returned, got %v", err)
	}
	if err := report(menu.Result{Close: true, Path: "Pane/Zoom"}, true); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := report(menu.Result{Close: true}, false); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
