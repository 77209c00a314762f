package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/backend"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

// A 61x33 screen leaves a 61x31 canvas below the header: the centre is
// screen cell (30, 16) and the top button is reached at (30, 6).
const (
	screenWidth  = 61
	screenHeight = 33
	topX, topY   = 30, 6
	centreY      = 16
)

type recorder struct {
	calls []string
}

func (r *recorder) action(path string) action.Func {
	return func() error {
		r.calls = append(r.calls, path)
		return nil
	}
}

func newTestModel(t *testing.T, opts Options, descriptors ...action.Descriptor) (*Harness, *recorder) {
	t.Helper()
	rec := &recorder{}
	reg := action.NewRegistry(func(r *action.Registry) {
		for _, d := range descriptors {
			if d.Action == nil {
				d.Action = rec.action(d.Path)
			}
			if err := r.RegisterStatic(d); err != nil {
				t.Fatalf("register %s: %v", d.Path, err)
			}
		}
	})
	ctrl := menu.New(reg, menu.DefaultOptions())
	ctrl.Open("")
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width, opts.Height = screenWidth, screenHeight
	}
	return NewHarness(NewModel(ctrl, opts)), rec
}

func basicDescriptors() []action.Descriptor {
	return []action.Descriptor{
		{Path: "Alpha", Description: "first letter"},
		{Path: "Beta"},
		{Path: "Gamma"},
		{Path: "Folder/Inner"},
	}
}

func TestViewDrawsButtons(t *testing.T) {
	h, _ := newTestModel(t, Options{}, basicDescriptors()...)
	view := h.View()
	for _, want := range []string{"Root", "Alpha", "Beta", "Folder ›", "Gamma", "+"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Back") || strings.Contains(view, "Next") {
		t.Fatalf("unavailable inner sectors should be hidden:\n%s", view)
	}
	if lines := strings.Split(view, "\n"); len(lines) != screenHeight {
		t.Fatalf("expected %d lines, got %d", screenHeight, len(lines))
	}
}

func TestMouseClickRunsActionAndQuits(t *testing.T) {
	h, rec := newTestModel(t, Options{}, basicDescriptors()...)
	h.Move(topX, topY)
	if !strings.Contains(h.View(), "first letter") {
		t.Fatalf("expected description of highlighted action in view:\n%s", h.View())
	}
	h.Click(topX, topY, tea.MouseButtonLeft)

	if !h.Quit() {
		t.Fatalf("expected program to quit")
	}
	if res := h.Model().Result(); !res.Executed() || res.Path != "Alpha" {
		t.Fatalf("unexpected result %#v", res)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "Alpha" {
		t.Fatalf("expected Alpha to run once, got %v", rec.calls)
	}
}

func TestRightClickCancels(t *testing.T) {
	h, rec := newTestModel(t, Options{}, basicDescriptors()...)
	h.Click(topX, topY, tea.MouseButtonRight)
	if !h.Quit() {
		t.Fatalf("expected program to quit")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("cancel must not run anything, got %v", rec.calls)
	}
	if h.Model().Result().Executed() {
		t.Fatalf("cancel reported an execution")
	}
}

func TestClickOnFolderDescends(t *testing.T) {
	h, _ := newTestModel(t, Options{}, basicDescriptors()...)
	// Folder is the bottom button
	h.Click(topX, 2*centreY-topY, tea.MouseButtonLeft)
	if h.Quit() {
		t.Fatalf("navigation must keep the menu open")
	}
	view := h.View()
	if !strings.Contains(view, "Folder") || !strings.Contains(view, "Inner") {
		t.Fatalf("expected folder page, got:\n%s", view)
	}
	if !strings.Contains(view, "Back") {
		t.Fatalf("expected Back button and sector:\n%s", view)
	}
}

func TestPointerOnHeaderIsIgnored(t *testing.T) {
	h, rec := newTestModel(t, Options{}, basicDescriptors()...)
	h.Click(topX, 0, tea.MouseButtonLeft)
	if h.Quit() || len(rec.calls) != 0 {
		t.Fatalf("click on header should do nothing")
	}
}

func TestReleaseKeyRunsHighlighted(t *testing.T) {
	h, rec := newTestModel(t, Options{}, basicDescriptors()...)
	h.Key("right")
	h.Key("right")
	h.Key("enter")
	if !h.Quit() {
		t.Fatalf("expected release to close the menu")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "Beta" {
		t.Fatalf("expected Beta, got %v", rec.calls)
	}
}

func TestCustomReleaseKey(t *testing.T) {
	h, rec := newTestModel(t, Options{ReleaseKey: "x"}, basicDescriptors()...)
	h.Key("right")
	h.Key("enter")
	if h.Quit() {
		t.Fatalf("enter is not the release key here")
	}
	h.Key("x")
	if !h.Quit() || len(rec.calls) != 1 {
		t.Fatalf("expected x to release, calls %v", rec.calls)
	}
}

func TestReleaseWithoutHighlightOnlyCloses(t *testing.T) {
	h, rec := newTestModel(t, Options{}, basicDescriptors()...)
	h.Key("enter")
	if !h.Quit() {
		t.Fatalf("expected release to close the menu")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("nothing was highlighted, got %v", rec.calls)
	}
}

func TestEscapeCancels(t *testing.T) {
	h, _ := newTestModel(t, Options{}, basicDescriptors()...)
	h.Key("esc")
	if !h.Quit() {
		t.Fatalf("expected esc to close the menu")
	}
}

func TestFailedActionShowsError(t *testing.T) {
	h, _ := newTestModel(t, Options{},
		action.Descriptor{Path: "Broken", Action: func() error { return errors.New("no such pane") }},
	)
	h.Key("right")
	h.Key("space")
	if h.Quit() {
		t.Fatalf("a failed action must keep the menu open")
	}
	if !strings.Contains(h.View(), "no such pane") {
		t.Fatalf("expected error in view:\n%s", h.View())
	}
}

func TestSearchFlow(t *testing.T) {
	h, rec := newTestModel(t, Options{}, basicDescriptors()...)
	h.Key("/")
	for _, r := range "inn" {
		h.Key(string(r))
	}
	view := h.View()
	if !strings.Contains(view, "Search: inn") {
		t.Fatalf("expected search header:\n%s", view)
	}
	if !strings.Contains(view, "Folder/Inner") || strings.Contains(view, "Gamma") {
		t.Fatalf("expected only the matching action:\n%s", view)
	}

	// enter leaves the box, then keys navigate the results: Back, Folder/Inner
	h.Key("enter")
	if h.Quit() {
		t.Fatalf("enter in the search box must not release")
	}
	h.Key("right")
	h.Key("right")
	h.Key("enter")
	if len(rec.calls) != 1 || rec.calls[0] != "Folder/Inner" {
		t.Fatalf("expected Folder/Inner, got %v", rec.calls)
	}
}

func TestSearchEscapeReturnsToRoot(t *testing.T) {
	h, _ := newTestModel(t, Options{}, basicDescriptors()...)
	h.Key("/")
	h.Key("q")
	h.Key("esc")
	if h.Quit() {
		t.Fatalf("esc in search must not close the menu")
	}
	if h.Model().Controller().Searching() {
		t.Fatalf("expected search to end")
	}
	if !strings.Contains(h.View(), "Gamma") {
		t.Fatalf("expected root page again:\n%s", h.View())
	}
}

func TestPagingKeys(t *testing.T) {
	var ds []action.Descriptor
	for _, name := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9"} {
		ds = append(ds, action.Descriptor{Path: name})
	}
	h, _ := newTestModel(t, Options{}, ds...)
	if !strings.Contains(h.View(), "Root  1/2") {
		t.Fatalf("expected page indicator:\n%s", h.View())
	}
	h.Key("tab")
	view := h.View()
	if !strings.Contains(view, "Root  2/2") || !strings.Contains(view, "a9") {
		t.Fatalf("expected second page:\n%s", view)
	}
	h.Key("backspace")
	if !strings.Contains(h.View(), "Root  1/2") {
		t.Fatalf("expected first page after back:\n%s", h.View())
	}
}

func TestBackendSnapshotRefreshesCheckmarks(t *testing.T) {
	var snap tmux.Snapshot
	h, _ := newTestModel(t, Options{OnSnapshot: func(s tmux.Snapshot) { snap = s }},
		action.Descriptor{
			Path: "Zoom",
			Validator: func(s action.StateSink) bool {
				s.SetChecked("Zoom", snap.WindowZoomed)
				return true
			},
		},
	)
	if !strings.Contains(h.View(), checkOff+"Zoom") {
		t.Fatalf("expected unchecked Zoom:\n%s", h.View())
	}
	h.Send(backendEventMsg{event: backend.Event{Snapshot: tmux.Snapshot{WindowZoomed: true}}})
	if !strings.Contains(h.View(), checkOn+"Zoom") {
		t.Fatalf("expected checked Zoom:\n%s", h.View())
	}
}

func TestBackendErrorsShownWhenVerbose(t *testing.T) {
	h, _ := newTestModel(t, Options{Verbose: true}, basicDescriptors()...)
	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("server gone")}})
	if !strings.Contains(h.View(), "tmux: server gone") {
		t.Fatalf("expected backend error:\n%s", h.View())
	}
	h.Send(backendEventMsg{event: backend.Event{}})
	if strings.Contains(h.View(), "server gone") {
		t.Fatalf("expected backend error to clear:\n%s", h.View())
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	h, _ := newTestModel(t, Options{}, basicDescriptors()...)
	h.Send(backendDoneMsg{})
	if h.Model().backend != nil {
		t.Fatalf("expected backend to be detached")
	}
}

func TestFooterShowsHelp(t *testing.T) {
	h, _ := newTestModel(t, Options{ShowFooter: true}, basicDescriptors()...)
	view := h.View()
	if !strings.Contains(view, "run highlighted") || !strings.Contains(view, "next page") {
		t.Fatalf("expected key help in footer:\n%s", view)
	}
	if lines := strings.Split(view, "\n"); len(lines) != screenHeight {
		t.Fatalf("expected %d lines, got %d", screenHeight, len(lines))
	}
}

func TestWindowSizeFollowsTerminalUnlessFixed(t *testing.T) {
	h, _ := newTestModel(t, Options{Height: screenHeight}, basicDescriptors()...)
	h.Send(tea.WindowSizeMsg{Width: 81, Height: 10})
	f := h.Model().Controller().Frame()
	if f.Width != 81 {
		t.Fatalf("expected width to follow the terminal, got %d", f.Width)
	}
	if f.Height != screenHeight-headerLines-statusLines {
		t.Fatalf("expected fixed height, got %d", f.Height)
	}
}

func TestCanvasClipsAndCentresText(t *testing.T) {
	c := newCanvas(10, 2)
	c.text(1, 0, "abcdef", nil)
	c.text(9, 1, "xyz", nil)
	c.set(-1, 0, 'z', nil)
	c.set(0, 5, 'z', nil)
	lines := c.lines()
	if lines[0] != "abcdef" {
		t.Fatalf("expected text shifted onto the grid, got %q", lines[0])
	}
	if lines[1] != "       xyz" {
		t.Fatalf("expected right-aligned text, got %q", lines[1])
	}
}
