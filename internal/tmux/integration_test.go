package tmux

import (
	"testing"
	"time"

	testutil "github.com/atomicstack/tmux-quick-actions/internal/testutil"
)

func TestPaneActionsIntegration(t *testing.T) {
	srv := testutil.StartServer(t)
	socket := srv.Socket
	Shutdown()
	t.Cleanup(Shutdown)

	pane := srv.PaneID(t, testutil.TestSessionName)

	snap, err := FetchSnapshot(socket, pane)
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}
	if snap.Session != testutil.TestSessionName {
		t.Fatalf("expected session %q, got %q", testutil.TestSessionName, snap.Session)
	}
	if len(snap.Panes) != 1 {
		t.Fatalf("expected a single pane, got %#v", snap.Panes)
	}

	if err := SplitPane(socket, pane, true); err != nil {
		t.Fatalf("SplitPane failed: %v", err)
	}
	snap = waitForSnapshot(t, socket, pane, func(s Snapshot) bool { return len(s.Panes) == 2 })

	if err := ToggleZoom(socket, pane); err != nil {
		t.Fatalf("ToggleZoom failed: %v", err)
	}
	waitForSnapshot(t, socket, pane, func(s Snapshot) bool { return s.WindowZoomed })

	if err := SetSynchronize(socket, pane, true); err != nil {
		t.Fatalf("SetSynchronize failed: %v", err)
	}
	waitForSnapshot(t, socket, pane, func(s Snapshot) bool { return s.Synchronized })

	var other string
	for _, p := range snap.Panes {
		if p.ID != pane {
			other = p.ID
		}
	}
	if err := KillPane(socket, other); err != nil {
		t.Fatalf("KillPane failed: %v", err)
	}
	waitForSnapshot(t, socket, pane, func(s Snapshot) bool { return len(s.Panes) == 1 })
}

func TestWindowActionsIntegration(t *testing.T) {
	srv := testutil.StartServer(t)
	socket := srv.Socket
	Shutdown()
	t.Cleanup(Shutdown)

	session := testutil.TestSessionName
	pane := srv.PaneID(t, testutil.TestSessionName)
	if err := NewWindow(socket, session); err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	snap := waitForSnapshot(t, socket, pane, func(s Snapshot) bool { return len(s.Windows) == 2 })
	if err := KillWindow(socket, WindowTarget(session, snap.Windows[1].Index)); err != nil {
		t.Fatalf("KillWindow failed: %v", err)
	}
	waitForSnapshot(t, socket, pane, func(s Snapshot) bool { return len(s.Windows) == 1 })
}

func waitForSnapshot(t *testing.T, socket, target string, ok func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	var last Snapshot
	for time.Now().Before(deadline) {
		snap, err := FetchSnapshot(socket, target)
		if err == nil && ok(snap) {
			return snap
		}
		last = snap
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("snapshot never reached the expected state: %#v", last)
	return last
}
