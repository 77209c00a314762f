package testutil

import "testing"

func TestStartServerLifecycle(t *testing.T) {
	srv := StartServer(t)
	if err := srv.Run("has-session", "-t", TestSessionName); err != nil {
		t.Skipf("skipping: has-session failed: %v", err)
	}
	if id := srv.PaneID(t, TestSessionName); id[0] != '%' {
		t.Fatalf("expected a pane id, got %q", id)
	}
}

func TestFakeHostRecordsCalls(t *testing.T) {
	h := &FakeHost{}
	_ = h.SplitPane(true)
	_ = h.SelectLayout("tiled")
	_ = h.SwitchSession("ops")
	want := []string{"split-pane horizontal", "select-layout tiled", "switch-session ops"}
	if len(h.Calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, h.Calls)
	}
	for i := range want {
		if h.Calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, h.Calls[i], want[i])
		}
	}
	if !h.Called("select-layout tiled") || h.Called("kill-pane") {
		t.Fatalf("Called reported the wrong membership")
	}
	h.Reset()
	if len(h.Calls) != 0 {
		t.Fatalf("Reset should clear calls")
	}
}
