package quickactions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/testutil"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
)

func snapshot(panes, windows int, sessions ...string) tmux.Snapshot {
	snap := tmux.Snapshot{Session: "dev"}
	for i := 0; i < panes; i++ {
		snap.Panes = append(snap.Panes, tmux.Pane{ID: "%" + string(rune('0'+i)), Index: i, Active: i == 0})
	}
	names := []string{"editor", "logs", "shell", "build"}
	for i := 0; i < windows; i++ {
		snap.Windows = append(snap.Windows, tmux.Window{
			ID:      "@" + string(rune('0'+i)),
			Session: "dev",
			Index:   i + 1,
			Name:    names[i%len(names)],
			Active:  i == 0,
		})
	}
	snap.Sessions = append(snap.Sessions, tmux.Session{Name: "dev", Windows: windows, Current: true})
	for _, s := range sessions {
		snap.Sessions = append(snap.Sessions, tmux.Session{Name: s, Windows: 1})
	}
	return snap
}

func setup(t *testing.T, snap tmux.Snapshot) (*action.Registry, *Context, *testutil.FakeHost) {
	t.Helper()
	host := &testutil.FakeHost{}
	ctx := NewContext(host)
	ctx.SetSnapshot(snap)
	reg := action.NewRegistry()
	Install(reg, ctx)
	session := reg.Open()
	t.Cleanup(session.Close)
	return reg, ctx, host
}

func TestSinglePaneHidesMultiPaneCommands(t *testing.T) {
	reg, _, _ := setup(t, snapshot(1, 1))
	enabled := reg.EnabledCommands()

	for _, path := range []string{pathSplitHorizontal, pathSplitVertical, pathNewWindow, pathKillWindow, pathNewSession, pathDetach} {
		assert.Contains(t, enabled, path)
	}
	for _, path := range []string{pathZoom, pathSynchronize, pathKillPane, pathNextWindow, pathPreviousWindow, layoutPath("tiled")} {
		assert.NotContains(t, enabled, path)
	}
}

func TestZoomHidesLayouts(t *testing.T) {
	snap := snapshot(2, 1)
	reg, ctx, _ := setup(t, snap)

	assert.Contains(t, reg.EnabledCommands(), layoutPath("main-vertical"))
	assert.False(t, reg.State(pathZoom).IsChecked())

	snap.WindowZoomed = true
	ctx.SetSnapshot(snap)
	enabled := reg.EnabledCommands()
	for _, layout := range tmux.Layouts {
		assert.NotContains(t, enabled, layoutPath(layout))
		assert.False(t, reg.Visible(layoutPath(layout)))
	}
	assert.Contains(t, enabled, pathZoom)
	assert.True(t, reg.State(pathZoom).IsChecked())
}

func TestLayoutPath(t *testing.T) {
	assert.Equal(t, "Pane/Layout/Even Horizontal", layoutPath("even-horizontal"))
	assert.Equal(t, "Pane/Layout/Tiled", layoutPath("tiled"))
}

func TestPaneActionsReachHost(t *testing.T) {
	reg, _, host := setup(t, snapshot(2, 1))

	require.NoError(t, reg.Execute(pathSplitHorizontal))
	require.NoError(t, reg.Execute(pathSplitVertical))
	require.NoError(t, reg.Execute(layoutPath("even-vertical")))
	require.NoError(t, reg.Execute(pathKillPane))

	assert.Equal(t, []string{
		"split-pane horizontal",
		"split-pane vertical",
		"select-layout even-vertical",
		"kill-pane",
	}, host.Calls)
}

func TestToggleActionsUpdateCachedState(t *testing.T) {
	reg, ctx, host := setup(t, snapshot(2, 1))

	require.NoError(t, reg.Execute(pathSynchronize))
	assert.True(t, host.Called("synchronize true"))
	assert.True(t, ctx.Snapshot().Synchronized)
	reg.RefreshStates()
	assert.True(t, reg.State(pathSynchronize).IsChecked())

	require.NoError(t, reg.Execute(pathSynchronize))
	assert.True(t, host.Called("synchronize false"))
	assert.False(t, ctx.Snapshot().Synchronized)

	require.NoError(t, reg.Execute(pathZoom))
	assert.True(t, ctx.Snapshot().WindowZoomed)
	assert.NotContains(t, reg.EnabledCommands(), layoutPath("tiled"))
}

func TestFailedToggleKeepsCachedState(t *testing.T) {
	reg, ctx, host := setup(t, snapshot(2, 1))
	host.Err = errors.New("boom")

	err := reg.Execute(pathZoom)
	var execErr *action.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, pathZoom, execErr.Path)
	assert.False(t, ctx.Snapshot().WindowZoomed)
}

func TestWindowActionsUseCurrentSession(t *testing.T) {
	reg, _, host := setup(t, snapshot(1, 3))

	require.NoError(t, reg.Execute(pathNewWindow))
	require.NoError(t, reg.Execute(pathNextWindow))
	require.NoError(t, reg.Execute(pathPreviousWindow))
	require.NoError(t, reg.Execute(pathKillWindow))

	assert.Equal(t, []string{
		"new-window dev",
		"next-window dev",
		"previous-window dev",
		"kill-window dev:1",
	}, host.Calls)
}

func TestKillWindowNeedsCurrentWindow(t *testing.T) {
	reg, _, _ := setup(t, tmux.Snapshot{Session: "dev"})
	assert.ErrorIs(t, reg.Execute(pathKillWindow), action.ErrDisabled)
}

func TestWindowSelectCommands(t *testing.T) {
	snap := snapshot(1, 3)
	snap.Windows[1].Name = "a/b"
	reg, ctx, host := setup(t, snap)

	enabled := reg.EnabledCommands()
	assert.Contains(t, enabled, "Window/Select/1 editor")
	assert.Contains(t, enabled, "Window/Select/2 a-b")
	assert.Contains(t, enabled, "Window/Select/3 shell")
	assert.Equal(t, action.KindDynamic, enabled["Window/Select/1 editor"].Kind)

	assert.True(t, reg.State("Window/Select/1 editor").IsChecked())
	assert.True(t, reg.State("Window/Select/3 shell").ShowCheckmark())
	assert.False(t, reg.State("Window/Select/3 shell").IsChecked())

	require.NoError(t, reg.Execute("Window/Select/3 shell"))
	assert.True(t, host.Called("select-window dev:3"))

	snap.Windows[0].Active = false
	snap.Windows[2].Active = true
	ctx.SetSnapshot(snap)
	reg.RefreshStates()
	assert.False(t, reg.State("Window/Select/1 editor").IsChecked())
	assert.True(t, reg.State("Window/Select/3 shell").IsChecked())
}

func TestWindowSelectPathWithoutName(t *testing.T) {
	assert.Equal(t, "Window/Select/4", WindowSelectPath(tmux.Window{Index: 4}))
}

func TestSessionSwitchCommands(t *testing.T) {
	snap := snapshot(1, 1, "work", "play")
	reg, ctx, host := setup(t, snap)

	enabled := reg.EnabledCommands()
	assert.Contains(t, enabled, "Session/Switch/work")
	assert.Contains(t, enabled, "Session/Switch/play")
	assert.NotContains(t, enabled, "Session/Switch/dev")

	require.NoError(t, reg.Execute("Session/Switch/work"))
	assert.True(t, host.Called("switch-session work"))

	snap.Sessions = snap.Sessions[:2]
	ctx.SetSnapshot(snap)
	assert.ErrorIs(t, reg.Execute("Session/Switch/play"), action.ErrDisabled)
}

func TestDynamicCommandsFollowTheSnapshotBetweenOpens(t *testing.T) {
	host := &testutil.FakeHost{}
	ctx := NewContext(host)
	ctx.SetSnapshot(snapshot(1, 1, "work"))
	reg := action.NewRegistry()
	Install(reg, ctx)

	first := reg.Open()
	assert.Contains(t, reg.Paths(), "Session/Switch/work")
	first.Close()

	ctx.SetSnapshot(snapshot(1, 2, "play"))
	second := reg.Open()
	defer second.Close()
	paths := reg.Paths()
	assert.NotContains(t, paths, "Session/Switch/work")
	assert.Contains(t, paths, "Session/Switch/play")
	assert.Contains(t, paths, "Window/Select/2 logs")
}

func TestSessionCommands(t *testing.T) {
	reg, _, host := setup(t, snapshot(1, 1))
	require.NoError(t, reg.Execute(pathNewSession))
	require.NoError(t, reg.Execute(pathDetach))
	assert.Equal(t, []string{"new-session", "detach"}, host.Calls)
}
