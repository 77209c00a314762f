// Package quickactions declares the tmux commands offered by the radial menu.
// Each feature area is an action.Module; per-session commands such as window
// and session switching are registered by before-open hooks.
package quickactions

import (
	"strings"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
)

const (
	panePriority    = -10
	windowPriority  = 0
	sessionPriority = 10
)

// Host performs tmux operations. *tmux.Client satisfies it.
type Host interface {
	SplitPane(horizontal bool) error
	ToggleZoom() error
	SetSynchronize(on bool) error
	KillPane() error
	SelectLayout(layout string) error
	NewWindow(session string) error
	NextWindow(session string) error
	PreviousWindow(session string) error
	KillWindow(target string) error
	SelectWindow(target string) error
	NewSession() error
	Detach() error
	SwitchSession(name string) error
}

var _ Host = (*tmux.Client)(nil)

// Context is shared by every quick action. Validators read the cached
// snapshot only; they never talk to tmux.
type Context struct {
	host     Host
	snapshot tmux.Snapshot
}

// NewContext wraps host with an empty snapshot.
func NewContext(host Host) *Context {
	return &Context{host: host}
}

// Snapshot returns the last known tmux state.
func (c *Context) Snapshot() tmux.Snapshot {
	return c.snapshot
}

// SetSnapshot replaces the cached tmux state.
func (c *Context) SetSnapshot(s tmux.Snapshot) {
	c.snapshot = s
}

// Install registers every module and hook with r.
func Install(r *action.Registry, c *Context) {
	r.AddModule(PaneModule(c))
	r.AddModule(WindowModule(c))
	r.AddModule(SessionModule(c))
	r.OnBeforeOpen(WindowSelectHook(c))
	r.OnBeforeOpen(SessionSwitchHook(c))
}

func register(r *action.Registry, d action.Descriptor) {
	// rejected declarations are already logged by the registry
	_ = r.RegisterStatic(d)
}

// segment makes a tmux name safe to use as one path segment.
func segment(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, action.Separator, "-"))
	if name == "" {
		return "-"
	}
	return name
}
