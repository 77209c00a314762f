package quickactions

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
)

const (
	pathNewWindow      = "Window/New"
	pathNextWindow     = "Window/Next"
	pathPreviousWindow = "Window/Previous"
	pathKillWindow     = "Window/Kill"
	windowSelectPrefix = "Window/Select/"
)

var errNoCurrentWindow = errors.New("no current window")

// WindowModule declares the window commands of the current session.
func WindowModule(c *Context) action.Module {
	several := func(action.StateSink) bool { return len(c.Snapshot().Windows) > 1 }
	return func(r *action.Registry) {
		register(r, action.Descriptor{
			Path:        pathNewWindow,
			Description: "open a window in this session",
			Priority:    windowPriority,
			Action:      func() error { return c.host.NewWindow(c.Snapshot().Session) },
		})
		register(r, action.Descriptor{
			Path:        pathNextWindow,
			Description: "select the next window",
			Priority:    windowPriority,
			Action:      func() error { return c.host.NextWindow(c.Snapshot().Session) },
			Validator:   several,
		})
		register(r, action.Descriptor{
			Path:        pathPreviousWindow,
			Description: "select the previous window",
			Priority:    windowPriority,
			Action:      func() error { return c.host.PreviousWindow(c.Snapshot().Session) },
			Validator:   several,
		})
		register(r, action.Descriptor{
			Path:        pathKillWindow,
			Description: "close the current window",
			Priority:    windowPriority + 5,
			Action: func() error {
				snap := c.Snapshot()
				w, ok := snap.CurrentWindow()
				if !ok {
					return errNoCurrentWindow
				}
				return c.host.KillWindow(tmux.WindowTarget(snap.Session, w.Index))
			},
			Validator: func(action.StateSink) bool {
				_, ok := c.Snapshot().CurrentWindow()
				return ok
			},
		})
	}
}

// WindowSelectPath names the dynamic command that selects w.
func WindowSelectPath(w tmux.Window) string {
	label := strconv.Itoa(w.Index)
	if w.Name != "" {
		label = fmt.Sprintf("%d %s", w.Index, segment(w.Name))
	}
	return windowSelectPrefix + label
}

// WindowSelectHook offers one command per window of the current session. The
// active window carries a checkmark.
func WindowSelectHook(c *Context) action.OpenHook {
	return func(r *action.Registry) {
		snap := c.Snapshot()
		for _, w := range snap.Windows {
			index := w.Index
			path := WindowSelectPath(w)
			target := tmux.WindowTarget(snap.Session, index)
			_ = r.RegisterDynamic(path,
				func() error { return c.host.SelectWindow(target) },
				action.WithDescription("select-window -t "+target),
				action.WithPriority(windowPriority+index),
				action.WithValidator(func(s action.StateSink) bool {
					current, ok := c.Snapshot().CurrentWindow()
					s.SetChecked(path, ok && current.Index == index)
					return true
				}),
			)
		}
	}
}
