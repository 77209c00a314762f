package quickactions

import (
	"github.com/atomicstack/tmux-quick-actions/internal/action"
)

const (
	pathNewSession      = "Session/New"
	pathDetach          = "Session/Detach"
	sessionSwitchPrefix = "Session/Switch/"
)

// SessionModule declares the session commands.
func SessionModule(c *Context) action.Module {
	return func(r *action.Registry) {
		register(r, action.Descriptor{
			Path:        pathNewSession,
			Description: "create a session and switch to it",
			Priority:    sessionPriority,
			Action:      func() error { return c.host.NewSession() },
		})
		register(r, action.Descriptor{
			Path:        pathDetach,
			Description: "detach this client",
			Priority:    sessionPriority + 5,
			Action:      func() error { return c.host.Detach() },
		})
	}
}

// SessionSwitchPath names the dynamic command that switches to session.
func SessionSwitchPath(session string) string {
	return sessionSwitchPrefix + segment(session)
}

// SessionSwitchHook offers one command per session other than the current
// one. A session that disappears while the menu is open is disabled.
func SessionSwitchHook(c *Context) action.OpenHook {
	return func(r *action.Registry) {
		for _, sess := range c.Snapshot().OtherSessions() {
			name := sess.Name
			_ = r.RegisterDynamic(SessionSwitchPath(name),
				func() error { return c.host.SwitchSession(name) },
				action.WithDescription("switch-client -t "+name),
				action.WithPriority(sessionPriority),
				action.WithValidator(func(action.StateSink) bool {
					for _, s := range c.Snapshot().Sessions {
						if s.Name == name {
							return true
						}
					}
					return false
				}),
			)
		}
	}
}
