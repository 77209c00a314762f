package action

import "github.com/atomicstack/tmux-quick-actions/internal/logging/events"

// Session scopes dynamic commands to one open menu. Close must be called when
// the menu goes away, however it goes away.
type Session struct {
	registry *Registry
	closed   bool
}

// Open clears leftovers from a previous session, runs the before-open hooks,
// and returns the scope that owns the dynamic commands they registered.
func (r *Registry) Open() *Session {
	r.Initialize()
	r.ClearDynamic()
	for i, hook := range r.hooks {
		r.runHook(i, hook)
	}
	return &Session{registry: r}
}

func (r *Registry) runHook(index int, hook OpenHook) {
	defer func() {
		if rec := recover(); rec != nil {
			events.Registry.HookFailed(index, rec)
		}
	}()
	hook(r)
}

// Active reports whether Close has not yet been called.
func (s *Session) Active() bool {
	return s != nil && !s.closed
}

// Close removes the session's dynamic commands. Calling it twice is harmless.
func (s *Session) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.registry.ClearDynamic()
}
