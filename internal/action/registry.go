package action

import (
	"fmt"
	"sort"

	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
)

// Module registers a feature area's static commands. Modules run once per
// process, or again after ForceInitialize.
type Module func(*Registry)

// OpenHook runs right before a menu session opens so collaborators can
// register context-sensitive dynamic commands.
type OpenHook func(*Registry)

// Registry owns the catalog of quick actions and their derived state.
type Registry struct {
	modules     []Module
	hooks       []OpenHook
	initialized bool
	commands    map[string]*Descriptor
	states      map[string]*State
}

// NewRegistry constructs a registry that discovers static commands from the
// supplied modules on first use.
func NewRegistry(modules ...Module) *Registry {
	return &Registry{
		modules:  append([]Module(nil), modules...),
		commands: make(map[string]*Descriptor),
		states:   make(map[string]*State),
	}
}

// AddModule appends a static module. It takes effect on the next
// initialization.
func (r *Registry) AddModule(module Module) {
	if module == nil {
		return
	}
	r.modules = append(r.modules, module)
}

// OnBeforeOpen subscribes a hook to session opening.
func (r *Registry) OnBeforeOpen(hook OpenHook) {
	if hook == nil {
		return
	}
	r.hooks = append(r.hooks, hook)
}

// Initialize runs the static modules once.
func (r *Registry) Initialize() {
	if r.initialized {
		return
	}
	// set first so modules that query the registry don't recurse
	r.initialized = true
	for _, module := range r.modules {
		module(r)
	}
}

// ForceInitialize drops every static command and reruns the modules.
// Dynamic commands are left alone.
func (r *Registry) ForceInitialize() {
	for path, d := range r.commands {
		if d.Kind == KindStatic {
			delete(r.commands, path)
			delete(r.states, path)
		}
	}
	r.initialized = false
	r.Initialize()
}

// RegisterStatic adds a static command. Malformed declarations are logged
// and rejected; duplicate paths overwrite the earlier declaration.
func (r *Registry) RegisterStatic(d Descriptor) error {
	if err := d.validate(); err != nil {
		events.Registry.Reject(d.Path, err)
		return err
	}
	r.commands[d.Path] = d.normalized(KindStatic)
	events.Registry.Register(d.Path, KindStatic.String(), d.Priority)
	return nil
}

// DynamicOption customises a dynamic registration.
type DynamicOption func(*Descriptor)

// WithDescription sets the description shown for a dynamic command.
func WithDescription(description string) DynamicOption {
	return func(d *Descriptor) { d.Description = description }
}

// WithPriority sets the sort priority of a dynamic command.
func WithPriority(priority int) DynamicOption {
	return func(d *Descriptor) { d.Priority = priority }
}

// WithValidator attaches a validator to a dynamic command.
func WithValidator(v Validator) DynamicOption {
	return func(d *Descriptor) { d.Validator = v }
}

// RegisterDynamic upserts a command whose lifetime is one menu session.
// Paths owned by static commands cannot be replaced.
func (r *Registry) RegisterDynamic(path string, fn Func, opts ...DynamicOption) error {
	d := Descriptor{Path: path, Action: fn}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	if err := d.validate(); err != nil {
		events.Registry.Reject(path, err)
		return err
	}
	if existing, ok := r.commands[path]; ok && existing.Kind == KindStatic {
		err := fmt.Errorf("%w: %q is declared statically", ErrInvalidDescriptor, path)
		events.Registry.Reject(path, err)
		return err
	}
	r.commands[path] = d.normalized(KindDynamic)
	events.Registry.Register(path, KindDynamic.String(), d.Priority)
	return nil
}

// UnregisterDynamic removes a dynamic command. Static commands are never
// removed; the return value reports whether anything was deleted.
func (r *Registry) UnregisterDynamic(path string) bool {
	d, ok := r.commands[path]
	if !ok || d.Kind != KindDynamic {
		return false
	}
	delete(r.commands, path)
	delete(r.states, path)
	return true
}

// ClearDynamic removes every dynamic command and returns how many were removed.
func (r *Registry) ClearDynamic() int {
	removed := 0
	for path, d := range r.commands {
		if d.Kind != KindDynamic {
			continue
		}
		delete(r.commands, path)
		delete(r.states, path)
		removed++
	}
	if removed > 0 {
		events.Registry.ClearDynamic(removed)
	}
	return removed
}

// Lookup returns the descriptor registered at path.
func (r *Registry) Lookup(path string) (*Descriptor, bool) {
	r.Initialize()
	d, ok := r.commands[path]
	return d, ok
}

// All returns every registered command keyed by path.
func (r *Registry) All() map[string]*Descriptor {
	r.Initialize()
	out := make(map[string]*Descriptor, len(r.commands))
	for path, d := range r.commands {
		out[path] = d
	}
	return out
}

// Paths lists registered paths in lexical order.
func (r *Registry) Paths() []string {
	r.Initialize()
	return r.sortedPaths()
}

// Len reports the catalog size.
func (r *Registry) Len() int {
	r.Initialize()
	return len(r.commands)
}

func (r *Registry) sortedPaths() []string {
	paths := make([]string, 0, len(r.commands))
	for path := range r.commands {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// RefreshStates recomputes the state of every command.
func (r *Registry) RefreshStates() {
	r.Initialize()
	r.recompute()
}

// EnabledCommands recomputes all state, then returns the commands that are
// both visible and enabled. Filtering happens only after every validator has
// run, so side effects on other paths are honoured.
func (r *Registry) EnabledCommands() map[string]*Descriptor {
	r.Initialize()
	paths := r.recompute()
	out := make(map[string]*Descriptor, len(paths))
	for _, path := range paths {
		if r.stateFor(path).Actionable() {
			out[path] = r.commands[path]
		}
	}
	events.Registry.Recompute(len(paths), len(out))
	return out
}

// recompute resets every state to its defaults and then runs each validator
// in path order.
func (r *Registry) recompute() []string {
	for _, st := range r.states {
		*st = defaultState()
	}
	paths := r.sortedPaths()
	for _, path := range paths {
		r.stateFor(path)
	}
	for _, path := range paths {
		d, ok := r.commands[path]
		if !ok || d.Validator == nil {
			continue
		}
		enabled := r.runValidator(d)
		r.stateFor(path).Enabled = enabled
	}
	return paths
}

func (r *Registry) runValidator(d *Descriptor) (enabled bool) {
	defer func() {
		if rec := recover(); rec != nil {
			events.Registry.ValidatorFailed(d.Path, rec)
			enabled = false
		}
	}()
	return d.Validator(r)
}

// Execute runs the command at path if its freshly computed state is visible
// and enabled. Failures are logged and returned; they never panic.
func (r *Registry) Execute(path string) error {
	r.Initialize()
	d, ok := r.commands[path]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, path)
		events.Registry.ActionFailed(path, err)
		return err
	}
	r.recompute()
	if !r.stateFor(path).Actionable() {
		return fmt.Errorf("%w: %s", ErrDisabled, path)
	}
	if err := runAction(d); err != nil {
		execErr := &ExecutionError{Path: path, Err: err}
		events.Registry.ActionFailed(path, err)
		return execErr
	}
	events.Registry.Executed(path)
	return nil
}

func runAction(d *Descriptor) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return d.Action()
}
