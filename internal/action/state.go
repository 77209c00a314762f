package action

// StateSink is handed to validators so they can adjust the displayed state of
// any command, not only their own.
type StateSink interface {
	SetVisible(path string, visible bool)
	SetChecked(path string, checked bool)
	SetEnabled(path string, enabled bool)
}

// State is the per-path state derived on every recomputation pass.
type State struct {
	Visible bool
	Enabled bool
	// Checked is nil when no check indicator should be shown.
	Checked *bool
}

func defaultState() State {
	return State{Visible: true, Enabled: true}
}

// ShowCheckmark reports whether a check indicator was requested.
func (s State) ShowCheckmark() bool {
	return s.Checked != nil
}

// IsChecked reports the indicator value; false when no indicator is shown.
func (s State) IsChecked() bool {
	return s.Checked != nil && *s.Checked
}

// Actionable reports whether the command may be shown and executed.
func (s State) Actionable() bool {
	return s.Visible && s.Enabled
}

func (r *Registry) stateFor(path string) *State {
	st, ok := r.states[path]
	if !ok {
		fresh := defaultState()
		st = &fresh
		r.states[path] = st
	}
	return st
}

// SetVisible sets the visibility side channel for path.
func (r *Registry) SetVisible(path string, visible bool) {
	r.stateFor(path).Visible = visible
}

// SetChecked sets the check indicator for path.
func (r *Registry) SetChecked(path string, checked bool) {
	value := checked
	r.stateFor(path).Checked = &value
}

// SetEnabled sets the enabled flag for path. A validator's own return value
// takes precedence for its own path.
func (r *Registry) SetEnabled(path string, enabled bool) {
	r.stateFor(path).Enabled = enabled
}

// State returns a copy of the last computed state for path.
func (r *Registry) State(path string) State {
	st := *r.stateFor(path)
	if st.Checked != nil {
		value := *st.Checked
		st.Checked = &value
	}
	return st
}

// Visible reports the last computed visibility for path.
func (r *Registry) Visible(path string) bool {
	return r.stateFor(path).Visible
}

// Enabled reports the last computed enablement for path.
func (r *Registry) Enabled(path string) bool {
	return r.stateFor(path).Enabled
}

// Checked reports whether path is checked; false when no indicator is shown.
func (r *Registry) Checked(path string) bool {
	return r.stateFor(path).IsChecked()
}

// ShowCheckmark reports whether path requested a check indicator.
func (r *Registry) ShowCheckmark(path string) bool {
	return r.stateFor(path).ShowCheckmark()
}

var _ StateSink = (*Registry)(nil)
