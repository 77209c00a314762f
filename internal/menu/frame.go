package menu

import (
	"github.com/atomicstack/tmux-quick-actions/internal/radial"
	"github.com/atomicstack/tmux-quick-actions/internal/tree"
)

// Frame is one rendering of the menu as plain data.
type Frame struct {
	Open      bool
	Path      string
	Page      int
	Pages     int
	Searching bool

	Width, Height        int
	CenterCol, CenterRow int
	// Radii are in columns; a row spans Aspect columns.
	InnerRadius  float64
	ButtonRadius float64
	Aspect       float64

	Buttons []Button
	// Inner is indexed by radial.InnerBack and radial.InnerNext.
	Inner []Sector

	Area     radial.Area
	Selected int
	// Hint describes the highlighted action.
	Hint string
}

// Button is an outer ring entry placed at its cell position.
type Button struct {
	Label string
	Path  string
	Type  tree.NodeType
	Angle float64

	Col, Row    int
	Highlighted bool

	ShowCheckmark bool
	Checked       bool
}

// Sector is one of the inner ring's two navigation zones.
type Sector struct {
	Label       string
	Available   bool
	Highlighted bool
}

// Highlighted returns the highlighted outer button, if any.
func (f Frame) Highlighted() (Button, bool) {
	for _, b := range f.Buttons {
		if b.Highlighted {
			return b, true
		}
	}
	return Button{}, false
}
