package radial

import (
	"errors"

	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
)

// ErrNoSelection is returned by ExecuteSelected when nothing is highlighted.
var ErrNoSelection = errors.New("nothing selected")

// Item is something the engine can highlight and execute.
type Item interface {
	Available() bool
	Execute() error
}

// ItemFunc adapts a pair of functions to Item. A nil Avail means always
// available.
type ItemFunc struct {
	Avail func() bool
	Run   func() error
}

func (f ItemFunc) Available() bool {
	if f.Avail == nil {
		return true
	}
	return f.Avail()
}

func (f ItemFunc) Execute() error {
	if f.Run == nil {
		return nil
	}
	return f.Run()
}

// Engine turns pointer positions into a highlighted item in one of two rings.
type Engine struct {
	geometry Geometry
	outer    []Item
	inner    []Item
	area     Area
	selected int
}

// NewEngine constructs an engine with no items and no selection.
func NewEngine(g Geometry) *Engine {
	return &Engine{geometry: g, selected: -1}
}

// Geometry returns the ring layout.
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// SetGeometry replaces the ring layout and clears the selection.
func (e *Engine) SetGeometry(g Geometry) {
	e.geometry = g
	e.reset()
}

// SetOuterItems replaces the outer ring's items and clears the selection.
func (e *Engine) SetOuterItems(items []Item) {
	e.outer = append([]Item(nil), items...)
	e.reset()
}

// SetInnerItems replaces the inner ring's sectors, indexed by InnerBack and
// InnerNext, and clears the selection.
func (e *Engine) SetInnerItems(items []Item) {
	e.inner = append([]Item(nil), items...)
	e.reset()
}

func (e *Engine) reset() {
	e.Clear()
	e.area = AreaNone
}

// Area returns the ring the pointer was last seen in.
func (e *Engine) Area() Area {
	return e.area
}

// Selected returns the highlighted index within Area, or -1.
func (e *Engine) Selected() int {
	return e.selected
}

// HasSelection reports whether anything is highlighted.
func (e *Engine) HasSelection() bool {
	return e.area != AreaNone && e.selected >= 0
}

// Update classifies p and selects by its angle.
func (e *Engine) Update(p Point) {
	area := e.geometry.Classify(p)
	e.UpdateArea(area)
	if area == AreaNone {
		return
	}
	e.SelectByAngle(e.geometry.Angle(p))
}

// UpdateArea switches rings. Changing ring always clears the selection.
func (e *Engine) UpdateArea(area Area) {
	if area == e.area {
		return
	}
	e.Clear()
	e.area = area
	events.Selection.Area(area.String())
}

// SelectByAngle highlights the item of the current ring at angle. An
// unavailable item leaves the highlight alone unless it is the one already
// highlighted, which is then cleared. Angles outside every inner sector clear
// the selection.
func (e *Engine) SelectByAngle(angle float64) {
	var idx int
	switch e.area {
	case AreaOuter:
		idx = OuterIndex(angle, len(e.outer))
	case AreaInner:
		idx = InnerIndex(angle)
	default:
		return
	}
	items := e.items()
	if idx < 0 || idx >= len(items) {
		e.Clear()
		return
	}
	if items[idx].Available() {
		if idx != e.selected {
			e.selected = idx
			events.Selection.Highlight(e.area.String(), idx)
		}
		return
	}
	if e.selected == idx {
		e.Clear()
	}
}

// Select highlights index in area directly, as keyboard navigation does.
func (e *Engine) Select(area Area, index int) bool {
	e.UpdateArea(area)
	items := e.items()
	if index < 0 || index >= len(items) || !items[index].Available() {
		return false
	}
	e.selected = index
	events.Selection.Highlight(area.String(), index)
	return true
}

// Clear drops the highlight but keeps the current ring.
func (e *Engine) Clear() {
	e.selected = -1
}

func (e *Engine) items() []Item {
	switch e.area {
	case AreaOuter:
		return e.outer
	case AreaInner:
		return e.inner
	}
	return nil
}

// InnerAvailability reports, per inner sector, whether it can be selected.
func (e *Engine) InnerAvailability() []bool {
	out := make([]bool, len(e.inner))
	for i, item := range e.inner {
		out[i] = item.Available()
	}
	return out
}

// ExecuteSelected runs the highlighted item if it is still available.
func (e *Engine) ExecuteSelected() error {
	if !e.HasSelection() {
		return ErrNoSelection
	}
	items := e.items()
	if e.selected >= len(items) || !items[e.selected].Available() {
		return ErrNoSelection
	}
	return items[e.selected].Execute()
}
