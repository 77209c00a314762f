// Package menu runs one radial menu session: it opens a registry session,
// lays out the current tree page on the engine's rings, turns pointer and
// keyboard gestures into navigation or execution, and exposes each frame as
// plain data for the presentation layer.
package menu

import (
	"errors"
	"math"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/logging"
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"github.com/atomicstack/tmux-quick-actions/internal/radial"
	"github.com/atomicstack/tmux-quick-actions/internal/tree"
)

// labelMargin keeps button labels off the popup's left and right edges.
const labelMargin = 6

// Options sizes the rings, in terminal columns.
type Options struct {
	MaxPerPage   int
	InnerRadius  float64
	ButtonRadius float64
	DeadZone     float64
	// Aspect is the height of a cell in columns.
	Aspect float64
}

// DefaultOptions matches the command-line defaults.
func DefaultOptions() Options {
	return Options{
		MaxPerPage:   tree.DefaultMaxPerPage,
		InnerRadius:  4,
		ButtonRadius: 14,
		Aspect:       2,
	}
}

// MouseButton distinguishes confirming clicks from cancelling ones.
type MouseButton int

const (
	PrimaryButton MouseButton = iota
	SecondaryButton
)

// Result describes what a gesture did. Path is set when an action ran, Err
// when it failed. A failed click leaves the menu open.
type Result struct {
	Close bool
	Path  string
	Err   error
}

// Executed reports whether an action ran successfully.
func (r Result) Executed() bool {
	return r.Path != "" && r.Err == nil
}

// Controller owns the registry session, the tree and the selection engine
// for as long as the menu is shown.
type Controller struct {
	registry *action.Registry
	tree     *tree.Tree
	engine   *radial.Engine
	opts     Options

	session *action.Session
	page    tree.Page
	open    bool

	width, height int
	buttonRadius  float64
	// ran is the path executed by the last engine activation.
	ran string
}

// New builds a controller over reg. The tree is built when the menu opens.
func New(reg *action.Registry, opts Options) *Controller {
	if opts.Aspect <= 0 {
		opts.Aspect = 1
	}
	c := &Controller{
		registry:     reg,
		tree:         tree.New(reg, tree.WithMaxPerPage(opts.MaxPerPage)),
		opts:         opts,
		buttonRadius: opts.ButtonRadius,
	}
	c.engine = radial.NewEngine(radial.Geometry{InnerRadius: opts.InnerRadius, DeadZone: opts.DeadZone})
	return c
}

// Tree exposes the action tree.
func (c *Controller) Tree() *tree.Tree {
	return c.tree
}

// Engine exposes the selection engine.
func (c *Controller) Engine() *radial.Engine {
	return c.engine
}

// IsOpen reports whether a session is active.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Open starts a session, runs the before-open hooks, rebuilds the tree from
// the freshly enabled commands and shows root, or the tree root when root is
// empty or unknown.
func (c *Controller) Open(root string) {
	if c.open {
		c.close("reopen")
	}
	c.session = c.registry.Open()
	c.tree.Rebuild()
	if root != "" && !c.tree.NavigateToPath(root) {
		logging.Errorf("menu root %q is not a folder", root)
	}
	c.open = true
	c.relayout()
	events.UI.Open(c.tree.CurrentPath(), len(c.page.Buttons))
}

// Close ends the session without executing anything.
func (c *Controller) Close(reason string) {
	if c.open {
		c.close(reason)
	}
}

func (c *Controller) close(reason string) {
	c.session.Close()
	c.engine.Clear()
	c.open = false
	events.UI.Close(reason)
}

// Resize centres the rings in a width x height cell canvas and shrinks the
// button ring when it would not fit.
func (c *Controller) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	center := radial.CellPoint(width/2, height/2, c.opts.Aspect)

	r := c.opts.ButtonRadius
	if fit := float64(width)/2 - labelMargin; fit < r {
		r = fit
	}
	if fit := (float64(height)/2 - 1) * c.opts.Aspect; fit < r {
		r = fit
	}
	if floor := c.opts.InnerRadius + 1; r < floor {
		r = floor
	}
	c.buttonRadius = r

	g := c.engine.Geometry()
	g.Center = center
	c.engine.SetGeometry(g)
	events.UI.Resize(width, height)
}

// relayout pushes the current page onto the engine. The selection is reset.
func (c *Controller) relayout() {
	c.page = c.tree.Page()
	outer := make([]radial.Item, len(c.page.Buttons))
	for i, n := range c.page.Buttons {
		outer[i] = nodeItem{c: c, node: n}
	}
	c.engine.SetOuterItems(outer)
	c.engine.SetInnerItems([]radial.Item{
		radial.InnerBack: radial.ItemFunc{
			Avail: c.tree.CanNavigateBack,
			Run:   func() error { c.navigate(c.tree.NavigateBack); return nil },
		},
		radial.InnerNext: radial.ItemFunc{
			Avail: c.tree.CanGoNextPage,
			Run:   func() error { c.navigate(c.tree.NextPage); return nil },
		},
	})
}

func (c *Controller) navigate(move func() bool) bool {
	if !move() {
		return false
	}
	c.relayout()
	return true
}

type nodeItem struct {
	c    *Controller
	node *tree.Node
}

// Available is always true: a page only holds enabled commands.
func (i nodeItem) Available() bool { return true }

func (i nodeItem) Execute() error {
	return i.c.activate(i.node)
}

func (c *Controller) activate(n *tree.Node) error {
	switch n.Type {
	case tree.TypeAction:
		c.ran = n.Command.Path
		return c.tree.ExecuteAction(n)
	case tree.TypeCollection:
		c.navigate(func() bool { return c.tree.NavigateInto(n) })
	case tree.TypeBack:
		c.navigate(c.tree.NavigateBack)
	case tree.TypeNextPage:
		c.navigate(c.tree.NextPage)
	}
	return nil
}

// PointerMoved updates the highlight from a pointer at cell (col, row).
func (c *Controller) PointerMoved(col, row int) {
	if !c.open {
		return
	}
	c.engine.Update(radial.CellPoint(col, row, c.opts.Aspect))
}

// Click confirms the highlight with the primary button and cancels with the
// secondary one. Navigation keeps the menu open; a successful action closes
// it.
func (c *Controller) Click(button MouseButton) Result {
	if !c.open {
		return Result{}
	}
	if button == SecondaryButton {
		return c.Cancel()
	}
	c.ran = ""
	err := c.engine.ExecuteSelected()
	if errors.Is(err, radial.ErrNoSelection) {
		return Result{}
	}
	if c.ran == "" {
		return Result{}
	}
	if err != nil {
		return Result{Path: c.ran, Err: err}
	}
	c.close("click")
	return Result{Close: true, Path: c.ran}
}

// Cancel closes the menu without executing anything.
func (c *Controller) Cancel() Result {
	if !c.open {
		return Result{}
	}
	c.close("cancel")
	return Result{Close: true}
}

// Release emulates letting go of the activation chord: a highlighted action
// in the outer ring runs, and the menu closes either way.
func (c *Controller) Release() Result {
	if !c.open {
		return Result{}
	}
	n := c.highlighted()
	if n == nil || n.Type != tree.TypeAction {
		c.close("release")
		return Result{Close: true}
	}
	err := c.tree.ExecuteAction(n)
	c.close("release")
	return Result{Close: true, Path: n.Command.Path, Err: err}
}

func (c *Controller) highlighted() *tree.Node {
	if c.engine.Area() != radial.AreaOuter || !c.engine.HasSelection() {
		return nil
	}
	idx := c.engine.Selected()
	if idx >= len(c.page.Buttons) {
		return nil
	}
	return c.page.Buttons[idx]
}

// Rotate moves the outer highlight by delta buttons, wrapping around. With
// nothing highlighted it starts at the top button, or the last one when
// moving backwards.
func (c *Controller) Rotate(delta int) bool {
	n := len(c.page.Buttons)
	if !c.open || n == 0 {
		return false
	}
	next := 0
	if delta < 0 {
		next = n - 1
	}
	if c.engine.Area() == radial.AreaOuter && c.engine.HasSelection() {
		next = ((c.engine.Selected()+delta)%n + n) % n
	}
	return c.engine.Select(radial.AreaOuter, next)
}

// Back navigates to the first page or the parent collection.
func (c *Controller) Back() bool {
	return c.open && c.navigate(c.tree.NavigateBack)
}

// NextPage shows the following page of the current collection.
func (c *Controller) NextPage() bool {
	return c.open && c.navigate(c.tree.NextPage)
}

// PreviousPage shows the preceding page of the current collection.
func (c *Controller) PreviousPage() bool {
	return c.open && c.navigate(c.tree.PreviousPage)
}

// Search replaces the page with fuzzy matches for query.
func (c *Controller) Search(query string) int {
	if !c.open {
		return 0
	}
	results := c.tree.Search(query)
	c.relayout()
	return len(results.Children)
}

// EndSearch leaves the results and shows the root.
func (c *Controller) EndSearch() {
	if !c.open || !c.tree.InSearch() {
		return
	}
	c.tree.EndSearch()
	c.relayout()
}

// Searching reports whether search results are shown.
func (c *Controller) Searching() bool {
	return c.open && c.tree.InSearch()
}

// RefreshStates recomputes command state after the host changed, keeping
// the page and the highlight. Commands that became enabled or disabled only
// appear or disappear on the next open.
func (c *Controller) RefreshStates() {
	if !c.open {
		return
	}
	c.tree.RefreshStates()
}

// Frame captures everything needed to draw the menu.
func (c *Controller) Frame() Frame {
	f := Frame{
		Open:         c.open,
		Page:         c.page.Index,
		Pages:        1,
		Searching:    c.Searching(),
		Width:        c.width,
		Height:       c.height,
		InnerRadius:  c.opts.InnerRadius,
		ButtonRadius: c.buttonRadius,
		Aspect:       c.opts.Aspect,
		Area:         c.engine.Area(),
		Selected:     c.engine.Selected(),
	}
	if !c.open {
		return f
	}
	f.Path = c.tree.CurrentPath()
	f.Pages = c.tree.PageCount()
	center := c.engine.Geometry().Center
	f.CenterCol, f.CenterRow = cell(center, c.opts.Aspect)

	count := len(c.page.Buttons)
	for i, n := range c.page.Buttons {
		angle := radial.ItemAngle(i, count)
		col, row := cell(radial.ButtonPosition(center, c.buttonRadius, angle), c.opts.Aspect)
		b := Button{
			Label:         n.Label(),
			Type:          n.Type,
			Angle:         angle,
			Col:           col,
			Row:           row,
			Highlighted:   f.Area == radial.AreaOuter && f.Selected == i,
			ShowCheckmark: n.ShowCheckmark,
			Checked:       n.Checked,
		}
		if n.Command != nil {
			b.Path = n.Command.Path
			if b.Highlighted {
				f.Hint = n.Command.Description
			}
		}
		f.Buttons = append(f.Buttons, b)
	}

	avail := c.engine.InnerAvailability()
	for i, label := range []string{"Back", "Next"} {
		s := Sector{Label: label}
		if i < len(avail) {
			s.Available = avail[i]
		}
		s.Highlighted = f.Area == radial.AreaInner && f.Selected == i
		f.Inner = append(f.Inner, s)
	}
	return f
}

func cell(p radial.Point, aspect float64) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y / aspect))
}
