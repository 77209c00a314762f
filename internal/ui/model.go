package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-quick-actions/internal/backend"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	"github.com/atomicstack/tmux-quick-actions/internal/theme"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
	"github.com/atomicstack/tmux-quick-actions/internal/ui/command"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// headerLines sits above the canvas; pointer rows are offset by it.
	headerLines = 1
	// statusLines holds the search box, errors or the highlighted hint.
	statusLines = 1

	fallbackWidth  = 60
	fallbackHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the presentation window.
type Options struct {
	// Width and Height pin the canvas size; zero follows the terminal.
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// ReleaseKey emulates letting go of the activation chord.
	ReleaseKey string
	Watcher    *backend.Watcher
	// OnSnapshot receives every successful backend snapshot before the
	// controller refreshes command state.
	OnSnapshot func(tmux.Snapshot)
}

// Model implements the Bubble Tea model for the radial menu. The controller
// must already be open.
type Model struct {
	ctrl *menu.Controller
	bus  *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	keys   keyMap
	help   help.Model
	search textinput.Model

	errMsg     string
	backend    *backend.Watcher
	backendErr string
	onSnapshot func(tmux.Snapshot)

	result menu.Result

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps ctrl in a Bubble Tea model.
func NewModel(ctrl *menu.Controller, opts Options) *Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search actions"
	if styles.FilterPrompt != nil {
		search.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		search.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		search.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		search.Cursor.Style = *styles.Cursor
	}
	// a steady cursor keeps every update synchronous
	search.Cursor.SetMode(cursor.CursorStatic)

	m := &Model{
		ctrl:       ctrl,
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		keys:       newKeyMap(opts.ReleaseKey),
		help:       help.New(),
		search:     search,
		backend:    opts.Watcher,
		onSnapshot: opts.OnSnapshot,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.resizeCanvas()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Result reports the gesture that closed the menu.
func (m *Model) Result() menu.Result {
	return m.result
}

// Controller exposes the menu controller.
func (m *Model) Controller() *menu.Controller {
	return m.ctrl
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Failed{}):    m.handleFailedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.viewWidth()
	m.resizeCanvas()
	return nil
}

// dispatch runs a controller gesture through the bus and remembers the
// result that closed the menu.
func (m *Model) dispatch(name string, gesture func() menu.Result) tea.Cmd {
	res, cmd := m.bus.Dispatch(name, gesture)
	if res.Close {
		m.result = res
		m.search.Blur()
	}
	if res.Executed() || res.Close {
		m.errMsg = ""
	}
	return cmd
}

func (m *Model) handleFailedMsg(msg tea.Msg) tea.Cmd {
	failed, ok := msg.(command.Failed)
	if !ok {
		return nil
	}
	m.errMsg = failed.Err.Error()
	if m.backend != nil {
		// a failed command may still have changed tmux
		m.backend.Refresh()
	}
	return nil
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return fallbackWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return fallbackHeight
}

func (m *Model) footerLines() int {
	if m.showFooter {
		return 1
	}
	return 0
}

// canvasHeight is the number of rows left for the pie.
func (m *Model) canvasHeight() int {
	h := m.viewHeight() - headerLines - statusLines - m.footerLines()
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) resizeCanvas() {
	m.ctrl.Resize(m.viewWidth(), m.canvasHeight())
}
