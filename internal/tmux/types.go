package tmux

import (
	"os/exec"
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type Session struct {
	Name     string
	Windows  int
	Attached bool
	Clients  []string
	Current  bool
}

type Window struct {
	ID      string
	Session string
	Index   int
	Name    string
	Active  bool
}

type Pane struct {
	ID     string
	Index  int
	Active bool
}

// Snapshot is what the quick actions know about tmux: every session, the
// windows of the current session, and the panes of its active window.
type Snapshot struct {
	Session  string
	Sessions []Session
	Windows  []Window
	Panes    []Pane

	WindowZoomed bool
	Synchronized bool
}

// CurrentWindow returns the active window of the current session.
func (s Snapshot) CurrentWindow() (Window, bool) {
	for _, w := range s.Windows {
		if w.Active {
			return w, true
		}
	}
	return Window{}, false
}

// OtherSessions lists every session except the current one.
func (s Snapshot) OtherSessions() []Session {
	out := make([]Session, 0, len(s.Sessions))
	for _, sess := range s.Sessions {
		if sess.Name == s.Session {
			continue
		}
		out = append(out, sess)
	}
	return out
}

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListClients() ([]*gotmux.Client, error)
	ListWindowsFormat(target, filter, format string) ([]string, error)
	ListPanesFormat(target, filter, format string) ([]string, error)
	DisplayMessage(target, format string) (string, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	SelectWindow(target string) error
	NewSession(*gotmux.SessionOptions) (*gotmux.Session, error)
	Command(parts ...string) (string, error)
	Close() error
}

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string

	dialTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	// newTmux hands out one control-mode connection per socket; the poller
	// and the actions share it.
	newTmux = func(socketPath string) (tmuxClient, error) {
		clientMu.Lock()
		defer clientMu.Unlock()
		if cachedClient != nil && cachedSocket == socketPath {
			return cachedClient, nil
		}
		if cachedClient != nil {
			_ = cachedClient.Close()
			cachedClient = nil
		}
		client, err := dialTmux(socketPath)
		if err != nil {
			return nil, err
		}
		cachedClient = client
		cachedSocket = socketPath
		return client, nil
	}

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}
)

// Shutdown closes the shared control-mode connection.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}
