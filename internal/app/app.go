package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/backend"
	"github.com/atomicstack/tmux-quick-actions/internal/logging"
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	"github.com/atomicstack/tmux-quick-actions/internal/quickactions"
	"github.com/atomicstack/tmux-quick-actions/internal/tmux"
	"github.com/atomicstack/tmux-quick-actions/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	RootMenu     string
	List         bool
	ReleaseKey   string
	PollInterval time.Duration
	Menu         menu.Options
}

// Run bootstraps and executes the Bubble Tea program, or prints the catalog
// when cfg.List is set.
func Run(cfg Config, out io.Writer) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()

	client := tmux.NewClient(socketPath)
	qctx := quickactions.NewContext(client)
	snap, err := client.Snapshot()
	if err != nil {
		logging.Error(fmt.Errorf("initial snapshot: %w", err))
	}
	qctx.SetSnapshot(snap)
	reg := NewRegistry(qctx)

	if cfg.List {
		return List(reg, out)
	}

	ctrl := menu.New(reg, cfg.Menu)
	ctrl.Open(cfg.RootMenu)
	defer ctrl.Close("exit")

	watcher := backend.NewWatcher(client.Snapshot, cfg.PollInterval)
	defer watcher.Stop()

	model := ui.NewModel(ctrl, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		ReleaseKey: cfg.ReleaseKey,
		Watcher:    watcher,
		OnSnapshot: qctx.SetSnapshot,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err == nil {
		err = report(model.Result(), cfg.Verbose)
	}
	events.App.Exit(err)
	return err
}

// NewRegistry builds the registry holding every tmux quick action.
func NewRegistry(qctx *quickactions.Context) *action.Registry {
	reg := action.NewRegistry()
	quickactions.Install(reg, qctx)
	return reg
}

// report logs what the closing gesture did. A failed release is returned so
// the caller can surface it after the popup is gone.
func report(res menu.Result, verbose bool) error {
	if res.Err != nil {
		return res.Err
	}
	if res.Executed() && verbose {
		logging.Infof("ran %s", res.Path)
	}
	return nil
}
