package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tmux-quick-actions/internal/app"
	"github.com/atomicstack/tmux-quick-actions/internal/config"
	"github.com/atomicstack/tmux-quick-actions/internal/logging"
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	logging.SetVerbose(cfg.Features.Verbose)

	if cfg.Logging.Trace {
		events.App.Start(startupTracePayload(cfg))
	}

	if err := app.Run(cfg.App, stdout); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailed
	}
	return exitOK
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    collectTTYDetails(),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// ttyDetails records which standard descriptor is a terminal. The popup's
// size comes from the first one that reports dimensions.
type ttyDetails struct {
	Detected string     `json:"detected,omitempty"`
	Width    int        `json:"width,omitempty"`
	Height   int        `json:"height,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := ttyProbe{Name: probeName(f)}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case details.Detected == "":
				details.Detected = probe.Name
				details.Width, details.Height = width, height
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	}
	return f.Name()
}
