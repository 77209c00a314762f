package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

const defaultLogFile = "tmux-quick-actions.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	verbose      bool
	logPath      = defaultLogFile
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	writeLine("ERROR", err.Error())
}

// Errorf formats and writes an error line to the shared log file.
func Errorf(format string, args ...interface{}) {
	writeLine("ERROR", fmt.Sprintf(format, args...))
}

// Infof writes an informational line when verbose logging is enabled.
func Infof(format string, args ...interface{}) {
	traceMu.Lock()
	enabled := verbose
	traceMu.Unlock()
	if !enabled {
		return
	}
	writeLine("INFO", fmt.Sprintf(format, args...))
}

func writeLine(level, message string) {
	traceMu.Lock()
	path := logPath
	traceMu.Unlock()

	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Printf("%s: %s", level, message)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// SetVerbose toggles informational log lines.
func SetVerbose(enabled bool) {
	traceMu.Lock()
	verbose = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	enabled := traceEnabled
	path := logPath
	traceMu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path, a leading ~ is expanded, and missing directories are created.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to expand log path: %v\n", err)
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = expanded
}

// Path reports the active log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}
