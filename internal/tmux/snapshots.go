package tmux

import (
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

const (
	windowFormat = "#{session_name}\t#{window_id}\t#{window_index}\t#{window_name}\t#{window_active}"
	paneFormat   = "#{session_name}\t#{window_active}\t#{pane_id}\t#{pane_index}\t#{pane_active}"
	flagsFormat  = "#{window_zoomed_flag}\t#{synchronize-panes}"
)

// FetchSnapshot gathers sessions, the current session's windows and the
// panes of its active window. target is the pane the popup was opened from.
func FetchSnapshot(socketPath, target string) (Snapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return Snapshot{}, err
	}

	sessions, err := client.ListSessions()
	if err != nil {
		return Snapshot{}, err
	}
	if len(sessions) == 0 {
		fallback, err := fetchSessionsFallback(socketPath)
		if err == nil {
			sessions = fallback
		}
	}

	target = strings.TrimSpace(target)
	current := currentSessionName(client, target)
	attached := realAttachedClients(client)
	snap := Snapshot{Session: current}
	for _, s := range sessions {
		if s == nil {
			continue
		}
		clients := attached[s.Name]
		snap.Sessions = append(snap.Sessions, Session{
			Name:     s.Name,
			Windows:  s.Windows,
			Attached: len(clients) > 0,
			Clients:  clients,
			Current:  s.Name == current,
		})
	}

	windowLines, err := client.ListWindowsFormat("", "", windowFormat)
	if err != nil {
		return snap, err
	}
	snap.Windows = parseWindowLines(windowLines, current)

	paneLines, err := client.ListPanesFormat("", "", paneFormat)
	if err != nil {
		return snap, err
	}
	snap.Panes = parsePaneLines(paneLines, current)

	flagsTarget := target
	if flagsTarget == "" {
		if w, ok := snap.CurrentWindow(); ok {
			flagsTarget = WindowTarget(w.Session, w.Index)
		}
	}
	if flags, err := client.DisplayMessage(flagsTarget, flagsFormat); err == nil {
		snap.WindowZoomed, snap.Synchronized = parseFlags(flags)
	}
	return snap, nil
}

func parseWindowLines(lines []string, session string) []Window {
	out := make([]Window, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(strings.TrimSpace(line), "\t", 5)
		if len(parts) < 5 || strings.TrimSpace(parts[0]) != session {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		out = append(out, Window{
			ID:      strings.TrimSpace(parts[1]),
			Session: session,
			Index:   idx,
			Name:    strings.TrimSpace(parts[3]),
			Active:  strings.TrimSpace(parts[4]) == "1",
		})
	}
	return out
}

// parsePaneLines keeps the panes of the session's active window.
func parsePaneLines(lines []string, session string) []Pane {
	out := make([]Pane, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(strings.TrimSpace(line), "\t", 5)
		if len(parts) < 5 || strings.TrimSpace(parts[0]) != session || strings.TrimSpace(parts[1]) != "1" {
			continue
		}
		idx, _ := strconv.Atoi(strings.TrimSpace(parts[3]))
		out = append(out, Pane{
			ID:     strings.TrimSpace(parts[2]),
			Index:  idx,
			Active: strings.TrimSpace(parts[4]) == "1",
		})
	}
	return out
}

func parseFlags(raw string) (zoomed, synchronized bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), "\t", 2)
	zoomed = strings.TrimSpace(parts[0]) == "1"
	if len(parts) > 1 {
		synchronized = strings.TrimSpace(parts[1]) == "1"
	}
	return zoomed, synchronized
}

// fetchSessionsFallback is an exec-based fallback used only when the
// control-mode ListSessions call returns no sessions (e.g. during a
// race at startup).
func fetchSessionsFallback(socketPath string) ([]*gotmux.Session, error) {
	format := "#{session_name}\t#{session_windows}\t#{session_attached}"
	args := append(baseArgs(socketPath), "list-sessions", "-F", format)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(output))
	if text == "" {
		return []*gotmux.Session{}, nil
	}
	lines := strings.Split(text, "\n")
	sessions := make([]*gotmux.Session, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		windows, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		attached, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		sessions = append(sessions, &gotmux.Session{
			Name:     strings.TrimSpace(parts[0]),
			Windows:  windows,
			Attached: attached,
		})
	}
	return sessions, nil
}
