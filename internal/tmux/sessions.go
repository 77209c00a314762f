package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// NewSession creates a detached session and returns its name.
func NewSession(socketPath, name string) (string, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return "", err
	}
	session, err := client.NewSession(&gotmux.SessionOptions{Name: name})
	if err != nil {
		return "", err
	}
	if session == nil {
		return name, nil
	}
	return session.Name, nil
}

func SwitchClient(socketPath, clientID, target string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}

	opts := &gotmux.SwitchClientOptions{TargetSession: target}
	if strings.TrimSpace(clientID) != "" {
		opts.TargetClient = clientID
	}
	return client.SwitchClient(opts)
}

func DetachClient(socketPath, clientID string) error {
	return runCommand(socketPath, withTarget([]string{"detach-client"}, clientID)...)
}

func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_QUICK_ACTIONS_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// realAttachedClients returns a map from session name to the names of
// non-control-mode clients attached to it. This excludes gotmuxcc's own
// control-mode connection, which would otherwise inflate session_attached counts.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func currentSessionName(client tmuxClient, target string) string {
	if target != "" {
		if name, err := client.DisplayMessage(target, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	clients, err := client.ListClients()
	if err != nil {
		return ""
	}
	fallback := ""
	for _, c := range clients {
		if c == nil || c.Session == "" {
			continue
		}
		if !c.ControlMode {
			return c.Session
		}
		if fallback == "" {
			fallback = c.Session
		}
	}
	return fallback
}
