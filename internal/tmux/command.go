package tmux

import (
	"fmt"
	"strings"
)

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func withTarget(args []string, target string) []string {
	if t := strings.TrimSpace(target); t != "" {
		return append(args, "-t", t)
	}
	return args
}

// runCommand sends one tmux command over the control-mode connection.
func runCommand(socketPath string, parts ...string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	if _, err := client.Command(parts...); err != nil {
		return fmt.Errorf("tmux %s: %w", parts[0], err)
	}
	return nil
}
