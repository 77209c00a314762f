package tmux

import (
	"fmt"
	"strings"
)

func NewWindow(socketPath, session string) error {
	target := ""
	if s := strings.TrimSpace(session); s != "" {
		target = s + ":"
	}
	return runCommand(socketPath, withTarget([]string{"new-window"}, target)...)
}

func NextWindow(socketPath, session string) error {
	return runCommand(socketPath, withTarget([]string{"next-window"}, session)...)
}

func PreviousWindow(socketPath, session string) error {
	return runCommand(socketPath, withTarget([]string{"previous-window"}, session)...)
}

func KillWindow(socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("window target required")
	}
	return runCommand(socketPath, "kill-window", "-t", target)
}

func SelectWindow(socketPath, target string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	return client.SelectWindow(target)
}

// WindowTarget formats session:index.
func WindowTarget(session string, index int) string {
	return fmt.Sprintf("%s:%d", session, index)
}
