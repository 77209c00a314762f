package tmux

import (
	"fmt"
	"strings"
)

// Layouts accepted by SelectLayout.
var Layouts = []string{"tiled", "even-horizontal", "even-vertical", "main-horizontal", "main-vertical"}

func SplitPane(socketPath, target string, horizontal bool) error {
	flag := "-v"
	if horizontal {
		flag = "-h"
	}
	return runCommand(socketPath, withTarget([]string{"split-window", flag}, target)...)
}

func ToggleZoom(socketPath, target string) error {
	return runCommand(socketPath, withTarget([]string{"resize-pane", "-Z"}, target)...)
}

func SetSynchronize(socketPath, target string, on bool) error {
	value := "off"
	if on {
		value = "on"
	}
	args := withTarget([]string{"set-window-option"}, target)
	return runCommand(socketPath, append(args, "synchronize-panes", value)...)
}

func KillPane(socketPath, target string) error {
	return runCommand(socketPath, withTarget([]string{"kill-pane"}, target)...)
}

func SelectLayout(socketPath, target, layout string) error {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return fmt.Errorf("layout required")
	}
	known := false
	for _, l := range Layouts {
		if l == layout {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown layout %q", layout)
	}
	args := withTarget([]string{"select-layout"}, target)
	return runCommand(socketPath, append(args, layout)...)
}
