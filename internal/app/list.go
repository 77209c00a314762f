package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/tmux-quick-actions/internal/action"
	"github.com/atomicstack/tmux-quick-actions/internal/format/table"
	"github.com/atomicstack/tmux-quick-actions/internal/logging/events"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.Bold, color.Underline)
	mutedColor  = color.New(color.Faint)
	checkColor  = color.New(color.FgGreen)
)

// List prints every command, dynamic ones included, with the state computed
// by one validation pass.
func List(reg *action.Registry, out io.Writer) error {
	session := reg.Open()
	defer session.Close()
	reg.RefreshStates()

	paths := reg.Paths()
	rows := [][]string{{"PATH", "PRIORITY", "KIND", "STATE", "CHECK", "DESCRIPTION"}}
	muted := map[int]bool{}
	for _, path := range paths {
		d, _ := reg.Lookup(path)
		st := reg.State(path)
		if !st.Actionable() {
			muted[len(rows)] = true
		}
		rows = append(rows, []string{
			path,
			strconv.Itoa(d.Priority),
			d.Kind.String(),
			stateLabel(st),
			checkLabel(st),
			d.Description,
		})
	}

	aligns := []table.Alignment{table.AlignLeft, table.AlignRight}
	lines := table.FormatStyled(rows, aligns, func(row, col int) *color.Color {
		switch {
		case row == 0:
			return headerColor
		case muted[row]:
			return mutedColor
		case col == 4 && rows[row][col] == "on":
			return checkColor
		}
		return nil
	})
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	events.App.List(len(paths))
	return nil
}

func stateLabel(st action.State) string {
	switch {
	case !st.Visible:
		return "hidden"
	case !st.Enabled:
		return "disabled"
	}
	return "enabled"
}

func checkLabel(st action.State) string {
	if !st.ShowCheckmark() {
		return "-"
	}
	if st.IsChecked() {
		return "on"
	}
	return "off"
}
