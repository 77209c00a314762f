package table

import (
	"testing"

	"github.com/fatih/color"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"PATH", "PRIORITY", "KIND"},
		{"Pane/Zoom", "-10", "static"},
		{"Window/Select/1 editor", "1", "dynamic"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"PATH                    PRIORITY  KIND",
		"Pane/Zoom                    -10  static",
		"Window/Select/1 editor         1  dynamic",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestFormatStyledKeepsWidths(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	rows := [][]string{{"a", "b"}, {"ccc", "d"}}
	bold := color.New(color.Bold)
	styled := FormatStyled(rows, nil, func(row, col int) *color.Color {
		if row == 0 && col == 0 {
			return bold
		}
		return nil
	})
	if styled[0] != bold.Sprint("a  ")+"  b" {
		t.Fatalf("unexpected styled header %q", styled[0])
	}
	if styled[1] != "ccc  d" {
		t.Fatalf("unexpected plain row %q", styled[1])
	}
}
