package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	"github.com/atomicstack/tmux-quick-actions/internal/radial"
	"github.com/atomicstack/tmux-quick-actions/internal/tree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	maxLabelWidth = 20
	checkOn       = "✓ "
	checkOff      = "· "
	folderSuffix  = " ›"
	ringGlyph     = '·'
	centerGlyph   = '+'
	// ringStep is the angular spacing, in degrees, of the inner ring's dots.
	ringStep = 6
)

// View implements tea.Model.
func (m *Model) View() string {
	frame := m.ctrl.Frame()
	width := m.viewWidth()

	lines := make([]string, 0, m.viewHeight())
	lines = append(lines, m.headerLine(frame, width))
	lines = append(lines, m.renderCanvas(frame, width, m.canvasHeight())...)
	lines = append(lines, m.statusLine(frame, width))
	if m.showFooter {
		m.help.Width = width
		lines = append(lines, renderStyled(styles.Footer, m.help.View(m.keys)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine(f menu.Frame, width int) string {
	title := f.Path
	if f.Searching {
		title = fmt.Sprintf("Search: %s", m.search.Value())
	}
	if f.Pages > 1 {
		title = fmt.Sprintf("%s  %d/%d", title, f.Page+1, f.Pages)
	}
	return renderStyled(styles.Header, truncateText(title, width))
}

func (m *Model) statusLine(f menu.Frame, width int) string {
	switch {
	case m.search.Focused():
		return truncate.String(m.search.View(), uint(width))
	case m.errMsg != "":
		return renderStyled(styles.Error, truncateText(m.errMsg, width))
	case m.backendErr != "" && m.verbose:
		return renderStyled(styles.Error, truncateText("tmux: "+m.backendErr, width))
	case f.Hint != "":
		return renderStyled(styles.Hint, truncateText(f.Hint, width))
	}
	return ""
}

func (m *Model) renderCanvas(f menu.Frame, width, height int) []string {
	c := newCanvas(width, height)
	if !f.Open {
		return c.lines()
	}
	aspect := f.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	center := radial.CellPoint(f.CenterCol, f.CenterRow, aspect)

	// inner ring outline
	for a := 0; a < 360; a += ringStep {
		p := radial.ButtonPosition(center, f.InnerRadius, float64(a))
		c.set(int(math.Round(p.X)), int(math.Round(p.Y/aspect)), ringGlyph, styles.Ring)
	}
	c.set(f.CenterCol, f.CenterRow, centerGlyph, styles.Center)

	// inner sectors sit half way between the centre and the ring
	offset := int(math.Round(f.InnerRadius / aspect / 2))
	if offset < 1 {
		offset = 1
	}
	rows := map[int]int{radial.InnerBack: f.CenterRow - offset, radial.InnerNext: f.CenterRow + offset}
	for i, s := range f.Inner {
		if !s.Available {
			continue
		}
		style := styles.Sector
		if s.Highlighted {
			style = styles.SelectedSector
		}
		c.text(f.CenterCol, rows[i], s.Label, style)
	}

	limit := maxLabelWidth
	if half := width / 3; half < limit {
		limit = half
	}
	for _, b := range f.Buttons {
		c.text(b.Col, b.Row, truncateText(buttonLabel(b), limit), buttonStyle(b))
	}
	return c.lines()
}

func buttonLabel(b menu.Button) string {
	label := b.Label
	if b.Type == tree.TypeCollection {
		label += folderSuffix
	}
	if b.ShowCheckmark {
		if b.Checked {
			return checkOn + label
		}
		return checkOff + label
	}
	return label
}

func buttonStyle(b menu.Button) *lipgloss.Style {
	switch {
	case b.Highlighted:
		return styles.SelectedButton
	case b.Type == tree.TypeCollection:
		return styles.Collection
	case b.Type == tree.TypeBack || b.Type == tree.TypeNextPage:
		return styles.Navigation
	}
	return styles.Action
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
