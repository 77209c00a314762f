package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	style *lipgloss.Style
}

// canvas is a fixed grid of styled runes. Writes outside the grid are
// dropped.
type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// text writes s centred on column x, shifted inwards so it stays on the
// grid when it fits.
func (c *canvas) text(x, y int, s string, style *lipgloss.Style) {
	runes := []rune(s)
	start := x - len(runes)/2
	if start+len(runes) > c.width {
		start = c.width - len(runes)
	}
	if start < 0 {
		start = 0
	}
	for i, r := range runes {
		c.set(start+i, y, r, style)
	}
}

// lines renders each row, styling runs of cells that share a style.
func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		var run []rune
		var current *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(renderStyled(current, string(run)))
			run = run[:0]
		}
		for _, cl := range row {
			if cl.style != current {
				flush()
				current = cl.style
			}
			run = append(run, cl.r)
		}
		flush()
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}
