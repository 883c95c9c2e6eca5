package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/humanbench/internal/model"
)

// viewport maps terminal cells onto the logical play field. A cell stands
// for the field point under its centre, so drawing and hit testing agree.
type viewport struct {
	cols  int
	rows  int
	field model.Size
}

func (v viewport) toField(col, row int) model.Point {
	return model.Point{
		X: (2*col + 1) * v.field.W / (2 * v.cols),
		Y: (2*row + 1) * v.field.H / (2 * v.rows),
	}
}

func (v viewport) toCell(p model.Point) (col, row int) {
	col = clamp(p.X*v.cols/v.field.W, 0, v.cols-1)
	row = clamp(p.Y*v.rows/v.field.H, 0, v.rows-1)
	return col, row
}

func (v viewport) valid() bool {
	return v.cols > 0 && v.rows > 0 && v.field.W > 0 && v.field.H > 0
}

type paint int

const (
	paintBlank paint = iota
	paintAlert
	paintGo
	paintSquare
	paintLit
	paintTarget
	paintButton
	paintHover
)

var paintStyles = map[paint]lipgloss.Style{
	paintBlank:  lipgloss.NewStyle().Background(lipgloss.Color("#2B87D1")).Foreground(lipgloss.Color("#F0F0F0")),
	paintAlert:  lipgloss.NewStyle().Background(lipgloss.Color("#CE2636")).Foreground(lipgloss.Color("#F0F0F0")),
	paintGo:     lipgloss.NewStyle().Background(lipgloss.Color("#4BDB6A")).Foreground(lipgloss.Color("#1A1A1A")),
	paintSquare: lipgloss.NewStyle().Background(lipgloss.Color("#1F5F99")),
	paintLit:    lipgloss.NewStyle().Background(lipgloss.Color("#F0F0F0")),
	paintTarget: lipgloss.NewStyle().Background(lipgloss.Color("#F0F0F0")).Foreground(lipgloss.Color("#2B87D1")),
	paintButton: lipgloss.NewStyle().Background(lipgloss.Color("#FFD154")).Foreground(lipgloss.Color("#1A1A1A")),
	paintHover:  lipgloss.NewStyle().Background(lipgloss.Color("#FFE69C")).Foreground(lipgloss.Color("#1A1A1A")).Bold(true),
}

type cell struct {
	r rune
	p paint
}

// canvas is a grid of painted cells. A zero rune marks the trailing half of a wide rune.
type canvas struct {
	view  viewport
	cells [][]cell
}

func newCanvas(v viewport, base paint) *canvas {
	cells := make([][]cell, v.rows)
	for y := range cells {
		cells[y] = make([]cell, v.cols)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' ', p: base}
		}
	}
	return &canvas{view: v, cells: cells}
}

// fill paints every cell whose field point satisfies in.
func (c *canvas) fill(p paint, in func(model.Point) bool) {
	for y, row := range c.cells {
		for x := range row {
			if in(c.view.toField(x, y)) {
				row[x].p = p
			}
		}
	}
}

// text writes s centred on the cell row holding field point at, keeping the paint underneath.
func (c *canvas) text(at model.Point, s string) {
	if s == "" {
		return
	}
	col, row := c.view.toCell(at)
	start := col - runewidth.StringWidth(s)/2
	x := max(start, 0)
	cells := c.cells[row]
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > len(cells) {
			return
		}
		cells[x].r = r
		for i := 1; i < w; i++ {
			cells[x+i].r = 0
		}
		x += w
	}
}

// textIn centres s inside rect.
func (c *canvas) textIn(rect model.Rect, s string) {
	c.text(rect.Center(), s)
}

func (c *canvas) render() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var line, run strings.Builder
		current := paintBlank
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(paintStyles[current].Render(run.String()))
				run.Reset()
			}
		}
		for x, cl := range row {
			if x == 0 || cl.p != current {
				flush()
				current = cl.p
			}
			if cl.r != 0 {
				run.WriteRune(cl.r)
			}
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// plain returns the canvas runes without styling.
func (c *canvas) plain() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if cl.r != 0 {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
