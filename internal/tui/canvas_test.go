package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/humanbench/internal/hit"
	"github.com/verte-zerg/humanbench/internal/model"
)

var field = model.Size{W: 980, H: 550}

func TestViewportCellCentres(t *testing.T) {
	v := viewport{cols: 98, rows: 55, field: field}
	if p := v.toField(0, 0); p != (model.Point{X: 5, Y: 5}) {
		t.Fatalf("unexpected first cell centre %+v", p)
	}
	if p := v.toField(97, 54); p != (model.Point{X: 975, Y: 545}) {
		t.Fatalf("unexpected last cell centre %+v", p)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	for _, v := range []viewport{
		{cols: 98, rows: 55, field: field},
		{cols: 80, rows: 24, field: field},
		{cols: 200, rows: 60, field: field},
	} {
		for row := 0; row < v.rows; row++ {
			for col := 0; col < v.cols; col++ {
				gotCol, gotRow := v.toCell(v.toField(col, row))
				if gotCol != col || gotRow != row {
					t.Fatalf("%dx%d: cell (%d,%d) mapped back to (%d,%d)", v.cols, v.rows, col, row, gotCol, gotRow)
				}
			}
		}
	}
}

func TestViewportClampsOutsidePoints(t *testing.T) {
	v := viewport{cols: 98, rows: 55, field: field}
	col, row := v.toCell(model.Point{X: 5000, Y: -20})
	if col != 97 || row != 0 {
		t.Fatalf("expected clamped cell (97,0), got (%d,%d)", col, row)
	}
}

func TestCanvasFillMatchesHitTest(t *testing.T) {
	v := viewport{cols: 98, rows: 55, field: field}
	c := newCanvas(v, paintBlank)
	r := model.Rect{X: 0, Y: 0, W: 100, H: 100}
	c.fill(paintButton, func(p model.Point) bool { return hit.RectContains(r, p) })
	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			want := col < 10 && row < 10
			got := c.cells[row][col].p == paintButton
			if got != want {
				t.Fatalf("cell (%d,%d): painted=%v, want %v", col, row, got, want)
			}
		}
	}
}

func TestCanvasText(t *testing.T) {
	v := viewport{cols: 20, rows: 3, field: model.Size{W: 200, H: 30}}
	c := newCanvas(v, paintBlank)
	c.text(model.Point{X: 100, Y: 15}, "abcd")
	lines := strings.Split(c.plain(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "        abcd        " {
		t.Fatalf("unexpected centred text %q", lines[1])
	}
	c.text(model.Point{X: 190, Y: 0}, "overflowing")
	if got := strings.Split(c.plain(), "\n")[0]; len(got) != 20 {
		t.Fatalf("text must not widen the row, got %q", got)
	}
}

func TestCanvasWideRunes(t *testing.T) {
	v := viewport{cols: 10, rows: 1, field: model.Size{W: 100, H: 10}}
	c := newCanvas(v, paintBlank)
	c.text(model.Point{X: 50, Y: 5}, "日本")
	if got := c.plain(); got != "   日本   " {
		t.Fatalf("unexpected wide text %q", got)
	}
}
