package game

import "github.com/verte-zerg/humanbench/internal/model"

// GridSize is the number of sequence squares.
const GridSize = 9

const (
	fieldWidth   = 980
	fieldHeight  = 550
	targetSize   = 100
	squareSize   = 120
	squareSpacer = 135
	buttonWidth  = 160
	buttonHeight = 50
	menuWidth    = 200
	menuTop      = 220
	menuSpacer   = 70
	startBottom  = 100
	endBottom    = 150
	endSpread    = 100
)

// Layout holds the play-field geometry and the UI hit regions.
type Layout struct {
	Field       model.Size
	Target      model.Size
	Squares     [GridSize]model.Rect
	MenuButtons [3]model.Rect
	Start       model.Rect
	Try         model.Rect
	Save        model.Rect
}

// DefaultLayout returns the fixed 980x550 layout.
func DefaultLayout() Layout {
	l := Layout{
		Field:  model.Size{W: fieldWidth, H: fieldHeight},
		Target: model.Size{W: targetSize, H: targetSize},
	}
	cx := (fieldWidth - squareSize) / 2
	cy := (fieldHeight - squareSize) / 2
	for i := 0; i < GridSize; i++ {
		col := i%3 - 1
		row := i/3 - 1
		l.Squares[i] = model.Rect{
			X: cx + col*squareSpacer,
			Y: cy + row*squareSpacer,
			W: squareSize,
			H: squareSize,
		}
	}
	for i := range l.MenuButtons {
		l.MenuButtons[i] = model.Rect{
			X: (fieldWidth - menuWidth) / 2,
			Y: menuTop + i*menuSpacer,
			W: menuWidth,
			H: buttonHeight,
		}
	}
	l.Start = model.Rect{X: (fieldWidth - buttonWidth) / 2, Y: fieldHeight - startBottom, W: buttonWidth, H: buttonHeight}
	l.Save = model.Rect{X: (fieldWidth-buttonWidth)/2 - endSpread, Y: fieldHeight - endBottom, W: buttonWidth, H: buttonHeight}
	l.Try = model.Rect{X: (fieldWidth-buttonWidth)/2 + endSpread, Y: fieldHeight - endBottom, W: buttonWidth, H: buttonHeight}
	return l
}
