// Package generator produces the randomized values the mini-games draw from.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/humanbench/internal/model"
)

const (
	// MinWaitMs and MaxWaitMs bound the reaction wait, inclusive.
	MinWaitMs = 1500
	MaxWaitMs = 3500
)

// Source is the random source. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator draws every random value for a session from one source.
type Generator struct {
	rnd Source
}

// New returns a Generator backed by src.
func New(src Source) *Generator {
	return &Generator{rnd: src}
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// NewRandom returns a Generator seeded with the current time.
func NewRandom() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NextIndex returns an index in [0, gridSize) that differs from prev.
// A negative prev means there is no previous entry.
func (g *Generator) NextIndex(prev, gridSize int) int {
	if gridSize <= 0 {
		panic(fmt.Sprintf("generator: grid size %d", gridSize))
	}
	if prev >= gridSize {
		panic(fmt.Sprintf("generator: previous index %d outside grid of %d", prev, gridSize))
	}
	if prev < 0 || gridSize == 1 {
		return g.rnd.Intn(gridSize)
	}
	// Draw from the gridSize-1 remaining cells and skip over prev.
	n := g.rnd.Intn(gridSize - 1)
	if n >= prev {
		n++
	}
	return n
}

// WaitDuration returns a reaction wait in [MinWaitMs, MaxWaitMs] milliseconds.
func (g *Generator) WaitDuration() int {
	return g.IntRange(MinWaitMs, MaxWaitMs+1)
}

// IntRange returns a value in [lo, hi).
func (g *Generator) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo)
}

// TargetRect places an icon-sized rectangle so it lies fully inside field.
func (g *Generator) TargetRect(field, icon model.Size) model.Rect {
	x := g.IntRange(0, field.W-icon.W+1)
	y := g.IntRange(0, field.H-icon.H+1)
	return model.Rect{X: x, Y: y, W: icon.W, H: icon.H}
}
