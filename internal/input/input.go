// Package input derives press and release edges from pointer samples.
package input

import "github.com/verte-zerg/humanbench/internal/model"

// Frame is one tick of pointer input with edges resolved.
type Frame struct {
	Pos      model.Point
	Down     bool
	Pressed  bool
	Released bool
}

// Derive compares two consecutive samples.
func Derive(prev, cur model.PointerState) Frame {
	return Frame{
		Pos:      cur.Pos,
		Down:     cur.LeftPressed,
		Pressed:  cur.LeftPressed && !prev.LeftPressed,
		Released: !cur.LeftPressed && prev.LeftPressed,
	}
}

// Sampler remembers the previous sample between ticks.
type Sampler struct {
	prev model.PointerState
}

// Next derives a frame from cur and stores it as the new previous sample.
func (s *Sampler) Next(cur model.PointerState) Frame {
	f := Derive(s.prev, cur)
	s.prev = cur
	return f
}

// Prev returns the last sample seen.
func (s *Sampler) Prev() model.PointerState {
	return s.prev
}
