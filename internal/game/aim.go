package game

import (
	"fmt"

	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/hit"
	"github.com/verte-zerg/humanbench/internal/input"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/timer"
)

// AimTargets is the number of targets in an aim session.
const AimTargets = 30

// Aim times how long each of 30 randomly placed targets takes to hit.
// The round counter runs down from AimTargets-1 to 0.
type Aim struct {
	gen    *generator.Generator
	field  model.Size
	icon   model.Size
	round  int
	clock  *timer.Timer
	times  [AimTargets]int
	target model.Rect
}

// NewAim returns an aim game with its first target placed.
func NewAim(gen *generator.Generator, layout Layout) *Aim {
	a := &Aim{
		gen:   gen,
		field: layout.Field,
		icon:  layout.Target,
		clock: timer.NewInfinite(true),
	}
	a.Reset()
	return a
}

// Mode implements Game.
func (a *Aim) Mode() model.GameMode { return model.Aim }

// Reset implements Game.
func (a *Aim) Reset() {
	a.round = AimTargets - 1
	a.times = [AimTargets]int{}
	a.clock.Reset(true)
	a.target = a.gen.TargetRect(a.field, a.icon)
}

// Update implements Game.
func (a *Aim) Update(deltaMs float64, in input.Frame) Event {
	a.clock.Update(deltaMs)
	a.times[a.round] = int(a.clock.Elapsed())
	if !in.Pressed || !a.Hits(in.Pos) {
		return Event{}
	}
	a.clock.Reset(true)
	a.round--
	if a.round < 0 {
		ev := ended(MeanScore(a.times[:]), a.times[:])
		a.Reset()
		return ev
	}
	a.target = a.gen.TargetRect(a.field, a.icon)
	return Event{Kind: EventRoundAdvanced}
}

// Hits reports whether p lands on the current target. The rectangle check
// filters; the circle derived from the icon width decides.
func (a *Aim) Hits(p model.Point) bool {
	if !hit.RectContains(a.target, p) {
		return false
	}
	return hit.CircleContains(a.target.Center(), hit.IconRadius(a.icon), p)
}

// Target returns the current target rectangle.
func (a *Aim) Target() model.Rect { return a.target }

// Remaining returns how many targets are left, counting the current one.
func (a *Aim) Remaining() int { return a.round + 1 }

// RemainingText is the counter label shown above the field.
func (a *Aim) RemainingText() string { return fmt.Sprintf("Remaining %d", a.Remaining()) }

// Times returns a copy of the per-target times, indexed by round counter.
func (a *Aim) Times() []int {
	out := make([]int, AimTargets)
	copy(out, a.times[:])
	return out
}
