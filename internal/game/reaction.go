package game

import (
	"fmt"

	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/input"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/timer"
)

// ReactionRounds is the number of timed clicks in a reaction session.
const ReactionRounds = 5

// ReactionState is the reaction game's sub-state.
type ReactionState int

const (
	ReactionWait ReactionState = iota
	ReactionClick
	ReactionReClick
	ReactionFinish
)

func (s ReactionState) String() string {
	switch s {
	case ReactionWait:
		return "wait"
	case ReactionClick:
		return "click"
	case ReactionReClick:
		return "reclick"
	case ReactionFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Reaction measures the delay between the screen turning green and a click.
type Reaction struct {
	gen   *generator.Generator
	state ReactionState
	round int
	wait  *timer.Timer
	click *timer.Timer
	times [ReactionRounds]int
}

// NewReaction returns a reaction game ready at round 0.
func NewReaction(gen *generator.Generator) *Reaction {
	r := &Reaction{gen: gen, click: timer.NewInfinite(false)}
	r.Reset()
	return r
}

// Mode implements Game.
func (r *Reaction) Mode() model.GameMode { return model.Reaction }

// Reset implements Game.
func (r *Reaction) Reset() {
	r.round = 0
	r.times = [ReactionRounds]int{}
	r.click.Reset(false)
	r.enterWait()
}

// Update implements Game.
func (r *Reaction) Update(deltaMs float64, in input.Frame) Event {
	switch r.state {
	case ReactionWait:
		r.wait.Update(deltaMs)
		if in.Pressed {
			r.state = ReactionReClick
			return Event{}
		}
		if r.wait.IsFinished() {
			r.state = ReactionClick
			r.click.Reset(true)
		}
	case ReactionClick:
		r.click.Update(deltaMs)
		r.times[r.round] = int(r.click.Elapsed())
		if !in.Pressed {
			return Event{}
		}
		r.click.Reset(false)
		if r.round >= ReactionRounds-1 {
			ev := ended(MeanScore(r.times[:]), r.times[:])
			r.Reset()
			return ev
		}
		r.state = ReactionFinish
	case ReactionReClick:
		if in.Pressed {
			r.enterWait()
		}
	case ReactionFinish:
		if in.Pressed {
			r.round++
			r.enterWait()
			return Event{Kind: EventRoundAdvanced}
		}
	}
	return Event{}
}

func (r *Reaction) enterWait() {
	r.state = ReactionWait
	r.wait = mustTimer(float64(r.gen.WaitDuration()), true)
}

// State returns the current sub-state.
func (r *Reaction) State() ReactionState { return r.state }

// Round returns the zero-based round index.
func (r *Reaction) Round() int { return r.round }

// LastTime returns the time recorded for the current round.
func (r *Reaction) LastTime() int { return r.times[r.round] }

// Times returns a copy of the per-round times.
func (r *Reaction) Times() []int {
	out := make([]int, ReactionRounds)
	copy(out, r.times[:])
	return out
}

// WaitDuration returns the current wait timer's duration in ms.
func (r *Reaction) WaitDuration() float64 { return r.wait.Duration() }

// Info returns the display attributes for the current state.
func (r *Reaction) Info() StateInfo {
	info := ReactionStates[r.state]
	if r.state == ReactionFinish {
		info.Title = fmt.Sprintf("%d ms", r.LastTime())
	}
	return info
}
