// Package game implements the reaction, aim, and sequence mini-games.
//
// Each game is a tick-driven state machine. Callers feed elapsed milliseconds
// and a resolved input frame; games never read the wall clock.
package game

import (
	"fmt"

	"github.com/verte-zerg/humanbench/internal/input"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/timer"
)

// EventKind classifies the outcome of a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventRoundAdvanced
	EventSessionEnded
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventRoundAdvanced:
		return "round-advanced"
	case EventSessionEnded:
		return "session-ended"
	default:
		return "unknown"
	}
}

// Event is returned from every Update.
type Event struct {
	Kind   EventKind
	Score  int
	Rounds []int
}

// Game is a mini-game state machine.
type Game interface {
	Mode() model.GameMode
	Update(deltaMs float64, in input.Frame) Event
	Reset()
}

// MeanScore is the truncating integer mean used for timed games.
func MeanScore(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}

func ended(score int, rounds []int) Event {
	var cp []int
	if len(rounds) > 0 {
		cp = make([]int, len(rounds))
		copy(cp, rounds)
	}
	return Event{Kind: EventSessionEnded, Score: score, Rounds: cp}
}

func mustTimer(durationMs float64, active bool) *timer.Timer {
	t, err := timer.New(durationMs, active)
	if err != nil {
		panic(fmt.Sprintf("game: timer of %vms: %v", durationMs, err))
	}
	return t
}
