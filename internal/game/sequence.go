package game

import (
	"fmt"

	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/hit"
	"github.com/verte-zerg/humanbench/internal/input"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/timer"
)

const (
	// SequenceRounds is the number of levels in a sequence session.
	SequenceRounds = 15
	// PrepareMs is the pause before playback starts.
	PrepareMs = 800
	// SquareMs is how long each square stays lit during playback.
	SquareMs = 500
)

// SequencePhase is the sub-state within a sequence level.
type SequencePhase int

const (
	SequencePrepare SequencePhase = iota
	SequencePlayback
	SequenceInput
)

func (p SequencePhase) String() string {
	switch p {
	case SequencePrepare:
		return "prepare"
	case SequencePlayback:
		return "playback"
	case SequenceInput:
		return "input"
	default:
		return "unknown"
	}
}

// Sequence plays back a growing pattern of squares for the player to repeat.
type Sequence struct {
	gen     *generator.Generator
	squares [GridSize]model.Rect

	phase   SequencePhase
	order   []int
	round   int
	shown   int
	clicks  int
	prepare *timer.Timer
	square  *timer.Timer
	lit     [GridSize]bool
}

// NewSequence returns a sequence game with its first entry generated.
func NewSequence(gen *generator.Generator, layout Layout) *Sequence {
	s := &Sequence{
		gen:     gen,
		squares: layout.Squares,
		order:   make([]int, 0, SequenceRounds),
		prepare: mustTimer(PrepareMs, true),
		square:  mustTimer(SquareMs, false),
	}
	s.Reset()
	return s
}

// Mode implements Game.
func (s *Sequence) Mode() model.GameMode { return model.Sequence }

// Reset implements Game.
func (s *Sequence) Reset() {
	s.round = 0
	s.order = s.order[:0]
	s.regenerate()
}

func (s *Sequence) regenerate() {
	if len(s.order) != s.round || len(s.order) >= SequenceRounds {
		panic(fmt.Sprintf("game: sequence length %d at round %d", len(s.order), s.round))
	}
	prev := -1
	if len(s.order) > 0 {
		prev = s.order[len(s.order)-1]
	}
	s.order = append(s.order, s.gen.NextIndex(prev, GridSize))
	s.shown = 0
	s.clicks = 0
	s.prepare.Reset(true)
	s.square.Reset(false)
	s.lit = [GridSize]bool{}
	s.phase = SequencePrepare
}

// Update implements Game.
func (s *Sequence) Update(deltaMs float64, in input.Frame) Event {
	switch s.phase {
	case SequencePrepare:
		s.prepare.Update(deltaMs)
		if s.prepare.IsFinished() {
			s.prepare.Reset(false)
			s.square.Reset(true)
			s.lit[s.order[0]] = true
			s.phase = SequencePlayback
		}
	case SequencePlayback:
		s.square.Update(deltaMs)
		if !s.square.IsFinished() {
			return Event{}
		}
		s.lit[s.order[s.shown]] = false
		s.shown++
		if s.shown == len(s.order) {
			s.square.Reset(false)
			s.phase = SequenceInput
			return Event{}
		}
		s.square.Reset(true)
		s.lit[s.order[s.shown]] = true
	case SequenceInput:
		return s.updateInput(in)
	}
	return Event{}
}

func (s *Sequence) updateInput(in input.Frame) Event {
	if in.Down {
		for i, r := range s.squares {
			s.lit[i] = hit.RectContains(r, in.Pos)
		}
		return Event{}
	}
	if !in.Released {
		return Event{}
	}
	s.lit = [GridSize]bool{}
	if hit.AnyRect(s.squares[:], in.Pos) < 0 {
		return Event{}
	}
	if !hit.RectContains(s.squares[s.order[s.clicks]], in.Pos) {
		ev := ended(s.round+1, nil)
		s.Reset()
		return ev
	}
	s.clicks++
	if s.clicks <= s.round {
		return Event{}
	}
	s.round++
	if s.round > SequenceRounds-1 {
		ev := ended(s.round+1, nil)
		s.Reset()
		return ev
	}
	s.regenerate()
	return Event{Kind: EventRoundAdvanced}
}

// Phase returns the current sub-state.
func (s *Sequence) Phase() SequencePhase { return s.phase }

// Round returns the zero-based level index.
func (s *Sequence) Round() int { return s.round }

// Level returns the one-based level number.
func (s *Sequence) Level() int { return s.round + 1 }

// LevelText is the level label shown above the grid.
func (s *Sequence) LevelText() string { return fmt.Sprintf("Level: %d", s.Level()) }

// Clicks returns how many squares of the current level have been repeated.
func (s *Sequence) Clicks() int { return s.clicks }

// Order returns a copy of the generated sequence.
func (s *Sequence) Order() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Lit returns the illumination flag for each square.
func (s *Sequence) Lit() [GridSize]bool { return s.lit }

// Squares returns the square rectangles.
func (s *Sequence) Squares() [GridSize]model.Rect { return s.squares }
