package game

import (
	"testing"

	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/input"
	"github.com/verte-zerg/humanbench/internal/model"
)

var offGrid = model.Point{X: 5, Y: 5}

func playback(t *testing.T, d *driver, s *Sequence) {
	t.Helper()
	if s.Phase() != SequencePrepare {
		t.Fatalf("expected prepare, got %s", s.Phase())
	}
	d.tick(PrepareMs, offGrid, false)
	order := s.Order()
	for i, idx := range order {
		if s.Phase() != SequencePlayback {
			t.Fatalf("square %d: expected playback, got %s", i, s.Phase())
		}
		lit := s.Lit()
		for j, on := range lit {
			if on != (j == idx) {
				t.Fatalf("square %d: lit flags %v, expected only %d", i, lit, idx)
			}
		}
		d.tick(SquareMs, offGrid, false)
	}
	if s.Phase() != SequenceInput {
		t.Fatalf("expected input, got %s", s.Phase())
	}
}

func repeatOrder(d *driver, s *Sequence) Event {
	var ev Event
	for _, idx := range s.Order() {
		ev = d.click(s.Squares()[idx].Center())
	}
	return ev
}

func TestSequencePrepareHoldsSquaresDark(t *testing.T) {
	s := NewSequence(generator.NewSeeded(5), DefaultLayout())
	d := &driver{g: s}
	d.tick(PrepareMs-1, offGrid, false)
	if s.Phase() != SequencePrepare {
		t.Fatalf("expected prepare, got %s", s.Phase())
	}
	if s.Lit() != [GridSize]bool{} {
		t.Fatalf("no square should be lit during prepare")
	}
}

func TestSequenceLevelsAdvance(t *testing.T) {
	s := NewSequence(generator.NewSeeded(5), DefaultLayout())
	d := &driver{g: s}
	for level := 0; level < 3; level++ {
		playback(t, d, s)
		if ev := repeatOrder(d, s); ev.Kind != EventRoundAdvanced {
			t.Fatalf("level %d: expected round advance, got %s", level, ev.Kind)
		}
		if s.Round() != level+1 || len(s.Order()) != level+2 {
			t.Fatalf("expected round %d with %d entries, got %d with %d", level+1, level+2, s.Round(), len(s.Order()))
		}
	}
	if s.LevelText() != "Level: 4" {
		t.Fatalf("unexpected label %q", s.LevelText())
	}
}

func TestSequenceWrongClickEndsWithLevel(t *testing.T) {
	s := NewSequence(generator.NewSeeded(8), DefaultLayout())
	d := &driver{g: s}
	for level := 0; level < 3; level++ {
		playback(t, d, s)
		repeatOrder(d, s)
	}
	playback(t, d, s)
	order := s.Order()
	if len(order) != 4 {
		t.Fatalf("expected 4 squares at round 3, got %d", len(order))
	}
	wrong := (order[0] + 1) % GridSize
	ev := d.click(s.Squares()[wrong].Center())
	if ev.Kind != EventSessionEnded || ev.Score != 4 {
		t.Fatalf("expected session end with 4, got %s with %d", ev.Kind, ev.Score)
	}
	if s.Round() != 0 || len(s.Order()) != 1 || s.Phase() != SequencePrepare {
		t.Fatalf("expected reset to round 0 with one entry, got round %d, %d entries, %s", s.Round(), len(s.Order()), s.Phase())
	}
}

func TestSequenceExhaustion(t *testing.T) {
	s := NewSequence(generator.NewSeeded(21), DefaultLayout())
	d := &driver{g: s}
	var ev Event
	for level := 0; level < SequenceRounds; level++ {
		playback(t, d, s)
		ev = repeatOrder(d, s)
	}
	if ev.Kind != EventSessionEnded || ev.Score != SequenceRounds+1 {
		t.Fatalf("expected session end with %d, got %s with %d", SequenceRounds+1, ev.Kind, ev.Score)
	}
	if s.Round() != 0 || len(s.Order()) != 1 {
		t.Fatalf("game should reset after exhaustion")
	}
}

func TestSequenceOrderHasNoAdjacentRepeats(t *testing.T) {
	s := NewSequence(generator.NewSeeded(99), DefaultLayout())
	d := &driver{g: s}
	for level := 0; level < SequenceRounds-1; level++ {
		playback(t, d, s)
		repeatOrder(d, s)
	}
	order := s.Order()
	for i := 1; i < len(order); i++ {
		if order[i] == order[i-1] {
			t.Fatalf("adjacent repeat at %d in %v", i, order)
		}
	}
}

func TestSequenceInputFeedback(t *testing.T) {
	s := NewSequence(generator.NewSeeded(5), DefaultLayout())
	d := &driver{g: s}
	playback(t, d, s)

	d.tick(0, offGrid, true)
	d.tick(0, offGrid, false)
	if s.Clicks() != 0 || s.Phase() != SequenceInput {
		t.Fatalf("release outside the grid should be ignored")
	}

	target := s.Squares()[s.Order()[0]].Center()
	d.tick(0, target, true)
	if !s.Lit()[s.Order()[0]] {
		t.Fatalf("held square should light up")
	}
	if s.Clicks() != 0 {
		t.Fatalf("press alone must not count")
	}
	if ev := d.tick(0, target, false); ev.Kind != EventRoundAdvanced {
		t.Fatalf("release should complete the level, got %s", ev.Kind)
	}
}

func TestSequenceZeroDeltaIsIdempotent(t *testing.T) {
	s := NewSequence(generator.NewSeeded(5), DefaultLayout())
	d := &driver{g: s}
	d.tick(PrepareMs/2, offGrid, false)
	for i := 0; i < 10; i++ {
		s.Update(0, input.Frame{Pos: offGrid})
	}
	if s.Phase() != SequencePrepare {
		t.Fatalf("zero delta advanced phase to %s", s.Phase())
	}
	d.tick(PrepareMs/2, offGrid, false)
	for i := 0; i < 10; i++ {
		s.Update(0, input.Frame{Pos: offGrid})
	}
	if s.Phase() != SequencePlayback {
		t.Fatalf("zero delta left playback: %s", s.Phase())
	}
}
