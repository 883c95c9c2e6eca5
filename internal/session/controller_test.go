package session

import (
	"context"
	"errors"
	"testing"

	"github.com/verte-zerg/humanbench/internal/game"
	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/model"
)

type fixedSource struct{}

func (fixedSource) Intn(int) int { return 0 }

type fakeRecorder struct {
	results []model.SessionResult
	err     error
}

func (f *fakeRecorder) InsertResult(_ context.Context, r *model.SessionResult) error {
	f.results = append(f.results, *r)
	return f.err
}

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	return New(game.DefaultLayout(), generator.New(fixedSource{}), opts...)
}

func tick(c *Controller, deltaMs float64, p model.Point, down bool) game.Event {
	return c.Update(deltaMs, model.PointerState{Pos: p, LeftPressed: down})
}

func click(c *Controller, p model.Point) game.Event {
	ev := tick(c, 0, p, true)
	tick(c, 0, p, false)
	return ev
}

func open(t *testing.T, c *Controller, mode model.GameMode) {
	t.Helper()
	click(c, c.Layout().MenuButtons[mode].Center())
	if c.Phase() != model.Pregame || c.Mode() != mode {
		t.Fatalf("expected pregame for %s, got %s/%s", mode, c.Phase(), c.Mode())
	}
	click(c, c.Layout().Start.Center())
	if c.Phase() != model.Playing {
		t.Fatalf("expected playing, got %s", c.Phase())
	}
}

func playReaction(t *testing.T, c *Controller, times []int) {
	t.Helper()
	for i, tm := range times {
		tick(c, generator.MinWaitMs, model.Point{}, false)
		tick(c, float64(tm), model.Point{}, true)
		tick(c, 0, model.Point{}, false)
		if i < len(times)-1 {
			tick(c, 0, model.Point{}, true)
			tick(c, 0, model.Point{}, false)
		}
	}
	if c.Phase() != model.Endgame {
		t.Fatalf("expected endgame, got %s", c.Phase())
	}
}

func failSequenceAt(t *testing.T, c *Controller, level int) {
	t.Helper()
	s := c.Sequence()
	for i := 0; i <= level; i++ {
		tick(c, game.PrepareMs, model.Point{}, false)
		for range s.Order() {
			tick(c, game.SquareMs, model.Point{}, false)
		}
		if s.Phase() != game.SequenceInput {
			t.Fatalf("level %d: expected input, got %s", i, s.Phase())
		}
		order := s.Order()
		if i == level {
			click(c, s.Squares()[(order[0]+1)%game.GridSize].Center())
			break
		}
		for _, idx := range order {
			click(c, s.Squares()[idx].Center())
		}
	}
	if c.Phase() != model.Endgame {
		t.Fatalf("expected endgame, got %s", c.Phase())
	}
}

func TestReactionSessionFlow(t *testing.T) {
	rec := &fakeRecorder{}
	c := newController(t, WithRecorder(rec))
	if c.Phase() != model.Menu {
		t.Fatalf("expected menu, got %s", c.Phase())
	}
	if c.Record(model.Reaction).HasBest {
		t.Fatalf("best score should start unset")
	}

	open(t, c, model.Reaction)
	playReaction(t, c, []int{120, 200, 180, 150, 170})
	if c.LastScore() != 164 {
		t.Fatalf("expected 164, got %d", c.LastScore())
	}
	click(c, c.Layout().Save.Center())
	if c.Phase() != model.Menu {
		t.Fatalf("expected menu after save, got %s", c.Phase())
	}
	r := c.Record(model.Reaction)
	if !r.HasBest || r.Best != 164 || r.Raw != 164 || r.Unit != model.Millis {
		t.Fatalf("unexpected record %+v", r)
	}
	if len(rec.results) != 1 || rec.results[0].Score != 164 || len(rec.results[0].Rounds) != game.ReactionRounds {
		t.Fatalf("unexpected recorded results %+v", rec.results)
	}
}

func TestRetryKeepsModeAndSkipsRecording(t *testing.T) {
	rec := &fakeRecorder{}
	c := newController(t, WithRecorder(rec))
	open(t, c, model.Reaction)
	playReaction(t, c, []int{100, 100, 100, 100, 100})
	click(c, c.Layout().Try.Center())
	if c.Phase() != model.Playing || c.Mode() != model.Reaction {
		t.Fatalf("expected to replay reaction, got %s/%s", c.Phase(), c.Mode())
	}
	if c.Reaction().Round() != 0 {
		t.Fatalf("retry should start at round 0")
	}
	if len(rec.results) != 0 {
		t.Fatalf("retry must not record")
	}
	if c.Record(model.Reaction).HasBest {
		t.Fatalf("retry must not set a best score")
	}
}

func TestBestScoreLowerIsBetter(t *testing.T) {
	c := newController(t)
	sessions := [][]int{
		{300, 300, 300, 300, 300},
		{250, 250, 250, 250, 250},
		{400, 400, 400, 400, 400},
		{200, 200, 200, 200, 200},
	}
	want := []int{300, 250, 250, 200}
	prev := c.Record(model.Reaction).Best
	for i, times := range sessions {
		open(t, c, model.Reaction)
		playReaction(t, c, times)
		click(c, c.Layout().Save.Center())
		best := c.Record(model.Reaction).Best
		if best != want[i] {
			t.Fatalf("session %d: expected best %d, got %d", i, want[i], best)
		}
		if best > prev {
			t.Fatalf("best increased from %d to %d", prev, best)
		}
		prev = best
	}
}

func TestBestScoreHigherIsBetter(t *testing.T) {
	c := newController(t)
	levels := []int{0, 2, 1, 3}
	want := []int{1, 3, 3, 4}
	for i, level := range levels {
		open(t, c, model.Sequence)
		failSequenceAt(t, c, level)
		if c.LastScore() != level+1 {
			t.Fatalf("session %d: expected score %d, got %d", i, level+1, c.LastScore())
		}
		c.Save()
		r := c.Record(model.Sequence)
		if r.Best != want[i] || r.Unit != model.Points {
			t.Fatalf("session %d: expected best %d pts, got %+v", i, want[i], r)
		}
	}
}

func TestAimSessionThroughController(t *testing.T) {
	c := newController(t)
	open(t, c, model.Aim)
	a := c.Aim()
	for i := 0; i < game.AimTargets; i++ {
		tick(c, 50, model.Point{}, false)
		click(c, a.Target().Center())
	}
	if c.Phase() != model.Endgame || c.LastScore() != 50 {
		t.Fatalf("expected endgame with 50, got %s with %d", c.Phase(), c.LastScore())
	}
}

func TestRecorderErrorIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	c := newController(t, WithRecorder(rec))
	open(t, c, model.Reaction)
	playReaction(t, c, []int{100, 100, 100, 100, 100})
	if !c.Save() {
		t.Fatalf("save should succeed")
	}
	if c.Phase() != model.Menu || c.Record(model.Reaction).Best != 100 {
		t.Fatalf("best score should be kept in memory")
	}
}

func TestAbortResetsGame(t *testing.T) {
	c := newController(t)
	open(t, c, model.Aim)
	click(c, c.Aim().Target().Center())
	if c.Aim().Remaining() != game.AimTargets-1 {
		t.Fatalf("expected one hit")
	}
	if !c.Abort() || c.Phase() != model.Menu {
		t.Fatalf("abort should return to menu")
	}
	if c.Aim().Remaining() != game.AimTargets {
		t.Fatalf("abort should reset the game")
	}
	if c.Abort() {
		t.Fatalf("abort at menu should be a no-op")
	}
}

func TestKeyboardTransitionsRespectPhase(t *testing.T) {
	c := newController(t)
	if c.Start() || c.Retry() || c.Save() {
		t.Fatalf("transitions outside their phase must be rejected")
	}
	if !c.Select(model.Sequence) || c.Phase() != model.Pregame {
		t.Fatalf("select should open pregame")
	}
	if c.Select(model.Aim) {
		t.Fatalf("select outside the menu must be rejected")
	}
	if !c.Start() || c.Phase() != model.Playing || c.Mode() != model.Sequence {
		t.Fatalf("start should begin the sequence game")
	}
}

func TestZeroDeltaIsIdempotent(t *testing.T) {
	c := newController(t)
	hover := c.Layout().MenuButtons[1].Center()
	for i := 0; i < 5; i++ {
		tick(c, 0, hover, false)
	}
	if c.Phase() != model.Menu {
		t.Fatalf("hovering must not change phase")
	}
	if !c.Hover().Menu[1] || c.Hover().Menu[0] {
		t.Fatalf("unexpected hover flags %+v", c.Hover())
	}
	open(t, c, model.Reaction)
	state := c.Reaction().State()
	for i := 0; i < 5; i++ {
		tick(c, 0, model.Point{}, false)
	}
	if c.Phase() != model.Playing || c.Reaction().State() != state {
		t.Fatalf("zero delta changed the game")
	}
}
