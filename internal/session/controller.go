// Package session drives the menu, pregame, game, and endgame flow.
package session

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/verte-zerg/humanbench/internal/game"
	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/hit"
	"github.com/verte-zerg/humanbench/internal/input"
	"github.com/verte-zerg/humanbench/internal/model"
)

// Recorder receives saved results.
type Recorder interface {
	InsertResult(ctx context.Context, result *model.SessionResult) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder sends every saved result to r.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Hover holds which UI regions the pointer is over.
type Hover struct {
	Menu  [3]bool
	Start bool
	Try   bool
	Save  bool
}

// Controller is the outer state machine. It owns one instance of each game.
type Controller struct {
	layout   game.Layout
	phase    model.Phase
	mode     model.GameMode
	reaction *game.Reaction
	aim      *game.Aim
	sequence *game.Sequence
	sampler  input.Sampler
	hover    Hover
	last     game.Event
	scores   [3]model.ScoreRecord
	recorder Recorder
	logger   *zap.Logger
}

// New returns a controller at the menu.
func New(layout game.Layout, gen *generator.Generator, opts ...Option) *Controller {
	c := &Controller{
		layout:   layout,
		phase:    model.Menu,
		reaction: game.NewReaction(gen),
		aim:      game.NewAim(gen, layout),
		sequence: game.NewSequence(gen, layout),
		logger:   zap.NewNop(),
	}
	for _, m := range model.Modes {
		c.scores[m] = model.ScoreRecord{Mode: m, Best: bestSentinel(m), Unit: m.Unit()}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Update advances the session by one tick.
func (c *Controller) Update(deltaMs float64, pointer model.PointerState) game.Event {
	f := c.sampler.Next(pointer)
	switch c.phase {
	case model.Menu:
		c.updateMenu(f)
	case model.Pregame:
		c.updatePregame(f)
	case model.Playing:
		return c.updatePlaying(deltaMs, f)
	case model.Endgame:
		c.updateEndgame(f)
	}
	return game.Event{}
}

func (c *Controller) updateMenu(f input.Frame) {
	for i, r := range c.layout.MenuButtons {
		c.hover.Menu[i] = hit.RectContains(r, f.Pos)
	}
	if !f.Pressed {
		return
	}
	if i := hit.AnyRect(c.layout.MenuButtons[:], f.Pos); i >= 0 {
		c.Select(model.Modes[i])
	}
}

func (c *Controller) updatePregame(f input.Frame) {
	c.hover.Start = hit.RectContains(c.layout.Start, f.Pos)
	if f.Pressed && c.hover.Start {
		c.Start()
	}
}

func (c *Controller) updatePlaying(deltaMs float64, f input.Frame) game.Event {
	ev := c.active().Update(deltaMs, f)
	switch ev.Kind {
	case game.EventRoundAdvanced:
		c.logger.Debug("round advanced", zap.Stringer("mode", c.mode))
	case game.EventSessionEnded:
		c.last = ev
		c.scores[c.mode].Raw = ev.Score
		c.logger.Info("session ended",
			zap.Stringer("mode", c.mode),
			zap.Int("score", ev.Score),
			zap.String("unit", string(c.mode.Unit())),
		)
		c.setPhase(model.Endgame)
	}
	return ev
}

func (c *Controller) updateEndgame(f input.Frame) {
	c.hover.Try = hit.RectContains(c.layout.Try, f.Pos)
	c.hover.Save = hit.RectContains(c.layout.Save, f.Pos)
	if !f.Pressed {
		return
	}
	switch {
	case c.hover.Try:
		c.Retry()
	case c.hover.Save:
		c.Save()
	}
}

// Select picks a game from the menu and opens its pregame screen.
func (c *Controller) Select(mode model.GameMode) bool {
	if c.phase != model.Menu {
		return false
	}
	c.mode = mode
	c.setPhase(model.Pregame)
	return true
}

// Start begins the selected game from a clean state.
func (c *Controller) Start() bool {
	if c.phase != model.Pregame {
		return false
	}
	c.active().Reset()
	c.setPhase(model.Playing)
	return true
}

// Retry plays the same game again without saving.
func (c *Controller) Retry() bool {
	if c.phase != model.Endgame {
		return false
	}
	c.setPhase(model.Playing)
	return true
}

// Save updates the best score, records the result, and returns to the menu.
func (c *Controller) Save() bool {
	if c.phase != model.Endgame {
		return false
	}
	rec := &c.scores[c.mode]
	if isBetter(c.mode, c.last.Score, rec.Best) {
		rec.Best = c.last.Score
		c.logger.Info("new best score", zap.Stringer("mode", c.mode), zap.Int("best", rec.Best))
	}
	if c.recorder != nil {
		result := &model.SessionResult{
			Mode:   c.mode,
			Score:  c.last.Score,
			Unit:   c.mode.Unit(),
			Rounds: c.last.Rounds,
		}
		if err := c.recorder.InsertResult(context.Background(), result); err != nil {
			c.logger.Error("failed to record result", zap.Stringer("mode", c.mode), zap.Error(err))
		}
	}
	c.setPhase(model.Menu)
	return true
}

// Abort returns to the menu from any phase, discarding a game in progress.
func (c *Controller) Abort() bool {
	if c.phase == model.Menu {
		return false
	}
	if c.phase == model.Playing {
		c.active().Reset()
	}
	c.setPhase(model.Menu)
	return true
}

func (c *Controller) setPhase(p model.Phase) {
	c.logger.Debug("phase change",
		zap.Stringer("from", c.phase),
		zap.Stringer("to", p),
		zap.Stringer("mode", c.mode),
	)
	c.phase = p
	c.hover = Hover{}
}

func (c *Controller) active() game.Game {
	switch c.mode {
	case model.Reaction:
		return c.reaction
	case model.Aim:
		return c.aim
	default:
		return c.sequence
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() model.Phase { return c.phase }

// Mode returns the selected game mode.
func (c *Controller) Mode() model.GameMode { return c.mode }

// LastScore returns the most recent final score.
func (c *Controller) LastScore() int { return c.last.Score }

// Hover returns the UI hover flags.
func (c *Controller) Hover() Hover { return c.hover }

// Layout returns the layout the controller hit-tests against.
func (c *Controller) Layout() game.Layout { return c.layout }

// Record returns the score record for mode.
func (c *Controller) Record(mode model.GameMode) model.ScoreRecord {
	rec := c.scores[mode]
	rec.HasBest = rec.Best != bestSentinel(mode)
	return rec
}

// Reaction returns the reaction game.
func (c *Controller) Reaction() *game.Reaction { return c.reaction }

// Aim returns the aim game.
func (c *Controller) Aim() *game.Aim { return c.aim }

// Sequence returns the sequence game.
func (c *Controller) Sequence() *game.Sequence { return c.sequence }

func bestSentinel(mode model.GameMode) int {
	if mode.LowerIsBetter() {
		return math.MaxInt
	}
	return math.MinInt
}

func isBetter(mode model.GameMode, score, best int) bool {
	if mode.LowerIsBetter() {
		return score < best
	}
	return score > best
}
