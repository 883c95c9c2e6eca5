// Package replay drives a session controller from a recorded pointer script.
package replay

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/verte-zerg/humanbench/internal/game"
	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/session"
)

// Script is a seeded list of pointer steps.
type Script struct {
	Seed  int64  `toml:"seed"`
	Steps []Step `toml:"step"`
}

// Step is one tick, optionally repeated.
type Step struct {
	Delta   float64 `toml:"delta"`
	X       int     `toml:"x"`
	Y       int     `toml:"y"`
	Pressed bool    `toml:"pressed"`
	Repeat  *int    `toml:"repeat"`
}

// Times returns how many ticks the step expands to.
func (s Step) Times() int {
	if s.Repeat == nil {
		return 1
	}
	return *s.Repeat
}

// Record is a tick that produced an event or a phase change.
type Record struct {
	Tick  int
	Phase model.Phase
	Mode  model.GameMode
	Event game.Event
}

func (r Record) String() string {
	s := fmt.Sprintf("%5d %-8s %-8s", r.Tick, r.Phase, r.Mode)
	switch r.Event.Kind {
	case game.EventNone:
	case game.EventSessionEnded:
		s += fmt.Sprintf(" %s score=%d %s", r.Event.Kind, r.Event.Score, r.Mode.Unit())
	default:
		s += " " + r.Event.Kind.String()
	}
	return s
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML script.
func Parse(data []byte) (Script, error) {
	var sc Script
	if _, err := toml.Decode(string(data), &sc); err != nil {
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Script{}, err
	}
	return sc, nil
}

// Validate checks every step.
func (sc Script) Validate() error {
	for i, st := range sc.Steps {
		if st.Delta < 0 {
			return fmt.Errorf("step %d: delta must be >= 0", i)
		}
		if st.Times() < 1 {
			return fmt.Errorf("step %d: repeat must be >= 1", i)
		}
	}
	return nil
}

// Run plays the script against a fresh controller and returns the notable ticks.
func Run(sc Script, layout game.Layout, logger *zap.Logger) []Record {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := session.New(layout, generator.NewSeeded(sc.Seed), session.WithLogger(logger))
	var out []Record
	tick := 0
	for _, st := range sc.Steps {
		pointer := model.PointerState{Pos: model.Point{X: st.X, Y: st.Y}, LeftPressed: st.Pressed}
		for n := st.Times(); n > 0; n-- {
			before := c.Phase()
			ev := c.Update(st.Delta, pointer)
			if ev.Kind != game.EventNone || c.Phase() != before {
				out = append(out, Record{Tick: tick, Phase: c.Phase(), Mode: c.Mode(), Event: ev})
			}
			tick++
		}
	}
	logger.Debug("replay finished", zap.Int("ticks", tick), zap.Int("records", len(out)))
	return out
}
