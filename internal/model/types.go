// Package model defines shared data structures.
package model

import "time"

// Config defines runtime settings resolved from flags and the config file.
type Config struct {
	Seed      int64
	FPS       int
	AltScreen bool
	Log       LogConfig
}

// LogConfig defines file logging settings. An empty File disables logging.
type LogConfig struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Point is a position in play-field coordinates.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned box. Containment is half-open on the right and bottom edges.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Center returns the midpoint of the rectangle using integer division.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// PointerState is one sample of the pointer.
type PointerState struct {
	Pos         Point
	LeftPressed bool
}

// GameMode selects one of the mini-games.
type GameMode int

const (
	Reaction GameMode = iota
	Aim
	Sequence
)

// Modes lists every game mode in menu order.
var Modes = []GameMode{Reaction, Aim, Sequence}

func (m GameMode) String() string {
	switch m {
	case Reaction:
		return "reaction"
	case Aim:
		return "aim"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Title returns the human-readable game name.
func (m GameMode) Title() string {
	switch m {
	case Reaction:
		return "Reaction Time"
	case Aim:
		return "Aim Trainer"
	case Sequence:
		return "Sequence Memory"
	default:
		return "Unknown"
	}
}

// Unit returns the unit scores for the mode are reported in.
func (m GameMode) Unit() Unit {
	if m == Sequence {
		return Points
	}
	return Millis
}

// LowerIsBetter reports whether smaller scores rank higher for the mode.
func (m GameMode) LowerIsBetter() bool {
	return m != Sequence
}

// ParseGameMode maps a mode name back to its GameMode.
func ParseGameMode(s string) (GameMode, bool) {
	for _, m := range Modes {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Phase is the outer session state.
type Phase int

const (
	Menu Phase = iota
	Pregame
	Playing
	Endgame
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Pregame:
		return "pregame"
	case Playing:
		return "playing"
	case Endgame:
		return "endgame"
	default:
		return "unknown"
	}
}

// Unit labels a score.
type Unit string

const (
	Millis Unit = "ms"
	Points Unit = "pts"
)

// ScoreRecord is the latest and best score for a mode.
type ScoreRecord struct {
	Mode    GameMode
	Raw     int
	Best    int
	HasBest bool
	Unit    Unit
}

// SessionResult captures a saved game session.
type SessionResult struct {
	ID      string
	Mode    GameMode
	Score   int
	Unit    Unit
	Rounds  []int
	EndedAt time.Time
}

// ModeSummary aggregates saved results for one mode.
type ModeSummary struct {
	Mode     GameMode
	Sessions int
	Best     int
	Mean     int
	RoundSD  float64
	Scores   []int
}
