package game

import "github.com/verte-zerg/humanbench/internal/model"

// Tone is the background treatment a state asks for.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneAlert
	ToneGo
)

// StateInfo is the text and tone shown for a game state.
type StateInfo struct {
	Title       string
	Description string
	Tone        Tone
}

// ModeInfo is the pregame and endgame copy for a game mode.
type ModeInfo struct {
	Title       string
	Description string
}

// Intros maps each game mode to its pregame copy.
var Intros = map[model.GameMode]ModeInfo{
	model.Reaction: {Title: "Reaction Time Test", Description: "When the red box turns green, click as quickly as you can."},
	model.Aim:      {Title: "Aim Trainer", Description: "Hit 30 targets as quickly as you can."},
	model.Sequence: {Title: "Sequence Memory Test", Description: "Memorize the pattern."},
}

// ReactionStates maps each reaction state to its display attributes.
var ReactionStates = map[ReactionState]StateInfo{
	ReactionWait:    {Title: "Wait for green", Tone: ToneAlert},
	ReactionClick:   {Title: "Click!", Tone: ToneGo},
	ReactionReClick: {Title: "Too Soon!", Description: "Click to try again.", Tone: ToneNeutral},
	ReactionFinish:  {Description: "Click to keep going.", Tone: ToneNeutral},
}
