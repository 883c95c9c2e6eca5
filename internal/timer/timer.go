// Package timer provides the countdown and elapsed-time primitive used by the mini-games.
package timer

import (
	"errors"
	"math"
)

// Infinite is the duration sentinel for a timer that only measures elapsed time.
const Infinite = -1.0

// ErrInvalidDuration is returned for zero, negative, or NaN durations.
var ErrInvalidDuration = errors.New("invalid timer duration")

// Timer advances only while active. Time is supplied by the caller in milliseconds.
type Timer struct {
	duration float64
	elapsed  float64
	active   bool
}

// New returns a timer that finishes once durationMs has elapsed.
func New(durationMs float64, active bool) (*Timer, error) {
	if durationMs != Infinite && (math.IsNaN(durationMs) || durationMs <= 0) {
		return nil, ErrInvalidDuration
	}
	return &Timer{duration: durationMs, active: active}, nil
}

// NewInfinite returns a timer that never finishes.
func NewInfinite(active bool) *Timer {
	return &Timer{duration: Infinite, active: active}
}

// Update adds deltaMs to the elapsed time if the timer is active.
func (t *Timer) Update(deltaMs float64) {
	if !t.active || deltaMs <= 0 {
		return
	}
	t.elapsed += deltaMs
}

// IsFinished reports whether an active, finite timer has reached its duration.
func (t *Timer) IsFinished() bool {
	if t.duration == Infinite {
		return false
	}
	return t.active && t.elapsed >= t.duration
}

// IsActive reports whether the timer is counting.
func (t *Timer) IsActive() bool {
	return t.active
}

// Reset zeroes the elapsed time and sets the active flag.
func (t *Timer) Reset(active bool) {
	t.elapsed = 0
	t.active = active
}

// Elapsed returns the elapsed milliseconds.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the configured duration, or Infinite.
func (t *Timer) Duration() float64 {
	return t.duration
}
