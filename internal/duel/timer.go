package duel

import (
	"fmt"
	"time"
)

// PlayerTimer is one side's countdown clock.
type PlayerTimer struct {
	Name      string
	Remaining time.Duration
	Active    bool
}

// Expired reports whether the clock has run out.
func (t PlayerTimer) Expired() bool {
	return t.Remaining <= 0
}

// Tick returns t after delta has elapsed. Inactive clocks do not move and
// Remaining never drops below zero.
func Tick(t PlayerTimer, delta time.Duration) PlayerTimer {
	if !t.Active || delta <= 0 {
		return t
	}
	t.Remaining = max(0, t.Remaining-delta)
	return t
}

// Penalize subtracts penalty from t, clamped at zero.
func Penalize(t PlayerTimer, penalty time.Duration) PlayerTimer {
	if penalty <= 0 {
		return t
	}
	t.Remaining = max(0, t.Remaining-penalty)
	return t
}

// FormatClock renders d as "MM:SS.t" (tenths of a second).
// 30450ms -> "00:30.4"
func FormatClock(d time.Duration) string {
	ms := max(0, d.Milliseconds())
	total := ms / 1000
	tenths := (ms % 1000) / 100
	return fmt.Sprintf("%02d:%02d.%d", total/60, total%60, tenths)
}
