// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress defines the percentage sink batch engines report through.
// A sink receives integer percentages in [0, 100], never decreasing within
// one batch call. "No progress reporting" is the Discard sink, not a nil
// check inside the engines.
package progress

import "math"

// Sink accepts batch progress as an integer percentage.
type Sink interface {
	Update(percent int)
}

// Func adapts an ordinary function to a Sink.
type Func func(percent int)

// Update implements Sink.
func (f Func) Update(percent int) {
	f(percent)
}

// Discard is a Sink that ignores every update.
var Discard Sink = discard{}

type discard struct{}

func (discard) Update(int) {}

// OrDiscard returns s, or Discard when s is nil. Engines call it once at
// entry so the algorithms never branch on a missing sink.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}

// Percent converts a done/total item count into a rounded percentage.
// Percent(total, total) is exactly 100.
func Percent(done, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
