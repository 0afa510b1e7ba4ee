// Package srs implements the spaced-repetition state machine for vocabulary cards.
package srs

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Policy holds the scheduling constants. The zero value is not usable; start from
// DefaultPolicy and override fields.
type Policy struct {
	// Intervals is the delay after the n-th consecutive success, capped at the last entry.
	Intervals []time.Duration
	// ReviewThreshold is the streak from which a card is in Review.
	ReviewThreshold int
	// MasteredThreshold is the streak from which a card is Mastered.
	MasteredThreshold int
	// RelearnDelay is the delay after a lapse.
	RelearnDelay time.Duration
}

// DefaultPolicy returns the standard schedule: 1, 3, 7, 14, 30 and 60 days, Review at a
// streak of 3, Mastered at 5, and a 10 minute relearn delay.
func DefaultPolicy() Policy {
	return Policy{
		Intervals:         []time.Duration{1 * day, 3 * day, 7 * day, 14 * day, 30 * day, 60 * day},
		ReviewThreshold:   3,
		MasteredThreshold: 5,
		RelearnDelay:      10 * time.Minute,
	}
}

// IntervalsFromDays converts a list of day counts into durations.
func IntervalsFromDays(days []int) []time.Duration {
	out := make([]time.Duration, len(days))
	for i, d := range days {
		out[i] = time.Duration(d) * day
	}
	return out
}

// Validate reports whether the policy can schedule every transition.
func (p Policy) Validate() error {
	if len(p.Intervals) == 0 {
		return fmt.Errorf("srs policy: at least one interval is required")
	}
	for i, iv := range p.Intervals {
		if iv <= 0 {
			return fmt.Errorf("srs policy: interval %d must be positive, got %s", i, iv)
		}
		if i > 0 && iv < p.Intervals[i-1] {
			return fmt.Errorf("srs policy: intervals must be non-decreasing, %s follows %s", iv, p.Intervals[i-1])
		}
	}
	if p.ReviewThreshold < 1 {
		return fmt.Errorf("srs policy: review threshold must be at least 1, got %d", p.ReviewThreshold)
	}
	if p.MasteredThreshold < p.ReviewThreshold {
		return fmt.Errorf("srs policy: mastered threshold %d below review threshold %d", p.MasteredThreshold, p.ReviewThreshold)
	}
	if p.RelearnDelay <= 0 {
		return fmt.Errorf("srs policy: relearn delay must be positive, got %s", p.RelearnDelay)
	}
	return nil
}
