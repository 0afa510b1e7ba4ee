package srs

import (
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// Apply returns the state that follows prev after one review at now. A nil prev is the
// implicit New state of a card that has never been reviewed. Every status accepts both
// outcomes, Mastered included.
func Apply(policy Policy, prev *entity.ReviewState, remembered bool, now time.Time) entity.ReviewState {
	next := entity.ReviewState{Status: entity.ReviewStatusNew}
	if prev != nil {
		next = *prev
	}

	now = now.UTC()
	next.ReviewCount++
	next.LastReviewedAt = now

	if !remembered {
		next.CorrectStreak = 0
		next.Status = entity.ReviewStatusLearning
		next.NextReviewAt = now.Add(policy.RelearnDelay)
		return next
	}

	next.CorrectStreak++
	next.Status = policy.statusFor(next.CorrectStreak)
	next.NextReviewAt = now.Add(policy.interval(next.CorrectStreak))
	return next
}

// IsDue reports whether the card belongs in the default review queue at now.
func IsDue(state entity.ReviewState, now time.Time) bool {
	return state.Status != entity.ReviewStatusMastered && !state.NextReviewAt.After(now)
}

func (p Policy) statusFor(streak int) entity.ReviewStatus {
	switch {
	case streak >= p.MasteredThreshold:
		return entity.ReviewStatusMastered
	case streak >= p.ReviewThreshold:
		return entity.ReviewStatusReview
	default:
		return entity.ReviewStatusLearning
	}
}

func (p Policy) interval(streak int) time.Duration {
	if len(p.Intervals) == 0 {
		return p.RelearnDelay
	}
	idx := min(streak-1, len(p.Intervals)-1)
	if idx < 0 {
		idx = 0
	}
	return p.Intervals[idx]
}
