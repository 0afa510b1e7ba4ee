package entity

import "time"

// ReviewStatus is the mastery state of one learner×card pair.
type ReviewStatus string

const (
	ReviewStatusNew      ReviewStatus = "new"
	ReviewStatusLearning ReviewStatus = "learning"
	ReviewStatusReview   ReviewStatus = "review"
	ReviewStatusMastered ReviewStatus = "mastered"
)

// ParseReviewStatus converts a stored value into a ReviewStatus, defaulting to New.
func ParseReviewStatus(raw string) ReviewStatus {
	switch ReviewStatus(raw) {
	case ReviewStatusLearning, ReviewStatusReview, ReviewStatusMastered:
		return ReviewStatus(raw)
	default:
		return ReviewStatusNew
	}
}

// Card is a vocabulary flashcard.
type Card struct {
	ID      int64
	Term    string
	Meaning string
}

// ReviewState is the spaced-repetition state of one learner×card pair.
// It does not exist until the first review.
type ReviewState struct {
	UserID         int64
	CardID         int64
	Status         ReviewStatus
	CorrectStreak  int
	ReviewCount    int
	NextReviewAt   time.Time
	LastReviewedAt time.Time
}

// ReviewLog records one review outcome. It is the activity source for streaks.
type ReviewLog struct {
	UserID     int64
	CardID     int64
	Remembered bool
	ReviewedAt time.Time
}
