package toeicv1

import "time"

type CreateCardRequest struct {
	Term    string `json:"term" validate:"required,max=255"`
	Meaning string `json:"meaning,omitempty"`
}

type Card struct {
	ID      int64  `json:"id"`
	Term    string `json:"term"`
	Meaning string `json:"meaning,omitempty"`
}

type ReviewRequest struct {
	UserID     int64 `json:"user_id" validate:"gt=0"`
	CardID     int64 `json:"card_id" validate:"gt=0"`
	Remembered bool  `json:"remembered"`
}

type GetStateRequest struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
	CardID int64 `json:"card_id" validate:"gt=0"`
}

type ResetRequest struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
	CardID int64 `json:"card_id" validate:"gt=0"`
}

type ReviewState struct {
	UserID         int64     `json:"user_id"`
	CardID         int64     `json:"card_id"`
	Status         string    `json:"status"`
	CorrectStreak  int       `json:"correct_streak"`
	ReviewCount    int       `json:"review_count"`
	NextReviewAt   time.Time `json:"next_review_at"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}

type ListDueRequest struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
	Limit  int32 `json:"limit,omitempty" validate:"gte=0,lte=500"`
}

type ListDueResponse struct {
	States []ReviewState `json:"states"`
}
