package mapping

import (
	"github.com/samber/lo"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/internal/entity"
)

func ToPbCard(c *entity.Card) *toeicv1.Card {
	if c == nil {
		return nil
	}
	return &toeicv1.Card{ID: c.ID, Term: c.Term, Meaning: c.Meaning}
}

func ToPbReviewState(s *entity.ReviewState) *toeicv1.ReviewState {
	if s == nil {
		return nil
	}
	return &toeicv1.ReviewState{
		UserID:         s.UserID,
		CardID:         s.CardID,
		Status:         string(s.Status),
		CorrectStreak:  s.CorrectStreak,
		ReviewCount:    s.ReviewCount,
		NextReviewAt:   s.NextReviewAt.UTC(),
		LastReviewedAt: s.LastReviewedAt.UTC(),
	}
}

func ToPbReviewStates(in []entity.ReviewState) []toeicv1.ReviewState {
	return lo.Map(in, func(s entity.ReviewState, _ int) toeicv1.ReviewState { return *ToPbReviewState(&s) })
}

func ToPbStreakSummary(s *entity.StreakSummary) *toeicv1.StreakSummary {
	if s == nil {
		return nil
	}
	return &toeicv1.StreakSummary{Current: s.Current, Longest: s.Longest, TotalActiveDays: s.TotalActiveDays}
}
