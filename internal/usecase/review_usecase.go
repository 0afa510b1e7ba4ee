package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/srs"
)

// DefaultDueLimit bounds the due queue when the caller gives no limit.
const DefaultDueLimit = 50

// ReviewUsecase schedules vocabulary flashcards for a learner.
type ReviewUsecase interface {
	CreateCard(ctx context.Context, card *entity.Card) (*entity.Card, error)
	Review(ctx context.Context, userID, cardID int64, remembered bool) (*entity.ReviewState, error)
	GetState(ctx context.Context, userID, cardID int64) (*entity.ReviewState, error)
	DueCards(ctx context.Context, userID int64, limit int) ([]entity.ReviewState, error)
	Reset(ctx context.Context, userID, cardID int64) error
}

// NewReviewUsecase wires the card and state stores with a scheduling policy.
func NewReviewUsecase(cards repository.CardRepository, states repository.ReviewStateRepository, policy srs.Policy) ReviewUsecase {
	return &reviewUsecase{
		cards:  cards,
		states: states,
		policy: policy,
		clock:  time.Now,
	}
}

type reviewUsecase struct {
	cards  repository.CardRepository
	states repository.ReviewStateRepository
	policy srs.Policy
	clock  func() time.Time
}

func (u *reviewUsecase) CreateCard(ctx context.Context, card *entity.Card) (*entity.Card, error) {
	if card == nil || strings.TrimSpace(card.Term) == "" {
		return nil, entity.InvalidArgumentf("card term must not be empty")
	}
	c := *card
	c.Term = strings.TrimSpace(c.Term)
	c.Meaning = strings.TrimSpace(c.Meaning)
	return u.cards.Create(ctx, &c)
}

func (u *reviewUsecase) Review(ctx context.Context, userID, cardID int64, remembered bool) (*entity.ReviewState, error) {
	if userID <= 0 {
		return nil, entity.InvalidArgumentf("user id must be positive")
	}
	if cardID <= 0 {
		return nil, entity.ErrCardNotFound
	}
	if _, err := u.cards.Get(ctx, cardID); err != nil {
		return nil, err
	}

	prev, err := u.states.Get(ctx, userID, cardID)
	if err != nil {
		if !errors.Is(err, entity.ErrReviewStateNotFound) {
			return nil, err
		}
		prev = nil
	}

	now := u.clock().UTC()
	next := srs.Apply(u.policy, prev, remembered, now)
	next.UserID = userID
	next.CardID = cardID

	return u.states.Save(ctx, next, entity.ReviewLog{
		UserID:     userID,
		CardID:     cardID,
		Remembered: remembered,
		ReviewedAt: now,
	})
}

func (u *reviewUsecase) GetState(ctx context.Context, userID, cardID int64) (*entity.ReviewState, error) {
	return u.states.Get(ctx, userID, cardID)
}

func (u *reviewUsecase) DueCards(ctx context.Context, userID int64, limit int) ([]entity.ReviewState, error) {
	if userID <= 0 {
		return nil, entity.InvalidArgumentf("user id must be positive")
	}
	if limit <= 0 {
		limit = DefaultDueLimit
	}
	return u.states.ListDue(ctx, userID, u.clock().UTC(), limit)
}

func (u *reviewUsecase) Reset(ctx context.Context, userID, cardID int64) error {
	return u.states.Delete(ctx, userID, cardID)
}
