package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
)

const (
	tableCards        = "cards"
	tableReviewStates = "review_states"
	tableReviewLogs   = "review_logs"
)

var reviewStateColumns = []string{
	"user_id", "card_id", "status", "correct_streak", "review_count", "next_review_at", "last_reviewed_at",
}

type cardRow struct {
	ID      int64  `sql:"id"`
	Term    string `sql:"term"`
	Meaning string `sql:"meaning"`
}

type reviewStateRow struct {
	UserID         int64     `sql:"user_id"`
	CardID         int64     `sql:"card_id"`
	Status         string    `sql:"status"`
	CorrectStreak  int       `sql:"correct_streak"`
	ReviewCount    int       `sql:"review_count"`
	NextReviewAt   time.Time `sql:"next_review_at"`
	LastReviewedAt time.Time `sql:"last_reviewed_at"`
}

func (row reviewStateRow) entity() entity.ReviewState {
	return entity.ReviewState{
		UserID:         row.UserID,
		CardID:         row.CardID,
		Status:         entity.ParseReviewStatus(row.Status),
		CorrectStreak:  row.CorrectStreak,
		ReviewCount:    row.ReviewCount,
		NextReviewAt:   row.NextReviewAt.UTC(),
		LastReviewedAt: row.LastReviewedAt.UTC(),
	}
}

type cardRepository struct {
	store
}

// NewCardRepository constructs the SQL-backed flashcard store.
func NewCardRepository(drv dialect.Driver) repository.CardRepository {
	return &cardRepository{store: newStore(drv)}
}

func (r *cardRepository) Create(ctx context.Context, card *entity.Card) (*entity.Card, error) {
	if card == nil {
		return nil, entity.InvalidArgumentf("card required")
	}
	id, err := scanInt64(ctx, r.drv, r.builder().Insert(tableCards).
		Columns("term", "meaning", "created_at").
		Values(card.Term, card.Meaning, time.Now().UTC()).
		Returning("id"))
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	created := *card
	created.ID = id
	return &created, nil
}

func (r *cardRepository) Get(ctx context.Context, id int64) (*entity.Card, error) {
	b := r.builder()
	t := b.Table(tableCards)
	var rows []cardRow
	if err := scanAll(ctx, r.drv, b.Select(t.Columns("id", "term", "meaning")...).From(t).Where(sql.EQ(t.C("id"), id)), &rows); err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrCardNotFound
	}
	return &entity.Card{ID: rows[0].ID, Term: rows[0].Term, Meaning: rows[0].Meaning}, nil
}

type reviewStateRepository struct {
	store
}

// NewReviewStateRepository constructs the SQL-backed review state store.
func NewReviewStateRepository(drv dialect.Driver) repository.ReviewStateRepository {
	return &reviewStateRepository{store: newStore(drv)}
}

func (r *reviewStateRepository) Get(ctx context.Context, userID, cardID int64) (*entity.ReviewState, error) {
	b := r.builder()
	t := b.Table(tableReviewStates)
	var rows []reviewStateRow
	err := scanAll(ctx, r.drv, b.Select(t.Columns(reviewStateColumns...)...).
		From(t).
		Where(sql.And(sql.EQ(t.C("user_id"), userID), sql.EQ(t.C("card_id"), cardID))), &rows)
	if err != nil {
		return nil, fmt.Errorf("get review state: %w", err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrReviewStateNotFound
	}
	state := rows[0].entity()
	return &state, nil
}

func (r *reviewStateRepository) Save(ctx context.Context, state entity.ReviewState, log entity.ReviewLog) (*entity.ReviewState, error) {
	state.NextReviewAt = state.NextReviewAt.UTC()
	state.LastReviewedAt = state.LastReviewedAt.UTC()

	err := r.tx(ctx, func(tx dialect.Tx) error {
		b := r.builder()
		upsert := b.Insert(tableReviewStates).
			Columns(reviewStateColumns...).
			Values(
				state.UserID, state.CardID, string(state.Status),
				state.CorrectStreak, state.ReviewCount,
				state.NextReviewAt, state.LastReviewedAt,
			).
			OnConflict(
				sql.ConflictColumns("user_id", "card_id"),
				sql.ResolveWithNewValues(),
			)
		if _, err := exec(ctx, tx, upsert); err != nil {
			return translateError(err, entity.ErrCardNotFound)
		}

		ins := b.Insert(tableReviewLogs).
			Columns("user_id", "card_id", "remembered", "reviewed_at").
			Values(log.UserID, log.CardID, log.Remembered, log.ReviewedAt.UTC())
		if _, err := exec(ctx, tx, ins); err != nil {
			return translateError(err, entity.ErrCardNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save review state: %w", err)
	}
	return &state, nil
}

func (r *reviewStateRepository) ListDue(ctx context.Context, userID int64, now time.Time, limit int) ([]entity.ReviewState, error) {
	b := r.builder()
	t := b.Table(tableReviewStates)
	sel := b.Select(t.Columns(reviewStateColumns...)...).
		From(t).
		Where(sql.And(
			sql.EQ(t.C("user_id"), userID),
			sql.LTE(t.C("next_review_at"), now.UTC()),
			sql.NEQ(t.C("status"), string(entity.ReviewStatusMastered)),
		)).
		OrderBy(t.C("next_review_at"), t.C("card_id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	var rows []reviewStateRow
	if err := scanAll(ctx, r.drv, sel, &rows); err != nil {
		return nil, fmt.Errorf("list due review states: %w", err)
	}
	return lo.Map(rows, func(row reviewStateRow, _ int) entity.ReviewState { return row.entity() }), nil
}

func (r *reviewStateRepository) Delete(ctx context.Context, userID, cardID int64) error {
	n, err := exec(ctx, r.drv, r.builder().Delete(tableReviewStates).
		Where(sql.And(sql.EQ("user_id", userID), sql.EQ("card_id", cardID))))
	if err != nil {
		return fmt.Errorf("delete review state: %w", err)
	}
	if n == 0 {
		return entity.ErrReviewStateNotFound
	}
	return nil
}

func (r *reviewStateRepository) ActiveDates(ctx context.Context, userID int64) ([]time.Time, error) {
	dates, err := activeDates(ctx, r.store, tableReviewLogs, "reviewed_at", userID)
	if err != nil {
		return nil, fmt.Errorf("review dates: %w", err)
	}
	return dates, nil
}
