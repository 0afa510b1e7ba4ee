package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/pkg/filterexpr"
)

const (
	tableAttempts         = "attempts"
	tableAttemptAnswers   = "attempt_answers"
	tablePracticeSessions = "practice_sessions"
	tablePracticeAnswers  = "practice_answers"
)

var attemptColumns = []string{
	"id", "user_id", "test_id",
	"listening_correct", "reading_correct",
	"listening_scaled", "reading_scaled", "scaled_total",
	"completed_at",
}

type attemptRow struct {
	ID               int64     `sql:"id"`
	UserID           int64     `sql:"user_id"`
	TestID           int64     `sql:"test_id"`
	ListeningCorrect int       `sql:"listening_correct"`
	ReadingCorrect   int       `sql:"reading_correct"`
	ListeningScaled  int       `sql:"listening_scaled"`
	ReadingScaled    int       `sql:"reading_scaled"`
	ScaledTotal      int       `sql:"scaled_total"`
	CompletedAt      time.Time `sql:"completed_at"`
}

func (row attemptRow) entity() *entity.Attempt {
	return &entity.Attempt{
		ID:     row.ID,
		UserID: row.UserID,
		TestID: row.TestID,
		Raw: entity.RawScore{
			ListeningCorrect: row.ListeningCorrect,
			ReadingCorrect:   row.ReadingCorrect,
		},
		Scaled: entity.ScaledScore{
			Listening: row.ListeningScaled,
			Reading:   row.ReadingScaled,
			Total:     row.ScaledTotal,
		},
		CompletedAt: row.CompletedAt.UTC(),
	}
}

type answerRecordRow struct {
	QuestionID     int64  `sql:"question_id"`
	SelectedOption string `sql:"selected_option"`
	IsCorrect      bool   `sql:"is_correct"`
}

type completedAtRow struct {
	At time.Time `sql:"at"`
}

type attemptRepository struct {
	store
}

// NewAttemptRepository constructs the SQL-backed attempt store.
func NewAttemptRepository(drv dialect.Driver) repository.AttemptRepository {
	return &attemptRepository{store: newStore(drv)}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *entity.Attempt) (*entity.Attempt, error) {
	if attempt == nil {
		return nil, entity.InvalidArgumentf("attempt required")
	}
	created := *attempt
	created.CompletedAt = attempt.CompletedAt.UTC()
	created.Answers = append([]entity.AnswerRecord(nil), attempt.Answers...)

	err := r.tx(ctx, func(tx dialect.Tx) error {
		b := r.builder()
		id, err := scanInt64(ctx, tx, b.Insert(tableAttempts).
			Columns(attemptColumns[1:]...).
			Values(
				created.UserID, created.TestID,
				created.Raw.ListeningCorrect, created.Raw.ReadingCorrect,
				created.Scaled.Listening, created.Scaled.Reading, created.Scaled.Total,
				created.CompletedAt,
			).
			Returning("id"))
		if err != nil {
			return translateError(err, entity.ErrTestNotFound)
		}
		created.ID = id
		return insertAnswerRecords(ctx, tx, b, tableAttemptAnswers, "attempt_id", id, created.Answers)
	})
	if err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	return &created, nil
}

func (r *attemptRepository) Get(ctx context.Context, userID, id int64) (*entity.Attempt, error) {
	b := r.builder()
	t := b.Table(tableAttempts)
	var rows []attemptRow
	err := scanAll(ctx, r.drv, b.Select(t.Columns(attemptColumns...)...).
		From(t).
		Where(sql.And(sql.EQ(t.C("id"), id), sql.EQ(t.C("user_id"), userID))), &rows)
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrAttemptNotFound
	}
	attempt := rows[0].entity()

	answers, err := listAnswerRecords(ctx, r.drv, b, tableAttemptAnswers, "attempt_id", id)
	if err != nil {
		return nil, fmt.Errorf("get attempt answers: %w", err)
	}
	attempt.Answers = answers
	return attempt, nil
}

func (r *attemptRepository) List(ctx context.Context, query *repository.ListAttemptQuery) ([]*entity.Attempt, int64, error) {
	var p listAttemptsParams
	terms, err := filterexpr.Bind(query, &p, listAttemptsSchema)
	if err != nil {
		if errors.Is(err, filterexpr.ErrInvalid) {
			return nil, 0, fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err)
		}
		return nil, 0, err
	}

	b := r.builder()
	t := b.Table(tableAttempts)
	where := func() *sql.Predicate {
		preds := []*sql.Predicate{sql.EQ(t.C("user_id"), query.UserID)}
		if p.TestID != nil {
			preds = append(preds, sql.EQ(t.C("test_id"), *p.TestID))
		}
		if len(p.TestIDs) > 0 {
			preds = append(preds, sql.In(t.C("test_id"), lo.ToAnySlice(p.TestIDs)...))
		}
		if p.CompletedFrom != nil {
			preds = append(preds, sql.GTE(t.C("completed_at"), *p.CompletedFrom))
		}
		if p.CompletedTo != nil {
			preds = append(preds, sql.LTE(t.C("completed_at"), *p.CompletedTo))
		}
		for _, bound := range []struct {
			column   string
			min, max *int
		}{
			{"scaled_total", p.MinTotal, p.MaxTotal},
			{"listening_scaled", p.MinListening, p.MaxListening},
			{"reading_scaled", p.MinReading, p.MaxReading},
		} {
			if bound.min != nil {
				preds = append(preds, sql.GTE(t.C(bound.column), *bound.min))
			}
			if bound.max != nil {
				preds = append(preds, sql.LTE(t.C(bound.column), *bound.max))
			}
		}
		return sql.And(preds...)
	}

	total, err := scanInt64(ctx, r.drv, b.Select().Count().From(t).Where(where()))
	if err != nil {
		return nil, 0, fmt.Errorf("count attempts: %w", err)
	}

	sel := b.Select(t.Columns(attemptColumns...)...).From(t).Where(where())
	for _, term := range terms {
		if term.Desc {
			sel.OrderBy(sql.Desc(t.C(term.Column)))
		} else {
			sel.OrderBy(sql.Asc(t.C(term.Column)))
		}
	}
	sel.Limit(int(query.PageSize)).Offset(int(query.Offset()))

	var rows []attemptRow
	if err := scanAll(ctx, r.drv, sel, &rows); err != nil {
		return nil, 0, fmt.Errorf("list attempts: %w", err)
	}
	return lo.Map(rows, func(row attemptRow, _ int) *entity.Attempt { return row.entity() }), total, nil
}

func (r *attemptRepository) ActiveDates(ctx context.Context, userID int64) ([]time.Time, error) {
	dates, err := activeDates(ctx, r.store, tableAttempts, "completed_at", userID)
	if err != nil {
		return nil, fmt.Errorf("attempt dates: %w", err)
	}
	return dates, nil
}

type practiceRepository struct {
	store
}

// NewPracticeRepository constructs the SQL-backed practice session store.
func NewPracticeRepository(drv dialect.Driver) repository.PracticeRepository {
	return &practiceRepository{store: newStore(drv)}
}

func (r *practiceRepository) Create(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error) {
	if session == nil {
		return nil, entity.InvalidArgumentf("practice session required")
	}
	created := *session
	created.CompletedAt = session.CompletedAt.UTC()
	created.Answers = append([]entity.AnswerRecord(nil), session.Answers...)

	err := r.tx(ctx, func(tx dialect.Tx) error {
		b := r.builder()
		id, err := scanInt64(ctx, tx, b.Insert(tablePracticeSessions).
			Columns("user_id", "test_id", "part_number", "correct", "total", "completed_at").
			Values(created.UserID, created.TestID, created.PartNumber, created.Correct, created.Total, created.CompletedAt).
			Returning("id"))
		if err != nil {
			return translateError(err, entity.ErrTestNotFound)
		}
		created.ID = id
		return insertAnswerRecords(ctx, tx, b, tablePracticeAnswers, "session_id", id, created.Answers)
	})
	if err != nil {
		return nil, fmt.Errorf("create practice session: %w", err)
	}
	return &created, nil
}

func (r *practiceRepository) ActiveDates(ctx context.Context, userID int64) ([]time.Time, error) {
	dates, err := activeDates(ctx, r.store, tablePracticeSessions, "completed_at", userID)
	if err != nil {
		return nil, fmt.Errorf("practice dates: %w", err)
	}
	return dates, nil
}

func insertAnswerRecords(ctx context.Context, tx dialect.Tx, b *sql.DialectBuilder, table, ownerColumn string, ownerID int64, records []entity.AnswerRecord) error {
	if len(records) == 0 {
		return nil
	}
	ins := b.Insert(table).Columns(ownerColumn, "question_id", "selected_option", "is_correct")
	for _, rec := range records {
		ins.Values(ownerID, rec.QuestionID, string(rec.SelectedOption), rec.IsCorrect)
	}
	if _, err := exec(ctx, tx, ins); err != nil {
		return fmt.Errorf("insert answer records: %w", err)
	}
	return nil
}

func listAnswerRecords(ctx context.Context, eq dialect.ExecQuerier, b *sql.DialectBuilder, table, ownerColumn string, ownerID int64) ([]entity.AnswerRecord, error) {
	t := b.Table(table)
	var rows []answerRecordRow
	err := scanAll(ctx, eq, b.Select(t.C("question_id"), t.C("selected_option"), t.C("is_correct")).
		From(t).
		Where(sql.EQ(t.C(ownerColumn), ownerID)).
		OrderBy(t.C("id")), &rows)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row answerRecordRow, _ int) entity.AnswerRecord {
		return entity.AnswerRecord{
			QuestionID:     row.QuestionID,
			SelectedOption: entity.Option(row.SelectedOption),
			IsCorrect:      row.IsCorrect,
		}
	}), nil
}

// activeDates returns the distinct UTC days on which userID has a row in table.
// Days are computed in Go so that every dialect agrees on the day boundary.
func activeDates(ctx context.Context, s store, table, column string, userID int64) ([]time.Time, error) {
	b := s.builder()
	t := b.Table(table)
	var rows []completedAtRow
	err := scanAll(ctx, s.drv, b.Select(sql.As(t.C(column), "at")).
		From(t).
		Where(sql.EQ(t.C("user_id"), userID)), &rows)
	if err != nil {
		return nil, err
	}
	days := lo.Map(rows, func(row completedAtRow, _ int) time.Time { return entity.DayOf(row.At) })
	return lo.Uniq(days), nil
}
