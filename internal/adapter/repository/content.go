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
	tableTests     = "tests"
	tableParts     = "parts"
	tableGroups    = "question_groups"
	tableQuestions = "questions"
	tableAnswers   = "answers"
)

type testRow struct {
	ID    int64  `sql:"id"`
	Title string `sql:"title"`
}

type partRow struct {
	ID     int64 `sql:"id"`
	Number int   `sql:"number"`
}

type questionKeyRow struct {
	QuestionID    int64  `sql:"question_id"`
	CorrectOption string `sql:"correct_option"`
	PartNumber    int    `sql:"part_number"`
}

// blueprintRow is one LEFT JOIN row; child columns are NULL where a node has no children.
type blueprintRow struct {
	PartID          int64          `sql:"part_id"`
	PartNumber      int            `sql:"part_number"`
	GroupID         sql.NullInt64  `sql:"group_id"`
	GroupContent    sql.NullString `sql:"group_content"`
	QuestionID      sql.NullInt64  `sql:"question_id"`
	QuestionNumber  sql.NullInt64  `sql:"question_number"`
	QuestionContent sql.NullString `sql:"question_content"`
	AnswerLabel     sql.NullString `sql:"answer_label"`
	AnswerContent   sql.NullString `sql:"answer_content"`
}

type contentRepository struct {
	store
}

// NewContentRepository constructs the SQL-backed content store.
func NewContentRepository(drv dialect.Driver) repository.ContentRepository {
	return &contentRepository{store: newStore(drv)}
}

func (r *contentRepository) CreateTest(ctx context.Context, title string) (*entity.TestHeader, error) {
	b := r.builder()
	id, err := scanInt64(ctx, r.drv, b.Insert(tableTests).
		Columns("title", "created_at").
		Values(title, time.Now().UTC()).
		Returning("id"))
	if err != nil {
		return nil, fmt.Errorf("create test: %w", err)
	}
	return &entity.TestHeader{ID: id, Title: title}, nil
}

func (r *contentRepository) GetTest(ctx context.Context, testID int64) (*entity.TestHeader, error) {
	b := r.builder()
	t := b.Table(tableTests)
	var rows []testRow
	if err := scanAll(ctx, r.drv, b.Select(t.C("id"), t.C("title")).From(t).Where(sql.EQ(t.C("id"), testID)), &rows); err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrTestNotFound
	}
	return &entity.TestHeader{ID: rows[0].ID, Title: rows[0].Title}, nil
}

func (r *contentRepository) ListParts(ctx context.Context, testID int64) ([]entity.Part, error) {
	if err := r.requireTest(ctx, testID); err != nil {
		return nil, err
	}
	b := r.builder()
	p := b.Table(tableParts)
	var rows []partRow
	err := scanAll(ctx, r.drv, b.Select(p.C("id"), p.C("number")).
		From(p).
		Where(sql.EQ(p.C("test_id"), testID)).
		OrderBy(p.C("number")), &rows)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return lo.Map(rows, func(row partRow, _ int) entity.Part {
		return entity.Part{ID: row.ID, Number: row.Number}
	}), nil
}

func (r *contentRepository) ListQuestionKeys(ctx context.Context, testID int64) ([]entity.QuestionKey, error) {
	if err := r.requireTest(ctx, testID); err != nil {
		return nil, err
	}
	b := r.builder()
	q, g, p := b.Table(tableQuestions).As("q"), b.Table(tableGroups).As("g"), b.Table(tableParts).As("p")
	sel := b.Select(
		sql.As(q.C("id"), "question_id"),
		sql.As(q.C("correct_option"), "correct_option"),
		sql.As(p.C("number"), "part_number"),
	).
		From(q).
		Join(g).On(q.C("group_id"), g.C("id")).
		Join(p).On(g.C("part_id"), p.C("id")).
		Where(sql.EQ(p.C("test_id"), testID)).
		OrderBy(p.C("number"), q.C("number"), q.C("id"))

	var rows []questionKeyRow
	if err := scanAll(ctx, r.drv, sel, &rows); err != nil {
		return nil, fmt.Errorf("list question keys: %w", err)
	}
	return lo.Map(rows, func(row questionKeyRow, _ int) entity.QuestionKey {
		return entity.QuestionKey{
			QuestionID:    row.QuestionID,
			CorrectOption: entity.NormalizeOption(row.CorrectOption),
			PartNumber:    row.PartNumber,
		}
	}), nil
}

func (r *contentRepository) ListBlueprintRows(ctx context.Context, testID int64) ([]entity.BlueprintRow, error) {
	if err := r.requireTest(ctx, testID); err != nil {
		return nil, err
	}
	b := r.builder()
	// Joined tables carry explicit aliases so columns built here match the FROM clause.
	p, g, q, a := b.Table(tableParts).As("p"), b.Table(tableGroups).As("g"), b.Table(tableQuestions).As("q"), b.Table(tableAnswers).As("a")
	sel := b.Select(
		sql.As(p.C("id"), "part_id"),
		sql.As(p.C("number"), "part_number"),
		sql.As(g.C("id"), "group_id"),
		sql.As(g.C("content"), "group_content"),
		sql.As(q.C("id"), "question_id"),
		sql.As(q.C("number"), "question_number"),
		sql.As(q.C("content"), "question_content"),
		sql.As(a.C("label"), "answer_label"),
		sql.As(a.C("content"), "answer_content"),
	).
		From(p).
		LeftJoin(g).On(p.C("id"), g.C("part_id")).
		LeftJoin(q).On(g.C("id"), q.C("group_id")).
		LeftJoin(a).On(q.C("id"), a.C("question_id")).
		Where(sql.EQ(p.C("test_id"), testID)).
		OrderBy(p.C("number"))
	// Groups without questions sort after the numbered ones on every dialect.
	sel.OrderExprFunc(func(ob *sql.Builder) {
		ob.WriteString("CASE WHEN ").Ident(q.C("id")).WriteString(" IS NULL THEN 1 ELSE 0 END")
	})
	sel.OrderBy(q.C("number"), g.C("id"), q.C("id"), a.C("label"))

	var rows []blueprintRow
	if err := scanAll(ctx, r.drv, sel, &rows); err != nil {
		return nil, fmt.Errorf("list blueprint rows: %w", err)
	}
	return lo.Map(rows, func(row blueprintRow, _ int) entity.BlueprintRow {
		out := entity.BlueprintRow{
			TestID:          testID,
			PartID:          lo.ToPtr(row.PartID),
			PartNumber:      row.PartNumber,
			GroupContent:    row.GroupContent.String,
			QuestionNumber:  int(row.QuestionNumber.Int64),
			QuestionContent: row.QuestionContent.String,
			AnswerContent:   row.AnswerContent.String,
		}
		if row.GroupID.Valid {
			out.GroupID = lo.ToPtr(row.GroupID.Int64)
		}
		if row.QuestionID.Valid {
			out.QuestionID = lo.ToPtr(row.QuestionID.Int64)
		}
		if row.AnswerLabel.Valid {
			out.AnswerLabel = lo.ToPtr(entity.Option(row.AnswerLabel.String))
		}
		return out
	}), nil
}

func (r *contentRepository) TestOfPart(ctx context.Context, partID int64) (int64, error) {
	b := r.builder()
	p := b.Table(tableParts)
	return r.owningTest(ctx, b.Select(p.C("test_id")).From(p).Where(sql.EQ(p.C("id"), partID)), entity.ErrPartNotFound)
}

func (r *contentRepository) TestOfGroup(ctx context.Context, groupID int64) (int64, error) {
	b := r.builder()
	g, p := b.Table(tableGroups).As("g"), b.Table(tableParts).As("p")
	sel := b.Select(p.C("test_id")).
		From(g).
		Join(p).On(g.C("part_id"), p.C("id")).
		Where(sql.EQ(g.C("id"), groupID))
	return r.owningTest(ctx, sel, entity.ErrGroupNotFound)
}

func (r *contentRepository) TestOfQuestion(ctx context.Context, questionID int64) (int64, error) {
	b := r.builder()
	q, g, p := b.Table(tableQuestions).As("q"), b.Table(tableGroups).As("g"), b.Table(tableParts).As("p")
	sel := b.Select(p.C("test_id")).
		From(q).
		Join(g).On(q.C("group_id"), g.C("id")).
		Join(p).On(g.C("part_id"), p.C("id")).
		Where(sql.EQ(q.C("id"), questionID))
	return r.owningTest(ctx, sel, entity.ErrQuestionNotFound)
}

func (r *contentRepository) AddPart(ctx context.Context, part entity.NewPart) (*entity.Part, error) {
	b := r.builder()
	id, err := scanInt64(ctx, r.drv, b.Insert(tableParts).
		Columns("test_id", "number").
		Values(part.TestID, part.Number).
		Returning("id"))
	if err != nil {
		return nil, fmt.Errorf("add part: %w", translateError(err, entity.ErrTestNotFound))
	}
	return &entity.Part{ID: id, Number: part.Number, Groups: []entity.Group{}}, nil
}

func (r *contentRepository) RemovePart(ctx context.Context, partID int64) error {
	b := r.builder()
	n, err := exec(ctx, r.drv, b.Delete(tableParts).Where(sql.EQ("id", partID)))
	if err != nil {
		return fmt.Errorf("remove part: %w", err)
	}
	if n == 0 {
		return entity.ErrPartNotFound
	}
	return nil
}

func (r *contentRepository) AddGroup(ctx context.Context, group entity.NewGroup) (*entity.Group, error) {
	b := r.builder()
	id, err := scanInt64(ctx, r.drv, b.Insert(tableGroups).
		Columns("part_id", "content").
		Values(group.PartID, group.Content).
		Returning("id"))
	if err != nil {
		return nil, fmt.Errorf("add group: %w", translateError(err, entity.ErrPartNotFound))
	}
	return &entity.Group{ID: id, Content: group.Content, Questions: []entity.Question{}}, nil
}

func (r *contentRepository) AddQuestion(ctx context.Context, question entity.NewQuestion) (*entity.Question, error) {
	var created *entity.Question
	err := r.tx(ctx, func(tx dialect.Tx) error {
		b := r.builder()
		id, err := scanInt64(ctx, tx, b.Insert(tableQuestions).
			Columns("group_id", "number", "content", "correct_option").
			Values(question.GroupID, question.Number, question.Content, string(question.CorrectOption)).
			Returning("id"))
		if err != nil {
			return translateError(err, entity.ErrGroupNotFound)
		}
		if len(question.Answers) > 0 {
			ins := b.Insert(tableAnswers).Columns("question_id", "label", "content")
			for _, answer := range question.Answers {
				ins.Values(id, string(answer.Label), answer.Content)
			}
			if _, err := exec(ctx, tx, ins); err != nil {
				return translateError(err, entity.ErrQuestionNotFound)
			}
		}
		created = &entity.Question{
			ID:      id,
			Number:  question.Number,
			Content: question.Content,
			Answers: append([]entity.Answer{}, question.Answers...),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add question: %w", err)
	}
	return created, nil
}

func (r *contentRepository) ReviseQuestion(ctx context.Context, revision entity.QuestionRevision) error {
	if revision.Content == nil && revision.CorrectOption == nil {
		ok, err := r.exists(ctx, r.drv, tableQuestions, revision.QuestionID)
		if err != nil {
			return fmt.Errorf("revise question: %w", err)
		}
		if !ok {
			return entity.ErrQuestionNotFound
		}
		return nil
	}

	upd := r.builder().Update(tableQuestions).Where(sql.EQ("id", revision.QuestionID))
	if revision.Content != nil {
		upd.Set("content", *revision.Content)
	}
	if revision.CorrectOption != nil {
		upd.Set("correct_option", string(*revision.CorrectOption))
	}
	n, err := exec(ctx, r.drv, upd)
	if err != nil {
		return fmt.Errorf("revise question: %w", err)
	}
	if n == 0 {
		return entity.ErrQuestionNotFound
	}
	return nil
}

func (r *contentRepository) ReviseAnswer(ctx context.Context, questionID int64, label entity.Option, content string) error {
	upd := r.builder().Update(tableAnswers).
		Set("content", content).
		Where(sql.And(sql.EQ("question_id", questionID), sql.EQ("label", string(label))))
	n, err := exec(ctx, r.drv, upd)
	if err != nil {
		return fmt.Errorf("revise answer: %w", err)
	}
	if n > 0 {
		return nil
	}
	ok, err := r.exists(ctx, r.drv, tableQuestions, questionID)
	if err != nil {
		return fmt.Errorf("revise answer: %w", err)
	}
	if !ok {
		return entity.ErrQuestionNotFound
	}
	return entity.ErrAnswerNotFound
}

func (r *contentRepository) requireTest(ctx context.Context, testID int64) error {
	ok, err := r.exists(ctx, r.drv, tableTests, testID)
	if err != nil {
		return fmt.Errorf("find test: %w", err)
	}
	if !ok {
		return entity.ErrTestNotFound
	}
	return nil
}

func (r *contentRepository) owningTest(ctx context.Context, sel *sql.Selector, notFound error) (int64, error) {
	var ids []int64
	if err := scanAll(ctx, r.drv, sel, &ids); err != nil {
		return 0, fmt.Errorf("resolve test: %w", err)
	}
	if len(ids) == 0 {
		return 0, notFound
	}
	return ids[0], nil
}
