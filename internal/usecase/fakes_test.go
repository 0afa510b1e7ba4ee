package usecase

import (
	"context"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eslsoft/toeicprep/internal/blueprint"
	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
)

type fakeContentRepo struct {
	mu      sync.RWMutex
	seq     int64
	tests   map[int64]*entity.Test
	correct map[int64]entity.Option

	rowCalls atomic.Int32
	// rowGate, when set, blocks ListBlueprintRows until it is closed.
	rowGate chan struct{}
	// beforeWrite runs at the start of every structural write.
	beforeWrite func()
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		tests:   make(map[int64]*entity.Test),
		correct: make(map[int64]entity.Option),
	}
}

func (r *fakeContentRepo) nextID() int64 {
	r.seq++
	return r.seq
}

func (r *fakeContentRepo) write() {
	if r.beforeWrite != nil {
		r.beforeWrite()
	}
}

func (r *fakeContentRepo) CreateTest(ctx context.Context, title string) (*entity.TestHeader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID()
	r.tests[id] = &entity.Test{ID: id, Title: title, Parts: []entity.Part{}}
	return &entity.TestHeader{ID: id, Title: title}, nil
}

func (r *fakeContentRepo) GetTest(ctx context.Context, testID int64) (*entity.TestHeader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	test, ok := r.tests[testID]
	if !ok {
		return nil, entity.ErrTestNotFound
	}
	return &entity.TestHeader{ID: test.ID, Title: test.Title}, nil
}

func (r *fakeContentRepo) ListParts(ctx context.Context, testID int64) ([]entity.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	test, ok := r.tests[testID]
	if !ok {
		return nil, entity.ErrTestNotFound
	}
	parts := make([]entity.Part, 0, len(test.Parts))
	for _, p := range test.Parts {
		parts = append(parts, entity.Part{ID: p.ID, Number: p.Number})
	}
	return parts, nil
}

func (r *fakeContentRepo) ListQuestionKeys(ctx context.Context, testID int64) ([]entity.QuestionKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	test, ok := r.tests[testID]
	if !ok {
		return nil, entity.ErrTestNotFound
	}
	var keys []entity.QuestionKey
	for _, p := range test.Parts {
		for _, g := range p.Groups {
			for _, q := range g.Questions {
				keys = append(keys, entity.QuestionKey{QuestionID: q.ID, CorrectOption: r.correct[q.ID], PartNumber: p.Number})
			}
		}
	}
	return keys, nil
}

func (r *fakeContentRepo) ListBlueprintRows(ctx context.Context, testID int64) ([]entity.BlueprintRow, error) {
	r.rowCalls.Add(1)
	if r.rowGate != nil {
		<-r.rowGate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	test, ok := r.tests[testID]
	if !ok {
		return nil, entity.ErrTestNotFound
	}
	return blueprint.Flatten(test), nil
}

func (r *fakeContentRepo) locate(fn func(t *entity.Test, pi, gi, qi int) bool) bool {
	for _, t := range r.tests {
		for pi := range t.Parts {
			if fn(t, pi, -1, -1) {
				return true
			}
			for gi := range t.Parts[pi].Groups {
				if fn(t, pi, gi, -1) {
					return true
				}
				for qi := range t.Parts[pi].Groups[gi].Questions {
					if fn(t, pi, gi, qi) {
						return true
					}
				}
			}
		}
	}
	return false
}

func (r *fakeContentRepo) partRef(partID int64) (*entity.Test, int, bool) {
	var test *entity.Test
	idx := -1
	r.locate(func(t *entity.Test, pi, gi, qi int) bool {
		if gi == -1 && t.Parts[pi].ID == partID {
			test, idx = t, pi
			return true
		}
		return false
	})
	return test, idx, test != nil
}

func (r *fakeContentRepo) groupRef(groupID int64) (*entity.Test, *entity.Group, bool) {
	var test *entity.Test
	var group *entity.Group
	r.locate(func(t *entity.Test, pi, gi, qi int) bool {
		if gi >= 0 && qi == -1 && t.Parts[pi].Groups[gi].ID == groupID {
			test, group = t, &t.Parts[pi].Groups[gi]
			return true
		}
		return false
	})
	return test, group, test != nil
}

func (r *fakeContentRepo) questionRef(questionID int64) (*entity.Test, *entity.Question, bool) {
	var test *entity.Test
	var question *entity.Question
	r.locate(func(t *entity.Test, pi, gi, qi int) bool {
		if qi >= 0 && t.Parts[pi].Groups[gi].Questions[qi].ID == questionID {
			test, question = t, &t.Parts[pi].Groups[gi].Questions[qi]
			return true
		}
		return false
	})
	return test, question, test != nil
}

func (r *fakeContentRepo) TestOfPart(_ context.Context, partID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, _, ok := r.partRef(partID); ok {
		return t.ID, nil
	}
	return 0, entity.ErrPartNotFound
}

func (r *fakeContentRepo) TestOfGroup(_ context.Context, groupID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, _, ok := r.groupRef(groupID); ok {
		return t.ID, nil
	}
	return 0, entity.ErrGroupNotFound
}

func (r *fakeContentRepo) TestOfQuestion(_ context.Context, questionID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, _, ok := r.questionRef(questionID); ok {
		return t.ID, nil
	}
	return 0, entity.ErrQuestionNotFound
}

func (r *fakeContentRepo) AddPart(_ context.Context, part entity.NewPart) (*entity.Part, error) {
	r.write()
	r.mu.Lock()
	defer r.mu.Unlock()
	test, ok := r.tests[part.TestID]
	if !ok {
		return nil, entity.ErrTestNotFound
	}
	for _, p := range test.Parts {
		if p.Number == part.Number {
			return nil, entity.ErrAlreadyExists
		}
	}
	created := entity.Part{ID: r.nextID(), Number: part.Number}
	test.Parts = append(test.Parts, created)
	sort.Slice(test.Parts, func(i, j int) bool { return test.Parts[i].Number < test.Parts[j].Number })
	return &created, nil
}

func (r *fakeContentRepo) RemovePart(_ context.Context, partID int64) error {
	r.write()
	r.mu.Lock()
	defer r.mu.Unlock()
	test, idx, ok := r.partRef(partID)
	if !ok {
		return entity.ErrPartNotFound
	}
	test.Parts = slices.Delete(test.Parts, idx, idx+1)
	return nil
}

func (r *fakeContentRepo) AddGroup(_ context.Context, group entity.NewGroup) (*entity.Group, error) {
	r.write()
	r.mu.Lock()
	defer r.mu.Unlock()
	test, idx, ok := r.partRef(group.PartID)
	if !ok {
		return nil, entity.ErrPartNotFound
	}
	created := entity.Group{ID: r.nextID(), Content: group.Content}
	test.Parts[idx].Groups = append(test.Parts[idx].Groups, created)
	return &created, nil
}

func (r *fakeContentRepo) AddQuestion(_ context.Context, question entity.NewQuestion) (*entity.Question, error) {
	r.write()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, group, ok := r.groupRef(question.GroupID)
	if !ok {
		return nil, entity.ErrGroupNotFound
	}
	created := entity.Question{
		ID:      r.nextID(),
		Number:  question.Number,
		Content: question.Content,
		Answers: append([]entity.Answer(nil), question.Answers...),
	}
	group.Questions = append(group.Questions, created)
	r.correct[created.ID] = question.CorrectOption
	return &created, nil
}

func (r *fakeContentRepo) ReviseQuestion(_ context.Context, revision entity.QuestionRevision) error {
	r.write()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, question, ok := r.questionRef(revision.QuestionID)
	if !ok {
		return entity.ErrQuestionNotFound
	}
	if revision.Content != nil {
		question.Content = *revision.Content
	}
	if revision.CorrectOption != nil {
		r.correct[question.ID] = *revision.CorrectOption
	}
	return nil
}

func (r *fakeContentRepo) ReviseAnswer(_ context.Context, questionID int64, label entity.Option, content string) error {
	r.write()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, question, ok := r.questionRef(questionID)
	if !ok {
		return entity.ErrQuestionNotFound
	}
	for i := range question.Answers {
		if question.Answers[i].Label == label {
			question.Answers[i].Content = content
			return nil
		}
	}
	return entity.ErrAnswerNotFound
}

// seedTest builds a test with one question per (part, option) pair given.
func seedTest(r *fakeContentRepo, title string, questions map[int][]entity.Option) (int64, map[int][]int64) {
	ctx := context.Background()
	header, _ := r.CreateTest(ctx, title)
	ids := make(map[int][]int64)
	numbers := make([]int, 0, len(questions))
	for n := range questions {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	qNo := 1
	for _, n := range numbers {
		part, _ := r.AddPart(ctx, entity.NewPart{TestID: header.ID, Number: n})
		group, _ := r.AddGroup(ctx, entity.NewGroup{PartID: part.ID, Content: "stimulus"})
		for _, opt := range questions[n] {
			q, _ := r.AddQuestion(ctx, entity.NewQuestion{
				GroupID:       group.ID,
				Number:        qNo,
				Content:       "question",
				CorrectOption: opt,
				Answers: []entity.Answer{
					{Label: entity.OptionA, Content: "a"},
					{Label: entity.OptionB, Content: "b"},
					{Label: entity.OptionC, Content: "c"},
					{Label: entity.OptionD, Content: "d"},
				},
			})
			ids[n] = append(ids[n], q.ID)
			qNo++
		}
	}
	return header.ID, ids
}

type fakeCache struct {
	mu    sync.Mutex
	items map[int64]*entity.Test
	ttls  map[int64]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[int64]*entity.Test), ttls: make(map[int64]time.Duration)}
}

func (c *fakeCache) Get(testID int64) (*entity.Test, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.items[testID]
	return t, ok
}

func (c *fakeCache) Set(testID int64, test *entity.Test, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[testID] = test
	c.ttls[testID] = ttl
}

func (c *fakeCache) Delete(testID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, testID)
}

func (c *fakeCache) has(testID int64) bool {
	_, ok := c.Get(testID)
	return ok
}

type fakeAttemptRepo struct {
	mu       sync.RWMutex
	seq      int64
	items    map[int64]*entity.Attempt
	createFn func(*entity.Attempt) error
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{items: make(map[int64]*entity.Attempt)}
}

func cloneAttempt(a *entity.Attempt) *entity.Attempt {
	c := *a
	c.Answers = append([]entity.AnswerRecord(nil), a.Answers...)
	return &c
}

func (r *fakeAttemptRepo) Create(ctx context.Context, attempt *entity.Attempt) (*entity.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.createFn != nil {
		if err := r.createFn(attempt); err != nil {
			return nil, err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := cloneAttempt(attempt)
	c.ID = r.seq
	r.items[c.ID] = c
	return cloneAttempt(c), nil
}

func (r *fakeAttemptRepo) Get(_ context.Context, userID, id int64) (*entity.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok || a.UserID != userID {
		return nil, entity.ErrAttemptNotFound
	}
	return cloneAttempt(a), nil
}

func (r *fakeAttemptRepo) List(_ context.Context, query *repository.ListAttemptQuery) ([]*entity.Attempt, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Attempt
	for _, a := range r.items {
		if a.UserID == query.UserID {
			c := cloneAttempt(a)
			c.Answers = nil
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := int64(len(out))
	start := int(query.Offset())
	if start > len(out) {
		start = len(out)
	}
	end := min(start+int(query.PageSize), len(out))
	return out[start:end], total, nil
}

func (r *fakeAttemptRepo) ActiveDates(_ context.Context, userID int64) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var dates []time.Time
	for _, a := range r.items {
		if a.UserID == userID {
			dates = append(dates, a.CompletedAt)
		}
	}
	return dates, nil
}

type fakePracticeRepo struct {
	mu    sync.Mutex
	items []*entity.PracticeSession
	dates []time.Time
	err   error
}

func (r *fakePracticeRepo) Create(_ context.Context, s *entity.PracticeSession) (*entity.PracticeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *s
	c.ID = int64(len(r.items) + 1)
	r.items = append(r.items, &c)
	return &c, nil
}

func (r *fakePracticeRepo) ActiveDates(_ context.Context, userID int64) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	dates := append([]time.Time(nil), r.dates...)
	for _, s := range r.items {
		if s.UserID == userID {
			dates = append(dates, s.CompletedAt)
		}
	}
	return dates, nil
}

type fakeCardRepo struct {
	mu    sync.RWMutex
	items map[int64]*entity.Card
}

func newFakeCardRepo(ids ...int64) *fakeCardRepo {
	r := &fakeCardRepo{items: make(map[int64]*entity.Card)}
	for _, id := range ids {
		r.items[id] = &entity.Card{ID: id, Term: "term", Meaning: "meaning"}
	}
	return r
}

func (r *fakeCardRepo) Create(_ context.Context, card *entity.Card) (*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *card
	c.ID = int64(len(r.items) + 1)
	r.items[c.ID] = &c
	return &c, nil
}

func (r *fakeCardRepo) Get(_ context.Context, id int64) (*entity.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, entity.ErrCardNotFound
	}
	cc := *c
	return &cc, nil
}

type stateKey struct{ userID, cardID int64 }

type fakeReviewStateRepo struct {
	mu     sync.RWMutex
	states map[stateKey]entity.ReviewState
	logs   []entity.ReviewLog
}

func newFakeReviewStateRepo() *fakeReviewStateRepo {
	return &fakeReviewStateRepo{states: make(map[stateKey]entity.ReviewState)}
}

func (r *fakeReviewStateRepo) Get(_ context.Context, userID, cardID int64) (*entity.ReviewState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.states[stateKey{userID, cardID}]
	if !ok {
		return nil, entity.ErrReviewStateNotFound
	}
	return &s, nil
}

func (r *fakeReviewStateRepo) Save(_ context.Context, state entity.ReviewState, log entity.ReviewLog) (*entity.ReviewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[stateKey{state.UserID, state.CardID}] = state
	r.logs = append(r.logs, log)
	return &state, nil
}

func (r *fakeReviewStateRepo) ListDue(_ context.Context, userID int64, now time.Time, limit int) ([]entity.ReviewState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []entity.ReviewState
	for k, s := range r.states {
		if k.userID == userID && s.Status != entity.ReviewStatusMastered && !s.NextReviewAt.After(now) {
			due = append(due, s)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].NextReviewAt.Before(due[j].NextReviewAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *fakeReviewStateRepo) Delete(_ context.Context, userID, cardID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := stateKey{userID, cardID}
	if _, ok := r.states[k]; !ok {
		return entity.ErrReviewStateNotFound
	}
	delete(r.states, k)
	return nil
}

func (r *fakeReviewStateRepo) ActiveDates(_ context.Context, userID int64) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var dates []time.Time
	for _, l := range r.logs {
		if l.UserID == userID {
			dates = append(dates, l.ReviewedAt)
		}
	}
	return dates, nil
}

type fakeScoreRepo struct {
	rows []entity.ScoreConversion
}

func (r *fakeScoreRepo) Load(context.Context) ([]entity.ScoreConversion, error) {
	return append([]entity.ScoreConversion(nil), r.rows...), nil
}

func (r *fakeScoreRepo) Replace(_ context.Context, rows []entity.ScoreConversion) error {
	r.rows = append([]entity.ScoreConversion(nil), rows...)
	return nil
}
