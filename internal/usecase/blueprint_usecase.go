package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/eslsoft/toeicprep/internal/blueprint"
	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/repository"
)

// DefaultBlueprintTTL is how long an assembled test stays cached.
const DefaultBlueprintTTL = 30 * time.Minute

// BlueprintUsecase serves assembled test trees and edits test structure. Every edit
// evicts the test's cached tree before it is written and again once it is committed.
type BlueprintUsecase interface {
	GetBlueprint(ctx context.Context, testID int64) (*entity.Test, error)
	InvalidateBlueprint(ctx context.Context, testID int64) error

	CreateTest(ctx context.Context, title string) (*entity.TestHeader, error)
	AddPart(ctx context.Context, part entity.NewPart) (*entity.Part, error)
	RemovePart(ctx context.Context, partID int64) error
	AddGroup(ctx context.Context, group entity.NewGroup) (*entity.Group, error)
	AddQuestion(ctx context.Context, question entity.NewQuestion) (*entity.Question, error)
	ReviseQuestion(ctx context.Context, revision entity.QuestionRevision) error
	ReviseAnswer(ctx context.Context, questionID int64, label entity.Option, content string) error
}

// BlueprintOptions tunes the blueprint cache.
type BlueprintOptions struct {
	CacheTTL time.Duration
}

// NewBlueprintUsecase wires the content store with a cache.
func NewBlueprintUsecase(content repository.ContentRepository, cache repository.BlueprintCache, opts BlueprintOptions, logger logrus.FieldLogger) BlueprintUsecase {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultBlueprintTTL
	}
	return &blueprintUsecase{
		content: content,
		cache:   cache,
		ttl:     ttl,
		logger:  logger.WithField("component", "blueprint"),
		pending: make(map[int64]*assembly),
	}
}

type blueprintUsecase struct {
	content repository.ContentRepository
	cache   repository.BlueprintCache
	ttl     time.Duration
	logger  logrus.FieldLogger

	flight singleflight.Group
	// pending holds the in-flight assembly per test. Invalidation marks it stale so
	// that it does not repopulate the cache with the old tree.
	mu      sync.Mutex
	pending map[int64]*assembly
}

type assembly struct {
	stale bool
}

func (u *blueprintUsecase) GetBlueprint(ctx context.Context, testID int64) (*entity.Test, error) {
	if testID <= 0 {
		return nil, entity.ErrTestNotFound
	}
	if tree, ok := u.cache.Get(testID); ok {
		u.logger.WithField("test_id", testID).Debug("blueprint cache hit")
		return tree, nil
	}

	v, err, shared := u.flight.Do(strconv.FormatInt(testID, 10), func() (any, error) {
		a := u.begin(testID)
		tree, err := u.assemble(context.WithoutCancel(ctx), testID)
		u.finish(testID, a, tree, err)
		if err != nil {
			return nil, err
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{"test_id": testID, "shared": shared}).Debug("blueprint cache miss")
	return v.(*entity.Test), nil
}

func (u *blueprintUsecase) InvalidateBlueprint(_ context.Context, testID int64) error {
	if testID <= 0 {
		return entity.ErrTestNotFound
	}
	u.invalidate(testID)
	return nil
}

func (u *blueprintUsecase) CreateTest(ctx context.Context, title string) (*entity.TestHeader, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, entity.InvalidArgumentf("test title must not be empty")
	}
	return u.content.CreateTest(ctx, title)
}

func (u *blueprintUsecase) AddPart(ctx context.Context, part entity.NewPart) (*entity.Part, error) {
	if part.Number < 1 || part.Number > 7 {
		return nil, entity.InvalidArgumentf("part number %d outside 1..7", part.Number)
	}
	if _, err := u.content.GetTest(ctx, part.TestID); err != nil {
		return nil, err
	}
	var created *entity.Part
	err := u.mutate(part.TestID, func() (err error) {
		created, err = u.content.AddPart(ctx, part)
		return err
	})
	return created, err
}

func (u *blueprintUsecase) RemovePart(ctx context.Context, partID int64) error {
	testID, err := u.content.TestOfPart(ctx, partID)
	if err != nil {
		return err
	}
	return u.mutate(testID, func() error {
		return u.content.RemovePart(ctx, partID)
	})
}

func (u *blueprintUsecase) AddGroup(ctx context.Context, group entity.NewGroup) (*entity.Group, error) {
	testID, err := u.content.TestOfPart(ctx, group.PartID)
	if err != nil {
		return nil, err
	}
	var created *entity.Group
	err = u.mutate(testID, func() (err error) {
		created, err = u.content.AddGroup(ctx, group)
		return err
	})
	return created, err
}

func (u *blueprintUsecase) AddQuestion(ctx context.Context, question entity.NewQuestion) (*entity.Question, error) {
	if err := validateNewQuestion(&question); err != nil {
		return nil, err
	}
	testID, err := u.content.TestOfGroup(ctx, question.GroupID)
	if err != nil {
		return nil, err
	}
	var created *entity.Question
	err = u.mutate(testID, func() (err error) {
		created, err = u.content.AddQuestion(ctx, question)
		return err
	})
	return created, err
}

func (u *blueprintUsecase) ReviseQuestion(ctx context.Context, revision entity.QuestionRevision) error {
	if revision.Content == nil && revision.CorrectOption == nil {
		return entity.InvalidArgumentf("revision changes nothing")
	}
	if revision.CorrectOption != nil {
		opt := entity.NormalizeOption(string(*revision.CorrectOption))
		if !opt.Valid() {
			return entity.InvalidArgumentf("correct option %q is not one of A-D", *revision.CorrectOption)
		}
		revision.CorrectOption = &opt
	}
	testID, err := u.content.TestOfQuestion(ctx, revision.QuestionID)
	if err != nil {
		return err
	}
	return u.mutate(testID, func() error {
		return u.content.ReviseQuestion(ctx, revision)
	})
}

func (u *blueprintUsecase) ReviseAnswer(ctx context.Context, questionID int64, label entity.Option, content string) error {
	label = entity.NormalizeOption(string(label))
	if !label.Valid() {
		return entity.InvalidArgumentf("answer label %q is not one of A-D", label)
	}
	testID, err := u.content.TestOfQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	return u.mutate(testID, func() error {
		return u.content.ReviseAnswer(ctx, questionID, label, content)
	})
}

// mutate evicts testID, runs write and evicts again, so readers that refilled the
// cache while write was in flight cannot keep serving the old tree.
func (u *blueprintUsecase) mutate(testID int64, write func() error) error {
	u.invalidate(testID)
	defer u.invalidate(testID)
	return write()
}

func (u *blueprintUsecase) invalidate(testID int64) {
	u.mu.Lock()
	if a, ok := u.pending[testID]; ok {
		a.stale = true
		delete(u.pending, testID)
	}
	u.cache.Delete(testID)
	u.mu.Unlock()
	u.flight.Forget(strconv.FormatInt(testID, 10))
	u.logger.WithField("test_id", testID).Debug("blueprint invalidated")
}

func (u *blueprintUsecase) begin(testID int64) *assembly {
	a := &assembly{}
	u.mu.Lock()
	u.pending[testID] = a
	u.mu.Unlock()
	return a
}

// finish releases a and caches tree unless an invalidation arrived meanwhile.
func (u *blueprintUsecase) finish(testID int64, a *assembly, tree *entity.Test, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.pending[testID] == a {
		delete(u.pending, testID)
	}
	if err == nil && !a.stale {
		u.cache.Set(testID, tree, u.ttl)
	}
}

func (u *blueprintUsecase) assemble(ctx context.Context, testID int64) (*entity.Test, error) {
	header, err := u.content.GetTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	rows, err := u.content.ListBlueprintRows(ctx, testID)
	if err != nil {
		return nil, err
	}
	tree, err := blueprint.Assemble(*header, rows)
	if err != nil {
		return nil, fmt.Errorf("assemble test %d: %w", testID, err)
	}
	return tree, nil
}

func validateNewQuestion(q *entity.NewQuestion) error {
	if q.Number < 1 {
		return entity.InvalidArgumentf("question number must be positive")
	}
	q.CorrectOption = entity.NormalizeOption(string(q.CorrectOption))
	if !q.CorrectOption.Valid() {
		return entity.InvalidArgumentf("correct option %q is not one of A-D", q.CorrectOption)
	}
	q.Answers = append([]entity.Answer(nil), q.Answers...)
	seen := make(map[entity.Option]bool, len(q.Answers))
	for i := range q.Answers {
		label := entity.NormalizeOption(string(q.Answers[i].Label))
		if !label.Valid() {
			return entity.InvalidArgumentf("answer label %q is not one of A-D", q.Answers[i].Label)
		}
		if seen[label] {
			return entity.InvalidArgumentf("answer %s given twice", label)
		}
		seen[label] = true
		q.Answers[i].Label = label
	}
	if len(q.Answers) > 0 && !seen[q.CorrectOption] {
		return entity.InvalidArgumentf("correct option %s has no answer", q.CorrectOption)
	}
	return nil
}
