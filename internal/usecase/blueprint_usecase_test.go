package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/toeicprep/internal/entity"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newBlueprintFixture(opts BlueprintOptions) (BlueprintUsecase, *fakeContentRepo, *fakeCache) {
	content := newFakeContentRepo()
	cache := newFakeCache()
	return NewBlueprintUsecase(content, cache, opts, quietLogger()), content, cache
}

func TestGetBlueprintCachesTree(t *testing.T) {
	uc, content, cache := newBlueprintFixture(BlueprintOptions{})
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}, 5: {entity.OptionB}})

	first, err := uc.GetBlueprint(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	if len(first.Parts) != 2 || first.Parts[0].Number != 1 || first.Parts[1].Number != 5 {
		t.Fatalf("unexpected tree: %+v", first)
	}
	if first.Title != "Mock 1" {
		t.Fatalf("expected title, got %q", first.Title)
	}
	if cache.ttls[testID] != DefaultBlueprintTTL {
		t.Fatalf("expected default ttl, got %s", cache.ttls[testID])
	}

	second, err := uc.GetBlueprint(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected the cached tree to be returned unchanged")
	}
	if calls := content.rowCalls.Load(); calls != 1 {
		t.Fatalf("expected one row fetch, got %d", calls)
	}
}

func TestGetBlueprintCustomTTL(t *testing.T) {
	uc, content, cache := newBlueprintFixture(BlueprintOptions{CacheTTL: time.Minute})
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	if _, err := uc.GetBlueprint(context.Background(), testID); err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	if cache.ttls[testID] != time.Minute {
		t.Fatalf("expected one minute ttl, got %s", cache.ttls[testID])
	}
}

func TestInvalidateBlueprintForcesReassembly(t *testing.T) {
	uc, content, _ := newBlueprintFixture(BlueprintOptions{})
	testID, ids := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	if _, err := uc.GetBlueprint(context.Background(), testID); err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}

	// Change the store behind the usecase's back.
	content.mu.Lock()
	content.tests[testID].Parts[0].Groups[0].Questions[0].Content = "edited"
	content.mu.Unlock()

	stale, _ := uc.GetBlueprint(context.Background(), testID)
	if stale.Parts[0].Groups[0].Questions[0].Content == "edited" {
		t.Fatalf("expected the cached tree before invalidation")
	}

	if err := uc.InvalidateBlueprint(context.Background(), testID); err != nil {
		t.Fatalf("InvalidateBlueprint returned error: %v", err)
	}
	fresh, err := uc.GetBlueprint(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	q := fresh.Parts[0].Groups[0].Questions[0]
	if q.ID != ids[1][0] || q.Content != "edited" {
		t.Fatalf("expected re-assembled tree with edited content, got %+v", q)
	}
}

func TestGetBlueprintUnknownTest(t *testing.T) {
	uc, _, cache := newBlueprintFixture(BlueprintOptions{})
	if _, err := uc.GetBlueprint(context.Background(), 404); !errors.Is(err, entity.ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
	if cache.has(404) {
		t.Fatalf("errors must not be cached")
	}
}

func TestMutationsInvalidateBeforeWrite(t *testing.T) {
	uc, content, cache := newBlueprintFixture(BlueprintOptions{})
	testID, ids := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	ctx := context.Background()

	var partID, groupID int64
	content.mu.RLock()
	partID = content.tests[testID].Parts[0].ID
	groupID = content.tests[testID].Parts[0].Groups[0].ID
	content.mu.RUnlock()

	newContent := "revised"
	optB := entity.OptionB
	mutations := map[string]func() error{
		"add part": func() error {
			_, err := uc.AddPart(ctx, entity.NewPart{TestID: testID, Number: 6})
			return err
		},
		"add group": func() error {
			_, err := uc.AddGroup(ctx, entity.NewGroup{PartID: partID, Content: "passage"})
			return err
		},
		"add question": func() error {
			_, err := uc.AddQuestion(ctx, entity.NewQuestion{GroupID: groupID, Number: 2, CorrectOption: "c", Answers: []entity.Answer{{Label: "a"}, {Label: "c"}}})
			return err
		},
		"revise question": func() error {
			return uc.ReviseQuestion(ctx, entity.QuestionRevision{QuestionID: ids[1][0], Content: &newContent, CorrectOption: &optB})
		},
		"revise answer": func() error {
			return uc.ReviseAnswer(ctx, ids[1][0], "b", "better")
		},
		"remove part": func() error {
			return uc.RemovePart(ctx, partID)
		},
	}
	order := []string{"add part", "add group", "add question", "revise question", "revise answer", "remove part"}

	for _, name := range order {
		if _, err := uc.GetBlueprint(ctx, testID); err != nil {
			t.Fatalf("%s: GetBlueprint returned error: %v", name, err)
		}
		if !cache.has(testID) {
			t.Fatalf("%s: expected warm cache", name)
		}
		var cachedDuringWrite bool
		content.beforeWrite = func() { cachedDuringWrite = cache.has(testID) }

		if err := mutations[name](); err != nil {
			t.Fatalf("%s returned error: %v", name, err)
		}
		content.beforeWrite = nil
		if cachedDuringWrite {
			t.Fatalf("%s: cache still held the tree while writing", name)
		}
		if cache.has(testID) {
			t.Fatalf("%s: cache repopulated after write", name)
		}
	}

	tree, err := uc.GetBlueprint(ctx, testID)
	if err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	if len(tree.Parts) != 1 || tree.Parts[0].Number != 6 {
		t.Fatalf("expected only part 6 to remain, got %+v", tree.Parts)
	}
	content.mu.RLock()
	defer content.mu.RUnlock()
	if content.correct[ids[1][0]] != entity.OptionB {
		t.Fatalf("expected revised key B, got %s", content.correct[ids[1][0]])
	}
}

func TestStaleAssemblyIsNotCachedAfterInvalidation(t *testing.T) {
	uc, content, cache := newBlueprintFixture(BlueprintOptions{})
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	content.rowGate = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := uc.GetBlueprint(context.Background(), testID)
		done <- err
	}()
	for content.rowCalls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	if err := uc.InvalidateBlueprint(context.Background(), testID); err != nil {
		t.Fatalf("InvalidateBlueprint returned error: %v", err)
	}
	close(content.rowGate)
	if err := <-done; err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	if cache.has(testID) {
		t.Fatalf("an assembly started before invalidation must not be cached")
	}

	if _, err := uc.GetBlueprint(context.Background(), testID); err != nil {
		t.Fatalf("GetBlueprint returned error: %v", err)
	}
	if !cache.has(testID) {
		t.Fatalf("expected the next assembly to be cached")
	}
}

func TestInvalidationLeavesNoBookkeeping(t *testing.T) {
	uc, content, _ := newBlueprintFixture(BlueprintOptions{})
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		testID, _ := seedTest(content, fmt.Sprintf("Mock %d", i), map[int][]entity.Option{1: {entity.OptionA}})
		if _, err := uc.GetBlueprint(ctx, testID); err != nil {
			t.Fatalf("GetBlueprint returned error: %v", err)
		}
		if err := uc.InvalidateBlueprint(ctx, testID); err != nil {
			t.Fatalf("InvalidateBlueprint returned error: %v", err)
		}
	}
	if _, err := uc.GetBlueprint(ctx, 999); err == nil {
		t.Fatalf("expected an error for an unknown test")
	}

	impl := uc.(*blueprintUsecase)
	impl.mu.Lock()
	defer impl.mu.Unlock()
	if len(impl.pending) != 0 {
		t.Fatalf("expected no pending assemblies, got %d", len(impl.pending))
	}
}

func TestConcurrentMissesAreCoalesced(t *testing.T) {
	uc, content, _ := newBlueprintFixture(BlueprintOptions{})
	testID, _ := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	content.rowGate = make(chan struct{})

	const readers = 8
	results := make([]*entity.Test, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tree, err := uc.GetBlueprint(context.Background(), testID)
			if err != nil {
				t.Errorf("reader %d: %v", i, err)
				return
			}
			results[i] = tree
		}(i)
	}
	for content.rowCalls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(content.rowGate)
	wg.Wait()

	if calls := content.rowCalls.Load(); calls != 1 {
		t.Fatalf("expected one assembly, got %d", calls)
	}
	for i := 1; i < readers; i++ {
		if results[i] != results[0] {
			t.Fatalf("reader %d received a different tree", i)
		}
	}
}

func TestBlueprintMutationValidation(t *testing.T) {
	uc, content, _ := newBlueprintFixture(BlueprintOptions{})
	testID, ids := seedTest(content, "Mock 1", map[int][]entity.Option{1: {entity.OptionA}})
	ctx := context.Background()
	var groupID int64
	content.mu.RLock()
	groupID = content.tests[testID].Parts[0].Groups[0].ID
	content.mu.RUnlock()
	bad := entity.Option("E")

	cases := map[string]error{
		"part number": func() error {
			_, err := uc.AddPart(ctx, entity.NewPart{TestID: testID, Number: 8})
			return err
		}(),
		"empty title": func() error {
			_, err := uc.CreateTest(ctx, "  ")
			return err
		}(),
		"bad key": func() error {
			_, err := uc.AddQuestion(ctx, entity.NewQuestion{GroupID: groupID, Number: 2, CorrectOption: "E"})
			return err
		}(),
		"duplicate label": func() error {
			_, err := uc.AddQuestion(ctx, entity.NewQuestion{GroupID: groupID, Number: 2, CorrectOption: "A", Answers: []entity.Answer{{Label: "A"}, {Label: "a"}}})
			return err
		}(),
		"key without answer": func() error {
			_, err := uc.AddQuestion(ctx, entity.NewQuestion{GroupID: groupID, Number: 2, CorrectOption: "D", Answers: []entity.Answer{{Label: "A"}}})
			return err
		}(),
		"empty revision":   uc.ReviseQuestion(ctx, entity.QuestionRevision{QuestionID: ids[1][0]}),
		"bad revised key":  uc.ReviseQuestion(ctx, entity.QuestionRevision{QuestionID: ids[1][0], CorrectOption: &bad}),
		"bad answer label": uc.ReviseAnswer(ctx, ids[1][0], "Z", "x"),
	}
	for name, err := range cases {
		if !errors.Is(err, entity.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}

	if err := uc.RemovePart(ctx, 9999); !errors.Is(err, entity.ErrPartNotFound) {
		t.Fatalf("expected ErrPartNotFound, got %v", err)
	}
	if err := uc.ReviseAnswer(ctx, 9999, "A", "x"); !errors.Is(err, entity.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if _, err := uc.AddPart(ctx, entity.NewPart{TestID: 9999, Number: 1}); !errors.Is(err, entity.ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}
