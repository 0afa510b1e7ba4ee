package repository

import (
	"context"
	"time"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// ContentRepository reads and edits the structure of tests. Every method returns the
// matching Err*NotFound when the referenced node does not exist.
type ContentRepository interface {
	CreateTest(ctx context.Context, title string) (*entity.TestHeader, error)
	GetTest(ctx context.Context, testID int64) (*entity.TestHeader, error)
	// ListParts returns the parts of a test ordered by number, without their groups.
	ListParts(ctx context.Context, testID int64) ([]entity.Part, error)
	// ListQuestionKeys returns the answer key of every question of the test.
	ListQuestionKeys(ctx context.Context, testID int64) ([]entity.QuestionKey, error)
	// ListBlueprintRows returns the flattened test ordered by part number, question
	// number and answer label.
	ListBlueprintRows(ctx context.Context, testID int64) ([]entity.BlueprintRow, error)

	// TestOfPart, TestOfGroup and TestOfQuestion resolve the test owning a node.
	TestOfPart(ctx context.Context, partID int64) (int64, error)
	TestOfGroup(ctx context.Context, groupID int64) (int64, error)
	TestOfQuestion(ctx context.Context, questionID int64) (int64, error)

	AddPart(ctx context.Context, part entity.NewPart) (*entity.Part, error)
	// RemovePart deletes the part together with its groups, questions and answers.
	RemovePart(ctx context.Context, partID int64) error
	AddGroup(ctx context.Context, group entity.NewGroup) (*entity.Group, error)
	// AddQuestion stores the question and its answers atomically.
	AddQuestion(ctx context.Context, question entity.NewQuestion) (*entity.Question, error)
	ReviseQuestion(ctx context.Context, revision entity.QuestionRevision) error
	ReviseAnswer(ctx context.Context, questionID int64, label entity.Option, content string) error
}

// ScoreTableRepository stores the raw to scaled conversion table.
type ScoreTableRepository interface {
	// Load returns every stored conversion; an empty result means no table was seeded.
	Load(ctx context.Context) ([]entity.ScoreConversion, error)
	// Replace swaps the stored table for rows atomically.
	Replace(ctx context.Context, rows []entity.ScoreConversion) error
}

// BlueprintCache holds assembled test trees keyed by test id.
type BlueprintCache interface {
	Get(testID int64) (*entity.Test, bool)
	Set(testID int64, test *entity.Test, ttl time.Duration)
	Delete(testID int64)
}
