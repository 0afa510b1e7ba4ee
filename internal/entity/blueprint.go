package entity

// TestHeader is the test row itself, without its structure.
type TestHeader struct {
	ID    int64
	Title string
}

// Test is the root of the blueprint tree. Trees handed out by the cache are shared and
// must be treated as read-only.
type Test struct {
	ID    int64
	Title string
	Parts []Part
}

// Part is one of the seven TOEIC parts of a test.
type Part struct {
	ID     int64
	Number int
	Groups []Group
}

// Group bundles questions sharing a stimulus (audio, picture or passage).
type Group struct {
	ID        int64
	Content   string
	Questions []Question
}

// Question is a single numbered item of the answer sheet.
type Question struct {
	ID      int64
	Number  int
	Content string
	Answers []Answer
}

// Answer is one labelled choice of a question.
type Answer struct {
	Label   Option
	Content string
}

// BlueprintRow is one row of the flattened test structure. Child columns are nil when
// the parent has no children, which is how empty parts and groups are represented.
type BlueprintRow struct {
	TestID int64

	PartID     *int64
	PartNumber int

	GroupID      *int64
	GroupContent string

	QuestionID      *int64
	QuestionNumber  int
	QuestionContent string

	AnswerLabel   *Option
	AnswerContent string
}

// NewPart describes a part to add to a test.
type NewPart struct {
	TestID int64
	Number int
}

// NewGroup describes a group to add to a part.
type NewGroup struct {
	PartID  int64
	Content string
}

// NewQuestion describes a question, its key and its choices.
type NewQuestion struct {
	GroupID       int64
	Number        int
	Content       string
	CorrectOption Option
	Answers       []Answer
}

// QuestionRevision changes a question's content and/or key. Nil fields are left untouched.
type QuestionRevision struct {
	QuestionID    int64
	Content       *string
	CorrectOption *Option
}
