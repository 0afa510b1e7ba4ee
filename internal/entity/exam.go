package entity

import (
	"strings"
	"time"
)

// Option is an answer label (A-D).
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// NormalizeOption trims and upper-cases a label so comparisons are case-insensitive.
func NormalizeOption(raw string) Option {
	return Option(strings.ToUpper(strings.TrimSpace(raw)))
}

// Valid reports whether the label is one of A-D.
func (o Option) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	default:
		return false
	}
}

// QuestionKey is the canonical answer of one question, owned by the content store.
type QuestionKey struct {
	QuestionID    int64
	CorrectOption Option
	PartNumber    int
}

// Section returns the section the question is scored in.
func (k QuestionKey) Section() Section { return SectionForPart(k.PartNumber) }

// AnswerSubmission is one client-provided answer. It is never persisted as such.
type AnswerSubmission struct {
	QuestionID     int64
	SelectedOption string
}

// AnswerRecord is the graded form of a submission, owned by its Attempt.
type AnswerRecord struct {
	QuestionID     int64
	SelectedOption Option
	IsCorrect      bool
}

// Attempt is an append-only graded exam submission.
type Attempt struct {
	ID          int64
	UserID      int64
	TestID      int64
	Raw         RawScore
	Scaled      ScaledScore
	Answers     []AnswerRecord
	CompletedAt time.Time
}

// PracticeSession is a graded part-level drill. It carries no scaled score.
type PracticeSession struct {
	ID          int64
	UserID      int64
	TestID      int64
	PartNumber  int
	Correct     int
	Total       int
	Answers     []AnswerRecord
	CompletedAt time.Time
}
