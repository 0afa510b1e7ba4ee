package toeicv1

import "time"

// AnswerSubmission is one answer of an answer sheet. An empty option means unanswered.
type AnswerSubmission struct {
	QuestionID     int64  `json:"question_id" validate:"gt=0"`
	SelectedOption string `json:"selected_option,omitempty" validate:"max=8"`
}

type GradeRequest struct {
	UserID  int64              `json:"user_id" validate:"gt=0"`
	TestID  int64              `json:"test_id" validate:"gt=0"`
	Answers []AnswerSubmission `json:"answers" validate:"dive"`
}

type AnswerRecord struct {
	QuestionID     int64  `json:"question_id"`
	SelectedOption string `json:"selected_option,omitempty"`
	IsCorrect      bool   `json:"is_correct"`
}

type Attempt struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	TestID           int64          `json:"test_id"`
	ListeningCorrect int            `json:"listening_correct"`
	ReadingCorrect   int            `json:"reading_correct"`
	ListeningScore   int            `json:"listening_score"`
	ReadingScore     int            `json:"reading_score"`
	TotalScore       int            `json:"total_score"`
	Answers          []AnswerRecord `json:"answers,omitempty"`
	CompletedAt      time.Time      `json:"completed_at"`
}

type GetAttemptRequest struct {
	UserID    int64 `json:"user_id" validate:"gt=0"`
	AttemptID int64 `json:"attempt_id" validate:"gt=0"`
}

// ListAttemptsRequest lists a learner's attempts. Filter is a CEL expression over
// test_id, completed_at and total; OrderBy is a comma separated list such as
// "total desc, completed_at".
type ListAttemptsRequest struct {
	UserID     int64              `json:"user_id" validate:"gt=0"`
	Pagination *PaginationRequest `json:"pagination,omitempty"`
	Filter     string             `json:"filter,omitempty" validate:"max=1024"`
	OrderBy    string             `json:"order_by,omitempty" validate:"max=256"`
}

func (r *ListAttemptsRequest) GetFilter() string {
	if r == nil {
		return ""
	}
	return r.Filter
}

func (r *ListAttemptsRequest) GetOrderBy() string {
	if r == nil {
		return ""
	}
	return r.OrderBy
}

func (r *ListAttemptsRequest) GetPagination() *PaginationRequest {
	if r == nil {
		return nil
	}
	return r.Pagination
}

type ListAttemptsResponse struct {
	Attempts   []Attempt          `json:"attempts"`
	Pagination PaginationResponse `json:"pagination"`
}

type RecordPracticeRequest struct {
	UserID     int64              `json:"user_id" validate:"gt=0"`
	TestID     int64              `json:"test_id" validate:"gt=0"`
	PartNumber int                `json:"part_number" validate:"min=1,max=7"`
	Answers    []AnswerSubmission `json:"answers" validate:"dive"`
}

type PracticeSession struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	TestID      int64          `json:"test_id"`
	PartNumber  int            `json:"part_number"`
	Correct     int            `json:"correct"`
	Total       int            `json:"total"`
	Answers     []AnswerRecord `json:"answers,omitempty"`
	CompletedAt time.Time      `json:"completed_at"`
}
