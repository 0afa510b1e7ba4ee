package toeicv1

type GetBlueprintRequest struct {
	TestID int64 `json:"test_id" validate:"gt=0"`
}

type InvalidateBlueprintRequest struct {
	TestID int64 `json:"test_id" validate:"gt=0"`
}

// Blueprint is the full structure of a test. The answer key is never part of it.
type Blueprint struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Parts []Part `json:"parts"`
}

type Part struct {
	ID     int64   `json:"id"`
	Number int     `json:"number"`
	Groups []Group `json:"groups"`
}

type Group struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	Questions []Question `json:"questions"`
}

type Question struct {
	ID      int64    `json:"id"`
	Number  int      `json:"number"`
	Content string   `json:"content"`
	Answers []Answer `json:"answers"`
}

type Answer struct {
	Label   string `json:"label" validate:"required,max=8"`
	Content string `json:"content"`
}

type CreateTestRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type TestHeader struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type AddPartRequest struct {
	TestID int64 `json:"test_id" validate:"gt=0"`
	Number int   `json:"number" validate:"min=1,max=7"`
}

type RemovePartRequest struct {
	PartID int64 `json:"part_id" validate:"gt=0"`
}

type AddGroupRequest struct {
	PartID  int64  `json:"part_id" validate:"gt=0"`
	Content string `json:"content"`
}

type AddQuestionRequest struct {
	GroupID       int64    `json:"group_id" validate:"gt=0"`
	Number        int      `json:"number" validate:"gt=0"`
	Content       string   `json:"content"`
	CorrectOption string   `json:"correct_option" validate:"required,max=8"`
	Answers       []Answer `json:"answers" validate:"max=4,dive"`
}

// ReviseQuestionRequest changes the content and/or the key of a question. Omitted
// fields are left untouched.
type ReviseQuestionRequest struct {
	QuestionID    int64   `json:"question_id" validate:"gt=0"`
	Content       *string `json:"content,omitempty"`
	CorrectOption *string `json:"correct_option,omitempty" validate:"omitempty,max=8"`
}

type ReviseAnswerRequest struct {
	QuestionID int64  `json:"question_id" validate:"gt=0"`
	Label      string `json:"label" validate:"required,max=8"`
	Content    string `json:"content"`
}
