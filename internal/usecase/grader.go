package usecase

import (
	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// gradeSubmissions checks each submission against its key. Submissions for questions
// outside keys are dropped, and only the first submission per question is graded.
func gradeSubmissions(keys []entity.QuestionKey, submissions []entity.AnswerSubmission) ([]entity.AnswerRecord, entity.RawScore) {
	byID := lo.KeyBy(keys, func(k entity.QuestionKey) int64 { return k.QuestionID })
	graded := make(map[int64]struct{}, len(submissions))

	var raw entity.RawScore
	records := make([]entity.AnswerRecord, 0, len(submissions))
	for _, sub := range submissions {
		key, ok := byID[sub.QuestionID]
		if !ok {
			continue
		}
		if _, dup := graded[sub.QuestionID]; dup {
			continue
		}
		graded[sub.QuestionID] = struct{}{}

		selected := entity.NormalizeOption(sub.SelectedOption)
		correct := selected != "" && selected == key.CorrectOption
		records = append(records, entity.AnswerRecord{
			QuestionID:     sub.QuestionID,
			SelectedOption: selected,
			IsCorrect:      correct,
		})
		if !correct {
			continue
		}
		switch key.Section() {
		case entity.SectionListening:
			raw.ListeningCorrect++
		case entity.SectionReading:
			raw.ReadingCorrect++
		}
	}
	return records, raw
}
