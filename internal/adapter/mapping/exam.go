package mapping

import (
	"github.com/samber/lo"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/internal/entity"
)

func FromPbSubmissions(in []toeicv1.AnswerSubmission) []entity.AnswerSubmission {
	return lo.Map(in, func(s toeicv1.AnswerSubmission, _ int) entity.AnswerSubmission {
		return entity.AnswerSubmission{QuestionID: s.QuestionID, SelectedOption: s.SelectedOption}
	})
}

func ToPbAnswerRecords(in []entity.AnswerRecord) []toeicv1.AnswerRecord {
	if len(in) == 0 {
		return nil
	}
	return lo.Map(in, func(r entity.AnswerRecord, _ int) toeicv1.AnswerRecord {
		return toeicv1.AnswerRecord{
			QuestionID:     r.QuestionID,
			SelectedOption: string(r.SelectedOption),
			IsCorrect:      r.IsCorrect,
		}
	})
}

func ToPbAttempt(a *entity.Attempt) *toeicv1.Attempt {
	if a == nil {
		return nil
	}
	return &toeicv1.Attempt{
		ID:               a.ID,
		UserID:           a.UserID,
		TestID:           a.TestID,
		ListeningCorrect: a.Raw.ListeningCorrect,
		ReadingCorrect:   a.Raw.ReadingCorrect,
		ListeningScore:   a.Scaled.Listening,
		ReadingScore:     a.Scaled.Reading,
		TotalScore:       a.Scaled.Total,
		Answers:          ToPbAnswerRecords(a.Answers),
		CompletedAt:      a.CompletedAt.UTC(),
	}
}

func ToPbAttempts(in []*entity.Attempt) []toeicv1.Attempt {
	out := make([]toeicv1.Attempt, 0, len(in))
	for _, a := range in {
		if pb := ToPbAttempt(a); pb != nil {
			out = append(out, *pb)
		}
	}
	return out
}

func ToPbPracticeSession(s *entity.PracticeSession) *toeicv1.PracticeSession {
	if s == nil {
		return nil
	}
	return &toeicv1.PracticeSession{
		ID:          s.ID,
		UserID:      s.UserID,
		TestID:      s.TestID,
		PartNumber:  s.PartNumber,
		Correct:     s.Correct,
		Total:       s.Total,
		Answers:     ToPbAnswerRecords(s.Answers),
		CompletedAt: s.CompletedAt.UTC(),
	}
}
