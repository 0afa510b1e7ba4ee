package mapping

import (
	"github.com/samber/lo"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/internal/entity"
)

// ToPbBlueprint deep-copies the tree, leaving the cached one untouched.
func ToPbBlueprint(t *entity.Test) *toeicv1.Blueprint {
	if t == nil {
		return nil
	}
	return &toeicv1.Blueprint{
		ID:    t.ID,
		Title: t.Title,
		Parts: lo.Map(t.Parts, func(p entity.Part, _ int) toeicv1.Part { return *ToPbPart(&p) }),
	}
}

func ToPbPart(p *entity.Part) *toeicv1.Part {
	if p == nil {
		return nil
	}
	return &toeicv1.Part{
		ID:     p.ID,
		Number: p.Number,
		Groups: lo.Map(p.Groups, func(g entity.Group, _ int) toeicv1.Group { return *ToPbGroup(&g) }),
	}
}

func ToPbGroup(g *entity.Group) *toeicv1.Group {
	if g == nil {
		return nil
	}
	return &toeicv1.Group{
		ID:        g.ID,
		Content:   g.Content,
		Questions: lo.Map(g.Questions, func(q entity.Question, _ int) toeicv1.Question { return *ToPbQuestion(&q) }),
	}
}

func ToPbQuestion(q *entity.Question) *toeicv1.Question {
	if q == nil {
		return nil
	}
	return &toeicv1.Question{
		ID:      q.ID,
		Number:  q.Number,
		Content: q.Content,
		Answers: lo.Map(q.Answers, func(a entity.Answer, _ int) toeicv1.Answer {
			return toeicv1.Answer{Label: string(a.Label), Content: a.Content}
		}),
	}
}

func ToPbTestHeader(h *entity.TestHeader) *toeicv1.TestHeader {
	if h == nil {
		return nil
	}
	return &toeicv1.TestHeader{ID: h.ID, Title: h.Title}
}

func FromPbNewQuestion(req *toeicv1.AddQuestionRequest) entity.NewQuestion {
	return entity.NewQuestion{
		GroupID:       req.GroupID,
		Number:        req.Number,
		Content:       req.Content,
		CorrectOption: entity.NormalizeOption(req.CorrectOption),
		Answers: lo.Map(req.Answers, func(a toeicv1.Answer, _ int) entity.Answer {
			return entity.Answer{Label: entity.NormalizeOption(a.Label), Content: a.Content}
		}),
	}
}

func FromPbQuestionRevision(req *toeicv1.ReviseQuestionRequest) entity.QuestionRevision {
	rev := entity.QuestionRevision{QuestionID: req.QuestionID, Content: req.Content}
	if req.CorrectOption != nil {
		rev.CorrectOption = lo.ToPtr(entity.NormalizeOption(*req.CorrectOption))
	}
	return rev
}
