package blueprint

import "github.com/eslsoft/toeicprep/internal/entity"

// Flatten walks the tree part→group→question→answer and emits one row per leaf. Empty
// parts, groups and questions yield a single row with nil child columns.
func Flatten(test *entity.Test) []entity.BlueprintRow {
	if test == nil {
		return nil
	}
	var rows []entity.BlueprintRow
	for _, part := range test.Parts {
		partID := part.ID
		base := entity.BlueprintRow{TestID: test.ID, PartID: &partID, PartNumber: part.Number}
		if len(part.Groups) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, group := range part.Groups {
			groupID := group.ID
			withGroup := base
			withGroup.GroupID = &groupID
			withGroup.GroupContent = group.Content
			if len(group.Questions) == 0 {
				rows = append(rows, withGroup)
				continue
			}
			for _, question := range group.Questions {
				questionID := question.ID
				withQuestion := withGroup
				withQuestion.QuestionID = &questionID
				withQuestion.QuestionNumber = question.Number
				withQuestion.QuestionContent = question.Content
				if len(question.Answers) == 0 {
					rows = append(rows, withQuestion)
					continue
				}
				for _, answer := range question.Answers {
					label := answer.Label
					leaf := withQuestion
					leaf.AnswerLabel = &label
					leaf.AnswerContent = answer.Content
					rows = append(rows, leaf)
				}
			}
		}
	}
	return rows
}

// QuestionCount returns the number of questions in the tree.
func QuestionCount(test *entity.Test) int {
	if test == nil {
		return 0
	}
	n := 0
	for _, part := range test.Parts {
		for _, group := range part.Groups {
			n += len(group.Questions)
		}
	}
	return n
}
