// Package blueprint converts between the flat, order-sorted test rows of the content
// store and the nested Test→Part→Group→Question→Answer tree.
package blueprint

import (
	"fmt"

	"github.com/eslsoft/toeicprep/internal/entity"
)

type partNode struct {
	part   entity.Part
	groups []*groupNode
}

type groupNode struct {
	partID    int64
	group     entity.Group
	questions []*questionNode
}

type questionNode struct {
	groupID  int64
	question entity.Question
	labels   map[entity.Option]string
}

type assembler struct {
	test     entity.TestHeader
	parts    []*partNode
	partIdx  map[int64]*partNode
	groupIdx map[int64]*groupNode
	questIdx map[int64]*questionNode
}

// Assemble groups rows by part, then group, then question, collecting answers as leaves.
// Node order is the order in which each node first appears in rows.
func Assemble(test entity.TestHeader, rows []entity.BlueprintRow) (*entity.Test, error) {
	a := &assembler{
		test:     test,
		partIdx:  make(map[int64]*partNode),
		groupIdx: make(map[int64]*groupNode),
		questIdx: make(map[int64]*questionNode),
	}
	for i := range rows {
		if err := a.add(rows[i]); err != nil {
			return nil, fmt.Errorf("blueprint row %d: %w", i, err)
		}
	}
	return a.build(), nil
}

func (a *assembler) add(row entity.BlueprintRow) error {
	if row.TestID != a.test.ID {
		return &entity.InconsistentDataError{Entity: "test", ID: row.TestID, Reason: fmt.Sprintf("row belongs to another test than %d", a.test.ID)}
	}

	if row.PartID == nil {
		if row.GroupID != nil || row.QuestionID != nil || row.AnswerLabel != nil {
			return &entity.InconsistentDataError{Entity: "test", ID: row.TestID, Reason: "child row without part"}
		}
		return nil
	}
	part, err := a.part(row)
	if err != nil {
		return err
	}

	if row.GroupID == nil {
		if row.QuestionID != nil || row.AnswerLabel != nil {
			return &entity.InconsistentDataError{Entity: "part", ID: *row.PartID, Reason: "question row without group"}
		}
		return nil
	}
	group, err := a.group(part, row)
	if err != nil {
		return err
	}

	if row.QuestionID == nil {
		if row.AnswerLabel != nil {
			return &entity.InconsistentDataError{Entity: "group", ID: *row.GroupID, Reason: "answer row without question"}
		}
		return nil
	}
	question, err := a.question(group, row)
	if err != nil {
		return err
	}

	if row.AnswerLabel == nil {
		return nil
	}
	return question.addAnswer(*row.AnswerLabel, row.AnswerContent)
}

func (a *assembler) part(row entity.BlueprintRow) (*partNode, error) {
	id := *row.PartID
	if node, ok := a.partIdx[id]; ok {
		if node.part.Number != row.PartNumber {
			return nil, &entity.InconsistentDataError{Entity: "part", ID: id, Reason: fmt.Sprintf("number %d conflicts with %d", row.PartNumber, node.part.Number)}
		}
		return node, nil
	}
	node := &partNode{part: entity.Part{ID: id, Number: row.PartNumber}}
	a.partIdx[id] = node
	a.parts = append(a.parts, node)
	return node, nil
}

func (a *assembler) group(part *partNode, row entity.BlueprintRow) (*groupNode, error) {
	id := *row.GroupID
	if node, ok := a.groupIdx[id]; ok {
		if node.partID != part.part.ID {
			return nil, &entity.InconsistentDataError{Entity: "group", ID: id, Reason: fmt.Sprintf("appears under parts %d and %d", node.partID, part.part.ID)}
		}
		return node, nil
	}
	node := &groupNode{partID: part.part.ID, group: entity.Group{ID: id, Content: row.GroupContent}}
	a.groupIdx[id] = node
	part.groups = append(part.groups, node)
	return node, nil
}

func (a *assembler) question(group *groupNode, row entity.BlueprintRow) (*questionNode, error) {
	id := *row.QuestionID
	if node, ok := a.questIdx[id]; ok {
		if node.groupID != group.group.ID {
			return nil, &entity.InconsistentDataError{Entity: "question", ID: id, Reason: fmt.Sprintf("appears under groups %d and %d", node.groupID, group.group.ID)}
		}
		return node, nil
	}
	node := &questionNode{
		groupID:  group.group.ID,
		question: entity.Question{ID: id, Number: row.QuestionNumber, Content: row.QuestionContent},
		labels:   make(map[entity.Option]string),
	}
	a.questIdx[id] = node
	group.questions = append(group.questions, node)
	return node, nil
}

func (q *questionNode) addAnswer(label entity.Option, content string) error {
	if existing, ok := q.labels[label]; ok {
		if existing == content {
			return nil
		}
		return &entity.InconsistentDataError{Entity: "question", ID: q.question.ID, Reason: fmt.Sprintf("answer %s has conflicting contents", label)}
	}
	q.labels[label] = content
	q.question.Answers = append(q.question.Answers, entity.Answer{Label: label, Content: content})
	return nil
}

func (a *assembler) build() *entity.Test {
	test := &entity.Test{ID: a.test.ID, Title: a.test.Title, Parts: make([]entity.Part, 0, len(a.parts))}
	for _, p := range a.parts {
		part := p.part
		part.Groups = make([]entity.Group, 0, len(p.groups))
		for _, g := range p.groups {
			group := g.group
			group.Questions = make([]entity.Question, 0, len(g.questions))
			for _, q := range g.questions {
				group.Questions = append(group.Questions, q.question)
			}
			part.Groups = append(part.Groups, group)
		}
		test.Parts = append(test.Parts, part)
	}
	return test
}
