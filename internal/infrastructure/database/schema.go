package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const textSize = 2147483647

var (
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
	}

	// PartsColumns holds the columns for the "parts" table.
	PartsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "test_id", Type: field.TypeInt64},
		{Name: "number", Type: field.TypeInt},
	}
	// PartsTable holds the schema information for the "parts" table.
	PartsTable = &schema.Table{
		Name:       "parts",
		Columns:    PartsColumns,
		PrimaryKey: []*schema.Column{PartsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parts_tests_parts",
				Columns:    []*schema.Column{PartsColumns[1]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "part_test_id_number",
				Unique:  true,
				Columns: []*schema.Column{PartsColumns[1], PartsColumns[2]},
			},
		},
	}

	// QuestionGroupsColumns holds the columns for the "question_groups" table.
	QuestionGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "part_id", Type: field.TypeInt64},
		{Name: "content", Type: field.TypeString, Size: textSize, Default: ""},
	}
	// QuestionGroupsTable holds the schema information for the "question_groups" table.
	QuestionGroupsTable = &schema.Table{
		Name:       "question_groups",
		Columns:    QuestionGroupsColumns,
		PrimaryKey: []*schema.Column{QuestionGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_groups_parts_groups",
				Columns:    []*schema.Column{QuestionGroupsColumns[1]},
				RefColumns: []*schema.Column{PartsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questiongroup_part_id",
				Columns: []*schema.Column{QuestionGroupsColumns[1]},
			},
		},
	}

	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "group_id", Type: field.TypeInt64},
		{Name: "number", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "correct_option", Type: field.TypeString, Size: 1},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_question_groups_questions",
				Columns:    []*schema.Column{QuestionsColumns[1]},
				RefColumns: []*schema.Column{QuestionGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_group_id_number",
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
		},
	}

	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "question_id", Type: field.TypeInt64},
		{Name: "label", Type: field.TypeString, Size: 1},
		{Name: "content", Type: field.TypeString, Size: textSize, Default: ""},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[1]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_question_id_label",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[1], AnswersColumns[2]},
			},
		},
	}

	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "test_id", Type: field.TypeInt64},
		{Name: "listening_correct", Type: field.TypeInt},
		{Name: "reading_correct", Type: field.TypeInt},
		{Name: "listening_scaled", Type: field.TypeInt},
		{Name: "reading_scaled", Type: field.TypeInt},
		{Name: "scaled_total", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_tests_attempts",
				Columns:    []*schema.Column{AttemptsColumns[2]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id_completed_at",
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[8]},
			},
		},
	}

	// AttemptAnswersColumns holds the columns for the "attempt_answers" table.
	// question_id carries no foreign key so that history survives content edits.
	AttemptAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "attempt_id", Type: field.TypeInt64},
		{Name: "question_id", Type: field.TypeInt64},
		{Name: "selected_option", Type: field.TypeString, Size: 8, Default: ""},
		{Name: "is_correct", Type: field.TypeBool},
	}
	// AttemptAnswersTable holds the schema information for the "attempt_answers" table.
	AttemptAnswersTable = &schema.Table{
		Name:       "attempt_answers",
		Columns:    AttemptAnswersColumns,
		PrimaryKey: []*schema.Column{AttemptAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempt_answers_attempts_answers",
				Columns:    []*schema.Column{AttemptAnswersColumns[1]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attemptanswer_attempt_id",
				Columns: []*schema.Column{AttemptAnswersColumns[1]},
			},
		},
	}

	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "test_id", Type: field.TypeInt64},
		{Name: "part_number", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "practice_sessions_tests_practice_sessions",
				Columns:    []*schema.Column{PracticeSessionsColumns[2]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id_completed_at",
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[6]},
			},
		},
	}

	// PracticeAnswersColumns holds the columns for the "practice_answers" table.
	PracticeAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "session_id", Type: field.TypeInt64},
		{Name: "question_id", Type: field.TypeInt64},
		{Name: "selected_option", Type: field.TypeString, Size: 8, Default: ""},
		{Name: "is_correct", Type: field.TypeBool},
	}
	// PracticeAnswersTable holds the schema information for the "practice_answers" table.
	PracticeAnswersTable = &schema.Table{
		Name:       "practice_answers",
		Columns:    PracticeAnswersColumns,
		PrimaryKey: []*schema.Column{PracticeAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "practice_answers_practice_sessions_answers",
				Columns:    []*schema.Column{PracticeAnswersColumns[1]},
				RefColumns: []*schema.Column{PracticeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "term", Type: field.TypeString},
		{Name: "meaning", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
	}

	// ReviewStatesColumns holds the columns for the "review_states" table.
	ReviewStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "card_id", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString, Size: 16},
		{Name: "correct_streak", Type: field.TypeInt, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime},
	}
	// ReviewStatesTable holds the schema information for the "review_states" table.
	ReviewStatesTable = &schema.Table{
		Name:       "review_states",
		Columns:    ReviewStatesColumns,
		PrimaryKey: []*schema.Column{ReviewStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_states_cards_states",
				Columns:    []*schema.Column{ReviewStatesColumns[2]},
				RefColumns: []*schema.Column{CardsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewstate_user_id_card_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[2]},
			},
			{
				Name:    "reviewstate_user_id_next_review_at",
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[6]},
			},
		},
	}

	// ReviewLogsColumns holds the columns for the "review_logs" table.
	ReviewLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "card_id", Type: field.TypeInt64},
		{Name: "remembered", Type: field.TypeBool},
		{Name: "reviewed_at", Type: field.TypeTime},
	}
	// ReviewLogsTable holds the schema information for the "review_logs" table.
	ReviewLogsTable = &schema.Table{
		Name:       "review_logs",
		Columns:    ReviewLogsColumns,
		PrimaryKey: []*schema.Column{ReviewLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_logs_cards_logs",
				Columns:    []*schema.Column{ReviewLogsColumns[2]},
				RefColumns: []*schema.Column{CardsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewlog_user_id_reviewed_at",
				Columns: []*schema.Column{ReviewLogsColumns[1], ReviewLogsColumns[4]},
			},
		},
	}

	// ScoreConversionsColumns holds the columns for the "score_conversions" table.
	ScoreConversionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "section", Type: field.TypeString, Size: 16},
		{Name: "raw", Type: field.TypeInt},
		{Name: "scaled", Type: field.TypeInt},
	}
	// ScoreConversionsTable holds the schema information for the "score_conversions" table.
	ScoreConversionsTable = &schema.Table{
		Name:       "score_conversions",
		Columns:    ScoreConversionsColumns,
		PrimaryKey: []*schema.Column{ScoreConversionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoreconversion_section_raw",
				Unique:  true,
				Columns: []*schema.Column{ScoreConversionsColumns[1], ScoreConversionsColumns[2]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TestsTable,
		PartsTable,
		QuestionGroupsTable,
		QuestionsTable,
		AnswersTable,
		AttemptsTable,
		AttemptAnswersTable,
		PracticeSessionsTable,
		PracticeAnswersTable,
		CardsTable,
		ReviewStatesTable,
		ReviewLogsTable,
		ScoreConversionsTable,
	}
)

func init() {
	PartsTable.ForeignKeys[0].RefTable = TestsTable
	QuestionGroupsTable.ForeignKeys[0].RefTable = PartsTable
	QuestionsTable.ForeignKeys[0].RefTable = QuestionGroupsTable
	AnswersTable.ForeignKeys[0].RefTable = QuestionsTable
	AttemptsTable.ForeignKeys[0].RefTable = TestsTable
	AttemptAnswersTable.ForeignKeys[0].RefTable = AttemptsTable
	PracticeSessionsTable.ForeignKeys[0].RefTable = TestsTable
	PracticeAnswersTable.ForeignKeys[0].RefTable = PracticeSessionsTable
	ReviewStatesTable.ForeignKeys[0].RefTable = CardsTable
	ReviewLogsTable.ForeignKeys[0].RefTable = CardsTable
}
