// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "step_type", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_course_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2], AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_interactive", Type: field.TypeInt, Default: 0},
		{Name: "percent", Type: field.TypeInt, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_course_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2], LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_action",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[4]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[8]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "course_id", Type: field.TypeString, Default: ""},
		{Name: "lesson_id", Type: field.TypeString, Default: ""},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_course_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[2], ProgressRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		LessonEventsTable,
		ProgressRecordsTable,
	}
)

func init() {
}
