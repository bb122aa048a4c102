package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one checked answer. Append-only.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the lesson run"),
		field.String("course_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.String("step_id").
			NotEmpty(),
		field.String("step_type").
			NotEmpty().
			Comment("single_choice or fill_blank"),
		field.Bool("correct").
			Comment("Whether the checked answer was correct"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("course_id", "lesson_id"),
		index.Fields("timestamp"),
	}
}
