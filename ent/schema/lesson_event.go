package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records lesson run lifecycle: started, finished, reset.
// Finished events carry the score summary. Append-only.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the lesson run"),
		field.String("course_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("started, finished, or reset"),
		field.Int("correct_count").
			Default(0).
			Comment("Correct answers (finished only)"),
		field.Int("total_interactive").
			Default(0).
			Comment("Interactive steps in the lesson (finished only)"),
		field.Int("percent").
			Default(0).
			Comment("Rounded score percent (finished only)"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("course_id", "lesson_id"),
		index.Fields("action"),
		index.Fields("timestamp"),
	}
}
