package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is one durable lesson-progress snapshot, keyed by the
// player's storage key. One record per (course, lesson); overwritten on
// every autosave.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Storage key: pinagook:progress:<courseId>:<lessonId>"),
		field.String("course_id").
			Default("").
			Comment("Course the snapshot belongs to, lifted from the payload"),
		field.String("lesson_id").
			Default("").
			Comment("Lesson the snapshot belongs to, lifted from the payload"),
		field.Text("payload").
			Comment("Serialized StoredProgress JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last overwrite time"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "lesson_id"),
	}
}
