// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pinagook/pinagook/ent/answerevent"
	"github.com/pinagook/pinagook/ent/lessonevent"
	"github.com/pinagook/pinagook/ent/progressrecord"
	"github.com/pinagook/pinagook/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescCourseID is the schema descriptor for course_id field.
	answereventDescCourseID := answereventFields[1].Descriptor()
	// answerevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	answerevent.CourseIDValidator = answereventDescCourseID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[2].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescStepID is the schema descriptor for step_id field.
	answereventDescStepID := answereventFields[3].Descriptor()
	// answerevent.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	answerevent.StepIDValidator = answereventDescStepID.Validators[0].(func(string) error)
	// answereventDescStepType is the schema descriptor for step_type field.
	answereventDescStepType := answereventFields[4].Descriptor()
	// answerevent.StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	answerevent.StepTypeValidator = answereventDescStepType.Validators[0].(func(string) error)
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventFields[6].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescCourseID is the schema descriptor for course_id field.
	lessoneventDescCourseID := lessoneventFields[1].Descriptor()
	// lessonevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lessonevent.CourseIDValidator = lessoneventDescCourseID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[2].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescAction is the schema descriptor for action field.
	lessoneventDescAction := lessoneventFields[3].Descriptor()
	// lessonevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lessonevent.ActionValidator = lessoneventDescAction.Validators[0].(func(string) error)
	// lessoneventDescCorrectCount is the schema descriptor for correct_count field.
	lessoneventDescCorrectCount := lessoneventFields[4].Descriptor()
	// lessonevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	lessonevent.DefaultCorrectCount = lessoneventDescCorrectCount.Default.(int)
	// lessoneventDescTotalInteractive is the schema descriptor for total_interactive field.
	lessoneventDescTotalInteractive := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultTotalInteractive holds the default value on creation for the total_interactive field.
	lessonevent.DefaultTotalInteractive = lessoneventDescTotalInteractive.Default.(int)
	// lessoneventDescPercent is the schema descriptor for percent field.
	lessoneventDescPercent := lessoneventFields[6].Descriptor()
	// lessonevent.DefaultPercent holds the default value on creation for the percent field.
	lessonevent.DefaultPercent = lessoneventDescPercent.Default.(int)
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventFields[7].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescKey is the schema descriptor for key field.
	progressrecordDescKey := progressrecordFields[0].Descriptor()
	// progressrecord.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	progressrecord.KeyValidator = progressrecordDescKey.Validators[0].(func(string) error)
	// progressrecordDescCourseID is the schema descriptor for course_id field.
	progressrecordDescCourseID := progressrecordFields[1].Descriptor()
	// progressrecord.DefaultCourseID holds the default value on creation for the course_id field.
	progressrecord.DefaultCourseID = progressrecordDescCourseID.Default.(string)
	// progressrecordDescLessonID is the schema descriptor for lesson_id field.
	progressrecordDescLessonID := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultLessonID holds the default value on creation for the lesson_id field.
	progressrecord.DefaultLessonID = progressrecordDescLessonID.Default.(string)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
