package store

import (
	"context"
	"time"
)

// AnswerEventData captures one checked answer.
type AnswerEventData struct {
	SessionID string
	CourseID  string
	LessonID  string
	StepID    string
	StepType  string
	Correct   bool
}

// LessonEventData captures a lesson run lifecycle event. The score
// fields are meaningful only for ActionFinished.
type LessonEventData struct {
	SessionID        string
	CourseID         string
	LessonID         string
	Action           string
	CorrectCount     int
	TotalInteractive int
	Percent          int
}

// Lesson event actions.
const (
	ActionStarted  = "started"
	ActionFinished = "finished"
	ActionReset    = "reset"
)

// LessonStat aggregates finished runs of one lesson for the stats view.
type LessonStat struct {
	CourseID     string
	LessonID     string
	Finishes     int
	BestPercent  int
	LastPercent  int
	LastFinished time.Time
}

// EventRepo provides append access to play telemetry and the aggregate
// queries the stats command reads.
type EventRepo interface {
	// AppendAnswer records a checked answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLesson records a lesson lifecycle event.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// LessonStats aggregates finished runs grouped by (course, lesson).
	LessonStats(ctx context.Context) ([]LessonStat, error)

	// AnswerAccuracy returns the all-time correct ratio for a lesson,
	// or 0 when no answers were recorded.
	AnswerAccuracy(ctx context.Context, courseID, lessonID string) (float64, error)
}
