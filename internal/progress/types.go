package progress

import (
	"time"

	"github.com/pinagook/pinagook/internal/player"
)

// Version is the stored snapshot format version. Loads reject anything else.
const Version = 1

// KeyPrefix namespaces progress records in the storage backend.
const KeyPrefix = "pinagook:progress"

// ResultSummary is an optional record of the last finished run.
type ResultSummary struct {
	CorrectCount     int   `json:"correctCount"`
	TotalInteractive int   `json:"totalInteractive"`
	Percent          int   `json:"percent"`
	FinishedAt       int64 `json:"finishedAt"` // unix millis
}

// StoredProgress is the durable snapshot of one lesson session, one
// record per (courseId, lessonId). Overwritten on every state change,
// deleted on finish or restart.
type StoredProgress struct {
	Version          int                    `json:"version"`
	CourseID         string                 `json:"courseId"`
	LessonID         string                 `json:"lessonId"`
	CurrentStepIndex int                    `json:"currentStepIndex"`
	Answers          player.AnswersByStepID `json:"answers"`
	Checked          player.CheckedByStepID `json:"checked"`
	UpdatedAt        int64                  `json:"updatedAt"` // unix millis
	ResultSummary    *ResultSummary         `json:"resultSummary,omitempty"`
}

// Snapshot builds a StoredProgress from live player state, stamped now.
func Snapshot(courseID, lessonID string, s *player.State) *StoredProgress {
	return &StoredProgress{
		Version:          Version,
		CourseID:         courseID,
		LessonID:         lessonID,
		CurrentStepIndex: s.StepIndex,
		Answers:          s.Answers,
		Checked:          s.Checked,
		UpdatedAt:        time.Now().UnixMilli(),
	}
}
