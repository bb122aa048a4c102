package progress

import (
	"encoding/json"
	"time"

	"github.com/pinagook/pinagook/internal/player"
)

// Serialize encodes a snapshot as JSON.
func Serialize(p *StoredProgress) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// rawProgress defers each field's decode so one damaged field cannot
// reject the whole record.
type rawProgress struct {
	Version          json.RawMessage `json:"version"`
	CourseID         json.RawMessage `json:"courseId"`
	LessonID         json.RawMessage `json:"lessonId"`
	CurrentStepIndex json.RawMessage `json:"currentStepIndex"`
	Answers          json.RawMessage `json:"answers"`
	Checked          json.RawMessage `json:"checked"`
	UpdatedAt        json.RawMessage `json:"updatedAt"`
	ResultSummary    json.RawMessage `json:"resultSummary"`
}

// Deserialize parses a stored snapshot defensively. The record is
// rejected (nil) only when it is unusable: bad JSON, wrong version, or
// missing ids. Every other field is decoded independently and repaired
// to a safe default when damaged, so a bad field does not lose the
// student's progress.
func Deserialize(raw string) *StoredProgress {
	var r rawProgress
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil
	}

	var version int
	if json.Unmarshal(r.Version, &version) != nil || version != Version {
		return nil
	}
	var courseID, lessonID string
	if json.Unmarshal(r.CourseID, &courseID) != nil || courseID == "" {
		return nil
	}
	if json.Unmarshal(r.LessonID, &lessonID) != nil || lessonID == "" {
		return nil
	}

	p := &StoredProgress{
		Version:  Version,
		CourseID: courseID,
		LessonID: lessonID,
	}

	if json.Unmarshal(r.CurrentStepIndex, &p.CurrentStepIndex) != nil || p.CurrentStepIndex < 0 {
		p.CurrentStepIndex = 0
	}
	if json.Unmarshal(r.Answers, &p.Answers) != nil || p.Answers == nil {
		p.Answers = make(player.AnswersByStepID)
	}
	if json.Unmarshal(r.Checked, &p.Checked) != nil || p.Checked == nil {
		p.Checked = make(player.CheckedByStepID)
	}
	if json.Unmarshal(r.UpdatedAt, &p.UpdatedAt) != nil || p.UpdatedAt <= 0 {
		p.UpdatedAt = time.Now().UnixMilli()
	}
	if r.ResultSummary != nil {
		var rs ResultSummary
		if json.Unmarshal(r.ResultSummary, &rs) == nil {
			p.ResultSummary = &rs
		}
	}

	return p
}
