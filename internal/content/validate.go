package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// rawCourse mirrors the course file layout before step decoding.
type rawCourse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Lessons     []rawLesson `json:"lessons"`
}

type rawLesson struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Steps       []json.RawMessage `json:"steps"`
}

// stepTag is decoded first to pick the concrete step type.
type stepTag struct {
	ID   string   `json:"id"`
	Type StepType `json:"type"`
}

// DecodeCourse parses and validates a course file. The structural schema
// runs first; referential rules (unique ids, correctOptionId membership,
// blank markers) are checked while building the typed model.
func DecodeCourse(raw []byte) (*Course, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var rc rawCourse
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}

	course := &Course{
		ID:          rc.ID,
		Title:       rc.Title,
		Description: rc.Description,
	}

	lessonIDs := make(map[string]bool, len(rc.Lessons))
	for _, rl := range rc.Lessons {
		if lessonIDs[rl.ID] {
			return nil, fmt.Errorf("course %s: duplicate lesson id %q", rc.ID, rl.ID)
		}
		lessonIDs[rl.ID] = true

		lesson, err := decodeLesson(rl, rc.ID)
		if err != nil {
			return nil, err
		}
		course.Lessons = append(course.Lessons, *lesson)
	}

	return course, nil
}

func decodeLesson(rl rawLesson, courseID string) (*Lesson, error) {
	lesson := &Lesson{
		ID:          rl.ID,
		CourseID:    courseID,
		Title:       rl.Title,
		Description: rl.Description,
	}

	stepIDs := make(map[string]bool, len(rl.Steps))
	for i, rawStep := range rl.Steps {
		step, err := decodeStep(rawStep)
		if err != nil {
			return nil, fmt.Errorf("lesson %s: step %d: %w", rl.ID, i, err)
		}
		if stepIDs[step.StepID()] {
			return nil, fmt.Errorf("lesson %s: duplicate step id %q", rl.ID, step.StepID())
		}
		stepIDs[step.StepID()] = true
		lesson.Steps = append(lesson.Steps, step)
	}

	return lesson, nil
}

func decodeStep(raw json.RawMessage) (Step, error) {
	var tag stepTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("decode step tag: %w", err)
	}

	switch tag.Type {
	case StepTypeText:
		var s StepText
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode text step %s: %w", tag.ID, err)
		}
		return s, nil

	case StepTypeSingleChoice:
		var s StepSingleChoice
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode single_choice step %s: %w", tag.ID, err)
		}
		optionIDs := make(map[string]bool, len(s.Options))
		for _, opt := range s.Options {
			if optionIDs[opt.ID] {
				return nil, fmt.Errorf("step %s: duplicate option id %q", s.ID, opt.ID)
			}
			optionIDs[opt.ID] = true
		}
		if !optionIDs[s.CorrectOptionID] {
			return nil, fmt.Errorf("step %s: correctOptionId %q not among options", s.ID, s.CorrectOptionID)
		}
		return s, nil

	case StepTypeFillBlank:
		var s StepFillBlank
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode fill_blank step %s: %w", tag.ID, err)
		}
		if !strings.Contains(s.Sentence, BlankMarker) {
			return nil, fmt.Errorf("step %s: sentence has no %q marker", s.ID, BlankMarker)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("step %s: unknown type %q", tag.ID, tag.Type)
	}
}
