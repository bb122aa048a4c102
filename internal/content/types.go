package content

// StepType discriminates the step union.
type StepType string

const (
	StepTypeText         StepType = "text"
	StepTypeSingleChoice StepType = "single_choice"
	StepTypeFillBlank    StepType = "fill_blank"
)

// BlankMarker is the placeholder inside a fill-blank sentence.
const BlankMarker = "____"

// Step is one atomic unit of lesson content. It is a sealed union over
// StepText, StepSingleChoice and StepFillBlank; consumers branch with a
// type switch.
type Step interface {
	// StepID returns the step's unique id within its lesson.
	StepID() string

	// Type returns the union tag.
	Type() StepType

	step()
}

// Option is one selectable answer of a single-choice step.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// StepText is a non-interactive informational step.
type StepText struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
	Content string `json:"content"`
}

func (s StepText) StepID() string { return s.ID }
func (s StepText) Type() StepType { return StepTypeText }
func (StepText) step()            {}

// StepSingleChoice asks the student to pick one of several options.
type StepSingleChoice struct {
	ID              string   `json:"id"`
	Title           string   `json:"title,omitempty"`
	Prompt          string   `json:"prompt,omitempty"`
	Question        string   `json:"question"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
	Explanation     string   `json:"explanation,omitempty"`
}

func (s StepSingleChoice) StepID() string { return s.ID }
func (s StepSingleChoice) Type() StepType { return StepTypeSingleChoice }
func (StepSingleChoice) step()            {}

// OptionByID resolves an option by id. Returns false if no option matches.
func (s StepSingleChoice) OptionByID(id string) (Option, bool) {
	for _, opt := range s.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// StepFillBlank asks the student to type the word missing from a sentence.
// Sentence contains exactly one BlankMarker.
type StepFillBlank struct {
	ID             string   `json:"id"`
	Title          string   `json:"title,omitempty"`
	Prompt         string   `json:"prompt,omitempty"`
	Sentence       string   `json:"sentence"`
	CorrectAnswers []string `json:"correctAnswers"`
	Explanation    string   `json:"explanation,omitempty"`
}

func (s StepFillBlank) StepID() string { return s.ID }
func (s StepFillBlank) Type() StepType { return StepTypeFillBlank }
func (StepFillBlank) step()            {}

// Lesson is an ordered sequence of steps. Immutable after validation.
type Lesson struct {
	ID          string
	CourseID    string
	Title       string
	Description string
	Steps       []Step
}

// StepIDs returns the set of step ids in the lesson.
func (l *Lesson) StepIDs() map[string]bool {
	ids := make(map[string]bool, len(l.Steps))
	for _, s := range l.Steps {
		ids[s.StepID()] = true
	}
	return ids
}

// Course groups lessons under a single title.
type Course struct {
	ID          string
	Title       string
	Description string
	Lessons     []Lesson
}

// LessonByID returns the lesson with the given id, or nil.
func (c *Course) LessonByID(id string) *Lesson {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i]
		}
	}
	return nil
}
