package player

import (
	"math"

	"github.com/pinagook/pinagook/internal/content"
)

// StepResult is the scored outcome of one checked interactive step. It
// is a sealed union mirroring the interactive step types.
type StepResult interface {
	// ResultStepID returns the id of the scored step.
	ResultStepID() string

	// Correct reports whether the checked answer was correct.
	Correct() bool

	stepResult()
}

// SingleChoiceResult carries option text (not ids) for display.
type SingleChoiceResult struct {
	StepID        string
	IsCorrect     bool
	Prompt        string // the question
	UserAnswer    string // selected option text
	CorrectAnswer string // correct option text
	Explanation   string
}

func (r SingleChoiceResult) ResultStepID() string { return r.StepID }
func (r SingleChoiceResult) Correct() bool        { return r.IsCorrect }
func (SingleChoiceResult) stepResult()            {}

// FillBlankResult carries the raw typed value and the full acceptable set.
type FillBlankResult struct {
	StepID         string
	IsCorrect      bool
	Prompt         string // the sentence
	UserAnswer     string // raw, non-normalized input
	CorrectAnswers []string
	Explanation    string
}

func (r FillBlankResult) ResultStepID() string { return r.StepID }
func (r FillBlankResult) Correct() bool        { return r.IsCorrect }
func (FillBlankResult) stepResult()            {}

// LessonResult is the final score report for a completed lesson.
//
// TotalInteractiveSteps counts every interactive step in the lesson;
// StepResults holds only the steps that were actually checked. A lesson
// finished with unanswered interactive steps therefore reports a percent
// against the full count but a shorter breakdown list. That asymmetry is
// intended behavior, not a bug.
type LessonResult struct {
	TotalInteractiveSteps int
	CorrectCount          int
	PercentCorrect        int // 0-100, rounded
	StepResults           []StepResult
}

// ScoreStep scores one step. Returns nil for text steps, absent answers,
// unchecked steps, and single-choice answers whose option ids no longer
// resolve (stale progress against edited content).
func ScoreStep(step content.Step, answer Answer, isChecked bool) StepResult {
	if answer == nil || !isChecked {
		return nil
	}

	switch step := step.(type) {
	case content.StepSingleChoice:
		a, ok := answer.(SingleChoiceAnswer)
		if !ok {
			return nil
		}
		selected, ok := step.OptionByID(a.SelectedOptionID)
		if !ok {
			return nil
		}
		correct, ok := step.OptionByID(step.CorrectOptionID)
		if !ok {
			return nil
		}
		return SingleChoiceResult{
			StepID:        step.ID,
			IsCorrect:     a.SelectedOptionID == step.CorrectOptionID,
			Prompt:        step.Question,
			UserAnswer:    selected.Text,
			CorrectAnswer: correct.Text,
			Explanation:   step.Explanation,
		}

	case content.StepFillBlank:
		a, ok := answer.(FillBlankAnswer)
		if !ok {
			return nil
		}
		return FillBlankResult{
			StepID:         step.ID,
			IsCorrect:      IsCorrect(step, a),
			Prompt:         step.Sentence,
			UserAnswer:     a.Value,
			CorrectAnswers: step.CorrectAnswers,
			Explanation:    step.Explanation,
		}
	}

	return nil
}

// ScoreLesson computes the final report from the lesson content and the
// session's answer/checked state. Only checked steps produce StepResults;
// the percentage denominator still counts every interactive step.
func ScoreLesson(lesson *content.Lesson, answers AnswersByStepID, checked CheckedByStepID) *LessonResult {
	result := &LessonResult{}

	for _, step := range lesson.Steps {
		if !IsInteractiveStep(step) {
			continue
		}
		result.TotalInteractiveSteps++

		sr := ScoreStep(step, answers[step.StepID()], checked[step.StepID()])
		if sr == nil {
			continue
		}
		result.StepResults = append(result.StepResults, sr)
		if sr.Correct() {
			result.CorrectCount++
		}
	}

	if result.TotalInteractiveSteps > 0 {
		pct := float64(result.CorrectCount) / float64(result.TotalInteractiveSteps) * 100
		result.PercentCorrect = int(math.Round(pct))
	}

	return result
}
