package player

import (
	"strings"

	"github.com/pinagook/pinagook/internal/content"
)

// Normalize prepares a free-text answer for comparison: trimmed and
// ASCII lower-cased. Idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsInteractiveStep reports whether the step requires a student answer.
func IsInteractiveStep(step content.Step) bool {
	switch step.(type) {
	case content.StepSingleChoice, content.StepFillBlank:
		return true
	}
	return false
}

// HasAnswer reports whether the answer is actionable for the step: the
// right union member with non-empty content. Text steps never have an
// answer; a type-mismatched answer counts as absent.
func HasAnswer(step content.Step, answer Answer) bool {
	if answer == nil {
		return false
	}

	switch step.(type) {
	case content.StepSingleChoice:
		a, ok := answer.(SingleChoiceAnswer)
		return ok && a.SelectedOptionID != ""
	case content.StepFillBlank:
		a, ok := answer.(FillBlankAnswer)
		return ok && strings.TrimSpace(a.Value) != ""
	}
	return false
}

// IsCorrect reports whether the answer satisfies the step. Single-choice
// compares option ids exactly; fill-blank compares normalized values
// against every acceptable answer.
func IsCorrect(step content.Step, answer Answer) bool {
	if answer == nil {
		return false
	}

	switch step := step.(type) {
	case content.StepSingleChoice:
		a, ok := answer.(SingleChoiceAnswer)
		return ok && a.SelectedOptionID == step.CorrectOptionID

	case content.StepFillBlank:
		a, ok := answer.(FillBlankAnswer)
		if !ok {
			return false
		}
		got := Normalize(a.Value)
		for _, want := range step.CorrectAnswers {
			if Normalize(want) == got {
				return true
			}
		}
		return false

	default:
		return false
	}
}
