package player

import (
	"encoding/json"
	"fmt"

	"github.com/pinagook/pinagook/internal/content"
)

// Answer is the student's current input for a step. It is a sealed union
// mirroring the interactive step types.
type Answer interface {
	// Type returns the step type this answer belongs to.
	Type() content.StepType

	answer()
}

// SingleChoiceAnswer records the selected option of a single-choice step.
type SingleChoiceAnswer struct {
	SelectedOptionID string `json:"selectedOptionId"`
}

func (SingleChoiceAnswer) Type() content.StepType { return content.StepTypeSingleChoice }
func (SingleChoiceAnswer) answer()                {}

// FillBlankAnswer records the raw typed value of a fill-blank step.
type FillBlankAnswer struct {
	Value string `json:"value"`
}

func (FillBlankAnswer) Type() content.StepType { return content.StepTypeFillBlank }
func (FillBlankAnswer) answer()                {}

// AnswersByStepID maps step id to the student's current answer. Entries
// exist only for steps the student has touched.
type AnswersByStepID map[string]Answer

// CheckedByStepID maps step id to whether its answer has been submitted
// for evaluation.
type CheckedByStepID map[string]bool

// taggedAnswer is the wire form of an Answer.
type taggedAnswer struct {
	Type             content.StepType `json:"type"`
	SelectedOptionID string           `json:"selectedOptionId,omitempty"`
	Value            string           `json:"value,omitempty"`
}

// MarshalJSON encodes each answer with its type tag.
func (m AnswersByStepID) MarshalJSON() ([]byte, error) {
	out := make(map[string]taggedAnswer, len(m))
	for id, a := range m {
		switch a := a.(type) {
		case SingleChoiceAnswer:
			out[id] = taggedAnswer{Type: content.StepTypeSingleChoice, SelectedOptionID: a.SelectedOptionID}
		case FillBlankAnswer:
			out[id] = taggedAnswer{Type: content.StepTypeFillBlank, Value: a.Value}
		default:
			return nil, fmt.Errorf("answer for step %s: unknown type %T", id, a)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes tagged answers. Entries with an unknown tag are
// dropped rather than failing the whole map; resuming with partial
// answers beats losing them all.
func (m *AnswersByStepID) UnmarshalJSON(data []byte) error {
	var raw map[string]taggedAnswer
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(AnswersByStepID, len(raw))
	for id, t := range raw {
		switch t.Type {
		case content.StepTypeSingleChoice:
			out[id] = SingleChoiceAnswer{SelectedOptionID: t.SelectedOptionID}
		case content.StepTypeFillBlank:
			out[id] = FillBlankAnswer{Value: t.Value}
		}
	}
	*m = out
	return nil
}
