package player

import "github.com/pinagook/pinagook/internal/content"

// Phase is the lesson player's lifecycle phase.
type Phase int

const (
	// PhaseLoading covers the initial progress load; no transitions run
	// and autosave stays disarmed until it resolves.
	PhaseLoading Phase = iota

	// PhaseResumePrompt waits for the student to choose between resuming
	// saved progress and starting over.
	PhaseResumePrompt

	// PhaseActive serves steps.
	PhaseActive

	// PhaseFinished is terminal for this lesson run; Result is set.
	PhaseFinished
)

// State is the in-memory session state for one lesson run. It is owned
// by a single goroutine; all transitions are synchronous.
type State struct {
	Lesson *content.Lesson

	Phase     Phase
	StepIndex int
	Answers   AnswersByStepID
	Checked   CheckedByStepID

	// Result is the final score report, set when Phase is PhaseFinished.
	Result *LessonResult

	// AutosaveArmed gates persistence. It stays false until the initial
	// progress load resolves so a default snapshot can never clobber a
	// real one.
	AutosaveArmed bool
}

// NewState creates a fresh state in PhaseLoading.
func NewState(lesson *content.Lesson) *State {
	return &State{
		Lesson:  lesson,
		Phase:   PhaseLoading,
		Answers: make(AnswersByStepID),
		Checked: make(CheckedByStepID),
	}
}

// CurrentStep returns the active step, or nil when the lesson is empty.
func (s *State) CurrentStep() content.Step {
	if s.StepIndex < 0 || s.StepIndex >= len(s.Lesson.Steps) {
		return nil
	}
	return s.Lesson.Steps[s.StepIndex]
}

// IsFirstStep reports whether the active step is the first.
func (s *State) IsFirstStep() bool { return s.StepIndex == 0 }

// IsLastStep reports whether the active step is the last.
func (s *State) IsLastStep() bool { return s.StepIndex == len(s.Lesson.Steps)-1 }

// CurrentAnswer returns the active step's answer, or nil.
func (s *State) CurrentAnswer() Answer {
	step := s.CurrentStep()
	if step == nil {
		return nil
	}
	return s.Answers[step.StepID()]
}

// CurrentChecked reports whether the active step has been checked.
func (s *State) CurrentChecked() bool {
	step := s.CurrentStep()
	if step == nil {
		return false
	}
	return s.Checked[step.StepID()]
}
