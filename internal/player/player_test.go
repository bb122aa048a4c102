package player

import (
	"testing"

	"github.com/pinagook/pinagook/internal/content"
)

func activeState(t *testing.T) *State {
	t.Helper()
	s := NewState(testLesson())
	BeginFresh(s)
	return s
}

func TestNewState_StartsLoadingDisarmed(t *testing.T) {
	s := NewState(testLesson())
	if s.Phase != PhaseLoading {
		t.Errorf("Phase = %v, want PhaseLoading", s.Phase)
	}
	if s.AutosaveArmed {
		t.Error("autosave must stay disarmed until the initial load resolves")
	}
}

func TestBeginFresh(t *testing.T) {
	s := NewState(testLesson())
	BeginFresh(s)

	if s.Phase != PhaseActive || s.StepIndex != 0 {
		t.Errorf("state = phase %v index %d, want active at 0", s.Phase, s.StepIndex)
	}
	if !s.AutosaveArmed {
		t.Error("autosave should be armed after a fresh begin")
	}
}

func TestResume_ClampsAndFilters(t *testing.T) {
	s := NewState(testLesson())
	answers := AnswersByStepID{
		"s2":   SingleChoiceAnswer{SelectedOptionID: "b"},
		"gone": FillBlankAnswer{Value: "stale"},
	}
	checked := CheckedByStepID{"s2": true, "gone": true}

	Resume(s, 99, answers, checked)

	if s.StepIndex != 2 {
		t.Errorf("StepIndex = %d, want clamp to last step 2", s.StepIndex)
	}
	if _, ok := s.Answers["gone"]; ok {
		t.Error("answers for removed steps should be dropped")
	}
	if _, ok := s.Answers["s2"]; !ok {
		t.Error("answers for existing steps should survive")
	}
	if s.Checked["gone"] {
		t.Error("checked flags for removed steps should be dropped")
	}
	if !s.AutosaveArmed {
		t.Error("autosave should be armed after resume")
	}

	Resume(s, -5, AnswersByStepID{}, CheckedByStepID{})
	if s.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want negative index clamped to 0", s.StepIndex)
	}
}

func TestPromptResume_KeepsAutosaveDisarmed(t *testing.T) {
	s := NewState(testLesson())
	PromptResume(s)
	if s.Phase != PhaseResumePrompt {
		t.Errorf("Phase = %v, want PhaseResumePrompt", s.Phase)
	}
	if s.AutosaveArmed {
		t.Error("the stored snapshot must survive until the student decides")
	}
}

func TestCheck_RequiresActionableAnswer(t *testing.T) {
	s := activeState(t)

	// Text step: never checkable.
	if CanCheck(s) {
		t.Error("text step should not be checkable")
	}

	// Move to the choice step with no answer.
	if !Advance(s) {
		t.Fatal("advance off text step failed")
	}
	if CanCheck(s) {
		t.Error("unanswered step should not be checkable")
	}
	if Check(s) {
		t.Error("Check on unanswered step should be a no-op")
	}

	SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "a"})
	if !CanCheck(s) {
		t.Error("answered step should be checkable")
	}
	if !Check(s) {
		t.Error("Check should succeed")
	}
	if !s.CurrentChecked() {
		t.Error("checked flag should be set")
	}

	// Second check is a no-op.
	if Check(s) {
		t.Error("re-checking a checked step should be a no-op")
	}
}

func TestSetAnswer_ResetsCheckedFlag(t *testing.T) {
	s := activeState(t)
	Advance(s)
	SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "a"})
	Check(s)

	if !SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "b"}) {
		t.Fatal("SetAnswer failed")
	}
	if s.CurrentChecked() {
		t.Error("changing the answer must reset the checked flag")
	}
}

func TestSetAnswer_IgnoredOnTextStep(t *testing.T) {
	s := activeState(t)
	if SetAnswer(s, FillBlankAnswer{Value: "x"}) {
		t.Error("text steps take no answers")
	}
}

func TestAdvance_GatedOnCheck(t *testing.T) {
	s := activeState(t)

	// Text steps advance freely.
	if !CanAdvance(s) {
		t.Error("text step should advance freely")
	}
	Advance(s)

	// Interactive step blocks until checked.
	if CanAdvance(s) {
		t.Error("unchecked interactive step should block Next")
	}
	SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "b"})
	if CanAdvance(s) {
		t.Error("answered but unchecked step should still block Next")
	}
	Check(s)
	if !CanAdvance(s) {
		t.Error("checked step should allow Next")
	}
}

func TestAdvance_LastStepFinishes(t *testing.T) {
	s := activeState(t)
	Advance(s)
	SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "b"})
	Check(s)
	Advance(s)
	SetAnswer(s, FillBlankAnswer{Value: "go"})
	Check(s)

	if !s.IsLastStep() {
		t.Fatal("should be on the last step")
	}
	if !Advance(s) {
		t.Fatal("final advance failed")
	}
	if s.Phase != PhaseFinished {
		t.Errorf("Phase = %v, want PhaseFinished", s.Phase)
	}
	if s.Result == nil {
		t.Fatal("Result should be set on finish")
	}
	if s.Result.CorrectCount != 2 || s.Result.PercentCorrect != 100 {
		t.Errorf("Result = %+v, want 2 correct, 100%%", s.Result)
	}

	// Terminal: no further transitions.
	if Advance(s) || GoBack(s) || Check(s) {
		t.Error("finished lesson should ignore step transitions")
	}
}

func TestGoBack_PreservesState(t *testing.T) {
	s := activeState(t)

	if CanGoBack(s) {
		t.Error("first step has no Back")
	}

	Advance(s)
	SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "b"})
	Check(s)

	if !GoBack(s) {
		t.Fatal("GoBack failed")
	}
	if s.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0", s.StepIndex)
	}

	// Forward again: answer and checked flag survive.
	Advance(s)
	if s.CurrentAnswer() == nil {
		t.Error("revisited step should keep its answer")
	}
	if !s.CurrentChecked() {
		t.Error("revisited step should keep its checked flag")
	}
}

func TestRetry_OnlyFromFinished(t *testing.T) {
	s := activeState(t)
	if Retry(s) {
		t.Error("Retry outside PhaseFinished should be a no-op")
	}

	Advance(s)
	SetAnswer(s, SingleChoiceAnswer{SelectedOptionID: "a"})
	Check(s)
	Advance(s)
	SetAnswer(s, FillBlankAnswer{Value: "went"})
	Check(s)
	Advance(s)

	if !Retry(s) {
		t.Fatal("Retry from PhaseFinished failed")
	}
	if s.Phase != PhaseActive || s.StepIndex != 0 {
		t.Errorf("state = phase %v index %d, want active at 0", s.Phase, s.StepIndex)
	}
	if len(s.Answers) != 0 || len(s.Checked) != 0 {
		t.Error("Retry should clear answers and checked flags")
	}
	if s.Result != nil {
		t.Error("Retry should clear the previous result")
	}
}

func TestCurrentStep_EmptyLesson(t *testing.T) {
	s := NewState(&content.Lesson{ID: "empty"})
	BeginFresh(s)
	if s.CurrentStep() != nil {
		t.Error("empty lesson has no current step")
	}
	if CanAdvance(s) || CanCheck(s) || CanGoBack(s) {
		t.Error("empty lesson allows no step transitions")
	}
}
