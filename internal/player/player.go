package player

// Transitions for the lesson player state machine. All functions mutate
// the state synchronously; persistence is the caller's concern (it fires
// an autosave after any transition that returns true).

// BeginFresh leaves PhaseLoading with no saved progress: step 0, empty
// state, autosave armed.
func BeginFresh(s *State) {
	s.Phase = PhaseActive
	s.StepIndex = 0
	s.Answers = make(AnswersByStepID)
	s.Checked = make(CheckedByStepID)
	s.Result = nil
	s.AutosaveArmed = true
}

// PromptResume leaves PhaseLoading with saved progress pending. Autosave
// stays disarmed so the stored snapshot survives until the student
// decides.
func PromptResume(s *State) {
	s.Phase = PhaseResumePrompt
	s.AutosaveArmed = false
}

// Resume adopts saved progress: the step index is clamped into the
// lesson's bounds and answers/checked are filtered to step ids that
// still exist (the lesson may have been edited since the save).
func Resume(s *State, stepIndex int, answers AnswersByStepID, checked CheckedByStepID) {
	last := len(s.Lesson.Steps) - 1
	if last < 0 {
		last = 0
	}
	if stepIndex < 0 {
		stepIndex = 0
	}
	if stepIndex > last {
		stepIndex = last
	}

	valid := s.Lesson.StepIDs()
	s.Answers = make(AnswersByStepID, len(answers))
	for id, a := range answers {
		if valid[id] {
			s.Answers[id] = a
		}
	}
	s.Checked = make(CheckedByStepID, len(checked))
	for id, c := range checked {
		if valid[id] {
			s.Checked[id] = c
		}
	}

	s.StepIndex = stepIndex
	s.Phase = PhaseActive
	s.AutosaveArmed = true
}

// StartOver discards any saved or live progress and begins at step 0.
// The caller clears the persisted snapshot alongside.
func StartOver(s *State) {
	BeginFresh(s)
}

// CanCheck reports whether Check is enabled for the current step: an
// interactive, not-yet-checked step with an actionable answer.
func CanCheck(s *State) bool {
	if s.Phase != PhaseActive {
		return false
	}
	step := s.CurrentStep()
	if step == nil || !IsInteractiveStep(step) {
		return false
	}
	return !s.Checked[step.StepID()] && HasAnswer(step, s.Answers[step.StepID()])
}

// Check submits the current answer for evaluation. Returns true if the
// state changed.
func Check(s *State) bool {
	if !CanCheck(s) {
		return false
	}
	s.Checked[s.CurrentStep().StepID()] = true
	return true
}

// SetAnswer overwrites the current step's answer. Re-answering a checked
// step invalidates its feedback: the checked flag resets. Returns true
// if the state changed.
func SetAnswer(s *State, answer Answer) bool {
	if s.Phase != PhaseActive {
		return false
	}
	step := s.CurrentStep()
	if step == nil || !IsInteractiveStep(step) {
		return false
	}

	s.Answers[step.StepID()] = answer
	if s.Checked[step.StepID()] {
		s.Checked[step.StepID()] = false
	}
	return true
}

// CanAdvance reports whether Next is enabled: text steps always, any
// interactive step only once checked.
func CanAdvance(s *State) bool {
	if s.Phase != PhaseActive {
		return false
	}
	step := s.CurrentStep()
	if step == nil {
		return false
	}
	return !IsInteractiveStep(step) || s.Checked[step.StepID()]
}

// Advance moves to the next step, or finishes the lesson on the last
// one: the score report is computed and the phase becomes PhaseFinished.
// The caller clears persisted progress when finishing. Returns true if
// the state changed.
func Advance(s *State) bool {
	if !CanAdvance(s) {
		return false
	}

	if s.IsLastStep() {
		s.Result = ScoreLesson(s.Lesson, s.Answers, s.Checked)
		s.Phase = PhaseFinished
		return true
	}

	s.StepIndex++
	return true
}

// CanGoBack reports whether Back is enabled.
func CanGoBack(s *State) bool {
	return s.Phase == PhaseActive && s.StepIndex > 0
}

// GoBack moves to the previous step. Revisited steps keep their answers
// and checked flags. Returns true if the state changed.
func GoBack(s *State) bool {
	if !CanGoBack(s) {
		return false
	}
	s.StepIndex--
	return true
}

// Retry restarts a finished lesson from scratch. The caller clears
// persisted progress alongside.
func Retry(s *State) bool {
	if s.Phase != PhaseFinished {
		return false
	}
	BeginFresh(s)
	return true
}
