package lesson

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/player"
	"github.com/pinagook/pinagook/internal/progress"
	"github.com/pinagook/pinagook/internal/router"
	"github.com/pinagook/pinagook/internal/screen"
	"github.com/pinagook/pinagook/internal/store"
	"github.com/pinagook/pinagook/internal/ui/components"
	"github.com/pinagook/pinagook/internal/ui/layout"
)

// LessonScreen runs one lesson session: loading, the resume prompt,
// the step loop, and the final score report.
type LessonScreen struct {
	course    *content.Course
	lesson    *content.Lesson
	progress  *progress.Service
	events    store.EventRepo
	sessionID string

	state *player.State
	saved *progress.StoredProgress

	choice components.ChoiceList
	blank  components.BlankInput
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson session screen. The player state starts in the
// loading phase until the stored progress read resolves.
func New(course *content.Course, lesson *content.Lesson, progressSvc *progress.Service, events store.EventRepo) *LessonScreen {
	return &LessonScreen{
		course:    course,
		lesson:    lesson,
		progress:  progressSvc,
		events:    events,
		sessionID: uuid.New().String(),
		state:     player.NewState(lesson),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return l.loadProgress()
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	switch l.state.Phase {
	case player.PhaseResumePrompt:
		return []layout.KeyHint{
			{Key: "C", Description: "Continue"},
			{Key: "S", Description: "Start over"},
			{Key: "Esc", Description: "Back"},
		}
	case player.PhaseFinished:
		hints := []layout.KeyHint{
			{Key: "R", Description: "Retry"},
		}
		if l.nextLesson() != nil {
			hints = append(hints, layout.KeyHint{Key: "N", Description: "Next lesson"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case player.PhaseActive:
		hints := []layout.KeyHint{}
		step := l.state.CurrentStep()
		if player.IsInteractiveStep(step) && !l.state.CurrentChecked() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check"})
		} else if l.state.IsLastStep() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
		}
		if player.CanGoBack(l.state) {
			hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Back"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Exit lesson"})
	}
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		return l.handleProgressLoaded(msg)

	case progressSavedMsg, eventLoggedMsg:
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	// Everything else feeds the active input component.
	if l.state.Phase == player.PhaseActive {
		if _, ok := l.state.CurrentStep().(content.StepFillBlank); ok {
			var cmd tea.Cmd
			l.blank, cmd = l.blank.Update(msg)
			return l, cmd
		}
	}

	return l, nil
}

func (l *LessonScreen) handleProgressLoaded(msg progressLoadedMsg) (screen.Screen, tea.Cmd) {
	if l.state.Phase != player.PhaseLoading {
		return l, nil
	}

	if msg.Saved == nil {
		player.BeginFresh(l.state)
		l.syncComponents()
		return l, l.logLesson(store.ActionStarted, nil)
	}

	l.saved = msg.Saved
	player.PromptResume(l.state)
	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch l.state.Phase {
	case player.PhaseResumePrompt:
		return l.handleResumeKey(msg)
	case player.PhaseActive:
		return l.handleActiveKey(msg)
	case player.PhaseFinished:
		return l.handleFinishedKey(msg)
	}
	return l, nil
}

func (l *LessonScreen) handleResumeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "c", "enter":
		player.Resume(l.state, l.saved.CurrentStepIndex, l.saved.Answers, l.saved.Checked)
		l.saved = nil
		l.syncComponents()
		return l, tea.Batch(l.autosave(), l.logLesson(store.ActionStarted, nil))
	case "s":
		player.StartOver(l.state)
		l.saved = nil
		l.syncComponents()
		return l, tea.Batch(
			l.clearProgress(),
			l.logLesson(store.ActionReset, nil),
			l.logLesson(store.ActionStarted, nil),
		)
	}
	return l, nil
}

func (l *LessonScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	step := l.state.CurrentStep()
	key := msg.String()

	if key == "shift+tab" {
		if player.GoBack(l.state) {
			l.syncComponents()
			return l, l.autosave()
		}
		return l, nil
	}

	switch step.(type) {
	case content.StepText:
		if key == "enter" {
			return l.advance()
		}

	case content.StepSingleChoice:
		switch key {
		case "enter":
			return l.checkOrAdvance()
		case "up", "k", "down", "j":
			before := l.choice.Cursor
			var cmd tea.Cmd
			l.choice, cmd = l.choice.Update(msg)
			if l.choice.Cursor == before {
				return l, cmd
			}
			// Re-selecting invalidates any existing check.
			player.SetAnswer(l.state, player.SingleChoiceAnswer{
				SelectedOptionID: l.choice.Selected().ID,
			})
			l.choice.Checked = l.state.CurrentChecked()
			l.choice.ChosenOptionID = l.choice.Selected().ID
			return l, tea.Batch(cmd, l.autosave())
		}

	case content.StepFillBlank:
		if key == "enter" {
			return l.checkOrAdvance()
		}
		before := l.blank.Value()
		var cmd tea.Cmd
		l.blank, cmd = l.blank.Update(msg)
		if l.blank.Value() == before {
			return l, cmd
		}
		// Editing the value invalidates any existing check.
		if player.SetAnswer(l.state, player.FillBlankAnswer{Value: l.blank.Value()}) {
			if !l.state.CurrentChecked() {
				l.blank.ResetChecked()
			}
			return l, tea.Batch(cmd, l.autosave())
		}
		return l, cmd
	}

	return l, nil
}

// checkOrAdvance runs the Enter key on an interactive step: first press
// checks the answer, second press moves on.
func (l *LessonScreen) checkOrAdvance() (screen.Screen, tea.Cmd) {
	if player.CanCheck(l.state) {
		step := l.state.CurrentStep()
		answer := l.state.CurrentAnswer()
		if !player.Check(l.state) {
			return l, nil
		}
		l.syncFeedback()
		return l, tea.Batch(
			l.autosave(),
			l.logAnswer(step, player.IsCorrect(step, answer)),
		)
	}
	return l.advance()
}

func (l *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	if !player.Advance(l.state) {
		return l, nil
	}

	if l.state.Phase == player.PhaseFinished {
		result := l.state.Result
		return l, tea.Batch(
			l.clearProgress(),
			l.logLesson(store.ActionFinished, result),
		)
	}

	l.syncComponents()
	return l, l.autosave()
}

func (l *LessonScreen) handleFinishedKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		if player.Retry(l.state) {
			l.syncComponents()
			return l, tea.Batch(
				l.clearProgress(),
				l.logLesson(store.ActionReset, nil),
				l.logLesson(store.ActionStarted, nil),
			)
		}
	case "n":
		if next := l.nextLesson(); next != nil {
			course, events, prog := l.course, l.events, l.progress
			return l, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: New(course, next, prog, events),
				}
			}
		}
	}
	return l, nil
}

// nextLesson returns the lesson after this one in the course, or nil.
func (l *LessonScreen) nextLesson() *content.Lesson {
	for i := range l.course.Lessons {
		if l.course.Lessons[i].ID == l.lesson.ID && i+1 < len(l.course.Lessons) {
			return &l.course.Lessons[i+1]
		}
	}
	return nil
}

// syncComponents rebuilds the input components for the current step,
// seeding them from any existing answer.
func (l *LessonScreen) syncComponents() {
	switch step := l.state.CurrentStep().(type) {
	case content.StepSingleChoice:
		chosen := ""
		if a, ok := l.state.CurrentAnswer().(player.SingleChoiceAnswer); ok {
			chosen = a.SelectedOptionID
		}
		l.choice = components.NewChoiceList(step, chosen)
		l.choice.Checked = l.state.CurrentChecked()

	case content.StepFillBlank:
		value := ""
		if a, ok := l.state.CurrentAnswer().(player.FillBlankAnswer); ok {
			value = a.Value
		}
		l.blank = components.NewBlankInput(value)
		l.syncFeedback()
	}
}

// syncFeedback pushes the checked verdict into the active component.
func (l *LessonScreen) syncFeedback() {
	if !l.state.CurrentChecked() {
		return
	}
	step := l.state.CurrentStep()
	correct := player.IsCorrect(step, l.state.CurrentAnswer())

	switch step.(type) {
	case content.StepSingleChoice:
		l.choice.Checked = true
		if a, ok := l.state.CurrentAnswer().(player.SingleChoiceAnswer); ok {
			l.choice.ChosenOptionID = a.SelectedOptionID
		}
	case content.StepFillBlank:
		l.blank.SetChecked(correct)
	}
}

// loadProgress reads the stored snapshot off the UI goroutine.
func (l *LessonScreen) loadProgress() tea.Cmd {
	return func() tea.Msg {
		saved := l.progress.Load(context.Background(), l.course.ID, l.lesson.ID)
		return progressLoadedMsg{Saved: saved}
	}
}

// autosave persists the current state. It is a no-op until the initial
// load resolves and after the lesson finishes.
func (l *LessonScreen) autosave() tea.Cmd {
	if !l.state.AutosaveArmed || l.state.Phase == player.PhaseFinished {
		return nil
	}
	snap := progress.Snapshot(l.course.ID, l.lesson.ID, l.state)
	return func() tea.Msg {
		l.progress.Save(context.Background(), snap)
		return progressSavedMsg{}
	}
}

func (l *LessonScreen) clearProgress() tea.Cmd {
	return func() tea.Msg {
		l.progress.Clear(context.Background(), l.course.ID, l.lesson.ID)
		return progressSavedMsg{}
	}
}

func (l *LessonScreen) logAnswer(step content.Step, correct bool) tea.Cmd {
	if l.events == nil {
		return nil
	}
	data := store.AnswerEventData{
		SessionID: l.sessionID,
		CourseID:  l.course.ID,
		LessonID:  l.lesson.ID,
		StepID:    step.StepID(),
		StepType:  string(step.Type()),
		Correct:   correct,
	}
	return func() tea.Msg {
		_ = l.events.AppendAnswer(context.Background(), data)
		return eventLoggedMsg{}
	}
}

func (l *LessonScreen) logLesson(action string, result *player.LessonResult) tea.Cmd {
	if l.events == nil {
		return nil
	}
	data := store.LessonEventData{
		SessionID: l.sessionID,
		CourseID:  l.course.ID,
		LessonID:  l.lesson.ID,
		Action:    action,
	}
	if result != nil {
		data.CorrectCount = result.CorrectCount
		data.TotalInteractive = result.TotalInteractiveSteps
		data.Percent = result.PercentCorrect
	}
	return func() tea.Msg {
		_ = l.events.AppendLesson(context.Background(), data)
		return eventLoggedMsg{}
	}
}
