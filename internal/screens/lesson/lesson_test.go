package lesson

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/player"
	"github.com/pinagook/pinagook/internal/progress"
	"github.com/pinagook/pinagook/internal/router"
	"github.com/pinagook/pinagook/internal/screen"
	"github.com/pinagook/pinagook/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answerEvents []store.AnswerEventData
	lessonEvents []store.LessonEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

func (m *mockEventRepo) AppendLesson(_ context.Context, data store.LessonEventData) error {
	m.lessonEvents = append(m.lessonEvents, data)
	return nil
}

func (m *mockEventRepo) LessonStats(_ context.Context) ([]store.LessonStat, error) {
	return nil, nil
}

func (m *mockEventRepo) AnswerAccuracy(_ context.Context, _, _ string) (float64, error) {
	return 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCourse() *content.Course {
	return &content.Course{
		ID:    "course-1",
		Title: "Test Course",
		Lessons: []content.Lesson{
			{
				ID:       "lesson-1",
				CourseID: "course-1",
				Title:    "Verbs",
				Steps: []content.Step{
					content.StepText{ID: "s1", Content: "Welcome."},
					content.StepSingleChoice{
						ID:       "s2",
						Question: "Pick the verb.",
						Options: []content.Option{
							{ID: "a", Text: "apple"},
							{ID: "b", Text: "run"},
						},
						CorrectOptionID: "b",
						Explanation:     "Run is a verb.",
					},
					content.StepFillBlank{
						ID:             "s3",
						Sentence:       "We ____ to school.",
						CorrectAnswers: []string{"go"},
					},
				},
			},
			{
				ID:       "lesson-2",
				CourseID: "course-1",
				Title:    "Nouns",
				Steps: []content.Step{
					content.StepText{ID: "t1", Content: "Nouns name things."},
				},
			},
		},
	}
}

func testLessonScreen() (*LessonScreen, *mockEventRepo, *progress.Service) {
	course := testCourse()
	events := &mockEventRepo{}
	svc := progress.NewService(progress.NewMemoryStorage())
	s := New(course, &course.Lessons[0], svc, events)
	return s, events, svc
}

// drain runs a command tree synchronously so its side effects land.
func drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(c)
		}
	}
}

// update drives one message through the screen and drains its commands.
func update(s *LessonScreen, msg tea.Msg) *LessonScreen {
	var scr screen.Screen = s
	scr, cmd := scr.Update(msg)
	drain(cmd)
	return scr.(*LessonScreen)
}

func beginFresh(s *LessonScreen) *LessonScreen {
	return update(s, progressLoadedMsg{Saved: nil})
}

func TestLessonScreen_Title(t *testing.T) {
	s, _, _ := testLessonScreen()
	if s.Title() != "Verbs" {
		t.Errorf("Title = %q, want %q", s.Title(), "Verbs")
	}
}

func TestLessonScreen_FreshLoadStartsActive(t *testing.T) {
	s, events, _ := testLessonScreen()
	s = beginFresh(s)

	if s.state.Phase != player.PhaseActive {
		t.Errorf("phase = %v, want active", s.state.Phase)
	}
	if len(events.lessonEvents) != 1 || events.lessonEvents[0].Action != store.ActionStarted {
		t.Errorf("lesson events = %+v, want one started event", events.lessonEvents)
	}
}

func TestLessonScreen_SavedProgressPrompts(t *testing.T) {
	s, _, _ := testLessonScreen()
	saved := &progress.StoredProgress{
		Version:          progress.Version,
		CourseID:         "course-1",
		LessonID:         "lesson-1",
		CurrentStepIndex: 1,
		Answers: player.AnswersByStepID{
			"s2": player.SingleChoiceAnswer{SelectedOptionID: "b"},
		},
		Checked: player.CheckedByStepID{"s2": true},
	}
	s = update(s, progressLoadedMsg{Saved: saved})

	if s.state.Phase != player.PhaseResumePrompt {
		t.Fatalf("phase = %v, want resume prompt", s.state.Phase)
	}

	// Continue restores the stored position and answers.
	s = update(s, keyPress('c'))
	if s.state.Phase != player.PhaseActive {
		t.Errorf("phase = %v, want active after continue", s.state.Phase)
	}
	if s.state.StepIndex != 1 {
		t.Errorf("step index = %d, want 1", s.state.StepIndex)
	}
	if !s.state.CurrentChecked() {
		t.Error("restored step should keep its checked flag")
	}
}

func TestLessonScreen_StartOverClearsSnapshot(t *testing.T) {
	s, events, svc := testLessonScreen()
	ctx := context.Background()

	saved := &progress.StoredProgress{
		Version:          progress.Version,
		CourseID:         "course-1",
		LessonID:         "lesson-1",
		CurrentStepIndex: 2,
	}
	svc.Save(ctx, saved)

	s = update(s, progressLoadedMsg{Saved: saved})
	s = update(s, keyPress('s'))

	if s.state.Phase != player.PhaseActive || s.state.StepIndex != 0 {
		t.Errorf("state = phase %v index %d, want fresh start", s.state.Phase, s.state.StepIndex)
	}
	if svc.Load(ctx, "course-1", "lesson-1") != nil {
		t.Error("stored snapshot should be cleared on start over")
	}

	var actions []string
	for _, ev := range events.lessonEvents {
		actions = append(actions, ev.Action)
	}
	if len(actions) != 2 || actions[0] != store.ActionReset || actions[1] != store.ActionStarted {
		t.Errorf("lesson events = %v, want reset then started", actions)
	}
}

func TestLessonScreen_CheckThenAdvance(t *testing.T) {
	s, events, _ := testLessonScreen()
	s = beginFresh(s)

	// Enter on the text step advances.
	s = update(s, specialKey(tea.KeyEnter))
	if s.state.StepIndex != 1 {
		t.Fatalf("step index = %d, want 1", s.state.StepIndex)
	}

	// Move the cursor to the correct option; this records the answer.
	s = update(s, keyPress('j'))
	if a, ok := s.state.CurrentAnswer().(player.SingleChoiceAnswer); !ok || a.SelectedOptionID != "b" {
		t.Fatalf("answer = %#v, want option b selected", s.state.CurrentAnswer())
	}

	// First Enter checks.
	s = update(s, specialKey(tea.KeyEnter))
	if !s.state.CurrentChecked() {
		t.Fatal("first Enter should check the answer")
	}
	if s.state.StepIndex != 1 {
		t.Error("checking should not advance")
	}
	if len(events.answerEvents) != 1 || !events.answerEvents[0].Correct {
		t.Errorf("answer events = %+v, want one correct event", events.answerEvents)
	}

	// Second Enter advances.
	s = update(s, specialKey(tea.KeyEnter))
	if s.state.StepIndex != 2 {
		t.Errorf("step index = %d, want 2", s.state.StepIndex)
	}
}

func TestLessonScreen_FinishClearsProgressAndLogs(t *testing.T) {
	s, events, svc := testLessonScreen()
	s = beginFresh(s)

	s = update(s, specialKey(tea.KeyEnter)) // past text step
	s = update(s, keyPress('j'))            // select option b
	s = update(s, specialKey(tea.KeyEnter)) // check
	s = update(s, specialKey(tea.KeyEnter)) // advance to fill blank

	for _, r := range "go" {
		s = update(s, keyPress(r))
	}
	s = update(s, specialKey(tea.KeyEnter)) // check
	s = update(s, specialKey(tea.KeyEnter)) // finish

	if s.state.Phase != player.PhaseFinished {
		t.Fatalf("phase = %v, want finished", s.state.Phase)
	}
	if s.state.Result == nil || s.state.Result.PercentCorrect != 100 {
		t.Errorf("result = %+v, want 100%%", s.state.Result)
	}
	if svc.Load(context.Background(), "course-1", "lesson-1") != nil {
		t.Error("finishing should clear the stored snapshot")
	}

	last := events.lessonEvents[len(events.lessonEvents)-1]
	if last.Action != store.ActionFinished || last.Percent != 100 || last.CorrectCount != 2 {
		t.Errorf("final lesson event = %+v", last)
	}
}

func TestLessonScreen_CursorKeyKeepsBlankChecked(t *testing.T) {
	s, _, _ := testLessonScreen()
	s = beginFresh(s)

	s = update(s, specialKey(tea.KeyEnter)) // past text step
	s = update(s, keyPress('j'))            // select option b
	s = update(s, specialKey(tea.KeyEnter)) // check
	s = update(s, specialKey(tea.KeyEnter)) // advance to fill blank

	for _, r := range "go" {
		s = update(s, keyPress(r))
	}
	s = update(s, specialKey(tea.KeyEnter)) // check
	if !s.state.CurrentChecked() {
		t.Fatal("blank step should be checked")
	}

	// Keys that cannot edit the frozen input must not touch the check.
	s = update(s, specialKey(tea.KeyLeft))
	s = update(s, specialKey(tea.KeyRight))
	if !s.state.CurrentChecked() {
		t.Error("cursor keys reset the checked flag; the answer did not change")
	}
	if !player.CanAdvance(s.state) {
		t.Error("Next should stay enabled after a cursor key")
	}
}

func TestLessonScreen_GoBackKeepsAnswer(t *testing.T) {
	s, _, _ := testLessonScreen()
	s = beginFresh(s)

	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, keyPress('j'))
	s = update(s, specialKey(tea.KeyEnter)) // check

	s = update(s, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.state.StepIndex != 0 {
		t.Fatalf("step index = %d, want 0 after back", s.state.StepIndex)
	}

	s = update(s, specialKey(tea.KeyEnter))
	if s.state.CurrentAnswer() == nil || !s.state.CurrentChecked() {
		t.Error("revisited step should keep its answer and checked flag")
	}
}

func TestLessonScreen_RetryFromResult(t *testing.T) {
	s, _, _ := testLessonScreen()
	s = beginFresh(s)

	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, keyPress('j'))
	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, specialKey(tea.KeyEnter))
	for _, r := range "go" {
		s = update(s, keyPress(r))
	}
	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, specialKey(tea.KeyEnter))

	s = update(s, keyPress('r'))
	if s.state.Phase != player.PhaseActive || s.state.StepIndex != 0 {
		t.Errorf("state = phase %v index %d, want fresh restart", s.state.Phase, s.state.StepIndex)
	}
	if len(s.state.Answers) != 0 {
		t.Error("retry should clear answers")
	}
}

func TestLessonScreen_NextLessonReplacesScreen(t *testing.T) {
	s, _, _ := testLessonScreen()
	s = beginFresh(s)

	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, keyPress('j'))
	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, specialKey(tea.KeyEnter))
	for _, r := range "go" {
		s = update(s, keyPress(r))
	}
	s = update(s, specialKey(tea.KeyEnter))
	s = update(s, specialKey(tea.KeyEnter))

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a command for next lesson")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("command yielded %T, want ReplaceScreenMsg", cmd())
	}
	next, ok := msg.Screen.(*LessonScreen)
	if !ok || next.lesson.ID != "lesson-2" {
		t.Errorf("replacement screen = %#v, want lesson-2", msg.Screen)
	}
}

func TestLessonScreen_KeyHints(t *testing.T) {
	s, _, _ := testLessonScreen()
	s = beginFresh(s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints for the active phase")
	}
}

func TestLessonScreen_ViewPerPhase(t *testing.T) {
	s, _, _ := testLessonScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	s = beginFresh(s)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty active view")
	}
}
