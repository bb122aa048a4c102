package player

import (
	"testing"

	"github.com/pinagook/pinagook/internal/content"
)

// testLesson builds the fixture used across the player tests: a text
// intro, a single-choice step and a fill-blank step.
func testLesson() *content.Lesson {
	return &content.Lesson{
		ID:       "lesson-1",
		CourseID: "course-1",
		Title:    "Test Lesson",
		Steps: []content.Step{
			content.StepText{ID: "s1", Content: "Welcome."},
			content.StepSingleChoice{
				ID:       "s2",
				Question: "Pick the verb.",
				Options: []content.Option{
					{ID: "a", Text: "apple"},
					{ID: "b", Text: "run"},
					{ID: "c", Text: "blue"},
				},
				CorrectOptionID: "b",
				Explanation:     "Run is a verb.",
			},
			content.StepFillBlank{
				ID:             "s3",
				Sentence:       "We ____ to school.",
				CorrectAnswers: []string{"go", "walk"},
				Explanation:    "Plural subject takes the base form.",
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Paris  ", "paris"},
		{"PARIS", "paris"},
		{"paris", "paris"},
		{"\tWent \n", "went"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	// Idempotence.
	if Normalize(Normalize("  MiXeD ")) != Normalize("  MiXeD ") {
		t.Error("Normalize should be idempotent")
	}
}

func TestIsInteractiveStep(t *testing.T) {
	lesson := testLesson()
	if IsInteractiveStep(lesson.Steps[0]) {
		t.Error("text step should not be interactive")
	}
	if !IsInteractiveStep(lesson.Steps[1]) {
		t.Error("single_choice step should be interactive")
	}
	if !IsInteractiveStep(lesson.Steps[2]) {
		t.Error("fill_blank step should be interactive")
	}
}

func TestHasAnswer(t *testing.T) {
	lesson := testLesson()
	choice := lesson.Steps[1]
	blank := lesson.Steps[2]

	tests := []struct {
		name   string
		step   content.Step
		answer Answer
		want   bool
	}{
		{"nil answer", choice, nil, false},
		{"selected option", choice, SingleChoiceAnswer{SelectedOptionID: "a"}, true},
		{"empty option id", choice, SingleChoiceAnswer{}, false},
		{"typed value", blank, FillBlankAnswer{Value: "go"}, true},
		{"whitespace only", blank, FillBlankAnswer{Value: "   "}, false},
		{"empty value", blank, FillBlankAnswer{}, false},
		{"mismatched union member", choice, FillBlankAnswer{Value: "go"}, false},
		{"text step never has answers", lesson.Steps[0], FillBlankAnswer{Value: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnswer(tt.step, tt.answer); got != tt.want {
				t.Errorf("HasAnswer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCorrect_SingleChoice(t *testing.T) {
	step := testLesson().Steps[1]

	if !IsCorrect(step, SingleChoiceAnswer{SelectedOptionID: "b"}) {
		t.Error("matching option id should be correct")
	}
	if IsCorrect(step, SingleChoiceAnswer{SelectedOptionID: "a"}) {
		t.Error("wrong option id should be incorrect")
	}
	if IsCorrect(step, SingleChoiceAnswer{SelectedOptionID: "B"}) {
		t.Error("option ids compare exactly, no normalization")
	}
	if IsCorrect(step, nil) {
		t.Error("nil answer is never correct")
	}
}

func TestIsCorrect_FillBlank(t *testing.T) {
	step := testLesson().Steps[2]

	tests := []struct {
		value string
		want  bool
	}{
		{"go", true},
		{"  GO  ", true},
		{"Walk", true},
		{"went", false},
		{"", false},
		{"g o", false},
	}
	for _, tt := range tests {
		got := IsCorrect(step, FillBlankAnswer{Value: tt.value})
		if got != tt.want {
			t.Errorf("IsCorrect(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIsCorrect_AcceptableAnswersNormalizedToo(t *testing.T) {
	step := content.StepFillBlank{
		ID:             "s1",
		Sentence:       "She ____ tea.",
		CorrectAnswers: []string{"  Drinks "},
	}
	if !IsCorrect(step, FillBlankAnswer{Value: "drinks"}) {
		t.Error("acceptable answers should be normalized before comparison")
	}
}
