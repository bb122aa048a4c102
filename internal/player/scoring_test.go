package player

import (
	"testing"

	"github.com/pinagook/pinagook/internal/content"
)

func TestScoreStep_TextStepYieldsNil(t *testing.T) {
	lesson := testLesson()
	if sr := ScoreStep(lesson.Steps[0], FillBlankAnswer{Value: "x"}, true); sr != nil {
		t.Errorf("text step result = %v, want nil", sr)
	}
}

func TestScoreStep_UncheckedOrAbsentYieldsNil(t *testing.T) {
	step := testLesson().Steps[1]

	if sr := ScoreStep(step, nil, true); sr != nil {
		t.Error("absent answer should yield nil")
	}
	if sr := ScoreStep(step, SingleChoiceAnswer{SelectedOptionID: "b"}, false); sr != nil {
		t.Error("unchecked step should yield nil")
	}
}

func TestScoreStep_SingleChoiceCarriesOptionText(t *testing.T) {
	step := testLesson().Steps[1]

	sr := ScoreStep(step, SingleChoiceAnswer{SelectedOptionID: "a"}, true)
	res, ok := sr.(SingleChoiceResult)
	if !ok {
		t.Fatalf("result type = %T, want SingleChoiceResult", sr)
	}
	if res.IsCorrect {
		t.Error("option a should be incorrect")
	}
	if res.UserAnswer != "apple" {
		t.Errorf("UserAnswer = %q, want option text %q", res.UserAnswer, "apple")
	}
	if res.CorrectAnswer != "run" {
		t.Errorf("CorrectAnswer = %q, want option text %q", res.CorrectAnswer, "run")
	}
	if res.Prompt != "Pick the verb." {
		t.Errorf("Prompt = %q", res.Prompt)
	}
}

func TestScoreStep_UnresolvableOptionIDYieldsNil(t *testing.T) {
	step := testLesson().Steps[1]
	if sr := ScoreStep(step, SingleChoiceAnswer{SelectedOptionID: "zz"}, true); sr != nil {
		t.Errorf("stale option id should yield nil, got %v", sr)
	}
}

func TestScoreStep_FillBlankKeepsRawValue(t *testing.T) {
	step := testLesson().Steps[2]

	sr := ScoreStep(step, FillBlankAnswer{Value: "  GO "}, true)
	res, ok := sr.(FillBlankResult)
	if !ok {
		t.Fatalf("result type = %T, want FillBlankResult", sr)
	}
	if !res.IsCorrect {
		t.Error("normalized match should be correct")
	}
	if res.UserAnswer != "  GO " {
		t.Errorf("UserAnswer = %q, want the raw input preserved", res.UserAnswer)
	}
	if len(res.CorrectAnswers) != 2 {
		t.Errorf("CorrectAnswers = %v", res.CorrectAnswers)
	}
}

func TestScoreLesson_AllCheckedAllCorrect(t *testing.T) {
	lesson := testLesson()
	answers := AnswersByStepID{
		"s2": SingleChoiceAnswer{SelectedOptionID: "b"},
		"s3": FillBlankAnswer{Value: "walk"},
	}
	checked := CheckedByStepID{"s2": true, "s3": true}

	result := ScoreLesson(lesson, answers, checked)
	if result.TotalInteractiveSteps != 2 {
		t.Errorf("TotalInteractiveSteps = %d, want 2", result.TotalInteractiveSteps)
	}
	if result.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", result.CorrectCount)
	}
	if result.PercentCorrect != 100 {
		t.Errorf("PercentCorrect = %d, want 100", result.PercentCorrect)
	}
	if len(result.StepResults) != 2 {
		t.Errorf("StepResults len = %d, want 2", len(result.StepResults))
	}
}

func TestScoreLesson_UncheckedStepCountsInDenominatorOnly(t *testing.T) {
	lesson := testLesson()
	answers := AnswersByStepID{
		"s2": SingleChoiceAnswer{SelectedOptionID: "b"},
	}
	checked := CheckedByStepID{"s2": true}

	result := ScoreLesson(lesson, answers, checked)
	if result.TotalInteractiveSteps != 2 {
		t.Errorf("TotalInteractiveSteps = %d, want 2 (counts unchecked s3)", result.TotalInteractiveSteps)
	}
	if result.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", result.CorrectCount)
	}
	if result.PercentCorrect != 50 {
		t.Errorf("PercentCorrect = %d, want 50", result.PercentCorrect)
	}
	if len(result.StepResults) != 1 {
		t.Errorf("StepResults len = %d, want 1 (only checked steps)", len(result.StepResults))
	}
}

func TestScoreLesson_EmptyAndNonInteractive(t *testing.T) {
	empty := &content.Lesson{ID: "empty"}
	result := ScoreLesson(empty, AnswersByStepID{}, CheckedByStepID{})
	if result.PercentCorrect != 0 || result.TotalInteractiveSteps != 0 {
		t.Errorf("empty lesson result = %+v, want zeros", result)
	}

	textOnly := &content.Lesson{
		ID: "text-only",
		Steps: []content.Step{
			content.StepText{ID: "t1", Content: "a"},
			content.StepText{ID: "t2", Content: "b"},
		},
	}
	result = ScoreLesson(textOnly, AnswersByStepID{}, CheckedByStepID{})
	if result.PercentCorrect != 0 || result.TotalInteractiveSteps != 0 {
		t.Errorf("text-only lesson result = %+v, want zeros", result)
	}
}

func TestScoreLesson_PercentRounds(t *testing.T) {
	lesson := &content.Lesson{
		ID: "three",
		Steps: []content.Step{
			content.StepFillBlank{ID: "f1", Sentence: "a ____", CorrectAnswers: []string{"x"}},
			content.StepFillBlank{ID: "f2", Sentence: "b ____", CorrectAnswers: []string{"x"}},
			content.StepFillBlank{ID: "f3", Sentence: "c ____", CorrectAnswers: []string{"x"}},
		},
	}
	answers := AnswersByStepID{
		"f1": FillBlankAnswer{Value: "x"},
		"f2": FillBlankAnswer{Value: "wrong"},
		"f3": FillBlankAnswer{Value: "wrong"},
	}
	checked := CheckedByStepID{"f1": true, "f2": true, "f3": true}

	result := ScoreLesson(lesson, answers, checked)
	// 1/3 rounds to 33.
	if result.PercentCorrect != 33 {
		t.Errorf("PercentCorrect = %d, want 33", result.PercentCorrect)
	}

	answers["f2"] = FillBlankAnswer{Value: "x"}
	result = ScoreLesson(lesson, answers, checked)
	// 2/3 rounds to 67.
	if result.PercentCorrect != 67 {
		t.Errorf("PercentCorrect = %d, want 67", result.PercentCorrect)
	}
}
