package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/player"
	"github.com/pinagook/pinagook/internal/ui/components"
	"github.com/pinagook/pinagook/internal/ui/theme"
)

func (l *LessonScreen) View(width, height int) string {
	var body string

	switch l.state.Phase {
	case player.PhaseLoading:
		body = theme.Hint.Render("Loading lesson...")
	case player.PhaseResumePrompt:
		body = l.viewResumePrompt()
	case player.PhaseActive:
		body = l.viewStep(width)
	case player.PhaseFinished:
		body = l.viewResult()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (l *LessonScreen) viewResumePrompt() string {
	cw := 50
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Welcome back!") + "\n\n")
	b.WriteString(theme.Body.Render("You have saved progress in this lesson.") + "\n\n")
	b.WriteString(theme.Selected.Render("C") + theme.Body.Render("  Continue where you left off") + "\n")
	b.WriteString(theme.Unselected.Render("S") + theme.Body.Render("  Start over"))
	return theme.Card.Width(cw + 4).Render(b.String())
}

func (l *LessonScreen) viewStep(width int) string {
	step := l.state.CurrentStep()
	if step == nil {
		return theme.Hint.Render("This lesson has no steps.")
	}

	cw := minInt(width-10, 64)

	var b strings.Builder
	b.WriteString(components.StepBar(l.state.StepIndex, len(l.state.Lesson.Steps), cw) + "\n\n")

	switch step := step.(type) {
	case content.StepText:
		if step.Title != "" {
			b.WriteString(theme.Title.Width(cw).Render(step.Title) + "\n\n")
		}
		if step.Prompt != "" {
			b.WriteString(theme.Hint.Render(step.Prompt) + "\n\n")
		}
		b.WriteString(theme.Body.Render(step.Content))

	case content.StepSingleChoice:
		if step.Prompt != "" {
			b.WriteString(theme.Hint.Render(step.Prompt) + "\n\n")
		}
		b.WriteString(theme.Body.Bold(true).Render(step.Question) + "\n\n")
		b.WriteString(l.choice.View())
		b.WriteString(l.choiceFeedback(step))

	case content.StepFillBlank:
		if step.Prompt != "" {
			b.WriteString(theme.Hint.Render(step.Prompt) + "\n\n")
		}
		b.WriteString(l.renderSentence(step) + "\n\n")
		b.WriteString(l.blank.View())
		b.WriteString(l.blankFeedback(step))
	}

	return theme.Card.Width(cw + 6).Render(b.String())
}

// renderSentence shows the fill-blank sentence with the typed value (or
// the marker) inline at the blank position.
func (l *LessonScreen) renderSentence(step content.StepFillBlank) string {
	before, after, found := strings.Cut(step.Sentence, content.BlankMarker)
	if !found {
		return theme.Body.Render(step.Sentence)
	}

	value := strings.TrimSpace(l.blank.Value())
	var slot string
	if value == "" {
		slot = theme.Hint.Render(content.BlankMarker)
	} else if l.state.CurrentChecked() {
		if player.IsCorrect(step, player.FillBlankAnswer{Value: value}) {
			slot = theme.Correct.Render(value)
		} else {
			slot = theme.Incorrect.Render(value)
		}
	} else {
		slot = theme.Selected.Render(value)
	}

	return theme.Body.Render(before) + slot + theme.Body.Render(after)
}

func (l *LessonScreen) choiceFeedback(step content.StepSingleChoice) string {
	if !l.state.CurrentChecked() {
		return ""
	}
	correct := player.IsCorrect(step, l.state.CurrentAnswer())
	return "\n" + verdictLine(correct, step.Explanation)
}

func (l *LessonScreen) blankFeedback(step content.StepFillBlank) string {
	if !l.state.CurrentChecked() {
		return ""
	}
	correct := player.IsCorrect(step, l.state.CurrentAnswer())
	out := "\n\n" + verdictLine(correct, step.Explanation)
	if !correct {
		out += "\n" + theme.Hint.Render("Accepted: "+strings.Join(step.CorrectAnswers, ", "))
	}
	return out
}

func verdictLine(correct bool, explanation string) string {
	var line string
	if correct {
		line = theme.Correct.Render("✓ Correct!")
	} else {
		line = theme.Incorrect.Render("✗ Not quite.")
	}
	if explanation != "" {
		line += "\n" + theme.Hint.Render(explanation)
	}
	return line
}

func (l *LessonScreen) viewResult() string {
	result := l.state.Result
	if result == nil {
		return ""
	}

	cw := 58

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Lesson complete!") + "\n\n")
	b.WriteString(theme.Body.Width(cw).Align(lipgloss.Center).Render(fmt.Sprintf(
		"%d / %d correct  (%d%%)",
		result.CorrectCount, result.TotalInteractiveSteps, result.PercentCorrect,
	)) + "\n\n")

	for _, sr := range result.StepResults {
		mark := theme.Correct.Render("✓")
		if !sr.Correct() {
			mark = theme.Incorrect.Render("✗")
		}

		switch sr := sr.(type) {
		case player.SingleChoiceResult:
			b.WriteString(fmt.Sprintf("%s %s\n", mark, theme.Body.Render(sr.Prompt)))
			if !sr.IsCorrect {
				b.WriteString("   " + theme.Hint.Render(fmt.Sprintf(
					"you said %q, answer: %q", sr.UserAnswer, sr.CorrectAnswer)) + "\n")
			}
		case player.FillBlankResult:
			b.WriteString(fmt.Sprintf("%s %s\n", mark, theme.Body.Render(sr.Prompt)))
			if !sr.IsCorrect {
				b.WriteString("   " + theme.Hint.Render(fmt.Sprintf(
					"you said %q, accepted: %s", sr.UserAnswer, strings.Join(sr.CorrectAnswers, ", "))) + "\n")
			}
		}
	}

	return theme.Card.Width(cw + 4).Render(b.String())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
