package coursegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a language-learning course author. You write short interactive lessons played step by step in a terminal app.

Rules:
- A course contains lessons; a lesson is an ordered list of steps.
- Step types: "text" (explanation, no interaction), "single_choice" (one correct option), "fill_blank" (type the missing word).
- Every fill_blank sentence must contain the blank marker ____ (four underscores) exactly once.
- Every single_choice step needs 3 or 4 options and its correctOptionId must match one of the option ids.
- Open each lesson with a text step that teaches the concept, then alternate practice steps.
- All ids (course, lesson, step, option) must be short, kebab-case, and unique within their scope.
- Write explanations for every interactive step: one sentence saying why the answer is right.
- For fill_blank, list every acceptable spelling in correctAnswers; comparisons ignore case and surrounding spaces.
- Keep sentences simple and self-contained. Plain ASCII only.`

// buildUserMessage constructs the drafting request from the topic and config.
func buildUserMessage(topic string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Lessons: %d\n", cfg.LessonCount)
	fmt.Fprintf(&b, "Steps per lesson: about %d\n", cfg.StepsPerLesson)
	b.WriteString("\nProduce the complete course as JSON.")

	return b.String()
}
