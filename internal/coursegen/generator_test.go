package coursegen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pinagook/pinagook/internal/llm"
)

const validDraft = `{
	"id": "irregular-verbs",
	"title": "Irregular Verbs",
	"lessons": [
		{
			"id": "lesson-1",
			"title": "Go and Went",
			"steps": [
				{"id": "s1", "type": "text", "content": "The past of go is went."},
				{
					"id": "s2",
					"type": "single_choice",
					"question": "Past of go?",
					"options": [
						{"id": "a", "text": "goed"},
						{"id": "b", "text": "went"}
					],
					"correctOptionId": "b"
				},
				{
					"id": "s3",
					"type": "fill_blank",
					"sentence": "Yesterday I ____ home.",
					"correctAnswers": ["went"]
				}
			]
		}
	]
}`

func TestDraft_ValidCourse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validDraft)},
	)
	g := New(mock, DefaultConfig())

	raw, course, err := g.Draft(context.Background(), "irregular verbs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.ID != "irregular-verbs" {
		t.Errorf("course ID = %q, want %q", course.ID, "irregular-verbs")
	}
	if len(course.Lessons) != 1 {
		t.Fatalf("got %d lessons, want 1", len(course.Lessons))
	}
	if len(course.Lessons[0].Steps) != 3 {
		t.Errorf("got %d steps, want 3", len(course.Lessons[0].Steps))
	}
	if string(raw) != validDraft {
		t.Error("raw output should pass through unchanged")
	}
}

func TestDraft_RequestCarriesSchemaAndTopic(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validDraft)},
	)
	g := New(mock, DefaultConfig())

	if _, _, err := g.Draft(context.Background(), "irregular verbs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "course-draft" {
		t.Errorf("request schema = %+v, want course-draft", req.Schema)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "irregular verbs") {
		t.Errorf("user message should mention the topic, got %q", req.Messages[0].Content)
	}
}

func TestDraft_SemanticRejection(t *testing.T) {
	// Shape-valid but the correct option id points nowhere.
	bad := strings.Replace(validDraft, `"correctOptionId": "b"`, `"correctOptionId": "z"`, 1)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	g := New(mock, DefaultConfig())

	_, _, err := g.Draft(context.Background(), "irregular verbs")
	if err == nil {
		t.Fatal("expected validation error for dangling correctOptionId")
	}
}

func TestDraft_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns ErrProviderUnavailable
	g := New(mock, DefaultConfig())

	_, _, err := g.Draft(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error from provider")
	}
}
