package coursegen

import (
	"context"
	"fmt"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/llm"
)

// Generator drafts course files with an LLM provider. The output is
// structurally constrained by the same schema that validates course
// files on load, then decoded through the full semantic checks.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// courseSchema wraps the shared course file schema for structured output.
var courseSchema = &llm.Schema{
	Name:        "course-draft",
	Description: "A complete interactive course: lessons composed of text, single-choice and fill-blank steps",
	Definition:  content.CourseSchemaDefinition(),
}

// Draft generates a course about the topic. The returned bytes are the
// validated course JSON, ready to write to a courses directory; the
// Course is the decoded form for summaries.
func (g *Generator) Draft(ctx context.Context, topic string) ([]byte, *content.Course, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, g.config)},
		},
		Schema:      courseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("drafting course: %w", err)
	}

	// The provider validated shape; DecodeCourse adds the semantic
	// checks (id uniqueness, option references, blank markers).
	course, err := content.DecodeCourse(resp.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("draft failed validation: %w", err)
	}

	return resp.Content, course, nil
}

// ModelID reports the underlying provider's model.
func (g *Generator) ModelID() string {
	return g.provider.ModelID()
}
