package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// courseSchema is the structural JSON Schema for course files. Semantic
// rules that a schema cannot express (referential integrity, duplicate
// ids, blank markers) are enforced by DecodeCourse afterwards.
var courseSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"id", "title", "lessons"},
	"additionalProperties": false,
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "title", "steps"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"steps": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    stepSchema,
					},
				},
			},
		},
	},
}

var stepSchema = map[string]any{
	"oneOf": []any{
		map[string]any{
			"type":                 "object",
			"required":             []any{"id", "type", "content"},
			"additionalProperties": false,
			"properties": map[string]any{
				"id":      map[string]any{"type": "string", "minLength": 1},
				"type":    map[string]any{"const": "text"},
				"title":   map[string]any{"type": "string"},
				"prompt":  map[string]any{"type": "string"},
				"content": map[string]any{"type": "string", "minLength": 1},
			},
		},
		map[string]any{
			"type":                 "object",
			"required":             []any{"id", "type", "question", "options", "correctOptionId"},
			"additionalProperties": false,
			"properties": map[string]any{
				"id":       map[string]any{"type": "string", "minLength": 1},
				"type":     map[string]any{"const": "single_choice"},
				"title":    map[string]any{"type": "string"},
				"prompt":   map[string]any{"type": "string"},
				"question": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":                 "object",
						"required":             []any{"id", "text"},
						"additionalProperties": false,
						"properties": map[string]any{
							"id":   map[string]any{"type": "string", "minLength": 1},
							"text": map[string]any{"type": "string", "minLength": 1},
						},
					},
				},
				"correctOptionId": map[string]any{"type": "string", "minLength": 1},
				"explanation":     map[string]any{"type": "string"},
			},
		},
		map[string]any{
			"type":                 "object",
			"required":             []any{"id", "type", "sentence", "correctAnswers"},
			"additionalProperties": false,
			"properties": map[string]any{
				"id":       map[string]any{"type": "string", "minLength": 1},
				"type":     map[string]any{"const": "fill_blank"},
				"title":    map[string]any{"type": "string"},
				"prompt":   map[string]any{"type": "string"},
				"sentence": map[string]any{"type": "string", "minLength": 1},
				"correctAnswers": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "minLength": 1},
				},
				"explanation": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// CourseSchemaDefinition returns the raw schema map. The draft generator
// reuses it to constrain LLM output to the same shape course files use.
func CourseSchemaDefinition() map[string]any {
	return courseSchema
}

func compiledCourseSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go maps with
		// mixed concrete types. Round-trip through encoding/json.
		b, err := json.Marshal(courseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal course schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse course schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://course.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add course schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// validateShape runs the structural schema over raw course JSON.
func validateShape(raw []byte) error {
	schema, err := compiledCourseSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("course shape invalid: %w", err)
	}
	return nil
}
