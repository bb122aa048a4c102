package content

import (
	"strings"
	"testing"
)

const validCourseJSON = `{
  "id": "english-basics",
  "title": "English Basics",
  "description": "Starter grammar.",
  "lessons": [
    {
      "id": "lesson-1",
      "title": "Verbs",
      "steps": [
        {"id": "s1", "type": "text", "content": "Welcome."},
        {
          "id": "s2",
          "type": "single_choice",
          "question": "Pick the verb.",
          "options": [
            {"id": "a", "text": "apple"},
            {"id": "b", "text": "run"}
          ],
          "correctOptionId": "b",
          "explanation": "Run is a verb."
        },
        {
          "id": "s3",
          "type": "fill_blank",
          "sentence": "We ____ to school.",
          "correctAnswers": ["go", "walk"]
        }
      ]
    }
  ]
}`

func TestDecodeCourse_Valid(t *testing.T) {
	course, err := DecodeCourse([]byte(validCourseJSON))
	if err != nil {
		t.Fatalf("DecodeCourse: %v", err)
	}
	if course.ID != "english-basics" {
		t.Errorf("ID = %q", course.ID)
	}
	if len(course.Lessons) != 1 {
		t.Fatalf("lessons = %d, want 1", len(course.Lessons))
	}

	lesson := course.Lessons[0]
	if lesson.CourseID != "english-basics" {
		t.Errorf("lesson.CourseID = %q, want parent course id", lesson.CourseID)
	}
	if len(lesson.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(lesson.Steps))
	}

	if _, ok := lesson.Steps[0].(StepText); !ok {
		t.Errorf("step 0 type = %T, want StepText", lesson.Steps[0])
	}
	choice, ok := lesson.Steps[1].(StepSingleChoice)
	if !ok {
		t.Fatalf("step 1 type = %T, want StepSingleChoice", lesson.Steps[1])
	}
	if choice.CorrectOptionID != "b" || len(choice.Options) != 2 {
		t.Errorf("choice step = %+v", choice)
	}
	blank, ok := lesson.Steps[2].(StepFillBlank)
	if !ok {
		t.Fatalf("step 2 type = %T, want StepFillBlank", lesson.Steps[2])
	}
	if len(blank.CorrectAnswers) != 2 {
		t.Errorf("blank step = %+v", blank)
	}
}

func mutateCourse(t *testing.T, from, to string) []byte {
	t.Helper()
	if !strings.Contains(validCourseJSON, from) {
		t.Fatalf("fixture does not contain %q", from)
	}
	return []byte(strings.Replace(validCourseJSON, from, to, 1))
}

func TestDecodeCourse_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		wantErr string
	}{
		{
			"bad json",
			[]byte("{nope"),
			"",
		},
		{
			"duplicate step id",
			mutateCourse(t, `"id": "s2",`, `"id": "s1",`),
			"duplicate step id",
		},
		{
			"dangling correct option",
			mutateCourse(t, `"correctOptionId": "b"`, `"correctOptionId": "zz"`),
			"not among options",
		},
		{
			"duplicate option id",
			mutateCourse(t, `{"id": "b", "text": "run"}`, `{"id": "a", "text": "run"}`),
			"",
		},
		{
			"missing blank marker",
			mutateCourse(t, "We ____ to school.", "We go to school."),
			"marker",
		},
		{
			"unknown step type",
			mutateCourse(t, `"type": "fill_blank"`, `"type": "drag_drop"`),
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := DecodeCourse(tt.raw)
			if err == nil {
				t.Fatalf("DecodeCourse accepted %s: %+v", tt.name, course)
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeCourse_DuplicateLessonID(t *testing.T) {
	raw := []byte(strings.Replace(validCourseJSON, `"lessons": [`, `"lessons": [
    {"id": "lesson-1", "title": "Dup", "steps": [{"id": "x1", "type": "text", "content": "hi"}]},`, 1))

	_, err := DecodeCourse(raw)
	if err == nil || !strings.Contains(err.Error(), "duplicate lesson id") {
		t.Errorf("error = %v, want duplicate lesson id", err)
	}
}

func TestDecodeCourse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing title", `{"id": "c", "lessons": []}`},
		{"lessons not array", `{"id": "c", "title": "C", "lessons": {}}`},
		{"step missing id", `{"id": "c", "title": "C", "lessons": [
			{"id": "l", "title": "L", "steps": [{"type": "text", "content": "x"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCourse([]byte(tt.raw)); err == nil {
				t.Errorf("DecodeCourse accepted %s", tt.name)
			}
		})
	}
}

func TestOptionByID(t *testing.T) {
	course, err := DecodeCourse([]byte(validCourseJSON))
	if err != nil {
		t.Fatal(err)
	}
	step := course.Lessons[0].Steps[1].(StepSingleChoice)

	opt, ok := step.OptionByID("b")
	if !ok || opt.Text != "run" {
		t.Errorf("OptionByID(b) = %+v, %v", opt, ok)
	}
	if _, ok := step.OptionByID("zz"); ok {
		t.Error("OptionByID should miss on unknown ids")
	}
}

func TestLessonStepIDs(t *testing.T) {
	course, err := DecodeCourse([]byte(validCourseJSON))
	if err != nil {
		t.Fatal(err)
	}
	ids := course.Lessons[0].StepIDs()
	if len(ids) != 3 {
		t.Fatalf("StepIDs = %v", ids)
	}
	for _, id := range []string{"s1", "s2", "s3"} {
		if !ids[id] {
			t.Errorf("StepIDs missing %q", id)
		}
	}
	if ids["s4"] {
		t.Error("StepIDs should not contain unknown ids")
	}
}
