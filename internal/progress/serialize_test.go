package progress

import (
	"strings"
	"testing"
	"time"

	"github.com/pinagook/pinagook/internal/player"
)

func sampleProgress() *StoredProgress {
	return &StoredProgress{
		Version:          Version,
		CourseID:         "course-1",
		LessonID:         "lesson-1",
		CurrentStepIndex: 2,
		Answers: player.AnswersByStepID{
			"s2": player.SingleChoiceAnswer{SelectedOptionID: "b"},
			"s3": player.FillBlankAnswer{Value: "go"},
		},
		Checked:   player.CheckedByStepID{"s2": true},
		UpdatedAt: 1700000000000,
	}
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	raw, err := Serialize(sampleProgress())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got := Deserialize(raw)
	if got == nil {
		t.Fatal("Deserialize returned nil for a valid record")
	}
	if got.CourseID != "course-1" || got.LessonID != "lesson-1" {
		t.Errorf("ids = %q/%q", got.CourseID, got.LessonID)
	}
	if got.CurrentStepIndex != 2 {
		t.Errorf("CurrentStepIndex = %d, want 2", got.CurrentStepIndex)
	}

	choice, ok := got.Answers["s2"].(player.SingleChoiceAnswer)
	if !ok || choice.SelectedOptionID != "b" {
		t.Errorf("answers[s2] = %#v, want single-choice b", got.Answers["s2"])
	}
	blank, ok := got.Answers["s3"].(player.FillBlankAnswer)
	if !ok || blank.Value != "go" {
		t.Errorf("answers[s3] = %#v, want fill-blank go", got.Answers["s3"])
	}
	if !got.Checked["s2"] || got.Checked["s3"] {
		t.Errorf("checked = %v", got.Checked)
	}
}

func TestDeserialize_RejectsUnusableRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad json", "{not json"},
		{"empty string", ""},
		{"wrong version", `{"version":2,"courseId":"c","lessonId":"l"}`},
		{"missing version", `{"courseId":"c","lessonId":"l"}`},
		{"empty course id", `{"version":1,"courseId":"","lessonId":"l"}`},
		{"empty lesson id", `{"version":1,"courseId":"c","lessonId":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Deserialize(tt.raw); got != nil {
				t.Errorf("Deserialize(%q) = %+v, want nil", tt.raw, got)
			}
		})
	}
}

func TestDeserialize_RepairsDamagedFields(t *testing.T) {
	raw := `{"version":1,"courseId":"c","lessonId":"l","currentStepIndex":-3,"updatedAt":0}`

	before := time.Now().UnixMilli()
	got := Deserialize(raw)
	if got == nil {
		t.Fatal("repairable record rejected")
	}
	if got.CurrentStepIndex != 0 {
		t.Errorf("CurrentStepIndex = %d, want repaired to 0", got.CurrentStepIndex)
	}
	if got.Answers == nil || got.Checked == nil {
		t.Error("nil maps should be repaired to empty maps")
	}
	if got.UpdatedAt < before {
		t.Errorf("UpdatedAt = %d, want stamped at load time", got.UpdatedAt)
	}
}

func TestDeserialize_RepairsTypeInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"string step index", `{"version":1,"courseId":"c","lessonId":"l","currentStepIndex":"3"}`},
		{"string updatedAt", `{"version":1,"courseId":"c","lessonId":"l","updatedAt":"yesterday"}`},
		{"answers not a map", `{"version":1,"courseId":"c","lessonId":"l","answers":7}`},
		{"checked not a map", `{"version":1,"courseId":"c","lessonId":"l","checked":[true]}`},
		{"result summary garbage", `{"version":1,"courseId":"c","lessonId":"l","resultSummary":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deserialize(tt.raw)
			if got == nil {
				t.Fatal("a type-invalid field should be repaired, not reject the record")
			}
			if got.CurrentStepIndex != 0 {
				t.Errorf("CurrentStepIndex = %d, want 0", got.CurrentStepIndex)
			}
			if got.Answers == nil || got.Checked == nil {
				t.Error("damaged maps should be repaired to empty maps")
			}
			if got.UpdatedAt <= 0 {
				t.Errorf("UpdatedAt = %d, want stamped at load time", got.UpdatedAt)
			}
			if got.ResultSummary != nil {
				t.Errorf("ResultSummary = %+v, want dropped", got.ResultSummary)
			}
		})
	}
}

func TestDeserialize_DropsUnknownAnswerTags(t *testing.T) {
	raw := `{"version":1,"courseId":"c","lessonId":"l","answers":{` +
		`"s2":{"type":"single_choice","selectedOptionId":"b"},` +
		`"s9":{"type":"drag_and_drop","order":[1,2]}}}`

	got := Deserialize(raw)
	if got == nil {
		t.Fatal("record with one unknown answer tag rejected")
	}
	if _, ok := got.Answers["s2"]; !ok {
		t.Error("known answer should survive")
	}
	if _, ok := got.Answers["s9"]; ok {
		t.Error("unknown answer tag should be dropped, not kept")
	}
}

func TestSerialize_FieldNames(t *testing.T) {
	raw, err := Serialize(sampleProgress())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	for _, field := range []string{`"version":1`, `"courseId"`, `"lessonId"`, `"currentStepIndex"`, `"answers"`, `"checked"`, `"updatedAt"`} {
		if !strings.Contains(raw, field) {
			t.Errorf("serialized record missing %s: %s", field, raw)
		}
	}
	if strings.Contains(raw, "resultSummary") {
		t.Error("nil result summary should be omitted")
	}
}
