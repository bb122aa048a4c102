package store

import (
	"context"
	"testing"
)

const testPayload = `{"version":1,"courseId":"course-1","lessonId":"lesson-1","currentStepIndex":1}`

func TestProgressRepo_GetSetRemove(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Miss before any write.
	_, ok, err := repo.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected miss before Set")
	}

	if err := repo.Set(ctx, "k1", testPayload); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := repo.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != testPayload {
		t.Errorf("get = %q, %v", got, ok)
	}

	if err := repo.Remove(ctx, "k1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "k1"); ok {
		t.Error("expected miss after Remove")
	}

	// Removing an absent key is fine.
	if err := repo.Remove(ctx, "k1"); err != nil {
		t.Errorf("remove absent key: %v", err)
	}
}

func TestProgressRepo_SetOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, "k1", testPayload); err != nil {
		t.Fatalf("set: %v", err)
	}
	updated := `{"version":1,"courseId":"course-1","lessonId":"lesson-1","currentStepIndex":4}`
	if err := repo.Set(ctx, "k1", updated); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, _, err := repo.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != updated {
		t.Errorf("get = %q, want the last write", got)
	}

	count, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want overwrite in place", count)
	}
}

func TestProgressRepo_RemoveAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	payloads := map[string]string{
		"k1": `{"version":1,"courseId":"course-1","lessonId":"lesson-1"}`,
		"k2": `{"version":1,"courseId":"course-1","lessonId":"lesson-2"}`,
		"k3": `{"version":1,"courseId":"course-2","lessonId":"lesson-1"}`,
	}
	for key, payload := range payloads {
		if err := repo.Set(ctx, key, payload); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	// Scoped to one course.
	n, err := repo.RemoveAll(ctx, "course-1")
	if err != nil {
		t.Fatalf("remove all (scoped): %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}
	if _, ok, _ := repo.Get(ctx, "k3"); !ok {
		t.Error("other course's record should survive a scoped wipe")
	}

	// Unscoped wipes the rest.
	n, err = repo.RemoveAll(ctx, "")
	if err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	n, err = repo.RemoveAll(ctx, "")
	if err != nil || n != 0 {
		t.Errorf("remove all on empty table = %d, %v", n, err)
	}
}

func TestProgressRepo_UnparseablePayloadStillStored(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, "k1", "{broken"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := repo.Get(ctx, "k1")
	if err != nil || !ok || got != "{broken" {
		t.Errorf("get = %q, %v, %v; the key column keeps the row addressable", got, ok, err)
	}
}
