package progress

import (
	"context"
	"testing"
)

func TestMakeKey(t *testing.T) {
	got := MakeKey("english-basics", "lesson-1")
	want := "pinagook:progress:english-basics:lesson-1"
	if got != want {
		t.Errorf("MakeKey = %q, want %q", got, want)
	}
}

func TestService_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStorage())

	if got := svc.Load(ctx, "c", "l"); got != nil {
		t.Errorf("Load before Save = %+v, want nil", got)
	}

	svc.Save(ctx, sampleProgress())

	got := svc.Load(ctx, "course-1", "lesson-1")
	if got == nil {
		t.Fatal("Load after Save = nil")
	}
	if got.CurrentStepIndex != 2 {
		t.Errorf("CurrentStepIndex = %d, want 2", got.CurrentStepIndex)
	}

	svc.Clear(ctx, "course-1", "lesson-1")
	if got := svc.Load(ctx, "course-1", "lesson-1"); got != nil {
		t.Error("Load after Clear should be nil")
	}

	// Clearing an absent record is fine.
	svc.Clear(ctx, "course-1", "lesson-1")
}

func TestService_KeysIsolatePairs(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	svc := NewService(mem)

	a := sampleProgress()
	b := sampleProgress()
	b.LessonID = "lesson-2"
	b.CurrentStepIndex = 0

	svc.Save(ctx, a)
	svc.Save(ctx, b)

	if mem.Len() != 2 {
		t.Fatalf("stored records = %d, want 2", mem.Len())
	}
	if got := svc.Load(ctx, "course-1", "lesson-1"); got == nil || got.CurrentStepIndex != 2 {
		t.Errorf("lesson-1 record = %+v", got)
	}
	if got := svc.Load(ctx, "course-1", "lesson-2"); got == nil || got.CurrentStepIndex != 0 {
		t.Errorf("lesson-2 record = %+v", got)
	}

	svc.Clear(ctx, "course-1", "lesson-1")
	if got := svc.Load(ctx, "course-1", "lesson-2"); got == nil {
		t.Error("clearing one pair should not touch the other")
	}
}

func TestService_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStorage())

	p := sampleProgress()
	svc.Save(ctx, p)
	p.CurrentStepIndex = 5
	svc.Save(ctx, p)

	got := svc.Load(ctx, "course-1", "lesson-1")
	if got == nil || got.CurrentStepIndex != 5 {
		t.Errorf("record = %+v, want last write to win", got)
	}
}

func TestService_NilStorageDegradesToNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	svc.Save(ctx, sampleProgress())
	if got := svc.Load(ctx, "course-1", "lesson-1"); got != nil {
		t.Error("noop storage should never return a record")
	}
	svc.Clear(ctx, "course-1", "lesson-1")
}

func TestService_CorruptRecordLoadsAsNil(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	svc := NewService(mem)

	_ = mem.Set(ctx, MakeKey("c", "l"), "{garbage")
	if got := svc.Load(ctx, "c", "l"); got != nil {
		t.Errorf("corrupt record = %+v, want nil", got)
	}
}
