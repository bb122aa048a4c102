package store

import (
	"context"
	"testing"
)

func TestEventRepo_LessonStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LessonEventData{
		{SessionID: "a", CourseID: "c1", LessonID: "l1", Action: ActionStarted},
		{SessionID: "a", CourseID: "c1", LessonID: "l1", Action: ActionFinished, CorrectCount: 1, TotalInteractive: 2, Percent: 50},
		{SessionID: "b", CourseID: "c1", LessonID: "l1", Action: ActionFinished, CorrectCount: 2, TotalInteractive: 2, Percent: 100},
		{SessionID: "c", CourseID: "c1", LessonID: "l1", Action: ActionFinished, CorrectCount: 1, TotalInteractive: 2, Percent: 50},
		{SessionID: "d", CourseID: "c1", LessonID: "l2", Action: ActionFinished, CorrectCount: 3, TotalInteractive: 4, Percent: 75},
		{SessionID: "e", CourseID: "c2", LessonID: "l1", Action: ActionStarted},
		{SessionID: "e", CourseID: "c2", LessonID: "l1", Action: ActionReset},
	}
	for i, ev := range events {
		if err := repo.AppendLesson(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LessonStats(ctx)
	if err != nil {
		t.Fatalf("lesson stats: %v", err)
	}
	// Only finished runs count; c2/l1 never finished.
	if len(stats) != 2 {
		t.Fatalf("stats = %d lessons, want 2: %+v", len(stats), stats)
	}

	l1 := stats[0]
	if l1.CourseID != "c1" || l1.LessonID != "l1" {
		t.Fatalf("stats[0] = %+v, want c1/l1 first", l1)
	}
	if l1.Finishes != 3 {
		t.Errorf("finishes = %d, want 3", l1.Finishes)
	}
	if l1.BestPercent != 100 {
		t.Errorf("best = %d, want 100", l1.BestPercent)
	}
	if l1.LastPercent != 50 {
		t.Errorf("last = %d, want the chronologically last run's 50", l1.LastPercent)
	}
	if l1.LastFinished.IsZero() {
		t.Error("last finished timestamp should be set")
	}

	l2 := stats[1]
	if l2.LessonID != "l2" || l2.Finishes != 1 || l2.BestPercent != 75 {
		t.Errorf("stats[1] = %+v", l2)
	}
}

func TestEventRepo_LessonStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().LessonStats(context.Background())
	if err != nil {
		t.Fatalf("lesson stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("stats = %+v, want none", stats)
	}
}

func TestEventRepo_AnswerAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "a", CourseID: "c1", LessonID: "l1", StepID: "s2", StepType: "single_choice", Correct: true},
		{SessionID: "a", CourseID: "c1", LessonID: "l1", StepID: "s3", StepType: "fill_blank", Correct: false},
		{SessionID: "b", CourseID: "c1", LessonID: "l1", StepID: "s2", StepType: "single_choice", Correct: true},
		{SessionID: "b", CourseID: "c1", LessonID: "l1", StepID: "s3", StepType: "fill_blank", Correct: true},
		{SessionID: "c", CourseID: "c1", LessonID: "l2", StepID: "x1", StepType: "fill_blank", Correct: false},
	}
	for i, ev := range answers {
		if err := repo.AppendAnswer(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, err := repo.AnswerAccuracy(ctx, "c1", "l1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	acc, err = repo.AnswerAccuracy(ctx, "c1", "l2")
	if err != nil {
		t.Fatalf("accuracy l2: %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy l2 = %v, want 0", acc)
	}

	// No answers at all.
	acc, err = repo.AnswerAccuracy(ctx, "c9", "l9")
	if err != nil || acc != 0 {
		t.Errorf("accuracy for unseen lesson = %v, %v, want 0", acc, err)
	}
}
