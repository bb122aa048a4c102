package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/pinagook/pinagook/ent"
	"github.com/pinagook/pinagook/ent/answerevent"
	"github.com/pinagook/pinagook/ent/lessonevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	_, err := r.client.AnswerEvent.Create().
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetLessonID(data.LessonID).
		SetStepID(data.StepID).
		SetStepType(data.StepType).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	_, err := r.client.LessonEvent.Create().
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		SetCorrectCount(data.CorrectCount).
		SetTotalInteractive(data.TotalInteractive).
		SetPercent(data.Percent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) LessonStats(ctx context.Context) ([]LessonStat, error) {
	finishes, err := r.client.LessonEvent.Query().
		Where(lessonevent.Action(ActionFinished)).
		Order(ent.Asc(lessonevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query finished lessons: %w", err)
	}

	byLesson := make(map[string]*LessonStat)
	var order []string
	for _, ev := range finishes {
		key := ev.CourseID + "\x00" + ev.LessonID
		stat, ok := byLesson[key]
		if !ok {
			stat = &LessonStat{CourseID: ev.CourseID, LessonID: ev.LessonID}
			byLesson[key] = stat
			order = append(order, key)
		}
		stat.Finishes++
		stat.LastPercent = ev.Percent
		stat.LastFinished = ev.Timestamp
		if ev.Percent > stat.BestPercent {
			stat.BestPercent = ev.Percent
		}
	}

	sort.Strings(order)
	stats := make([]LessonStat, 0, len(order))
	for _, key := range order {
		stats = append(stats, *byLesson[key])
	}
	return stats, nil
}

func (r *eventRepo) AnswerAccuracy(ctx context.Context, courseID, lessonID string) (float64, error) {
	total, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.CourseID(courseID),
			answerevent.LessonID(lessonID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.CourseID(courseID),
			answerevent.LessonID(lessonID),
			answerevent.Correct(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct answers: %w", err)
	}

	return float64(correct) / float64(total), nil
}
