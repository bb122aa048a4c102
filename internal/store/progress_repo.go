package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pinagook/pinagook/ent"
	"github.com/pinagook/pinagook/ent/progressrecord"
	"github.com/pinagook/pinagook/internal/progress"
)

// ProgressRepo implements progress.Storage over the ent client, one row
// per storage key.
type ProgressRepo struct {
	client *ent.Client
}

var _ progress.Storage = (*ProgressRepo)(nil)

// Get returns the stored payload for key.
func (r *ProgressRepo) Get(ctx context.Context, key string) (string, bool, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Payload, true, nil
}

// Set overwrites the payload for key, creating the row when absent.
// The course/lesson columns are lifted out of the payload for indexing.
func (r *ProgressRepo) Set(ctx context.Context, key, value string) error {
	courseID, lessonID := payloadIDs(value)

	n, err := r.client.ProgressRecord.Update().
		Where(progressrecord.Key(key)).
		SetCourseID(courseID).
		SetLessonID(lessonID).
		SetPayload(value).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.ProgressRecord.Create().
		SetKey(key).
		SetCourseID(courseID).
		SetLessonID(lessonID).
		SetPayload(value).
		Save(ctx)
	return err
}

// Remove deletes the row for key; absent keys are a no-op.
func (r *ProgressRepo) Remove(ctx context.Context, key string) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.Key(key)).
		Exec(ctx)
	return err
}

// RemoveAll deletes every progress row, scoped to a course when courseID
// is non-empty. Returns the number of rows deleted.
func (r *ProgressRepo) RemoveAll(ctx context.Context, courseID string) (int, error) {
	q := r.client.ProgressRecord.Delete()
	if courseID != "" {
		q = q.Where(progressrecord.CourseID(courseID))
	}
	return q.Exec(ctx)
}

// payloadIDs extracts courseId/lessonId from a StoredProgress payload.
// An unparseable payload yields empty ids; the key column still makes
// the row addressable.
func payloadIDs(value string) (courseID, lessonID string) {
	var ids struct {
		CourseID string `json:"courseId"`
		LessonID string `json:"lessonId"`
	}
	_ = json.Unmarshal([]byte(value), &ids)
	return ids.CourseID, ids.LessonID
}
