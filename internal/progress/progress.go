package progress

import (
	"context"
	"fmt"
)

// Service saves and restores lesson progress through an injected
// Storage. Last write wins; there is exactly one writer per key within a
// session. No method returns an error: per the player's failure policy,
// broken persistence degrades to "no progress found" and lost writes.
type Service struct {
	storage Storage
}

// NewService creates a Service over the given storage. A nil storage
// degrades to NoopStorage.
func NewService(storage Storage) *Service {
	if storage == nil {
		storage = NoopStorage{}
	}
	return &Service{storage: storage}
}

// MakeKey builds the storage key for a (course, lesson) pair.
func MakeKey(courseID, lessonID string) string {
	return fmt.Sprintf("%s:%s:%s", KeyPrefix, courseID, lessonID)
}

// Save overwrites the stored snapshot for the snapshot's (course,
// lesson) pair. Failures are swallowed.
func (s *Service) Save(ctx context.Context, p *StoredProgress) {
	raw, err := Serialize(p)
	if err != nil {
		return
	}
	_ = s.storage.Set(ctx, MakeKey(p.CourseID, p.LessonID), raw)
}

// Load returns the stored snapshot for the pair, or nil when there is
// none, the backend failed, or the record did not deserialize.
func (s *Service) Load(ctx context.Context, courseID, lessonID string) *StoredProgress {
	raw, ok, err := s.storage.Get(ctx, MakeKey(courseID, lessonID))
	if err != nil || !ok {
		return nil
	}
	return Deserialize(raw)
}

// Clear removes the stored snapshot for the pair. Clearing an absent or
// unreachable record is a no-op.
func (s *Service) Clear(ctx context.Context, courseID, lessonID string) {
	_ = s.storage.Remove(ctx, MakeKey(courseID, lessonID))
}
