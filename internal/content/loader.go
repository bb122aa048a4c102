package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed demo-course.json
var demoCourseJSON []byte

// Library holds the validated courses available to the player.
type Library struct {
	courses []*Course
	byID    map[string]*Course
}

// NewLibrary builds a library from pre-validated courses.
func NewLibrary(courses ...*Course) *Library {
	lib := &Library{byID: make(map[string]*Course, len(courses))}
	for _, c := range courses {
		lib.add(c)
	}
	return lib
}

func (l *Library) add(c *Course) {
	if _, exists := l.byID[c.ID]; exists {
		return
	}
	l.courses = append(l.courses, c)
	l.byID[c.ID] = c
}

// Courses returns all courses in load order.
func (l *Library) Courses() []*Course {
	return l.courses
}

// Course returns the course with the given id, or nil.
func (l *Library) Course(id string) *Course {
	return l.byID[id]
}

// Lesson resolves a (courseID, lessonID) pair, or nil if either is unknown.
func (l *Library) Lesson(courseID, lessonID string) *Lesson {
	c := l.byID[courseID]
	if c == nil {
		return nil
	}
	return c.LessonByID(lessonID)
}

// DemoCourse returns the embedded demo course. It is validated at load;
// a broken embedded file is a build defect, so this panics on error.
func DemoCourse() *Course {
	c, err := DecodeCourse(demoCourseJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded demo course invalid: %v", err))
	}
	return c
}

// LoadLibrary loads every *.json course file under dir and appends the
// embedded demo course. A missing directory is not an error; a file that
// fails validation is.
func LoadLibrary(dir string) (*Library, error) {
	lib := NewLibrary()

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read courses dir: %w", err)
		}

		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			path := filepath.Join(dir, name)
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			course, err := DecodeCourse(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			lib.add(course)
		}
	}

	lib.add(DemoCourse())
	return lib, nil
}

// DefaultCoursesDir resolves the course files directory in priority order:
// 1. PINAGOOK_COURSES environment variable
// 2. $XDG_DATA_HOME/pinagook/courses
// 3. ~/.local/share/pinagook/courses
func DefaultCoursesDir() (string, error) {
	if p := os.Getenv("PINAGOOK_COURSES"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "pinagook", "courses"), nil
}
