package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDemoCourse(t *testing.T) {
	c := DemoCourse()
	if c.ID == "" || len(c.Lessons) == 0 {
		t.Fatalf("demo course = %+v", c)
	}
	for _, lesson := range c.Lessons {
		if len(lesson.Steps) == 0 {
			t.Errorf("lesson %s has no steps", lesson.ID)
		}
	}
}

func TestLoadLibrary_MissingDirStillHasDemo(t *testing.T) {
	lib, err := LoadLibrary(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if len(lib.Courses()) != 1 {
		t.Fatalf("courses = %d, want just the demo", len(lib.Courses()))
	}
}

func TestLoadLibrary_EmptyDirString(t *testing.T) {
	lib, err := LoadLibrary("")
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if len(lib.Courses()) != 1 {
		t.Fatalf("courses = %d, want just the demo", len(lib.Courses()))
	}
}

func TestLoadLibrary_LoadsSortedJSONFiles(t *testing.T) {
	dir := t.TempDir()

	first := strings.Replace(validCourseJSON, `"id": "english-basics"`, `"id": "aa-course"`, 1)
	second := strings.Replace(validCourseJSON, `"id": "english-basics"`, `"id": "zz-course"`, 1)

	// Written out of order; file names decide load order.
	writeFile(t, dir, "b.json", second)
	writeFile(t, dir, "a.json", first)
	writeFile(t, dir, "ignored.txt", "not a course")

	lib, err := LoadLibrary(dir)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	courses := lib.Courses()
	if len(courses) != 3 {
		t.Fatalf("courses = %d, want 2 files + demo", len(courses))
	}
	if courses[0].ID != "aa-course" || courses[1].ID != "zz-course" {
		t.Errorf("load order = %s, %s", courses[0].ID, courses[1].ID)
	}
}

func TestLoadLibrary_InvalidFileFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{"id": "x"}`)

	if _, err := LoadLibrary(dir); err == nil {
		t.Error("invalid course file should fail the load")
	}
}

func TestLoadLibrary_DuplicateCourseIDKeepsFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", strings.Replace(validCourseJSON, `"title": "English Basics"`, `"title": "First"`, 1))
	writeFile(t, dir, "b.json", strings.Replace(validCourseJSON, `"title": "English Basics"`, `"title": "Second"`, 1))

	lib, err := LoadLibrary(dir)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	got := lib.Course("english-basics")
	if got == nil || got.Title != "First" {
		t.Errorf("course = %+v, want the first file to win", got)
	}
}

func TestLibrary_Lookups(t *testing.T) {
	course, err := DecodeCourse([]byte(validCourseJSON))
	if err != nil {
		t.Fatal(err)
	}
	lib := NewLibrary(course)

	if lib.Course("nope") != nil {
		t.Error("unknown course id should return nil")
	}
	if got := lib.Lesson("english-basics", "lesson-1"); got == nil || got.ID != "lesson-1" {
		t.Errorf("Lesson = %+v", got)
	}
	if lib.Lesson("english-basics", "nope") != nil {
		t.Error("unknown lesson id should return nil")
	}
	if lib.Lesson("nope", "lesson-1") != nil {
		t.Error("unknown course id should return nil lesson")
	}
}

func TestDefaultCoursesDir(t *testing.T) {
	t.Setenv("PINAGOOK_COURSES", "/custom/courses")
	got, err := DefaultCoursesDir()
	if err != nil || got != "/custom/courses" {
		t.Errorf("DefaultCoursesDir = %q, %v", got, err)
	}

	t.Setenv("PINAGOOK_COURSES", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	got, err = DefaultCoursesDir()
	if err != nil || got != filepath.Join("/xdg/data", "pinagook", "courses") {
		t.Errorf("DefaultCoursesDir = %q, %v", got, err)
	}
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
