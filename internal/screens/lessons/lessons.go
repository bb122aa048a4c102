package lessons

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/progress"
	"github.com/pinagook/pinagook/internal/router"
	"github.com/pinagook/pinagook/internal/screen"
	lessonscreen "github.com/pinagook/pinagook/internal/screens/lesson"
	"github.com/pinagook/pinagook/internal/store"
	"github.com/pinagook/pinagook/internal/ui/layout"
	"github.com/pinagook/pinagook/internal/ui/theme"
)

// savedStatesMsg carries which lessons have a saved snapshot.
type savedStatesMsg struct {
	inProgress map[string]bool
}

// LessonsScreen lists the lessons of one course.
type LessonsScreen struct {
	course     *content.Course
	progress   *progress.Service
	events     store.EventRepo
	cursor     int
	inProgress map[string]bool
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)

// New creates the lesson list for a course.
func New(course *content.Course, progressSvc *progress.Service, events store.EventRepo) *LessonsScreen {
	return &LessonsScreen{
		course:   course,
		progress: progressSvc,
		events:   events,
	}
}

func (l *LessonsScreen) Init() tea.Cmd {
	return l.loadSavedStates()
}

// loadSavedStates probes storage for each lesson so the list can badge
// lessons with saved progress.
func (l *LessonsScreen) loadSavedStates() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		inProgress := make(map[string]bool, len(l.course.Lessons))
		for i := range l.course.Lessons {
			id := l.course.Lessons[i].ID
			if l.progress.Load(ctx, l.course.ID, id) != nil {
				inProgress[id] = true
			}
		}
		return savedStatesMsg{inProgress: inProgress}
	}
}

func (l *LessonsScreen) Title() string {
	return l.course.Title
}

func (l *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedStatesMsg:
		l.inProgress = msg.inProgress
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(l.course.Lessons)-1 {
				l.cursor++
			}
		case "enter":
			if l.cursor < len(l.course.Lessons) {
				lesson := &l.course.Lessons[l.cursor]
				return l, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lessonscreen.New(l.course, lesson, l.progress, l.events),
					}
				}
			}
		}
	}

	return l, nil
}

func (l *LessonsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(minInt(width-8, 64) - 4).Render(l.course.Title) + "\n")
	if l.course.Description != "" {
		b.WriteString(theme.Subtitle.Width(minInt(width-8, 64) - 4).Render(l.course.Description) + "\n")
	}
	b.WriteString("\n")

	for i := range l.course.Lessons {
		lesson := &l.course.Lessons[i]
		line := fmt.Sprintf("%d. %s", i+1, lesson.Title)
		if l.inProgress[lesson.ID] {
			line += "  " + theme.Hint.Render("(in progress)")
		}
		if i == l.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(minInt(width-8, 64)).Render(b.String()))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
