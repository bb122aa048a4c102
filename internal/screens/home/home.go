package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/progress"
	"github.com/pinagook/pinagook/internal/router"
	"github.com/pinagook/pinagook/internal/screen"
	lessonsscreen "github.com/pinagook/pinagook/internal/screens/lessons"
	"github.com/pinagook/pinagook/internal/store"
	"github.com/pinagook/pinagook/internal/ui/layout"
	"github.com/pinagook/pinagook/internal/ui/theme"
)

// HomeScreen lists the available courses.
type HomeScreen struct {
	library  *content.Library
	progress *progress.Service
	events   store.EventRepo
	courses  []*content.Course
	cursor   int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the course browser backed by the loaded library.
func New(library *content.Library, progressSvc *progress.Service, events store.EventRepo) *HomeScreen {
	return &HomeScreen{
		library:  library,
		progress: progressSvc,
		events:   events,
		courses:  library.Courses(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Courses"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open course"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.cursor < len(h.courses)-1 {
			h.cursor++
		}
	case "enter":
		if h.cursor < len(h.courses) {
			course := h.courses[h.cursor]
			return h, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessonsscreen.New(course, h.progress, h.events),
				}
			}
		}
	case "q":
		return h, tea.Quit
	}

	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	if len(h.courses) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No courses found."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width - 8).Render("Pick a course") + "\n\n")

	for i, course := range h.courses {
		line := fmt.Sprintf("%s  %s",
			course.Title,
			theme.Hint.Render(fmt.Sprintf("(%d lessons)", len(course.Lessons))))
		if i == h.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
			if course.Description != "" {
				b.WriteString("  " + theme.Hint.Render(course.Description) + "\n")
			}
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
