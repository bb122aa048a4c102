package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/pinagook/pinagook/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "lessons"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "lessons" {
		t.Errorf("expected active 'lessons', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "lessons"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "lesson-1"})

	next := &stubScreen{title: "lesson-2"}
	r.Replace(next)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "lesson-2" {
		t.Errorf("expected active 'lesson-2', got %q", r.Active().Title())
	}
	if !next.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "lessons"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Depth() != 2 || !s2.initRan {
		t.Errorf("push via msg: depth %d, init %v", r.Depth(), s2.initRan)
	}

	s3 := &stubScreen{title: "lesson"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Depth() != 2 || r.Active().Title() != "lesson" {
		t.Errorf("replace via msg: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Errorf("pop via msg: depth %d, active %q", r.Depth(), r.Active().Title())
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	bottom := &stubScreen{title: "home"}
	top := &stubScreen{title: "lessons"}
	r := New(bottom)
	r.Push(top)

	type probeMsg struct{}
	r.Update(probeMsg{})

	if _, ok := top.lastMsg.(probeMsg); !ok {
		t.Errorf("active screen got %T, want probeMsg", top.lastMsg)
	}
	if bottom.lastMsg != nil {
		t.Error("inactive screens should not receive messages")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "lessons"})

	if got := r.View(80, 24); got != "lessons" {
		t.Errorf("View = %q, want the active screen's render", got)
	}
}
