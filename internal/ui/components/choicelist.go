package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/ui/theme"
)

// ChoiceList renders a single-choice step's options. Before the answer
// is checked it is a plain selector; after checking it colors the
// correct and chosen options.
type ChoiceList struct {
	Options         []content.Option
	CorrectOptionID string
	Cursor          int
	Checked         bool
	ChosenOptionID  string
}

// NewChoiceList creates a selector over the step's options. If the
// student answered this step before (resume or Back), the cursor starts
// on their previous choice.
func NewChoiceList(step content.StepSingleChoice, chosenOptionID string) ChoiceList {
	cl := ChoiceList{
		Options:         step.Options,
		CorrectOptionID: step.CorrectOptionID,
		ChosenOptionID:  chosenOptionID,
	}
	for i, opt := range step.Options {
		if opt.ID == chosenOptionID {
			cl.Cursor = i
		}
	}
	return cl
}

// Update handles cursor movement. Selection is reported through
// Selected(); checking is the screen's concern.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// Selected returns the option under the cursor.
func (c ChoiceList) Selected() content.Option {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return content.Option{}
	}
	return c.Options[c.Cursor]
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	labels := "abcdefghij"

	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}

		prefix := "  "
		if i == c.Cursor && !c.Checked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Text)

		var style lipgloss.Style
		switch {
		case c.Checked && opt.ID == c.CorrectOptionID:
			style = theme.Correct
		case c.Checked && opt.ID == c.ChosenOptionID:
			style = theme.Incorrect
		case c.Checked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}

	return s
}
