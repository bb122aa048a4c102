package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pinagook/pinagook/internal/ui/theme"
)

// BlankInput wraps bubbles/textinput for fill-blank steps. After a
// check it renders a correct/incorrect mark next to the value.
type BlankInput struct {
	Model   textinput.Model
	checked bool
	correct bool
}

// NewBlankInput creates a focused input seeded with any previous answer.
func NewBlankInput(initial string) BlankInput {
	ti := textinput.New()
	ti.Placeholder = "Type the missing word..."
	ti.CharLimit = 60
	ti.SetValue(initial)
	ti.Focus()
	return BlankInput{Model: ti}
}

// Init returns the initial command.
func (b BlankInput) Init() tea.Cmd {
	return b.Model.Focus()
}

// Update forwards messages to the inner textinput. A checked input is
// frozen until the screen resets it.
func (b BlankInput) Update(msg tea.Msg) (BlankInput, tea.Cmd) {
	if b.checked {
		return b, nil
	}
	var cmd tea.Cmd
	b.Model, cmd = b.Model.Update(msg)
	return b, cmd
}

// View renders the input with feedback mark when checked.
func (b BlankInput) View() string {
	view := b.Model.View()
	if b.checked {
		if b.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current raw input.
func (b BlankInput) Value() string {
	return b.Model.Value()
}

// SetChecked freezes the input and records the verdict for display.
func (b *BlankInput) SetChecked(correct bool) {
	b.checked = true
	b.correct = correct
}

// ResetChecked unfreezes the input after the answer changes.
func (b *BlankInput) ResetChecked() {
	b.checked = false
}
