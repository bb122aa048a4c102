package components

import (
	"fmt"
	"strings"

	"github.com/pinagook/pinagook/internal/ui/theme"
)

// StepBar renders lesson position as a filled bar with a step counter.
func StepBar(current, total, width int) string {
	if total <= 0 {
		return ""
	}

	label := fmt.Sprintf(" Step %d of %d", current+1, total)
	barWidth := width - len(label) - 2
	if barWidth < 10 {
		barWidth = 10
	}

	filled := (current + 1) * barWidth / total
	if filled > barWidth {
		filled = barWidth
	}

	bar := theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled))

	return bar + theme.Hint.Render(label)
}
