package views

import (
	"fmt"
	"strings"

	"scrollseg/ui/tui/state"
	"scrollseg/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type ConsoleView struct{}

// ClampScroll bounds a scroll offset for total lines shown in height rows.
func ClampScroll(scrollY, total, height int) int {
	return max(0, min(scrollY, total-height))
}

func (v ConsoleView) Render(s state.AppState, props ViewProps) string {
	availableHeight := max(props.Height-2, 1)

	lines := s.ConsoleLogs
	scrollY := ClampScroll(props.ScrollY, len(lines), availableHeight)
	end := min(scrollY+availableHeight, len(lines))

	box := lipgloss.NewStyle().
		Width(max(props.Width-4, 1)).
		Height(availableHeight).
		Padding(0, 1).
		Render(strings.Join(lines[scrollY:end], "\n"))

	footerText := fmt.Sprintf("Scroll: %d/%d", scrollY, len(lines))
	if len(lines) > availableHeight {
		footerText += " • Use ↑/↓ to scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		box,
		styles.FooterStyle.Render(footerText),
	)
}
