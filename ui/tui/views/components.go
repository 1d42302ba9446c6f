package views

import (
	"fmt"
	"strings"

	"scrollseg/internal/health"
	"scrollseg/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func card(title string, body ...string) string {
	parts := append([]string{lipgloss.NewStyle().Bold(true).Render(title)}, body...)
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderResults lists checks as "name : value [status]".
func renderResults(results []health.CheckResult) string {
	if len(results) == 0 {
		return lipgloss.NewStyle().Foreground(styles.Subtle).Render("no data")
	}
	var lines []string
	for _, r := range results {
		val := styles.ColorForStatus(r.Status).Render(fmt.Sprintf("%.1f [%s]", r.Value, r.Status))
		lines = append(lines, fmt.Sprintf("%-24s : %s", r.Name, val))
	}
	return strings.Join(lines, "\n")
}

// usageBar draws a fixed-width percentage bar coloured by status.
func usageBar(pct float64, width int, status string) string {
	filled := int(float64(width) * pct / 100)
	filled = min(max(filled, 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(styles.StatusColor(status)).Render(bar)
}

// barStatus applies limits the way health does, for values without a check.
func barStatus(pct float64, l health.Limits) string {
	switch {
	case pct > l.Critical:
		return health.StatusCritical
	case pct > l.Warning:
		return health.StatusWarning
	}
	return health.StatusHealthy
}
