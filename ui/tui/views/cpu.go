package views

import (
	"fmt"

	"scrollseg/internal/health"
	"scrollseg/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// CPUView is constructed with the thresholds used to colour core bars.
type CPUView struct {
	Thresholds health.Config
}

func (v CPUView) Render(s state.AppState, props ViewProps) string {
	info := lipgloss.NewStyle().
		Padding(0, 2).
		Render(fmt.Sprintf("Model: %s\nCores: %d\nLoad: %.2f, %.2f, %.2f",
			s.Stats.CPUModel, s.Stats.CPUCores,
			s.Stats.LoadAvg1, s.Stats.LoadAvg5, s.Stats.LoadAvg15))

	var cores []string
	for i, usage := range s.Stats.CPUPerCore {
		bar := usageBar(usage, 20, barStatus(usage, v.Thresholds.CPU))
		cores = append(cores, fmt.Sprintf("Core %2d: [%s] %5.1f%%", i, bar, usage))
	}

	// Split cores into columns if there are many
	const coresPerCol = 8
	var cols []string
	for i := 0; i < len(cores); i += coresPerCol {
		end := min(i+coresPerCol, len(cores))
		col := lipgloss.JoinVertical(lipgloss.Left, cores[i:end]...)
		if i > 0 {
			col = lipgloss.NewStyle().PaddingLeft(4).Render(col)
		}
		cols = append(cols, col)
	}

	chart := props.ChartView
	coreBox := card("Per-Core Utilization", lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	return lipgloss.JoinVertical(lipgloss.Left,
		info,
		lipgloss.JoinHorizontal(lipgloss.Top, chart, coreBox),
	)
}
