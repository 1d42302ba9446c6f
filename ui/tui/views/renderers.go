package views

import (
	"fmt"

	"scrollseg/internal/health"
	"scrollseg/ui/tui/state"
	"scrollseg/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Registry maps every page to its view.
type Registry map[state.Page]View

func NewRegistry(thresholds health.Config) Registry {
	return Registry{
		state.PageOverview: OverviewView{},
		state.PageCPU:      CPUView{Thresholds: thresholds},
		state.PageMemory:   MemoryView{Thresholds: thresholds},
		state.PageDisk:     DiskView{Thresholds: thresholds},
		state.PageNetwork:  NetworkView{},
		state.PageConsole:  ConsoleView{},
	}
}

// Render draws page, falling back to a notice while no snapshot exists.
// The console does not depend on metrics.
func (r Registry) Render(page state.Page, s state.AppState, props ViewProps) string {
	v, ok := r[page]
	if !ok {
		return ""
	}
	if page != state.PageConsole {
		if s.Err != nil {
			return lipgloss.NewStyle().Padding(1, 2).
				Foreground(styles.StatusColor(health.StatusCritical)).
				Render(fmt.Sprintf("Error: %v", s.Err))
		}
		if s.Stats == nil {
			return lipgloss.NewStyle().Padding(1, 2).Foreground(styles.Subtle).Render("Collecting metrics…")
		}
	}
	return v.Render(s, props)
}
