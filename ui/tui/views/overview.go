package views

import (
	"fmt"
	"time"

	"scrollseg/internal/health"
	"scrollseg/ui/tui/state"
	"scrollseg/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type OverviewView struct{}

func (v OverviewView) Render(s state.AppState, props ViewProps) string {
	st := s.Stats
	hostLine := lipgloss.NewStyle().Padding(0, 2).Render(fmt.Sprintf(
		"Host: %s (%s) • Up %s • Overall %s",
		st.Hostname, st.Platform, st.Uptime.Truncate(time.Minute),
		styles.ColorForStatus(s.Summary[""]).Render(s.Summary[""]),
	))

	cpuCol := card("CPU", renderResults(s.ResultsFor(health.GroupCPU)))
	ramCol := card("Memory", renderResults(s.ResultsFor(health.GroupMemory)))
	diskCol := card("Disk", renderResults(s.ResultsFor(health.GroupDisk)))
	netCol := card("Network", renderResults(s.ResultsFor(health.GroupNetwork)))

	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cpuCol, ramCol)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, diskCol, netCol)

	return lipgloss.JoinVertical(lipgloss.Left, hostLine, row1, row2)
}
