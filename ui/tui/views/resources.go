package views

import (
	"fmt"
	"strings"

	"scrollseg/internal/health"
	"scrollseg/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type MemoryView struct {
	Thresholds health.Config
}

func (v MemoryView) Render(s state.AppState, props ViewProps) string {
	st := s.Stats
	ram := fmt.Sprintf("RAM  [%s] %5.1f%%  %.1f / %.1f GiB (%.1f available)",
		usageBar(st.RAMUsage, 30, barStatus(st.RAMUsage, v.Thresholds.RAM)),
		st.RAMUsage, st.RAMUsedGB, st.RAMTotalGB, st.RAMAvailable)
	swap := "Swap not configured"
	if st.SwapTotalGB > 0 {
		swap = fmt.Sprintf("Swap [%s] %5.1f%%  of %.1f GiB",
			usageBar(st.SwapUsage, 30, barStatus(st.SwapUsage, v.Thresholds.Swap)),
			st.SwapUsage, st.SwapTotalGB)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		card("Memory Allocation", ram, swap),
		card("Checks", renderResults(s.ResultsFor(health.GroupMemory))),
	)
}

type DiskView struct {
	Thresholds health.Config
}

func (v DiskView) Render(s state.AppState, props ViewProps) string {
	st := s.Stats
	summary := fmt.Sprintf("Root [%s] %5.1f%%  %.1f GiB free of %.1f GiB",
		usageBar(st.DiskUsage, 30, barStatus(st.DiskUsage, v.Thresholds.Disk)),
		st.DiskUsage, st.DiskFreeGB, st.DiskTotalGB)

	var rows []string
	for _, p := range st.Partitions {
		rows = append(rows, fmt.Sprintf("%-20s %-8s [%s] %5.1f%% of %.1f GiB",
			p.Mountpoint, p.Fstype,
			usageBar(p.UsedPercent, 20, barStatus(p.UsedPercent, v.Thresholds.Disk)),
			p.UsedPercent, p.TotalGB))
	}
	if len(rows) == 0 {
		rows = append(rows, "no partitions")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		card("Disk Usage", summary),
		card("Partitions", strings.Join(rows, "\n")),
	)
}

type NetworkView struct{}

func (v NetworkView) Render(s state.AppState, props ViewProps) string {
	st := s.Stats
	status := "offline"
	if st.IsConnected {
		status = fmt.Sprintf("online, %.1f ms", st.NetLatencyMs)
	}

	rows := []string{fmt.Sprintf("%-12s %12s %12s %8s %8s", "Interface", "Sent", "Received", "Errors", "Drops")}
	for _, nic := range st.NetInterfaces {
		rows = append(rows, fmt.Sprintf("%-12s %12s %12s %8d %8d",
			nic.Name, humanize.IBytes(nic.BytesSent), humanize.IBytes(nic.BytesRecv),
			nic.ErrIn+nic.ErrOut, nic.DropIn+nic.DropOut))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		card("Connectivity", status),
		card("Interfaces", strings.Join(rows, "\n")),
		card("Checks", renderResults(s.ResultsFor(health.GroupNetwork))),
	)
}
