package health

import (
	"fmt"

	"scrollseg/internal/collector"
)

const (
	StatusHealthy  = "OK"
	StatusWarning  = "WARN"
	StatusCritical = "CRIT"
)

// Groups tie results to dashboard pages.
const (
	GroupCPU     = "cpu"
	GroupMemory  = "memory"
	GroupDisk    = "disk"
	GroupNetwork = "network"
)

type CheckResult struct {
	Name   string
	Group  string
	Value  float64
	Status string
}

func getStatus(value float64, l Limits) string {
	if value > l.Critical {
		return StatusCritical
	}
	if value > l.Warning {
		return StatusWarning
	}
	return StatusHealthy
}

func Evaluate(stats *collector.RawStats, cfg Config) []CheckResult {
	if stats == nil {
		return nil
	}
	var result []CheckResult
	add := func(name, group string, value float64, status string) {
		result = append(result, CheckResult{Name: name, Group: group, Value: value, Status: status})
	}

	add("CPU Usage", GroupCPU, stats.CPUUsage, getStatus(stats.CPUUsage, cfg.CPU))
	if stats.CPUCores > 0 {
		perCore := stats.LoadAvg1 / float64(stats.CPUCores)
		add("Load per Core", GroupCPU, perCore, getStatus(perCore, cfg.Load))
	}

	add("RAM Usage", GroupMemory, stats.RAMUsage, getStatus(stats.RAMUsage, cfg.RAM))
	if stats.SwapTotalGB > 0 {
		add("Swap Usage", GroupMemory, stats.SwapUsage, getStatus(stats.SwapUsage, cfg.Swap))
	}

	add("Disk Usage", GroupDisk, stats.DiskUsage,
		diskStatus(stats.DiskUsage, stats.DiskTotalGB, cfg))
	for _, p := range stats.Partitions {
		add(fmt.Sprintf("Partition %s Usage", p.Mountpoint), GroupDisk, p.UsedPercent,
			diskStatus(p.UsedPercent, p.TotalGB, cfg))
	}

	netStatus := StatusCritical
	if stats.IsConnected {
		netStatus = getStatus(stats.NetLatencyMs, cfg.Net)
	}
	add("Net Latency", GroupNetwork, stats.NetLatencyMs, netStatus)

	for _, nic := range stats.NetInterfaces {
		errTotal := float64(nic.ErrIn + nic.ErrOut)
		dropTotal := float64(nic.DropIn + nic.DropOut)
		add(fmt.Sprintf("NIC %s Errors", nic.Name), GroupNetwork, errTotal, countStatus(errTotal))
		add(fmt.Sprintf("NIC %s Drops", nic.Name), GroupNetwork, dropTotal, countStatus(dropTotal))
	}

	return result
}

// diskStatus warns on low absolute free space even when the percentage is fine.
func diskStatus(usedPct, totalGB float64, cfg Config) string {
	status := getStatus(usedPct, cfg.Disk)
	freeGB := totalGB - totalGB*usedPct/100
	if status == StatusHealthy && totalGB > 0 && freeGB < cfg.MinFreeDiskGB {
		return StatusWarning
	}
	return status
}

func countStatus(n float64) string {
	if n > 0 {
		return StatusWarning
	}
	return StatusHealthy
}

func rank(status string) int {
	switch status {
	case StatusCritical:
		return 3
	case StatusWarning:
		return 2
	case StatusHealthy:
		return 1
	}
	return 0
}

// Worst returns the most severe of the given statuses, or "" for none.
func Worst(statuses ...string) string {
	worst := ""
	for _, s := range statuses {
		if rank(s) > rank(worst) {
			worst = s
		}
	}
	return worst
}

// Summary folds results into the worst status per group. The empty group key
// holds the overall status.
func Summary(results []CheckResult) map[string]string {
	out := map[string]string{}
	for _, r := range results {
		out[r.Group] = Worst(out[r.Group], r.Status)
		out[""] = Worst(out[""], r.Status)
	}
	return out
}
