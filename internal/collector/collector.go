package collector

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gnet "github.com/shirou/gopsutil/v4/net"
)

const gib = 1024 * 1024 * 1024

// RawStats is one snapshot of the values shown on the dashboard pages.
type RawStats struct {
	Hostname string
	Platform string
	Uptime   time.Duration

	CPUUsage   float64
	CPUPerCore []float64
	CPUModel   string
	CPUCores   int
	LoadAvg1   float64
	LoadAvg5   float64
	LoadAvg15  float64

	RAMUsage     float64
	RAMTotalGB   float64
	RAMUsedGB    float64
	RAMAvailable float64
	SwapUsage    float64
	SwapTotalGB  float64

	DiskUsage   float64
	DiskTotalGB float64
	DiskFreeGB  float64
	Partitions  []PartitionUsage

	NetLatencyMs  float64
	IsConnected   bool
	NetInterfaces []NetInterfaceStats
}

type PartitionUsage struct {
	Mountpoint  string
	Device      string
	Fstype      string
	UsedPercent float64
	TotalGB     float64
}

type NetInterfaceStats struct {
	Name      string
	BytesSent uint64
	BytesRecv uint64
	ErrIn     uint64
	ErrOut    uint64
	DropIn    uint64
	DropOut   uint64
}

// StatsProvider is anything that can produce a RawStats snapshot.
type StatsProvider interface {
	GetRawMetrics(ctx context.Context) (*RawStats, error)
}

// SystemCollector reads the local machine through gopsutil.
type SystemCollector struct {
	cfg CollectorConfig
}

func NewSystemCollector(cfg CollectorConfig) *SystemCollector {
	return &SystemCollector{cfg: cfg}
}

// GetRawMetrics runs every probe concurrently. CPU, memory and disk failures
// are fatal for the snapshot; the rest degrade to zero values.
func (s *SystemCollector) GetRawMetrics(ctx context.Context) (*RawStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	stats := &RawStats{}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		cpuErr  error
		memErr  error
		diskErr error
	)
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() {
		err := s.fetchCPU(ctx, stats, &mu)
		mu.Lock()
		cpuErr = err
		mu.Unlock()
	})
	run(func() {
		err := s.fetchMemory(ctx, stats, &mu)
		mu.Lock()
		memErr = err
		mu.Unlock()
	})
	run(func() {
		err := s.fetchDisk(ctx, stats, &mu)
		mu.Lock()
		diskErr = err
		mu.Unlock()
	})
	run(func() { s.fetchHost(ctx, stats, &mu) })
	run(func() { s.fetchLoad(ctx, stats, &mu) })
	run(func() { s.fetchNetIO(ctx, stats, &mu) })
	if s.cfg.EnableNetworkCheck {
		run(func() { s.fetchLatency(ctx, stats, &mu) })
	}

	wg.Wait()

	if cpuErr != nil {
		return nil, fmt.Errorf("failed to get CPU metrics: %w", cpuErr)
	}
	if memErr != nil {
		return nil, fmt.Errorf("failed to get memory metrics: %w", memErr)
	}
	if diskErr != nil {
		return nil, fmt.Errorf("failed to get disk metrics: %w", diskErr)
	}
	return stats, nil
}

func (s *SystemCollector) fetchCPU(ctx context.Context, stats *RawStats, mu *sync.Mutex) error {
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return err
	}
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return err
	}
	model := "Unknown"
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}

	mu.Lock()
	defer mu.Unlock()
	if len(total) > 0 {
		stats.CPUUsage = total[0]
	}
	stats.CPUPerCore = perCore
	stats.CPUCores = len(perCore)
	stats.CPUModel = model
	return nil
}

func (s *SystemCollector) fetchMemory(ctx context.Context, stats *RawStats, mu *sync.Mutex) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	swap, swapErr := mem.SwapMemoryWithContext(ctx)

	mu.Lock()
	defer mu.Unlock()
	stats.RAMUsage = vm.UsedPercent
	stats.RAMTotalGB = float64(vm.Total) / gib
	stats.RAMUsedGB = float64(vm.Used) / gib
	stats.RAMAvailable = float64(vm.Available) / gib
	if swapErr == nil {
		stats.SwapUsage = swap.UsedPercent
		stats.SwapTotalGB = float64(swap.Total) / gib
	}
	return nil
}

func (s *SystemCollector) fetchDisk(ctx context.Context, stats *RawStats, mu *sync.Mutex) error {
	usage, err := disk.UsageWithContext(ctx, s.cfg.DiskPath)
	if err != nil {
		return err
	}
	partitions := s.partitions(ctx)

	mu.Lock()
	defer mu.Unlock()
	stats.DiskUsage = usage.UsedPercent
	stats.DiskTotalGB = float64(usage.Total) / gib
	stats.DiskFreeGB = float64(usage.Free) / gib
	stats.Partitions = partitions
	return nil
}

// partitions lists physical mounts, best-effort.
func (s *SystemCollector) partitions(ctx context.Context) []PartitionUsage {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil
	}
	var out []PartitionUsage
	for _, p := range parts {
		if len(out) >= s.cfg.MaxPartitions {
			break
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		out = append(out, PartitionUsage{
			Mountpoint:  p.Mountpoint,
			Device:      p.Device,
			Fstype:      p.Fstype,
			UsedPercent: usage.UsedPercent,
			TotalGB:     float64(usage.Total) / gib,
		})
	}
	return out
}

func (s *SystemCollector) fetchHost(ctx context.Context, stats *RawStats, mu *sync.Mutex) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	stats.Hostname = info.Hostname
	stats.Platform = info.Platform + " " + info.PlatformVersion
	stats.Uptime = time.Duration(info.Uptime) * time.Second
}

func (s *SystemCollector) fetchLoad(ctx context.Context, stats *RawStats, mu *sync.Mutex) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	stats.LoadAvg1 = avg.Load1
	stats.LoadAvg5 = avg.Load5
	stats.LoadAvg15 = avg.Load15
}

func (s *SystemCollector) fetchNetIO(ctx context.Context, stats *RawStats, mu *sync.Mutex) {
	counters, err := gnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return
	}
	nics := make([]NetInterfaceStats, 0, len(counters))
	for _, c := range counters {
		nics = append(nics, NetInterfaceStats{
			Name:      c.Name,
			BytesSent: c.BytesSent,
			BytesRecv: c.BytesRecv,
			ErrIn:     c.Errin,
			ErrOut:    c.Errout,
			DropIn:    c.Dropin,
			DropOut:   c.Dropout,
		})
	}
	sort.Slice(nics, func(i, j int) bool { return nics[i].Name < nics[j].Name })

	mu.Lock()
	defer mu.Unlock()
	stats.NetInterfaces = nics
}

func (s *SystemCollector) fetchLatency(ctx context.Context, stats *RawStats, mu *sync.Mutex) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.NetworkCheckTimeout)
	defer cancel()

	start := time.Now()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.cfg.NetworkCheckEndpoint)
	if err != nil {
		return
	}
	conn.Close()
	latency := float64(time.Since(start).Microseconds()) / 1000

	mu.Lock()
	defer mu.Unlock()
	stats.IsConnected = true
	stats.NetLatencyMs = latency
}
