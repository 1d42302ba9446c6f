package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"scrollseg/internal/collector"
	"scrollseg/internal/health"
	"scrollseg/internal/segment"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "scrollseg"

type Config struct {
	Segment    SegmentConfig `koanf:"segment"`
	Thresholds health.Config `koanf:"thresholds"`
	Demo       DemoConfig    `koanf:"demo"`
}

// SegmentConfig is the file form of segment.Configuration. Item widths come
// from the tab labels, so only the height is configurable.
type SegmentConfig struct {
	ItemHeight  float64 `koanf:"item_height"`
	ItemSpacing float64 `koanf:"item_spacing"`
	ItemOffset  float64 `koanf:"item_offset"`
	ScaleFactor float64 `koanf:"scale_factor"`
	ShowMark    bool    `koanf:"show_mark"`
	MarkColor   string  `koanf:"mark_color"`
	MarkRadius  float64 `koanf:"mark_radius"`
	MarkOffsetY float64 `koanf:"mark_offset_y"`
}

type DemoConfig struct {
	AutoPage        bool          `koanf:"auto_page"`
	PageSpeed       float64       `koanf:"page_speed"` // pages per second while auto paging
	PollInterval    time.Duration `koanf:"poll_interval"`
	HistoryCapacity int           `koanf:"history_capacity"`
	LogFile         string        `koanf:"log_file"`
	NetworkEndpoint string        `koanf:"network_endpoint"` // empty disables the latency probe
	DiskPath        string        `koanf:"disk_path"`
}

func Default() *Config {
	engine := segment.DefaultConfiguration()
	return &Config{
		Segment: SegmentConfig{
			ItemHeight:  1,
			ItemSpacing: 2,
			ItemOffset:  1,
			ScaleFactor: 1.15,
			ShowMark:    true,
			MarkColor:   "#3B3F5C",
			MarkRadius:  engine.MarkCornerRadius,
		},
		Thresholds: health.DefaultConfig(),
		Demo: DemoConfig{
			PageSpeed:       0.25,
			PollInterval:    time.Second,
			HistoryCapacity: 31,
			LogFile:         filepath.Join(xdg.StateHome, appName, appName+".log"),
			NetworkEndpoint: "8.8.8.8:53",
			DiskPath:        "/",
		},
	}
}

// Load reads the given files in order, last wins, over the defaults. Missing
// files are skipped. With no paths, DefaultPaths is used.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Demo.LogFile = expandPath(cfg.Demo.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the config locations in priority order, lowest first.
func DefaultPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

func (c *Config) Validate() error {
	if c.Segment.ItemHeight <= 0 {
		return &segment.ConfigError{Field: "segment.item_height", Message: "must be positive"}
	}
	if err := c.Segment.Configuration(0).Validate(); err != nil {
		return err
	}
	for name, l := range c.Thresholds.Named() {
		if l.Warning > l.Critical {
			return &segment.ConfigError{Field: "thresholds." + name, Message: "warning must not exceed critical"}
		}
	}
	if c.Demo.PageSpeed <= 0 {
		return &segment.ConfigError{Field: "demo.page_speed", Message: "must be positive"}
	}
	if c.Demo.PollInterval <= 0 {
		return &segment.ConfigError{Field: "demo.poll_interval", Message: "must be positive"}
	}
	if c.Demo.HistoryCapacity < 2 {
		return &segment.ConfigError{Field: "demo.history_capacity", Message: "must be at least 2"}
	}
	return nil
}

// Configuration converts the file settings to a segment configuration with
// count items.
func (s SegmentConfig) Configuration(count int) segment.Configuration {
	return segment.DefaultConfiguration().
		WithCount(count).
		WithItemSize(0, s.ItemHeight).
		WithSpacing(s.ItemSpacing, s.ItemOffset).
		WithScaleFactor(s.ScaleFactor).
		WithMark(s.ShowMark).
		WithMarkStyle(lipgloss.Color(s.MarkColor), s.MarkRadius, s.MarkOffsetY)
}

// Collector builds the collector settings for the demo.
func (d DemoConfig) Collector() collector.CollectorConfig {
	return collector.DefaultCollectorConfig().
		WithNetworkEndpoint(d.NetworkEndpoint).
		WithDiskPath(d.DiskPath)
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
