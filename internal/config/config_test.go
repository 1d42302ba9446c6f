package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"scrollseg/internal/segment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestDefault_KeepsEngineMarkRadius(t *testing.T) {
	c := Default().Segment.Configuration(3)

	assert.Equal(t, segment.DefaultConfiguration().MarkCornerRadius, c.MarkCornerRadius)
	assert.Equal(t, 8.0, c.MarkCornerRadius)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
[segment]
item_spacing = 4
mark_color = "#112233"

[thresholds.cpu]
warning = 50

[demo]
auto_page = true
poll_interval = "250ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 4.0, cfg.Segment.ItemSpacing)
	assert.Equal(t, "#112233", cfg.Segment.MarkColor)
	assert.Equal(t, def.Segment.ScaleFactor, cfg.Segment.ScaleFactor)
	assert.Equal(t, 50.0, cfg.Thresholds.CPU.Warning)
	assert.Equal(t, def.Thresholds.CPU.Critical, cfg.Thresholds.CPU.Critical)
	assert.True(t, cfg.Demo.AutoPage)
	assert.Equal(t, 250*time.Millisecond, cfg.Demo.PollInterval)
	assert.Equal(t, def.Demo.HistoryCapacity, cfg.Demo.HistoryCapacity)
}

func TestLoad_LastFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "a.toml", "[demo]\npage_speed = 0.5\nhistory_capacity = 10\n")
	second := writeConfig(t, dir, "b.toml", "[demo]\npage_speed = 2.0\n")

	cfg, err := Load(first, second)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Demo.PageSpeed)
	assert.Equal(t, 10, cfg.Demo.HistoryCapacity)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "item height", body: "[segment]\nitem_height = 0\n", field: "segment.item_height"},
		{name: "scale factor", body: "[segment]\nscale_factor = 0\n", field: "ItemScaleFactor"},
		{name: "inverted thresholds", body: "[thresholds.ram]\nwarning = 95\ncritical = 90\n", field: "thresholds.ram"},
		{name: "page speed", body: "[demo]\npage_speed = -1\n", field: "demo.page_speed"},
		{name: "history", body: "[demo]\nhistory_capacity = 1\n", field: "demo.history_capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.body)

			_, err := Load(path)

			var cfgErr *segment.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "[segment\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSegmentConfig_Configuration(t *testing.T) {
	sc := Default().Segment
	sc.MarkOffsetY = 1
	sc.MarkRadius = 2

	c := sc.Configuration(4)

	assert.Equal(t, 4, c.Count)
	assert.Equal(t, segment.Size{Width: 0, Height: 1}, c.ItemSize)
	assert.Equal(t, 2.0, c.ItemSpacing)
	assert.Equal(t, 1.0, c.ItemOffset)
	assert.Equal(t, 1.15, c.ItemScaleFactor)
	assert.True(t, c.ShowMark)
	assert.Equal(t, "#3B3F5C", string(c.MarkColor))
	assert.Equal(t, 2.0, c.MarkCornerRadius)
	assert.Equal(t, 1.0, c.MarkOffsetY)
}

func TestDemoConfig_Collector(t *testing.T) {
	d := Default().Demo
	d.NetworkEndpoint = ""
	d.DiskPath = "/data"

	c := d.Collector()

	assert.False(t, c.EnableNetworkCheck)
	assert.Equal(t, "/data", c.DiskPath)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	assert.Equal(t, filepath.Join(home, "logs", "x.log"), expandPath("~/logs/x.log"))
	assert.Equal(t, "/var/log/x.log", expandPath("/var/log/x.log"))
	assert.Equal(t, "", expandPath(""))
}
