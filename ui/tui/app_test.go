package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"scrollseg/internal/collector"
	"scrollseg/internal/config"
	"scrollseg/internal/health"
	"scrollseg/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func init() {
	zone.NewGlobal()
}

// MockStatsProvider for testing
type MockStatsProvider struct {
	stats *collector.RawStats
}

func (m MockStatsProvider) GetRawMetrics(context.Context) (*collector.RawStats, error) {
	if m.stats == nil {
		return &collector.RawStats{}, nil
	}
	return m.stats, nil
}

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	cfg := config.Default()
	cfg.Demo.PageSpeed = 1
	m := InitialModel(MockStatsProvider{}, cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func consoleContains(m *MainModel, sub string) bool {
	for _, line := range m.state.ConsoleLogs {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t)

	if m.state.CurrentPage != state.PageOverview {
		t.Errorf("Expected initial page Overview, got %v", m.state.CurrentPage)
	}
	if got := m.tabs.Segment.Count(); got != len(state.Pages()) {
		t.Errorf("Expected %d tabs, got %d", len(state.Pages()), got)
	}
	if m.tabs.Segment.Bounds().Width != 100 {
		t.Errorf("Expected tab bar to follow window width, got %v", m.tabs.Segment.Bounds().Width)
	}
}

func TestTabNavigation(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("right"))
	if m.state.CurrentPage != state.PageCPU {
		t.Fatalf("Expected page CPU after right, got %v", m.state.CurrentPage)
	}
	if !consoleContains(m, "page Overview -> CPU") {
		t.Errorf("Expected page change in console, got %v", m.state.ConsoleLogs)
	}
	if !m.tabs.Animator.Animating() {
		t.Error("Expected key selection to animate")
	}

	m.Update(key("left"))
	m.Update(key("left")) // already first
	if m.state.CurrentPage != state.PageOverview {
		t.Errorf("Expected page Overview after left, got %v", m.state.CurrentPage)
	}

	m.Update(key("5"))
	if m.state.CurrentPage != state.PageNetwork {
		t.Errorf("Expected page Network after '5', got %v", m.state.CurrentPage)
	}

	m.Update(key("9")) // no such tab
	if m.state.CurrentPage != state.PageNetwork {
		t.Errorf("Expected page to stay on Network, got %v", m.state.CurrentPage)
	}
}

func TestAutoPaging(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("a"))
	if !m.state.AutoPage {
		t.Fatal("Expected 'a' to enable auto paging")
	}

	t0 := time.Now()
	m.Update(AnimateMsg(t0))
	m.Update(AnimateMsg(t0.Add(600 * time.Millisecond)))

	if m.state.CurrentPage != state.PageOverview {
		t.Errorf("Expected page to stay while scrubbing, got %v", m.state.CurrentPage)
	}
	if p := m.tabs.Tab(1).State().Progress; p <= 0.5 {
		t.Errorf("Expected next tab to brighten while scrubbing, got %f", p)
	}

	m.Update(AnimateMsg(t0.Add(1200 * time.Millisecond)))

	if m.tabs.Segment.Current() != 1 || m.state.CurrentPage != state.PageCPU {
		t.Errorf("Expected auto paging to land on CPU, got tab %d page %v", m.tabs.Segment.Current(), m.state.CurrentPage)
	}
	if consoleContains(m, "page Overview -> CPU") {
		t.Error("Auto paging commits silently and must not report a page change")
	}

	m.Update(key("a"))
	if m.state.AutoPage {
		t.Error("Expected 'a' to disable auto paging")
	}
}

func TestMetricsLoaded(t *testing.T) {
	m := newTestModel(t)

	m.Update(MetricsLoadedMsg{Stats: &collector.RawStats{
		CPUUsage:    95,
		RAMUsage:    10,
		DiskUsage:   10,
		DiskTotalGB: 100,
		IsConnected: true,
	}})

	if got := m.tabs.Tab(int(state.PageCPU)).Status; got != health.StatusCritical {
		t.Errorf("Expected CPU tab status CRIT, got %q", got)
	}
	if got := m.tabs.Tab(int(state.PageMemory)).Status; got != health.StatusHealthy {
		t.Errorf("Expected Memory tab status OK, got %q", got)
	}
	if got := m.tabs.Tab(int(state.PageOverview)).Status; got != health.StatusCritical {
		t.Errorf("Expected Overview to carry the overall status, got %q", got)
	}
	if got := m.tabs.Tab(int(state.PageConsole)).Status; got != "" {
		t.Errorf("Expected Console tab without status, got %q", got)
	}
	if len(m.cpuChart.History) != 1 {
		t.Errorf("Expected one chart sample, got %d", len(m.cpuChart.History))
	}
	if !consoleContains(m, "CPU: 95.0%") {
		t.Errorf("Expected metrics line in console, got %v", m.state.ConsoleLogs)
	}
}

func TestMetricsError(t *testing.T) {
	m := newTestModel(t)

	m.Update(MetricsLoadedMsg{Err: errors.New("boom")})

	if m.state.Err == nil {
		t.Fatal("Expected error to be stored")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("Expected error in view")
	}
}

func TestViewShowsTabsAndPage(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Overview", "Console", "Collecting metrics"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	m.Update(MetricsLoadedMsg{Stats: &collector.RawStats{Hostname: "box"}})
	if !strings.Contains(m.View(), "box") {
		t.Error("Expected overview to show the host name")
	}
}

func TestConsoleScroll(t *testing.T) {
	m := newTestModel(t)
	for i := range 200 {
		m.state.Log(strings.Repeat("x", i%5), maxConsoleLogs)
	}
	m.Update(key("6"))
	if m.state.CurrentPage != state.PageConsole {
		t.Fatalf("Expected console page, got %v", m.state.CurrentPage)
	}

	m.Update(key("down"))
	m.Update(key("down"))
	if m.consoleScrollY != 2 {
		t.Errorf("Expected scroll 2, got %d", m.consoleScrollY)
	}

	for range 500 {
		m.Update(key("down"))
	}
	if limit := len(m.state.ConsoleLogs) - m.consoleHeight(); m.consoleScrollY != limit {
		t.Errorf("Expected scroll clamped to %d, got %d", limit, m.consoleScrollY)
	}

	m.Update(key("left"))
	if m.consoleScrollY != 0 {
		t.Errorf("Expected scroll reset when leaving the console, got %d", m.consoleScrollY)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))

	if cmd == nil || !m.quitting {
		t.Fatal("Expected quit command")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Unexpected final view %q", m.View())
	}
}
