package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"scrollseg/internal/collector"
	"scrollseg/internal/config"
	"scrollseg/internal/health"
	"scrollseg/internal/segment"
	"scrollseg/ui/tui/components"
	"scrollseg/ui/tui/state"
	"scrollseg/ui/tui/styles"
	"scrollseg/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	tabZone        = "page_tabs"
	maxConsoleLogs = 100
	chartHeight    = 10
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	provider collector.StatsProvider
	cfg      *config.Config
	logger   *log.Logger
	state    state.AppState
	spinner  spinner.Model
	tabs     *components.SegmentBar
	cpuChart *components.HistoryChart
	registry views.Registry

	// auto paging
	pageProgress float64
	lastFrame    time.Time

	consoleScrollY int
	quitting       bool
	width          int
	height         int
}

// Messages
type TickMsg time.Time
type AnimateMsg time.Time
type MetricsLoadedMsg struct {
	Stats *collector.RawStats
	Err   error
}

func InitialModel(provider collector.StatsProvider, cfg *config.Config, logger *log.Logger) *MainModel {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &MainModel{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		spinner:  s,
		cpuChart: components.NewHistoryChart("Usage History", cfg.Demo.HistoryCapacity, 30, chartHeight),
		registry: views.NewRegistry(cfg.Thresholds),
		state: state.AppState{
			CurrentPage: state.PageOverview,
			AutoPage:    cfg.Demo.AutoPage,
		},
	}
	m.tabs = components.NewSegmentBar(tabZone, cfg.Segment.Configuration(0), state.Titles(), m.onTabChange, logger)
	return m
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchMetricsCmd(m.provider),
		tickCmd(m.cfg.Demo.PollInterval),
		animateCmd(),
	)
}

// Commands
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Second/components.FrameFPS, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchMetricsCmd(p collector.StatsProvider) tea.Cmd {
	return func() tea.Msg {
		stats, err := p.GetRawMetrics(context.Background())
		return MetricsLoadedMsg{Stats: stats, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m, tea.Batch(fetchMetricsCmd(m.provider), tickCmd(m.cfg.Demo.PollInterval))

	case MetricsLoadedMsg:
		return m.handleMetricsLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		m.tabs.Update(msg)
		return m, nil
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.tabs.Segment.Current()
	count := m.tabs.Segment.Count()

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		if current > 0 {
			m.tabs.Select(current - 1)
		}
	case "right", "l":
		if current < count-1 {
			m.tabs.Select(current + 1)
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.tabs.Select(int(key[0] - '1'))
	case "a":
		m.toggleAutoPage()
	case "up", "k":
		if m.state.CurrentPage == state.PageConsole {
			m.consoleScrollY = max(m.consoleScrollY-1, 0)
		}
	case "down", "j":
		if m.state.CurrentPage == state.PageConsole {
			m.consoleScrollY = views.ClampScroll(m.consoleScrollY+1, len(m.state.ConsoleLogs), m.consoleHeight())
		}
	}
	return m, nil
}

func (m *MainModel) toggleAutoPage() {
	m.state.AutoPage = !m.state.AutoPage
	m.pageProgress = 0
	if !m.state.AutoPage {
		// drop any partial scrub
		m.tabs.Segment.SetCurrent(m.tabs.Segment.Current())
	}
	m.log(fmt.Sprintf("auto paging %v", m.state.AutoPage))
}

// onTabChange runs after a tap, click or key selection.
func (m *MainModel) onTabChange(_ *segment.Segment, from, to int) {
	m.pageProgress = 0
	m.showPage(state.Page(to))
	m.log(fmt.Sprintf("page %s -> %s", state.Page(from).Title(), state.Page(to).Title()))
}

func (m *MainModel) showPage(p state.Page) {
	if p != m.state.CurrentPage {
		m.consoleScrollY = 0
	}
	m.state.CurrentPage = p
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 1.0 / components.FrameFPS
	if !m.lastFrame.IsZero() && now.After(m.lastFrame) {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	if m.state.AutoPage {
		m.autoPage(dt)
	}
	m.tabs.Update(components.FrameMsg(now))
	return m, animateCmd()
}

// autoPage scrubs the selection toward the next tab and commits it silently
// once the scrub completes.
func (m *MainModel) autoPage(dt float64) {
	seg := m.tabs.Segment
	if seg.Count() < 2 {
		return
	}
	next := (seg.Current() + 1) % seg.Count()

	m.pageProgress += dt * m.cfg.Demo.PageSpeed
	if m.pageProgress < 1 {
		seg.Scrub(m.pageProgress, next)
		return
	}

	m.pageProgress = 0
	seg.SetCurrent(next)
	seg.Reveal(next)
	m.showPage(state.Page(seg.Current()))
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.tabs.Update(msg)
	m.cpuChart.Update(msg)
	return m, nil
}

func (m *MainModel) handleMetricsLoadedMsg(msg MetricsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state.Err = msg.Err
		m.log(fmt.Sprintf("collect failed: %v", msg.Err))
		return m, nil
	}

	stats := msg.Stats
	m.state.Err = nil
	m.state.Stats = stats
	m.state.Results = health.Evaluate(stats, m.cfg.Thresholds)
	m.state.Summary = health.Summary(m.state.Results)
	m.state.LastUpdate = time.Now()

	m.cpuChart.Push(stats.CPUUsage)

	for _, p := range state.Pages() {
		if group, ok := p.Group(); ok {
			m.tabs.SetStatus(int(p), m.state.Summary[group])
		}
	}

	m.state.Log(fmt.Sprintf("[%s] CPU: %.1f%% | RAM: %.1f%% | Disk: %.1f%%",
		m.state.LastUpdate.Format("15:04:05"),
		stats.CPUUsage,
		stats.RAMUsage,
		stats.DiskUsage,
	), maxConsoleLogs)
	return m, nil
}

// log writes to the console page and the debug log.
func (m *MainModel) log(line string) {
	m.logger.Print(line)
	m.state.Log(fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), line), maxConsoleLogs)
}

// bodyHeight is what remains for the page below the header and tabs.
func (m *MainModel) bodyHeight() int {
	return max(m.height-2-m.tabs.Height(), 1)
}

func (m *MainModel) consoleHeight() int {
	return max(m.bodyHeight()-2, 1)
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	updated := "never"
	if !m.state.LastUpdate.IsZero() {
		updated = m.state.LastUpdate.Format("15:04:05")
	}
	auto := ""
	if m.state.AutoPage {
		auto = styles.StatusStyle.Foreground(styles.BrandColor).Render("  AUTO")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		m.spinner.View(),
		styles.TitleStyle.Render("scrollseg"),
		fmt.Sprintf(" Last Update: %s", updated),
		auto,
	)

	props := views.ViewProps{
		Width:   m.width,
		Height:  m.bodyHeight(),
		ScrollY: m.consoleScrollY,
	}
	if m.state.CurrentPage == state.PageCPU {
		props.ChartView = m.cpuChart.View()
	}
	body := m.registry.Render(m.state.CurrentPage, m.state, props)

	footer := styles.FooterStyle.Render("←/→ select • 1-9 jump • a auto • click a tab • wheel scrolls tabs • q quit")

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.tabs.View(),
		body,
		footer,
	))
}

func Start(cfg *config.Config, provider collector.StatsProvider, logger *log.Logger) error {
	zone.NewGlobal()
	m := InitialModel(provider, cfg, logger)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
