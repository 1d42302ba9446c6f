package components

import (
	"scrollseg/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryChart plots the last Capacity percentage samples as a braille line.
type HistoryChart struct {
	Title    string
	Chart    linechart.Model
	History  []float64
	Capacity int
	Width    int
	Height   int
}

func NewHistoryChart(title string, capacity, width, height int) *HistoryChart {
	capacity = max(capacity, 2)
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, float64(capacity-1), 0, 100)
	return &HistoryChart{
		Title:    title,
		Chart:    lc,
		History:  make([]float64, 0, capacity),
		Capacity: capacity,
		Width:    width,
		Height:   height,
	}
}

func (c *HistoryChart) Init() tea.Cmd {
	return nil
}

// Push appends a sample, dropping the oldest once Capacity is reached.
func (c *HistoryChart) Push(value float64) {
	c.History = append(c.History, value)
	if len(c.History) > c.Capacity {
		c.History = c.History[1:]
	}
}

func (c *HistoryChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if w := msg.Width/2 - 6; w > 10 {
			c.Resize(w, c.Height)
		}
	}
	return c, nil
}

func (c *HistoryChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *HistoryChart) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.History)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.History[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.Title),
			c.Chart.View(),
		),
	)
}
