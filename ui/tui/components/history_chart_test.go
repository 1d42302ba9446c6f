package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHistoryChart_PushKeepsCapacity(t *testing.T) {
	c := NewHistoryChart("CPU", 3, 30, 8)

	for _, v := range []float64{10, 20, 30, 40} {
		c.Push(v)
	}

	if len(c.History) != 3 || c.History[0] != 20 || c.History[2] != 40 {
		t.Errorf("Expected [20 30 40], got %v", c.History)
	}
}

func TestHistoryChart_MinimumCapacity(t *testing.T) {
	c := NewHistoryChart("CPU", 0, 30, 8)

	if c.Capacity != 2 {
		t.Errorf("Expected capacity raised to 2, got %d", c.Capacity)
	}
}

func TestHistoryChart_ResizeOnWindowSize(t *testing.T) {
	c := NewHistoryChart("CPU", 10, 30, 8)

	c.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if c.Width != 44 || c.Height != 8 {
		t.Errorf("Expected 44x8, got %dx%d", c.Width, c.Height)
	}

	c.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	if c.Width != 44 {
		t.Errorf("Expected tiny windows to keep the last size, got %d", c.Width)
	}
}

func TestHistoryChart_ViewShowsTitle(t *testing.T) {
	c := NewHistoryChart("Usage History", 10, 30, 8)
	c.Push(10)
	c.Push(80)

	if !strings.Contains(stripANSI(c.View()), "Usage History") {
		t.Error("Expected chart title in view")
	}
}
