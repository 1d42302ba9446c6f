package styles

import (
	"scrollseg/internal/health"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	BrandColor = lipgloss.Color("#f27b24")

	// Tab label colours at minimum and full emphasis
	TabDim    = lipgloss.Color("#6C6C6C")
	TabBright = lipgloss.Color("#FFF7DB")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	FooterStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#555"))
)

const (
	StatusHealthy  = health.StatusHealthy
	StatusWarning  = health.StatusWarning
	StatusCritical = health.StatusCritical
)

// StatusColor maps a health status to its colour. Unknown statuses are grey.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case StatusCritical:
		return lipgloss.Color("196") // Red
	case StatusWarning:
		return lipgloss.Color("220") // Gold
	case StatusHealthy:
		return lipgloss.Color("46") // Green
	}
	return lipgloss.Color("240")
}

func ColorForStatus(status string) lipgloss.Style {
	return StatusStyle.Foreground(StatusColor(status))
}
