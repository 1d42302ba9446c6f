package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlendEndpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	if got := Blend(from, to, 0); !strings.EqualFold(string(got), "#000000") {
		t.Errorf("Blend(0) = %s, want #000000", got)
	}
	if got := Blend(from, to, 1); !strings.EqualFold(string(got), "#ffffff") {
		t.Errorf("Blend(1) = %s, want #ffffff", got)
	}
	if got := Blend(from, to, 7); !strings.EqualFold(string(got), "#ffffff") {
		t.Errorf("Blend clamps above 1, got %s", got)
	}
}

func TestBlendANSIFallback(t *testing.T) {
	got := Blend(lipgloss.Color("240"), lipgloss.Color("240"), 0.5)
	if !strings.EqualFold(string(got), "#808080") {
		t.Errorf("ANSI colours should blend as grey, got %s", got)
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status   string
		expected lipgloss.Color
	}{
		{StatusCritical, lipgloss.Color("196")},
		{StatusWarning, lipgloss.Color("220")},
		{StatusHealthy, lipgloss.Color("46")},
		{"", lipgloss.Color("240")},
		{"UNKNOWN", lipgloss.Color("240")},
	}

	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.expected {
			t.Errorf("StatusColor(%q) = %q; want %q", tt.status, got, tt.expected)
		}
	}
}
