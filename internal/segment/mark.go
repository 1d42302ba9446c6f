package segment

import "github.com/charmbracelet/lipgloss"

// MarkView is the indicator that tracks the selected item. The engine only
// ever moves it.
type MarkView interface {
	Frame() Rect
	SetFrame(r Rect)
}

// MarkFactory supplies a custom indicator. It is called at most once per
// Segment.
type MarkFactory func(s *Segment) MarkView

// RoundedMark is the default indicator: a filled rounded rectangle.
type RoundedMark struct {
	frame        Rect
	CornerRadius float64
	Color        lipgloss.Color
}

func newRoundedMark(cfg Configuration) *RoundedMark {
	return &RoundedMark{
		CornerRadius: cfg.MarkCornerRadius,
		Color:        cfg.MarkColor,
	}
}

func (m *RoundedMark) Frame() Rect     { return m.frame }
func (m *RoundedMark) SetFrame(r Rect) { m.frame = r }
