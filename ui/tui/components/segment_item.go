package components

import (
	"scrollseg/internal/segment"
	"scrollseg/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	tabPadding = 1
	statusDot  = "●"

	boldEpsilon = 1e-3
)

// TabItem is a text segment on a single terminal row: a status dot followed
// by the title.
type TabItem struct {
	*segment.BaseItem
	Title  string
	Status string
}

func NewTabItem(title string) *TabItem {
	return &TabItem{
		BaseItem: segment.NewBaseItem(),
		Title:    title,
	}
}

// Label is the text drawn inside the tab, without padding.
func (t *TabItem) Label() string {
	return statusDot + " " + t.Title
}

// Width is the number of cells the tab occupies including padding. The status
// dot is always reserved so status updates never move other tabs.
func (t *TabItem) Width() int {
	return runewidth.StringWidth(t.Label()) + 2*tabPadding
}

// Foreground maps emphasis to a colour between the dim and bright tab colours.
func (t *TabItem) Foreground(state segment.ItemState) lipgloss.Color {
	span := 1 - segment.MinProgress
	return styles.Blend(styles.TabDim, styles.TabBright, (state.Progress-segment.MinProgress)/span)
}

// Bold reports whether the label is drawn at emphasised size. A terminal cannot
// scale glyphs, so the selected scale is shown as bold text. Emphasis only
// exists when scaleFactor is above 1; otherwise no tab is bold.
func (t *TabItem) Bold(state segment.ItemState, scaleFactor float64) bool {
	if scaleFactor <= 1 {
		return false
	}
	return state.Scale >= 1-boldEpsilon
}

// TabWidth is the segment.WidthProvider for TabItem. Other item types fall back
// to the configured item width.
func TabWidth(s *segment.Segment, item segment.Item) float64 {
	if tab, ok := item.(*TabItem); ok {
		return float64(tab.Width())
	}
	return s.Configuration().ItemSize.Width
}
