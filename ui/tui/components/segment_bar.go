package components

import (
	"log"
	"math"
	"strings"
	"time"

	"scrollseg/internal/segment"
	"scrollseg/ui/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// FrameFPS is the rate at which the host is expected to send FrameMsg.
const FrameFPS = 60

const wheelStep = 4

// FrameMsg advances the bar's presentation animation by one frame.
type FrameMsg time.Time

// SegmentBar renders a segment.Segment as a row of tabs and feeds it mouse
// input. The host owns the frame clock and forwards FrameMsg, mouse and
// window size messages.
type SegmentBar struct {
	Segment  *segment.Segment
	Animator *SpringAnimator
	ZoneID   string

	titles []string
}

// NewSegmentBar builds a bar with one TabItem per title. onChange is called
// after a notifying selection change, once the new tab has been scrolled into
// view.
func NewSegmentBar(zoneID string, cfg segment.Configuration, titles []string, onChange segment.ChangeFunc, logger *log.Logger) *SegmentBar {
	b := &SegmentBar{
		Animator: NewSpringAnimator(FrameFPS),
		ZoneID:   zoneID,
		titles:   titles,
	}
	b.Segment = segment.New(cfg.WithCount(len(titles)),
		segment.WithItemFactory(func(_ segment.Configuration, index int) segment.Item {
			return NewTabItem(b.title(index))
		}),
		segment.WithWidthProvider(TabWidth),
		segment.WithChangeHandler(func(s *segment.Segment, from, to int) {
			s.Reveal(to)
			if onChange != nil {
				onChange(s, from, to)
			}
		}),
		segment.WithAnimator(b.Animator),
		segment.WithLogger(logger),
	)
	return b
}

func (b *SegmentBar) title(index int) string {
	if index < 0 || index >= len(b.titles) {
		return ""
	}
	return b.titles[index]
}

// SetTitles replaces every tab.
func (b *SegmentBar) SetTitles(titles []string) {
	b.titles = titles
	b.Segment.SetCount(len(titles))
}

// Tab returns the tab at index, or nil.
func (b *SegmentBar) Tab(index int) *TabItem {
	for _, item := range b.Segment.Items() {
		if item.Index() == index {
			tab, _ := item.(*TabItem)
			return tab
		}
	}
	return nil
}

// SetStatus changes the status dot of a tab. The dot has a fixed width, so no
// layout pass is needed.
func (b *SegmentBar) SetStatus(index int, status string) {
	if tab := b.Tab(index); tab != nil {
		tab.Status = status
	}
}

// Height is the number of terminal rows the bar occupies.
func (b *SegmentBar) Height() int {
	return max(1, int(math.Round(b.Segment.Configuration().ItemSize.Height)))
}

// Resize is the geometry-change notification for a new terminal width.
func (b *SegmentBar) Resize(width int) {
	b.Segment.SetBounds(segment.Rect{Width: float64(width), Height: float64(b.Height())})
	b.Segment.Reveal(b.Segment.Current())
}

// Select moves the selection with animation and notification, as a tap would.
func (b *SegmentBar) Select(index int) {
	b.Segment.SelectMode(index)
}

// TapCell handles a click on the cell at (x, y) relative to the bar.
func (b *SegmentBar) TapCell(x, y int) bool {
	return b.Segment.Tap(segment.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
}

func (b *SegmentBar) Init() tea.Cmd {
	return nil
}

func (b *SegmentBar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		b.Animator.Step()
	case tea.WindowSizeMsg:
		b.Resize(msg.Width)
	case tea.MouseMsg:
		b.handleMouse(msg)
	}
	return b, nil
}

func (b *SegmentBar) handleMouse(msg tea.MouseMsg) {
	z := zone.Get(b.ZoneID)
	if z == nil || !z.InBounds(msg) {
		return
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelLeft:
		b.Segment.ScrollBy(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown, msg.Button == tea.MouseButtonWheelRight:
		b.Segment.ScrollBy(wheelStep)
	case isTap(msg):
		x, y := z.Pos(msg)
		if x >= 0 && y >= 0 {
			b.TapCell(x, y)
		}
	}
}

// isTap reports whether msg ends a primary-button click.
func isTap(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}

// cell is one terminal column of the bar.
type cell struct {
	text string // "" marks the trailing half of a wide grapheme
	fg   lipgloss.TerminalColor
	bold bool
	mark bool
}

func (c cell) sameStyle(o cell) bool {
	return c.fg == o.fg && c.bold == o.bold && c.mark == o.mark
}

func (b *SegmentBar) View() string {
	cfg := b.Segment.Configuration()
	rows := b.Height()
	labelRow := rows / 2

	scroll := int(math.Round(b.Segment.ScrollX()))
	width := int(b.Segment.Bounds().Width)
	if width <= 0 {
		width = int(math.Ceil(b.Segment.ContentWidth()+cfg.ItemSpacing/2)) - scroll
	}
	if width <= 0 {
		return ""
	}

	labels := b.labelCells()

	markColor := lipgloss.TerminalColor(cfg.MarkColor)
	var markRect segment.Rect
	showMark := false
	if mark := b.Segment.Mark(); mark != nil {
		showMark = true
		markRect = b.Animator.MarkFrame(mark.Frame())
		if rm, ok := mark.(*segment.RoundedMark); ok {
			markColor = rm.Color
		}
	}

	lines := make([]string, rows)
	for row := range rows {
		cells := make([]cell, width)
		for col := range width {
			contentCol := col + scroll
			c := cell{text: " ", fg: styles.TabDim}
			if row == labelRow {
				if lc, ok := labels[contentCol]; ok {
					c = lc
				}
			}
			if showMark {
				p := segment.Point{X: float64(contentCol) + 0.5, Y: float64(row) + 0.5}
				c.mark = markRect.Contains(p)
			}
			cells[col] = c
		}
		clipWide(cells)
		lines[row] = renderCells(cells, markColor)
	}

	return zone.Mark(b.ZoneID, strings.Join(lines, "\n"))
}

// labelCells lays out every tab label by content column.
func (b *SegmentBar) labelCells() map[int]cell {
	out := map[int]cell{}
	scaleFactor := b.Segment.Configuration().ItemScaleFactor
	for _, item := range b.Segment.Items() {
		tab, ok := item.(*TabItem)
		if !ok {
			continue
		}
		state := b.Animator.ItemState(tab.Index(), tab.State())
		fg := tab.Foreground(state)
		bold := tab.Bold(state, scaleFactor)

		frame := tab.Frame()
		start := int(math.Round(frame.X))
		span := int(math.Round(frame.Width))
		label := tab.Label()
		col := start + max(0, (span-runewidth.StringWidth(label))/2)

		gr := uniseg.NewGraphemes(label)
		first := true
		for gr.Next() {
			text := gr.Str()
			c := cell{text: text, fg: fg, bold: bold}
			if first {
				c.fg = styles.StatusColor(tab.Status)
				first = false
			}
			out[col] = c
			w := runewidth.StringWidth(text)
			for i := 1; i < w; i++ {
				out[col+i] = cell{fg: c.fg, bold: c.bold}
			}
			col += max(w, 1)
		}
	}
	return out
}

// clipWide blanks wide graphemes cut by the viewport edges.
func clipWide(cells []cell) {
	if len(cells) == 0 {
		return
	}
	if cells[0].text == "" {
		cells[0].text = " "
	}
	last := len(cells) - 1
	if runewidth.StringWidth(cells[last].text) > 1 {
		cells[last].text = " "
	}
}

func renderCells(cells []cell, markColor lipgloss.TerminalColor) string {
	var sb strings.Builder
	var run strings.Builder
	flush := func(c cell) {
		if run.Len() == 0 {
			return
		}
		style := lipgloss.NewStyle().Foreground(c.fg).Bold(c.bold)
		if c.mark {
			style = style.Background(markColor)
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	for i, c := range cells {
		if i > 0 && !c.sameStyle(cells[i-1]) {
			flush(cells[i-1])
		}
		run.WriteString(c.text)
	}
	flush(cells[len(cells)-1])
	return sb.String()
}
