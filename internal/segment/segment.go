// Package segment implements a horizontally scrollable segmented control: a
// row of selectable items laid out from a pluggable width measurement, a
// sliding mark indicator, and the engine that reconciles discrete selection
// with continuous progress scrubbing.
//
// A Segment is not safe for concurrent use. All calls are expected to come
// from the goroutine that owns the UI, such as a Bubble Tea Update loop.
package segment

import (
	"io"
	"log"
)

// ItemFactory creates a fresh, unattached item for index.
type ItemFactory func(cfg Configuration, index int) Item

// WidthProvider measures an item. It is called once per item per layout pass.
type WidthProvider func(s *Segment, item Item) float64

// ChangeFunc is notified after a user-visible selection change.
type ChangeFunc func(s *Segment, from, to int)

// Option configures a Segment at construction.
type Option func(*Segment)

func WithItemFactory(f ItemFactory) Option {
	return func(s *Segment) {
		if f != nil {
			s.itemFactory = f
		}
	}
}

func WithWidthProvider(f WidthProvider) Option {
	return func(s *Segment) {
		if f != nil {
			s.widthProvider = f
		}
	}
}

func WithMarkFactory(f MarkFactory) Option {
	return func(s *Segment) { s.markFactory = f }
}

func WithChangeHandler(f ChangeFunc) Option {
	return func(s *Segment) {
		if f != nil {
			s.onChange = f
		}
	}
}

func WithAnimator(a Animator) Option {
	return func(s *Segment) {
		if a != nil {
			s.animator = a
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Segment) {
		if l != nil {
			s.logger = l
		}
	}
}

// detacher is implemented by items that hold resources to release when the
// segment discards them.
type detacher interface {
	Detach()
}

// Segment is the container: it owns the items, the rect cache, the mark and
// the scrollable viewport.
type Segment struct {
	cfg Configuration

	itemFactory   ItemFactory
	widthProvider WidthProvider
	markFactory   MarkFactory
	onChange      ChangeFunc
	animator      Animator
	logger        *log.Logger

	items []Item
	rects map[int]Rect
	mark  MarkView

	bounds       Rect
	contentWidth float64
	scrollX      float64
}

// New builds a Segment with cfg.Count items and applies the current selection
// without notifying.
func New(cfg Configuration, opts ...Option) *Segment {
	s := &Segment{
		cfg: cfg,
		itemFactory: func(Configuration, int) Item {
			return NewBaseItem()
		},
		widthProvider: func(s *Segment, _ Item) float64 {
			return s.cfg.ItemSize.Width
		},
		onChange: func(*Segment, int, int) {},
		animator: ImmediateAnimator{},
		logger:   log.New(io.Discard, "", 0),
		rects:    map[int]Rect{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.ItemScaleFactor <= 0 {
		s.cfg.ItemScaleFactor = 1
	}
	s.cfg.Count = max(s.cfg.Count, 0)
	s.rebuild()
	return s
}

// Configuration returns a copy of the active configuration.
func (s *Segment) Configuration() Configuration { return s.cfg }

// SetConfiguration validates and installs cfg. Items are recreated when the
// count changes, otherwise they are laid out again. The selection is
// re-applied without notifying.
func (s *Segment) SetConfiguration(cfg Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	countChanged := cfg.Count != s.cfg.Count
	s.cfg = cfg
	if m, ok := s.mark.(*RoundedMark); ok {
		m.Color = cfg.MarkColor
		m.CornerRadius = cfg.MarkCornerRadius
	}

	if countChanged {
		s.rebuild()
		return nil
	}
	s.layoutItems()
	s.change(s.cfg.Current, false, false)
	return nil
}

func (s *Segment) Count() int { return s.cfg.Count }

// SetCount discards every item and creates n new ones. Current is clamped to
// the new range and re-applied without notifying.
func (s *Segment) SetCount(n int) {
	s.cfg.Count = max(n, 0)
	s.rebuild()
}

func (s *Segment) Current() int { return s.cfg.Current }

// Items returns the items in index order.
func (s *Segment) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ContentWidth is the right edge of the last item, or 0 without items.
func (s *Segment) ContentWidth() float64 { return s.contentWidth }

func (s *Segment) ContentSize() Size {
	return Size{Width: s.contentWidth, Height: s.bounds.Height}
}

func (s *Segment) Bounds() Rect { return s.bounds }

// SetBounds is the geometry-change notification from the host. A change in
// bounds triggers a full layout pass.
func (s *Segment) SetBounds(r Rect) {
	if r == s.bounds {
		return
	}
	s.bounds = r
	s.Layout()
}

// Layout recomputes every frame and the rect cache, then re-applies the
// current selection with animation and without notifying.
func (s *Segment) Layout() {
	s.layoutItems()
	s.change(s.cfg.Current, true, false)
}

// Mark returns the indicator, or nil when the mark is disabled.
func (s *Segment) Mark() MarkView { return s.markView() }

// SelectedRect returns the rect the mark occupies when index is selected: the
// cached item rect widened by half the spacing on each side and shifted by the
// mark offset.
func (s *Segment) SelectedRect(index int) (Rect, bool) {
	r, ok := s.rects[index]
	if !ok {
		return Rect{}, false
	}
	return expandForMark(r, s.cfg), true
}

func (s *Segment) ScrollX() float64 { return s.scrollX }

// SetScrollX moves the viewport, clamped to the scrollable range.
func (s *Segment) SetScrollX(x float64) {
	s.scrollX = s.clampScroll(x)
}

func (s *Segment) ScrollBy(dx float64) {
	s.SetScrollX(s.scrollX + dx)
}

// Reveal scrolls the least amount needed to show the item at index.
func (s *Segment) Reveal(index int) {
	r, ok := s.rects[index]
	if !ok || s.bounds.Width <= 0 {
		return
	}

	x := s.scrollX
	switch {
	case r.X < x:
		x = r.X
	case r.MaxX() > x+s.bounds.Width:
		x = r.MaxX() - s.bounds.Width
	}
	s.SetScrollX(x)
}

func (s *Segment) clampScroll(x float64) float64 {
	limit := 0.0
	if s.bounds.Width > 0 {
		limit = max(0, s.contentWidth-s.bounds.Width)
	}
	return min(max(x, 0), limit)
}

func (s *Segment) rebuild() {
	s.cfg.Current = s.cfg.clampedCurrent()
	s.initItems()
	s.layoutItems()
	s.change(s.cfg.Current, false, false)
}

func (s *Segment) initItems() {
	for _, item := range s.items {
		if d, ok := item.(detacher); ok {
			d.Detach()
		}
	}
	s.items = make([]Item, 0, s.cfg.Count)

	for i := 0; i < s.cfg.Count; i++ {
		item := s.itemFactory(s.cfg, i)
		item.SetSelected(false)
		item.SetIndex(i)
		s.items = append(s.items, item)
	}
}

func (s *Segment) layoutItems() {
	s.rects, s.contentWidth = Layout(s.items, s.cfg, func(item Item) float64 {
		return s.widthProvider(s, item)
	})
	s.scrollX = s.clampScroll(s.scrollX)
}

func (s *Segment) markView() MarkView {
	if !s.cfg.ShowMark {
		return nil
	}
	if s.mark == nil {
		if s.markFactory != nil {
			s.mark = s.markFactory(s)
		}
		if s.mark == nil {
			s.mark = newRoundedMark(s.cfg)
		}
	}
	return s.mark
}

func (s *Segment) itemAt(index int) Item {
	for _, item := range s.items {
		if item.Index() == index {
			return item
		}
	}
	return nil
}
