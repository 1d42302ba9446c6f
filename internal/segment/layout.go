package segment

// WidthFunc measures the width of a single item.
type WidthFunc func(item Item) float64

// Layout positions items left to right in slice order and returns the frame of
// every item keyed by its index, plus the total content width.
//
// The first item starts at cfg.ItemOffset, every following item starts
// cfg.ItemSpacing after the right edge of the previous one. All items share
// cfg.ItemSize.Height. Frames are derived from the inputs only, so calling
// Layout again with the same inputs yields the same frames.
func Layout(items []Item, cfg Configuration, widthOf WidthFunc) (map[int]Rect, float64) {
	rects := make(map[int]Rect, len(items))
	x := cfg.ItemOffset
	total := 0.0

	for i, item := range items {
		if i > 0 {
			x += cfg.ItemSpacing
		}
		frame := Rect{
			X:      x,
			Width:  widthOf(item),
			Height: cfg.ItemSize.Height,
		}
		item.SetFrame(frame)
		rects[item.Index()] = frame

		x = frame.MaxX()
		total = x
	}

	return rects, total
}

// expandForMark grows a cached item rect into the rect the mark occupies:
// half the spacing on each side and shifted by the mark offset.
func expandForMark(r Rect, cfg Configuration) Rect {
	r.X -= cfg.ItemSpacing * 0.5
	r.Y += cfg.MarkOffsetY
	r.Width += cfg.ItemSpacing
	return r
}
