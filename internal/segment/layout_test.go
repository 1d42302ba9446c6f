package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range n {
		item := NewBaseItem()
		item.SetIndex(i)
		items[i] = item
	}
	return items
}

func fixedWidth(w float64) WidthFunc {
	return func(Item) float64 { return w }
}

func TestLayout_FixedWidths(t *testing.T) {
	cfg := DefaultConfiguration().WithItemSize(50, 44).WithSpacing(8, 16)
	items := makeItems(3)

	rects, total := Layout(items, cfg, fixedWidth(50))

	require.Len(t, rects, 3)
	assert.Equal(t, Rect{X: 16, Width: 50, Height: 44}, rects[0])
	assert.Equal(t, Rect{X: 74, Width: 50, Height: 44}, rects[1])
	assert.Equal(t, Rect{X: 132, Width: 50, Height: 44}, rects[2])
	assert.Equal(t, 182.0, total)

	for _, item := range items {
		assert.Equal(t, rects[item.Index()], item.Frame())
	}
}

func TestLayout_Empty(t *testing.T) {
	rects, total := Layout(nil, DefaultConfiguration(), fixedWidth(50))

	assert.Empty(t, rects)
	assert.Equal(t, 0.0, total)
}

func TestLayout_SpacingInvariant(t *testing.T) {
	widths := []float64{12.5, 40, 3, 77.25, 19}
	cfg := DefaultConfiguration().WithSpacing(6.5, 11)
	items := makeItems(len(widths))

	rects, total := Layout(items, cfg, func(item Item) float64 {
		return widths[item.Index()]
	})

	assert.Equal(t, cfg.ItemOffset, rects[0].X)
	for i := 0; i+1 < len(widths); i++ {
		assert.InDelta(t, rects[i].X+rects[i].Width+cfg.ItemSpacing, rects[i+1].X, 1e-9, "gap after item %d", i)
		assert.Equal(t, widths[i], rects[i].Width)
		assert.Equal(t, cfg.ItemSize.Height, rects[i].Height)
	}
	assert.Equal(t, rects[len(widths)-1].MaxX(), total)
}

func TestLayout_Idempotent(t *testing.T) {
	cfg := DefaultConfiguration().WithSpacing(0.1, 0.3)
	items := makeItems(20)
	width := func(item Item) float64 { return 0.7 + float64(item.Index())*0.01 }

	first, firstTotal := Layout(items, cfg, width)
	second, secondTotal := Layout(items, cfg, width)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}

func TestLayout_CallsWidthOncePerItem(t *testing.T) {
	items := makeItems(4)
	calls := map[int]int{}

	Layout(items, DefaultConfiguration(), func(item Item) float64 {
		calls[item.Index()]++
		return 10
	})

	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, calls)
}

func TestExpandForMark(t *testing.T) {
	cfg := DefaultConfiguration().WithSpacing(8, 16).WithMarkStyle("#000000", 0, 2)

	got := expandForMark(Rect{X: 74, Width: 50, Height: 44}, cfg)

	assert.Equal(t, Rect{X: 70, Y: 2, Width: 58, Height: 44}, got)
}
