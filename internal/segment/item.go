package segment

// MinProgress is the visibility floor applied by BaseItem.Progress. An item is
// never rendered fainter than half emphasis.
const MinProgress = 0.5

// Item is a renderable segment. Implementations usually embed BaseItem and
// override Progress or ScaleProgress when they need a different response.
type Item interface {
	Index() int
	SetIndex(i int)

	Selected() bool
	SetSelected(selected bool)

	// Frame is written only by the layout pass.
	Frame() Rect
	SetFrame(r Rect)

	// Progress receives the emphasis factor in [0,1]; 1 is fully selected.
	Progress(v float64)
	// ScaleProgress receives the size multiplier; 1 is the identity scale.
	ScaleProgress(v float64)

	// Contains reports whether p, in the item's local space, hits the item.
	Contains(p Point) bool
}

// ItemState is the continuous visual state of an item.
type ItemState struct {
	Progress float64
	Scale    float64
}

// BaseItem stores the fields every item needs and provides the default
// response policy: progress becomes an opacity clamped to MinProgress and
// scale is taken as is.
type BaseItem struct {
	index    int
	selected bool
	frame    Rect
	state    ItemState
}

func NewBaseItem() *BaseItem {
	return &BaseItem{state: ItemState{Progress: 1, Scale: 1}}
}

func (b *BaseItem) Index() int     { return b.index }
func (b *BaseItem) SetIndex(i int) { b.index = i }

func (b *BaseItem) Selected() bool            { return b.selected }
func (b *BaseItem) SetSelected(selected bool) { b.selected = selected }

func (b *BaseItem) Frame() Rect     { return b.frame }
func (b *BaseItem) SetFrame(r Rect) { b.frame = r }

func (b *BaseItem) Progress(v float64) {
	b.state.Progress = max(MinProgress, v)
}

func (b *BaseItem) ScaleProgress(v float64) {
	b.state.Scale = v
}

// State returns the last applied response values.
func (b *BaseItem) State() ItemState { return b.state }

func (b *BaseItem) Contains(p Point) bool {
	return Rect{Width: b.frame.Width, Height: b.frame.Height}.Contains(p)
}
