package segment

// Point is a position in continuous layout units. The terminal renderer maps
// one unit to one cell.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in layout units.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether p lies inside r. Edges are half-open so that two
// touching rectangles never both claim the same point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Offset returns p translated into the coordinate space whose origin is o.
func (p Point) Offset(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}
