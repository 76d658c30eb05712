package cascade

// Point is a position in scene coordinates (pixels, y grows downwards).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) TopCenter() Point    { return Point{X: r.X + r.W/2, Y: r.Y} }
func (r Rect) BottomCenter() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H} }

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
