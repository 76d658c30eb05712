package cascade

// DefaultPipeWidth is the casing width of a pipe in pixels.
const DefaultPipeWidth = 12.0

// Pipe is a polyline between two tanks. Its geometry never changes after
// construction; only the flowing flag does, once per tick.
type Pipe struct {
	Points []Point
	Width  float64

	flowing bool
	heated  bool
}

func NewPipe(points ...Point) *Pipe {
	return &Pipe{
		Points: append([]Point(nil), points...),
		Width:  DefaultPipeWidth,
	}
}

// Route lays out an orthogonal path: down from the source, across at the
// vertical midpoint, then down into the destination.
func Route(from, to Point) []Point {
	midY := (from.Y + to.Y) / 2
	return []Point{
		from,
		{X: from.X, Y: midY},
		{X: to.X, Y: midY},
		to,
	}
}

func (p *Pipe) SetFlowing(flowing bool) { p.flowing = flowing }
func (p *Pipe) Flowing() bool           { return p.flowing }
func (p *Pipe) Heated() bool            { return p.heated }

// Midpoint returns the centre of the pipe's second segment, where a
// heater sits. Pipes with fewer than three points have no such segment.
func (p *Pipe) Midpoint() (Point, bool) {
	if len(p.Points) < 3 {
		return Point{}, false
	}
	return midpoint(p.Points[1], p.Points[2]), true
}
