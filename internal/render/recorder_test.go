package render

import (
	"image/color"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
)

type op struct {
	kind   string
	points []cascade.Point
	rect   cascade.Rect
	stroke Stroke
	fill   color.RGBA
	text   string
}

// recorder is a Surface that remembers every command.
type recorder struct {
	ops []op
}

func (r *recorder) StrokePath(points []cascade.Point, st Stroke) {
	r.ops = append(r.ops, op{kind: "path", points: points, stroke: st})
}

func (r *recorder) StrokeEllipse(cx, cy, rx, ry float64, st Stroke) {
	r.ops = append(r.ops, op{kind: "ellipse", rect: cascade.Rect{X: cx, Y: cy, W: rx, H: ry}, stroke: st})
}

func (r *recorder) FillRect(rc cascade.Rect, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "fill", rect: rc, fill: c})
}

func (r *recorder) StrokeRect(rc cascade.Rect, st Stroke) {
	r.ops = append(r.ops, op{kind: "outline", rect: rc, stroke: st})
}

func (r *recorder) Text(x, y float64, s string, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "text", rect: cascade.Rect{X: x, Y: y}, text: s, fill: c})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, o := range r.ops {
		out[i] = o.kind
	}
	return out
}
