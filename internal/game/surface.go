package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
	"github.com/iburimskiy/tank-cascade/internal/render"
)

const (
	ellipseSegments = 64

	// DebugPrint draws from the top-left corner of a 16px line. Only the
	// button and status captions use it.
	debugLineHeight = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	labelFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// surface adapts an ebiten image to render.Surface.
type surface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *surface) StrokePath(points []cascade.Point, st render.Stroke) {
	if len(points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	s.stroke(&path, st)
}

func (s *surface) StrokeEllipse(cx, cy, rx, ry float64, st render.Stroke) {
	if rx == ry {
		vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(rx), float32(st.Width), st.Color, true)
		return
	}
	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x, y := float32(cx+rx*math.Cos(a)), float32(cy+ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	s.stroke(&path, st)
}

func (s *surface) FillRect(r cascade.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func (s *surface) StrokeRect(r cascade.Rect, st render.Stroke) {
	var path vector.Path
	path.MoveTo(float32(r.X), float32(r.Y))
	path.LineTo(float32(r.X+r.W), float32(r.Y))
	path.LineTo(float32(r.X+r.W), float32(r.Y+r.H))
	path.LineTo(float32(r.X), float32(r.Y+r.H))
	path.Close()
	s.stroke(&path, st)
}

func (s *surface) Text(x, y float64, str string, c color.RGBA) {
	text.Draw(s.dst, str, labelFace, labelOptions(x, y, c))
}

// labelOptions places the baseline at y, the way the tank labels are
// positioned, and tints the glyphs with c.
func labelOptions(x, y float64, c color.RGBA) *text.DrawOptions {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-labelFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	return op
}

func (s *surface) stroke(path *vector.Path, st render.Stroke) {
	op := &vector.StrokeOptions{
		Width:      float32(st.Width),
		LineCap:    lineCap(st.Cap),
		LineJoin:   lineJoin(st.Join),
		MiterLimit: 10,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)

	r, g, b, a := st.Color.RGBA()
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
	top := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, top)
}

func lineCap(c render.Cap) vector.LineCap {
	switch c {
	case render.CapRound:
		return vector.LineCapRound
	case render.CapSquare:
		return vector.LineCapSquare
	}
	return vector.LineCapButt
}

func lineJoin(j render.Join) vector.LineJoin {
	switch j {
	case render.JoinRound:
		return vector.LineJoinRound
	case render.JoinBevel:
		return vector.LineJoinBevel
	}
	return vector.LineJoinMiter
}
