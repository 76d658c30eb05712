// Package render draws a cascade network onto any Surface.
//
// Drawing happens in fixed passes: every pipe first, then every heater,
// then every tank, so tank outlines always sit on top of the pipe ends
// and heater rings that overlap them.
package render

import (
	"image/color"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
)

type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

type Join int

const (
	JoinMiter Join = iota
	JoinBevel
	JoinRound
)

// Stroke describes how an outline is drawn.
type Stroke struct {
	Width float64
	Color color.RGBA
	Cap   Cap
	Join  Join
}

// Surface accepts draw commands in scene coordinates.
type Surface interface {
	StrokePath(points []cascade.Point, st Stroke)
	StrokeEllipse(cx, cy, rx, ry float64, st Stroke)
	FillRect(r cascade.Rect, c color.RGBA)
	StrokeRect(r cascade.Rect, st Stroke)
	Text(x, y float64, s string, c color.RGBA)
}

type Pass int

const (
	PassPipes Pass = iota
	PassHeaters
	PassTanks
)

// Passes is the layering order, bottom first.
var Passes = [...]Pass{PassPipes, PassHeaters, PassTanks}

func (p Pass) String() string {
	switch p {
	case PassPipes:
		return "pipes"
	case PassHeaters:
		return "heaters"
	case PassTanks:
		return "tanks"
	}
	return "unknown"
}

// Style holds the colours and widths of every element.
type Style struct {
	Background   color.RGBA
	PipeCasing   color.RGBA
	Liquid       color.RGBA
	HeatedLiquid color.RGBA
	Heater       color.RGBA
	HeaterWidth  float64
	TankOutline  color.RGBA
	OutlineWidth float64
	Label        color.RGBA
	// LiquidInset is how much narrower the liquid stroke is than its pipe.
	LiquidInset float64
}

func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xff},
		PipeCasing:   color.RGBA{R: 160, G: 160, B: 164, A: 255},
		Liquid:       color.RGBA{R: 0, G: 180, B: 255, A: 255},
		HeatedLiquid: color.RGBA{R: 255, G: 100, B: 0, A: 255},
		Heater:       color.RGBA{R: 255, G: 0, B: 0, A: 255},
		HeaterWidth:  3,
		TankOutline:  color.RGBA{R: 0, G: 255, B: 0, A: 255},
		OutlineWidth: 4,
		Label:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LiquidInset:  4,
	}
}

type Renderer struct {
	Style Style
}

func New(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Draw renders every pass in order.
func (r *Renderer) Draw(s Surface, n *cascade.Network) {
	for _, p := range Passes {
		r.DrawPass(s, n, p)
	}
}

func (r *Renderer) DrawPass(s Surface, n *cascade.Network, p Pass) {
	switch p {
	case PassPipes:
		for _, pipe := range n.Pipes() {
			r.drawPipe(s, pipe)
		}
	case PassHeaters:
		for _, h := range n.Heaters() {
			r.drawHeater(s, n.Pipe(h.Pipe), h.Size)
		}
	case PassTanks:
		for _, t := range n.Tanks() {
			r.drawTank(s, t)
		}
	}
}

func (r *Renderer) drawPipe(s Surface, p *cascade.Pipe) {
	if len(p.Points) < 2 {
		return
	}
	s.StrokePath(p.Points, Stroke{Width: p.Width, Color: r.Style.PipeCasing, Cap: CapRound, Join: JoinRound})

	if !p.Flowing() {
		return
	}
	liquid := r.Style.Liquid
	if p.Heated() {
		liquid = r.Style.HeatedLiquid
	}
	s.StrokePath(p.Points, Stroke{Width: p.Width - r.Style.LiquidInset, Color: liquid, Cap: CapRound, Join: JoinRound})
}

// drawHeater draws two concentric rings around the pipe's midpoint.
func (r *Renderer) drawHeater(s Surface, p *cascade.Pipe, size float64) {
	if p == nil {
		return
	}
	mid, ok := p.Midpoint()
	if !ok {
		return
	}
	st := Stroke{Width: r.Style.HeaterWidth, Color: r.Style.Heater}
	s.StrokeEllipse(mid.X, mid.Y, size, size, st)
	s.StrokeEllipse(mid.X, mid.Y, 2*size, 2*size, st)
}

func (r *Renderer) drawTank(s Surface, t *cascade.Tank) {
	b := t.Bounds
	// The bottom 2px are left clear for the outline.
	if h := b.H * t.Level(); h > 2 {
		s.FillRect(cascade.Rect{X: b.X + 3, Y: b.Y + b.H - h, W: b.W - 6, H: h - 2}, t.Liquid)
	}
	s.StrokeRect(b, Stroke{Width: r.Style.OutlineWidth, Color: r.Style.TankOutline, Join: JoinMiter})
	s.Text(b.X, b.Y-10, t.Name, r.Style.Label)
}
