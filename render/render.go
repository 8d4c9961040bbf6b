package render

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/katalvlaran/renormtsp/grid"
	"github.com/katalvlaran/renormtsp/tsp"
)

// ErrNothingToDraw indicates a Drawing without points.
var ErrNothingToDraw = errors.New("render: no points")

// MaxGridLines is the largest grid dimension whose lines are drawn.
const MaxGridLines = 128

var (
	tourColor  = color.RGBA{0x1f, 0x5f, 0xa8, 0xff}
	pointColor = color.RGBA{0xc0, 0x30, 0x30, 0xff}
	cellColor  = color.RGBA{0xe8, 0xee, 0xf6, 0xff}
)

// Drawing is what gets rendered. Grid, when set, is drawn in the frame it was
// built at, that is rotated back by Rotation.
type Drawing struct {
	Points   []tsp.Point
	Tour     []int
	Grid     *grid.Grid
	Rotation float64
}

// Renderer holds page geometry. Sizes are in millimetres.
type Renderer struct {
	Width       float64
	Padding     float64
	PointRadius float64
	StrokeWidth float64
	Resolution  canvas.Resolution
}

// NewRenderer returns a Renderer for a 200 mm wide page at 150 DPI.
func NewRenderer() *Renderer {
	return &Renderer{
		Width:       200,
		Padding:     8,
		PointRadius: 0.8,
		StrokeWidth: 0.35,
		Resolution:  canvas.DPI(150),
	}
}

// canvasRenderer is implemented by both the svg and rasterizer renderers.
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// RenderSVG writes d as SVG to w.
func (r *Renderer) RenderSVG(w io.Writer, d Drawing) error {
	l, err := r.layout(d)
	if err != nil {
		return err
	}
	s := svg.New(w, l.width, l.height, nil)
	r.draw(s, d, l)

	return s.Close()
}

// RenderPNG writes d as PNG to w.
func (r *Renderer) RenderPNG(w io.Writer, d Drawing) error {
	l, err := r.layout(d)
	if err != nil {
		return err
	}
	rast := rasterizer.New(l.width, l.height, r.Resolution, canvas.DefaultColorSpace)
	r.draw(rast, d, l)

	return png.Encode(w, rast)
}

// layout maps world coordinates onto the page.
type layout struct {
	bound         orb.Bound
	scale         float64
	width, height float64
	pad           float64
}

func (l layout) toCanvas(p orb.Point) (float64, float64) {
	return l.pad + (p[0]-l.bound.Min[0])*l.scale, l.pad + (p[1]-l.bound.Min[1])*l.scale
}

func (r *Renderer) layout(d Drawing) (layout, error) {
	if len(d.Points) == 0 {
		return layout{}, ErrNothingToDraw
	}
	if d.Tour != nil {
		if err := tsp.ValidatePermutation(d.Tour, len(d.Points)); err != nil {
			return layout{}, fmt.Errorf("render: %w", err)
		}
	}
	b := orb.MultiPoint(d.Points).Bound()
	if d.Grid != nil {
		for _, c := range gridCorners(d.Grid, d.Rotation) {
			b = b.Extend(c)
		}
	}

	inner := r.Width - 2*r.Padding
	span := math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	scale := 1.0
	if span > 0 {
		scale = inner / span
	}
	l := layout{
		bound: b,
		scale: scale,
		pad:   r.Padding,
		width: r.Width,
	}
	l.height = (b.Max[1]-b.Min[1])*scale + 2*r.Padding
	if span == 0 {
		l.height = r.Width
	}

	return l, nil
}

func (r *Renderer) draw(cr canvasRenderer, d Drawing, l layout) {
	bg := canvas.DefaultStyle
	bg.Fill = canvas.Paint{Color: canvas.White}
	cr.RenderPath(canvas.Rectangle(l.width, l.height), bg, canvas.Identity)

	if d.Grid != nil {
		r.drawGrid(cr, d.Grid, d.Rotation, l)
	}

	if len(d.Tour) > 1 {
		style := canvas.DefaultStyle
		style.Fill = canvas.Paint{Color: canvas.Transparent}
		style.Stroke = canvas.Paint{Color: tourColor}
		style.StrokeWidth = r.StrokeWidth

		p := &canvas.Path{}
		p.MoveTo(l.toCanvas(d.Points[d.Tour[0]]))
		for _, v := range d.Tour[1:] {
			p.LineTo(l.toCanvas(d.Points[v]))
		}
		p.Close()
		cr.RenderPath(p, style, canvas.Identity)
	}

	dot := canvas.DefaultStyle
	dot.Fill = canvas.Paint{Color: pointColor}
	dot.Stroke = canvas.Paint{Color: canvas.Transparent}
	for _, pt := range d.Points {
		x, y := l.toCanvas(pt)
		cr.RenderPath(canvas.Circle(r.PointRadius).Translate(x, y), dot, canvas.Identity)
	}
}

// drawGrid shades occupied cells and, for small grids, draws the cell lines.
func (r *Renderer) drawGrid(cr canvasRenderer, g *grid.Grid, angle float64, l layout) {
	cw, ch := g.CellSize()
	if g.Length <= MaxGridLines && g.Height <= MaxGridLines {
		fill := canvas.DefaultStyle
		fill.Fill = canvas.Paint{Color: cellColor}
		fill.Stroke = canvas.Paint{Color: canvas.Transparent}
		for _, c := range g.Coords() {
			x0 := g.Bound.Min[0] + float64(c.X)*cw
			y0 := g.Bound.Min[1] + float64(c.Y)*ch
			cr.RenderPath(quad(l, angle, x0, y0, x0+cw, y0+ch), fill, canvas.Identity)
		}

		lines := canvas.DefaultStyle
		lines.Fill = canvas.Paint{Color: canvas.Transparent}
		lines.Stroke = canvas.Paint{Color: canvas.Gray}
		lines.StrokeWidth = r.StrokeWidth / 2
		for i := 0; i <= g.Length; i++ {
			x := g.Bound.Min[0] + float64(i)*cw
			cr.RenderPath(segment(l, angle, orb.Point{x, g.Bound.Min[1]}, orb.Point{x, g.Bound.Max[1]}), lines, canvas.Identity)
		}
		for j := 0; j <= g.Height; j++ {
			y := g.Bound.Min[1] + float64(j)*ch
			cr.RenderPath(segment(l, angle, orb.Point{g.Bound.Min[0], y}, orb.Point{g.Bound.Max[0], y}), lines, canvas.Identity)
		}
		return
	}

	outline := canvas.DefaultStyle
	outline.Fill = canvas.Paint{Color: canvas.Transparent}
	outline.Stroke = canvas.Paint{Color: canvas.Gray}
	outline.StrokeWidth = r.StrokeWidth / 2
	b := g.Bound
	cr.RenderPath(quad(l, angle, b.Min[0], b.Min[1], b.Max[0], b.Max[1]), outline, canvas.Identity)
}

// unrotate maps a point of the grid frame back to world coordinates.
func unrotate(p orb.Point, angle float64) orb.Point {
	s, c := math.Sincos(angle)
	return orb.Point{p[0]*c - p[1]*s, p[0]*s + p[1]*c}
}

func gridCorners(g *grid.Grid, angle float64) [4]orb.Point {
	b := g.Bound
	return [4]orb.Point{
		unrotate(b.Min, angle),
		unrotate(orb.Point{b.Max[0], b.Min[1]}, angle),
		unrotate(b.Max, angle),
		unrotate(orb.Point{b.Min[0], b.Max[1]}, angle),
	}
}

func segment(l layout, angle float64, a, b orb.Point) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(l.toCanvas(unrotate(a, angle)))
	p.LineTo(l.toCanvas(unrotate(b, angle)))
	return p
}

func quad(l layout, angle float64, x0, y0, x1, y1 float64) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(l.toCanvas(unrotate(orb.Point{x0, y0}, angle)))
	p.LineTo(l.toCanvas(unrotate(orb.Point{x1, y0}, angle)))
	p.LineTo(l.toCanvas(unrotate(orb.Point{x1, y1}, angle)))
	p.LineTo(l.toCanvas(unrotate(orb.Point{x0, y1}, angle)))
	p.Close()
	return p
}
