package shapedraw

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// StrokeWidth is the line width of outlined shapes in device units.
const StrokeWidth = 1.0

// Path returns the primitive as a path in absolute device coordinates, with y pointing down. An empty primitive returns an empty path.
func (p Primitive) Path() *canvas.Path {
	switch p.Kind {
	case RectPrimitive:
		return canvas.Rectangle(float64(p.W), float64(p.H)).Translate(float64(p.X), float64(p.Y))
	case EllipsePrimitive:
		rx, ry := float64(p.W)/2.0, float64(p.H)/2.0
		return canvas.Ellipse(rx, ry).Translate(float64(p.X)+rx, float64(p.Y)+ry)
	case PolygonPrimitive:
		if len(p.Points) == 0 {
			return &canvas.Path{}
		}
		poly := &canvas.Polyline{}
		for _, pt := range p.Points {
			poly.Add(float64(pt.X), float64(pt.Y))
		}
		return poly.Close().ToPath()
	}
	return &canvas.Path{}
}

// Draw draws the primitive on ctx. Filled primitives are filled with col and not stroked, outlined primitives are stroked in black regardless of col. The context must use a y-down coordinate system, see NewCanvas.
func Draw(ctx *canvas.Context, prim Primitive, mode Mode, col color.Color) {
	if prim.Empty() {
		return
	}

	ctx.Push()
	defer ctx.Pop()
	if mode == Outline {
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(canvas.Black)
		ctx.SetStrokeWidth(StrokeWidth)
	} else {
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(canvas.Transparent)
	}
	ctx.DrawPath(0.0, 0.0, prim.Path())
}

// NewCanvas returns a white canvas of w by h device units together with a context whose origin is the top-left corner and whose y-axis points down.
func NewCanvas(w, h int) (*canvas.Canvas, *canvas.Context) {
	c := canvas.New(float64(w), float64(h))
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(float64(w), float64(h)))
	ctx.SetCoordSystem(canvas.CartesianIV)
	return c, ctx
}
