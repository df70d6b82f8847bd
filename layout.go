package shapedraw

import (
	"fmt"
	"math"
)

// Scale factors from dimension units to device units.
const (
	unitScale   = 10
	radiusScale = 20
)

// Point is an integer point in device units, with y pointing down.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PrimitiveKind is the tag of a Primitive.
type PrimitiveKind int

// Primitive kinds.
const (
	NoPrimitive PrimitiveKind = iota
	RectPrimitive
	PolygonPrimitive
	EllipsePrimitive
)

// Primitive is what a shape lays out to on a canvas. Rectangles and ellipses use the bounding box X, Y, W, H, polygons use Points.
type Primitive struct {
	Kind       PrimitiveKind
	X, Y, W, H int
	Points     []Point
}

// Empty returns true if there is nothing to draw.
func (p Primitive) Empty() bool {
	return p.Kind == NoPrimitive
}

func (p Primitive) String() string {
	switch p.Kind {
	case RectPrimitive:
		return fmt.Sprintf("Rect(%d,%d,%d,%d)", p.X, p.Y, p.W, p.H)
	case EllipsePrimitive:
		return fmt.Sprintf("Ellipse(%d,%d,%d,%d)", p.X, p.Y, p.W, p.H)
	case PolygonPrimitive:
		return fmt.Sprintf("Polygon%v", p.Points)
	}
	return "Empty"
}

// LayoutRectangle returns the top-left corner and size of a width by height rectangle centered in a canvasW by canvasH canvas.
func LayoutRectangle(width, height, canvasW, canvasH int) (x, y, w, h int) {
	w, h = unitScale*width, unitScale*height
	return (canvasW - w) / 2, (canvasH - h) / 2, w, h
}

// LayoutTriangle returns the apex, the right and the left base corner of an isosceles triangle centered in the canvas.
func LayoutTriangle(base, height, canvasW, canvasH int) [3]Point {
	cx, cy := canvasW/2, canvasH/2
	dx, dy := unitScale*base/2, unitScale*height/2
	return [3]Point{
		{cx, cy - dy},
		{cx + dx, cy + dy},
		{cx - dx, cy + dy},
	}
}

// LayoutCircle returns the top-left corner and diameter of the bounding box of a circle centered in the canvas.
func LayoutCircle(radius, canvasW, canvasH int) (x, y, d int) {
	d = radiusScale * radius
	return (canvasW - d) / 2, (canvasH - d) / 2, d
}

// LayoutRegularPolygon returns n vertices equally spaced on a circle of radius 10*radius around the canvas center, starting due east and proceeding clockwise on screen. Offsets are truncated toward zero.
func LayoutRegularPolygon(n, radius, canvasW, canvasH int) []Point {
	if n <= 0 {
		return nil
	}

	cx, cy := canvasW/2, canvasH/2
	r := float64(unitScale * radius)
	points := make([]Point, n)
	for i := range points {
		theta := 2.0 * math.Pi * float64(i) / float64(n)
		sintheta, costheta := math.Sin(theta), math.Cos(theta)
		points[i] = Point{cx + int(r*costheta), cy + int(r*sintheta)}
	}
	return points
}

// Layout lays out shape centered in a canvasW by canvasH canvas. No bounds are checked, dimensions are expected to be validated.
func Layout(shape Shape, canvasW, canvasH int) Primitive {
	switch shape.Kind {
	case RectangleKind:
		x, y, w, h := LayoutRectangle(shape.Width, shape.Height, canvasW, canvasH)
		return Primitive{Kind: RectPrimitive, X: x, Y: y, W: w, H: h}
	case TriangleKind:
		points := LayoutTriangle(shape.Base, shape.Height, canvasW, canvasH)
		return Primitive{Kind: PolygonPrimitive, Points: points[:]}
	case CircleKind:
		x, y, d := LayoutCircle(shape.Radius, canvasW, canvasH)
		return Primitive{Kind: EllipsePrimitive, X: x, Y: y, W: d, H: d}
	case RegularPolygonKind:
		return Primitive{Kind: PolygonPrimitive, Points: LayoutRegularPolygon(shape.Sides, shape.Radius, canvasW, canvasH)}
	}
	return Primitive{}
}
