// Package shapedraw lays out and draws a single shape centered on a canvas: rectangles, isosceles triangles, circles, and regular polygons of five to ten sides.
package shapedraw

import "fmt"

// MinDimension and MaxDimension bound every dimension a user may enter.
const (
	MinDimension = 1
	MaxDimension = 20
)

// Kind is the tag of a Shape.
type Kind int

// Shape kinds.
const (
	RectangleKind Kind = iota
	TriangleKind
	CircleKind
	RegularPolygonKind
)

func (k Kind) String() string {
	switch k {
	case RectangleKind:
		return "Rectangle"
	case TriangleKind:
		return "Triangle"
	case CircleKind:
		return "Circle"
	case RegularPolygonKind:
		return "RegularPolygon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is a closed sum over the drawable shapes. Only the fields belonging to Kind are used: Width and Height for rectangles, Base and Height for triangles, Radius for circles, and Sides and Radius for regular polygons.
type Shape struct {
	Kind   Kind
	Width  int
	Height int
	Base   int
	Radius int
	Sides  int
}

// Rectangle returns a rectangle of width w and height h in dimension units.
func Rectangle(w, h int) Shape {
	return Shape{Kind: RectangleKind, Width: w, Height: h}
}

// Triangle returns an isosceles, apex-up triangle.
func Triangle(base, h int) Shape {
	return Shape{Kind: TriangleKind, Base: base, Height: h}
}

// Circle returns a circle of radius r.
func Circle(r int) Shape {
	return Shape{Kind: CircleKind, Radius: r}
}

// RegularPolygon returns a regular polygon with n sides inscribed in a circle of radius r.
func RegularPolygon(n, r int) Shape {
	return Shape{Kind: RegularPolygonKind, Sides: n, Radius: r}
}

func (s Shape) String() string {
	switch s.Kind {
	case RectangleKind:
		return fmt.Sprintf("Rectangle(%d,%d)", s.Width, s.Height)
	case TriangleKind:
		return fmt.Sprintf("Triangle(%d,%d)", s.Base, s.Height)
	case CircleKind:
		return fmt.Sprintf("Circle(%d)", s.Radius)
	case RegularPolygonKind:
		return fmt.Sprintf("RegularPolygon(%d,%d)", s.Sides, s.Radius)
	}
	return s.Kind.String()
}

////////////////////////////////////////////////////////////////

// ShapeNames lists the selectable shapes in the order they are offered to the user.
var ShapeNames = []string{"Rectangle", "Triangle", "Circle", "Pentagon", "Hexagon", "Heptagon", "Octagon", "Nonagon", "Decagon"}

// firstPolygonIndex is the index of Pentagon in ShapeNames.
const firstPolygonIndex = 3

// ShapeIndex returns the index of name in ShapeNames, or -1.
func ShapeIndex(name string) int {
	for i, n := range ShapeNames {
		if n == name {
			return i
		}
	}
	return -1
}

// SideCount returns the number of sides of a named polygon, i.e. 5 for Pentagon up to 10 for Decagon. It returns 0 for any other name.
func SideCount(name string) int {
	i := ShapeIndex(name)
	if i < firstPolygonIndex {
		return 0
	}
	return i - firstPolygonIndex + 5
}

// LegacySideCount returns index+3, the side count earlier versions of the drawer derived from the selected list index. It gives one side too many: Pentagon (index 3) becomes a hexagon.
func LegacySideCount(index int) int {
	return index + 3
}

// Selector maps a shape name and its dimensions to a Shape.
type Selector struct {
	// Legacy selects LegacySideCount instead of SideCount for polygons.
	Legacy bool
}

// Select returns the shape for name using dim1 and dim2. Rectangles and triangles use both dimensions, circles and polygons only dim1. It returns false for an unknown name, meaning nothing is to be rendered.
func (sel Selector) Select(name string, dim1, dim2 int) (Shape, bool) {
	switch name {
	case "Rectangle":
		return Rectangle(dim1, dim2), true
	case "Triangle":
		return Triangle(dim1, dim2), true
	case "Circle":
		return Circle(dim1), true
	case "Pentagon", "Hexagon", "Heptagon", "Octagon", "Nonagon", "Decagon":
		n := SideCount(name)
		if sel.Legacy {
			n = LegacySideCount(ShapeIndex(name))
		}
		return RegularPolygon(n, dim1), true
	}
	return Shape{}, false
}

// SelectShape selects a shape using the geometric side count.
func SelectShape(name string, dim1, dim2 int) (Shape, bool) {
	return Selector{}.Select(name, dim1, dim2)
}
