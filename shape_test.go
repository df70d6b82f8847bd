package shapedraw

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestShapeIndex(t *testing.T) {
	test.T(t, ShapeIndex("Rectangle"), 0)
	test.T(t, ShapeIndex("Circle"), 2)
	test.T(t, ShapeIndex("Pentagon"), 3)
	test.T(t, ShapeIndex("Hexagon"), 4)
	test.T(t, ShapeIndex("Decagon"), 8)
	test.T(t, ShapeIndex("hexagon"), -1)
}

func TestSideCount(t *testing.T) {
	names := []string{"Pentagon", "Hexagon", "Heptagon", "Octagon", "Nonagon", "Decagon"}
	for i, name := range names {
		test.T(t, SideCount(name), 5+i, name)
		test.T(t, LegacySideCount(ShapeIndex(name)), 6+i, name)
	}
	test.T(t, SideCount("Circle"), 0)
	test.T(t, SideCount("Star"), 0)
}

func TestSelectShape(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		ok    bool
	}{
		{"Rectangle", Rectangle(3, 5), true},
		{"Triangle", Triangle(3, 5), true},
		{"Circle", Circle(3), true},
		{"Pentagon", RegularPolygon(5, 3), true},
		{"Hexagon", RegularPolygon(6, 3), true},
		{"Decagon", RegularPolygon(10, 3), true},
		{"Star", Shape{}, false},
		{"", Shape{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, ok := SelectShape(tt.name, 3, 5)
			test.T(t, ok, tt.ok)
			test.T(t, shape, tt.shape)
		})
	}
}

func TestSelectShapeLegacy(t *testing.T) {
	// index+3 gives one side too many
	sel := Selector{Legacy: true}
	shape, ok := sel.Select("Hexagon", 4, 1)
	test.That(t, ok)
	test.T(t, shape, RegularPolygon(7, 4))

	shape, _ = sel.Select("Pentagon", 4, 1)
	test.T(t, shape.Sides, 6)

	shape, _ = sel.Select("Decagon", 4, 1)
	test.T(t, shape.Sides, 11)

	shape, _ = sel.Select("Rectangle", 4, 1)
	test.T(t, shape, Rectangle(4, 1))
}

func TestShapeString(t *testing.T) {
	test.T(t, Rectangle(3, 5).String(), "Rectangle(3,5)")
	test.T(t, Triangle(3, 5).String(), "Triangle(3,5)")
	test.T(t, Circle(3).String(), "Circle(3)")
	test.T(t, RegularPolygon(6, 3).String(), "RegularPolygon(6,3)")
	test.T(t, Kind(9).String(), "Kind(9)")
}
