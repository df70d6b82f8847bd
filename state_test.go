package shapedraw

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

type recorder []error

func (r *recorder) Notify(err error) {
	*r = append(*r, err)
}

func TestStateSubmit(t *testing.T) {
	s := NewState(Filled)
	var notes recorder

	form := NewForm()
	form.Shape, form.Dim1, form.Dim2 = "Rectangle", "4", "6"
	s.Submit(form, &notes)
	test.T(t, len(notes), 0)
	test.T(t, *s.Shape, Rectangle(4, 6))
	test.T(t, s.Color, Red)

	// circles ignore the second dimension but it is still validated
	form.Shape, form.Dim1, form.Dim2 = "Circle", "8", ""
	s.Submit(form, &notes)
	test.T(t, len(notes), 1)
	test.That(t, errors.Is(notes[0], ErrParse))
	test.T(t, *s.Shape, Circle(8))

	notes = notes[:0]
	form.Shape, form.Dim1, form.Dim2 = "Triangle", "21", "abc"
	form.Red = "300"
	s.Submit(form, &notes)
	test.T(t, len(notes), 3)
	test.That(t, errors.Is(notes[0], ErrRange))
	test.That(t, errors.Is(notes[1], ErrParse))
	test.That(t, errors.Is(notes[2], ErrRange))
	test.T(t, *s.Shape, Triangle(1, 1))
	test.T(t, s.Color, Black)
}

func TestStateSubmitUnknown(t *testing.T) {
	s := NewState(Filled)
	form := NewForm()
	form.Dim1, form.Dim2 = "2", "2"
	s.Submit(form, nil)
	test.That(t, s.Shape != nil)

	var notes recorder
	form.Shape = "Star"
	form.Red = "300"
	s.Submit(form, &notes)
	test.That(t, s.Shape == nil)
	test.T(t, len(notes), 0)
	test.T(t, s.Color, Red)
	test.That(t, s.Primitive(100, 100).Empty())
}

func TestStateSubmitOutline(t *testing.T) {
	s := NewState(Outline)
	var notes recorder
	s.Submit(Form{Shape: "Hexagon", Dim1: "5", Dim2: "5", Red: "x"}, &notes)
	test.T(t, len(notes), 0)
	test.T(t, *s.Shape, RegularPolygon(6, 5))
	test.T(t, s.Color, Black)

	s.Selector.Legacy = true
	s.Submit(Form{Shape: "Hexagon", Dim1: "5", Dim2: "5"}, &notes)
	test.T(t, *s.Shape, RegularPolygon(7, 5))
}

func TestStatePrimitive(t *testing.T) {
	s := NewState(Filled)
	s.Submit(Form{Shape: "Circle", Dim1: "5", Dim2: "1", Red: "1", Green: "2", Blue: "3"}, nil)
	test.T(t, s.Primitive(600, 400), Primitive{Kind: EllipsePrimitive, X: 250, Y: 150, W: 100, H: 100})
	test.T(t, s.Color, Color{1, 2, 3})
}

func TestStateRender(t *testing.T) {
	s := NewState(Filled)
	c := s.Render(320, 240)
	test.Float(t, c.W, 320.0)
	test.Float(t, c.H, 240.0)

	s.Submit(Form{Shape: "Octagon", Dim1: "9", Dim2: "1", Red: "0", Green: "0", Blue: "255"}, nil)
	a := s.Render(320, 240)
	b := s.Render(320, 240)
	test.T(t, a, b)
}
