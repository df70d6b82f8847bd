package shapedraw

import (
	"github.com/tdewolff/canvas"
)

// Form holds the raw text of the input fields.
type Form struct {
	Shape      string
	Dim1, Dim2 string
	Red        string
	Green      string
	Blue       string
}

// NewForm returns a form with the initial field values, the color is preset to red.
func NewForm() Form {
	return Form{
		Shape: ShapeNames[0],
		Red:   "255",
		Green: "0",
		Blue:  "0",
	}
}

// State is the application state of a drawer: the current shape, if any, and how to draw it.
type State struct {
	Shape    *Shape
	Color    Color
	Mode     Mode
	Selector Selector
}

// NewState returns an empty state for the given mode.
func NewState(mode Mode) *State {
	return &State{
		Color: Black,
		Mode:  mode,
	}
}

// Submit validates the form and replaces the current shape. Both dimensions are always validated, also when the shape uses only the first. The color is only read in Filled mode and only when there is a shape to fill. Every substituted field is passed to notifier, which may be nil. An unknown shape name clears the current shape without notice.
func (s *State) Submit(form Form, notifier Notifier) {
	notify := func(err error) {
		if err != nil && notifier != nil {
			notifier.Notify(err)
		}
	}

	dim1, err := ParseDimension(form.Dim1)
	notify(err)
	dim2, err := ParseDimension(form.Dim2)
	notify(err)

	shape, ok := s.Selector.Select(form.Shape, dim1, dim2)
	if !ok {
		s.Shape = nil
		return
	}
	s.Shape = &shape

	if s.Mode == Filled {
		col, err := ParseColor(form.Red, form.Green, form.Blue)
		notify(err)
		s.Color = col
	}
}

// Primitive lays out the current shape for a canvas of w by h device units.
func (s *State) Primitive(w, h int) Primitive {
	if s.Shape == nil {
		return Primitive{}
	}
	return Layout(*s.Shape, w, h)
}

// Render returns a new canvas of w by h device units with the current shape drawn centered on a white background.
func (s *State) Render(w, h int) *canvas.Canvas {
	c, ctx := NewCanvas(w, h)
	Draw(ctx, s.Primitive(w, h), s.Mode, s.Color)
	return c
}
