package shapedraw

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB fill color.
type Color struct {
	R, G, B uint8
}

// Black is used whenever the color input is invalid.
var Black = Color{0, 0, 0}

// Red is the color preset in the form.
var Red = Color{255, 0, 0}

// RGBA implements color.Color, the color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 255}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Mode selects between the filled and the outlined drawer.
type Mode int

// Modes.
const (
	Filled Mode = iota
	Outline
)

func (m Mode) String() string {
	if m == Outline {
		return "outline"
	}
	return "filled"
}

// ParseMode parses "filled" or "outline".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "filled", "fill":
		return Filled, nil
	case "outline", "stroke":
		return Outline, nil
	}
	return Filled, fmt.Errorf("unknown mode: %v", s)
}
