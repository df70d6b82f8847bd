package shapedraw

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors wrapped by InputError.
var (
	ErrParse = errors.New("not a number")
	ErrRange = errors.New("out of range")
)

// ErrorKind distinguishes invalid input.
type ErrorKind int

// Error kinds.
const (
	ParseError ErrorKind = iota
	RangeError
)

// InputError is returned for user input that is not a number or outside its bounds. The accompanying value is always a usable substitute.
type InputError struct {
	Kind  ErrorKind
	Field string
	Input string
	Min   int
	Max   int
}

func (err *InputError) Error() string {
	if err.Field == "color" {
		if err.Kind == RangeError {
			return fmt.Sprintf("color values must be between %d and %d", err.Min, err.Max)
		}
		return fmt.Sprintf("invalid color input: please enter numbers between %d and %d", err.Min, err.Max)
	}
	if err.Kind == RangeError {
		return fmt.Sprintf("please enter a value between %d and %d", err.Min, err.Max)
	}
	return "invalid input: please enter a number"
}

func (err *InputError) Unwrap() error {
	if err.Kind == RangeError {
		return ErrRange
	}
	return ErrParse
}

// Notifier is told about every input that had to be substituted. GUIs show a modal dialog, commands print a message.
type Notifier interface {
	Notify(error)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(error)

// Notify calls f(err).
func (f NotifierFunc) Notify(err error) {
	f(err)
}

// ParseDimension parses a dimension in [MinDimension,MaxDimension]. On invalid input it returns MinDimension together with an *InputError, so that drawing may proceed with the substitute.
func ParseDimension(text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return MinDimension, &InputError{Kind: ParseError, Field: "dimension", Input: text, Min: MinDimension, Max: MaxDimension}
	} else if v < MinDimension || MaxDimension < v {
		return MinDimension, &InputError{Kind: RangeError, Field: "dimension", Input: text, Min: MinDimension, Max: MaxDimension}
	}
	return v, nil
}

// ParseColor parses three color channels in [0,255]. If any channel is invalid the whole color is replaced by Black.
func ParseColor(r, g, b string) (Color, error) {
	var c [3]int
	for i, s := range []string{r, g, b} {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Black, &InputError{Kind: ParseError, Field: "color", Input: s, Min: 0, Max: 255}
		}
		c[i] = v
	}
	for i, v := range c {
		if v < 0 || 255 < v {
			return Black, &InputError{Kind: RangeError, Field: "color", Input: []string{r, g, b}[i], Min: 0, Max: 255}
		}
	}
	return Color{uint8(c[0]), uint8(c[1]), uint8(c[2])}, nil
}
