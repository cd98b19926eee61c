// Package cellmodel defines the cell, style, and colour types shared by the
// screen, renderer, and layout packages.
package cellmodel

import "fmt"

// Color is a closed sum type over the three colour forms the style
// vocabulary accepts: a literal RGB triple, an indexed ANSI/256-colour slot,
// or one of the terminal's named semantic colours (including "default").
type Color interface {
	isColor()
	String() string
}

// RGB is a literal 24-bit colour, written as #rrggbb in a style string.
type RGB struct {
	R, G, B uint8
}

func (RGB) isColor() {}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Indexed selects one of the 256 palette slots (0-15 standard/bright ANSI,
// 16-231 colour cube, 232-255 grayscale ramp).
type Indexed struct {
	N int
}

func (Indexed) isColor() {}

func (c Indexed) String() string {
	return fmt.Sprintf("ansi:%d", c.N)
}

// NamedKind enumerates the terminal's semantic colour slots.
type NamedKind int

const (
	NamedDefault NamedKind = iota
	NamedForeground
	NamedBackground
)

// Named is a semantic colour that resolves against the terminal's current
// default foreground/background rather than a fixed RGB or palette index.
type Named struct {
	Kind NamedKind
}

func (Named) isColor() {}

func (c Named) String() string {
	switch c.Kind {
	case NamedForeground:
		return "fg"
	case NamedBackground:
		return "bg"
	default:
		return "default"
	}
}
