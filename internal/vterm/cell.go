// Package vterm is a minimal replay terminal used by rendering tests:
// it applies the bytes a render.Renderer emitted and lets the test assert
// that the resulting cell grid equals the source screen.Screen, cell for
// cell. It is a verification oracle, not a terminal emulator: no
// scrollback, no alternate screen, no graphics decode.
package vterm

import "github.com/slatebook/slate/cellmodel"

// Cell is one replayed terminal cell: the printed grapheme, its display
// width, and the resolved style attributes in effect when it was written.
type Cell struct {
	Char  rune
	Width int
	Attrs cellmodel.Attrs
}

func newCell() Cell {
	return Cell{Char: ' ', Width: 1}
}
