package vterm

import (
	"fmt"

	"github.com/slatebook/slate/cellmodel"
	"github.com/slatebook/slate/screen"
)

// Equal checks the diff-correctness contract: for any Screen S and its
// previous Screen S', applying the bytes render.Render emits for (S, S')
// to a replay terminal already holding S' must reproduce S cell-for-cell.
// Callers feed
// the emitted bytes into a Terminal seeded from S' (or fresh, on the first
// frame) and then call Equal against S. Returns a human-readable mismatch
// description on failure.
func Equal(term *Terminal, scr *screen.Screen, styles *cellmodel.StyleCache) (bool, string) {
	for y := 0; y < term.Rows(); y++ {
		for x := 0; x < term.Cols(); x++ {
			wantChar, wantWidth, wantAttrs := expectedCell(scr, styles, x, y)

			got := term.Cell(y, x)
			if got == nil {
				return false, fmt.Sprintf("(%d,%d): replay terminal has no cell", x, y)
			}
			if got.Char != wantChar || got.Width != wantWidth {
				return false, fmt.Sprintf("(%d,%d): got char %q width %d, want %q width %d",
					x, y, got.Char, got.Width, wantChar, wantWidth)
			}
			if !attrsEqual(got.Attrs, wantAttrs) {
				return false, fmt.Sprintf("(%d,%d): got attrs %q, want %q",
					x, y, got.Attrs.Serialize(), wantAttrs.Serialize())
			}
		}
	}
	return true, ""
}

func expectedCell(scr *screen.Screen, styles *cellmodel.StyleCache, x, y int) (rune, int, cellmodel.Attrs) {
	cell, ok := scr.Get(x, y)
	if !ok {
		return ' ', 1, cellmodel.Attrs{}
	}
	if cell.Width == 0 {
		return 0, 0, styles.Get(cell.Style)
	}
	if cell.Text == "" {
		return ' ', 1, styles.Get(cell.Style)
	}
	runes := []rune(cell.Text)
	return runes[0], cell.Width, styles.Get(cell.Style)
}

// attrsEqual compares every field but Unknown: the replay terminal's SGR
// dispatch never populates it, so it would otherwise force every comparison
// against a Screen built with non-empty Unknown tokens to fail spuriously.
func attrsEqual(a, b cellmodel.Attrs) bool {
	return a.Fg == b.Fg &&
		a.Bg == b.Bg &&
		a.UnderlineColor == b.UnderlineColor &&
		a.Bold == b.Bold &&
		a.Dim == b.Dim &&
		a.Italic == b.Italic &&
		a.Underline == b.Underline &&
		a.Strike == b.Strike &&
		a.Blink == b.Blink &&
		a.BlinkFast == b.BlinkFast &&
		a.Reverse == b.Reverse &&
		a.Hidden == b.Hidden &&
		a.Overline == b.Overline
}
