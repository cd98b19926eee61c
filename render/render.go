// Package render implements the byte-minimal differential renderer: given a
// current and previously emitted Screen, it writes the escape sequences that
// bring a terminal already displaying the previous frame to the current one.
package render

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/slatebook/slate/cellmodel"
	"github.com/slatebook/slate/screen"
)

// ColorDepth selects how aggressively colours are downsampled on output.
type ColorDepth int

const (
	Depth1Bit ColorDepth = iota
	Depth4Bit
	Depth8Bit
	Depth24Bit
)

// Option configures a Renderer at construction time, following the same
// functional-options shape used across this module for optional settings.
type Option func(*Renderer)

// WithColorDepth overrides the default 24-bit colour depth.
func WithColorDepth(d ColorDepth) Option {
	return func(r *Renderer) { r.depth = d }
}

// WithStyleCache supplies a pre-populated style cache instead of a fresh one.
func WithStyleCache(c *cellmodel.StyleCache) Option {
	return func(r *Renderer) { r.styles = c }
}

// Renderer holds the state that must persist across frames: the last style
// actually emitted (so redundant SGRs are suppressed across cells; moving
// the cursor down a row resets attributes and forgets it), the
// previous frame's size (to detect resizes), and the shared style cache.
type Renderer struct {
	depth         ColorDepth
	styles        *cellmodel.StyleCache
	lastStyle     *string
	prevSize      Size
	prevStyleHash [32]byte
	haveRendered  bool

	prevRows        int
	prevCells       map[int]map[int]cellmodel.Cell
	prevEscapes     map[int]map[int]string
	prevHeightValue int
}

// Size is a terminal size in character cells.
type Size struct {
	Cols, Rows int
}

// New constructs a Renderer with 24-bit colour depth by default.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		depth:  Depth24Bit,
		styles: cellmodel.NewStyleCache(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Invalidate forces the next Render call to perform a full reset, as if it
// were the first frame. Used when a resize or a style-infrastructure change
// is detected by the caller.
func (r *Renderer) Invalidate() {
	r.haveRendered = false
}

// Render writes the minimal byte sequence transforming a terminal holding
// prev into one holding cur, per the differential-rendering contract. cur
// and prev may be nil (prev nil on the first frame). cursorPos is the
// layout's desired cursor location for this frame; isDone marks the final
// render before the application exits (cursor parked below all content).
func (r *Renderer) Render(w io.Writer, cur *screen.Screen, size Size, cursorPos screen.Point, showCursor bool, isDone bool) (screen.Point, error) {
	out := &writer{w: w}

	resetAttrs := func() {
		out.writeRaw(escReset)
		r.lastStyle = nil
	}

	curStyleHash := styleHash(r.styles)
	styleInfraChanged := r.haveRendered && curStyleHash != r.prevStyleHash

	firstFrame := !r.haveRendered
	sizeChanged := r.prevSize != size
	if firstFrame || styleInfraChanged {
		resetAttrs()
	}
	if firstFrame || sizeChanged || styleInfraChanged {
		out.writeRaw(escCursorHome)
		resetAttrs()
		out.writeRaw(escEraseDown)
		if !firstFrame {
			// Style infrastructure changed (e.g. palette swap): discard the
			// previous frame so every cell is treated as changed.
			r.prevRows = 0
			r.prevCells = nil
			r.prevEscapes = nil
		}
	}

	current := cursorPos
	if firstFrame || sizeChanged || styleInfraChanged {
		current = screen.Point{Row: 0, Col: 0}
	}

	moveCursor := func(newPos screen.Point) screen.Point {
		return r.moveCursor(out, current, newPos, size, resetAttrs)
	}

	curRows := maxRow(cur) + 1
	prevRows := r.prevRows
	rowCount := maxInt(curRows, prevRows)
	if rowCount > size.Rows {
		rowCount = size.Rows
	}

	for y := 0; y < rowCount; y++ {
		newRow, newZwe := cur.Cells[y], cur.Escapes[y]
		oldRow, oldZwe := r.prevCells[y], r.prevEscapes[y]

		if hashRow(newRow, newZwe) == hashRow(oldRow, oldZwe) {
			continue
		}

		newMax := minInt(size.Cols-1, maxColumn(newRow, newZwe, r.styles))
		oldMax := minInt(size.Cols-1, maxColumn(oldRow, oldZwe, r.styles))

		prevDiffChar := false
		c := 0
		for c <= newMax+1 {
			newCell, hasNew := newRow[c]
			oldCell, hasOld := oldRow[c]
			newZWE := newZwe[c]
			oldZWE := oldZwe[c]

			charWidth := 1
			if hasNew && newCell.Width > 0 {
				charWidth = newCell.Width
			}

			diffChar := hasNew != hasOld || newCell.Text != oldCell.Text || newCell.Style != oldCell.Style

			if newZWE != oldZWE || diffChar || prevDiffChar {
				out.writeRaw(newZWE)
			}

			if diffChar {
				if c != current.Col || y != current.Row {
					current = moveCursor(screen.Point{Row: y, Col: c})
				}
				r.outputChar(out, newCell)
				current = screen.Point{Row: current.Row, Col: current.Col + charWidth}
			}

			prevDiffChar = diffChar
			c += charWidth
		}

		if newMax < oldMax {
			if current.Col != newMax+1 || current.Row != y {
				current = moveCursor(screen.Point{Row: y, Col: newMax + 1})
			}
			resetAttrs()
			out.writeRaw(escEraseLine)
		}
	}

	currentHeight := minInt(curRows, size.Rows)
	if currentHeight > prevRows {
		current = moveCursor(screen.Point{Row: currentHeight - 1, Col: 0})
	}

	if isDone {
		current = moveCursor(screen.Point{Row: currentHeight, Col: 0})
		out.writeRaw(escEraseDown)
	} else {
		current = moveCursor(cursorPos)
	}

	if showCursor || isDone {
		out.writeRaw(escShowCursor)
	} else {
		out.writeRaw(escHideCursor)
	}

	resetAttrs()

	if out.err != nil {
		return current, fmt.Errorf("render: %w", out.err)
	}

	r.haveRendered = true
	r.prevSize = size
	r.prevRows = curRows
	r.prevCells = cur.Cells
	r.prevEscapes = cur.Escapes
	r.prevHeightValue = currentHeight
	// Hash after this frame's own style lookups, so styles first seen while
	// painting it do not read as an infrastructure change next frame.
	r.prevStyleHash = styleHash(r.styles)
	return current, nil
}

// moveCursor emits the shortest escape sequence moving the cursor from
// current to new, per the cursor-motion rules in the rendering contract.
func (r *Renderer) moveCursor(out *writer, current, next screen.Point, size Size, resetAttrs func()) screen.Point {
	if next.Row > current.Row {
		resetAttrs()
		for i := 0; i < next.Row-current.Row; i++ {
			out.writeRaw("\r\n")
		}
		if next.Col > 0 {
			out.writeRaw(cursorForward(next.Col))
		}
		return next
	}
	if next.Row < current.Row {
		out.writeRaw(cursorUp(current.Row - next.Row))
	}

	switch {
	case current.Col >= size.Cols-1:
		out.writeRaw("\r")
		if next.Col > 0 {
			out.writeRaw(cursorForward(next.Col))
		}
	case next.Col < current.Col:
		out.writeRaw(cursorBackward(current.Col - next.Col))
	case next.Col > current.Col:
		out.writeRaw(cursorForward(next.Col - current.Col))
	}
	return next
}

// outputChar writes a single cell, emitting an SGR sequence only when its
// style differs from the last style actually emitted.
func (r *Renderer) outputChar(out *writer, cell cellmodel.Cell) {
	if r.lastStyle != nil && *r.lastStyle == cell.Style {
		out.writeRaw(cell.Text)
		return
	}
	newAttrs := r.styles.Get(cell.Style)
	if r.lastStyle == nil || newAttrs.Serialize() != r.styles.Get(*r.lastStyle).Serialize() {
		out.writeRaw(sgrSequence(newAttrs, r.depth))
	}
	out.writeRaw(cell.Text)
	style := cell.Style
	r.lastStyle = &style
}

func hashRow(row map[int]cellmodel.Cell, zwe map[int]string) [32]byte {
	h := sha256.New()
	keys := make([]int, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, idx := range keys {
		cell := row[idx]
		fmt.Fprintf(h, "%d:%s:%s", idx, cell.Text, cell.Style)
	}
	zkeys := make([]int, 0, len(zwe))
	for k := range zwe {
		zkeys = append(zkeys, k)
	}
	sort.Ints(zkeys)
	for _, idx := range zkeys {
		fmt.Fprintf(h, "%d:%s", idx, zwe[idx])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func maxColumn(row map[int]cellmodel.Cell, zwe map[int]string, styles *cellmodel.StyleCache) int {
	maxIdx := 0
	for idx, cell := range row {
		if cell.Text != " " || hasStyle(styles.Get(cell.Style)) {
			if idx > maxIdx {
				maxIdx = idx
			}
		}
	}
	for idx := range zwe {
		if idx-1 > maxIdx {
			maxIdx = idx - 1
		}
	}
	return maxIdx
}

func hasStyle(a cellmodel.Attrs) bool {
	return a.Serialize() != ""
}

func maxRow(s *screen.Screen) int {
	max := -1
	for y := range s.Cells {
		if y > max {
			max = y
		}
	}
	for y := range s.Escapes {
		if y > max {
			max = y
		}
	}
	return max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// styleHash lets a caller detect whether the style/attrs infrastructure
// changed between frames (e.g. palette swap), which forces a full reset per
// the rendering contract's first rule.
func styleHash(c *cellmodel.StyleCache) [32]byte {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Len()))
	h.Write(buf[:])
	return [32]byte(h.Sum(nil))
}
