// Package screen implements the sparse cell grid that containers paint into
// each frame, including the float overlay mechanism described by the layout
// model's ChainBuffer.
package screen

import (
	"sort"

	"github.com/slatebook/slate/cellmodel"
)

// Point is a zero-based (row, col) screen coordinate.
type Point struct {
	Row, Col int
}

// Inset is a clipping margin, named top/right/bottom/left to match the
// write-position bbox.
type Inset struct {
	Top, Right, Bottom, Left int
}

// WritePosition describes where and how large a container's render area is,
// plus the inset a nested render should exclude.
type WritePosition struct {
	X, Y, Width, Height int
	BBox                Inset
}

// WindowID identifies a leaf window's render-info record on a Screen.
type WindowID int

// WindowRenderInfo records where a window ended up painting, so callers
// (scrollbars, mouse dispatch, cached-container blits) can map a visual row
// back to the window's own content coordinates.
type WindowRenderInfo struct {
	WritePosition    WritePosition
	CursorPosition   *Point
	VisibleLineToRow map[int]int
}

type floatEntry struct {
	z    int
	seq  int
	draw func(*Screen)
}

// Screen is the per-frame target containers paint into: a sparse cell grid,
// a parallel zero-width-escape grid, write-position and cursor-position
// records keyed by window, and a queue of pending float draws.
type Screen struct {
	Cells   map[int]map[int]cellmodel.Cell
	Escapes map[int]map[int]string

	WritePositions map[WindowID]*WindowRenderInfo
	ShowCursor     bool

	floats    []floatEntry
	floatSeq  int
}

// New returns an empty Screen.
func New() *Screen {
	return &Screen{
		Cells:          make(map[int]map[int]cellmodel.Cell),
		Escapes:        make(map[int]map[int]string),
		WritePositions: make(map[WindowID]*WindowRenderInfo),
	}
}

// Put sets the cell at (x, y), overwriting whatever was there.
func (s *Screen) Put(x, y int, cell cellmodel.Cell) {
	row, ok := s.Cells[y]
	if !ok {
		row = make(map[int]cellmodel.Cell)
		s.Cells[y] = row
	}
	row[x] = cell
}

// Get returns the cell at (x, y) and whether one was written there.
func (s *Screen) Get(x, y int) (cellmodel.Cell, bool) {
	row, ok := s.Cells[y]
	if !ok {
		return cellmodel.Cell{}, false
	}
	c, ok := row[x]
	return c, ok
}

// PutEscape records a zero-width escape string (hyperlink start/end, inline
// graphics passthrough) attached to the cell at (x, y).
func (s *Screen) PutEscape(x, y int, escape string) {
	row, ok := s.Escapes[y]
	if !ok {
		row = make(map[int]string)
		s.Escapes[y] = row
	}
	row[x] = escape
}

// GetEscape returns the escape string recorded at (x, y), if any.
func (s *Screen) GetEscape(x, y int) string {
	row, ok := s.Escapes[y]
	if !ok {
		return ""
	}
	return row[x]
}

// FillArea replaces the style of every cell inside wp, excluding its bbox,
// by prepending or appending extra to the existing style string depending on
// after. Cells outside the bbox-trimmed rectangle are left untouched.
func (s *Screen) FillArea(wp WritePosition, extra string, after bool) {
	top := wp.Y + wp.BBox.Top
	left := wp.X + wp.BBox.Left
	bottom := wp.Y + wp.Height - wp.BBox.Bottom
	right := wp.X + wp.Width - wp.BBox.Right

	for y := top; y < bottom; y++ {
		row, ok := s.Cells[y]
		if !ok {
			continue
		}
		for x := left; x < right; x++ {
			cell, ok := row[x]
			if !ok {
				continue
			}
			if after {
				cell.Style = cell.Style + " " + extra
			} else {
				cell.Style = extra + " " + cell.Style
			}
			row[x] = cell
		}
	}
}

// QueueFloat registers a float draw callback at the given z-index. Floats at
// the same z-index run in submission order.
func (s *Screen) QueueFloat(z int, draw func(*Screen)) {
	s.floats = append(s.floats, floatEntry{z: z, seq: s.floatSeq, draw: draw})
	s.floatSeq++
}

// DrawAllFloats drains the pending float queue in ascending z-index order
// (ties broken by submission order), drawing each into its own layered
// buffer so later floats can detect earlier ones beneath them, then
// flattens the layers onto the base screen.
func (s *Screen) DrawAllFloats() {
	if len(s.floats) == 0 {
		return
	}
	floats := s.floats
	s.floats = nil
	sort.SliceStable(floats, func(i, j int) bool {
		if floats[i].z != floats[j].z {
			return floats[i].z < floats[j].z
		}
		return floats[i].seq < floats[j].seq
	})

	chain := &ChainBuffer{base: s}
	for _, f := range floats {
		layer := New()
		f.draw(layer)
		chain.layers = append(chain.layers, layer)
	}
	chain.Flatten()
}
