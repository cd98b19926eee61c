// Package graphics selects and drives an inline-graphics protocol adapter
// (sixel, iTerm2, or Kitty) so a display.Display can paint a bitmap into
// the terminal: pixels in, protocol escape payloads out.
package graphics

import (
	"bytes"
	"image"
	"image/png"

	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// Image is a decoded RGBA bitmap plus its content hash, used to dedup
// repeat transmissions of identical pixels.
type Image struct {
	PixelWidth, PixelHeight int
	RGBA                    []byte
	Hash                    [32]byte
}

// Controller is the closed set of inline-graphics protocol adapters: each
// turns an Image and a target cell box into the styled-text rows a
// DisplayControl exposes through Control.GetLine, carrying the protocol
// payload as a layout.ZeroWidthEscape fragment rather than a printable one.
type Controller interface {
	// RenderedLines returns one row of fragments per visible row of the
	// cols x rows box, with bbox trimming content already scrolled out of
	// view (matching Window's own BBox convention).
	RenderedLines(img *Image, cols, rows int, bbox screen.Inset) [][]layout.StyledText

	// Hide removes a previously displayed image without forgetting any
	// server-side state (meaningful for Kitty only; others return "").
	Hide() string

	// Reset forgets any server-side image/placement state this controller
	// created, returning the sequence needed to delete it unless
	// leaveGraphics asks to keep the image on screen.
	Reset(leaveGraphics bool) string
}

// TerminalCapabilities is the subset of terminal-query results that decide
// which Controller a session should use.
type TerminalCapabilities struct {
	Sixel bool
	Kitty bool
	Iterm bool

	Multiplexer Multiplexer

	// CellPixelWidth/CellPixelHeight are the terminal's reported cell size
	// in pixels, needed to convert a cell-space crop bbox into a pixel-space
	// one for the protocols (sixel, iTerm) that can't express the crop in
	// cell units directly.
	CellPixelWidth, CellPixelHeight int
}

// SelectController picks the richest Controller caps supports. Kitty direct
// transmission is preferred outside a multiplexer; inside one it falls back
// to the Unicode-placeholder variant, since Kitty's binary APC protocol
// doesn't reliably survive a multiplexer's own passthrough wrapping.
func SelectController(caps TerminalCapabilities) Controller {
	inMplex := caps.Multiplexer != MultiplexerNone

	switch {
	case caps.Kitty && !inMplex:
		return &kittyDirectController{mplex: caps.Multiplexer}
	case caps.Kitty && inMplex:
		return &kittyPlaceholderController{mplex: caps.Multiplexer, placements: make(map[[2]int]bool)}
	case caps.Iterm:
		return &itermController{mplex: caps.Multiplexer, cellPixelWidth: pix(caps.CellPixelWidth), cellPixelHeight: pix(caps.CellPixelHeight)}
	case caps.Sixel:
		return &sixelController{mplex: caps.Multiplexer, cellPixelWidth: pix(caps.CellPixelWidth), cellPixelHeight: pix(caps.CellPixelHeight)}
	default:
		return disabledController{}
	}
}

func pix(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

// disabledController is used when the terminal advertises no inline
// graphics support at all: every operation is a no-op.
type disabledController struct{}

func (disabledController) RenderedLines(*Image, int, int, screen.Inset) [][]layout.StyledText {
	return nil
}
func (disabledController) Hide() string          { return "" }
func (disabledController) Reset(bool) string     { return "" }

// gridWithEscape builds a cols x rows grid of blank StyledText fragments,
// attaching escape as a single ZeroWidthEscape fragment on the top-left
// cell. Window.WriteToScreen routes that fragment straight to the Screen's
// escape grid without consuming a column, and render.Render emits it at
// exactly the right cursor position on the next diff pass, so no manual
// cursor-save/move/restore dance is needed around the payload.
func gridWithEscape(cols, rows int, escape string) [][]layout.StyledText {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	blankRow := func(withEscape bool) []layout.StyledText {
		frags := make([]layout.StyledText, 0, 2)
		if withEscape && escape != "" {
			frags = append(frags, layout.StyledText{Style: layout.ZeroWidthEscape, Text: escape})
		}
		frags = append(frags, layout.StyledText{Text: spaces(cols)})
		return frags
	}
	grid := make([][]layout.StyledText, rows)
	for y := 0; y < rows; y++ {
		grid[y] = blankRow(y == 0)
	}
	return grid
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// cropRGBA trims img's pixel data to the cell-space bbox within a cols x
// rows box, using cellW/cellH to convert cell offsets into pixels. Kitty
// doesn't need this: it expresses a crop with its own x=/y=/w=/h= fields
// against the original image.
func cropRGBA(img *Image, bbox screen.Inset, cols, rows, cellW, cellH int) *Image {
	left := bbox.Left * cellW
	top := bbox.Top * cellH
	right := img.PixelWidth - bbox.Right*cellW
	bottom := img.PixelHeight - bbox.Bottom*cellH
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > img.PixelWidth {
		right = img.PixelWidth
	}
	if bottom > img.PixelHeight {
		bottom = img.PixelHeight
	}
	w, h := right-left, bottom-top
	if w <= 0 || h <= 0 {
		return &Image{}
	}
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		srcOff := ((top+y)*img.PixelWidth + left) * 4
		dstOff := y * w * 4
		copy(out[dstOff:dstOff+w*4], img.RGBA[srcOff:srcOff+w*4])
	}
	return &Image{PixelWidth: w, PixelHeight: h, RGBA: out}
}

func encodePNG(img *Image) []byte {
	rgba := &image.RGBA{
		Pix:    img.RGBA,
		Stride: img.PixelWidth * 4,
		Rect:   image.Rect(0, 0, img.PixelWidth, img.PixelHeight),
	}
	var buf bytes.Buffer
	png.Encode(&buf, rgba)
	return buf.Bytes()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
