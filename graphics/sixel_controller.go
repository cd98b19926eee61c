package graphics

import (
	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// sixelController paints bitmaps with the DCS sixel protocol: stateless
// between frames, since sixel has no server-side image or placement
// identity to track (Reset/Hide are no-ops).
type sixelController struct {
	mplex                           Multiplexer
	cellPixelWidth, cellPixelHeight int
}

func (s *sixelController) RenderedLines(img *Image, cols, rows int, bbox screen.Inset) [][]layout.StyledText {
	displayRows := rows - bbox.Top - bbox.Bottom
	displayCols := cols - bbox.Left - bbox.Right
	if displayRows <= 0 || displayCols <= 0 {
		return nil
	}
	cropped := cropRGBA(img, bbox, cols, rows, s.cellPixelWidth, s.cellPixelHeight)
	if cropped.PixelWidth == 0 || cropped.PixelHeight == 0 {
		return nil
	}
	cmd := EncodeSixel(cropped.RGBA, cropped.PixelWidth, cropped.PixelHeight)
	return gridWithEscape(displayCols, displayRows, WrapPassthrough(cmd, s.mplex))
}

func (s *sixelController) Hide() string      { return "" }
func (s *sixelController) Reset(bool) string { return "" }
