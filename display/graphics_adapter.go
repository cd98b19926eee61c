package display

import (
	"github.com/slatebook/slate/graphics"
	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// GraphicConverter adapts a graphics.Controller into the Converter shape
// DisplayControl expects: the datum's bytes are the already-decoded RGBA
// pixels (NaturalWidth/NaturalHeight give the pixel size), and width/height
// here are the *cell* box the Display resolved via ResolveSize. No crop is
// applied; a Display only shrinks/grows the whole box, it never partially
// scrolls a graphic out of view; a scrolling container that clips a
// Display would need to thread its own bbox through, which is out of
// scope here since inline graphics aren't expected inside a
// scrolling/cached container in this design.
func GraphicConverter(ctrl graphics.Controller) Converter {
	return func(datum Datum, width, height int, fg, bg string, wrap bool) [][]layout.StyledText {
		img := &graphics.Image{
			PixelWidth:  datum.NaturalWidth,
			PixelHeight: datum.NaturalHeight,
			RGBA:        datum.Bytes,
			Hash:        datum.Hash,
		}
		return ctrl.RenderedLines(img, width, height, screen.Inset{})
	}
}
