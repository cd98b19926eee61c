package vterm

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/slatebook/slate/cellmodel"
)

// snapshotPalette is the same 16-colour ANSI table render's encode-side
// palette uses, duplicated here because the replay oracle can't import
// render (render imports vterm from its _test.go files, and the dependency
// has to stay one-directional).
var snapshotPalette = [16]stdcolor.RGBA{
	{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
	{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
	{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
	{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
}

var (
	snapshotDefaultFG = stdcolor.RGBA{229, 229, 229, 255}
	snapshotDefaultBG = stdcolor.RGBA{0, 0, 0, 255}
)

// Snapshot rasterizes the replay terminal to an RGBA image using a fixed
// bitmap font. Test support only: render's replay tests call this to
// produce a viewable artifact on failure, so a human can see what the diff
// actually drew instead of reading raw cell dumps.
func (t *Terminal) Snapshot() *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	cellWidth := 7
	cellHeight := metrics.Height.Ceil()

	imgWidth := t.cols * cellWidth
	imgHeight := t.rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, snapshotDefaultBG)
		}
	}

	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			cell := t.buf.cell(row, col)
			if cell == nil || cell.Width == 0 {
				continue
			}

			x := col * cellWidth
			y := row * cellHeight

			fg := resolveSnapshotColor(cell.Attrs.Fg, true)
			bg := resolveSnapshotColor(cell.Attrs.Bg, false)
			if cell.Attrs.Reverse {
				fg, bg = bg, fg
			}
			if cell.Attrs.Dim {
				fg = stdcolor.RGBA{
					R: uint8(float64(fg.R) * 0.66),
					G: uint8(float64(fg.G) * 0.66),
					B: uint8(float64(fg.B) * 0.66),
					A: fg.A,
				}
			}

			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, y+py, bg)
				}
			}

			if cell.Char == 0 || cell.Char == ' ' {
				continue
			}

			baseline := y + metrics.Ascent.Ceil()
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(cell.Char))

			if cell.Attrs.Underline != cellmodel.UnderlineNone {
				underlineY := baseline + 2
				for px := 0; px < cellWidth; px++ {
					if underlineY < imgHeight {
						img.Set(x+px, underlineY, fg)
					}
				}
			}
			if cell.Attrs.Strike {
				strikeY := y + cellHeight/2
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, strikeY, fg)
				}
			}
		}
	}

	if t.cursorVisible {
		cx := t.cursorCol * cellWidth
		cy := t.cursorRow * cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				x, y := cx+px, cy+py
				if x < imgWidth && y < imgHeight {
					existing := img.RGBAAt(x, y)
					img.Set(x, y, stdcolor.RGBA{
						R: 255 - existing.R,
						G: 255 - existing.G,
						B: 255 - existing.B,
						A: 255,
					})
				}
			}
		}
	}

	return img
}

func resolveSnapshotColor(c cellmodel.Color, fg bool) stdcolor.RGBA {
	if c == nil {
		if fg {
			return snapshotDefaultFG
		}
		return snapshotDefaultBG
	}
	switch v := c.(type) {
	case cellmodel.RGB:
		return stdcolor.RGBA{R: v.R, G: v.G, B: v.B, A: 255}
	case cellmodel.Indexed:
		if v.N >= 0 && v.N < 16 {
			return snapshotPalette[v.N]
		}
		if v.N >= 16 && v.N < 256 {
			return indexedCubeOrGray(v.N)
		}
		if fg {
			return snapshotDefaultFG
		}
		return snapshotDefaultBG
	case cellmodel.Named:
		switch v.Kind {
		case cellmodel.NamedBackground:
			return snapshotDefaultBG
		default:
			return snapshotDefaultFG
		}
	default:
		if fg {
			return snapshotDefaultFG
		}
		return snapshotDefaultBG
	}
}

// indexedCubeOrGray resolves slots 16-255 of the 256-colour table: a 6x6x6
// colour cube followed by a 24-step grayscale ramp.
func indexedCubeOrGray(n int) stdcolor.RGBA {
	if n >= 232 {
		gray := uint8(8 + (n-232)*10)
		return stdcolor.RGBA{gray, gray, gray, 255}
	}
	i := n - 16
	r := uint8((i / 36) * 51)
	g := uint8(((i / 6) % 6) * 51)
	b := uint8((i % 6) * 51)
	return stdcolor.RGBA{r, g, b, 255}
}
