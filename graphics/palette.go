package graphics

import "image/color"

// palette is the default VGA 16-colour set plus a 240-entry greyscale
// ramp, the table sixel-capable terminals assume for indices that were
// never explicitly declared; quantizing against it keeps encoded indices
// stable even when a declaration is dropped.
var palette = buildPalette()

func buildPalette() [256]color.RGBA {
	var p [256]color.RGBA
	vgaColors := []color.RGBA{
		{0, 0, 0, 255},
		{0, 0, 205, 255},
		{205, 0, 0, 255},
		{205, 0, 205, 255},
		{0, 205, 0, 255},
		{0, 205, 205, 255},
		{205, 205, 0, 255},
		{205, 205, 205, 255},
		{0, 0, 0, 255},
		{0, 0, 255, 255},
		{255, 0, 0, 255},
		{255, 0, 255, 255},
		{0, 255, 0, 255},
		{0, 255, 255, 255},
		{255, 255, 0, 255},
		{255, 255, 255, 255},
	}
	copy(p[:], vgaColors)
	for i := 16; i < 256; i++ {
		gray := uint8((i - 16) * 255 / 239)
		p[i] = color.RGBA{gray, gray, gray, 255}
	}
	return p
}

// hlsToRGB converts a sixel HLS colour declaration to RGB. The hue wheel
// is rotated a third of a turn from the standard one (green at 0, blue at
// 120, red at 240); hue 0-360, lightness and saturation 0-100. The math
// matches the decode side exactly so a palette entry declared in HLS
// resolves to the same RGB on both ends.
func hlsToRGB(h, l, s int) color.RGBA {
	if s == 0 {
		v := uint8(l * 255 / 100)
		return color.RGBA{v, v, v, 255}
	}

	hNorm := float64(h) / 360.0
	lNorm := float64(l) / 100.0
	sNorm := float64(s) / 100.0

	hNorm = hNorm + 1.0/3.0
	if hNorm >= 1.0 {
		hNorm -= 1.0
	}

	var q float64
	if lNorm < 0.5 {
		q = lNorm * (1 + sNorm)
	} else {
		q = lNorm + sNorm - lNorm*sNorm
	}
	p := 2*lNorm - q

	r := hueToRGB(p, q, hNorm+1.0/3.0)
	g := hueToRGB(p, q, hNorm)
	b := hueToRGB(p, q, hNorm-1.0/3.0)

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func nearestPaletteIndex(r, g, b uint8) int {
	best, bestDist := 0, int(1<<31-1)
	for i, c := range palette {
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
