package render

import "github.com/slatebook/slate/cellmodel"

// defaultPalette is the standard 256-colour table: 16 named colours (0-15),
// a 216-entry colour cube (16-231), and a 24-step grayscale ramp (232-255).
// The replay terminal in internal/vterm resolves against the same table,
// so emitted and replayed colours agree in round-trip tests.
var defaultPalette [256][3]uint8

func init() {
	standard := [16][3]uint8{
		{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
		{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
		{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
		{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
	}
	copy(defaultPalette[:16], standard[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				defaultPalette[i] = [3]uint8{uint8(r * 51), uint8(g * 51), uint8(b * 51)}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		defaultPalette[232+j] = [3]uint8{gray, gray, gray}
	}
}

func nearestPalette256(c cellmodel.RGB) int {
	return nearestInRange(c, 0, 256)
}

func nearestPalette16(c cellmodel.RGB) int {
	return nearestInRange(c, 0, 16)
}

func nearestInRange(c cellmodel.RGB, lo, hi int) int {
	best, bestDist := lo, -1
	for i := lo; i < hi; i++ {
		entry := defaultPalette[i]
		dr := int(c.R) - int(entry[0])
		dg := int(c.G) - int(entry[1])
		db := int(c.B) - int(entry[2])
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
