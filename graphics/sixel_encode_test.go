package graphics

import (
	"strconv"
	"strings"
	"testing"
)

func TestEncodeSixelFramesThePayload(t *testing.T) {
	img := solidImage(2, 2)
	out := EncodeSixel(img.RGBA, 2, 2)
	if !strings.HasPrefix(out, "\x1bP0;0;0q") {
		t.Fatalf("expected a DCS sixel introducer, got %q", out)
	}
	if !strings.HasSuffix(out, "\x1b\\") {
		t.Fatalf("expected an ST terminator, got %q", out)
	}
}

func TestEncodeSixelDeclaresEachColorOnce(t *testing.T) {
	// 1x12 column of red: spans two 6-row bands using the same colour.
	rgba := make([]byte, 12*4)
	for i := 0; i < len(rgba); i += 4 {
		rgba[i] = 255
		rgba[i+3] = 255
	}
	out := EncodeSixel(rgba, 1, 12)

	idx := nearestPaletteIndex(255, 0, 0)
	declaration := "#" + strconv.Itoa(idx) + ";2;"
	if strings.Count(out, declaration) != 1 {
		t.Fatalf("expected the palette declaration exactly once, got %d in %q", strings.Count(out, declaration), out)
	}
	if strings.Count(out, "-") != 2 {
		t.Fatalf("expected 2 band separators for 12 rows, got %d", strings.Count(out, "-"))
	}
}

func TestEncodeSixelSkipsTransparentPixels(t *testing.T) {
	// One opaque pixel next to one fully transparent one.
	rgba := []byte{255, 255, 255, 255, 0, 0, 0, 0}
	out := EncodeSixel(rgba, 2, 1)

	body := strings.TrimPrefix(out, "\x1bP0;0;0q")
	// The opaque column carries bit 0 (row 0 of the band): 63+1. The
	// transparent column must encode as an empty sixel: 63+0.
	if !strings.Contains(body, "@?") {
		t.Fatalf("expected an opaque-then-empty column pair, got %q", body)
	}
}

func TestEncodeSixelDeclaresGreysInHLS(t *testing.T) {
	// A mid-grey lands on the greyscale ramp (index >= 16), which is
	// declared in the HLS colour space rather than RGB.
	rgba := []byte{128, 128, 128, 255}
	out := EncodeSixel(rgba, 1, 1)

	idx := nearestPaletteIndex(128, 128, 128)
	if idx < 16 {
		t.Fatalf("expected a greyscale-ramp index, got %d", idx)
	}
	want := "#" + strconv.Itoa(idx) + ";1;0;"
	if !strings.Contains(out, want) {
		t.Fatalf("expected an HLS declaration %q in %q", want, out)
	}
}

func TestHLSToRGBGreyAxis(t *testing.T) {
	tests := []struct {
		l    int
		want uint8
	}{
		{0, 0},
		{50, 127},
		{100, 255},
	}
	for _, tt := range tests {
		got := hlsToRGB(0, tt.l, 0)
		if got.R != tt.want || got.G != tt.want || got.B != tt.want {
			t.Errorf("hlsToRGB(0,%d,0) = %+v, want grey %d", tt.l, got, tt.want)
		}
	}
}

func TestHLSToRGBFullSaturationResolvesAHue(t *testing.T) {
	got := hlsToRGB(120, 50, 100)
	if got.R == got.G && got.G == got.B {
		t.Fatalf("expected a chromatic colour at full saturation, got %+v", got)
	}
}

func TestNearestPaletteIndexExactMatches(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    int
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 15},
		{255, 0, 0, 10},
	}
	for _, tt := range tests {
		if got := nearestPaletteIndex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("nearestPaletteIndex(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
