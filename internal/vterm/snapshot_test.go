package vterm

import "testing"

func TestSnapshotDimensionsMatchGrid(t *testing.T) {
	term := New(2, 4)
	if err := term.Feed([]byte("\x1b[1;38;2;255;0;0mhi")); err != nil {
		t.Fatalf("Feed: %v", err)
	}

	img := term.Snapshot()
	bounds := img.Bounds()
	if bounds.Dx() != 4*7 {
		t.Fatalf("image width = %d, want %d", bounds.Dx(), 4*7)
	}
	if bounds.Dy() <= 0 {
		t.Fatalf("image height = %d, want > 0", bounds.Dy())
	}
}

func TestSnapshotPaintsForegroundPixel(t *testing.T) {
	term := New(1, 3)
	if err := term.Feed([]byte("\x1b[38;2;255;0;0mX")); err != nil {
		t.Fatalf("Feed: %v", err)
	}

	// Cell 0 spans x 0-6, y 0-12 (basicfont 7x13); the cursor sits in cell 1.
	img := term.Snapshot()
	painted := false
	for y := 0; y < 13 && !painted; y++ {
		for x := 0; x < 7; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r>>8 != 0 || g>>8 != 0 || b>>8 != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatalf("expected a non-black pixel in the glyph's cell, got an all-black cell")
	}
}
