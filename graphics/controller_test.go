package graphics

import (
	"strings"
	"testing"

	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

func solidImage(w, h int) *Image {
	rgba := make([]byte, w*h*4)
	for i := 0; i < len(rgba); i += 4 {
		rgba[i] = 255
		rgba[i+3] = 255
	}
	return &Image{PixelWidth: w, PixelHeight: h, RGBA: rgba}
}

func TestSelectControllerMatrix(t *testing.T) {
	tests := []struct {
		name string
		caps TerminalCapabilities
		want string
	}{
		{"kitty outside multiplexer", TerminalCapabilities{Kitty: true}, "*graphics.kittyDirectController"},
		{"kitty inside tmux", TerminalCapabilities{Kitty: true, Multiplexer: MultiplexerTmux}, "*graphics.kittyPlaceholderController"},
		{"iterm", TerminalCapabilities{Iterm: true}, "*graphics.itermController"},
		{"sixel", TerminalCapabilities{Sixel: true}, "*graphics.sixelController"},
		{"kitty preferred over sixel", TerminalCapabilities{Kitty: true, Sixel: true}, "*graphics.kittyDirectController"},
		{"nothing supported", TerminalCapabilities{}, "graphics.disabledController"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := typeName(SelectController(tt.caps))
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func typeName(c Controller) string {
	switch c.(type) {
	case *kittyDirectController:
		return "*graphics.kittyDirectController"
	case *kittyPlaceholderController:
		return "*graphics.kittyPlaceholderController"
	case *itermController:
		return "*graphics.itermController"
	case *sixelController:
		return "*graphics.sixelController"
	case disabledController:
		return "graphics.disabledController"
	default:
		return "unknown"
	}
}

func firstEscape(grid [][]layout.StyledText) string {
	for _, row := range grid {
		for _, frag := range row {
			if frag.Style == layout.ZeroWidthEscape {
				return frag.Text
			}
		}
	}
	return ""
}

func TestKittyPlacementCarriesCropOffsets(t *testing.T) {
	img := solidImage(100, 100)
	c := &kittyDirectController{}

	// 10x10 cell viewport with the top-left 3x3 cells clipped by a float.
	grid := c.RenderedLines(img, 10, 10, screen.Inset{Top: 3, Left: 3})
	if len(grid) != 7 {
		t.Fatalf("expected 7 visible rows, got %d", len(grid))
	}
	esc := firstEscape(grid)
	for _, want := range []string{"x=30", "y=30", "w=70", "h=70", "c=7", "r=7"} {
		if !strings.Contains(esc, want) {
			t.Errorf("placement missing %q in %q", want, esc)
		}
	}
}

func TestFullyClippedGraphicProducesNoPayload(t *testing.T) {
	img := solidImage(100, 100)
	controllers := []Controller{
		&kittyDirectController{},
		&sixelController{cellPixelWidth: 10, cellPixelHeight: 10},
		&itermController{cellPixelWidth: 10, cellPixelHeight: 10},
	}
	for _, c := range controllers {
		if grid := c.RenderedLines(img, 10, 10, screen.Inset{Left: 10}); grid != nil {
			t.Errorf("%s: expected no rows for a zero-width clip", typeName(c))
		}
		if grid := c.RenderedLines(img, 10, 10, screen.Inset{Top: 6, Bottom: 4}); grid != nil {
			t.Errorf("%s: expected no rows for a zero-height clip", typeName(c))
		}
	}
}

func TestKittyDirectTransmitsImageOnlyOnce(t *testing.T) {
	img := solidImage(10, 10)
	c := &kittyDirectController{}
	first := firstEscape(c.RenderedLines(img, 5, 5, screen.Inset{}))
	second := firstEscape(c.RenderedLines(img, 5, 5, screen.Inset{}))
	if !strings.Contains(first, "a=t") {
		t.Fatalf("expected the first render to transmit the image")
	}
	if strings.Contains(second, "a=t") {
		t.Fatalf("expected later renders to place without retransmitting")
	}
	if !strings.Contains(second, "a=p") {
		t.Fatalf("expected later renders to still emit a placement")
	}
}

func TestKittyResetEmitsDeleteUnlessLeavingGraphics(t *testing.T) {
	img := solidImage(10, 10)
	c := &kittyDirectController{}
	c.RenderedLines(img, 5, 5, screen.Inset{})

	if got := c.Reset(true); got != "" {
		t.Fatalf("expected no delete sequence when leaving graphics behind, got %q", got)
	}
	if got := c.Reset(false); !strings.Contains(got, "a=D") {
		t.Fatalf("expected a delete sequence, got %q", got)
	}
}

func TestSixelPayloadWrappedForTmux(t *testing.T) {
	img := solidImage(6, 6)
	c := &sixelController{mplex: MultiplexerTmux, cellPixelWidth: 3, cellPixelHeight: 6}
	esc := firstEscape(c.RenderedLines(img, 2, 1, screen.Inset{}))
	if !strings.HasPrefix(esc, "\x1bPtmux;") {
		t.Fatalf("expected a tmux passthrough envelope, got %q", esc)
	}
	if !strings.HasSuffix(esc, "\x1b\\") {
		t.Fatalf("expected an ST-terminated envelope, got %q", esc)
	}
}

func TestItermPayloadReportsDisplayCellSize(t *testing.T) {
	img := solidImage(20, 20)
	c := &itermController{cellPixelWidth: 2, cellPixelHeight: 4}
	esc := firstEscape(c.RenderedLines(img, 10, 5, screen.Inset{}))
	if !strings.Contains(esc, "\x1b]1337;File=inline=1;width=10;height=5") {
		t.Fatalf("unexpected iTerm payload prefix %q", esc)
	}
}

func TestPlaceholderGridCoversEveryVisibleCell(t *testing.T) {
	img := solidImage(8, 8)
	c := &kittyPlaceholderController{placements: make(map[[2]int]bool)}
	grid := c.RenderedLines(img, 4, 2, screen.Inset{Left: 1})
	if len(grid) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(grid))
	}
	glyphs := 0
	for _, row := range grid {
		for _, frag := range row {
			if frag.Style != layout.ZeroWidthEscape && strings.Contains(frag.Text, kittyPlaceholderGlyph) {
				glyphs++
			}
		}
	}
	if glyphs != 6 {
		t.Fatalf("expected a placeholder glyph in each of the 3x2 visible cells, got %d", glyphs)
	}
}

func TestCropRGBATrimsToClipRegion(t *testing.T) {
	img := solidImage(10, 10)
	// Mark pixel (2, 2) so the crop's new origin is checkable.
	img.RGBA[(2*10+2)*4+1] = 200

	out := cropRGBA(img, screen.Inset{Top: 1, Left: 1}, 5, 5, 2, 2)
	if out.PixelWidth != 8 || out.PixelHeight != 8 {
		t.Fatalf("expected an 8x8 crop, got %dx%d", out.PixelWidth, out.PixelHeight)
	}
	if out.RGBA[1] != 200 {
		t.Fatalf("expected the marked pixel at the new origin")
	}
}
