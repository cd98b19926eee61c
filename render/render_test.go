package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slatebook/slate/cellmodel"
	"github.com/slatebook/slate/internal/vterm"
	"github.com/slatebook/slate/screen"
)

func buildHelloWorld() *screen.Screen {
	s := screen.New()
	for i, r := range "hello" {
		s.Put(i, 0, cellmodel.NewCell(string(r), "bold fg:#ff0000"))
	}
	for i, r := range "world" {
		s.Put(6+i, 0, cellmodel.NewCell(string(r), ""))
	}
	return s
}

func TestRenderStyledWriteAndDiff(t *testing.T) {
	r := New(WithColorDepth(Depth24Bit))
	var buf strings.Builder

	s := buildHelloWorld()
	_, err := r.Render(&buf, s, Size{Cols: 80, Rows: 24}, screen.Point{}, true, false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\x1b[0m") {
		t.Errorf("expected output to begin with reset, got %q", out[:minInt(10, len(out))])
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected %q to contain %q", out, "hello")
	}
	if !strings.Contains(out, "world") {
		t.Errorf("expected %q to contain %q", out, "world")
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("expected bold + red SGR in %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("expected output to end with reset, got %q", out[len(out)-minInt(10, len(out)):])
	}
}

func TestRenderSkipsUnchangedRows(t *testing.T) {
	r := New()
	var first, second strings.Builder

	s1 := buildHelloWorld()
	if _, err := r.Render(&first, s1, Size{Cols: 80, Rows: 24}, screen.Point{}, true, false); err != nil {
		t.Fatalf("first Render: %v", err)
	}

	s2 := buildHelloWorld()
	if _, err := r.Render(&second, s2, Size{Cols: 80, Rows: 24}, screen.Point{}, true, false); err != nil {
		t.Fatalf("second Render: %v", err)
	}

	out := second.String()
	for i := 0; i < len(out); i++ {
		if out[i] == '\x1b' {
			// Skip the escape sequence itself: its final byte (the 'm' of a
			// reset, the 'h' of cursor-show) is not printed content.
			i++
			if i < len(out) && out[i] == '[' {
				for i+1 < len(out) && (out[i+1] < 0x40 || out[i+1] > 0x7e) {
					i++
				}
				i++
			}
			continue
		}
		if ch := out[i]; ch >= 'a' && ch <= 'z' {
			t.Fatalf("expected no printable characters in unchanged re-render, got %q", out)
		}
	}
}

func TestRenderForcesResetOnSizeChange(t *testing.T) {
	r := New()
	var first, second strings.Builder

	s := buildHelloWorld()
	if _, err := r.Render(&first, s, Size{Cols: 80, Rows: 24}, screen.Point{}, true, false); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if _, err := r.Render(&second, s, Size{Cols: 40, Rows: 24}, screen.Point{}, true, false); err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if !strings.Contains(second.String(), "hello") {
		t.Errorf("expected full repaint after resize, got %q", second.String())
	}
}

// TestRenderReplayMatchesScreen replays the bytes Render emits for
// (cur, prev) on a terminal already holding prev and asserts they
// reproduce cur cell-for-cell, using internal/vterm as the oracle.
func TestRenderReplayMatchesScreen(t *testing.T) {
	size := Size{Cols: 20, Rows: 3}
	r := New(WithColorDepth(Depth24Bit))
	term := vterm.New(size.Rows, size.Cols)

	s1 := screen.New()
	s1.Put(0, 0, cellmodel.NewCell("h", "bold fg:#ff0000"))
	s1.Put(1, 0, cellmodel.NewCell("i", "bold fg:#ff0000"))
	var buf1 strings.Builder
	if _, err := r.Render(&buf1, s1, size, screen.Point{}, true, false); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if err := term.Feed([]byte(buf1.String())); err != nil {
		t.Fatalf("first Feed: %v", err)
	}
	if ok, msg := vterm.Equal(term, s1, r.styles); !ok {
		t.Fatalf("first frame mismatch: %s (replay image: %s)", msg, dumpReplay(t, term))
	}

	s2 := screen.New()
	s2.Put(0, 0, cellmodel.NewCell("h", "bold fg:#ff0000"))
	s2.Put(1, 0, cellmodel.NewCell("i", "bold fg:#ff0000"))
	s2.Put(5, 1, cellmodel.NewCell("x", "underline"))
	var buf2 strings.Builder
	if _, err := r.Render(&buf2, s2, size, screen.Point{}, true, false); err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if err := term.Feed([]byte(buf2.String())); err != nil {
		t.Fatalf("second Feed: %v", err)
	}
	if ok, msg := vterm.Equal(term, s2, r.styles); !ok {
		t.Fatalf("second frame mismatch: %s (replay image: %s)", msg, dumpReplay(t, term))
	}
}

// dumpReplay writes a PNG of the replay terminal's grid so a failing diff
// can be inspected visually instead of through cell dumps.
func dumpReplay(t *testing.T, term *vterm.Terminal) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.png")
	f, err := os.Create(path)
	if err != nil {
		return "unavailable: " + err.Error()
	}
	defer f.Close()
	if err := png.Encode(f, term.Snapshot()); err != nil {
		return "unavailable: " + err.Error()
	}
	return path
}
