package vterm

import "testing"

func TestInputAdvancesCursorAndAppliesTemplate(t *testing.T) {
	term := New(3, 10)
	if err := term.Feed([]byte("\x1b[1;38;2;255;0;0mhi")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	h := term.Cell(0, 0)
	if h == nil || h.Char != 'h' || !h.Attrs.Bold {
		t.Fatalf("cell(0,0) = %+v, want bold 'h'", h)
	}
	i := term.Cell(0, 1)
	if i == nil || i.Char != 'i' {
		t.Fatalf("cell(0,1) = %+v, want 'i'", i)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 2 {
		t.Fatalf("CursorPos() = (%d,%d), want (0,2)", row, col)
	}
}

func TestCarriageReturnAndLineFeed(t *testing.T) {
	term := New(3, 10)
	if err := term.Feed([]byte("ab\r\ncd")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	row, col := term.CursorPos()
	if row != 1 || col != 2 {
		t.Fatalf("CursorPos() = (%d,%d), want (1,2)", row, col)
	}
	if c := term.Cell(1, 0); c == nil || c.Char != 'c' {
		t.Fatalf("cell(1,0) = %+v, want 'c'", c)
	}
}

func TestLineFeedClampsAtLastRow(t *testing.T) {
	term := New(2, 5)
	if err := term.Feed([]byte("\r\n\r\n\r\n")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	row, _ := term.CursorPos()
	if row != 1 {
		t.Fatalf("CursorPos row = %d, want clamped to 1", row)
	}
}

func TestClearLineRight(t *testing.T) {
	term := New(1, 5)
	if err := term.Feed([]byte("abcde")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := term.Feed([]byte("\x1b[2G\x1b[K")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if c := term.Cell(0, 1); c == nil || c.Char != ' ' {
		t.Fatalf("cell(0,1) = %+v, want cleared", c)
	}
	if c := term.Cell(0, 0); c == nil || c.Char != 'a' {
		t.Fatalf("cell(0,0) = %+v, want untouched 'a'", c)
	}
}

func TestCursorVisibilityModes(t *testing.T) {
	term := New(1, 5)
	if err := term.Feed([]byte("\x1b[?25l")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if term.CursorVisible() {
		t.Fatalf("expected cursor hidden after DECTCEM off")
	}
	if err := term.Feed([]byte("\x1b[?25h")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if !term.CursorVisible() {
		t.Fatalf("expected cursor visible after DECTCEM on")
	}
}
