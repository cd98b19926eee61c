package graphics

import (
	"strings"
	"testing"
)

func TestWrapPassthroughNoMultiplexerIsIdentity(t *testing.T) {
	cmd := "\x1b_Ga=p,i=1\x1b\\"
	if got := WrapPassthrough(cmd, MultiplexerNone); got != cmd {
		t.Fatalf("expected the command unchanged, got %q", got)
	}
}

func TestWrapPassthroughTmuxDoublesEscapes(t *testing.T) {
	got := WrapPassthrough("\x1bXabc\x1b\\", MultiplexerTmux)
	want := "\x1bPtmux;\x1b\x1bXabc\x1b\x1b\\\x1b\\"
	if got != want {
		t.Fatalf("tmux wrap mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestWrapPassthroughScreenChunksAt764Bytes(t *testing.T) {
	cmd := strings.Repeat("x", screenChunkSize+10)
	got := WrapPassthrough(cmd, MultiplexerScreen)

	chunks := strings.Split(got, "\x1b\\")
	// Trailing split element after the last ST is empty.
	if len(chunks) != 3 || chunks[2] != "" {
		t.Fatalf("expected exactly 2 DCS chunks, got %d pieces", len(chunks)-1)
	}
	first := strings.TrimPrefix(chunks[0], "\x1bP")
	second := strings.TrimPrefix(chunks[1], "\x1bP")
	if len(first) != screenChunkSize {
		t.Fatalf("expected the first chunk capped at %d bytes, got %d", screenChunkSize, len(first))
	}
	if len(second) != 10 {
		t.Fatalf("expected a 10-byte remainder chunk, got %d", len(second))
	}
	if first+second != cmd {
		t.Fatalf("expected chunk bodies to reassemble the original command")
	}
}
