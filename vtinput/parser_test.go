package vtinput

import "testing"

func TestFeedMixedInput(t *testing.T) {
	// Feeding "A\x1b[31mBC\x1b[0m" must produce exactly KeyPress('A'),
	// KeyPress(SGR red), KeyPress('B'), KeyPress('C'), KeyPress(SGR reset),
	// with the concatenated Data reassembling the input byte for byte.
	p := NewKeyParser()
	presses := p.FeedString("A\x1b[31mBC\x1b[0m")
	presses = append(presses, p.Flush()...)

	var data []string
	for _, kp := range presses {
		data = append(data, kp.Data)
	}
	concat := ""
	for _, d := range data {
		concat += d
	}
	if concat != "A\x1b[31mBC\x1b[0m" {
		t.Fatalf("expected concatenated data to round-trip input, got %q", concat)
	}
	if len(presses) != 5 {
		t.Fatalf("expected 5 key presses, got %d: %+v", len(presses), presses)
	}
	if presses[0].Key != KeyRune || presses[0].Rune != 'A' {
		t.Errorf("expected first press to be rune 'A', got %+v", presses[0])
	}
	if presses[2].Key != KeyRune || presses[2].Rune != 'B' {
		t.Errorf("expected third press to be rune 'B', got %+v", presses[2])
	}
}

func TestArrowKeySequence(t *testing.T) {
	p := NewKeyParser()
	presses := p.FeedString("\x1b[A")
	if len(presses) != 1 || presses[0].Key != KeyUp {
		t.Fatalf("expected single KeyUp, got %+v", presses)
	}
}

func TestStandaloneEscapeFlushedAfterTimeout(t *testing.T) {
	p := NewKeyParser()
	presses := p.FeedString("\x1b")
	if len(presses) != 0 {
		t.Fatalf("expected ESC alone to be buffered pending flush, got %+v", presses)
	}
	if !p.Pending() {
		t.Fatalf("expected parser to report pending ambiguous prefix")
	}
	flushed := p.Flush()
	if len(flushed) != 1 || flushed[0].Key != KeyEscape {
		t.Fatalf("expected flush to commit literal ESC, got %+v", flushed)
	}
}

func TestSGRMouseDecode(t *testing.T) {
	p := NewKeyParser()
	presses := p.FeedString("\x1b[<0;10;20M")
	if len(presses) != 1 || presses[0].Key != KeyMouse {
		t.Fatalf("expected single mouse KeyPress, got %+v", presses)
	}
	m := presses[0].Mouse
	if m == nil || m.Col != 9 || m.Row != 19 || !m.Pressed {
		t.Fatalf("expected decoded mouse event at (9,19) pressed, got %+v", m)
	}
}

func TestCPRResponse(t *testing.T) {
	p := NewKeyParser()
	presses := p.FeedString("\x1b[24;1R")
	if len(presses) != 1 || presses[0].Key != KeyCPR {
		t.Fatalf("expected CPR key press, got %+v", presses)
	}
}

func TestKittyGraphicsStatusResponse(t *testing.T) {
	p := NewKeyParser()
	presses := p.FeedString("\x1b_Gi=4294967295;OK\x1b\\")
	if len(presses) != 1 || presses[0].Key != KeyKittyGraphicsStatusResponse {
		t.Fatalf("expected kitty graphics status response, got %+v", presses)
	}
}
