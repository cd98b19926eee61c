package vtinput

import "testing"

func mousePress(col, row int) KeyPress {
	return KeyPress{Key: KeyMouse, Data: "\x1b[<0;1;1M", Mouse: &MouseEvent{Col: col, Row: row, Pressed: true}}
}

func TestProcessPassesEventsThroughInOrder(t *testing.T) {
	p := NewKeyProcessor()
	p.Enqueue(KeyPress{Key: KeyRune, Rune: 'a', Data: "a"}, KeyPress{Key: KeyUp, Data: "\x1b[A"})
	out := p.Process()
	if len(out) != 2 || out[0].Rune != 'a' || out[1].Key != KeyUp {
		t.Fatalf("expected both events in arrival order, got %+v", out)
	}
	if len(p.Process()) != 0 {
		t.Fatalf("expected the queue drained")
	}
}

func TestMouseBurstThrottledToTrailingTen(t *testing.T) {
	p := NewKeyProcessor()
	for i := 0; i < 25; i++ {
		p.Enqueue(mousePress(i, 0))
	}
	out := p.Process()
	if len(out) != 10 {
		t.Fatalf("expected the burst cut to 10 events, got %d", len(out))
	}
	if out[0].Mouse.Col != 15 || out[9].Mouse.Col != 24 {
		t.Fatalf("expected the trailing 10 kept, got cols %d..%d", out[0].Mouse.Col, out[9].Mouse.Col)
	}
}

func TestShortMouseRunsAreNotThrottled(t *testing.T) {
	p := NewKeyProcessor()
	for i := 0; i < 9; i++ {
		p.Enqueue(mousePress(i, 0))
	}
	if out := p.Process(); len(out) != 9 {
		t.Fatalf("expected all 9 events kept below the throttle threshold, got %d", len(out))
	}
}

func TestKeyPressesSplitMouseRuns(t *testing.T) {
	p := NewKeyProcessor()
	for i := 0; i < 6; i++ {
		p.Enqueue(mousePress(i, 0))
	}
	p.Enqueue(KeyPress{Key: KeyRune, Rune: 'x', Data: "x"})
	for i := 0; i < 6; i++ {
		p.Enqueue(mousePress(i, 1))
	}
	out := p.Process()
	if len(out) != 13 {
		t.Fatalf("expected two 6-event runs (each under the threshold) plus the key, got %d", len(out))
	}
}

func TestCPRStillProcessedAfterExit(t *testing.T) {
	p := NewKeyProcessor()
	p.RequestExit()
	p.Enqueue(
		KeyPress{Key: KeyRune, Rune: 'q', Data: "q"},
		KeyPress{Key: KeyCPR, Data: "\x1b[12;40R"},
		mousePress(0, 0),
	)
	out := p.Process()
	if len(out) != 1 || out[0].Key != KeyCPR {
		t.Fatalf("expected only the CPR response processed after exit, got %+v", out)
	}
	typeahead := p.Typeahead()
	if len(typeahead) != 2 || typeahead[0].Rune != 'q' || typeahead[1].Key != KeyMouse {
		t.Fatalf("expected the other events preserved as typeahead, got %+v", typeahead)
	}
}
