package graphics

import (
	"testing"

	"github.com/slatebook/slate/screen"
)

func TestStoreDeduplicatesByContentHash(t *testing.T) {
	m := NewImageManager()
	rgba := make([]byte, 16)
	_, id1 := m.Store(rgba, 2, 2)
	_, id2 := m.Store(append([]byte(nil), rgba...), 2, 2)
	if id1 != id2 {
		t.Fatalf("expected identical content to share one id, got %d and %d", id1, id2)
	}
	if m.UsedMemory() != 16 {
		t.Fatalf("expected 16 bytes accounted once, got %d", m.UsedMemory())
	}
}

func TestPruneEvictsLeastRecentlyUsed(t *testing.T) {
	m := NewImageManager()
	m.SetMaxMemory(40)

	a := make([]byte, 16)
	b := make([]byte, 16)
	b[0] = 1
	c := make([]byte, 16)
	c[0] = 2

	_, idA := m.Store(a, 2, 2)
	_, idB := m.Store(b, 2, 2)
	m.Touch(idA)
	_, idC := m.Store(c, 2, 2)

	if m.Image(idB) != nil {
		t.Fatalf("expected the least recently used image evicted")
	}
	if m.Image(idA) == nil || m.Image(idC) == nil {
		t.Fatalf("expected the touched and the newest images kept")
	}
	if m.UsedMemory() != 32 {
		t.Fatalf("expected 32 bytes after eviction, got %d", m.UsedMemory())
	}
}

func TestResetAllDrainsTrackedControllers(t *testing.T) {
	m := NewImageManager()
	kitty := &kittyDirectController{}
	kitty.RenderedLines(solidImage(2, 2), 1, 1, screen.Inset{})
	m.Track(kitty)
	m.Track(disabledController{})

	cmds := m.ResetAll(false)
	if len(cmds) != 1 {
		t.Fatalf("expected one delete sequence (the disabled controller has none), got %d", len(cmds))
	}
	if again := m.ResetAll(false); len(again) != 0 {
		t.Fatalf("expected controllers forgotten after ResetAll, got %d sequences", len(again))
	}
}
