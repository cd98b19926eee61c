package screen

import (
	"testing"

	"github.com/slatebook/slate/cellmodel"
)

func TestPutGet(t *testing.T) {
	s := New()
	s.Put(2, 3, cellmodel.NewCell("x", "bold"))
	cell, ok := s.Get(2, 3)
	if !ok || cell.Text != "x" {
		t.Fatalf("expected cell at (2,3), got %+v ok=%v", cell, ok)
	}
	if _, ok := s.Get(0, 0); ok {
		t.Error("expected no cell at untouched coordinate")
	}
}

func TestFillAreaRespectsBBox(t *testing.T) {
	s := New()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			s.Put(x, y, cellmodel.NewCell("a", "base"))
		}
	}
	wp := WritePosition{X: 0, Y: 0, Width: 3, Height: 3, BBox: Inset{Top: 1, Left: 1}}
	s.FillArea(wp, "extra", false)

	excluded, _ := s.Get(0, 0)
	if excluded.Style != "base" {
		t.Errorf("expected bbox-excluded cell untouched, got style %q", excluded.Style)
	}
	filled, _ := s.Get(2, 2)
	if filled.Style != "extra base" {
		t.Errorf("expected prepended style, got %q", filled.Style)
	}
}

func TestDrawAllFloatsOrderingAndFlatten(t *testing.T) {
	s := New()
	s.Put(0, 0, cellmodel.NewCell("base", ""))

	s.QueueFloat(1, func(layer *Screen) {
		layer.Put(0, 0, cellmodel.NewCell("low", ""))
	})
	s.QueueFloat(2, func(layer *Screen) {
		layer.Put(0, 0, cellmodel.NewCell("high", ""))
	})

	s.DrawAllFloats()

	cell, ok := s.Get(0, 0)
	if !ok || cell.Text != "high" {
		t.Errorf("expected higher z-index float to win, got %+v", cell)
	}
	if len(s.floats) != 0 {
		t.Error("expected float queue drained")
	}
}

func TestChainBufferReadPrefersTopLayer(t *testing.T) {
	base := New()
	base.Put(0, 0, cellmodel.NewCell("base", ""))
	chain := &ChainBuffer{base: base}

	low := New()
	low.Put(0, 0, cellmodel.NewCell("low", ""))
	high := New()
	high.Put(1, 0, cellmodel.NewCell("high", ""))
	chain.layers = []*Screen{low, high}

	if cell, _ := chain.Read(0, 0); cell.Text != "low" {
		t.Errorf("expected low layer cell at (0,0), got %q", cell.Text)
	}
	if cell, _ := chain.Read(1, 0); cell.Text != "high" {
		t.Errorf("expected high layer cell at (1,0), got %q", cell.Text)
	}
	if cell, ok := chain.Read(5, 5); ok || cell.Text != "" {
		t.Errorf("expected miss to fall through to base, got %+v ok=%v", cell, ok)
	}
}
