package layout

import (
	"testing"

	"github.com/slatebook/slate/screen"
)

func TestPrintingContainerStacksAllChildrenRegardlessOfHeight(t *testing.T) {
	a := NewWindow(textControl("a", "a2"), "")
	b := NewWindow(textControl("b"), "")
	pc := NewPrintingContainer([]Container{a, b}, "")

	scr := screen.New()
	// Request a viewport far too short to hold both children: printing
	// must ignore wp.Height entirely.
	wp := screen.WritePosition{X: 0, Y: 0, Width: 10, Height: 1}
	pc.WriteToScreen(scr, nil, wp, "", true, 0)

	infoA := scr.WritePositions[a.ID]
	infoB := scr.WritePositions[b.ID]
	if infoA.WritePosition.Height != 2 {
		t.Fatalf("expected first child's full 2-line height, got %d", infoA.WritePosition.Height)
	}
	if infoB.WritePosition.Y != infoA.WritePosition.Y+2 {
		t.Fatalf("expected second child directly below the first's full height")
	}
}

func TestPrintingContainerPreferredHeightNeverTruncates(t *testing.T) {
	a := NewWindow(textControl("1", "2", "3"), "")
	pc := NewPrintingContainer([]Container{a}, "")
	d := pc.PreferredHeight(10, 1<<30)
	if d.Preferred != 3 {
		t.Fatalf("expected preferred height 3, got %d", d.Preferred)
	}
	if d.Max != d.Preferred || d.Min != d.Preferred {
		t.Fatalf("expected Min=Preferred=Max for a PrintingContainer, got %+v", d)
	}
}
