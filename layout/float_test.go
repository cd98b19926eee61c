package layout

import (
	"testing"

	"github.com/slatebook/slate/screen"
)

func TestFloatContainerPositionsAgainstNamedEdges(t *testing.T) {
	body := NewWindow(nil, "")
	body.Char = " "
	top, left, width, height := 1, 2, 3, 1
	floatWin := NewWindow(textControl("x"), "")
	fc := NewFloatContainer(body, &Float{Content: floatWin, Top: &top, Left: &left, Width: &width, Height: &height})

	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 10, Height: 10}
	fc.WriteToScreen(scr, nil, wp, "", true, 0)
	scr.DrawAllFloats()

	info := scr.WritePositions[floatWin.ID]
	if info == nil {
		t.Fatalf("expected the float's window to record a write position after DrawAllFloats")
	}
	if info.WritePosition.X != 2 || info.WritePosition.Y != 1 {
		t.Fatalf("expected float at (2,1), got (%d,%d)", info.WritePosition.X, info.WritePosition.Y)
	}
}

func TestFloatContainerResolvesRightAndBottomEdges(t *testing.T) {
	body := NewWindow(nil, "")
	right, bottom, width, height := 1, 1, 3, 2
	floatWin := NewWindow(nil, "")
	fc := NewFloatContainer(body, &Float{Content: floatWin, Right: &right, Bottom: &bottom, Width: &width, Height: &height})

	parent := screen.WritePosition{X: 0, Y: 0, Width: 10, Height: 10}
	wp := floatWritePosition(fc.Floats[0], parent)

	if wp.X != 10-3-1 {
		t.Fatalf("expected float X resolved from the right edge, got %d", wp.X)
	}
	if wp.Y != 10-2-1 {
		t.Fatalf("expected float Y resolved from the bottom edge, got %d", wp.Y)
	}
}

func TestFloatContainerChildrenIncludesBodyAndFloats(t *testing.T) {
	body := NewWindow(nil, "")
	f1 := NewWindow(nil, "")
	fc := NewFloatContainer(body, &Float{Content: f1})

	children := fc.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children (body + 1 float), got %d", len(children))
	}
}
