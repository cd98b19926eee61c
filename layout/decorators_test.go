package layout

import (
	"strings"
	"testing"

	"github.com/slatebook/slate/screen"
)

func TestLineDecoratorDrawsHorizontalLine(t *testing.T) {
	ld := &LineDecorator{Horizontal: true}
	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 5, Height: 1}
	ld.WriteToScreen(scr, nil, wp, "", true, 0)

	for x := 0; x < 5; x++ {
		cell, ok := scr.Get(x, 0)
		if !ok || cell.Text != "─" {
			t.Fatalf("expected horizontal line char at col %d, got %+v", x, cell)
		}
	}
}

func TestLineDecoratorCollapsesToZeroWhenRequested(t *testing.T) {
	ld := &LineDecorator{Horizontal: true, Collapse: true}
	d := ld.PreferredHeight(10, 10)
	if d.Min != 0 {
		t.Fatalf("expected Min 0 when Collapse is set, got %d", d.Min)
	}
}

func TestPatternDecoratorOnlyFillsWherePatternTrue(t *testing.T) {
	pd := &PatternDecorator{Char: "#", Pattern: func(x, y int) bool { return x%2 == 0 }}
	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 4, Height: 1}
	pd.WriteToScreen(scr, nil, wp, "", true, 0)

	for x := 0; x < 4; x++ {
		cell, ok := scr.Get(x, 0)
		if x%2 == 0 {
			if !ok || cell.Text != "#" {
				t.Fatalf("expected fill at even col %d", x)
			}
		} else if ok {
			t.Fatalf("expected no fill at odd col %d, got %+v", x, cell)
		}
	}
}

func TestShadowDecoratorDarkensRightAndBottomEdge(t *testing.T) {
	body := NewWindow(nil, "")
	body.Char = " "
	sd := &ShadowDecorator{Body: body}
	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 3, Height: 3}
	sd.WriteToScreen(scr, nil, wp, "", true, 0)

	cell, ok := scr.Get(2, 1)
	if !ok || !strings.Contains(cell.Style, "shadow") {
		t.Fatalf("expected the right-edge cell to carry a shadow style, got %+v", cell)
	}
	cell, ok = scr.Get(1, 2)
	if !ok || !strings.Contains(cell.Style, "shadow") {
		t.Fatalf("expected the bottom-edge cell to carry a shadow style, got %+v", cell)
	}
}

func TestFrameDecoratorCollapsesWhenGridStyleEmpty(t *testing.T) {
	body := NewWindow(textControl("x"), "")
	fd := &FrameDecorator{Body: body}
	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 5, Height: 5}
	fd.WriteToScreen(scr, nil, wp, "", true, 0)

	info := scr.WritePositions[body.ID]
	if info.WritePosition.X != wp.X || info.WritePosition.Width != wp.Width {
		t.Fatalf("expected the body to fill the whole area when collapsed, got %+v", info.WritePosition)
	}
}

func TestFrameDecoratorDrawsBorderWhenGridStyleSet(t *testing.T) {
	body := NewWindow(textControl("x"), "")
	fd := &FrameDecorator{Body: body, GridStyle: "class:frame.border"}
	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 5, Height: 5}
	fd.WriteToScreen(scr, nil, wp, "", true, 0)

	corner, ok := scr.Get(0, 0)
	if !ok || corner.Text != "┌" {
		t.Fatalf("expected a top-left corner glyph, got %+v", corner)
	}
	info := scr.WritePositions[body.ID]
	if info.WritePosition.X != 1 || info.WritePosition.Y != 1 {
		t.Fatalf("expected the body inset by 1 cell, got %+v", info.WritePosition)
	}
}

func TestFrameDecoratorCollapsesWhenShowBordersReturnsFalse(t *testing.T) {
	body := NewWindow(textControl("x"), "")
	fd := &FrameDecorator{Body: body, GridStyle: "class:frame.border", ShowBorders: func() bool { return false }}
	if !fd.collapsed() {
		t.Fatalf("expected collapsed() to be true when ShowBorders returns false")
	}
}

func TestFocusedStyleDecoratorAppliesFocusStyleWhenFocused(t *testing.T) {
	body := NewWindow(nil, "")
	body.Char = " "
	fsd := &FocusedStyleDecorator{Body: body, FocusStyle: "class:focused", Focused: func() bool { return true }}
	scr := screen.New()
	wp := screen.WritePosition{X: 0, Y: 0, Width: 2, Height: 1}
	fsd.WriteToScreen(scr, nil, wp, "", true, 0)

	cell, ok := scr.Get(0, 0)
	if !ok || !strings.Contains(cell.Style, "focused") {
		t.Fatalf("expected the focus style to be composed in, got %+v", cell)
	}
}
