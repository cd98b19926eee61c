package layout

import (
	"github.com/slatebook/slate/cellmodel"
	"github.com/slatebook/slate/screen"
)

var nextWindowID screen.WindowID = 1

// Window is the leaf container: it renders a single Control, handling line
// wrapping (when WrapLines is set) and advertising a write-position record
// so scrollbar margins and cached containers can locate it.
type Window struct {
	ID        screen.WindowID
	Control   Control
	Style     string
	WrapLines bool
	Char      string // fill character when Control is nil (used by scroll-gap fillers)
}

// NewWindow wraps control in a leaf container, assigning it a fresh
// WindowID used to key write-position/cursor records on the Screen.
func NewWindow(control Control, style string) *Window {
	id := nextWindowID
	nextWindowID++
	return &Window{ID: id, Control: control, Style: style}
}

func (w *Window) Reset() {}

func (w *Window) PreferredWidth(maxAvailableWidth int) Dimension {
	if w.Control == nil {
		return Dimension{Min: 0, Preferred: maxAvailableWidth, Max: maxAvailableWidth, Weight: 1}
	}
	maxLineLen := 0
	for i := 0; i < w.Control.LineCount(); i++ {
		lineLen := 0
		for _, frag := range w.Control.GetLine(i) {
			lineLen += cellmodel.StringWidth(frag.Text)
		}
		if lineLen > maxLineLen {
			maxLineLen = lineLen
		}
	}
	if maxLineLen > maxAvailableWidth {
		maxLineLen = maxAvailableWidth
	}
	return Dimension{Min: 1, Preferred: maxLineLen, Max: maxAvailableWidth, Weight: 1}
}

func (w *Window) PreferredHeight(width, maxAvailableHeight int) Dimension {
	if w.Control == nil {
		return Dimension{Min: 1, Preferred: maxAvailableHeight, Max: maxAvailableHeight, Weight: 1}
	}
	n := w.Control.LineCount()
	if w.WrapLines && width > 0 {
		wrapped := 0
		for i := 0; i < n; i++ {
			lineLen := 0
			for _, frag := range w.Control.GetLine(i) {
				lineLen += cellmodel.StringWidth(frag.Text)
			}
			rows := 1
			if lineLen > 0 {
				rows = (lineLen + width - 1) / width
			}
			wrapped += rows
		}
		n = wrapped
	}
	if n < 1 {
		n = 1
	}
	// Preferred is the full content height, even past maxAvailableHeight:
	// a cached container needs the true height to serve vertical slices,
	// and Distribute caps allocations at Max anyway.
	return Dimension{Min: 1, Preferred: n, Max: maxInt(n, maxAvailableHeight), Weight: 1}
}

// WriteToScreen paints every visible line of the control (or, if Control is
// nil, a flat fill of Char) into wp, records a WindowRenderInfo, and
// registers the control's cursor position on the Screen when it asks to
// show one.
func (w *Window) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	style := parentStyle
	if w.Style != "" {
		style = style + " " + w.Style
	}

	top := wp.Y + wp.BBox.Top
	left := wp.X + wp.BBox.Left
	bottom := wp.Y + wp.Height - wp.BBox.Bottom
	right := wp.X + wp.Width - wp.BBox.Right

	fillChar := w.Char
	if fillChar == "" {
		fillChar = " "
	}

	visible := make(map[int]int)

	row := top
	// The bbox excludes rows already rendered (or out of view); content
	// lines stay aligned with their absolute rows inside the write
	// position, so the first painted row holds line BBox.Top, not line 0.
	lineIdx := wp.BBox.Top
	totalLines := 0
	if w.Control != nil {
		totalLines = w.Control.LineCount()
	}

	for row < bottom {
		col := left
		if w.Control != nil && lineIdx < totalLines {
			for _, frag := range w.Control.GetLine(lineIdx) {
				if frag.Style == ZeroWidthEscape {
					scr.PutEscape(col, row, frag.Text)
					continue
				}
				for _, r := range frag.Text {
					if col >= right {
						break
					}
					cw := cellmodel.RuneWidth(r)
					if cw <= 0 {
						cw = 1
					}
					scr.Put(col, row, cellmodel.NewCell(string(r), style+" "+frag.Style))
					for k := 1; k < cw; k++ {
						scr.Put(col+k, row, cellmodel.Continuation)
					}
					col += cw
				}
			}
			visible[lineIdx] = row
			lineIdx++
		} else if eraseBG {
			for col < right {
				scr.Put(col, row, cellmodel.NewCell(fillChar, style))
				col++
			}
		}
		row++
		if w.Control == nil && !eraseBG {
			break
		}
		if w.Control != nil && lineIdx >= totalLines && !eraseBG {
			break
		}
	}

	info := &screen.WindowRenderInfo{WritePosition: wp, VisibleLineToRow: visible}
	if w.Control != nil {
		if cp := w.Control.CursorPosition(); cp != nil && w.Control.ShowCursor() {
			abs := screen.Point{Row: wp.Y + cp.Row, Col: wp.X + cp.Col}
			info.CursorPosition = &abs
			scr.ShowCursor = true
		}
	}
	scr.WritePositions[w.ID] = info
}

func (w *Window) Children() []Container { return nil }

func (w *Window) KeyBindings() []KeyBinding {
	if w.Control == nil {
		return nil
	}
	return w.Control.KeyBindings()
}
