package display

import (
	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// Converter turns a Datum into styled-text rows sized for (width, height),
// e.g. a graphics.Controller's RenderedLines, or a plain text/SVG-to-ASCII
// renderer. Kept pluggable so Display doesn't have to know which kind of
// content it's hosting.
type Converter func(datum Datum, width, height int, fg, bg string, wrap bool) [][]layout.StyledText

type cacheKey struct {
	hash          [32]byte
	width, height int
	fg, bg        string
	wrap          bool
}

// DisplayControl is the layout.Control behind a Display: it resolves its
// render size from the datum's natural size and the fit configuration,
// then caches the converted lines keyed by (hash, width, height, fg, bg,
// wrap) so an unchanged datum never converts twice for the same box.
type DisplayControl struct {
	Datum   Datum
	Convert Converter

	FitWidth, FitHeight       FitMode
	ExpandWidth, ExpandHeight bool
	WrapLines                 bool
	FG, BG                    string

	width, height int
	cache         map[cacheKey][][]layout.StyledText
}

// NewDisplayControl wraps datum with convert, defaulting to SHRINK fit in
// both axes (the common case: never upscale past the terminal, never
// overflow it).
func NewDisplayControl(datum Datum, convert Converter) *DisplayControl {
	return &DisplayControl{
		Datum:     datum,
		Convert:   convert,
		FitWidth:  FitShrink,
		FitHeight: FitShrink,
		cache:     make(map[cacheKey][][]layout.StyledText),
	}
}

// Resize recomputes the render size for the given available space. Called
// by the Display container before painting, since a Control has no
// Screen-write-position of its own to consult.
func (d *DisplayControl) Resize(availableWidth, availableHeight int) {
	aw, ah := availableWidth, availableHeight
	available := Size{Width: &aw, Height: &ah}
	w, h := ResolveSize(d.Datum.naturalSize(), available, d.FitWidth, d.FitHeight)
	d.width, d.height = availableWidth, availableHeight
	if w != nil {
		d.width = *w
	}
	if h != nil {
		d.height = *h
	}
	if d.ExpandWidth && d.width < availableWidth {
		d.width = availableWidth
	}
	if d.ExpandHeight && d.height < availableHeight {
		d.height = availableHeight
	}
}

func (d *DisplayControl) lines() [][]layout.StyledText {
	key := cacheKey{d.Datum.Hash, d.width, d.height, d.FG, d.BG, d.WrapLines}
	if cached, ok := d.cache[key]; ok {
		return cached
	}
	rendered := d.Convert(d.Datum, d.width, d.height, d.FG, d.BG, d.WrapLines)
	d.cache[key] = rendered
	return rendered
}

func (d *DisplayControl) GetLine(i int) []layout.StyledText {
	lines := d.lines()
	if i < 0 || i >= len(lines) {
		return nil
	}
	return lines[i]
}

func (d *DisplayControl) LineCount() int                    { return len(d.lines()) }
func (d *DisplayControl) CursorPosition() *screen.Point     { return nil }
func (d *DisplayControl) ShowCursor() bool                  { return false }
func (d *DisplayControl) IsFocusable() bool                 { return false }
func (d *DisplayControl) KeyBindings() []layout.KeyBinding  { return nil }

// scrollbarControl renders a single-column scrollbar next to a Display's
// body, with a thumb sized by the ratio of visible to total lines. The
// thumb is always drawn from the top row; no scroll offset is consulted.
type scrollbarControl struct {
	body *DisplayControl
}

func (s *scrollbarControl) GetLine(i int) []layout.StyledText {
	total := s.body.LineCount()
	visible := s.body.height
	if total <= 0 || visible <= 0 || i < 0 || i >= visible {
		return []layout.StyledText{{Text: " "}}
	}
	thumbSize := visible * visible / maxInt(total, 1)
	if thumbSize < 1 {
		thumbSize = 1
	}
	if i < thumbSize {
		return []layout.StyledText{{Style: "class:scrollbar.button", Text: "█"}}
	}
	return []layout.StyledText{{Style: "class:scrollbar.track", Text: "│"}}
}

func (s *scrollbarControl) LineCount() int                   { return s.body.height }
func (s *scrollbarControl) CursorPosition() *screen.Point    { return nil }
func (s *scrollbarControl) ShowCursor() bool                 { return false }
func (s *scrollbarControl) IsFocusable() bool                { return false }
func (s *scrollbarControl) KeyBindings() []layout.KeyBinding { return nil }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Display is a container whose body is a DisplayControl plus an optional
// scrollbar column.
type Display struct {
	body          *DisplayControl
	bodyWindow    *layout.Window
	scrollWindow  *layout.Window
	ShowScrollbar bool
}

func NewDisplay(body *DisplayControl, showScrollbar bool) *Display {
	return &Display{
		body:          body,
		bodyWindow:    layout.NewWindow(body, ""),
		scrollWindow:  layout.NewWindow(&scrollbarControl{body: body}, "class:scrollbar"),
		ShowScrollbar: showScrollbar,
	}
}

func (d *Display) Reset() { d.bodyWindow.Reset() }

func (d *Display) PreferredWidth(maxAvailableWidth int) layout.Dimension {
	w := maxAvailableWidth
	if d.ShowScrollbar {
		w--
	}
	dim := d.bodyWindow.PreferredWidth(w)
	if d.ShowScrollbar {
		dim.Preferred++
		dim.Max++
	}
	return dim
}

func (d *Display) PreferredHeight(width, maxAvailableHeight int) layout.Dimension {
	return d.bodyWindow.PreferredHeight(width, maxAvailableHeight)
}

func (d *Display) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	bodyWidth := wp.Width
	if d.ShowScrollbar && wp.Width > 1 {
		bodyWidth = wp.Width - 1
	}
	d.body.Resize(bodyWidth, wp.Height)

	bodyWP := wp
	bodyWP.Width = bodyWidth
	d.bodyWindow.WriteToScreen(scr, handlers, bodyWP, parentStyle, eraseBG, zIndex)

	if d.ShowScrollbar && wp.Width > 1 {
		scrollWP := wp
		scrollWP.X = wp.X + bodyWidth
		scrollWP.Width = 1
		d.scrollWindow.WriteToScreen(scr, handlers, scrollWP, parentStyle, eraseBG, zIndex)
	}
}

func (d *Display) Children() []layout.Container {
	if d.ShowScrollbar {
		return []layout.Container{d.bodyWindow, d.scrollWindow}
	}
	return []layout.Container{d.bodyWindow}
}

func (d *Display) KeyBindings() []layout.KeyBinding { return d.bodyWindow.KeyBindings() }
