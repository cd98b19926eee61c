package layout

import (
	"github.com/slatebook/slate/cellmodel"
	"github.com/slatebook/slate/screen"
)

// LineDecorator draws a single horizontal or vertical line (never both),
// optionally collapsing to zero size when Collapse is set and the
// surrounding layout has no room to spare.
type LineDecorator struct {
	Char       string
	Horizontal bool // true: fills Width, drawn across a row; false: fills Height, down a column
	Collapse   bool
	Style      string
}

func (l *LineDecorator) Reset()                   {}
func (l *LineDecorator) Children() []Container    { return nil }
func (l *LineDecorator) KeyBindings() []KeyBinding { return nil }

func (l *LineDecorator) PreferredWidth(maxAvailableWidth int) Dimension {
	min := 1
	if l.Collapse {
		min = 0
	}
	if l.Horizontal {
		return Dimension{Min: min, Preferred: maxAvailableWidth, Max: maxAvailableWidth, Weight: 1}
	}
	return Dimension{Min: min, Preferred: min, Max: min, Weight: 0}
}

func (l *LineDecorator) PreferredHeight(width, maxAvailableHeight int) Dimension {
	min := 1
	if l.Collapse {
		min = 0
	}
	if l.Horizontal {
		return Dimension{Min: min, Preferred: min, Max: min, Weight: 0}
	}
	return Dimension{Min: min, Preferred: maxAvailableHeight, Max: maxAvailableHeight, Weight: 1}
}

func (l *LineDecorator) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	ch := l.Char
	if ch == "" {
		if l.Horizontal {
			ch = "─"
		} else {
			ch = "│"
		}
	}
	style := parentStyle + " " + l.Style
	cell := cellmodel.NewCell(ch, style)
	for y := wp.Y; y < wp.Y+wp.Height; y++ {
		for x := wp.X; x < wp.X+wp.Width; x++ {
			scr.Put(x, y, cell)
		}
	}
}

// PatternDecorator fills its write position with Char wherever Pattern(x,
// y) reports true, leaving other cells untouched.
type PatternDecorator struct {
	Char    string
	Pattern func(x, y int) bool
	Style   string
}

func (p *PatternDecorator) Reset()                   {}
func (p *PatternDecorator) Children() []Container    { return nil }
func (p *PatternDecorator) KeyBindings() []KeyBinding { return nil }

func (p *PatternDecorator) PreferredWidth(maxAvailableWidth int) Dimension {
	return Dimension{Weight: 1, Max: maxAvailableWidth}
}

func (p *PatternDecorator) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return Dimension{Weight: 1, Max: maxAvailableHeight}
}

func (p *PatternDecorator) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	cell := cellmodel.NewCell(p.Char, parentStyle+" "+p.Style)
	for y := wp.Y; y < wp.Y+wp.Height; y++ {
		for x := wp.X; x < wp.X+wp.Width; x++ {
			if p.Pattern == nil || p.Pattern(x, y) {
				scr.Put(x, y, cell)
			}
		}
	}
}

// ShadowDecorator draws Body, then darkens a one-cell band along its
// right and bottom edges to fake a drop shadow, composing the shadow
// class onto whatever style each cell already carries.
type ShadowDecorator struct {
	Body Container
}

func (s *ShadowDecorator) Reset()                   { s.Body.Reset() }
func (s *ShadowDecorator) Children() []Container    { return []Container{s.Body} }
func (s *ShadowDecorator) KeyBindings() []KeyBinding { return s.Body.KeyBindings() }

func (s *ShadowDecorator) PreferredWidth(maxAvailableWidth int) Dimension {
	return s.Body.PreferredWidth(maxAvailableWidth)
}

func (s *ShadowDecorator) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return s.Body.PreferredHeight(width, maxAvailableHeight)
}

func (s *ShadowDecorator) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	s.Body.WriteToScreen(scr, handlers, wp, parentStyle, eraseBG, zIndex)

	shadowStyle := "class:shadow"
	bottomWP := screen.WritePosition{X: wp.X + 1, Y: wp.Y + wp.Height - 1, Width: wp.Width - 1, Height: 1}
	rightWP := screen.WritePosition{X: wp.X + wp.Width - 1, Y: wp.Y + 1, Width: 1, Height: wp.Height - 1}
	if bottomWP.Width > 0 {
		scr.FillArea(bottomWP, shadowStyle, true)
	}
	if rightWP.Height > 0 {
		scr.FillArea(rightWP, shadowStyle, true)
	}
}

// FrameDecorator draws a border (from GridStyle) around Body unless the
// grid style is empty or ShowBorders returns false, in which case the
// border collapses to zero width and Body fills the whole area.
type FrameDecorator struct {
	Body        Container
	Title       string
	GridStyle   string // empty string means "no border"
	ShowBorders func() bool
	Style       string
}

func (f *FrameDecorator) collapsed() bool {
	return f.GridStyle == "" || (f.ShowBorders != nil && !f.ShowBorders())
}

func (f *FrameDecorator) Reset()                   { f.Body.Reset() }
func (f *FrameDecorator) Children() []Container    { return []Container{f.Body} }
func (f *FrameDecorator) KeyBindings() []KeyBinding { return f.Body.KeyBindings() }

func (f *FrameDecorator) inset() int {
	if f.collapsed() {
		return 0
	}
	return 1
}

func (f *FrameDecorator) PreferredWidth(maxAvailableWidth int) Dimension {
	inset := f.inset()
	d := f.Body.PreferredWidth(maxAvailableWidth - 2*inset)
	return Dimension{Min: d.Min + 2*inset, Preferred: d.Preferred + 2*inset, Max: d.Max + 2*inset, Weight: d.Weight}
}

func (f *FrameDecorator) PreferredHeight(width, maxAvailableHeight int) Dimension {
	inset := f.inset()
	d := f.Body.PreferredHeight(width-2*inset, maxAvailableHeight-2*inset)
	return Dimension{Min: d.Min + 2*inset, Preferred: d.Preferred + 2*inset, Max: d.Max + 2*inset, Weight: d.Weight}
}

func (f *FrameDecorator) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	style := parentStyle + " " + f.Style
	inset := f.inset()
	if inset == 0 {
		f.Body.WriteToScreen(scr, handlers, wp, style, eraseBG, zIndex)
		return
	}

	drawBorder(scr, wp, style, f.Title)

	innerWP := screen.WritePosition{X: wp.X + 1, Y: wp.Y + 1, Width: wp.Width - 2, Height: wp.Height - 2}
	f.Body.WriteToScreen(scr, handlers, innerWP, style, eraseBG, zIndex)
}

func drawBorder(scr *screen.Screen, wp screen.WritePosition, style, title string) {
	if wp.Width < 2 || wp.Height < 2 {
		return
	}
	corner := func(x, y int, ch string) { scr.Put(x, y, cellmodel.NewCell(ch, style)) }
	corner(wp.X, wp.Y, "┌")
	corner(wp.X+wp.Width-1, wp.Y, "┐")
	corner(wp.X, wp.Y+wp.Height-1, "└")
	corner(wp.X+wp.Width-1, wp.Y+wp.Height-1, "┘")

	hCell := cellmodel.NewCell("─", style)
	for x := wp.X + 1; x < wp.X+wp.Width-1; x++ {
		scr.Put(x, wp.Y, hCell)
		scr.Put(x, wp.Y+wp.Height-1, hCell)
	}
	vCell := cellmodel.NewCell("│", style)
	for y := wp.Y + 1; y < wp.Y+wp.Height-1; y++ {
		scr.Put(wp.X, y, vCell)
		scr.Put(wp.X+wp.Width-1, y, vCell)
	}

	if title != "" {
		x := wp.X + 2
		for _, r := range title {
			if x >= wp.X+wp.Width-2 {
				break
			}
			scr.Put(x, wp.Y, cellmodel.NewCell(string(r), style))
			x++
		}
	}
}

// FocusedStyleDecorator composes an extra style onto every cell of Body
// when Focused() or Hover() is true. Hover is tracked by wrapping the
// child's mouse handler and comparing the reported pointer position with
// the last one observed on a MouseMove event.
type FocusedStyleDecorator struct {
	Body       Container
	FocusStyle string
	HoverStyle string
	Focused    func() bool

	lastPos  *screen.Point
	hovering bool
}

func (d *FocusedStyleDecorator) Reset()                   { d.Body.Reset() }
func (d *FocusedStyleDecorator) Children() []Container    { return []Container{d.Body} }
func (d *FocusedStyleDecorator) KeyBindings() []KeyBinding { return d.Body.KeyBindings() }

func (d *FocusedStyleDecorator) PreferredWidth(maxAvailableWidth int) Dimension {
	return d.Body.PreferredWidth(maxAvailableWidth)
}

func (d *FocusedStyleDecorator) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return d.Body.PreferredHeight(width, maxAvailableHeight)
}

func (d *FocusedStyleDecorator) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	d.Body.WriteToScreen(scr, handlers, wp, parentStyle, eraseBG, zIndex)

	extra := ""
	if d.Focused != nil && d.Focused() {
		extra = d.FocusStyle
	} else if d.hovering {
		extra = d.HoverStyle
	}
	if extra != "" {
		scr.FillArea(wp, extra, true)
	}

	if handlers == nil {
		return
	}
	for y := wp.Y; y < wp.Y+wp.Height; y++ {
		for x := wp.X; x < wp.X+wp.Width; x++ {
			inner, ok := handlers.Get(x, y)
			handlers.Set(x, y, d.wrapHover(x, y, inner, ok))
		}
	}
}

func (d *FocusedStyleDecorator) wrapHover(x, y int, inner screen.MouseHandler, hadInner bool) screen.MouseHandler {
	return func(ev screen.MouseEvent) bool {
		if ev.Type == screen.MouseMove {
			d.lastPos = &screen.Point{Row: ev.Position.Row, Col: ev.Position.Col}
			d.hovering = ev.Position.Col == x && ev.Position.Row == y
		}
		if hadInner {
			return inner(ev)
		}
		return false
	}
}
