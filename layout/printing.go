package layout

import "github.com/slatebook/slate/screen"

// PrintingContainer renders all of its children stacked vertically with no
// scrolling: used when drawing the final "done" frame above the app, where
// every line of history must appear regardless of viewport height.
type PrintingContainer struct {
	children []Container
	style    string
}

func NewPrintingContainer(children []Container, style string) *PrintingContainer {
	return &PrintingContainer{children: children, style: style}
}

func (p *PrintingContainer) Reset() {
	for _, c := range p.children {
		c.Reset()
	}
}

func (p *PrintingContainer) Children() []Container { return p.children }

func (p *PrintingContainer) KeyBindings() []KeyBinding {
	var out []KeyBinding
	for _, c := range p.children {
		out = append(out, c.KeyBindings()...)
	}
	return out
}

func (p *PrintingContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	maxPref := 0
	for _, c := range p.children {
		if d := c.PreferredWidth(maxAvailableWidth); d.Preferred > maxPref {
			maxPref = d.Preferred
		}
	}
	return Dimension{Min: 1, Preferred: maxPref, Max: maxAvailableWidth, Weight: 1}
}

func (p *PrintingContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	total := 0
	for _, c := range p.children {
		total += c.PreferredHeight(width, maxAvailableHeight).Preferred
	}
	// Unlike HSplit, a PrintingContainer never truncates: every line must
	// be reachable when printed above the app.
	return Dimension{Min: total, Preferred: total, Max: total, Weight: 1}
}

// WriteToScreen stacks every child at its full preferred height, ignoring
// wp.Height: the caller (the "run in terminal"/done-frame machinery) is
// expected to have sized the screen tall enough to hold everything.
func (p *PrintingContainer) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	style := parentStyle

	y := wp.Y
	for _, c := range p.children {
		h := c.PreferredHeight(wp.Width, 1<<30).Preferred
		childWP := screen.WritePosition{X: wp.X, Y: y, Width: wp.Width, Height: h}
		c.WriteToScreen(scr, handlers, childWP, style, eraseBG, zIndex)
		y += h
	}
}
