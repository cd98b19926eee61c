package layout

import "github.com/slatebook/slate/screen"

// HSplit stacks its children vertically (rows), VSplit stacks them
// horizontally (columns); both share the same distribution logic, applying
// Distribute to the children's preferred sizes along the split axis and
// passing the full cross-axis size through to each child.
type HSplit struct {
	children []Container
	padding  int
	style    string
}

// NewHSplit stacks children top-to-bottom, inserting padding blank rows
// between adjacent children.
func NewHSplit(children []Container, padding int, style string) *HSplit {
	return &HSplit{children: children, padding: padding, style: style}
}

func (s *HSplit) Reset() {
	for _, c := range s.children {
		c.Reset()
	}
}

func (s *HSplit) Children() []Container { return s.children }

func (s *HSplit) KeyBindings() []KeyBinding {
	var out []KeyBinding
	for _, c := range s.children {
		out = append(out, c.KeyBindings()...)
	}
	return out
}

func (s *HSplit) PreferredWidth(maxAvailableWidth int) Dimension {
	maxPref, maxMax := 0, 0
	for _, c := range s.children {
		d := c.PreferredWidth(maxAvailableWidth)
		if d.Preferred > maxPref {
			maxPref = d.Preferred
		}
		if d.Max > maxMax {
			maxMax = d.Max
		}
	}
	return Dimension{Min: 1, Preferred: maxPref, Max: maxMax, Weight: 1}
}

func (s *HSplit) PreferredHeight(width, maxAvailableHeight int) Dimension {
	total := s.padding * maxInt(0, len(s.children)-1)
	for _, c := range s.children {
		total += c.PreferredHeight(width, maxAvailableHeight).Preferred
	}
	if total > maxAvailableHeight {
		total = maxAvailableHeight
	}
	return Dimension{Min: len(s.children), Preferred: total, Max: maxAvailableHeight, Weight: 1}
}

func (s *HSplit) dims(width, availableHeight int) []Dimension {
	dims := make([]Dimension, len(s.children))
	for i, c := range s.children {
		dims[i] = c.PreferredHeight(width, availableHeight)
	}
	return dims
}

func (s *HSplit) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	style := parentStyle
	if s.style != "" {
		style = style + " " + s.style
	}

	budget := wp.Height - s.padding*maxInt(0, len(s.children)-1)
	if budget < 0 {
		budget = 0
	}
	sizes, ok := Distribute(budget, s.dims(wp.Width, budget))
	if !ok {
		sizes = make([]int, len(s.children))
	}

	y := wp.Y
	for i, c := range s.children {
		h := sizes[i]
		childWP := screen.WritePosition{X: wp.X, Y: y, Width: wp.Width, Height: h}
		c.WriteToScreen(scr, handlers, childWP, style, eraseBG, zIndex)
		y += h + s.padding
	}
}

// VSplit is HSplit's column-axis twin.
type VSplit struct {
	children []Container
	padding  int
	style    string
}

func NewVSplit(children []Container, padding int, style string) *VSplit {
	return &VSplit{children: children, padding: padding, style: style}
}

func (s *VSplit) Reset() {
	for _, c := range s.children {
		c.Reset()
	}
}

func (s *VSplit) Children() []Container { return s.children }

func (s *VSplit) KeyBindings() []KeyBinding {
	var out []KeyBinding
	for _, c := range s.children {
		out = append(out, c.KeyBindings()...)
	}
	return out
}

func (s *VSplit) PreferredWidth(maxAvailableWidth int) Dimension {
	total := s.padding * maxInt(0, len(s.children)-1)
	for _, c := range s.children {
		total += c.PreferredWidth(maxAvailableWidth).Preferred
	}
	if total > maxAvailableWidth {
		total = maxAvailableWidth
	}
	return Dimension{Min: len(s.children), Preferred: total, Max: maxAvailableWidth, Weight: 1}
}

func (s *VSplit) PreferredHeight(width, maxAvailableHeight int) Dimension {
	maxPref, maxMax := 0, 0
	for _, c := range s.children {
		d := c.PreferredHeight(width, maxAvailableHeight)
		if d.Preferred > maxPref {
			maxPref = d.Preferred
		}
		if d.Max > maxMax {
			maxMax = d.Max
		}
	}
	return Dimension{Min: 1, Preferred: maxPref, Max: maxMax, Weight: 1}
}

func (s *VSplit) dims(maxAvailableWidth int) []Dimension {
	dims := make([]Dimension, len(s.children))
	for i, c := range s.children {
		dims[i] = c.PreferredWidth(maxAvailableWidth)
	}
	return dims
}

func (s *VSplit) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	style := parentStyle
	if s.style != "" {
		style = style + " " + s.style
	}

	budget := wp.Width - s.padding*maxInt(0, len(s.children)-1)
	if budget < 0 {
		budget = 0
	}
	sizes, ok := Distribute(budget, s.dims(budget))
	if !ok {
		sizes = make([]int, len(s.children))
	}

	x := wp.X
	for i, c := range s.children {
		w := sizes[i]
		childWP := screen.WritePosition{X: x, Y: wp.Y, Width: w, Height: wp.Height}
		c.WriteToScreen(scr, handlers, childWP, style, eraseBG, zIndex)
		x += w + s.padding
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
