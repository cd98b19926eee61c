package layout

import "github.com/slatebook/slate/screen"

// Float is a single absolutely-positioned overlay: Content is drawn after
// the base layout at ZIndex, at a position resolved from Left/Top/Right/
// Bottom (nil meaning "unconstrained on that edge").
type Float struct {
	Content                  Container
	Left, Top, Right, Bottom *int
	Width, Height            *int
	ZIndex                   int
}

// FloatContainer renders Body, then queues every Float to draw over it via
// the Screen's z-indexed float queue.
type FloatContainer struct {
	Body   Container
	Floats []*Float
}

func NewFloatContainer(body Container, floats ...*Float) *FloatContainer {
	return &FloatContainer{Body: body, Floats: floats}
}

func (f *FloatContainer) Reset() {
	f.Body.Reset()
	for _, fl := range f.Floats {
		fl.Content.Reset()
	}
}

func (f *FloatContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	return f.Body.PreferredWidth(maxAvailableWidth)
}

func (f *FloatContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return f.Body.PreferredHeight(width, maxAvailableHeight)
}

func (f *FloatContainer) Children() []Container {
	out := []Container{f.Body}
	for _, fl := range f.Floats {
		out = append(out, fl.Content)
	}
	return out
}

func (f *FloatContainer) KeyBindings() []KeyBinding {
	out := f.Body.KeyBindings()
	for _, fl := range f.Floats {
		out = append(out, fl.Content.KeyBindings()...)
	}
	return out
}

func (f *FloatContainer) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	f.Body.WriteToScreen(scr, handlers, wp, parentStyle, eraseBG, zIndex)

	for _, fl := range f.Floats {
		fl := fl
		childWP := floatWritePosition(fl, wp)
		scr.QueueFloat(fl.ZIndex, func(layer *screen.Screen) {
			fl.Content.WriteToScreen(layer, handlers, childWP, parentStyle, false, fl.ZIndex)
		})
	}
}

func floatWritePosition(fl *Float, parent screen.WritePosition) screen.WritePosition {
	width := parent.Width
	if fl.Width != nil {
		width = *fl.Width
	}
	height := parent.Height
	if fl.Height != nil {
		height = *fl.Height
	}

	x := parent.X
	switch {
	case fl.Left != nil:
		x = parent.X + *fl.Left
	case fl.Right != nil:
		x = parent.X + parent.Width - width - *fl.Right
	}
	y := parent.Y
	switch {
	case fl.Top != nil:
		y = parent.Y + *fl.Top
	case fl.Bottom != nil:
		y = parent.Y + parent.Height - height - *fl.Bottom
	}

	return screen.WritePosition{X: x, Y: y, Width: width, Height: height}
}
