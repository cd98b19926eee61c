package layout

import "github.com/slatebook/slate/screen"

// ConditionalContainer shows Body only while Filter returns true; when
// false, it renders as a zero-size container: no preferred size, nothing
// painted, no children reported.
type ConditionalContainer struct {
	Body   Container
	Filter func() bool
}

func NewConditionalContainer(body Container, filter func() bool) *ConditionalContainer {
	return &ConditionalContainer{Body: body, Filter: filter}
}

func (c *ConditionalContainer) enabled() bool {
	return c.Filter == nil || c.Filter()
}

func (c *ConditionalContainer) Reset() { c.Body.Reset() }

func (c *ConditionalContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	if !c.enabled() {
		return Dimension{}
	}
	return c.Body.PreferredWidth(maxAvailableWidth)
}

func (c *ConditionalContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	if !c.enabled() {
		return Dimension{}
	}
	return c.Body.PreferredHeight(width, maxAvailableHeight)
}

func (c *ConditionalContainer) Children() []Container {
	if !c.enabled() {
		return nil
	}
	return []Container{c.Body}
}

func (c *ConditionalContainer) KeyBindings() []KeyBinding {
	if !c.enabled() {
		return nil
	}
	return c.Body.KeyBindings()
}

func (c *ConditionalContainer) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	if !c.enabled() {
		return
	}
	c.Body.WriteToScreen(scr, handlers, wp, parentStyle, eraseBG, zIndex)
}
