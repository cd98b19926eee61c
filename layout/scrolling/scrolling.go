// Package scrolling implements the ScrollingContainer: a container that
// displays a long, possibly dynamic sequence of children, rendering and
// keeping in the layout only the ones whose rendered region intersects the
// viewport.
package scrolling

import (
	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/layout/cached"
	"github.com/slatebook/slate/screen"
)

// ChildrenFunc returns the current sequence of children to display. It is
// polled on first use, and again on later calls only while it has yielded
// no children; the container has no way to mark a non-empty list stale, so
// later changes to a non-empty sequence are not picked up.
type ChildrenFunc func() []layout.Container

// Container displays a long, possibly dynamic sequence of children,
// rendering only the ones whose region intersects the viewport and keeping
// per-child position and size bookkeeping across frames.
type Container struct {
	childrenFunc ChildrenFunc
	childCache   map[layout.Container]*cached.CachedContainer
	children     []*cached.CachedContainer
	refresh      bool

	selectedStart, selectedStop int
	selectedChildPosition       int

	visibleIndices map[int]bool
	indexPositions map[int]*int

	scrolling int

	lastWidth, lastHeight int
	lastTotalHeight       int

	style string

	// IsFocused reports whether the container itself currently holds
	// focus; exposed as a field so a host app can wire it to its own focus
	// tracking without this package depending on a layout engine.
	IsFocused func() bool
	// Focus is called to move focus to a child container when one is
	// selected by a mouse click.
	Focus func(layout.Container)
}

// New constructs a ScrollingContainer over childrenFunc.
func New(childrenFunc ChildrenFunc, style string) *Container {
	return &Container{
		childrenFunc:   childrenFunc,
		childCache:     make(map[layout.Container]*cached.CachedContainer),
		refresh:        true,
		selectedStart:  0,
		selectedStop:   1,
		visibleIndices: map[int]bool{0: true},
		indexPositions: make(map[int]*int),
		style:          style,
	}
}

func (c *Container) Reset() {
	for _, ch := range c.allChildren() {
		ch.Reset()
	}
}

func (c *Container) PreferredWidth(maxAvailableWidth int) layout.Dimension {
	return layout.Dimension{Weight: 1, Max: maxAvailableWidth}
}

func (c *Container) PreferredHeight(width, maxAvailableHeight int) layout.Dimension {
	return layout.Dimension{Weight: 1, Max: maxAvailableHeight}
}

func (c *Container) Children() []layout.Container {
	c.allChildren()
	var out []layout.Container
	for i := range c.visibleIndices {
		if i < len(c.children) {
			out = append(out, c.children[i])
		}
	}
	return out
}

func (c *Container) KeyBindings() []layout.KeyBinding { return nil }

// allChildren refreshes the child list from childrenFunc if stale, wrapping
// every new child in a CachedContainer and releasing caches for children
// the factory no longer yields.
func (c *Container) allChildren() []*cached.CachedContainer {
	if !c.refresh && len(c.children) > 0 {
		return c.children
	}
	c.refresh = false

	raw := c.childrenFunc()
	newChildren := make([]*cached.CachedContainer, 0, len(raw))
	seen := make(map[layout.Container]bool, len(raw))
	for _, ch := range raw {
		wrapped, ok := c.childCache[ch]
		if !ok {
			wrapped = cached.New(ch, c.mouseHandlerWrapper)
			c.childCache[ch] = wrapped
		}
		newChildren = append(newChildren, wrapped)
		seen[ch] = true
	}
	for ch := range c.childCache {
		if !seen[ch] {
			delete(c.childCache, ch)
		}
	}
	c.children = newChildren

	for i := range c.indexPositions {
		if i >= len(c.children) {
			delete(c.indexPositions, i)
		}
	}
	return c.children
}

func (c *Container) getChild(index int) *cached.CachedContainer {
	children := c.allChildren()
	if len(children) == 0 {
		return cached.New(layout.NewWindow(nil, ""), nil)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(children) {
		index = len(children) - 1
	}
	return children[index]
}

func (c *Container) knownSizes() []int {
	children := c.allChildren()
	sizes := make([]int, len(children))
	sum, known := 0, 0
	missing := make([]int, 0)
	for i, ch := range children {
		if ch.Height > 0 {
			sizes[i] = ch.Height
			sum += ch.Height
			known++
		} else {
			missing = append(missing, i)
		}
	}
	avg := 0
	if known > 0 {
		avg = sum / known
	}
	for _, i := range missing {
		sizes[i] = avg
	}
	return sizes
}

// Scroll applies an n-row delta (positive n scrolls content down,
// revealing earlier rows), returning false ("not-handled") when the top
// child is already flush at the top or the bottom child's bottom already
// sits at the viewport bottom, so callers can degrade to terminal
// scrollback.
func (c *Container) Scroll(n int) bool {
	if n > 0 {
		if c.visibleIndices[0] {
			pos := c.indexPositions[0]
			if pos != nil {
				allowed := 0 - *pos - c.scrolling
				if n > allowed {
					n = allowed
				}
				if *pos+c.scrolling+n > 0 {
					return false
				}
			}
		}
	} else if n < 0 {
		bottomIndex := len(c.allChildren()) - 1
		if bottomIndex >= 0 && c.visibleIndices[bottomIndex] {
			bottomChild := c.getChild(bottomIndex)
			if pos := c.indexPositions[bottomIndex]; pos != nil {
				allowed := c.lastHeight - (*pos + bottomChild.Height + c.scrolling)
				if n < allowed {
					n = allowed
				}
				if *pos+bottomChild.Height+c.scrolling+n < c.lastHeight {
					return false
				}
			}
		}
	}
	if n == 0 {
		return false
	}
	c.scrolling += n
	return true
}

// mouseScrollHandler translates unhandled SCROLL_UP/SCROLL_DOWN events
// into Scroll(±1).
func (c *Container) mouseScrollHandler(ev screen.MouseEvent) bool {
	switch ev.Type {
	case screen.ScrollDown:
		return c.Scroll(-1)
	case screen.ScrollUp:
		return c.Scroll(1)
	}
	return false
}

func (c *Container) mouseHandlerWrapper(inner screen.MouseHandler, child *cached.CachedContainer) screen.MouseHandler {
	return func(ev screen.MouseEvent) bool {
		handled := inner(ev)
		if !handled {
			switch ev.Type {
			case screen.ScrollDown:
				handled = c.Scroll(-1)
			case screen.ScrollUp:
				handled = c.Scroll(1)
			}
		}
		if !handled {
			return false
		}
		if ev.Type == screen.MouseDown {
			index := c.indexOf(child)
			if index >= 0 {
				extend := ev.Modifiers&(screen.ModShift|screen.ModControl) != 0
				c.Select(index, extend)
				if c.Focus != nil {
					c.Focus(child.Content)
				}
			}
		}
		return true
	}
}

func (c *Container) indexOf(target *cached.CachedContainer) int {
	for i, ch := range c.children {
		if ch == target {
			return i
		}
	}
	return -1
}

// Select sets the selected child, extending the current selection when
// extend is true (Shift/Control held).
func (c *Container) Select(index int, extend bool) {
	if extend {
		if index < c.selectedStart {
			c.selectedStart = index
		}
		if index+1 > c.selectedStop {
			c.selectedStop = index + 1
		}
		return
	}
	c.selectedStart = index
	c.selectedStop = index + 1
}

// WriteToScreen runs the per-frame pipeline: compute
// heights, apply and clamp scrolling, render downward then upward from the
// selected child, and fill any gap below or above the rendered children.
// The selected child's cursor row is not consulted when positioning it, and
// no render-info record is published for the container itself.
func (c *Container) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	c.lastWidth, c.lastHeight = wp.Width, wp.Height

	style := parentStyle
	if c.style != "" {
		style = style + " " + c.style
	}

	for i := c.selectedStart; i < c.selectedStop; i++ {
		if c.scrolling == 0 {
			c.getChild(i).Invalidate()
		}
		c.indexPositions[i] = nil
	}

	heights := c.knownSizes()
	totalHeight := 0
	for _, h := range heights {
		totalHeight += h
	}
	if c.scrolling != 0 || totalHeight != c.lastTotalHeight {
		heightsAbove := 0
		for i := 0; i < c.selectedStart && i < len(heights); i++ {
			heightsAbove += heights[i]
		}
		newChildPosition := c.selectedChildPosition + c.scrolling
		if totalHeight < wp.Height {
			c.selectedChildPosition = heightsAbove
			c.scrolling = 0
		} else {
			overscroll := heightsAbove - newChildPosition
			if overscroll < 0 {
				c.scrolling = maxInt(0, c.scrolling+overscroll)
			} else if overscroll > 0 {
				heightsBelow := 0
				for i := c.selectedStart; i < len(heights); i++ {
					heightsBelow += heights[i]
				}
				underscroll := newChildPosition + heightsBelow - wp.Height
				if underscroll < 0 {
					c.scrolling = minInt(0, c.scrolling-underscroll)
				}
			}
		}
		c.selectedChildPosition += c.scrolling
	}
	c.lastTotalHeight = totalHeight

	visible := make(map[int]bool)

	line := c.selectedChildPosition
	filledToBottom := false
	for i := c.selectedStart; i < len(c.allChildren()); i++ {
		child := c.getChild(i)
		start := line
		child.Render(wp.Width, wp.Height, style, &start, nil)
		if line+child.Height > 0 && line < wp.Height {
			pos := line
			c.indexPositions[i] = &pos
			child.Blit(scr, handlers, wp.X, wp.Y+line, 0, wp.Width, maxInt(0, -line), minInt(child.Height, wp.Height-line))
			visible[i] = true
		}
		line += child.Height
		if line >= wp.Height {
			filledToBottom = true
			break
		}
	}
	if !filledToBottom && line < wp.Height {
		fillGap(scr, handlers, wp.X, wp.Y+line, wp.Width, wp.Height-line, style, c.mouseScrollHandler)
	}

	line = c.selectedChildPosition
	filledToTop := false
	for i := c.selectedStart - 1; i >= 0; i-- {
		child := c.getChild(i)
		end := line
		child.Render(wp.Width, wp.Height, style, nil, &end)
		line -= child.Height
		if line+child.Height > 0 && line < wp.Height {
			pos := line
			c.indexPositions[i] = &pos
			child.Blit(scr, handlers, wp.X, wp.Y+line, 0, wp.Width, maxInt(0, -line), minInt(child.Height, wp.Height-line))
			visible[i] = true
		}
		if line <= 0 {
			filledToTop = true
			break
		}
	}
	if !filledToTop && line > 0 {
		fillGap(scr, handlers, wp.X, wp.Y, wp.Width, line, style, c.mouseScrollHandler)
	}

	visible[c.selectedStart] = true
	c.visibleIndices = visible
	c.scrolling = 0
}

func fillGap(scr *screen.Screen, handlers *screen.MouseHandlers, x, y, width, height int, style string, onScroll func(screen.MouseEvent) bool) {
	filler := layout.NewWindow(nil, style)
	filler.WriteToScreen(scr, handlers, screen.WritePosition{X: x, Y: y, Width: width, Height: height}, style, true, 0)
	if handlers == nil {
		return
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			handlers.Set(col, row, onScroll)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
