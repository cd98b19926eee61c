// Package cached implements the CachedContainer: a layout node that
// renders its child once per unique layout hash and available width,
// caches the result into its own Screen, and serves later requests for a
// different vertical slice by blitting from that cache instead of
// re-rendering the child.
package cached

import (
	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// MouseHandlerWrapper lets a parent (e.g. a ScrollingContainer) intercept
// every mouse event reaching a cached child, translating coordinates and
// falling back to its own scroll/select behaviour.
type MouseHandlerWrapper func(inner screen.MouseHandler, c *CachedContainer) screen.MouseHandler

// CachedContainer owns one Screen and one MouseHandlers grid, and renders
// Content into them on demand.
type CachedContainer struct {
	Content layout.Container
	wrapper MouseHandlerWrapper

	screen   *screen.Screen
	handlers *screen.MouseHandlers

	invalid       bool
	layoutHash    uint64
	renderCounter int
	Height, Width int

	renderedLines map[int]bool
}

// New wraps content in a fresh CachedContainer.
func New(content layout.Container, wrapper MouseHandlerWrapper) *CachedContainer {
	return &CachedContainer{
		Content:       content,
		wrapper:       wrapper,
		screen:        screen.New(),
		handlers:      screen.NewMouseHandlers(),
		invalid:       true,
		renderedLines: make(map[int]bool),
	}
}

// Screen exposes the container's private rendered Screen (read-only use:
// Blit is the supported way to copy from it).
func (c *CachedContainer) Screen() *screen.Screen { return c.screen }

// Invalidate clears the rendered-rows set, forcing a full re-render on the
// next Render call.
func (c *CachedContainer) Invalidate() {
	c.invalid = true
}

func (c *CachedContainer) Reset() {
	c.Content.Reset()
	c.Invalidate()
}

func (c *CachedContainer) PreferredWidth(maxAvailableWidth int) layout.Dimension {
	return c.Content.PreferredWidth(maxAvailableWidth)
}

func (c *CachedContainer) PreferredHeight(width, maxAvailableHeight int) layout.Dimension {
	return c.Content.PreferredHeight(width, maxAvailableHeight)
}

func (c *CachedContainer) Children() []layout.Container { return c.Content.Children() }

func (c *CachedContainer) KeyBindings() []layout.KeyBinding { return c.Content.KeyBindings() }

// Render computes which rows of the child are visible given start (rows
// between the top of this child and the top of the viewport) or end
// (distance from the viewport bottom), renders only the rows not already
// cached, and updates the layout-hash/invalidation bookkeeping. When both
// start and end are given, start takes precedence.
func (c *CachedContainer) Render(availableWidth, availableHeight int, style string, start, end *int) {
	newHash := layout.LayoutHash(c.Content)
	if c.layoutHash != newHash || c.invalid || c.Width != availableWidth {
		c.layoutHash = newHash
		c.renderedLines = make(map[int]bool)
		c.handlers.Clear()
		c.screen = screen.New()
		c.renderCounter++
		c.Height = c.Content.PreferredHeight(availableWidth, availableHeight).Preferred
	}
	height := c.Height

	skipTop := 0
	switch {
	case start != nil:
		if -*start > 0 {
			skipTop = -*start
		}
	case end != nil:
		if -*end+height > 0 {
			skipTop = -*end + height
		}
	}
	skipBottom := 0
	if height-availableHeight-skipTop > 0 {
		skipBottom = height - availableHeight - skipTop
	}

	required := make(map[int]bool)
	minRequired, maxRequired := 1<<30, -1
	for row := skipTop; row < height-skipBottom; row++ {
		if !c.renderedLines[row] {
			required[row] = true
			if row < minRequired {
				minRequired = row
			}
			if row > maxRequired {
				maxRequired = row
			}
		}
	}
	if len(required) == 0 {
		return
	}

	c.Width = availableWidth
	c.invalid = false

	bbox := screen.Inset{
		Top:    minRequired,
		Right:  0,
		Bottom: maxInt(0, height-maxRequired-1),
		Left:   0,
	}
	wp := screen.WritePosition{X: 0, Y: 0, Width: c.Width, Height: height, BBox: bbox}
	c.Content.WriteToScreen(c.screen, c.handlers, wp, style, true, 0)
	c.screen.DrawAllFloats()

	for row := range required {
		c.renderedLines[row] = true
	}
}

// Blit copies the cells/escapes/mouse-handlers inside [rows, cols) of this
// container's private screen into target at (left, top), wrapping mouse
// handlers so events land at the child's local coordinates.
func (c *CachedContainer) Blit(target *screen.Screen, handlers *screen.MouseHandlers, left, top int, colsStart, colsStop, rowsStart, rowsStop int) {
	for id, info := range c.screen.WritePositions {
		newWP := screen.WritePosition{
			X: info.WritePosition.X + left, Y: info.WritePosition.Y + top,
			Width: info.WritePosition.Width, Height: info.WritePosition.Height,
		}
		newInfo := &screen.WindowRenderInfo{WritePosition: newWP}
		if info.CursorPosition != nil {
			p := screen.Point{Row: info.CursorPosition.Row + top, Col: info.CursorPosition.Col + left}
			newInfo.CursorPosition = &p
		}
		if info.VisibleLineToRow != nil {
			mapped := make(map[int]int, len(info.VisibleLineToRow))
			for line, row := range info.VisibleLineToRow {
				if row >= rowsStart && row < rowsStop {
					mapped[line] = row + top
				}
			}
			newInfo.VisibleLineToRow = mapped
		}
		target.WritePositions[id] = newInfo
	}

	if rowsStart < 0 {
		rowsStart = 0
	}
	if colsStart < 0 {
		colsStart = 0
	}
	for y := rowsStart; y < rowsStop; y++ {
		for x := colsStart; x < colsStop; x++ {
			if cell, ok := c.screen.Get(x, y); ok {
				target.Put(left+x, top+y, cell)
			}
			if esc := c.screen.GetEscape(x, y); esc != "" {
				target.PutEscape(left+x, top+y, esc)
			}
			if handlers == nil {
				continue
			}
			inner, hadInner := c.handlers.Get(x, y)
			handlers.Set(left+x, top+y, c.wrapMouseHandler(left, top, inner, hadInner))
		}
	}

	if c.screen.ShowCursor {
		target.ShowCursor = true
	}
}

func (c *CachedContainer) wrapMouseHandler(left, top int, inner screen.MouseHandler, hadInner bool) screen.MouseHandler {
	return func(ev screen.MouseEvent) bool {
		local := screen.MouseEvent{
			Position:  screen.Point{Row: ev.Position.Row - top, Col: ev.Position.Col - left},
			Type:      ev.Type,
			Button:    ev.Button,
			Modifiers: ev.Modifiers,
		}
		if c.wrapper != nil {
			return c.wrapper(func(e screen.MouseEvent) bool {
				if hadInner {
					return inner(e)
				}
				return false
			}, c)(local)
		}
		if hadInner {
			return inner(local)
		}
		return false
	}
}

// WriteToScreen implements layout.Container by rendering (if needed) then
// blitting the full write position, so a CachedContainer can itself be
// nested as an ordinary child.
func (c *CachedContainer) WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int) {
	c.Render(wp.Width, wp.Height, parentStyle, nil, nil)
	c.Blit(scr, handlers, wp.X, wp.Y, 0, wp.Width, 0, wp.Height)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
