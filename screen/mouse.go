package screen

// MouseEventType names the kind of pointer event a container's mouse
// handler may receive.
type MouseEventType int

const (
	MouseDown MouseEventType = iota
	MouseUp
	MouseMove
	ScrollUp
	ScrollDown
)

// MouseModifier is a bitset of held modifier keys, used by the scrolling
// container's selection-extension logic.
type MouseModifier int

const (
	ModShift MouseModifier = 1 << iota
	ModControl
	ModAlt
)

// MouseEvent describes a single pointer interaction delivered to a
// container's mouse handler, in the target container's local coordinates.
type MouseEvent struct {
	Position  Point
	Type      MouseEventType
	Button    int
	Modifiers MouseModifier
}

// MouseHandler processes a MouseEvent. Returning false means "not handled":
// callers may fall back to a default behaviour (e.g. terminal scrollback).
type MouseHandler func(MouseEvent) bool

// MouseHandlers is the per-frame sparse grid of mouse handlers, one slot
// per cell, mirroring the Screen's own sparse layout so blit can copy both
// in lockstep.
type MouseHandlers struct {
	handlers map[int]map[int]MouseHandler
}

// NewMouseHandlers returns an empty handler grid.
func NewMouseHandlers() *MouseHandlers {
	return &MouseHandlers{handlers: make(map[int]map[int]MouseHandler)}
}

// Set installs handler at (x, y), overwriting any handler already there.
func (m *MouseHandlers) Set(x, y int, handler MouseHandler) {
	row, ok := m.handlers[y]
	if !ok {
		row = make(map[int]MouseHandler)
		m.handlers[y] = row
	}
	row[x] = handler
}

// Get returns the handler at (x, y), if any.
func (m *MouseHandlers) Get(x, y int) (MouseHandler, bool) {
	row, ok := m.handlers[y]
	if !ok {
		return nil, false
	}
	h, ok := row[x]
	return h, ok
}

// Dispatch invokes the handler registered at ev.Position, if any, returning
// whether an installed handler reported the event as handled.
func (m *MouseHandlers) Dispatch(ev MouseEvent) bool {
	h, ok := m.Get(ev.Position.Col, ev.Position.Row)
	if !ok {
		return false
	}
	return h(ev)
}

// Clear empties the grid, e.g. at the start of a fresh CachedContainer
// render cycle.
func (m *MouseHandlers) Clear() {
	m.handlers = make(map[int]map[int]MouseHandler)
}
