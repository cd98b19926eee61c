package layout

import (
	"fmt"
	"hash/fnv"

	"github.com/slatebook/slate/screen"
)

// KeyBinding names a key a control or container declares it responds to;
// the actual command/menu/key-binding registry lives outside this module,
// so only the shape needed to advertise and look up a binding is carried
// here.
type KeyBinding struct {
	Keys []string
	Name string
}

// StyledText is one (style, text) fragment, as returned by a Control's
// GetLine and as forwarded by the ANSI-parser into a UIContent view.
type StyledText struct {
	Style string
	Text  string
}

// ZeroWidthEscape is the sentinel style a fragment uses to carry a raw
// escape sequence (a graphics payload, a hyperlink start/end) rather than
// printable text: Window.WriteToScreen routes such fragments to the
// Screen's escape grid instead of consuming a cell.
const ZeroWidthEscape = "[ZeroWidthEscape]"

// Control is a leaf that produces UIContent: a row-indexed view of styled
// text, a line count, an optional cursor position, and whether the cursor
// should be shown at all.
type Control interface {
	GetLine(i int) []StyledText
	LineCount() int
	CursorPosition() *screen.Point
	ShowCursor() bool
	IsFocusable() bool
	KeyBindings() []KeyBinding
}

// Container is the tagged-union vtable every layout node implements:
// Window (leaf), HSplit/VSplit, FloatContainer, ConditionalContainer, the
// decorator family, CachedContainer, ScrollingContainer, PrintingContainer,
// and Display. Matches the Design Notes' "tagged Container enum with a
// single vtable trait".
type Container interface {
	Reset()
	PreferredWidth(maxAvailableWidth int) Dimension
	PreferredHeight(width, maxAvailableHeight int) Dimension
	WriteToScreen(scr *screen.Screen, handlers *screen.MouseHandlers, wp screen.WritePosition, parentStyle string, eraseBG bool, zIndex int)
	Children() []Container
	KeyBindings() []KeyBinding
}

// LayoutHash identifies a container's identity for the purposes of a
// CachedContainer's invalidation check: the sum of hashes of all descendant
// container identities.
func LayoutHash(c Container) uint64 {
	var h uint64 = identityHash(c)
	for _, child := range c.Children() {
		h += LayoutHash(child)
	}
	return h
}

// identityHash derives a stable-enough per-instance hash from the
// container's pointer identity (its %p representation); the tree hash only
// needs to change when a node is added, removed, or replaced.
func identityHash(c Container) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%p", c)
	return h.Sum64()
}
