package cellmodel

import "github.com/unilibs/uniwidth"

// Cell is a single terminal cell: a grapheme (possibly zero- or
// double-width), the style string it was written with, and a cached display
// width. A width-2 cell must be followed in the screen by a width-0
// continuation slot so column arithmetic stays simple for callers.
type Cell struct {
	Text  string
	Style string
	Width int
}

// Continuation is the width-0 placeholder written immediately after a
// double-width cell.
var Continuation = Cell{Text: "", Style: "", Width: 0}

// NewCell builds a Cell, computing its display width from text.
func NewCell(text, style string) Cell {
	return Cell{Text: text, Style: style, Width: uniwidth.StringWidth(text)}
}

// RuneWidth returns the display width of a single rune: 2 for wide
// characters (CJK, emoji), 1 for normal, 0 for combining marks and control
// characters.
func RuneWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// CellCache interns Cells keyed by (text, style) so that repeated content
// shares one backing value, bounded to maxEntries to keep memory use flat
// across long-running sessions.
type CellCache struct {
	entries   map[cellKey]Cell
	order     []cellKey
	maxEntries int
}

type cellKey struct {
	text  string
	style string
}

// NewCellCache returns a cache that evicts its oldest entry once it holds
// more than maxEntries distinct (text, style) pairs.
func NewCellCache(maxEntries int) *CellCache {
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	return &CellCache{
		entries:    make(map[cellKey]Cell),
		maxEntries: maxEntries,
	}
}

// Intern returns the cached Cell for (text, style), creating and storing one
// if absent.
func (c *CellCache) Intern(text, style string) Cell {
	key := cellKey{text: text, style: style}
	if cell, ok := c.entries[key]; ok {
		return cell
	}
	cell := NewCell(text, style)
	if len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = cell
	c.order = append(c.order, key)
	return cell
}

// Len reports the number of distinct cells currently interned.
func (c *CellCache) Len() int { return len(c.entries) }
