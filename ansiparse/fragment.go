// Package ansiparse turns a stream of ANSI/VT100 bytes into styled text
// fragments, driven by github.com/danielgatis/go-ansicode. The decoder's
// handler feeds a line-of-fragments sink rather than a persistent cell
// grid, so output can be embedded into any control's content.
package ansiparse

// Fragment is one run of text sharing a single style, optionally preceded by
// a zero-width escape that must be re-emitted verbatim to preserve terminal
// side effects (hyperlinks, clipboard, inline graphics).
type Fragment struct {
	Style  string
	Text   string
	Escape string
}

// Line is one completed line of fragments.
type Line struct {
	Fragments []Fragment
}

// Text concatenates the line's fragment text, ignoring style and escapes.
func (l Line) Text() string {
	var out []byte
	for _, f := range l.Fragments {
		out = append(out, f.Text...)
	}
	return string(out)
}
