package cellmodel

import (
	"sort"
	"strconv"
	"strings"
)

// UnderlineKind distinguishes the five underline renderings the style
// vocabulary supports.
type UnderlineKind int

const (
	UnderlineNone UnderlineKind = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Attrs is the parsed form of a style string: every token resolved into a
// typed field. Two style strings that parse to equal Attrs are
// interchangeable for rendering purposes.
type Attrs struct {
	Fg, Bg, UnderlineColor Color
	Bold, Dim, Italic      bool
	Underline              UnderlineKind
	Strike                 bool
	Blink, BlinkFast       bool
	Reverse, Hidden        bool
	Overline               bool
	// Unknown carries any tokens the parser didn't recognise, preserved
	// verbatim so Serialize can round-trip them even though the renderer
	// ignores them.
	Unknown []string
}

// Serialize renders Attrs back into a canonical style string. Token order is
// fixed so that equal Attrs always serialize identically.
func (a Attrs) Serialize() string {
	var toks []string
	if a.Fg != nil {
		if n, ok := a.Fg.(Named); !ok || n.Kind != NamedDefault {
			toks = append(toks, "fg:"+a.Fg.String())
		}
	}
	if a.Bg != nil {
		if n, ok := a.Bg.(Named); !ok || n.Kind != NamedDefault {
			toks = append(toks, "bg:"+a.Bg.String())
		}
	}
	if a.Bold {
		toks = append(toks, "bold")
	}
	if a.Dim {
		toks = append(toks, "dim")
	}
	if a.Italic {
		toks = append(toks, "italic")
	}
	switch a.Underline {
	case UnderlineSingle:
		toks = append(toks, "underline")
	case UnderlineDouble:
		toks = append(toks, "doubleunderline")
	case UnderlineCurly:
		toks = append(toks, "curvyunderline")
	case UnderlineDotted:
		toks = append(toks, "dottedunderline")
	case UnderlineDashed:
		toks = append(toks, "dashedunderline")
	}
	if a.Strike {
		toks = append(toks, "strike")
	}
	if a.Blink {
		toks = append(toks, "blink")
	}
	if a.BlinkFast {
		toks = append(toks, "blinkfast")
	}
	if a.Reverse {
		toks = append(toks, "reverse")
	}
	if a.Hidden {
		toks = append(toks, "hidden")
	}
	if a.Overline {
		toks = append(toks, "overline")
	}
	if a.UnderlineColor != nil {
		toks = append(toks, "ul:"+a.UnderlineColor.String())
	}
	toks = append(toks, a.Unknown...)
	return strings.Join(toks, " ")
}

// ParseStyle tokenizes a style string into an Attrs record. Unknown tokens
// are preserved in Attrs.Unknown but otherwise ignored, per the closed
// vocabulary in the style-string contract.
func ParseStyle(style string) Attrs {
	var a Attrs
	for _, tok := range strings.Fields(style) {
		switch {
		case tok == "bold":
			a.Bold = true
		case tok == "dim":
			a.Dim = true
		case tok == "italic":
			a.Italic = true
		case tok == "underline":
			a.Underline = UnderlineSingle
		case tok == "doubleunderline":
			a.Underline = UnderlineDouble
		case tok == "curvyunderline":
			a.Underline = UnderlineCurly
		case tok == "dottedunderline":
			a.Underline = UnderlineDotted
		case tok == "dashedunderline":
			a.Underline = UnderlineDashed
		case tok == "strike":
			a.Strike = true
		case tok == "blink":
			a.Blink = true
		case tok == "blinkfast":
			a.BlinkFast = true
		case tok == "reverse":
			a.Reverse = true
		case tok == "hidden":
			a.Hidden = true
		case tok == "overline":
			a.Overline = true
		case strings.HasPrefix(tok, "fg:"):
			if c, ok := parseColorToken(tok[3:]); ok {
				a.Fg = c
			} else {
				a.Unknown = append(a.Unknown, tok)
			}
		case strings.HasPrefix(tok, "bg:"):
			if c, ok := parseColorToken(tok[3:]); ok {
				a.Bg = c
			} else {
				a.Unknown = append(a.Unknown, tok)
			}
		case strings.HasPrefix(tok, "ul:"):
			if c, ok := parseColorToken(tok[3:]); ok {
				a.UnderlineColor = c
			} else {
				a.Unknown = append(a.Unknown, tok)
			}
		case strings.HasPrefix(tok, "#") && len(tok) == 7:
			if c, ok := parseColorToken(tok); ok {
				a.Fg = c
			} else {
				a.Unknown = append(a.Unknown, tok)
			}
		default:
			a.Unknown = append(a.Unknown, tok)
		}
	}
	return a
}

func parseColorToken(tok string) (Color, bool) {
	switch {
	case tok == "default":
		return Named{Kind: NamedDefault}, true
	case tok == "fg":
		return Named{Kind: NamedForeground}, true
	case tok == "bg":
		return Named{Kind: NamedBackground}, true
	case strings.HasPrefix(tok, "#") && len(tok) == 7:
		r, err1 := strconv.ParseUint(tok[1:3], 16, 8)
		g, err2 := strconv.ParseUint(tok[3:5], 16, 8)
		b, err3 := strconv.ParseUint(tok[5:7], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, false
		}
		return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
	case strings.HasPrefix(tok, "ansi:"):
		n, err := strconv.Atoi(tok[len("ansi:"):])
		if err != nil {
			return nil, false
		}
		return Indexed{N: n}, true
	default:
		if n, ok := namedANSI[tok]; ok {
			return Indexed{N: n}, true
		}
		return nil, false
	}
}

// namedANSI maps the standard/bright ANSI colour names to their palette
// index, used for style tokens like "red" or "brightred".
var namedANSI = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"brightblack": 8, "brightred": 9, "brightgreen": 10, "brightyellow": 11,
	"brightblue": 12, "brightmagenta": 13, "brightcyan": 14, "brightwhite": 15,
}

// StyleCache memoizes ParseStyle so that equal style strings always yield
// the same Attrs value. It is safe for
// concurrent reads only; all writes must happen on the render thread.
type StyleCache struct {
	m map[string]Attrs
}

// NewStyleCache returns an empty cache.
func NewStyleCache() *StyleCache {
	return &StyleCache{m: make(map[string]Attrs)}
}

// Get parses style, memoizing the result.
func (c *StyleCache) Get(style string) Attrs {
	if a, ok := c.m[style]; ok {
		return a
	}
	a := ParseStyle(style)
	c.m[style] = a
	return a
}

// Len reports how many distinct style strings are cached.
func (c *StyleCache) Len() int { return len(c.m) }

// sortedKeys is a test helper exposed for deterministic iteration.
func (c *StyleCache) sortedKeys() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
