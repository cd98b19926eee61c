package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/slatebook/slate/cellmodel"
)

const (
	escReset      = "\x1b[0m"
	escCursorHome = "\x1b[H"
	escEraseDown  = "\x1b[J"
	escEraseLine  = "\x1b[K"
	escShowCursor = "\x1b[?25h"
	escHideCursor = "\x1b[?25l"
)

func cursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dA", n)
}

func cursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

func cursorBackward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dD", n)
}

// writer is a thin wrapper that remembers the first error so Render's hot
// loop doesn't have to check err after every single write.
type writer struct {
	w   io.Writer
	err error
}

func (wr *writer) writeRaw(s string) {
	if wr.err != nil || s == "" {
		return
	}
	_, wr.err = io.WriteString(wr.w, s)
}

// sgrSequence builds the SGR escape sequence for attrs at the given colour
// depth: 1-bit suppresses colour codes entirely (structural attributes
// only), 4-bit/8-bit snap to the nearest palette entry, 24-bit emits the
// literal r;g;b triples.
func sgrSequence(a cellmodel.Attrs, depth ColorDepth) string {
	var codes []string
	codes = append(codes, "0")

	if a.Bold {
		codes = append(codes, "1")
	}
	if a.Dim {
		codes = append(codes, "2")
	}
	if a.Italic {
		codes = append(codes, "3")
	}
	switch a.Underline {
	case cellmodel.UnderlineSingle:
		codes = append(codes, "4")
	case cellmodel.UnderlineDouble:
		codes = append(codes, "21")
	case cellmodel.UnderlineCurly:
		codes = append(codes, "4:3")
	case cellmodel.UnderlineDotted:
		codes = append(codes, "4:4")
	case cellmodel.UnderlineDashed:
		codes = append(codes, "4:5")
	}
	if a.Blink {
		codes = append(codes, "5")
	}
	if a.BlinkFast {
		codes = append(codes, "6")
	}
	if a.Reverse {
		codes = append(codes, "7")
	}
	if a.Hidden {
		codes = append(codes, "8")
	}
	if a.Strike {
		codes = append(codes, "9")
	}
	if a.Overline {
		codes = append(codes, "53")
	}

	if depth != Depth1Bit {
		if a.Fg != nil {
			codes = append(codes, colorCodes(a.Fg, depth, true)...)
		}
		if a.Bg != nil {
			codes = append(codes, colorCodes(a.Bg, depth, false)...)
		}
		if a.UnderlineColor != nil {
			codes = append(codes, underlineColorCodes(a.UnderlineColor, depth)...)
		}
	}

	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCodes(c cellmodel.Color, depth ColorDepth, fg bool) []string {
	base := 30
	if !fg {
		base = 40
	}
	switch v := c.(type) {
	case cellmodel.RGB:
		switch depth {
		case Depth24Bit:
			prefix := "38"
			if !fg {
				prefix = "48"
			}
			return []string{prefix, "2", strconv.Itoa(int(v.R)), strconv.Itoa(int(v.G)), strconv.Itoa(int(v.B))}
		case Depth8Bit:
			prefix := "38"
			if !fg {
				prefix = "48"
			}
			return []string{prefix, "5", strconv.Itoa(nearestPalette256(v))}
		default: // Depth4Bit
			return []string{strconv.Itoa(base + nearestPalette16(v))}
		}
	case cellmodel.Indexed:
		switch depth {
		case Depth4Bit:
			idx := v.N
			if idx >= 16 {
				idx = idx % 16
			}
			if idx < 8 {
				return []string{strconv.Itoa(base + idx)}
			}
			return []string{strconv.Itoa(base + 60 + (idx - 8))}
		default:
			prefix := "38"
			if !fg {
				prefix = "48"
			}
			return []string{prefix, "5", strconv.Itoa(v.N)}
		}
	case cellmodel.Named:
		if v.Kind == cellmodel.NamedDefault {
			if fg {
				return []string{"39"}
			}
			return []string{"49"}
		}
		return nil
	default:
		return nil
	}
}

func underlineColorCodes(c cellmodel.Color, depth ColorDepth) []string {
	switch v := c.(type) {
	case cellmodel.RGB:
		if depth == Depth24Bit {
			return []string{"58", "2", strconv.Itoa(int(v.R)), strconv.Itoa(int(v.G)), strconv.Itoa(int(v.B))}
		}
		return []string{"58", "5", strconv.Itoa(nearestPalette256(v))}
	case cellmodel.Indexed:
		return []string{"58", "5", strconv.Itoa(v.N)}
	case cellmodel.Named:
		if v.Kind == cellmodel.NamedDefault {
			return []string{"59"}
		}
		return nil
	default:
		return nil
	}
}
