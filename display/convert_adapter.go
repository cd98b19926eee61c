package display

import (
	"context"

	"github.com/slatebook/slate/external"
	"github.com/slatebook/slate/layout"
)

// FromFormatConverter adapts an external.FormatConverter into the Converter
// shape DisplayControl expects, routing from datum.Format to toFormat and
// splitting the result into lines on "\n" with no per-run styling: a
// converter that already emits ANSI-styled text should be wrapped through
// ansiparse instead of this adapter, which is meant for converters whose
// output is plain text (e.g. an image-to-sixel or SVG-to-text route).
func FromFormatConverter(fc external.FormatConverter, toFormat string) Converter {
	return func(datum Datum, width, height int, fg, bg string, wrap bool) [][]layout.StyledText {
		out, err := fc.Convert(context.Background(), datum.Bytes, datum.Format, toFormat, external.ConvertOptions{
			Cols:      width,
			Rows:      height,
			Fg:        fg,
			Bg:        bg,
			WrapLines: wrap,
		})
		if err != nil {
			return [][]layout.StyledText{{{Text: "[conversion failed]"}}}
		}
		return splitLines(string(out))
	}
}

func splitLines(s string) [][]layout.StyledText {
	var lines [][]layout.StyledText
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, []layout.StyledText{{Text: s[start:i]}})
			start = i + 1
		}
	}
	lines = append(lines, []layout.StyledText{{Text: s[start:]}})
	return lines
}
