package display

import (
	"context"
	"errors"
	"testing"

	"github.com/slatebook/slate/external"
)

type stubConverter struct {
	out []byte
	err error
}

func (s *stubConverter) Convert(ctx context.Context, datum []byte, fromFormat, toFormat string, opts external.ConvertOptions) ([]byte, error) {
	return s.out, s.err
}

func TestFromFormatConverterSplitsLines(t *testing.T) {
	conv := FromFormatConverter(&stubConverter{out: []byte("line one\nline two\nline three")}, "text")
	datum := NewDatum("svg", []byte("<svg/>"), 10, 10)

	lines := conv(datum, 80, 24, "", "", false)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0][0].Text != "line one" || lines[1][0].Text != "line two" || lines[2][0].Text != "line three" {
		t.Fatalf("unexpected split: %+v", lines)
	}
}

func TestFromFormatConverterNoTrailingNewline(t *testing.T) {
	conv := FromFormatConverter(&stubConverter{out: []byte("only line")}, "text")
	lines := conv(NewDatum("svg", nil, 1, 1), 80, 24, "", "", false)
	if len(lines) != 1 || lines[0][0].Text != "only line" {
		t.Fatalf("unexpected split: %+v", lines)
	}
}

func TestFromFormatConverterErrorReportsFailure(t *testing.T) {
	conv := FromFormatConverter(&stubConverter{err: errors.New("no route")}, "text")
	lines := conv(NewDatum("svg", nil, 1, 1), 80, 24, "", "", false)
	if len(lines) != 1 || lines[0][0].Text != "[conversion failed]" {
		t.Fatalf("unexpected output on error: %+v", lines)
	}
}
