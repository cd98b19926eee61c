package vterm

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
	"github.com/slatebook/slate/cellmodel"
)

var _ ansicode.Handler = (*Terminal)(nil)

// Terminal is a minimal VT220-ish replay target: enough cursor motion and
// SGR dispatch to verify that bytes emitted by render.Render actually
// reproduce the Screen they were computed from. Scrollback, alternate
// screen, mouse modes, and graphics decode play no part in verifying a
// diff, so none of them exist here.
type Terminal struct {
	rows, cols int
	buf        *buffer

	cursorRow, cursorCol int
	cursorVisible        bool

	template cellmodel.Attrs

	decoder *ansicode.Decoder
}

// New returns a Terminal with the given dimensions, cursor at the origin and
// visible, ready to accept bytes via Feed.
func New(rows, cols int) *Terminal {
	t := &Terminal{
		rows:          rows,
		cols:          cols,
		buf:           newBuffer(rows, cols),
		cursorVisible: true,
	}
	t.decoder = ansicode.NewDecoder(t)
	return t
}

// Feed parses data and applies its effect to the replayed grid.
func (t *Terminal) Feed(data []byte) error {
	_, err := t.decoder.Write(data)
	return err
}

// Cell returns the cell at (row, col), or nil if out of bounds.
func (t *Terminal) Cell(row, col int) *Cell {
	return t.buf.cell(row, col)
}

// Rows reports the replay grid's row count.
func (t *Terminal) Rows() int { return t.rows }

// Cols reports the replay grid's column count.
func (t *Terminal) Cols() int { return t.cols }

// CursorPos returns the current cursor position, 0-based.
func (t *Terminal) CursorPos() (row, col int) { return t.cursorRow, t.cursorCol }

// CursorVisible reports whether the cursor is currently shown.
func (t *Terminal) CursorVisible() bool { return t.cursorVisible }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Input writes a printable rune at the cursor and advances it by the rune's
// display width, marking the second cell of a wide rune as a continuation.
func (t *Terminal) Input(r rune) {
	width := cellmodel.RuneWidth(r)
	if width == 0 {
		return
	}
	if t.cursorCol+width > t.cols {
		t.cursorCol = t.cols - 1
	}
	if cell := t.buf.cell(t.cursorRow, t.cursorCol); cell != nil {
		cell.Char = r
		cell.Width = width
		cell.Attrs = t.template
	}
	t.cursorCol++
	if width == 2 && t.cursorCol < t.cols {
		if spacer := t.buf.cell(t.cursorRow, t.cursorCol); spacer != nil {
			spacer.Char = 0
			spacer.Width = 0
			spacer.Attrs = t.template
		}
		t.cursorCol++
	}
	if t.cursorCol >= t.cols {
		t.cursorCol = t.cols - 1
	}
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (t *Terminal) CarriageReturn() { t.cursorCol = 0 }

// LineFeed moves the cursor down one row, clamped to the last row: the
// oracle never scrolls, since render.Render always repaints in place.
func (t *Terminal) LineFeed() {
	t.cursorRow = clamp(t.cursorRow+1, 0, t.rows-1)
}

// Backspace moves the cursor left one column, stopping at column 0.
func (t *Terminal) Backspace() {
	if t.cursorCol > 0 {
		t.cursorCol--
	}
}

// Goto moves the cursor to an absolute (row, col), clamped to the grid.
func (t *Terminal) Goto(row, col int) {
	t.cursorRow = clamp(row, 0, t.rows-1)
	t.cursorCol = clamp(col, 0, t.cols-1)
}

// GotoCol moves the cursor to an absolute column, keeping the current row.
func (t *Terminal) GotoCol(col int) { t.cursorCol = clamp(col, 0, t.cols-1) }

// GotoLine moves the cursor to an absolute row, keeping the current column.
func (t *Terminal) GotoLine(row int) { t.cursorRow = clamp(row, 0, t.rows-1) }

// MoveUp moves the cursor up n rows, stopping at row 0.
func (t *Terminal) MoveUp(n int) { t.cursorRow = clamp(t.cursorRow-n, 0, t.rows-1) }

// MoveDown moves the cursor down n rows, stopping at the last row.
func (t *Terminal) MoveDown(n int) { t.cursorRow = clamp(t.cursorRow+n, 0, t.rows-1) }

// MoveDownCr moves the cursor down n rows and to column 0.
func (t *Terminal) MoveDownCr(n int) {
	t.cursorRow = clamp(t.cursorRow+n, 0, t.rows-1)
	t.cursorCol = 0
}

// MoveUpCr moves the cursor up n rows and to column 0.
func (t *Terminal) MoveUpCr(n int) {
	t.cursorRow = clamp(t.cursorRow-n, 0, t.rows-1)
	t.cursorCol = 0
}

// MoveForward moves the cursor right n columns, stopping at the last column.
func (t *Terminal) MoveForward(n int) { t.cursorCol = clamp(t.cursorCol+n, 0, t.cols-1) }

// MoveBackward moves the cursor left n columns, stopping at column 0.
func (t *Terminal) MoveBackward(n int) { t.cursorCol = clamp(t.cursorCol-n, 0, t.cols-1) }

// ClearLine clears part of the current row per the CSI K parameter.
func (t *Terminal) ClearLine(mode ansicode.LineClearMode) {
	switch mode {
	case ansicode.LineClearModeRight:
		t.buf.clearRowRange(t.cursorRow, t.cursorCol, t.cols)
	case ansicode.LineClearModeLeft:
		t.buf.clearRowRange(t.cursorRow, 0, t.cursorCol+1)
	case ansicode.LineClearModeAll:
		t.buf.clearRow(t.cursorRow)
	}
}

// ClearScreen clears part of the screen per the CSI J parameter; there is
// no saved scrollback to clear.
func (t *Terminal) ClearScreen(mode ansicode.ClearMode) {
	switch mode {
	case ansicode.ClearModeBelow:
		t.buf.clearRowRange(t.cursorRow, t.cursorCol, t.cols)
		for row := t.cursorRow + 1; row < t.rows; row++ {
			t.buf.clearRow(row)
		}
	case ansicode.ClearModeAbove:
		for row := 0; row < t.cursorRow; row++ {
			t.buf.clearRow(row)
		}
		t.buf.clearRowRange(t.cursorRow, 0, t.cursorCol+1)
	case ansicode.ClearModeAll:
		t.buf.clearAll()
	}
}

// SetMode turns on DECTCEM cursor visibility; every other mode this oracle
// has no use for (mouse reporting, bracketed paste, alternate screen, ...)
// is a no-op, same as ansiparse.Parser's equivalent.
func (t *Terminal) SetMode(mode ansicode.TerminalMode) {
	if mode == ansicode.TerminalModeShowCursor {
		t.cursorVisible = true
	}
}

// UnsetMode turns off DECTCEM cursor visibility.
func (t *Terminal) UnsetMode(mode ansicode.TerminalMode) {
	if mode == ansicode.TerminalModeShowCursor {
		t.cursorVisible = false
	}
}

// SetTerminalCharAttribute mutates the live cell template from an SGR
// code, the same dispatch ansiparse.Parser performs on the output side.
func (t *Terminal) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		t.template = cellmodel.Attrs{}
	case ansicode.CharAttributeBold:
		t.template.Bold = true
	case ansicode.CharAttributeDim:
		t.template.Dim = true
	case ansicode.CharAttributeItalic:
		t.template.Italic = true
	case ansicode.CharAttributeUnderline:
		t.template.Underline = cellmodel.UnderlineSingle
	case ansicode.CharAttributeDoubleUnderline:
		t.template.Underline = cellmodel.UnderlineDouble
	case ansicode.CharAttributeCurlyUnderline:
		t.template.Underline = cellmodel.UnderlineCurly
	case ansicode.CharAttributeDottedUnderline:
		t.template.Underline = cellmodel.UnderlineDotted
	case ansicode.CharAttributeDashedUnderline:
		t.template.Underline = cellmodel.UnderlineDashed
	case ansicode.CharAttributeBlinkSlow:
		t.template.Blink = true
	case ansicode.CharAttributeBlinkFast:
		t.template.BlinkFast = true
	case ansicode.CharAttributeReverse:
		t.template.Reverse = true
	case ansicode.CharAttributeHidden:
		t.template.Hidden = true
	case ansicode.CharAttributeStrike:
		t.template.Strike = true
	case ansicode.CharAttributeCancelBold:
		t.template.Bold = false
	case ansicode.CharAttributeCancelBoldDim:
		t.template.Bold, t.template.Dim = false, false
	case ansicode.CharAttributeCancelItalic:
		t.template.Italic = false
	case ansicode.CharAttributeCancelUnderline:
		t.template.Underline = cellmodel.UnderlineNone
	case ansicode.CharAttributeCancelBlink:
		t.template.Blink, t.template.BlinkFast = false, false
	case ansicode.CharAttributeCancelReverse:
		t.template.Reverse = false
	case ansicode.CharAttributeCancelHidden:
		t.template.Hidden = false
	case ansicode.CharAttributeCancelStrike:
		t.template.Strike = false
	case ansicode.CharAttributeForeground:
		t.template.Fg = resolveColor(attr)
	case ansicode.CharAttributeBackground:
		t.template.Bg = resolveColor(attr)
	case ansicode.CharAttributeUnderlineColor:
		if attr.RGBColor == nil && attr.IndexedColor == nil && attr.NamedColor == nil {
			t.template.UnderlineColor = nil
		} else {
			t.template.UnderlineColor = resolveColor(attr)
		}
	}
}

// resolveColor translates a go-ansicode colour attribute into the closed
// cellmodel.Color sum type, identical to ansiparse's unexported helper of
// the same name; each package keeps its own copy rather than exporting a
// one-function shared surface.
func resolveColor(attr ansicode.TerminalCharAttribute) cellmodel.Color {
	if attr.RGBColor != nil {
		return cellmodel.RGB{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B}
	}
	if attr.IndexedColor != nil {
		return cellmodel.Indexed{N: int(attr.IndexedColor.Index)}
	}
	if attr.NamedColor != nil {
		return cellmodel.Indexed{N: int(*attr.NamedColor)}
	}
	switch attr.Attr {
	case ansicode.CharAttributeBackground:
		return cellmodel.Named{Kind: cellmodel.NamedBackground}
	default:
		return cellmodel.Named{Kind: cellmodel.NamedForeground}
	}
}

// The remaining Handler methods cover terminal state (scrolling regions,
// charsets, tab stops, OSC side channels, keyboard protocol negotiation,
// sixel/kitty graphics, hyperlinks, clipboard) this replay oracle has no use
// for: none of them participate in verifying a render diff. Intentional
// no-ops, same convention as ansiparse.Parser's trailing stub block.

func (t *Terminal) ApplicationCommandReceived(data []byte)                           {}
func (t *Terminal) Bell()                                                            {}
func (t *Terminal) ClearTabs(mode ansicode.TabulationClearMode)                      {}
func (t *Terminal) ClipboardLoad(clipboard byte, terminator string)                  {}
func (t *Terminal) ClipboardStore(clipboard byte, data []byte)                       {}
func (t *Terminal) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}
func (t *Terminal) Decaln()                                                          {}
func (t *Terminal) DeleteChars(n int)                                               {}
func (t *Terminal) DeleteLines(n int)                                               {}
func (t *Terminal) DeviceStatus(n int)                                              {}
func (t *Terminal) EraseChars(n int)                                                {}
func (t *Terminal) HorizontalTabSet()                                               {}
func (t *Terminal) IdentifyTerminal(b byte)                                         {}
func (t *Terminal) InsertBlank(n int)                                               {}
func (t *Terminal) InsertBlankLines(n int)                                          {}
func (t *Terminal) MoveBackwardTabs(n int)                                          {}
func (t *Terminal) MoveForwardTabs(n int)                                           {}
func (t *Terminal) PopKeyboardMode(n int)                                           {}
func (t *Terminal) PopTitle()                                                       {}
func (t *Terminal) PrivacyMessageReceived(data []byte)                              {}
func (t *Terminal) PushKeyboardMode(mode ansicode.KeyboardMode)                     {}
func (t *Terminal) PushTitle()                                                      {}
func (t *Terminal) ReportKeyboardMode()                                             {}
func (t *Terminal) ReportModifyOtherKeys()                                          {}
func (t *Terminal) ResetColor(i int)                                                {}
func (t *Terminal) ResetState()                                                     { t.template = cellmodel.Attrs{} }
func (t *Terminal) RestoreCursorPosition()                                          {}
func (t *Terminal) ReverseIndex()                                                   {}
func (t *Terminal) SaveCursorPosition()                                             {}
func (t *Terminal) ScrollDown(n int)                                                {}
func (t *Terminal) ScrollUp(n int)                                                  {}
func (t *Terminal) SetActiveCharset(n int)                                          {}
func (t *Terminal) SetColor(index int, c color.Color)                              {}
func (t *Terminal) SetCursorStyle(style ansicode.CursorStyle)                      {}
func (t *Terminal) SetDynamicColor(prefix string, index int, terminator string)    {}
func (t *Terminal) SetHyperlink(hyperlink *ansicode.Hyperlink)                      {}
func (t *Terminal) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {}
func (t *Terminal) SetKeypadApplicationMode()                                       {}
func (t *Terminal) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys)              {}
func (t *Terminal) SetScrollingRegion(top, bottom int)                             {}
func (t *Terminal) StartOfStringReceived(data []byte)                              {}
func (t *Terminal) SetTitle(title string)                                          {}
func (t *Terminal) Substitute()                                                    {}
func (t *Terminal) Tab(n int)                                                      {}
func (t *Terminal) TextAreaSizeChars()                                             {}
func (t *Terminal) TextAreaSizePixels()                                            {}
func (t *Terminal) UnsetKeypadApplicationMode()                                    {}
func (t *Terminal) SetWorkingDirectory(uri string)                                 {}
func (t *Terminal) CellSizePixels()                                                {}
func (t *Terminal) SixelReceived(params [][]uint16, data []byte)                   {}
