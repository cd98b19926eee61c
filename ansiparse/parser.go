package ansiparse

import (
	"fmt"
	"image/color"

	"github.com/danielgatis/go-ansicode"
	"github.com/slatebook/slate/cellmodel"
)

// Parser is an explicit state machine (per the single feed-method design
// used throughout this module) that consumes ANSI bytes and accumulates
// styled text fragments. It implements ansicode.Handler directly,
// accumulating (style, text) fragments for the current line and flushing
// completed lines instead of mutating a persistent cell grid.
type Parser struct {
	decoder *ansicode.Decoder

	style cellmodel.Attrs

	current       []Fragment
	lines         []Line
	crPending     bool
	pendingEscape string
}

// New returns a Parser ready to accept bytes via Feed.
func New() *Parser {
	p := &Parser{}
	p.decoder = ansicode.NewDecoder(p)
	return p
}

// Feed writes data into the underlying decoder and returns every line that
// completed as a result (a parse failure never surfaces here: per the error
// taxonomy, unparseable fragments degrade to zero-width escapes, they never
// raise).
func (p *Parser) Feed(data []byte) []Line {
	before := len(p.lines)
	_, _ = p.decoder.Write(data)
	completed := p.lines[before:]
	out := make([]Line, len(completed))
	copy(out, completed)
	return out
}

// Flush forces whatever is in the current (incomplete) line accumulator out
// as a final Line, for callers that need the trailing partial line (e.g. at
// EOF with no closing newline).
func (p *Parser) Flush() Line {
	if p.pendingEscape != "" {
		p.current = append(p.current, Fragment{Style: p.styleString(), Escape: p.pendingEscape})
		p.pendingEscape = ""
	}
	line := Line{Fragments: p.current}
	p.current = nil
	return line
}

func (p *Parser) applyCRIfPending() {
	if p.crPending {
		p.current = nil
		p.crPending = false
	}
}

func (p *Parser) styleString() string {
	return p.style.Serialize()
}

func (p *Parser) emitText(text string) {
	p.applyCRIfPending()
	frag := Fragment{Style: p.styleString(), Text: text, Escape: p.pendingEscape}
	p.pendingEscape = ""
	p.current = append(p.current, frag)
}

func (p *Parser) emitEscape(escape string) {
	// Attach to the next produced fragment (per the zero-width-escape
	// forwarding rule); if nothing else ever follows on this line, Flush
	// still returns it via a trailing empty-text fragment.
	if p.pendingEscape != "" {
		p.pendingEscape += escape
	} else {
		p.pendingEscape = escape
	}
}

func (p *Parser) flushLine() {
	if p.pendingEscape != "" {
		p.current = append(p.current, Fragment{Style: p.styleString(), Escape: p.pendingEscape})
		p.pendingEscape = ""
	}
	p.lines = append(p.lines, Line{Fragments: p.current})
	p.current = nil
}

var _ ansicode.Handler = (*Parser)(nil)

// Input handles a printable rune: the core text-producing path.
func (p *Parser) Input(r rune) {
	p.emitText(string(r))
}

// LineFeed both "\n" and the newline half of "\r\n" resolve to: flush the
// current line and start a fresh one.
func (p *Parser) LineFeed() {
	p.crPending = false
	p.flushLine()
}

// CarriageReturn marks that the current line's contents should be dropped
// before the next character is written, unless a LineFeed arrives first (in
// which case "\r\n" behaves as an ordinary newline).
func (p *Parser) CarriageReturn() {
	p.crPending = true
}

// Backspace removes the last non-escape fragment produced on the current line.
func (p *Parser) Backspace() {
	p.applyCRIfPending()
	for i := len(p.current) - 1; i >= 0; i-- {
		if p.current[i].Text != "" {
			p.current = append(p.current[:i], p.current[i+1:]...)
			return
		}
	}
}

// ClearLine implements "\x1b[2K": delete the whole current line accumulator.
// The left/right-only variants aren't distinguished, since a streaming
// fragment sink has no column position to clear from.
func (p *Parser) ClearLine(mode ansicode.LineClearMode) {
	p.applyCRIfPending()
	p.current = nil
}

// MoveUp implements cursor-up sequences by dropping the last n completed
// lines, per the parser's documented resolution for "\x1b[<n>A".
func (p *Parser) MoveUp(n int) {
	if n <= 0 {
		return
	}
	if n > len(p.lines) {
		n = len(p.lines)
	}
	p.lines = p.lines[:len(p.lines)-n]
}

// SetTerminalCharAttribute mutates the live style record from an SGR code.
func (p *Parser) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		p.style = cellmodel.Attrs{}
	case ansicode.CharAttributeBold:
		p.style.Bold = true
	case ansicode.CharAttributeDim:
		p.style.Dim = true
	case ansicode.CharAttributeItalic:
		p.style.Italic = true
	case ansicode.CharAttributeUnderline:
		p.style.Underline = cellmodel.UnderlineSingle
	case ansicode.CharAttributeDoubleUnderline:
		p.style.Underline = cellmodel.UnderlineDouble
	case ansicode.CharAttributeCurlyUnderline:
		p.style.Underline = cellmodel.UnderlineCurly
	case ansicode.CharAttributeDottedUnderline:
		p.style.Underline = cellmodel.UnderlineDotted
	case ansicode.CharAttributeDashedUnderline:
		p.style.Underline = cellmodel.UnderlineDashed
	case ansicode.CharAttributeBlinkSlow:
		p.style.Blink = true
	case ansicode.CharAttributeBlinkFast:
		p.style.BlinkFast = true
	case ansicode.CharAttributeReverse:
		p.style.Reverse = true
	case ansicode.CharAttributeHidden:
		p.style.Hidden = true
	case ansicode.CharAttributeStrike:
		p.style.Strike = true
	case ansicode.CharAttributeCancelBold:
		p.style.Bold = false
	case ansicode.CharAttributeCancelBoldDim:
		p.style.Bold, p.style.Dim = false, false
	case ansicode.CharAttributeCancelItalic:
		p.style.Italic = false
	case ansicode.CharAttributeCancelUnderline:
		p.style.Underline = cellmodel.UnderlineNone
	case ansicode.CharAttributeCancelBlink:
		p.style.Blink, p.style.BlinkFast = false, false
	case ansicode.CharAttributeCancelReverse:
		p.style.Reverse = false
	case ansicode.CharAttributeCancelHidden:
		p.style.Hidden = false
	case ansicode.CharAttributeCancelStrike:
		p.style.Strike = false
	case ansicode.CharAttributeForeground:
		p.style.Fg = resolveColor(attr)
	case ansicode.CharAttributeBackground:
		p.style.Bg = resolveColor(attr)
	case ansicode.CharAttributeUnderlineColor:
		if attr.RGBColor == nil && attr.IndexedColor == nil && attr.NamedColor == nil {
			p.style.UnderlineColor = nil
		} else {
			p.style.UnderlineColor = resolveColor(attr)
		}
	}
}

// resolveColor translates a go-ansicode colour attribute into the closed
// cellmodel.Color sum type.
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

// SetHyperlink wraps following text in an OSC 8 hyperlink escape so the
// side effect survives as a zero-width escape on the fragment stream.
func (p *Parser) SetHyperlink(hyperlink *ansicode.Hyperlink) {
	if hyperlink == nil {
		p.emitEscape("\x1b]8;;\x1b\\")
		return
	}
	p.emitEscape(fmt.Sprintf("\x1b]8;id=%s;%s\x1b\\", hyperlink.ID, hyperlink.URI))
}

// ApplicationCommandReceived forwards an APC payload verbatim.
func (p *Parser) ApplicationCommandReceived(data []byte) {
	p.emitEscape("\x1b_" + string(data) + "\x1b\\")
}

// PrivacyMessageReceived forwards a PM payload verbatim.
func (p *Parser) PrivacyMessageReceived(data []byte) {
	p.emitEscape("\x1b^" + string(data) + "\x1b\\")
}

// StartOfStringReceived forwards an SOS payload verbatim.
func (p *Parser) StartOfStringReceived(data []byte) {
	p.emitEscape("\x1bX" + string(data) + "\x1b\\")
}

// SixelReceived forwards a sixel DCS payload verbatim, preserving the
// image side effect without decoding it.
func (p *Parser) SixelReceived(params [][]uint16, data []byte) {
	p.emitEscape("\x1bP" + sixelParamString(params) + "q" + string(data) + "\x1b\\")
}

func sixelParamString(params [][]uint16) string {
	var out []byte
	for i, group := range params {
		if i > 0 {
			out = append(out, ';')
		}
		for j, v := range group {
			if j > 0 {
				out = append(out, ':')
			}
			out = append(out, []byte(fmt.Sprintf("%d", v))...)
		}
	}
	return string(out)
}

// The remaining Handler methods cover terminal state (cursor position,
// scrolling regions, modes, OSC side-channels, keyboard protocol
// negotiation) that a styled-text extractor has no use for: it produces
// fragments of what was printed, not a full emulated screen. They are
// intentionally no-ops.

func (p *Parser) Bell()                                                       {}
func (p *Parser) ClearScreen(mode ansicode.ClearMode)                         {}
func (p *Parser) ClearTabs(mode ansicode.TabulationClearMode)                 {}
func (p *Parser) ClipboardLoad(clipboard byte, terminator string)             {}
func (p *Parser) ClipboardStore(clipboard byte, data []byte)                  {}
func (p *Parser) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}
func (p *Parser) Decaln()                                                     {}
func (p *Parser) DeleteChars(n int)                                          {}
func (p *Parser) DeleteLines(n int)                                          {}
func (p *Parser) DeviceStatus(n int)                                         {}
func (p *Parser) EraseChars(n int)                                           {}
func (p *Parser) Goto(row, col int)                                         {}
func (p *Parser) GotoCol(col int)                                            {}
func (p *Parser) GotoLine(row int)                                           {}
func (p *Parser) HorizontalTabSet()                                          {}
func (p *Parser) IdentifyTerminal(b byte)                                    {}
func (p *Parser) InsertBlank(n int)                                          {}
func (p *Parser) InsertBlankLines(n int)                                     {}
func (p *Parser) MoveBackward(n int)                                         {}
func (p *Parser) MoveBackwardTabs(n int)                                     {}
func (p *Parser) MoveDown(n int)                                             {}
func (p *Parser) MoveDownCr(n int)                                           {}
func (p *Parser) MoveForward(n int)                                          {}
func (p *Parser) MoveForwardTabs(n int)                                      {}
func (p *Parser) MoveUpCr(n int)                                             {}
func (p *Parser) PopKeyboardMode(n int)                                      {}
func (p *Parser) PopTitle()                                                  {}
func (p *Parser) PushKeyboardMode(mode ansicode.KeyboardMode)                {}
func (p *Parser) PushTitle()                                                 {}
func (p *Parser) ReportKeyboardMode()                                        {}
func (p *Parser) ReportModifyOtherKeys()                                     {}
func (p *Parser) ResetColor(i int)                                           {}
func (p *Parser) ResetState()                                                { p.style = cellmodel.Attrs{} }
func (p *Parser) RestoreCursorPosition()                                     {}
func (p *Parser) ReverseIndex()                                              {}
func (p *Parser) SaveCursorPosition()                                        {}
func (p *Parser) ScrollDown(n int)                                          {}
func (p *Parser) ScrollUp(n int)                                            {}
func (p *Parser) SetActiveCharset(n int)                                    {}
func (p *Parser) SetColor(index int, c color.Color)                         {}
func (p *Parser) SetCursorStyle(style ansicode.CursorStyle)                  {}
func (p *Parser) SetDynamicColor(prefix string, index int, terminator string) {}
func (p *Parser) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {}
func (p *Parser) SetKeypadApplicationMode()                                  {}
func (p *Parser) SetMode(mode ansicode.TerminalMode)                        {}
func (p *Parser) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys)         {}
func (p *Parser) SetScrollingRegion(top, bottom int)                        {}
func (p *Parser) SetTitle(title string)                                     {}
func (p *Parser) Substitute()                                                {}
func (p *Parser) Tab(n int) {
	p.applyCRIfPending()
	for i := 0; i < n; i++ {
		p.current = append(p.current, Fragment{Style: p.styleString(), Text: "\t"})
	}
}
func (p *Parser) TextAreaSizeChars()              {}
func (p *Parser) TextAreaSizePixels()             {}
func (p *Parser) UnsetKeypadApplicationMode()     {}
func (p *Parser) UnsetMode(mode ansicode.TerminalMode) {}
func (p *Parser) SetWorkingDirectory(uri string)  {}
func (p *Parser) CellSizePixels()                 {}
