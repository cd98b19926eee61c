package vtinput

import "strings"

// KeyParser is the explicit state machine consuming one code point at a
// time. Ambiguity between a standalone ESC and the start of a longer
// sequence is resolved by buffering and consulting isPrefixOfLonger; a
// separate Flush call (driven by an external short timer) commits a
// buffered ambiguous prefix as literal input once the timer expires.
type KeyParser struct {
	buf strings.Builder
}

// NewKeyParser returns an empty parser.
func NewKeyParser() *KeyParser {
	return &KeyParser{}
}

// Feed consumes one rune and returns zero or more KeyPresses it completed.
// Most printable runes produce exactly one KeyPress immediately; a rune
// that extends a pending ambiguous escape sequence may produce zero (still
// buffering) or exactly one (sequence just completed).
func (p *KeyParser) Feed(r rune) []KeyPress {
	if p.buf.Len() == 0 {
		if r != '\x1b' {
			return []KeyPress{{Key: KeyRune, Data: string(r), Rune: r}}
		}
		p.buf.WriteRune(r)
		return nil
	}

	p.buf.WriteRune(r)
	prefix := p.buf.String()

	if key, ok := sequenceTable[prefix]; ok {
		p.buf.Reset()
		return []KeyPress{{Key: key, Data: prefix}}
	}
	for _, qp := range queryResponsePatterns {
		if qp.re.MatchString(prefix) {
			p.buf.Reset()
			return []KeyPress{{Key: qp.key, Data: prefix}}
		}
	}
	if cprResponseRe.MatchString(prefix) {
		p.buf.Reset()
		return []KeyPress{{Key: KeyCPR, Data: prefix}}
	}
	if mouseEventRe.MatchString(prefix) {
		p.buf.Reset()
		return []KeyPress{{Key: KeyMouse, Data: prefix, Mouse: decodeSGRMouse(prefix)}}
	}
	if x10MouseRe.MatchString(prefix) {
		p.buf.Reset()
		return []KeyPress{{Key: KeyMouse, Data: prefix, Mouse: decodeX10Mouse(prefix)}}
	}
	if x10MousePrefixRe.MatchString(prefix) {
		return nil
	}

	// Any other complete CSI/OSC/APC/PM/SOS/DCS sequence stays a single
	// KeyPress rather than being split into literal characters.
	for _, re := range completeEscapeRes {
		if re.MatchString(prefix) {
			p.buf.Reset()
			return []KeyPress{{Key: KeyEscapeSequence, Data: prefix}}
		}
	}

	if isPrefixOfLonger(prefix) {
		return nil
	}

	// Not a prefix of anything recognised: commit the buffer as literal
	// input. The leading ESC is emitted alone; anything buffered after it
	// is re-fed one rune at a time so it can start its own sequence.
	p.buf.Reset()
	rest := []rune(prefix)[1:]
	out := []KeyPress{{Key: KeyEscape, Data: "\x1b"}}
	for _, rr := range rest {
		out = append(out, p.Feed(rr)...)
	}
	return out
}

// FeedString feeds every rune of s in order, concatenating the resulting
// KeyPresses.
func (p *KeyParser) FeedString(s string) []KeyPress {
	var out []KeyPress
	for _, r := range s {
		out = append(out, p.Feed(r)...)
	}
	return out
}

// Flush commits whatever ambiguous prefix is currently buffered as literal
// ESC plus the remaining keys, as if a short timer had expired with no
// further input arriving. Called with nothing buffered, it is a no-op.
func (p *KeyParser) Flush() []KeyPress {
	if p.buf.Len() == 0 {
		return nil
	}
	prefix := p.buf.String()
	p.buf.Reset()
	runes := []rune(prefix)
	out := []KeyPress{{Key: KeyEscape, Data: "\x1b"}}
	for _, rr := range runes[1:] {
		out = append(out, p.Feed(rr)...)
	}
	return out
}

// Pending reports whether the parser currently holds a buffered ambiguous
// prefix awaiting either more input or a Flush.
func (p *KeyParser) Pending() bool {
	return p.buf.Len() > 0
}
