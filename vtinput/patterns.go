package vtinput

import "regexp"

// sequenceTable is the built-in ANSI-sequence table: complete byte strings
// (including the leading ESC) mapped to the named key they produce. This is
// consulted before the slower regex table.
var sequenceTable = map[string]Key{
	"\x1b[A":    KeyUp,
	"\x1bOA":    KeyUp,
	"\x1b[B":    KeyDown,
	"\x1bOB":    KeyDown,
	"\x1b[C":    KeyRight,
	"\x1bOC":    KeyRight,
	"\x1b[D":    KeyLeft,
	"\x1bOD":    KeyLeft,
	"\x1b[H":    KeyHome,
	"\x1bOH":    KeyHome,
	"\x1b[F":    KeyEnd,
	"\x1bOF":    KeyEnd,
	"\x1b[1~":   KeyHome,
	"\x1b[4~":   KeyEnd,
	"\x1b[2~":   KeyInsert,
	"\x1b[3~":   KeyDelete,
	"\x1b[5~":   KeyPageUp,
	"\x1b[6~":   KeyPageDown,
	"\x1bOP":    KeyF1,
	"\x1bOQ":    KeyF2,
	"\x1bOR":    KeyF3,
	"\x1bOS":    KeyF4,
	"\x1b[15~":  KeyF5,
	"\x1b[17~":  KeyF6,
	"\x1b[18~":  KeyF7,
	"\x1b[19~":  KeyF8,
	"\x1b[20~":  KeyF9,
	"\x1b[21~":  KeyF10,
	"\x1b[23~":  KeyF11,
	"\x1b[24~":  KeyF12,
	"\x1b[Z":    KeyBackTab,
}

// queryResponsePatterns are the regexes the parser checks a buffered
// ambiguous prefix against, for responses to terminal queries the
// application issued earlier.
var queryResponsePatterns = []struct {
	key Key
	re  *regexp.Regexp
}{
	{KeyColorsResponse, regexp.MustCompile(`^\x1b\](\d+;)?\d+;rgb:[0-9A-Fa-f]{2,4}/[0-9A-Fa-f]{2,4}/[0-9A-Fa-f]{2,4}(\x1b\\|\x9c|\x07)`)},
	{KeyPaletteDsrResponse, regexp.MustCompile(`^\x1b\[\?997;\d n`)},
	{KeyPixelSizeResponse, regexp.MustCompile(`^\x1b\[4;\d+;\d+t`)},
	{KeyKittyGraphicsStatusResponse, regexp.MustCompile(`^\x1b_Gi=(4294967295|0);OK\x1b\\`)},
	{KeyDeviceAttributesResponse, regexp.MustCompile(`^\x1b\[\?[\d;]*c`)},
	{KeyItermGraphicsStatusResponse, regexp.MustCompile(`^\x1bP>\|[^\x1b]+\x1b\\`)},
	{KeySgrPixelStatusResponse, regexp.MustCompile(`^\x1b\[\?1016;\d\$`)},
	{KeyClipboardDataResponse, regexp.MustCompile(`^\x1b\]52;(?:c|p)?;[A-Za-z0-9+/=]+\x1b\\`)},
}

// cprResponseRe matches a cursor-position report, "\x1b[<row>;<col>R".
var cprResponseRe = regexp.MustCompile(`^\x1b\[\d+;\d+R$`)

var cprResponsePrefixRe = regexp.MustCompile(`^\x1b(\[(\d+(;\d*)?)?)?$`)

// mouseEventRe matches an SGR mouse report in full.
var mouseEventRe = regexp.MustCompile(`^\x1b\[<(\d+);(\d+);(\d+)([Mm])$`)

var mouseEventPrefixRe = regexp.MustCompile(`^\x1b(\[(<?(\d+(;\d*(;\d*)?)?)?)?)?$`)

// x10MouseRe matches a legacy X10 mouse report: ESC [ M Cb Cx Cy, three raw
// bytes following the literal 'M'.
var x10MouseRe = regexp.MustCompile(`(?s)^\x1b\[M...$`)

// x10MousePrefixRe keeps the parser buffering while the three raw report
// bytes trickle in; it must be consulted before the generic CSI matcher,
// which would otherwise treat "\x1b[M" as a complete sequence.
var x10MousePrefixRe = regexp.MustCompile(`(?s)^\x1b(\[(M.{0,2})?)?$`)

// completeEscapeRes recognise any finished CSI, OSC (BEL- or
// ST-terminated), or APC/PM/SOS/DCS sequence that no more specific pattern
// claimed: such a sequence is committed as one KeyEscapeSequence press,
// never split into literal characters.
var completeEscapeRes = []*regexp.Regexp{
	regexp.MustCompile(`^\x1b\[[0-9;:<=>?]*[ -/]*[@-~]$`),
	regexp.MustCompile(`(?s)^\x1b\][^\x07\x1b]*(\x07|\x1b\\)$`),
	regexp.MustCompile(`(?s)^\x1b[_^XP][^\x1b]*\x1b\\$`),
}

// responsePrefixRe is the general fallback: any prefix that could still be
// the start of a CSI, OSC, APC, PM, SOS, or DCS sequence (a trailing bare
// ESC is a possibly half-arrived ST).
var responsePrefixRe = regexp.MustCompile(`(?s)^\x1b(\][^\x1b\x07]*\x1b?|_[^\x1b]*\x1b?|\^[^\x1b]*\x1b?|X[^\x1b]*\x1b?|P[^\x1b]*\x1b?|\[[0-9;:<=>?]*[ -/]*)$`)

// ansiSequencePrefixes is every strict prefix of every complete entry in
// sequenceTable, used by isPrefixOfLonger for a fast table lookup instead
// of a regex scan.
var ansiSequencePrefixes = buildAnsiSequencePrefixes()

func buildAnsiSequencePrefixes() map[string]bool {
	out := make(map[string]bool)
	for seq := range sequenceTable {
		for i := 1; i < len(seq); i++ {
			out[seq[:i]] = true
		}
	}
	return out
}

// isPrefixOfLonger reports whether prefix could still be extended into a
// longer recognised sequence: a CPR response, a mouse event, a known ANSI
// sequence, or a general OSC/APC/DCS/CSI prefix.
func isPrefixOfLonger(prefix string) bool {
	if cprResponsePrefixRe.MatchString(prefix) {
		return true
	}
	if mouseEventPrefixRe.MatchString(prefix) {
		return true
	}
	if ansiSequencePrefixes[prefix] {
		return true
	}
	return responsePrefixRe.MatchString(prefix)
}
