package graphics

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// kittyImageSeq hands out image ids shared across every controller
// instance in the process, so two controllers never collide on an id the
// terminal is still holding.
var kittyImageSeq uint32

func nextKittyImageID() uint32 { return atomic.AddUint32(&kittyImageSeq, 1) }

const kittyChunkSize = 4096

// kittyCmd builds one Kitty graphics APC command. Wire keys: i=image id,
// p=placement id, a=action, t=transmission, f=format, m=more-chunks,
// C=don't-move-cursor, q=quiet, c/r=cell size, x/y/w/h=source region.
func kittyCmd(chunk string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString("\x1b_G")
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%v", k, params[k])
	}
	if chunk != "" {
		sb.WriteByte(';')
		sb.WriteString(chunk)
	}
	sb.WriteString("\x1b\\")
	return sb.String()
}

// transmitChunks splits a PNG payload into base64 chunks no larger than
// kittyChunkSize bytes, setting m=1 on every chunk but the last.
func transmitChunks(imageID uint32, png []byte) []string {
	b64 := base64.StdEncoding.EncodeToString(png)
	var cmds []string
	for len(b64) > 0 {
		chunk := b64
		more := 0
		if len(chunk) > kittyChunkSize {
			chunk = b64[:kittyChunkSize]
			more = 1
		}
		b64 = b64[len(chunk):]
		cmds = append(cmds, kittyCmd(chunk, map[string]any{
			"a": "t", "t": "d", "i": imageID, "q": 2, "f": 100, "m": more,
		}))
	}
	return cmds
}

// kittyDirectController transmits the image once and places it with
// absolute pixel offset/size commands, for use outside a multiplexer.
type kittyDirectController struct {
	mplex   Multiplexer
	imageID uint32
	loaded  bool
}

func (k *kittyDirectController) RenderedLines(img *Image, cols, rows int, bbox screen.Inset) [][]layout.StyledText {
	displayRows := rows - bbox.Top - bbox.Bottom
	displayCols := cols - bbox.Left - bbox.Right
	if displayRows <= 0 || displayCols <= 0 {
		return nil
	}

	var cmds []string
	if !k.loaded {
		k.imageID = nextKittyImageID()
		cmds = append(cmds, transmitChunks(k.imageID, encodePNG(img))...)
		k.loaded = true
	}

	px, py := img.PixelWidth, img.PixelHeight
	x := px * bbox.Left / maxInt(cols, 1)
	y := py * bbox.Top / maxInt(rows, 1)
	w := px * displayCols / maxInt(cols, 1)
	h := py * displayRows / maxInt(rows, 1)
	cmds = append(cmds, kittyCmd("", map[string]any{
		"a": "p", "i": k.imageID, "p": 1, "q": 2, "C": 1,
		"c": displayCols, "r": displayRows,
		"x": x, "y": y, "w": w, "h": h,
	}))

	return gridWithEscape(displayCols, displayRows, WrapPassthrough(strings.Join(cmds, ""), k.mplex))
}

func (k *kittyDirectController) Hide() string {
	if k.imageID == 0 {
		return ""
	}
	return WrapPassthrough(kittyCmd("", map[string]any{"a": "d", "d": "i", "i": k.imageID, "q": 1}), k.mplex)
}

func (k *kittyDirectController) Reset(leaveGraphics bool) string {
	if leaveGraphics || k.imageID == 0 {
		return ""
	}
	cmd := WrapPassthrough(kittyCmd("", map[string]any{"a": "D", "d": "I", "i": k.imageID, "q": 2}), k.mplex)
	k.loaded = false
	return cmd
}

// kittyPlaceholderController uses Kitty's Unicode-placeholder scheme: one
// real printable glyph per cell (a private-use codepoint with a diacritic
// marking its row/column), paired with an 8-bit foreground colour escape
// naming the image id and an underline colour naming the placement id.
// Unlike the direct variant, this one genuinely needs a glyph in every
// cell; the terminal substitutes pixels per glyph position, so it can't
// be collapsed into a single escape the way the other protocols can.
type kittyPlaceholderController struct {
	mplex      Multiplexer
	imageID    uint32
	loaded     bool
	placements map[[2]int]bool
}

const kittyPlaceholderGlyph = "\U0010eeee"

func (k *kittyPlaceholderController) RenderedLines(img *Image, cols, rows int, bbox screen.Inset) [][]layout.StyledText {
	var prefix string
	if !k.loaded {
		k.imageID = nextKittyImageID()
		prefix = strings.Join(transmitChunks(k.imageID, encodePNG(img)), "")
		k.loaded = true
	}
	key := [2]int{cols, rows}
	if !k.placements[key] {
		prefix += kittyCmd("", map[string]any{
			"a": "p", "i": k.imageID, "p": 1, "U": 1, "q": 2, "c": cols, "r": rows,
		})
		k.placements[key] = true
	}
	if prefix != "" {
		prefix = WrapPassthrough(prefix, k.mplex)
	}

	rowStart, rowStop := bbox.Top, rows-bbox.Bottom
	colStart, colStop := bbox.Left, cols-bbox.Right
	if rowStop <= rowStart || colStop <= colStart {
		return nil
	}

	grid := make([][]layout.StyledText, 0, rowStop-rowStart)
	first := true
	for row := rowStart; row < rowStop; row++ {
		frags := make([]layout.StyledText, 0, (colStop-colStart)*2+1)
		if first && prefix != "" {
			frags = append(frags, layout.StyledText{Style: layout.ZeroWidthEscape, Text: prefix})
			first = false
		}
		for col := colStart; col < colStop; col++ {
			esc := fmt.Sprintf("\x1b[38;5;%dm\x1b[58;5;1m", k.imageID)
			frags = append(frags, layout.StyledText{Style: layout.ZeroWidthEscape, Text: esc})
			glyph := kittyPlaceholderGlyph + diacritic(row) + diacritic(col)
			frags = append(frags, layout.StyledText{Text: glyph})
		}
		grid = append(grid, frags)
	}
	return grid
}

func (k *kittyPlaceholderController) Hide() string {
	if k.imageID == 0 {
		return ""
	}
	return WrapPassthrough(kittyCmd("", map[string]any{"a": "d", "d": "i", "i": k.imageID, "q": 1}), k.mplex)
}

func (k *kittyPlaceholderController) Reset(leaveGraphics bool) string {
	if leaveGraphics || k.imageID == 0 {
		return ""
	}
	cmd := WrapPassthrough(kittyCmd("", map[string]any{"a": "D", "d": "I", "i": k.imageID, "q": 2}), k.mplex)
	k.loaded = false
	k.placements = make(map[[2]int]bool)
	return cmd
}

func diacritic(n int) string {
	if n < 0 {
		n = 0
	}
	if n >= len(diacritics) {
		n = len(diacritics) - 1
	}
	return diacritics[n]
}

// diacritics encodes a row or column number (by index) as the combining
// mark the Kitty Unicode-placeholder protocol assigns to that value; the
// table is fixed by the protocol, not chosen here.
var diacritics = []string{
	"̅", "̍", "̎", "̐", "̒", "̽", "̾", "̿",
	"͆", "͊", "͋", "͌", "͐", "͑", "͒", "͗",
	"͛", "ͣ", "ͤ", "ͥ", "ͦ", "ͧ", "ͨ", "ͩ",
	"ͪ", "ͫ", "ͬ", "ͭ", "ͮ", "ͯ", "҃", "҄",
	"҅", "҆", "҇", "֒", "֓", "֔", "֕", "֗",
	"֘", "֙", "֜", "֝", "֞", "֟", "֠", "֡",
	"֨", "֩", "֫", "֬", "֯", "ׄ", "ؐ", "ؑ",
	"ؒ", "ؓ", "ؔ", "ؕ", "ؖ", "ؗ", "ٗ", "٘",
	"ٙ", "ٚ", "ٛ", "ٝ", "ٞ", "ۖ", "ۗ", "ۘ",
	"ۙ", "ۚ", "ۛ", "ۜ", "۟", "۠", "ۡ", "ۢ",
	"ۤ", "ۧ", "ۨ", "۫", "۬", "ܰ", "ܲ", "ܳ",
	"ܵ", "ܶ", "ܺ", "ܽ", "ܿ", "݀", "݁", "݃",
	"݅", "݇", "݉", "݊", "߫", "߬", "߭", "߮",
	"߯", "߰", "߱", "߳", "ࠖ", "ࠗ", "࠘", "࠙",
	"ࠛ", "ࠜ", "ࠝ", "ࠞ", "ࠟ", "ࠠ", "ࠡ", "ࠢ",
	"ࠣ", "ࠥ", "ࠦ", "ࠧ", "ࠩ", "ࠪ", "ࠫ", "ࠬ",
	"࠭", "॑", "॓", "॔", "ྂ", "ྃ", "྆", "྇",
	"፝", "፞", "፟", "៝", "᤺", "ᨗ", "᩵", "᩶",
	"᩷", "᩸", "᩹", "᩺", "᩻", "᩼", "᭫", "᭭",
	"᭮", "᭯", "᭰", "᭱", "᭲", "᭳", "᳐", "᳑",
	"᳒", "᳚", "᳛", "᳠", "᷀", "᷁", "᷃", "᷄",
	"᷅", "᷆", "᷇", "᷈", "᷉", "᷋", "᷌", "᷑",
	"᷒", "ᷓ", "ᷔ", "ᷕ", "ᷖ", "ᷗ", "ᷘ", "ᷙ",
	"ᷚ", "ᷛ", "ᷜ", "ᷝ", "ᷞ", "ᷟ", "ᷠ", "ᷡ",
	"ᷢ", "ᷣ", "ᷤ", "ᷥ", "ᷦ", "᷾", "⃐", "⃑",
	"⃔", "⃕", "⃖", "⃗", "⃛", "⃜", "⃡", "⃧",
	"⃩", "⃰", "⳯", "⳰", "⳱", "ⷠ", "ⷡ", "ⷢ",
	"ⷣ", "ⷤ", "ⷥ", "ⷦ", "ⷧ", "ⷨ", "ⷩ", "ⷪ",
	"ⷫ", "ⷬ", "ⷭ", "ⷮ", "ⷯ", "ⷰ", "ⷱ", "ⷲ",
	"ⷳ", "ⷴ", "ⷵ", "ⷶ", "ⷷ", "ⷸ", "ⷹ", "ⷺ",
	"ⷻ", "ⷼ", "ⷽ", "ⷾ", "ⷿ", "꙯", "꙼", "꙽",
	"꛰", "꛱", "꣠", "꣡", "꣢", "꣣", "꣤", "꣥",
	"꣦", "꣧", "꣨", "꣩", "꣪", "꣫", "꣬", "꣭",
	"꣮", "꣯", "꣰", "꣱", "ꪰ", "ꪲ", "ꪳ", "ꪷ",
	"ꪸ", "ꪾ", "꪿", "꫁", "︠", "︡", "︢", "︣",
	"︤", "︥", "︦",
	"\U00010a0f", "\U00010a38", "\U0001d185", "\U0001d186", "\U0001d187",
	"\U0001d188", "\U0001d189", "\U0001d1aa", "\U0001d1ab", "\U0001d1ac",
	"\U0001d1ad", "\U0001d242", "\U0001d243", "\U0001d244",
}
