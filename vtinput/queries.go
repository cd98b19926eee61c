package vtinput

import (
	"encoding/base64"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Query sequences the application writes at startup (or on demand) to learn
// what the terminal supports. Responses come back through the normal input
// stream as the KeyPress response keys the parser recognises.
const (
	QueryForegroundColor = "\x1b]10;?\x1b\\"
	QueryBackgroundColor = "\x1b]11;?\x1b\\"
	QueryPixelSize       = "\x1b[14t"
	QueryDeviceAttrs     = "\x1b[c"
	QueryTerminalVersion = "\x1b[>q"
	QuerySgrPixelMode    = "\x1b[?1016$p"
	QueryKittyKeyboard   = "\x1b[?u"
	QueryKittyGraphics   = "\x1b_Gi=4294967295,s=1,v=1,a=q,t=d,f=24;aaaa\x1b\\"
	QueryClipboard       = "\x1b]52;c;?\x1b\\"
)

// QueryPaletteColor builds the OSC 4 query for palette entry n.
func QueryPaletteColor(n int) string {
	return "\x1b]4;" + strconv.Itoa(n) + ";?\x1b\\"
}

// SetClipboard builds the OSC 52 sequence that writes data to the
// terminal's clipboard.
func SetClipboard(data string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(data)) + "\x1b\\"
}

// Capabilities holds what the terminal-query round trip learned. A flag
// stays false until the matching response arrives; once the query's
// deadline passes without one, the capability is taken as absent for good.
type Capabilities struct {
	KittyGraphics bool
	ItermGraphics bool
	Sixel         bool
	SgrPixelMouse bool

	TerminalName string

	// Text-area pixel size from CSI 14 t, zero until reported.
	PixelWidth, PixelHeight int

	// Foreground/background as reported by OSC 10/11, in "rgb:..../..../...."
	// notation, empty until reported.
	ForegroundColor, BackgroundColor string

	// PaletteColors accumulates OSC 4 replies: palette slot -> reported
	// colour, same notation as ForegroundColor.
	PaletteColors map[int]string

	ClipboardData string
}

// QueryOption configures a QueryManager at construction time.
type QueryOption func(*QueryManager)

// WithStartupTimeout overrides the deadline applied to capability queries.
func WithStartupTimeout(d time.Duration) QueryOption {
	return func(q *QueryManager) { q.startupTimeout = d }
}

// WithClipboardTimeout overrides the deadline applied to clipboard reads.
func WithClipboardTimeout(d time.Duration) QueryOption {
	return func(q *QueryManager) { q.clipboardTimeout = d }
}

// WithClock substitutes the time source, for tests that expire deadlines
// without sleeping.
func WithClock(now func() time.Time) QueryOption {
	return func(q *QueryManager) { q.now = now }
}

// QueryManager owns the outstanding-terminal-query bookkeeping: which
// responses are still awaited, by when each must arrive, and the
// Capabilities record the answers accumulate into. It never blocks; the
// render loop feeds it responses as the parser produces them and calls
// ExpireOverdue on its own schedule.
type QueryManager struct {
	caps        Capabilities
	outstanding map[Key]time.Time

	startupTimeout   time.Duration
	clipboardTimeout time.Duration
	now              func() time.Time
}

// NewQueryManager returns a manager with the default 1s startup and 5s
// clipboard deadlines.
func NewQueryManager(opts ...QueryOption) *QueryManager {
	q := &QueryManager{
		outstanding:      make(map[Key]time.Time),
		startupTimeout:   time.Second,
		clipboardTimeout: 5 * time.Second,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// SendStartupQueries writes the full capability probe to w and arms a
// deadline for every expected response.
func (q *QueryManager) SendStartupQueries(w io.Writer) error {
	queries := []struct {
		seq string
		key Key
	}{
		{QueryForegroundColor, KeyColorsResponse},
		{QueryBackgroundColor, KeyColorsResponse},
		{QueryPixelSize, KeyPixelSizeResponse},
		{QueryDeviceAttrs, KeyDeviceAttributesResponse},
		{QueryTerminalVersion, KeyItermGraphicsStatusResponse},
		{QuerySgrPixelMode, KeySgrPixelStatusResponse},
		{QueryKittyGraphics, KeyKittyGraphicsStatusResponse},
	}
	deadline := q.now().Add(q.startupTimeout)
	for _, query := range queries {
		if _, err := io.WriteString(w, query.seq); err != nil {
			return err
		}
		q.outstanding[query.key] = deadline
	}
	return nil
}

// RequestClipboard writes the OSC 52 read query and arms its (longer)
// deadline.
func (q *QueryManager) RequestClipboard(w io.Writer) error {
	if _, err := io.WriteString(w, QueryClipboard); err != nil {
		return err
	}
	q.outstanding[KeyClipboardDataResponse] = q.now().Add(q.clipboardTimeout)
	return nil
}

var (
	colorsResponseDataRe    = regexp.MustCompile(`^\x1b\]((?:\d+;)?\d+);rgb:([0-9A-Fa-f]{2,4}/[0-9A-Fa-f]{2,4}/[0-9A-Fa-f]{2,4})`)
	pixelSizeResponseDataRe = regexp.MustCompile(`^\x1b\[4;(\d+);(\d+)t`)
	deviceAttrsDataRe       = regexp.MustCompile(`^\x1b\[\?([\d;]*)c`)
	itermStatusDataRe       = regexp.MustCompile(`^\x1bP>\|([^\x1b]+)\x1b\\`)
	sgrPixelStatusDataRe    = regexp.MustCompile(`^\x1b\[\?1016;(\d)\$`)
	clipboardDataRe         = regexp.MustCompile(`^\x1b\]52;(?:c|p)?;([A-Za-z0-9+/=]+)\x1b\\`)
)

// itermCapableTerms are the terminal names (reported by CSI > q) known to
// accept the iTerm inline-image OSC.
var itermCapableTerms = []string{"iTerm", "WezTerm", "Konsole", "mlterm"}

// HandleKeyPress consumes kp if it answers an outstanding query, updating
// the Capabilities record. Returns false when kp is not a query response
// (the caller should process it as ordinary input).
func (q *QueryManager) HandleKeyPress(kp KeyPress) bool {
	if _, ok := q.outstanding[kp.Key]; !ok {
		return false
	}

	switch kp.Key {
	case KeyColorsResponse:
		if m := colorsResponseDataRe.FindStringSubmatch(kp.Data); m != nil {
			switch {
			case m[1] == "10":
				q.caps.ForegroundColor = m[2]
			case m[1] == "11":
				q.caps.BackgroundColor = m[2]
			case strings.HasPrefix(m[1], "4;"):
				if n, err := strconv.Atoi(m[1][2:]); err == nil {
					if q.caps.PaletteColors == nil {
						q.caps.PaletteColors = make(map[int]string)
					}
					q.caps.PaletteColors[n] = m[2]
				}
			}
		}
		// OSC 4/10/11 share a response key; only clear once both the
		// foreground and the background are in (palette replies arrive on
		// demand and never exhaust the query).
		if q.caps.ForegroundColor == "" || q.caps.BackgroundColor == "" {
			return true
		}
	case KeyPixelSizeResponse:
		if m := pixelSizeResponseDataRe.FindStringSubmatch(kp.Data); m != nil {
			q.caps.PixelHeight, _ = strconv.Atoi(m[1])
			q.caps.PixelWidth, _ = strconv.Atoi(m[2])
		}
	case KeyDeviceAttributesResponse:
		if m := deviceAttrsDataRe.FindStringSubmatch(kp.Data); m != nil {
			for _, attr := range strings.Split(m[1], ";") {
				if attr == "4" {
					q.caps.Sixel = true
				}
			}
		}
	case KeyItermGraphicsStatusResponse:
		if m := itermStatusDataRe.FindStringSubmatch(kp.Data); m != nil {
			q.caps.TerminalName = strings.TrimSpace(m[1])
			for _, name := range itermCapableTerms {
				if strings.Contains(q.caps.TerminalName, name) {
					q.caps.ItermGraphics = true
				}
			}
		}
	case KeySgrPixelStatusResponse:
		if m := sgrPixelStatusDataRe.FindStringSubmatch(kp.Data); m != nil {
			// DECRPM: 1 = set, 2 = reset but supported.
			q.caps.SgrPixelMouse = m[1] == "1" || m[1] == "2"
		}
	case KeyKittyGraphicsStatusResponse:
		q.caps.KittyGraphics = strings.Contains(kp.Data, ";OK")
	case KeyClipboardDataResponse:
		if m := clipboardDataRe.FindStringSubmatch(kp.Data); m != nil {
			if decoded, err := base64.StdEncoding.DecodeString(m[1]); err == nil {
				q.caps.ClipboardData = string(decoded)
			}
		}
	}

	delete(q.outstanding, kp.Key)
	return true
}

// ExpireOverdue drops every outstanding query whose deadline has passed;
// the capability it probed for stays at its absent zero value.
func (q *QueryManager) ExpireOverdue() {
	now := q.now()
	for key, deadline := range q.outstanding {
		if now.After(deadline) {
			delete(q.outstanding, key)
		}
	}
}

// Pending reports whether any query is still awaiting its response.
func (q *QueryManager) Pending() bool { return len(q.outstanding) > 0 }

// Capabilities returns a copy of the accumulated capability record.
func (q *QueryManager) Capabilities() Capabilities { return q.caps }
