package graphics

import "strings"

// Multiplexer names a terminal multiplexer a session may be running
// inside, each demanding its own passthrough envelope around any escape
// sequence meant for the outer terminal rather than the multiplexer itself.
type Multiplexer int

const (
	MultiplexerNone Multiplexer = iota
	MultiplexerTmux
	MultiplexerScreen
)

// screenChunkSize is the byte limit GNU screen imposes on the body of a
// single DCS passthrough sequence. 764 is the empirically safe cap; 768 is
// sometimes cited but overflows on some screen builds.
const screenChunkSize = 764

// WrapPassthrough wraps cmd so it reaches the real terminal instead of
// being consumed by an enclosing multiplexer. tmux doubles every ESC and
// wraps the whole command in one DCS tmux; envelope; screen has no
// escaping requirement but refuses any DCS longer than screenChunkSize
// bytes, so the command is split into consecutive DCS ... ST chunks.
func WrapPassthrough(cmd string, mplex Multiplexer) string {
	switch mplex {
	case MultiplexerTmux:
		escaped := strings.ReplaceAll(cmd, "\x1b", "\x1b\x1b")
		return "\x1bPtmux;" + escaped + "\x1b\\"
	case MultiplexerScreen:
		var sb strings.Builder
		for i := 0; i < len(cmd); i += screenChunkSize {
			end := i + screenChunkSize
			if end > len(cmd) {
				end = len(cmd)
			}
			sb.WriteString("\x1bP")
			sb.WriteString(cmd[i:end])
			sb.WriteString("\x1b\\")
		}
		return sb.String()
	default:
		return cmd
	}
}
