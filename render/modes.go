package render

import "io"

// Private-mode toggle pairs the application drives around a session. Set
// and reset strings are kept together so teardown can be derived from the
// same table that setup uses.
const (
	EnableBracketedPaste  = "\x1b[?2004h"
	DisableBracketedPaste = "\x1b[?2004l"

	EnableMouse  = "\x1b[?1000h\x1b[?1002h\x1b[?1006h"
	DisableMouse = "\x1b[?1006l\x1b[?1002l\x1b[?1000l"

	EnableSgrPixelMouse  = "\x1b[?1016h"
	DisableSgrPixelMouse = "\x1b[?1016l"

	EnableExtendedKeys  = "\x1b[>4;1m\x1b[>1u"
	DisableExtendedKeys = "\x1b[<u\x1b[>4;0m"

	EnableSyncedOutput  = "\x1b[?2026h"
	DisableSyncedOutput = "\x1b[?2026l"

	EnterAlternateScreen = "\x1b[?1049h"
	ExitAlternateScreen  = "\x1b[?1049l"

	EnableAutowrap  = "\x1b[?7h"
	DisableAutowrap = "\x1b[?7l"

	EnablePaletteChangeReports  = "\x1b[?2031h"
	DisablePaletteChangeReports = "\x1b[?2031l"
)

// ModeConfig selects which optional terminal modes a session turns on.
type ModeConfig struct {
	AlternateScreen bool
	Mouse           bool
	SgrPixelMouse   bool
	BracketedPaste  bool
	ExtendedKeys    bool
	PaletteReports  bool
}

// SetupModes writes the enter-session mode toggles for cfg: alternate
// screen first (so later toggles apply inside it), autowrap always off
// while the renderer owns the screen.
func SetupModes(w io.Writer, cfg ModeConfig) error {
	var seq string
	if cfg.AlternateScreen {
		seq += EnterAlternateScreen
	}
	seq += DisableAutowrap
	if cfg.BracketedPaste {
		seq += EnableBracketedPaste
	}
	if cfg.Mouse {
		seq += EnableMouse
	}
	if cfg.SgrPixelMouse {
		seq += EnableSgrPixelMouse
	}
	if cfg.ExtendedKeys {
		seq += EnableExtendedKeys
	}
	if cfg.PaletteReports {
		seq += EnablePaletteChangeReports
	}
	_, err := io.WriteString(w, seq)
	return err
}

// TeardownModes writes the cleanup sequence, unconditionally undoing every
// mode SetupModes can turn on. It runs on both normal shutdown and fatal
// signals, so it never consults cfg: re-disabling a mode that was never
// enabled is harmless, failing to disable one that was is not.
func TeardownModes(w io.Writer) error {
	seq := DisablePaletteChangeReports +
		DisableExtendedKeys +
		DisableSgrPixelMouse +
		DisableMouse +
		DisableBracketedPaste +
		EnableAutowrap +
		escReset +
		escShowCursor +
		ExitAlternateScreen
	_, err := io.WriteString(w, seq)
	return err
}
