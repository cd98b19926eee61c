package render

import (
	"strings"
	"testing"
)

func TestSetupModesOrdersAlternateScreenFirst(t *testing.T) {
	var sb strings.Builder
	err := SetupModes(&sb, ModeConfig{AlternateScreen: true, Mouse: true, BracketedPaste: true})
	if err != nil {
		t.Fatalf("SetupModes: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, EnterAlternateScreen) {
		t.Fatalf("expected the alternate-screen toggle first, got %q", out)
	}
	for _, want := range []string{DisableAutowrap, EnableBracketedPaste, EnableMouse} {
		if !strings.Contains(out, want) {
			t.Errorf("setup missing %q", want)
		}
	}
	if strings.Contains(out, EnableSgrPixelMouse) {
		t.Errorf("setup enabled SGR-pixel mouse without being asked")
	}
}

func TestTeardownModesUndoesEverythingUnconditionally(t *testing.T) {
	var sb strings.Builder
	if err := TeardownModes(&sb); err != nil {
		t.Fatalf("TeardownModes: %v", err)
	}
	out := sb.String()
	for _, want := range []string{DisableMouse, DisableBracketedPaste, DisableExtendedKeys, EnableAutowrap, escReset, escShowCursor, ExitAlternateScreen} {
		if !strings.Contains(out, want) {
			t.Errorf("teardown missing %q", want)
		}
	}
	if strings.Index(out, escReset) > strings.Index(out, ExitAlternateScreen) {
		t.Errorf("expected the attribute reset before leaving the alternate screen")
	}
}
