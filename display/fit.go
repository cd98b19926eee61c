package display

// FitMode decides how a Display resolves its natural size against the
// space available to it.
type FitMode int

const (
	FitNone FitMode = iota
	FitShrink
	FitGrow
	FitScale
)

// Size is a pair of optional dimensions: nil means "no constraint in this
// axis", used both for a natural size that's only known in one direction
// (e.g. text with a known width but reflowing height) and for a resolved
// size that still needs the other axis derived from aspect ratio.
type Size struct {
	Width, Height *int
}

// ResolveSize applies fitWidth/fitHeight independently to each axis of
// natural against available. If exactly one axis is then still
// unconstrained and natural carries an aspect ratio, the missing axis is
// derived from the other.
func ResolveSize(natural, available Size, fitWidth, fitHeight FitMode) (w, h *int) {
	w = resolveAxis(natural.Width, available.Width, fitWidth)
	h = resolveAxis(natural.Height, available.Height, fitHeight)

	if w == nil && h != nil && natural.Width != nil && natural.Height != nil && *natural.Height > 0 {
		derived := ceilDiv(*natural.Width**h, *natural.Height)
		w = &derived
	}
	if h == nil && w != nil && natural.Width != nil && natural.Height != nil && *natural.Width > 0 {
		derived := ceilDiv(*natural.Height**w, *natural.Width)
		h = &derived
	}
	return w, h
}

func resolveAxis(natural, available *int, fit FitMode) *int {
	switch fit {
	case FitNone:
		return nil
	case FitShrink:
		if natural == nil {
			return available
		}
		if available == nil {
			return natural
		}
		return minPtr(*natural, *available)
	case FitGrow:
		if natural == nil {
			return available
		}
		if available == nil {
			return natural
		}
		return maxPtr(*natural, *available)
	case FitScale:
		return available
	default:
		return nil
	}
}

func minPtr(a, b int) *int {
	if a < b {
		return &a
	}
	return &b
}

func maxPtr(a, b int) *int {
	if a > b {
		return &a
	}
	return &b
}

func ceilDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	if num%den == 0 {
		return num / den
	}
	return num/den + 1
}
