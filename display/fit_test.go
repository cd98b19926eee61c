package display

import "testing"

func intp(n int) *int { return &n }

func eqPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestResolveSizeFitModes(t *testing.T) {
	natural := Size{Width: intp(40), Height: intp(20)}
	available := Size{Width: intp(30), Height: intp(30)}

	tests := []struct {
		name                string
		fitWidth, fitHeight FitMode
		wantW, wantH        *int
	}{
		{"none leaves both unconstrained", FitNone, FitNone, nil, nil},
		{"shrink clamps to the smaller", FitShrink, FitShrink, intp(30), intp(20)},
		{"grow takes the larger", FitGrow, FitGrow, intp(40), intp(30)},
		{"scale takes available", FitScale, FitScale, intp(30), intp(30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ResolveSize(natural, available, tt.fitWidth, tt.fitHeight)
			if !eqPtr(w, tt.wantW) || !eqPtr(h, tt.wantH) {
				t.Fatalf("got (%v, %v), want (%v, %v)", deref(w), deref(h), deref(tt.wantW), deref(tt.wantH))
			}
		})
	}
}

func deref(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func TestResolveSizeDerivesWidthFromAspectRatio(t *testing.T) {
	// A 2:1 image with only the height constrained: width follows the ratio.
	natural := Size{Width: intp(100), Height: intp(50)}
	available := Size{Width: intp(80), Height: intp(10)}

	w, h := ResolveSize(natural, available, FitNone, FitShrink)
	if h == nil || *h != 10 {
		t.Fatalf("expected height 10, got %v", deref(h))
	}
	if w == nil || *w != 20 {
		t.Fatalf("expected width derived as 20 from the 2:1 ratio, got %v", deref(w))
	}
}

func TestResolveSizeDerivesHeightFromAspectRatio(t *testing.T) {
	natural := Size{Width: intp(30), Height: intp(10)}
	available := Size{Width: intp(15), Height: intp(40)}

	w, h := ResolveSize(natural, available, FitShrink, FitNone)
	if w == nil || *w != 15 {
		t.Fatalf("expected width 15, got %v", deref(w))
	}
	if h == nil || *h != 5 {
		t.Fatalf("expected height derived as 5, got %v", deref(h))
	}
}

func TestResolveSizeAspectRoundsUp(t *testing.T) {
	natural := Size{Width: intp(10), Height: intp(3)}
	available := Size{Width: intp(7), Height: intp(40)}

	_, h := ResolveSize(natural, available, FitShrink, FitNone)
	if h == nil || *h != 3 {
		t.Fatalf("expected ceil(7*3/10) = 3, got %v", deref(h))
	}
}

func TestResolveSizeNoAspectWithoutNaturalSize(t *testing.T) {
	natural := Size{}
	available := Size{Width: intp(20), Height: intp(10)}

	w, h := ResolveSize(natural, available, FitNone, FitScale)
	if w != nil {
		t.Fatalf("expected no derived width without a natural aspect ratio, got %v", deref(w))
	}
	if h == nil || *h != 10 {
		t.Fatalf("expected height 10, got %v", deref(h))
	}
}
