package vtinput

import "strconv"

// decodeSGRMouse parses "\x1b[<Cb;Cx;CyM" or the 'm' (release) terminator
// form. Button/col/row are 0-based once the SGR 1-based coordinates and the
// button-state bit tricks are unpacked.
func decodeSGRMouse(seq string) *MouseEvent {
	m := mouseEventRe.FindStringSubmatch(seq)
	if m == nil {
		return nil
	}
	cb, _ := strconv.Atoi(m[1])
	cx, _ := strconv.Atoi(m[2])
	cy, _ := strconv.Atoi(m[3])
	final := m[4]

	ev := &MouseEvent{
		Button:  cb & 0x3,
		Col:     cx - 1,
		Row:     cy - 1,
		Pressed: final == "M",
	}
	switch {
	case cb&64 != 0 && cb&1 == 0:
		ev.ScrollUp = true
	case cb&64 != 0 && cb&1 != 0:
		ev.ScrollDown = true
	}
	return ev
}

// decodeX10Mouse parses the legacy "\x1b[M" + 3 raw bytes report, where each
// value is offset by 32 (and coordinates additionally by 1).
func decodeX10Mouse(seq string) *MouseEvent {
	if len(seq) < 6 {
		return nil
	}
	raw := []byte(seq)[3:6]
	cb := int(raw[0]) - 32
	cx := int(raw[1]) - 32
	cy := int(raw[2]) - 32

	return &MouseEvent{
		Button:  cb & 0x3,
		Col:     cx - 1,
		Row:     cy - 1,
		Pressed: cb&0x3 != 0x3,
	}
}

// DecodePixelSGRMouse resolves the sub-cell fractional position for a
// pixel-SGR mouse report (mode 1016), where the reported coordinates are in
// pixels rather than cells. cellW/cellH are the terminal's current cell
// size in pixels, as learned from a PixelSizeResponse query.
func DecodePixelSGRMouse(seq string, cellW, cellH int) *MouseEvent {
	m := mouseEventRe.FindStringSubmatch(seq)
	if m == nil || cellW <= 0 || cellH <= 0 {
		return nil
	}
	cb, _ := strconv.Atoi(m[1])
	px, _ := strconv.Atoi(m[2])
	py, _ := strconv.Atoi(m[3])
	final := m[4]

	col := (px - 1) / cellW
	row := (py - 1) / cellH
	fx := float64((px-1)%cellW) / float64(cellW)
	fy := float64((py-1)%cellH) / float64(cellH)

	return &MouseEvent{
		Button:  cb & 0x3,
		Col:     col,
		Row:     row,
		Pressed: final == "M",
		FX:      fx,
		FY:      fy,
	}
}
