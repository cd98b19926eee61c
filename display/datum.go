package display

import "crypto/sha256"

// Datum is a piece of raw displayable content (image bytes, an SVG
// document, a LaTeX snippet) plus its natural size, keyed by content hash
// so conversions and placements can be cached per distinct payload.
type Datum struct {
	Format        string
	Hash          [32]byte
	Bytes         []byte
	NaturalWidth  int
	NaturalHeight int
}

// NewDatum hashes bytes to build a Datum usable as a cache key.
func NewDatum(format string, bytes []byte, naturalWidth, naturalHeight int) Datum {
	return Datum{
		Format:        format,
		Hash:          sha256.Sum256(bytes),
		Bytes:         bytes,
		NaturalWidth:  naturalWidth,
		NaturalHeight: naturalHeight,
	}
}

func (d Datum) naturalSize() Size {
	w, h := d.NaturalWidth, d.NaturalHeight
	return Size{Width: &w, Height: &h}
}
