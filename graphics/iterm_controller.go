package graphics

import (
	"encoding/base64"
	"fmt"

	"github.com/slatebook/slate/layout"
	"github.com/slatebook/slate/screen"
)

// itermController paints bitmaps with iTerm2's inline-image OSC
// (\x1b]1337;File=...), used by WezTerm/Konsole/mlterm as well. Like
// sixel, it carries no server-side identity to clean up on Reset.
type itermController struct {
	mplex                           Multiplexer
	cellPixelWidth, cellPixelHeight int
}

func (i *itermController) RenderedLines(img *Image, cols, rows int, bbox screen.Inset) [][]layout.StyledText {
	displayRows := rows - bbox.Top - bbox.Bottom
	displayCols := cols - bbox.Left - bbox.Right
	if displayRows <= 0 || displayCols <= 0 {
		return nil
	}
	cropped := cropRGBA(img, bbox, cols, rows, i.cellPixelWidth, i.cellPixelHeight)
	if cropped.PixelWidth == 0 || cropped.PixelHeight == 0 {
		return nil
	}
	png := encodePNG(cropped)
	b64 := base64.StdEncoding.EncodeToString(png)
	cmd := fmt.Sprintf("\x1b]1337;File=inline=1;width=%d;height=%d;preserveAspectRatio=0:%s\a", displayCols, displayRows, b64)
	return gridWithEscape(displayCols, displayRows, WrapPassthrough(cmd, i.mplex))
}

func (i *itermController) Hide() string      { return "" }
func (i *itermController) Reset(bool) string { return "" }
