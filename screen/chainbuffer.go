package screen

import "github.com/slatebook/slate/cellmodel"

// ChainBuffer composes a base screen with a stack of overlay layers (drawn
// by floats), so that a read at a coordinate returns the top-most non-empty
// cell across all layers. Flatten copies the layers onto the base in
// ascending z-index order and discards the overlay structure, leaving the
// base screen holding the composed result.
type ChainBuffer struct {
	base   *Screen
	layers []*Screen
}

// Read returns the top-most cell at (x, y) across the overlay stack and the
// base screen, preferring later layers (drawn later, so logically "above").
func (c *ChainBuffer) Read(x, y int) (cellmodel.Cell, bool) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if cell, ok := c.layers[i].Get(x, y); ok {
			return cell, true
		}
	}
	return c.base.Get(x, y)
}

// Flatten copies every layer onto the base screen in ascending z-index
// order (the order layers were appended in), so a later float's cells
// overwrite an earlier float's, and discards the layer stack.
func (c *ChainBuffer) Flatten() {
	for _, layer := range c.layers {
		for y, row := range layer.Cells {
			for x, cell := range row {
				c.base.Put(x, y, cell)
			}
		}
		for y, row := range layer.Escapes {
			for x, esc := range row {
				c.base.PutEscape(x, y, esc)
			}
		}
		for id, info := range layer.WritePositions {
			c.base.WritePositions[id] = info
		}
	}
	c.layers = nil
}
