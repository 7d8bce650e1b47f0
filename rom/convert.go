package rom

// ConvertGlyph resizes a glyph between two configurations by overlaying
// the source onto a blank canvas of the target dimensions, aligned at the
// anchor corner. Pixels of the target outside the source extent stay
// background; pixels of the source outside the target are dropped. This
// is a pure crop/pad: no scaling happens even when both dimensions
// change. Equal dimensions return a deep copy.
func ConvertGlyph(g Glyph, from, to GlyphSetConfig, anchor Anchor) (Glyph, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, err
	}

	// the source's displacement on the target canvas; zero on anchored axes
	var dx, dy int
	if anchor == AnchorTopRight || anchor == AnchorBottomRight {
		dx = to.Width - from.Width
	}
	if anchor == AnchorBottomLeft || anchor == AnchorBottomRight {
		dy = to.Height - from.Height
	}

	out := NewGlyph(to.Width, to.Height)
	for row := 0; row < to.Height; row++ {
		for col := 0; col < to.Width; col++ {
			out[row][col] = g.At(row-dy, col-dx)
		}
	}
	return out, nil
}
