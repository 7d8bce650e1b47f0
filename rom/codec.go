package rom

// BytesToGlyph decodes one glyph from its packed representation.
// Bytes past the end of the input read as zero: pasting a truncated ROM
// dump yields a partially blank glyph, never an error.
func BytesToGlyph(data []byte, cfg GlyphSetConfig) (Glyph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bpr := cfg.BytesPerRow()
	g := NewGlyph(cfg.Width, cfg.Height)
	for row := 0; row < cfg.Height; row++ {
		base := row * bpr
		for col := 0; col < cfg.Width; col++ {
			byteIndex, bitIndex := cfg.bitPosition(col)
			var b byte
			if i := base + byteIndex; i < len(data) {
				b = data[i]
			}
			g[row][col] = (b>>uint(bitIndex))&1 == 1
		}
	}
	return g, nil
}

// GlyphToBytes encodes a glyph into its packed representation. The buffer
// starts zeroed and every pixel position the decoder reads is rewritten,
// padding bits included, so encode and decode round-trip bit for bit.
// Entries outside the configured geometry are ignored.
func GlyphToBytes(g Glyph, cfg GlyphSetConfig) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bpr := cfg.BytesPerRow()
	out := make([]byte, cfg.GlyphSize())
	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			if !g.At(row, col) {
				continue
			}
			byteIndex, bitIndex := cfg.bitPosition(col)
			out[row*bpr+byteIndex] |= 1 << uint(bitIndex)
		}
	}
	return out, nil
}

// ParseROM splits a flat ROM image into consecutive glyphs. Trailing
// bytes that don't fill a whole glyph are dropped; an empty input yields
// an empty list.
func ParseROM(data []byte, cfg GlyphSetConfig) ([]Glyph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := cfg.GlyphSize()
	count := len(data) / size
	out := make([]Glyph, count)
	for i := range out {
		out[i], _ = BytesToGlyph(data[i*size:(i+1)*size], cfg)
	}
	return out, nil
}

// SerializeROM concatenates the packed form of each glyph, in order.
func SerializeROM(glyphs []Glyph, cfg GlyphSetConfig) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(glyphs)*cfg.GlyphSize())
	for _, g := range glyphs {
		b, _ := GlyphToBytes(g, cfg)
		out = append(out, b...)
	}
	return out, nil
}
