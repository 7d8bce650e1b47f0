package rom

// GlyphSetConfig describes the packed binary layout of one glyph set:
// the pixel dimensions of a glyph, and how the pixels of a row map to
// bits. The zero value of the three order fields selects the convention
// of most character generator hardware: MSB first, padding on the right,
// big-endian multi-byte rows.
type GlyphSetConfig struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	BitOrder  BitOrder  `json:"bitOrder"`
	Padding   Padding   `json:"padding"`
	ByteOrder ByteOrder `json:"byteOrder"`
}

// Validate rejects dimensions the codec can't work with.
func (c GlyphSetConfig) Validate() error {
	if c.Width < 1 {
		return InvalidConfigError{Field: "width", Value: c.Width}
	}
	if c.Height < 1 {
		return InvalidConfigError{Field: "height", Value: c.Height}
	}
	return nil
}

// BytesPerRow returns the number of bytes storing one pixel row.
func (c GlyphSetConfig) BytesPerRow() int {
	return (c.Width + 7) / 8
}

// GlyphSize returns the number of bytes storing one full glyph.
func (c GlyphSetConfig) GlyphSize() int {
	return c.Height * c.BytesPerRow()
}

// bitPosition maps a pixel column to its location within the packed row:
// the index of the byte holding it, and the shift of its bit inside that
// byte. All the bit geometry lives here; both the encoder and the decoder
// go through it, so they agree by construction.
func (c GlyphSetConfig) bitPosition(col int) (byteIndex, bitIndex int) {
	offset := col
	if c.Padding == PadLeft {
		offset += c.BytesPerRow()*8 - c.Width
	}
	byteIndex = offset / 8
	bitIndex = 7 - offset%8
	if c.BitOrder == LSBFirst {
		bitIndex = 7 - bitIndex
	}
	if c.ByteOrder == LittleEndian {
		byteIndex = c.BytesPerRow() - 1 - byteIndex
	}
	return byteIndex, bitIndex
}
