// Package rom implements the in-memory model of character generator ROMs:
// the glyph pixel grid, the packed binary layout describing it, and the
// codec between the two.
//
// The model is deliberately forgiving of the *data* (short or truncated
// ROM dumps decode as blank rows, trailing partial glyphs are dropped)
// and strict about the *configuration* interpreting it: a width or height
// below 1 is rejected up front with an InvalidConfigError.
package rom

import "fmt"

// BitOrder selects which end of a byte the leftmost pixel of a row occupies.
type BitOrder uint8

const (
	// MSBFirst stores the leftmost pixel in the most significant bit.
	// This is the convention of almost all character generator chips.
	MSBFirst BitOrder = iota
	LSBFirst
)

func (b BitOrder) String() string {
	if b == LSBFirst {
		return "LSB"
	}
	return "MSB"
}

// MarshalJSON writes the stable wire name ("MSB" or "LSB").
func (b BitOrder) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *BitOrder) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"MSB"`:
		*b = MSBFirst
	case `"LSB"`:
		*b = LSBFirst
	default:
		return fmt.Errorf("invalid bit order %s", data)
	}
	return nil
}

// Padding selects, when the width is not a multiple of 8, which side of
// the row's last byte the unused bits sit on.
type Padding uint8

const (
	// PadRight keeps the pixel data flush with the high bits, leaving the
	// unused bits after them.
	PadRight Padding = iota
	PadLeft
)

func (p Padding) String() string {
	if p == PadLeft {
		return "LEFT"
	}
	return "RIGHT"
}

func (p Padding) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Padding) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"RIGHT"`:
		*p = PadRight
	case `"LEFT"`:
		*p = PadLeft
	default:
		return fmt.Errorf("invalid padding %s", data)
	}
	return nil
}

// ByteOrder governs, for rows wider than 8 pixels, whether the first byte
// of the row holds the most significant bit group.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LITTLE"
	}
	return "BIG"
}

func (o ByteOrder) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

func (o *ByteOrder) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"BIG"`:
		*o = BigEndian
	case `"LITTLE"`:
		*o = LittleEndian
	default:
		return fmt.Errorf("invalid byte order %s", data)
	}
	return nil
}

// Anchor selects the corner kept fixed when a glyph is cropped or padded
// to new dimensions.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

func (a Anchor) String() string {
	switch a {
	case AnchorTopRight:
		return "TOP_RIGHT"
	case AnchorBottomLeft:
		return "BOTTOM_LEFT"
	case AnchorBottomRight:
		return "BOTTOM_RIGHT"
	default:
		return "TOP_LEFT"
	}
}

// InvalidConfigError reports a glyph geometry the codec can't work with.
// It is returned when entering a codec function, never from deep inside
// the encode or decode loops.
type InvalidConfigError struct {
	Field string
	Value int
}

func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid glyph config: %s is %d, must be at least 1", e.Field, e.Value)
}
