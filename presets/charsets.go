package presets

import "golang.org/x/text/encoding/charmap"

// Charset selects how a system maps glyph indices to displayed runes.
// Consumers use it to label glyphs in previews and exports; the codec
// never looks at it.
type Charset uint8

const (
	CharsetASCII Charset = iota // printable ASCII, starting at 0x20
	CharsetCP437
	CharsetLatin1
	CharsetPETSCII // Commodore screen codes, upper case bank
)

func (c Charset) String() string {
	switch c {
	case CharsetCP437:
		return "cp437"
	case CharsetLatin1:
		return "latin1"
	case CharsetPETSCII:
		return "petscii"
	default:
		return "ascii"
	}
}

// Rune maps a glyph index to the rune the charset displays for it.
// Indices outside the charset come back as the Unicode replacement
// character, which is also what the underlying codepage tables use for
// unmapped bytes.
func (c Charset) Rune(index int) rune {
	switch c {
	case CharsetCP437:
		if index < 0 || index > 0xFF {
			return '�'
		}
		return charmap.CodePage437.DecodeByte(byte(index))
	case CharsetLatin1:
		if index < 0 || index > 0xFF {
			return '�'
		}
		return charmap.ISO8859_1.DecodeByte(byte(index))
	case CharsetPETSCII:
		return petsciiRune(index)
	default:
		if index >= 0 && index < 0x60 {
			return rune(0x20 + index)
		}
		return '�'
	}
}

// CharsetRune maps a glyph index to the rune the given system displays
// for it. Glyph indices are logical character codes, i.e. positions
// after the reading order mapping.
func CharsetRune(systemID string, index int) rune {
	sys, ok := systems[systemID]
	if !ok {
		return '�'
	}
	return sys.Charset.Rune(index)
}

// petsciiRune covers the upper case bank of the Commodore screen code
// table. Codes 0x80 and up are the reverse video copies.
func petsciiRune(sc int) rune {
	sc &= 0x7F // reverse video shows the same shape
	switch {
	case sc == 0:
		return '@'
	case sc >= 1 && sc <= 26:
		return rune('A' + sc - 1)
	case sc == 27:
		return '['
	case sc == 28:
		return '£'
	case sc == 29:
		return ']'
	case sc == 30:
		return '↑'
	case sc == 31:
		return '←'
	case sc >= 32 && sc <= 63:
		return rune(sc) // punctuation and digits match ASCII
	default:
		return '�' // graphics characters have no single rune
	}
}
