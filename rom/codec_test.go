package rom

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestDecodeKnownPatterns(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, 8)

	cfg := GlyphSetConfig{Width: 8, Height: 8}
	g, err := BytesToGlyph(data, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range g {
		if !reflect.DeepEqual(row, []bool{true, false, true, false, true, false, true, false}) {
			t.Fatalf("MSB row %d: got %v", i, row)
		}
	}

	cfg.BitOrder = LSBFirst
	g, err = BytesToGlyph(data, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range g {
		if !reflect.DeepEqual(row, []bool{false, true, false, true, false, true, false, true}) {
			t.Fatalf("LSB row %d: got %v", i, row)
		}
	}
}

func TestPaddingBoundary(t *testing.T) {
	g := Glyph{{true, true, true, true, true, true}}

	for _, test := range []struct {
		padding  Padding
		expected byte
	}{
		{PadRight, 0xFC},
		{PadLeft, 0x3F},
	} {
		cfg := GlyphSetConfig{Width: 6, Height: 1, Padding: test.padding}
		b, err := GlyphToBytes(g, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != 1 || b[0] != test.expected {
			t.Errorf("padding %s: expected [0x%02X], got % 02X", test.padding, test.expected, b)
		}
	}
}

func TestByteOrder(t *testing.T) {
	// one row, 16 pixels: only the leftmost pixel set
	g := NewGlyph(16, 1)
	g[0][0] = true

	cfg := GlyphSetConfig{Width: 16, Height: 1}
	b, err := GlyphToBytes(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x80, 0x00}) {
		t.Errorf("big endian: got % 02X", b)
	}

	cfg.ByteOrder = LittleEndian
	b, err = GlyphToBytes(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x00, 0x80}) {
		t.Errorf("little endian: got % 02X", b)
	}
}

var roundTripConfigs = []GlyphSetConfig{
	{Width: 8, Height: 8},
	{Width: 8, Height: 8, BitOrder: LSBFirst},
	{Width: 6, Height: 7, Padding: PadLeft},
	{Width: 6, Height: 7, BitOrder: LSBFirst, Padding: PadLeft},
	{Width: 5, Height: 8},
	{Width: 12, Height: 10},
	{Width: 16, Height: 16, ByteOrder: LittleEndian},
	{Width: 13, Height: 14, BitOrder: LSBFirst, Padding: PadLeft, ByteOrder: LittleEndian},
	{Width: 1, Height: 1},
}

func TestRomRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x901225))
	for _, cfg := range roundTripConfigs {
		for _, count := range []int{0, 1, 3, 96, 256} {
			data := make([]byte, count*cfg.GlyphSize())
			rnd.Read(data)

			// padding bits must survive too: the encoder rewrites every
			// bit position the decoder reads, and only those
			mask, err := GlyphToBytes(fullGlyph(cfg), cfg)
			if err != nil {
				t.Fatal(err)
			}
			for i := range data {
				data[i] &= mask[i%len(mask)]
			}

			glyphs, err := ParseROM(data, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if len(glyphs) != count {
				t.Fatalf("%v: expected %d glyphs, got %d", cfg, count, len(glyphs))
			}
			back, err := SerializeROM(glyphs, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(back, data) {
				t.Fatalf("%v: ROM round trip mismatch", cfg)
			}
		}
	}
}

func fullGlyph(cfg GlyphSetConfig) Glyph {
	g := NewGlyph(cfg.Width, cfg.Height)
	for _, row := range g {
		for i := range row {
			row[i] = true
		}
	}
	return g
}

func TestGlyphRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2513))
	for _, cfg := range roundTripConfigs {
		g := NewGlyph(cfg.Width, cfg.Height)
		for _, row := range g {
			for i := range row {
				row[i] = rnd.Intn(2) == 1
			}
		}
		b, err := GlyphToBytes(g, cfg)
		if err != nil {
			t.Fatal(err)
		}
		back, err := BytesToGlyph(b, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(back, g) {
			t.Fatalf("%v: glyph round trip mismatch", cfg)
		}
	}
}

func TestShortInputDecodesBlank(t *testing.T) {
	cfg := GlyphSetConfig{Width: 8, Height: 8}

	// only the first two rows are present
	g, err := BytesToGlyph([]byte{0xFF, 0xFF}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if g.At(row, col) != (row < 2) {
				t.Fatalf("row %d col %d: got %v", row, col, g.At(row, col))
			}
		}
	}
}

func TestRaggedGlyphEncodes(t *testing.T) {
	cfg := GlyphSetConfig{Width: 8, Height: 8}

	// sparse glyph: one short row, missing rows below
	g := Glyph{{true}, nil, {false, false, true}}
	b, err := GlyphToBytes(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	expected := make([]byte, 8)
	expected[0] = 0x80
	expected[2] = 0x20
	if !bytes.Equal(b, expected) {
		t.Fatalf("expected % 02X, got % 02X", expected, b)
	}
}

func TestParseROMTrailing(t *testing.T) {
	cfg := GlyphSetConfig{Width: 8, Height: 8}

	glyphs, err := ParseROM(nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 0 {
		t.Fatal("expected no glyph from an empty buffer")
	}

	// 8 bytes of a complete glyph, 3 bytes of a partial one
	glyphs, err = ParseROM(make([]byte, 11), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 1 {
		t.Fatalf("expected the partial glyph to be dropped, got %d glyphs", len(glyphs))
	}
}

func TestInvalidConfig(t *testing.T) {
	for _, cfg := range []GlyphSetConfig{
		{Width: 0, Height: 8},
		{Width: 8, Height: 0},
		{Width: -3, Height: 8},
	} {
		_, err := ParseROM([]byte{1, 2, 3}, cfg)
		var invalid InvalidConfigError
		if !errors.As(err, &invalid) {
			t.Fatalf("%v: expected InvalidConfigError, got %v", cfg, err)
		}
		if invalid.Field == "" {
			t.Fatal("expected the offending field to be named")
		}

		if _, err = BytesToGlyph(nil, cfg); err == nil {
			t.Fatal("expected an error")
		}
		if _, err = GlyphToBytes(nil, cfg); err == nil {
			t.Fatal("expected an error")
		}
		if _, err = SerializeROM(nil, cfg); err == nil {
			t.Fatal("expected an error")
		}
	}
}
