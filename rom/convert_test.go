package rom

import (
	"reflect"
	"testing"
)

// 4x4 test glyph:
//
//	##..
//	#...
//	...#
//	..##
var convertSrc = Glyph{
	{true, true, false, false},
	{true, false, false, false},
	{false, false, false, true},
	{false, false, true, true},
}

func TestConvertShrink(t *testing.T) {
	from := GlyphSetConfig{Width: 4, Height: 4}
	to := GlyphSetConfig{Width: 2, Height: 2}

	g, err := ConvertGlyph(convertSrc, from, to, AnchorBottomRight)
	if err != nil {
		t.Fatal(err)
	}
	// bottom right quadrant survives
	expected := Glyph{
		{false, true},
		{true, true},
	}
	if !reflect.DeepEqual(g, expected) {
		t.Fatalf("expected %v, got %v", expected, g)
	}

	g, err = ConvertGlyph(convertSrc, from, to, AnchorTopLeft)
	if err != nil {
		t.Fatal(err)
	}
	expected = Glyph{
		{true, true},
		{true, false},
	}
	if !reflect.DeepEqual(g, expected) {
		t.Fatalf("expected %v, got %v", expected, g)
	}
}

func TestConvertGrow(t *testing.T) {
	from := GlyphSetConfig{Width: 4, Height: 4}
	to := GlyphSetConfig{Width: 6, Height: 5}

	g, err := ConvertGlyph(convertSrc, from, to, AnchorTopLeft)
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 5 || len(g[0]) != 6 {
		t.Fatalf("unexpected dimensions %dx%d", len(g[0]), len(g))
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 6; col++ {
			if g.At(row, col) != convertSrc.At(row, col) {
				t.Fatalf("row %d col %d: got %v", row, col, g.At(row, col))
			}
		}
	}

	g, err = ConvertGlyph(convertSrc, from, to, AnchorBottomRight)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 6; col++ {
			if g.At(row, col) != convertSrc.At(row-1, col-2) {
				t.Fatalf("row %d col %d: got %v", row, col, g.At(row, col))
			}
		}
	}
}

func TestConvertEqualDimsCopies(t *testing.T) {
	cfg := GlyphSetConfig{Width: 4, Height: 4}
	src := convertSrc.Clone()

	g, err := ConvertGlyph(src, cfg, cfg, AnchorTopLeft)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g, src) {
		t.Fatal("expected an identical glyph")
	}
	g[0][0] = !g[0][0]
	if reflect.DeepEqual(g, src) {
		t.Fatal("conversion must not alias its input")
	}
}

func TestConvertMixedAxes(t *testing.T) {
	// grow in width, shrink in height
	from := GlyphSetConfig{Width: 4, Height: 4}
	to := GlyphSetConfig{Width: 5, Height: 3}

	g, err := ConvertGlyph(convertSrc, from, to, AnchorBottomLeft)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			if g.At(row, col) != convertSrc.At(row+1, col) {
				t.Fatalf("row %d col %d: got %v", row, col, g.At(row, col))
			}
		}
	}
}
