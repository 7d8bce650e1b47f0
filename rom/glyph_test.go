package rom

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	set := GlyphSet{
		Metadata: Metadata{Name: "PET 2001", Tags: []string{"commodore"}},
		Config:   GlyphSetConfig{Width: 8, Height: 8},
		Glyphs:   []Glyph{NewGlyph(8, 8)},
	}
	clone := set.Clone()
	if !reflect.DeepEqual(clone, set) {
		t.Fatal("expected an identical set")
	}

	clone.Glyphs[0][0][0] = true
	clone.Metadata.Tags[0] = "changed"
	if set.Glyphs[0][0][0] || set.Metadata.Tags[0] != "commodore" {
		t.Fatal("clone aliases the original")
	}
}

func TestConfigJSON(t *testing.T) {
	cfg := GlyphSetConfig{
		Width:     12,
		Height:    10,
		BitOrder:  LSBFirst,
		Padding:   PadLeft,
		ByteOrder: LittleEndian,
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"width":12,"height":10,"bitOrder":"LSB","padding":"LEFT","byteOrder":"LITTLE"}`
	if string(b) != expected {
		t.Fatalf("expected %s, got %s", expected, b)
	}

	var back GlyphSetConfig
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != cfg {
		t.Fatalf("expected %v, got %v", cfg, back)
	}

	if err := json.Unmarshal([]byte(`{"bitOrder":"MIDDLE"}`), &back); err == nil {
		t.Fatal("expected an error on an unknown bit order")
	}
}
