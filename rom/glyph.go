package rom

import "time"

// Glyph is one character's pixel grid: rows of booleans, true marking a
// foreground pixel. A glyph has no identity of its own; it is addressed
// by its position in a glyph set.
//
// A ragged or undersized grid is legal on the read side: missing rows and
// missing columns read as background. Encoders always emit the full
// geometry of their configuration.
type Glyph [][]bool

// NewGlyph returns a blank width x height glyph.
func NewGlyph(width, height int) Glyph {
	g := make(Glyph, height)
	for i := range g {
		g[i] = make([]bool, width)
	}
	return g
}

// At reports the pixel at (row, col), reading entries outside the grid
// as background.
func (g Glyph) At(row, col int) bool {
	if row < 0 || row >= len(g) {
		return false
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return false
	}
	return r[col]
}

// Clone returns a deep copy of the glyph.
func (g Glyph) Clone() Glyph {
	if g == nil {
		return nil
	}
	out := make(Glyph, len(g))
	for i, row := range g {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Metadata identifies a glyph set in the library. It is opaque to the
// codec: nothing here changes how bytes are laid out.
type Metadata struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Source       string    `json:"source,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	System       string    `json:"system,omitempty"`
	Chip         string    `json:"chip,omitempty"`
	Locale       string    `json:"locale,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
	IsBuiltIn    bool      `json:"isBuiltIn,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IsPinned     bool      `json:"isPinned,omitempty"`
	Origin       string    `json:"origin,omitempty"`
}

// Clone returns a deep copy of the metadata.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	return out
}

// GlyphSet ties glyph pixel grids to the binary layout describing them.
type GlyphSet struct {
	Metadata Metadata
	Config   GlyphSetConfig
	Glyphs   []Glyph
}

// Clone returns a deep copy of the set: mutating the clone's glyphs never
// touches the original.
func (s GlyphSet) Clone() GlyphSet {
	out := s
	out.Metadata = s.Metadata.Clone()
	if s.Glyphs != nil {
		out.Glyphs = make([]Glyph, len(s.Glyphs))
		for i, g := range s.Glyphs {
			out.Glyphs[i] = g.Clone()
		}
	}
	return out
}
