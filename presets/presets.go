// Package presets catalogs historical systems and their character
// generator chips, so a user picking "Commodore 64" gets the right
// binary layout and glyph count without touching the low level knobs.
//
// The tables are immutable package data, loaded once; resolution is a
// pure function over them.
package presets

import (
	"fmt"
	"sort"

	"github.com/retrostack/charrom/rom"
)

// Chip is one character generator chip (or the character ROM section of
// a larger part), with the binary layout its mask encodes.
type Chip struct {
	ID           string
	Name         string
	Manufacturer string
	Config       rom.GlyphSetConfig
	GlyphCount   int
}

// ROMSpec describes where a system's character ROM layout comes from:
// either stated directly, or inherited from a referenced chip.
type ROMSpec interface {
	isROMSpec()
}

func (DirectSpec) isROMSpec()    {}
func (ReferenceSpec) isROMSpec() {}

// DirectSpec states the layout explicitly, overriding any chip default.
// Systems whose font lives inside a general ROM (no dedicated character
// generator) use this form.
type DirectSpec struct {
	Config     rom.GlyphSetConfig
	GlyphCount int
}

// ReferenceSpec inherits the layout from the first known chip of the
// list.
type ReferenceSpec struct {
	ChipIDs []string
}

// System is one historical computer or terminal.
type System struct {
	ID           string
	Name         string
	Manufacturer string
	Locale       string
	ROM          ROMSpec // nil falls back to DefaultConfig
	Charset      Charset
}

// DefaultConfig is the global fallback layout: the 8x8, MSB first,
// right padded convention shared by most 8 bit machines.
var DefaultConfig = rom.GlyphSetConfig{Width: 8, Height: 8}

// DefaultGlyphCount is the glyph count assumed when nothing else is
// known (one full 8 bit code page).
const DefaultGlyphCount = 256

// ChipByID looks up a chip preset.
func ChipByID(id string) (Chip, bool) {
	c, ok := chips[id]
	return c, ok
}

// SystemByID looks up a system preset.
func SystemByID(id string) (System, bool) {
	s, ok := systems[id]
	return s, ok
}

// Systems returns all system presets, sorted by ID. The slice is a copy;
// callers may reorder it freely.
func Systems() []System {
	out := make([]System, 0, len(systems))
	for _, s := range systems {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve returns the binary layout and glyph count of a system's
// character ROM: its explicit override if it has one, else the default
// of its first known chip, else the global default.
func Resolve(systemID string) (rom.GlyphSetConfig, int, error) {
	sys, ok := systems[systemID]
	if !ok {
		return rom.GlyphSetConfig{}, 0, fmt.Errorf("unknown system %q", systemID)
	}
	switch spec := sys.ROM.(type) {
	case DirectSpec:
		return spec.Config, spec.GlyphCount, nil
	case ReferenceSpec:
		for _, id := range spec.ChipIDs {
			if chip, ok := chips[id]; ok {
				return chip.Config, chip.GlyphCount, nil
			}
		}
	}
	return DefaultConfig, DefaultGlyphCount, nil
}

// Metadata prefills library metadata from a system preset. Unknown
// systems yield a zero value.
func Metadata(systemID string) rom.Metadata {
	sys, ok := systems[systemID]
	if !ok {
		return rom.Metadata{}
	}
	md := rom.Metadata{
		Name:         sys.Name,
		Manufacturer: sys.Manufacturer,
		System:       sys.ID,
		Locale:       sys.Locale,
		IsBuiltIn:    true,
	}
	if ref, ok := sys.ROM.(ReferenceSpec); ok && len(ref.ChipIDs) > 0 {
		md.Chip = ref.ChipIDs[0]
	}
	return md
}
