package presets

import "github.com/retrostack/charrom/rom"

// Character generator chips. Dimensions and counts follow the published
// datasheets; the 8x8 MSB/right/big layout is the zero value of
// GlyphSetConfig, so only departures from it are spelled out.
//
// All presets declare big-endian rows: no reference dump with a width
// over 8 pixels has been verified against little-endian hardware yet.
var chips = map[string]Chip{
	"901225": {
		ID:           "901225",
		Name:         "MOS 901225-01",
		Manufacturer: "MOS Technology",
		Config:       rom.GlyphSetConfig{Width: 8, Height: 8},
		GlyphCount:   512, // two banks of 256 screen codes
	},
	"901447": {
		ID:           "901447",
		Name:         "MOS 901447-10",
		Manufacturer: "MOS Technology",
		Config:       rom.GlyphSetConfig{Width: 8, Height: 8},
		GlyphCount:   512,
	},
	"2513": {
		ID:           "2513",
		Name:         "Signetics 2513",
		Manufacturer: "Signetics",
		Config:       rom.GlyphSetConfig{Width: 5, Height: 8},
		GlyphCount:   64,
	},
	"mcm6670": {
		ID:           "mcm6670",
		Name:         "Motorola MCM6670",
		Manufacturer: "Motorola",
		Config:       rom.GlyphSetConfig{Width: 5, Height: 7},
		GlyphCount:   64,
	},
	"mc6847": {
		ID:           "mc6847",
		Name:         "Motorola MC6847 VDG",
		Manufacturer: "Motorola",
		Config:       rom.GlyphSetConfig{Width: 5, Height: 7},
		GlyphCount:   64,
	},
	"cga": {
		ID:           "cga",
		Name:         "IBM CGA character ROM",
		Manufacturer: "IBM",
		Config:       rom.GlyphSetConfig{Width: 8, Height: 8},
		GlyphCount:   256,
	},
	"mda": {
		ID:           "mda",
		Name:         "IBM MDA character ROM",
		Manufacturer: "IBM",
		Config:       rom.GlyphSetConfig{Width: 8, Height: 14},
		GlyphCount:   256,
	},
	"tms9918": {
		ID:           "tms9918",
		Name:         "TI TMS9918 pattern table",
		Manufacturer: "Texas Instruments",
		Config:       rom.GlyphSetConfig{Width: 8, Height: 8},
		GlyphCount:   256,
	},
}

// Historical systems. ROM is either a ReferenceSpec naming the character
// generator chip, or a DirectSpec for machines whose font lives inside a
// general purpose ROM.
var systems = map[string]System{
	"c64": {
		ID:           "c64",
		Name:         "Commodore 64",
		Manufacturer: "Commodore",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"901225"}},
		Charset:      CharsetPETSCII,
	},
	"pet2001": {
		ID:           "pet2001",
		Name:         "Commodore PET 2001",
		Manufacturer: "Commodore",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"901447"}},
		Charset:      CharsetPETSCII,
	},
	"apple2": {
		ID:           "apple2",
		Name:         "Apple II",
		Manufacturer: "Apple",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"2513"}},
		Charset:      CharsetASCII,
	},
	"ibm5150": {
		ID:           "ibm5150",
		Name:         "IBM PC (CGA)",
		Manufacturer: "IBM",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"cga"}},
		Charset:      CharsetCP437,
	},
	"ibm5151": {
		ID:           "ibm5151",
		Name:         "IBM PC (MDA)",
		Manufacturer: "IBM",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"mda"}},
		Charset:      CharsetCP437,
	},
	"zxspectrum": {
		ID:           "zxspectrum",
		Name:         "ZX Spectrum",
		Manufacturer: "Sinclair",
		Locale:       "en",
		// font embedded in the system ROM, printable ASCII only
		ROM:     DirectSpec{Config: rom.GlyphSetConfig{Width: 8, Height: 8}, GlyphCount: 96},
		Charset: CharsetASCII,
	},
	"trs80": {
		ID:           "trs80",
		Name:         "TRS-80 Model I",
		Manufacturer: "Tandy",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"mcm6670"}},
		Charset:      CharsetASCII,
	},
	"coco": {
		ID:           "coco",
		Name:         "TRS-80 Color Computer",
		Manufacturer: "Tandy",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"mc6847"}},
		Charset:      CharsetASCII,
	},
	"ti99": {
		ID:           "ti99",
		Name:         "TI-99/4A",
		Manufacturer: "Texas Instruments",
		Locale:       "en",
		ROM:          ReferenceSpec{ChipIDs: []string{"tms9918"}},
		Charset:      CharsetASCII,
	},
}
