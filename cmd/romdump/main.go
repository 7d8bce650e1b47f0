// This tool reads a character ROM (raw .bin or a glyph set envelope)
// and prints its glyphs as text blocks.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/retrostack/charrom/presets"
	"github.com/retrostack/charrom/rom"
	"github.com/retrostack/charrom/transport"
)

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	var (
		in        = flag.String("in", "", "input file: raw ROM or envelope JSON")
		system    = flag.String("system", "", "system preset providing the layout (raw input only)")
		width     = flag.Int("width", 8, "glyph width (raw input only)")
		height    = flag.Int("height", 8, "glyph height (raw input only)")
		bitOrder  = flag.String("bitorder", "MSB", "MSB or LSB (raw input only)")
		padding   = flag.String("padding", "RIGHT", "LEFT or RIGHT (raw input only)")
		byteOrder = flag.String("byteorder", "BIG", "BIG or LITTLE (raw input only)")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	check(err)

	var set rom.GlyphSet
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var envelope transport.SerializedGlyphSet
		check(json.Unmarshal(data, &envelope))
		set, err = transport.DeserializeSet(envelope)
		check(err)
		fmt.Printf("%s (%s)\n", set.Metadata.Name, set.Metadata.System)
	} else {
		cfg, err := rawConfig(*system, *width, *height, *bitOrder, *padding, *byteOrder)
		check(err)
		glyphs, err := rom.ParseROM(data, cfg)
		check(err)
		set = rom.GlyphSet{Config: cfg, Glyphs: glyphs}
	}

	fmt.Printf("%d glyphs, %dx%d\n\n", len(set.Glyphs), set.Config.Width, set.Config.Height)
	for i, g := range set.Glyphs {
		label := ""
		if id := firstNonEmpty(set.Metadata.System, *system); id != "" {
			label = fmt.Sprintf(" %q", presets.CharsetRune(id, i))
		}
		fmt.Printf("glyph %d%s\n", i, label)
		for row := 0; row < set.Config.Height; row++ {
			var sb strings.Builder
			for col := 0; col < set.Config.Width; col++ {
				if g.At(row, col) {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			fmt.Println(sb.String())
		}
		fmt.Println()
	}
}

func rawConfig(system string, width, height int, bitOrder, padding, byteOrder string) (rom.GlyphSetConfig, error) {
	if system != "" {
		cfg, _, err := presets.Resolve(system)
		return cfg, err
	}
	cfg := rom.GlyphSetConfig{Width: width, Height: height}
	switch bitOrder {
	case "MSB":
	case "LSB":
		cfg.BitOrder = rom.LSBFirst
	default:
		return cfg, fmt.Errorf("unknown bit order %q", bitOrder)
	}
	switch padding {
	case "RIGHT":
	case "LEFT":
		cfg.Padding = rom.PadLeft
	default:
		return cfg, fmt.Errorf("unknown padding %q", padding)
	}
	switch byteOrder {
	case "BIG":
	case "LITTLE":
		cfg.ByteOrder = rom.LittleEndian
	default:
		return cfg, fmt.Errorf("unknown byte order %q", byteOrder)
	}
	return cfg, cfg.Validate()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
