// This tool reads a scanned or rendered character set image, extracts
// the glyph grid, and writes the packed ROM bytes and/or the library
// envelope JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/retrostack/charrom/presets"
	"github.com/retrostack/charrom/recognize"
	"github.com/retrostack/charrom/rom"
	"github.com/retrostack/charrom/transport"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	var (
		in     = flag.String("in", "", "input image (png, jpeg, gif, bmp)")
		outBin = flag.String("out", "", "output ROM file (.bin)")
		outSet = flag.String("json", "", "output glyph set envelope (.json)")
		system = flag.String("system", "", "system preset providing glyph dimensions and metadata")
		name   = flag.String("name", "", "glyph set name for the envelope")

		width  = flag.Int("width", 8, "glyph width in logical pixels")
		height = flag.Int("height", 8, "glyph height in logical pixels")

		offsetX = flag.Int("ox", 0, "x origin of the first cell")
		offsetY = flag.Int("oy", 0, "y origin of the first cell")
		pixelW  = flag.Int("px", 1, "source pixels per logical pixel, horizontally")
		pixelH  = flag.Int("py", 1, "source pixels per logical pixel, vertically")
		gapX    = flag.Int("gx", 0, "horizontal gap between cells")
		gapY    = flag.Int("gy", 0, "vertical gap between cells")
		cols    = flag.Int("cols", 0, "number of columns (0 = auto)")
		rows    = flag.Int("rows", 0, "number of rows (0 = auto)")

		threshold = flag.Int("threshold", 128, "luminance cutoff, 0-255")
		invert    = flag.Bool("invert", false, "light pixels are foreground")
		rotate    = flag.Float64("rotate", 0, "skew correction in degrees, -2 to 2")
		order     = flag.String("order", "ltr-ttb", "reading order (ltr-ttb, rtl-ttb, ... ttb-ltr)")
		compress  = flag.String("compress", "", "envelope payload filter: lzw, flate or zstd")
	)
	flag.Parse()

	if *in == "" || (*outBin == "" && *outSet == "") {
		flag.Usage()
		os.Exit(2)
	}

	readingOrder, err := recognize.ParseReadingOrder(*order)
	check(err)

	cfg := rom.GlyphSetConfig{Width: *width, Height: *height}
	md := rom.Metadata{Name: *name}
	if *system != "" {
		resolved, count, err := presets.Resolve(*system)
		check(err)
		cfg = resolved
		md = presets.Metadata(*system)
		if *name != "" {
			md.Name = *name
		}
		log.Printf("system %s: %dx%d glyphs, %d expected", *system, cfg.Width, cfg.Height, count)
	}

	f, err := os.Open(*in)
	check(err)
	img, format, err := image.Decode(f)
	f.Close()
	check(err)
	log.Printf("decoded %s image %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	res, err := recognize.Extract(img, recognize.Config{
		OffsetX: *offsetX, OffsetY: *offsetY,
		PixelWidth: *pixelW, PixelHeight: *pixelH,
		GapX: *gapX, GapY: *gapY,
		CharWidth: cfg.Width, CharHeight: cfg.Height,
		ForceColumns: *cols, ForceRows: *rows,
		Threshold:       uint8(*threshold),
		Invert:          *invert,
		RotationDegrees: *rotate,
		Order:           readingOrder,
	})
	check(err)
	log.Printf("extracted %d glyphs (%d columns x %d rows)", len(res.Glyphs), res.Columns, res.Rows)

	glyphs := recognize.Reorder(res, readingOrder)

	if *outBin != "" {
		data, err := rom.SerializeROM(glyphs, cfg)
		check(err)
		check(os.WriteFile(*outBin, data, 0o644))
		fmt.Printf("wrote %d bytes to %s\n", len(data), *outBin)
	}

	if *outSet != "" {
		md.Source = *in
		md.Origin = "recognition"
		md.CreatedAt = time.Now().UTC()
		set := rom.GlyphSet{Metadata: md, Config: cfg, Glyphs: glyphs}

		var filters []transport.Filter
		switch *compress {
		case "":
		case "lzw":
			filters = []transport.Filter{transport.LZW}
		case "flate":
			filters = []transport.Filter{transport.Flate}
		case "zstd":
			filters = []transport.Filter{transport.Zstd}
		default:
			log.Fatalf("unknown compression %q", *compress)
		}
		envelope, err := transport.SerializeSetFiltered(set, filters...)
		check(err)
		doc, err := json.MarshalIndent(envelope, "", "  ")
		check(err)
		check(os.WriteFile(*outSet, doc, 0o644))
		fmt.Printf("wrote glyph set envelope to %s\n", *outSet)
	}
}
