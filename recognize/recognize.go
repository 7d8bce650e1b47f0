// Package recognize extracts glyph pixel grids from a decoded bitmap
// image: a scan or a screenshot of a character set, laid out as a regular
// grid of cells. The output is the same glyph model the rom codec
// consumes, in raster order.
//
// Decoding an image file into pixels is not this package's job; the
// engine receives a ready image.Image and walks it. Geometry that reaches
// outside the image is not an error: those samples read as background.
package recognize

import (
	"fmt"
	"image"

	"github.com/retrostack/charrom/rom"
)

// Config drives the extraction of a glyph grid from a decoded image.
// All distances are in source pixels.
type Config struct {
	OffsetX, OffsetY int // origin of the first cell

	// PixelWidth and PixelHeight give the size of the block of source
	// pixels backing one logical glyph pixel (supersampling factor).
	PixelWidth, PixelHeight int

	GapX, GapY int // space between neighbouring cells

	CharWidth, CharHeight int // logical glyph dimensions

	// ForceColumns and ForceRows pin the grid size; zero means
	// auto-detect the maximum count of whole cells fitting the image.
	ForceColumns, ForceRows int

	Threshold uint8 // luminance cutoff, 0-255
	Invert    bool  // flip foreground/background polarity

	RotationDegrees float64 // small skew correction, in [-2, 2]

	// Order is carried for downstream consumers (see Reorder); Extract
	// itself always emits raster order.
	Order ReadingOrder
}

// Validate rejects geometry the engine can't walk.
func (c Config) Validate() error {
	if c.CharWidth < 1 {
		return rom.InvalidConfigError{Field: "charWidth", Value: c.CharWidth}
	}
	if c.CharHeight < 1 {
		return rom.InvalidConfigError{Field: "charHeight", Value: c.CharHeight}
	}
	if c.PixelWidth < 1 {
		return rom.InvalidConfigError{Field: "pixelWidth", Value: c.PixelWidth}
	}
	if c.PixelHeight < 1 {
		return rom.InvalidConfigError{Field: "pixelHeight", Value: c.PixelHeight}
	}
	if c.RotationDegrees < -2 || c.RotationDegrees > 2 {
		return fmt.Errorf("rotation %g out of range [-2, 2]", c.RotationDegrees)
	}
	return nil
}

// cell stride, gap included
func (c Config) strideX() int { return c.CharWidth*c.PixelWidth + c.GapX }
func (c Config) strideY() int { return c.CharHeight*c.PixelHeight + c.GapY }

// Result is a recognized glyph grid, in raster order: the glyph at
// (row, col) sits at index row*Columns+col.
type Result struct {
	Columns, Rows int
	Glyphs        []rom.Glyph
}

// Extract walks the configured grid over the image and thresholds every
// logical pixel. Identical input and config always yield an identical
// result. Cells (or parts of cells) outside the image come out blank.
func Extract(img image.Image, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.RotationDegrees != 0 {
		img = Rotate(img, cfg.RotationDegrees)
	}

	bounds := img.Bounds()
	columns := cfg.ForceColumns
	if columns == 0 {
		columns = (bounds.Dx() - cfg.OffsetX) / cfg.strideX()
	}
	rows := cfg.ForceRows
	if rows == 0 {
		rows = (bounds.Dy() - cfg.OffsetY) / cfg.strideY()
	}
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}

	glyphs := make([]rom.Glyph, 0, columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := cfg.OffsetX + col*cfg.strideX()
			y := cfg.OffsetY + row*cfg.strideY()
			glyphs = append(glyphs, extractCell(img, cfg, x, y))
		}
	}
	return Result{Columns: columns, Rows: rows, Glyphs: glyphs}, nil
}

// extractCell thresholds one glyph cell whose top left corner sits at
// (x0, y0). Each logical pixel is the average luminance of its
// supersampling block; blocks fully outside the image are background.
func extractCell(img image.Image, cfg Config, x0, y0 int) rom.Glyph {
	g := rom.NewGlyph(cfg.CharWidth, cfg.CharHeight)
	for py := 0; py < cfg.CharHeight; py++ {
		for px := 0; px < cfg.CharWidth; px++ {
			l, ok := blockLuminance(img,
				x0+px*cfg.PixelWidth, y0+py*cfg.PixelHeight,
				cfg.PixelWidth, cfg.PixelHeight)
			if !ok {
				continue
			}
			dark := l*255 < float64(cfg.Threshold)
			g[py][px] = dark != cfg.Invert
		}
	}
	return g
}

// Reorder rearranges the raster-order glyphs of a result so that entry i
// holds the glyph whose logical character index is i under the given
// reading order. This is the consumer-side step assigning code points.
func Reorder(res Result, order ReadingOrder) []rom.Glyph {
	out := make([]rom.Glyph, len(res.Glyphs))
	for row := 0; row < res.Rows; row++ {
		for col := 0; col < res.Columns; col++ {
			i := MapToLogicalIndex(row, col, res.Rows, res.Columns, order)
			out[i] = res.Glyphs[row*res.Columns+col]
		}
	}
	return out
}
